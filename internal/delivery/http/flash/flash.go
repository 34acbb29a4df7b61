// Package flash keeps one-shot user messages across a redirect in a short-lived cookie.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Level drives the styling of a message.
type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

const (
	cookieName = "mensagens"
	pendingKey = "flash_pending"
	maxAge     = 60
)

// Message is one flash entry.
type Message struct {
	Level Level  `json:"l"`
	Text  string `json:"t"`
}

// Add queues a message for the next rendered page.
func Add(c echo.Context, level Level, text string) {
	pending := append(pendingMessages(c), Message{Level: level, Text: text})
	c.Set(pendingKey, pending)

	raw, err := json.Marshal(append(cookieMessages(c), pending...))
	if err != nil {
		return
	}
	writeCookie(c, base64.RawURLEncoding.EncodeToString(raw), maxAge)
}

// Success queues a success message.
func Success(c echo.Context, text string) { Add(c, LevelSuccess, text) }

// Warning queues a warning message.
func Warning(c echo.Context, text string) { Add(c, LevelWarning, text) }

// Error queues an error message.
func Error(c echo.Context, text string) { Add(c, LevelError, text) }

// Pop returns every queued message and clears the cookie.
func Pop(c echo.Context) []Message {
	msgs := append(cookieMessages(c), pendingMessages(c)...)
	if len(msgs) > 0 {
		c.Set(pendingKey, []Message(nil))
		writeCookie(c, "", -1)
	}

	return msgs
}

func pendingMessages(c echo.Context) []Message {
	msgs, _ := c.Get(pendingKey).([]Message)

	return msgs
}

func cookieMessages(c echo.Context) []Message {
	cookie, err := c.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	raw, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}

	var msgs []Message
	if err := json.Unmarshal(raw, &msgs); err != nil {
		return nil
	}

	return msgs
}

func writeCookie(c echo.Context, value string, age int) {
	c.SetCookie(&http.Cookie{
		Name:     cookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   age,
		HttpOnly: true,
		Secure:   c.Scheme() == "https",
		SameSite: http.SameSiteLaxMode,
	})
}
