package middleware

import (
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"comerciojusto/config"
	deliverycontext "comerciojusto/internal/delivery/context"
	"comerciojusto/internal/delivery/http/flash"
	"comerciojusto/internal/domain/entity"
	"comerciojusto/internal/domain/service"
	"comerciojusto/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	// SessionCookieName carries the signed session token.
	SessionCookieName = "sessao"
	// CartSessionCookieName carries the anonymous cart session id.
	CartSessionCookieName = "carrinho_sessao"

	LoginPath         = "/login/"
	AccessDeniedPath  = "/acesso-negado/"
	CompleteSignupURL = "/completar-cadastro-social/"

	defaultCartSessionTTL = 30 * 24 * time.Hour
)

// SessionMiddlewareParams holds dependencies for SessionMiddleware, injected by Fx.
type SessionMiddlewareParams struct {
	fx.In

	AuthUC       usecase.AuthUsecase
	CartUC       usecase.CartUsecase
	MessageUC    usecase.MessageUsecase
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// SessionMiddleware resolves the logged-in user from the session cookie and
// owns every cookie that identifies a visitor.
type SessionMiddleware struct {
	authUC    usecase.AuthUsecase
	cartUC    usecase.CartUsecase
	messageUC usecase.MessageUsecase
	tokenSvc  service.TokenService
	cookie    config.CookieConfig
	cartTTL   time.Duration
	logger    *slog.Logger
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(params SessionMiddlewareParams) *SessionMiddleware {
	cartTTL := defaultCartSessionTTL
	if hk := params.Config.Housekeeping; hk != nil && hk.AnonymousCartTTL > 0 {
		cartTTL = hk.AnonymousCartTTL
	}

	return &SessionMiddleware{
		authUC:    params.AuthUC,
		cartUC:    params.CartUC,
		messageUC: params.MessageUC,
		tokenSvc:  params.TokenService,
		cookie:    params.Config.HTTP.Cookie,
		cartTTL:   cartTTL,
		logger:    params.Logger,
	}
}

// Load attaches the principal and header counters to the request. It never fails the request:
// a bad or stale token only clears the cookie and the visitor continues anonymously.
func (m *SessionMiddleware) Load(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger)

		if cookie, err := c.Cookie(CartSessionCookieName); err == nil && cookie.Value != "" {
			deliverycontext.SetCartSession(c, cookie.Value)
		}

		if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
			claims, err := m.tokenSvc.ValidateToken(cookie.Value)
			if err == nil {
				user, userErr := m.authUC.CurrentUser(ctx, claims.UserID)
				if userErr == nil {
					deliverycontext.SetUser(c, user)
					reqLogger := logger.With(slog.String("user_id", user.ID.String()))
					c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(ctx, reqLogger)))
					m.mergePendingCart(c, user)
				} else {
					err = userErr
				}
			}
			if err != nil {
				logger.Debug("Discarding session cookie", slog.Any("error", err))
				m.expire(c, SessionCookieName)
			}
		}

		m.loadCounters(c)

		return next(c)
	}
}

func (m *SessionMiddleware) loadCounters(c echo.Context) {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger)

	var counters deliverycontext.Counters
	if owner := deliverycontext.CartOwner(c); owner.Validate() == nil {
		count, err := m.cartUC.Count(ctx, owner)
		if err != nil {
			logger.Warn("Failed to count cart items", slog.Any("error", err))
		}
		counters.CartItems = count
	}
	if user, ok := deliverycontext.GetUser(c); ok {
		unread, err := m.messageUC.UnreadCount(ctx, user.ID)
		if err != nil {
			logger.Warn("Failed to count unread messages", slog.Any("error", err))
		}
		counters.UnreadMessages = unread
	}

	deliverycontext.SetCounters(c, counters)
}

// RequireLogin sends anonymous visitors to the login page and back afterwards.
func (m *SessionMiddleware) RequireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := deliverycontext.GetUser(c); !ok {
			flash.Warning(c, "Faça login para continuar.")

			return c.Redirect(http.StatusSeeOther, LoginPath+"?next="+url.QueryEscape(c.Request().URL.RequestURI()))
		}

		return next(c)
	}
}

// RequireAdmin must run after RequireLogin.
func (m *SessionMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := deliverycontext.GetUser(c)
		if !ok || !user.CanReviewCertifications() {
			return c.Redirect(http.StatusSeeOther, AccessDeniedPath)
		}

		return next(c)
	}
}

// StartSession stores the session token. The anonymous cart cookie is dropped only once
// its cart has been merged into the user's; otherwise Load retries the merge.
func (m *SessionMiddleware) StartSession(c echo.Context, token string, cartMerged bool) {
	c.SetCookie(m.newCookie(SessionCookieName, token, int(m.tokenSvc.SessionDuration().Seconds())))
	if cartMerged {
		m.dropCartSession(c)
	}
}

// EndSession clears every visitor cookie.
func (m *SessionMiddleware) EndSession(c echo.Context) {
	m.expire(c, SessionCookieName)
	m.dropCartSession(c)
}

func (m *SessionMiddleware) dropCartSession(c echo.Context) {
	m.expire(c, CartSessionCookieName)
	deliverycontext.SetCartSession(c, "")
}

// mergePendingCart folds in an anonymous cart left behind by a login whose merge failed.
func (m *SessionMiddleware) mergePendingCart(c echo.Context, user *entity.User) {
	sessionID := deliverycontext.GetCartSession(c)
	if sessionID == "" {
		return
	}

	ctx := c.Request().Context()
	if _, err := m.cartUC.MergeAnonymousCart(ctx, sessionID, user.ID); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, m.logger).Warn("Pending cart merge failed", slog.Any("error", err))

		return
	}
	m.dropCartSession(c)
}

// EnsureCartSession returns the anonymous cart session id, creating it on first use.
func (m *SessionMiddleware) EnsureCartSession(c echo.Context) string {
	if id := deliverycontext.GetCartSession(c); id != "" {
		return id
	}

	id := uuid.New().String()
	c.SetCookie(m.newCookie(CartSessionCookieName, id, int(m.cartTTL.Seconds())))
	deliverycontext.SetCartSession(c, id)

	return id
}

func (m *SessionMiddleware) expire(c echo.Context, name string) {
	c.SetCookie(m.newCookie(name, "", -1))
}

func (m *SessionMiddleware) newCookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   m.cookie.Domain,
		MaxAge:   maxAge,
		Secure:   m.cookie.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
