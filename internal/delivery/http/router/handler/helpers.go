// Package handler contains the HTTP handlers of the storefront.
package handler

import (
	"net/http"
	"strings"

	deliverycontext "comerciojusto/internal/delivery/context"
	"comerciojusto/internal/delivery/http/flash"
	"comerciojusto/internal/delivery/http/view"
	domainerrors "comerciojusto/internal/domain/errors"
	"comerciojusto/internal/domain/entity"
	"comerciojusto/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

func render(c echo.Context, status int, name, title string, data any) error {
	return c.Render(status, name, &view.Page{Title: title, Data: data})
}

// redirect answers with 303 so a POST is followed by a GET.
func redirect(c echo.Context, path string) error {
	return c.Redirect(http.StatusSeeOther, path)
}

// currentUser is only called behind RequireLogin.
func currentUser(c echo.Context) *entity.User {
	user, _ := deliverycontext.GetUser(c)

	return user
}

// userError reports whether err is a business error the visitor can fix.
func userError(err error) (domainerrors.AppError, bool) {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
		return appErr, true
	}

	return nil, false
}

// errorText prefers the detail (validation messages) over the generic message.
func errorText(appErr domainerrors.AppError) string {
	if appErr.Details() != "" {
		return appErr.Details()
	}

	return appErr.Message()
}

// flashOrFail shows business errors as a flash message and propagates everything else.
func flashOrFail(c echo.Context, err error) error {
	if appErr, ok := userError(err); ok {
		flash.Error(c, errorText(appErr))

		return nil
	}

	return err
}

// isForbidden reports errors that must go through the access-denied redirect.
func isForbidden(err error) bool {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return false
	}

	return appErr.HTTPCode() == http.StatusForbidden || appErr.HTTPCode() == http.StatusUnauthorized
}

func pathUUID(c echo.Context, name string, notFound *domainerrors.BaseError) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, notFound.WrapMessage("malformed id " + c.Param(name))
	}

	return id, nil
}

// formUpload opens an optional multipart file. The returned closer is never nil.
func formUpload(c echo.Context, field string) (*usecase.Upload, func(), error) {
	header, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || (err == nil && header.Size == 0) {
		return nil, func() {}, nil
	}
	if err != nil {
		return nil, func() {}, domainerrors.ErrValidationFailed.WrapMessage("invalid multipart form")
	}

	file, err := header.Open()
	if err != nil {
		return nil, func() {}, errors.Wrap(err, "failed to open upload")
	}

	upload := &usecase.Upload{
		Filename:    header.Filename,
		Size:        header.Size,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Content:     file,
	}

	return upload, func() { _ = file.Close() }, nil
}

// safeNext accepts only same-site absolute paths.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.Contains(next, "\\") {
		return ""
	}

	return next
}

// optionalString maps an absent form field to nil so the use case leaves it unchanged.
func optionalString(c echo.Context, field string) *string {
	form, err := c.FormParams()
	if err != nil {
		return nil
	}
	values, ok := form[field]
	if !ok || len(values) == 0 {
		return nil
	}
	value := values[0]

	return &value
}
