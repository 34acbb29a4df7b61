package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"comerciojusto/config"
	deliverycontext "comerciojusto/internal/delivery/context"
	"comerciojusto/internal/delivery/http/flash"
	"comerciojusto/internal/delivery/http/middleware"
	domainerrors "comerciojusto/internal/domain/errors"
	"comerciojusto/internal/domain/entity"
	"comerciojusto/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// googleCSRFCookie is the double-submit cookie set by Google Identity Services.
const googleCSRFCookie = "g_csrf_token"

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC  usecase.AuthUsecase
	Session *middleware.SessionMiddleware
	Config  *config.Config
	Logger  *slog.Logger
}

// AuthHandler covers login, registration and account linking.
type AuthHandler struct {
	authUC         usecase.AuthUsecase
	session        *middleware.SessionMiddleware
	googleClientID string
	logger         *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	var clientID string
	if params.Config.GoogleOAuth != nil {
		clientID = params.Config.GoogleOAuth.ClientID
	}

	return &AuthHandler{
		authUC:         params.AuthUC,
		session:        params.Session,
		googleClientID: clientID,
		logger:         params.Logger,
	}
}

// LoginRequest is the e-mail login form.
type LoginRequest struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"senha" validate:"required"`
	Next     string `form:"next"`
}

// RegisterRequest is the seller signup form.
type RegisterRequest struct {
	Name     string `form:"nome" validate:"required,max=150"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"senha" validate:"required"`
	Kind     string `form:"tipo" validate:"required,oneof=produtor empresa"`
	TaxID    string `form:"cpf_cnpj" validate:"max=18"`
}

// CompleteSignupRequest is the form shown to Google users without a profile.
type CompleteSignupRequest struct {
	Kind                 string `form:"tipo"`
	TaxID                string `form:"cpf_cnpj"`
	Name                 string `form:"nome"`
	Password             string `form:"senha"`
	PasswordConfirmation string `form:"senha_confirmacao"`
}

// AuthForm is the model of the login, signup and completion pages.
type AuthForm struct {
	Error          string
	Email          string
	Name           string
	Kind           string
	TaxID          string
	Next           string
	GoogleClientID string
}

// LoginPage shows the login form.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	if _, ok := deliverycontext.GetUser(c); ok {
		return redirect(c, "/pos-login/")
	}

	return h.renderForm(c, http.StatusOK, "login", "Entrar", AuthForm{Next: safeNext(c.QueryParam("next"))})
}

// Login authenticates with e-mail and password and merges the anonymous cart.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WrapMessage(err.Error()))
	}
	form := AuthForm{Email: req.Email, Next: safeNext(req.Next)}

	if err := c.Validate(&req); err != nil {
		return h.formError(c, "login", "Entrar", form, err)
	}

	output, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:     req.Email,
		Password:  req.Password,
		SessionID: deliverycontext.GetCartSession(c),
	})
	if err != nil {
		return h.formError(c, "login", "Entrar", form, err)
	}

	h.session.StartSession(c, output.Token, output.CartMerged)
	if form.Next != "" {
		return redirect(c, form.Next)
	}

	return redirect(c, "/pos-login/")
}

// RegisterPage shows the signup form.
func (h *AuthHandler) RegisterPage(c echo.Context) error {
	return h.renderForm(c, http.StatusOK, "cadastro", "Cadastro", AuthForm{Kind: string(entity.ProfileKindProducer)})
}

// Register opens a seller account and logs it in.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WrapMessage(err.Error()))
	}
	form := AuthForm{Email: req.Email, Name: req.Name, Kind: req.Kind, TaxID: req.TaxID}

	if err := c.Validate(&req); err != nil {
		return h.formError(c, "cadastro", "Cadastro", form, err)
	}

	output, err := h.authUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		Kind:      entity.ProfileKind(req.Kind),
		TaxID:     req.TaxID,
		SessionID: deliverycontext.GetCartSession(c),
	})
	if err != nil {
		return h.formError(c, "cadastro", "Cadastro", form, err)
	}

	h.session.StartSession(c, output.Token, output.CartMerged)
	flash.Success(c, "Cadastro realizado com sucesso!")

	return redirect(c, "/dashboard/")
}

// GoogleLogin receives the ID token posted by the Google sign-in button.
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	// The button posts outside our CSRF form token, so check its own double-submit pair.
	cookie, err := c.Cookie(googleCSRFCookie)
	if err != nil || cookie.Value == "" || cookie.Value != c.FormValue(googleCSRFCookie) {
		flash.Error(c, "Não foi possível validar o login com o Google. Tente novamente.")

		return redirect(c, middleware.LoginPath)
	}

	output, err := h.authUC.GoogleLogin(c.Request().Context(), &usecase.GoogleLoginInput{
		IDToken:   c.FormValue("credential"),
		SessionID: deliverycontext.GetCartSession(c),
	})
	if err != nil {
		if err := flashOrFail(c, err); err != nil {
			return errors.WithStack(err)
		}

		return redirect(c, middleware.LoginPath)
	}

	h.session.StartSession(c, output.Token, output.CartMerged)

	return redirect(c, "/pos-login/")
}

// CompleteSignupPage asks a profile-less user for the seller data.
func (h *AuthHandler) CompleteSignupPage(c echo.Context) error {
	user := currentUser(c)
	if user.HasProfile() {
		return redirect(c, "/dashboard/")
	}

	return h.renderForm(c, http.StatusOK, "completar_cadastro", "Completar cadastro", AuthForm{
		Name: user.Name,
		Kind: string(entity.ProfileKindProducer),
	})
}

// CompleteSignup creates the profile of a social account.
func (h *AuthHandler) CompleteSignup(c echo.Context) error {
	user := currentUser(c)
	if user.HasProfile() {
		return redirect(c, "/dashboard/")
	}

	var req CompleteSignupRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WrapMessage(err.Error()))
	}
	form := AuthForm{Name: req.Name, Kind: req.Kind, TaxID: req.TaxID}
	if strings.TrimSpace(form.Name) == "" {
		form.Name = user.Name
	}

	_, err := h.authUC.CompleteSocialSignup(c.Request().Context(), &usecase.CompleteSocialSignupInput{
		UserID:               user.ID,
		Kind:                 req.Kind,
		TaxID:                req.TaxID,
		Name:                 form.Name,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
	})
	if err != nil {
		return h.formError(c, "completar_cadastro", "Completar cadastro", form, err)
	}

	flash.Success(c, "Cadastro concluído!")

	return redirect(c, "/dashboard/")
}

// PostLogin routes a fresh session to its landing page.
func (h *AuthHandler) PostLogin(c echo.Context) error {
	dest, err := h.authUC.PostLoginDestination(c.Request().Context(), currentUser(c).ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusFound, dest)
}

// Logout clears the session.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.session.EndSession(c)
	flash.Success(c, "Você saiu da sua conta.")

	return c.Redirect(http.StatusFound, "/")
}

// DisconnectGoogle unlinks the Google credential.
func (h *AuthHandler) DisconnectGoogle(c echo.Context) error {
	err := h.authUC.DisconnectGoogle(c.Request().Context(), currentUser(c).ID)
	if err != nil {
		if err := flashOrFail(c, err); err != nil {
			return errors.WithStack(err)
		}
	} else {
		flash.Success(c, "Conta Google desconectada.")
	}

	return redirect(c, "/meu-perfil/")
}

// AccessDenied is the landing page of permission failures.
func (h *AuthHandler) AccessDenied(c echo.Context) error {
	return render(c, http.StatusForbidden, "acesso_negado", "Acesso negado", nil)
}

func (h *AuthHandler) renderForm(c echo.Context, status int, page, title string, form AuthForm) error {
	form.GoogleClientID = h.googleClientID

	return render(c, status, page, title, form)
}

// formError re-renders the form for business errors and escalates the rest.
func (h *AuthHandler) formError(c echo.Context, page, title string, form AuthForm, err error) error {
	appErr, ok := userError(err)
	if !ok {
		return errors.WithStack(err)
	}

	form.Error = errorText(appErr)
	status := appErr.HTTPCode()
	if status == http.StatusUnauthorized {
		status = http.StatusOK
	}

	return h.renderForm(c, status, page, title, form)
}
