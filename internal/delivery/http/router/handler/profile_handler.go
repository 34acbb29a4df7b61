package handler

import (
	"log/slog"
	"net/http"

	"comerciojusto/internal/delivery/http/flash"
	"comerciojusto/internal/delivery/http/middleware"
	domainerrors "comerciojusto/internal/domain/errors"
	"comerciojusto/internal/domain/entity"
	"comerciojusto/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	AuthUC    usecase.AuthUsecase
	Logger    *slog.Logger
}

// ProfileHandler serves the profile editor and the uploaded media.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	authUC    usecase.AuthUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		authUC:    params.AuthUC,
		logger:    params.Logger,
	}
}

// EditProfilePage is the model of the profile editor.
type EditProfilePage struct {
	Profile       *entity.Profile
	HasGoogleLink bool
}

// Edit renders the profile editor.
func (h *ProfileHandler) Edit(c echo.Context) error {
	user := currentUser(c)
	if !user.HasProfile() {
		if user.IsAdmin() {
			return redirect(c, usecase.DestinationCertAdmin)
		}

		return redirect(c, middleware.CompleteSignupURL)
	}
	if !entity.CanAccessProfile(user, user.Profile.Kind) {
		return redirect(c, middleware.AccessDeniedPath)
	}

	linked, err := h.authUC.HasGoogleLink(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return render(c, http.StatusOK, "meu_perfil", "Meu perfil", EditProfilePage{
		Profile:       user.Profile,
		HasGoogleLink: linked,
	})
}

// Update saves the profile editor. Absent fields keep their value.
func (h *ProfileHandler) Update(c echo.Context) error {
	logo, closeLogo, err := formUpload(c, "logo")
	if err != nil {
		return flashOrFail(c, err)
	}
	defer closeLogo()

	_, err = h.profileUC.UpdateProfile(c.Request().Context(), &usecase.UpdateProfileInput{
		User:         currentUser(c),
		Name:         optionalString(c, "nome"),
		TaxID:        optionalString(c, "cpf_cnpj"),
		Address:      optionalString(c, "endereco"),
		City:         optionalString(c, "cidade"),
		State:        optionalString(c, "estado"),
		Bio:          optionalString(c, "bio"),
		Description:  optionalString(c, "descricao"),
		ExtraContact: optionalString(c, "contato_adicional"),
		Logo:         logo,
	})
	if err != nil {
		if isForbidden(err) {
			return errors.WithStack(err)
		}
		if err := flashOrFail(c, err); err != nil {
			return errors.WithStack(err)
		}
	} else {
		flash.Success(c, "Perfil atualizado.")
	}

	return redirect(c, "/meu-perfil/")
}

// Media streams an uploaded file (logos, product images, certificates).
func (h *ProfileHandler) Media(c echo.Context) error {
	key := c.Param("*")
	if key == "" {
		return errors.WithStack(domainerrors.ErrNotFound)
	}

	reader, contentType, err := h.profileUC.OpenFile(c.Request().Context(), key)
	if err != nil {
		return errors.WithStack(err)
	}
	defer reader.Close()

	c.Response().Header().Set(echo.HeaderCacheControl, "private, max-age=3600")

	return c.Stream(http.StatusOK, contentType, reader)
}
