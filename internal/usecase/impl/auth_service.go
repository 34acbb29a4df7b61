// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"comerciojusto/config"
	deliverycontext "comerciojusto/internal/delivery/context"
	"comerciojusto/internal/domain/entity"
	domainerrors "comerciojusto/internal/domain/errors"
	"comerciojusto/internal/domain/repository"
	"comerciojusto/internal/domain/service"
	"comerciojusto/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	authRepo          repository.AuthRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	googleAuthService service.OAuthAuthService
	cartUsecase       usecase.CartUsecase
	cache             service.Cache
	userTTL           time.Duration
	minPasswordLength int
	logger            *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager         repository.TransactionManager
	UserRepo          repository.UserRepository
	AuthRepo          repository.AuthRepository
	Hasher            service.PasswordHasher
	TokenService      service.TokenService
	GoogleAuthService service.OAuthAuthService
	CartUsecase       usecase.CartUsecase
	Cache             service.Cache
	Config            *config.Config
	Logger            *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	userTTL := 300 * time.Second
	minPasswordLength := 6
	if params.Config != nil {
		if params.Config.Cache != nil && params.Config.Cache.UserTTL > 0 {
			userTTL = params.Config.Cache.UserTTL
		}
		if params.Config.Auth != nil && params.Config.Auth.MinPasswordLength > 0 {
			minPasswordLength = params.Config.Auth.MinPasswordLength
		}
	}

	return &authService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		authRepo:          params.AuthRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		googleAuthService: params.GoogleAuthService,
		cartUsecase:       params.CartUsecase,
		cache:             params.Cache,
		userTTL:           userTTL,
		minPasswordLength: minPasswordLength,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register opens an account with an email credential and a seller profile, then signs it in.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	name := strings.TrimSpace(input.Name)
	if email == "" || name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("name and email are required")
	}
	if !input.Kind.IsValid() {
		return nil, domainerrors.ErrInvalidProfileKind.WrapMessage("unknown profile kind")
	}
	if err := srv.checkPassword(input.Password); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Starting registration", slog.String("email", email), slog.Any("kind", input.Kind))

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	var registered *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		_, err := userRepo.FindByEmail(ctx, email)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check email")
		}

		user := &entity.User{Email: email, Name: name}
		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		if err := repoFactory.NewAuthRepository().CreateAuthentication(ctx, &entity.Authentication{
			UserID:         user.ID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: email,
			PasswordHash:   hash,
		}); err != nil {
			return errors.Wrap(err, "failed to create authentication")
		}

		profile := newProfile(user.ID, input.Kind, strings.TrimSpace(input.TaxID))
		if err := repoFactory.NewProfileRepository().Create(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to create profile")
		}
		profile.OwnerName = user.Name
		user.Profile = profile
		registered = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	return srv.signIn(ctx, registered, input.SessionID, false)
}

// Login verifies an email credential and signs the user in.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)

	auth, err := srv.authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, email)
	if err != nil {
		if errors.Is(err, repository.ErrAuthNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("unknown email")
		}

		return nil, errors.Wrap(err, "failed to find authentication")
	}
	if !srv.hasher.Check(input.Password, auth.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	user, err := srv.loadUser(ctx, auth.UserID)
	if err != nil {
		return nil, err
	}

	return srv.signIn(ctx, user, input.SessionID, false)
}

// GoogleLogin signs in with a Google ID token, linking or creating the account by email.
func (srv *authService) GoogleLogin(ctx context.Context, input *usecase.GoogleLoginInput) (*usecase.AuthOutput, error) {
	oauthUser, err := srv.googleAuthService.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		srv.log(ctx).Warn("Google token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrOAuthTokenInvalid.WrapMessage(err.Error())
	}
	email := normalizeEmail(oauthUser.Email)

	var (
		user       *entity.User
		newAccount bool
	)
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		authRepo := repoFactory.NewAuthRepository()

		auth, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeGoogle, oauthUser.ID)
		if err == nil {
			user, err = userRepo.FindByID(ctx, auth.UserID)

			return errors.Wrap(err, "failed to load linked user")
		}
		if !errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(err, "failed to find google authentication")
		}

		user, err = userRepo.FindByEmail(ctx, email)
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			user = &entity.User{Email: email, Name: strings.TrimSpace(oauthUser.Name)}
			if err := userRepo.Create(ctx, user); err != nil {
				return errors.Wrap(err, "failed to create user")
			}
			newAccount = true
		case err != nil:
			return errors.Wrap(err, "failed to find user by email")
		}

		return authRepo.CreateAuthentication(ctx, &entity.Authentication{
			UserID:         user.ID,
			Provider:       entity.ProviderTypeGoogle,
			ProviderUserID: oauthUser.ID,
		})
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute google login transaction", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to sign in with google")
	}

	return srv.signIn(ctx, user, input.SessionID, newAccount)
}

// CompleteSocialSignup creates the profile of a Google user and gives the account an email password.
func (srv *authService) CompleteSocialSignup(ctx context.Context, input *usecase.CompleteSocialSignupInput) (*entity.User, error) {
	kind := entity.ProfileKind(input.Kind)
	taxID := strings.TrimSpace(input.TaxID)
	switch {
	case !kind.IsValid():
		return nil, domainerrors.ErrInvalidProfileKind.WrapMessage("unknown profile kind")
	case taxID == "":
		return nil, domainerrors.ErrTaxIDRequired.WrapMessage("tax id is required")
	case input.Password == "":
		return nil, domainerrors.ErrPasswordRequired.WrapMessage("password is required")
	case input.Password != input.PasswordConfirmation:
		return nil, domainerrors.ErrPasswordMismatch.WrapMessage("password confirmation differs")
	}
	if err := srv.checkPassword(input.Password); err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	var completed *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByID(ctx, input.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("signup user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}
		if user.HasProfile() {
			return domainerrors.ErrProfileAlreadyExists.WrapMessage("profile already completed")
		}

		if name := strings.TrimSpace(input.Name); name != "" && name != user.Name {
			user.Name = name
			if err := userRepo.Update(ctx, user); err != nil {
				return errors.Wrap(err, "failed to update user name")
			}
		}

		profile := newProfile(user.ID, kind, taxID)
		if err := repoFactory.NewProfileRepository().Create(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to create profile")
		}
		profile.OwnerName = user.Name
		user.Profile = profile

		if err := upsertPassword(ctx, repoFactory.NewAuthRepository(), user, hash); err != nil {
			return err
		}
		completed = user

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to complete social signup")
	}

	cacheDelete(ctx, srv.cache, srv.log(ctx), userCacheKey(completed.ID))
	srv.log(ctx).Info("Social signup completed", slog.Any("userID", completed.ID), slog.Any("kind", kind))

	return completed, nil
}

// PostLoginDestination picks where a freshly signed-in user lands.
func (srv *authService) PostLoginDestination(ctx context.Context, userID uuid.UUID) (string, error) {
	user, err := srv.CurrentUser(ctx, userID)
	if err != nil {
		return "", err
	}

	switch {
	case user.HasProfile():
		return usecase.DestinationDashboard, nil
	case user.IsAdmin():
		return usecase.DestinationCertAdmin, nil
	default:
		return usecase.DestinationCompleteSignup, nil
	}
}

// CurrentUser resolves the session principal with its profile, cached for the user TTL.
func (srv *authService) CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	key := userCacheKey(userID)

	var cached entity.User
	if cacheGet(ctx, srv.cache, srv.log(ctx), key, &cached) {
		return &cached, nil
	}

	user, err := srv.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	cacheSet(ctx, srv.cache, srv.log(ctx), key, user, srv.userTTL)

	return user, nil
}

// HasGoogleLink reports whether a Google account is linked to the user.
func (srv *authService) HasGoogleLink(ctx context.Context, userID uuid.UUID) (bool, error) {
	_, err := srv.authRepo.FindByUserAndProvider(ctx, userID, entity.ProviderTypeGoogle)
	if errors.Is(err, repository.ErrAuthNotFound) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to check google link")
	}

	return true, nil
}

// DisconnectGoogle removes the Google credential. The last remaining credential is kept.
func (srv *authService) DisconnectGoogle(ctx context.Context, userID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.NewAuthRepository()

		auths, err := authRepo.ListByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list credentials")
		}

		var google *entity.Authentication
		for _, auth := range auths {
			if auth.Provider == entity.ProviderTypeGoogle {
				google = auth

				break
			}
		}
		if google == nil {
			return domainerrors.ErrAuthNotFound.WrapMessage("no google account linked")
		}
		if len(auths) == 1 {
			return domainerrors.ErrLastCredential.WrapMessage("google is the only credential")
		}

		return authRepo.Delete(ctx, google.ID)
	})
	if err != nil {
		return errors.Wrap(err, "failed to disconnect google")
	}

	srv.log(ctx).Info("Google account disconnected", slog.Any("userID", userID))

	return nil
}

// ResetPassword sets a new email password for the account.
func (srv *authService) ResetPassword(ctx context.Context, email, password string) error {
	if err := srv.checkPassword(password); err != nil {
		return err
	}

	hash, err := srv.hasher.Hash(password)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	var userID uuid.UUID
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.NewUserRepository().FindByEmail(ctx, normalizeEmail(email))
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("no account with that email")
			}

			return errors.Wrap(err, "failed to find user")
		}
		userID = user.ID

		return upsertPassword(ctx, repoFactory.NewAuthRepository(), user, hash)
	})
	if err != nil {
		return errors.Wrap(err, "failed to reset password")
	}

	cacheDelete(ctx, srv.cache, srv.log(ctx), userCacheKey(userID))

	return nil
}

// PromoteAdmin makes the account a superuser, creating it when the email is unknown.
func (srv *authService) PromoteAdmin(ctx context.Context, input *usecase.PromoteAdminInput) (*entity.User, error) {
	email := normalizeEmail(input.Email)
	if email == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("email is required")
	}

	var hash string
	if input.Password != "" {
		if err := srv.checkPassword(input.Password); err != nil {
			return nil, err
		}
		var err error
		if hash, err = srv.hasher.Hash(input.Password); err != nil {
			return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
		}
	}

	var admin *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByEmail(ctx, email)
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			if hash == "" {
				return domainerrors.ErrPasswordRequired.WrapMessage("new administrators need a password")
			}
			user = &entity.User{Email: email, Name: strings.TrimSpace(input.Name), IsStaff: true, IsSuperuser: true}
			if err := userRepo.Create(ctx, user); err != nil {
				return errors.Wrap(err, "failed to create administrator")
			}
		case err != nil:
			return errors.Wrap(err, "failed to find user")
		default:
			user.IsStaff = true
			user.IsSuperuser = true
			if name := strings.TrimSpace(input.Name); name != "" {
				user.Name = name
			}
			if err := userRepo.Update(ctx, user); err != nil {
				return errors.Wrap(err, "failed to promote user")
			}
		}
		admin = user

		if hash == "" {
			return nil
		}

		return upsertPassword(ctx, repoFactory.NewAuthRepository(), user, hash)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to promote administrator")
	}

	cacheDelete(ctx, srv.cache, srv.log(ctx), userCacheKey(admin.ID))

	return admin, nil
}

// signIn merges the anonymous cart and issues the session token.
func (srv *authService) signIn(ctx context.Context, user *entity.User, sessionID string, newAccount bool) (*usecase.AuthOutput, error) {
	token, err := srv.tokenService.GenerateSessionToken(user.ID, user.Roles().ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	merged := true
	count, err := srv.cartUsecase.MergeAnonymousCart(ctx, sessionID, user.ID)
	if err != nil {
		merged = false
		srv.log(ctx).Warn("Cart merge deferred", slog.Any("userID", user.ID), slog.Any("error", err))
	}

	srv.log(ctx).Info("User signed in", slog.Any("userID", user.ID), slog.Bool("newAccount", newAccount))

	return &usecase.AuthOutput{User: user, Token: token, CartCount: count, CartMerged: merged, NewAccount: newAccount}, nil
}

func (srv *authService) loadUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("user not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

func (srv *authService) checkPassword(password string) error {
	if len([]rune(password)) < srv.minPasswordLength {
		return domainerrors.ErrPasswordTooShort.WrapMessage("password below minimum length")
	}

	return nil
}

// upsertPassword replaces the email credential hash or creates the credential.
func upsertPassword(ctx context.Context, authRepo repository.AuthRepository, user *entity.User, hash string) error {
	auth, err := authRepo.FindByUserAndProvider(ctx, user.ID, entity.ProviderTypeEmail)
	switch {
	case err == nil:
		return authRepo.UpdatePasswordHash(ctx, auth.ID, hash)
	case errors.Is(err, repository.ErrAuthNotFound):
		return authRepo.CreateAuthentication(ctx, &entity.Authentication{
			UserID:         user.ID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: user.Email,
			PasswordHash:   hash,
		})
	default:
		return errors.Wrap(err, "failed to find email credential")
	}
}

func newProfile(userID uuid.UUID, kind entity.ProfileKind, taxID string) *entity.Profile {
	profile := &entity.Profile{UserID: userID, Kind: kind, TaxID: taxID, Rating: entity.DefaultRating}
	if kind == entity.ProfileKindCompany {
		profile.Company = &entity.Company{}
	} else {
		profile.Producer = &entity.Producer{}
	}

	return profile
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
