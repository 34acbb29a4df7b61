package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"comerciojusto/config"
	deliverycontext "comerciojusto/internal/delivery/context"
	"comerciojusto/internal/domain/entity"
	domainerrors "comerciojusto/internal/domain/errors"
	"comerciojusto/internal/domain/repository"
	"comerciojusto/internal/domain/service"
	"comerciojusto/internal/usecase"
	"comerciojusto/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	productImagePrefix = "produtos"
	logoPrefix         = "logos"
	defaultMaxUpload   = 5 * 1024 * 1024
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager   repository.TransactionManager
	profileRepo repository.ProfileRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	certRepo    repository.CertificationRepository
	storage     service.FileStorage
	cache       service.Cache
	maxUpload   int64
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProfileRepo repository.ProfileRepository
	ProductRepo repository.ProductRepository
	OrderRepo   repository.OrderRepository
	CertRepo    repository.CertificationRepository
	Storage     service.FileStorage
	Cache       service.Cache
	Config      *config.Config
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	maxUpload := int64(defaultMaxUpload)
	if params.Config != nil && params.Config.Storage != nil && params.Config.Storage.MaxUploadBytes > 0 {
		maxUpload = params.Config.Storage.MaxUploadBytes
	}

	return &profileService{
		txManager:   params.TxManager,
		profileRepo: params.ProfileRepo,
		productRepo: params.ProductRepo,
		orderRepo:   params.OrderRepo,
		certRepo:    params.CertRepo,
		storage:     params.Storage,
		cache:       params.Cache,
		maxUpload:   maxUpload,
		logger:      params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Dashboard gathers the seller's products, orders and certifications.
func (srv *profileService) Dashboard(ctx context.Context, user *entity.User) (*usecase.DashboardOutput, error) {
	profile, err := requireSellerProfile(ctx, srv.profileRepo, user)
	if err != nil {
		return nil, err
	}

	products, err := srv.productRepo.List(ctx, entity.ProductFilter{ProfileID: &profile.ID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	orders, err := srv.orderRepo.ListBySeller(ctx, profile.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	certs, err := srv.certRepo.ListByProfile(ctx, profile.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list certifications")
	}

	return &usecase.DashboardOutput{
		Profile:        profile,
		Products:       products,
		Orders:         orders,
		Certifications: certs,
	}, nil
}

// CreateProduct lists a new product under the seller's profile.
func (srv *profileService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	profile, err := requireSellerProfile(ctx, srv.profileRepo, input.User)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("product name is required")
	}
	if !input.Price.IsPositive() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("product price must be positive")
	}
	category := input.Category
	if category == "" {
		category = entity.CategoryAll
	}
	if !category.IsValid() {
		return nil, domainerrors.ErrInvalidCategory.WrapMessage(string(category))
	}
	if input.Stock < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("stock cannot be negative")
	}

	product := &entity.Product{
		ProfileID:   profile.ID,
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		Category:    category,
		Price:       input.Price,
		Stock:       input.Stock,
		Active:      true,
	}
	if profile.Kind == entity.ProfileKindProducer && profile.Producer != nil {
		producerID := profile.Producer.ID
		product.LegacyProducerID = &producerID
	}

	if input.Image != nil {
		key, err := srv.saveImage(ctx, productImagePrefix, input.Image)
		if err != nil {
			return nil, err
		}
		product.ImageKey = key
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.discardFile(ctx, product.ImageKey)

		return nil, errors.Wrap(err, "failed to create product")
	}

	cacheDelete(ctx, srv.cache, srv.log(ctx), profileCacheKey(profile.ID))
	srv.log(ctx).Info("Product created", slog.Any("productID", product.ID), slog.Any("profileID", profile.ID))

	return product, nil
}

// DeleteProduct removes one of the seller's own products and its image.
func (srv *profileService) DeleteProduct(ctx context.Context, user *entity.User, productID uuid.UUID) error {
	profile, err := requireSellerProfile(ctx, srv.profileRepo, user)
	if err != nil {
		return err
	}

	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound.WrapMessage("product to delete not found")
		}

		return errors.Wrap(err, "failed to find product")
	}
	if !product.BelongsTo(profile.ID) {
		return domainerrors.ErrProductOwnership.WrapMessage("cannot delete another seller's product")
	}

	if err := srv.productRepo.Delete(ctx, productID, profile.ID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound.WrapMessage("product to delete not found")
		}

		return errors.Wrap(err, "failed to delete product")
	}

	srv.discardFile(ctx, product.ImageKey)
	cacheDelete(ctx, srv.cache, srv.log(ctx), profileCacheKey(profile.ID))
	srv.log(ctx).Info("Product deleted", slog.Any("productID", productID))

	return nil
}

// UpdateProfile saves the editable business fields, the owner's name and an optional new logo.
func (srv *profileService) UpdateProfile(ctx context.Context, input *usecase.UpdateProfileInput) (*entity.Profile, error) {
	profile, err := requireSellerProfile(ctx, srv.profileRepo, input.User)
	if err != nil {
		return nil, err
	}

	applyText(&profile.TaxID, input.TaxID)
	applyText(&profile.Address, input.Address)
	applyText(&profile.City, input.City)
	applyText(&profile.Bio, input.Bio)
	applyText(&profile.Description, input.Description)
	applyText(&profile.News, input.News)
	applyText(&profile.ExtraContact, input.ExtraContact)
	if input.State != nil {
		profile.State = strings.ToUpper(strings.TrimSpace(*input.State))
	}

	oldLogo := profile.LogoKey
	if input.Logo != nil {
		key, err := srv.saveImage(ctx, logoPrefix, input.Logo)
		if err != nil {
			return nil, err
		}
		profile.LogoKey = key
	}

	user := *input.User
	renamed := false
	if input.Name != nil {
		if name := strings.TrimSpace(*input.Name); name != "" && name != user.Name {
			user.Name = name
			renamed = true
		}
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewProfileRepository().Update(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to update profile")
		}
		if renamed {
			return repoFactory.NewUserRepository().Update(ctx, &user)
		}

		return nil
	})
	if err != nil {
		if profile.LogoKey != oldLogo {
			srv.discardFile(ctx, profile.LogoKey)
		}
		srv.log(ctx).Error("Failed to update profile", slog.Any("profileID", profile.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update profile")
	}

	if profile.LogoKey != oldLogo {
		srv.discardFile(ctx, oldLogo)
	}
	if renamed {
		profile.OwnerName = user.Name
	}
	cacheDelete(ctx, srv.cache, srv.log(ctx), profileCacheKey(profile.ID), userCacheKey(user.ID))

	return profile, nil
}

// OpenFile streams an uploaded file from storage.
func (srv *profileService) OpenFile(ctx context.Context, key string) (io.ReadCloser, string, error) {
	if key == "" || strings.Contains(key, "..") {
		return nil, "", domainerrors.ErrNotFound.WrapMessage("invalid file key")
	}

	rc, contentType, err := srv.storage.Open(ctx, key)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to open file")
	}

	return rc, contentType, nil
}

func (srv *profileService) saveImage(ctx context.Context, prefix string, upload *usecase.Upload) (string, error) {
	if !entity.IsImageFile(upload.Filename) {
		return "", domainerrors.ErrValidationFailed.WrapMessage("unsupported image type")
	}
	if upload.Size > srv.maxUpload {
		return "", domainerrors.ErrValidationFailed.WithDetails("A imagem não pode exceder " + util.FormatBytes(srv.maxUpload))
	}

	key, err := srv.storage.Save(ctx, service.NewFileKey(prefix, upload.Filename), upload.Content, upload.ContentType)
	if err != nil {
		return "", errors.Wrap(err, "failed to store image")
	}

	return key, nil
}

func (srv *profileService) discardFile(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := srv.storage.Delete(ctx, key); err != nil {
		srv.log(ctx).Warn("Failed to delete stored file", slog.String("key", key), slog.Any("error", err))
	}
}

// requireSellerProfile loads the caller's profile and applies the capability check.
func requireSellerProfile(ctx context.Context, profileRepo repository.ProfileRepository, user *entity.User) (*entity.Profile, error) {
	if user == nil {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("login required")
	}
	if !user.HasProfile() {
		return nil, domainerrors.ErrProfileRequired.WrapMessage("user has no profile")
	}

	profile, err := profileRepo.FindByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileRequired.WrapMessage("user has no profile")
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}
	if !entity.CanAccessProfile(user, profile.Kind) {
		return nil, domainerrors.ErrForbidden.WrapMessage("profile capability check failed")
	}

	return profile, nil
}

func applyText(dst *string, value *string) {
	if value != nil {
		*dst = strings.TrimSpace(*value)
	}
}
