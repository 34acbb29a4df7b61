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

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager   repository.TransactionManager
	productRepo repository.ProductRepository
	profileRepo repository.ProfileRepository
	certRepo    repository.CertificationRepository
	reviewRepo  repository.ReviewRepository
	qrCode      service.QRCodeService
	cache       service.Cache
	profileTTL  time.Duration
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	ProfileRepo repository.ProfileRepository
	CertRepo    repository.CertificationRepository
	ReviewRepo  repository.ReviewRepository
	QRCode      service.QRCodeService
	Cache       service.Cache
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	profileTTL := 600 * time.Second
	if params.Config != nil && params.Config.Cache != nil && params.Config.Cache.ProfileTTL > 0 {
		profileTTL = params.Config.Cache.ProfileTTL
	}

	return &catalogService{
		txManager:   params.TxManager,
		productRepo: params.ProductRepo,
		profileRepo: params.ProfileRepo,
		certRepo:    params.CertRepo,
		reviewRepo:  params.ReviewRepo,
		qrCode:      params.QRCode,
		cache:       params.Cache,
		profileTTL:  profileTTL,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts returns the active catalog, optionally narrowed by category and search text.
// An unknown category falls back to every category.
func (srv *catalogService) ListProducts(ctx context.Context, input *usecase.ListProductsInput) (*usecase.ListProductsOutput, error) {
	category := entity.Category(strings.TrimSpace(input.Category))
	if !category.IsValid() {
		category = entity.CategoryAll
	}
	search := strings.TrimSpace(input.Search)

	products, err := srv.productRepo.List(ctx, entity.ProductFilter{
		Category:   category,
		Search:     search,
		OnlyActive: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return &usecase.ListProductsOutput{
		Products:         products,
		Categories:       entity.Categories(),
		SelectedCategory: category,
		Search:           search,
	}, nil
}

// GetProductDetail loads a product with its seller, the seller's reviews and the product's approved certifications.
func (srv *catalogService) GetProductDetail(ctx context.Context, productID uuid.UUID) (*usecase.ProductDetailOutput, error) {
	product, err := srv.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	reviews, err := srv.reviewRepo.ListByProfile(ctx, product.ProfileID, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	certs, err := srv.certRepo.ListApproved(ctx, product.ProfileID, &product.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list certifications")
	}

	return &usecase.ProductDetailOutput{
		Product:        product,
		Seller:         product.Profile,
		Reviews:        reviews,
		Certifications: certs,
		Certified:      len(certs) > 0,
	}, nil
}

// AddReview records a star rating for the product's seller and folds it into the profile aggregate.
func (srv *catalogService) AddReview(ctx context.Context, input *usecase.AddReviewInput) error {
	if !entity.ValidStars(input.Stars) {
		return domainerrors.ErrInvalidReview.WrapMessage("stars out of range")
	}

	product, err := srv.findProduct(ctx, input.ProductID)
	if err != nil {
		return err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.NewProfileRepository()

		profile, err := profileRepo.LockByID(ctx, product.ProfileID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return domainerrors.ErrProfileNotFound.WrapMessage("seller profile not found")
			}

			return errors.Wrap(err, "failed to lock profile")
		}

		review := &entity.Review{
			ProfileID: profile.ID,
			UserID:    input.UserID,
			Stars:     input.Stars,
			Comment:   strings.TrimSpace(input.Comment),
		}
		if err := repoFactory.NewReviewRepository().Create(ctx, review); err != nil {
			return errors.Wrap(err, "failed to create review")
		}

		profile.ApplyReview(input.Stars)

		return profileRepo.UpdateRating(ctx, profile.ID, profile.Rating, profile.TotalReviews)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to add review", slog.Any("productID", input.ProductID), slog.Any("error", err))

		return errors.Wrap(err, "failed to add review")
	}

	cacheDelete(ctx, srv.cache, srv.log(ctx), profileCacheKey(product.ProfileID))
	srv.log(ctx).Info("Review added", slog.Any("profileID", product.ProfileID), slog.Int("stars", input.Stars))

	return nil
}

// GetPublicProfile returns the seller page: active products, approved certifications and latest reviews.
func (srv *catalogService) GetPublicProfile(ctx context.Context, profileID uuid.UUID) (*usecase.PublicProfileOutput, error) {
	key := profileCacheKey(profileID)

	var cached usecase.PublicProfileOutput
	if cacheGet(ctx, srv.cache, srv.log(ctx), key, &cached) {
		return &cached, nil
	}

	profile, err := srv.profileRepo.FindByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound.WrapMessage("public profile not found")
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	products, err := srv.productRepo.List(ctx, entity.ProductFilter{ProfileID: &profile.ID, OnlyActive: true})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	certs, err := srv.certRepo.ListApproved(ctx, profile.ID, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list certifications")
	}

	reviews, err := srv.reviewRepo.ListByProfile(ctx, profile.ID, usecase.PublicProfileReviewLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	output := &usecase.PublicProfileOutput{
		Profile:        profile,
		Products:       products,
		Certifications: certs,
		Reviews:        reviews,
	}
	cacheSet(ctx, srv.cache, srv.log(ctx), key, output, srv.profileTTL)

	return output, nil
}

// ProductQRCode renders a PNG that links to the product page.
func (srv *catalogService) ProductQRCode(ctx context.Context, productID uuid.UUID) ([]byte, error) {
	if _, err := srv.findProduct(ctx, productID); err != nil {
		return nil, err
	}

	png, err := srv.qrCode.GenerateProductQR(productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate QR code")
	}

	return png, nil
}

func (srv *catalogService) findProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("product not found")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}
