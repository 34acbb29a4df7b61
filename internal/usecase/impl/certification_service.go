package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "comerciojusto/internal/delivery/context"
	"comerciojusto/internal/domain/entity"
	domainerrors "comerciojusto/internal/domain/errors"
	"comerciojusto/internal/domain/repository"
	"comerciojusto/internal/domain/service"
	"comerciojusto/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const certificatePrefix = "certificados"

// certificationService implements the CertificationUsecase interface.
type certificationService struct {
	txManager   repository.TransactionManager
	profileRepo repository.ProfileRepository
	productRepo repository.ProductRepository
	certRepo    repository.CertificationRepository
	storage     service.FileStorage
	cache       service.Cache
	now         func() time.Time
	logger      *slog.Logger
}

// CertificationServiceParams holds dependencies for CertificationService, injected by Fx.
type CertificationServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProfileRepo repository.ProfileRepository
	ProductRepo repository.ProductRepository
	CertRepo    repository.CertificationRepository
	Storage     service.FileStorage
	Cache       service.Cache
	Logger      *slog.Logger
}

// NewCertificationService is the constructor for certificationService.
func NewCertificationService(params CertificationServiceParams) usecase.CertificationUsecase {
	return &certificationService{
		txManager:   params.TxManager,
		profileRepo: params.ProfileRepo,
		productRepo: params.ProductRepo,
		certRepo:    params.CertRepo,
		storage:     params.Storage,
		cache:       params.Cache,
		now:         time.Now,
		logger:      params.Logger,
	}
}

func (srv *certificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Submit validates and stores the certificate file and opens a request in the submitted state.
func (srv *certificationService) Submit(ctx context.Context, input *usecase.SubmitCertificationInput) (*entity.Certification, error) {
	profile, err := requireSellerProfile(ctx, srv.profileRepo, input.User)
	if err != nil {
		return nil, err
	}
	if input.File == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("certificate file is required")
	}

	switch err := entity.ValidateCertificateFile(input.File.Filename, input.File.Size); {
	case errors.Is(err, entity.ErrCertificateTooLarge):
		return nil, domainerrors.ErrCertificateTooLarge.WrapMessage(input.File.Filename)
	case err != nil:
		return nil, domainerrors.ErrInvalidCertificateFile.WrapMessage(input.File.Filename)
	}

	product, err := srv.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("certified product not found")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}
	if !product.BelongsTo(profile.ID) {
		return nil, domainerrors.ErrProductOwnership.WrapMessage("product belongs to another profile")
	}

	key, err := srv.storage.Save(ctx, service.NewFileKey(certificatePrefix, input.File.Filename), input.File.Content, input.File.ContentType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store certificate")
	}

	cert := &entity.Certification{
		ProfileID:  profile.ID,
		ProductID:  product.ID,
		Status:     entity.CertificationSubmitted,
		FileKey:    key,
		ValidUntil: input.ValidUntil,
	}
	if err := srv.certRepo.Create(ctx, cert); err != nil {
		if delErr := srv.storage.Delete(ctx, key); delErr != nil {
			srv.log(ctx).Warn("Failed to delete orphan certificate", slog.String("key", key), slog.Any("error", delErr))
		}

		return nil, errors.Wrap(err, "failed to create certification")
	}

	srv.log(ctx).Info("Certification submitted", slog.Any("certificationID", cert.ID), slog.Any("productID", product.ID))

	return cert, nil
}

// Review approves or rejects a submitted certification. Only administrators may decide.
func (srv *certificationService) Review(ctx context.Context, input *usecase.ReviewCertificationInput) (*entity.Certification, error) {
	if !input.Reviewer.CanReviewCertifications() {
		return nil, domainerrors.ErrForbidden.WrapMessage("only administrators review certifications")
	}

	var to entity.CertificationStatus
	switch input.Action {
	case usecase.CertificationActionApprove:
		to = entity.CertificationApproved
	case usecase.CertificationActionReject:
		to = entity.CertificationRejected
	default:
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown review action " + input.Action)
	}

	var reviewed *entity.Certification
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		certRepo := repoFactory.NewCertificationRepository()

		cert, err := certRepo.LockByID(ctx, input.CertificationID)
		if err != nil {
			if errors.Is(err, repository.ErrCertificationNotFound) {
				return domainerrors.ErrCertificationNotFound.WrapMessage("certification not found")
			}

			return errors.Wrap(err, "failed to lock certification")
		}

		validUntil := input.ValidUntil
		if validUntil == nil {
			validUntil = cert.ValidUntil
		}
		if err := cert.Review(input.Reviewer.ID, to, input.Opinion, validUntil, srv.now()); err != nil {
			return domainerrors.ErrCertificationTransition.WrapMessage(string(cert.Status))
		}
		if err := certRepo.Update(ctx, cert); err != nil {
			return errors.Wrap(err, "failed to save review")
		}
		reviewed = cert

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to review certification")
	}

	cacheDelete(ctx, srv.cache, srv.log(ctx), profileCacheKey(reviewed.ProfileID))
	srv.log(ctx).Info("Certification reviewed",
		slog.Any("certificationID", reviewed.ID),
		slog.Any("status", reviewed.Status),
		slog.Any("reviewerID", input.Reviewer.ID))

	return reviewed, nil
}

// ListPending returns certifications waiting for review.
func (srv *certificationService) ListPending(ctx context.Context, reviewer *entity.User) ([]*entity.Certification, error) {
	if !reviewer.CanReviewCertifications() {
		return nil, domainerrors.ErrForbidden.WrapMessage("only administrators review certifications")
	}

	certs, err := srv.certRepo.ListByStatus(ctx, entity.CertificationSubmitted)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending certifications")
	}

	return certs, nil
}
