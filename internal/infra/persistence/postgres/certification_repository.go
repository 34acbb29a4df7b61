package postgres

import (
	"context"

	"comerciojusto/internal/domain/entity"
	domainerrors "comerciojusto/internal/domain/errors"
	"comerciojusto/internal/domain/repository"
	"comerciojusto/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type certificationRepository struct {
	db *gorm.DB
}

// NewCertificationRepository is the constructor for certificationRepository.
func NewCertificationRepository(db *gorm.DB) repository.CertificationRepository {
	return &certificationRepository{db: db}
}

// Create inserts a certification request.
func (repo *certificationRepository) Create(ctx context.Context, cert *entity.Certification) error {
	certM := fromCertificationDomain(cert)
	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(certM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound.WrapMessage("invalid product reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create certification")
	}

	cert.ID = certM.ID
	cert.CreatedAt = certM.CreatedAt
	cert.UpdatedAt = certM.UpdatedAt

	return nil
}

// LockByID returns the certification locked FOR UPDATE.
func (repo *certificationRepository) LockByID(ctx context.Context, id uuid.UUID) (*entity.Certification, error) {
	var certM model.CertificationModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		Take(&certM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCertificationNotFound
		}

		return nil, errors.Wrap(err, "failed to lock certification")
	}

	return toCertificationDomain(&certM), nil
}

// Update saves status, reviewer, opinion and dates.
func (repo *certificationRepository) Update(ctx context.Context, cert *entity.Certification) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CertificationModel{ID: cert.ID}).
		Select("status", "reviewer_id", "opinion", "issued_at", "valid_until", "file_key").
		Updates(fromCertificationDomain(cert))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update certification")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCertificationNotFound
	}

	return nil
}

// ListByProfile returns every certification of a seller, newest first.
func (repo *certificationRepository) ListByProfile(ctx context.Context, profileID uuid.UUID) ([]*entity.Certification, error) {
	return repo.list(repo.db.WithContext(ctx).Where("profile_id = ?", profileID))
}

// ListByStatus returns certifications in a status with product and profile loaded.
func (repo *certificationRepository) ListByStatus(ctx context.Context, status entity.CertificationStatus) ([]*entity.Certification, error) {
	return repo.list(repo.db.WithContext(ctx).Where("status = ?", string(status)))
}

// ListApproved returns approved certifications of a profile, optionally for one product.
func (repo *certificationRepository) ListApproved(ctx context.Context, profileID uuid.UUID, productID *uuid.UUID) ([]*entity.Certification, error) {
	query := repo.db.WithContext(ctx).
		Where("profile_id = ? AND status = ?", profileID, string(entity.CertificationApproved))
	if productID != nil {
		query = query.Where("product_id = ?", *productID)
	}

	return repo.list(query)
}

func (repo *certificationRepository) list(query *gorm.DB) ([]*entity.Certification, error) {
	var rows []model.CertificationModel
	err := query.
		Preload("Product").
		Preload("Profile").
		Preload("Profile.User").
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list certifications")
	}

	certs := make([]*entity.Certification, 0, len(rows))
	for i := range rows {
		certs = append(certs, toCertificationDomain(&rows[i]))
	}

	return certs, nil
}

func toCertificationDomain(data *model.CertificationModel) *entity.Certification {
	cert := &entity.Certification{
		ID:         data.ID,
		ProfileID:  data.ProfileID,
		ProductID:  data.ProductID,
		ReviewerID: data.ReviewerID,
		Status:     entity.CertificationStatus(data.Status),
		FileKey:    data.FileKey,
		Opinion:    data.Opinion,
		IssuedAt:   data.IssuedAt,
		ValidUntil: data.ValidUntil,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
	if data.Product != nil {
		cert.Product = toProductDomain(data.Product)
	}
	if data.Profile != nil {
		cert.Profile = toProfileDomain(data.Profile)
	}

	return cert
}

func fromCertificationDomain(data *entity.Certification) *model.CertificationModel {
	return &model.CertificationModel{
		ID:         data.ID,
		ProfileID:  data.ProfileID,
		ProductID:  data.ProductID,
		ReviewerID: data.ReviewerID,
		Status:     string(data.Status),
		FileKey:    data.FileKey,
		Opinion:    data.Opinion,
		IssuedAt:   data.IssuedAt,
		ValidUntil: data.ValidUntil,
	}
}
