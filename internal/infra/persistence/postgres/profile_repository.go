package postgres

import (
	"context"

	"comerciojusto/internal/domain/entity"
	domainerrors "comerciojusto/internal/domain/errors"
	"comerciojusto/internal/domain/repository"
	"comerciojusto/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (repo *profileRepository) preloaded(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("User").
		Preload("Producer").
		Preload("Company")
}

// FindByID loads a profile with its owner and business record.
func (repo *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// LockByID loads a profile locked FOR UPDATE so rating updates serialize.
func (repo *profileRepository) LockByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		Take(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to lock profile")
	}

	return toProfileDomain(&profileM), nil
}

// FindByUserID loads the profile owned by a user.
func (repo *profileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	return repo.findOne(ctx, "user_id = ?", userID)
}

func (repo *profileRepository) findOne(ctx context.Context, query string, arg any) (*entity.Profile, error) {
	var profileM model.ProfileModel
	if err := repo.preloaded(ctx).Where(query, arg).Take(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return toProfileDomain(&profileM), nil
}

// Create inserts the profile and, through GORM's has-one association, its producer or company row.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)
	if profileM.Rating.IsZero() {
		profileM.Rating = entity.DefaultRating
	}

	if err := repo.db.WithContext(ctx).Omit("User").Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrProfileAlreadyExists.WrapMessage("user already has a profile")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	profile.ID = profileM.ID
	profile.Rating = profileM.Rating
	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt
	if profile.Producer != nil && profileM.Producer != nil {
		profile.Producer.ID = profileM.Producer.ID
		profile.Producer.ProfileID = profileM.ID
	}
	if profile.Company != nil && profileM.Company != nil {
		profile.Company.ID = profileM.Company.ID
		profile.Company.ProfileID = profileM.ID
	}

	return nil
}

// Update saves the editable fields, including empty strings.
func (repo *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{ID: profile.ID}).
		Select("tax_id", "address", "city", "state", "bio", "description", "news", "extra_contact", "logo_key", "verified").
		Updates(profileM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	if profile.Producer != nil {
		if err := repo.db.WithContext(ctx).
			Model(&model.ProducerModel{}).
			Where("profile_id = ?", profile.ID).
			Updates(map[string]any{"farm_name": profile.Producer.FarmName, "phone": profile.Producer.Phone}).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to update producer")
		}
	}
	if profile.Company != nil {
		if err := repo.db.WithContext(ctx).
			Model(&model.CompanyModel{}).
			Where("profile_id = ?", profile.ID).
			Updates(map[string]any{"trade_name": profile.Company.TradeName, "phone": profile.Company.Phone}).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to update company")
		}
	}

	return nil
}

// AddSales increments total_sales in place.
func (repo *profileRepository) AddSales(ctx context.Context, id uuid.UUID, units int) error {
	err := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ?", id).
		UpdateColumn("total_sales", gorm.Expr("total_sales + ?", units)).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to add profile sales")
	}

	return nil
}

// UpdateRating stores a recomputed rating aggregate.
func (repo *profileRepository) UpdateRating(ctx context.Context, id uuid.UUID, rating decimal.Decimal, totalReviews int) error {
	err := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ?", id).
		UpdateColumns(map[string]any{"rating": rating, "total_reviews": totalReviews}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update profile rating")
	}

	return nil
}

func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	profile := &entity.Profile{
		ID:           data.ID,
		UserID:       data.UserID,
		Kind:         entity.ProfileKind(data.Kind),
		TaxID:        data.TaxID,
		Address:      data.Address,
		City:         data.City,
		State:        data.State,
		Bio:          data.Bio,
		Description:  data.Description,
		News:         data.News,
		ExtraContact: data.ExtraContact,
		LogoKey:      data.LogoKey,
		Rating:       data.Rating,
		TotalSales:   data.TotalSales,
		TotalReviews: data.TotalReviews,
		Verified:     data.Verified,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
	if data.User != nil {
		profile.OwnerName = data.User.Name
	}
	if data.Producer != nil {
		profile.Producer = &entity.Producer{
			ID:        data.Producer.ID,
			ProfileID: data.Producer.ProfileID,
			FarmName:  data.Producer.FarmName,
			Phone:     data.Producer.Phone,
		}
	}
	if data.Company != nil {
		profile.Company = &entity.Company{
			ID:        data.Company.ID,
			ProfileID: data.Company.ProfileID,
			TradeName: data.Company.TradeName,
			Phone:     data.Company.Phone,
		}
	}

	return profile
}

func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	profileM := &model.ProfileModel{
		ID:           data.ID,
		UserID:       data.UserID,
		Kind:         string(data.Kind),
		TaxID:        data.TaxID,
		Address:      data.Address,
		City:         data.City,
		State:        data.State,
		Bio:          data.Bio,
		Description:  data.Description,
		News:         data.News,
		ExtraContact: data.ExtraContact,
		LogoKey:      data.LogoKey,
		Rating:       data.Rating,
		TotalSales:   data.TotalSales,
		TotalReviews: data.TotalReviews,
		Verified:     data.Verified,
	}
	if data.Producer != nil {
		profileM.Producer = &model.ProducerModel{
			ID:        data.Producer.ID,
			ProfileID: data.ID,
			FarmName:  data.Producer.FarmName,
			Phone:     data.Producer.Phone,
		}
	}
	if data.Company != nil {
		profileM.Company = &model.CompanyModel{
			ID:        data.Company.ID,
			ProfileID: data.ID,
			TradeName: data.Company.TradeName,
			Phone:     data.Company.Phone,
		}
	}

	return profileM
}
