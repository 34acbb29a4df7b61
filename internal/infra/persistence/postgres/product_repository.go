package postgres

import (
	"context"
	"strings"

	"comerciojusto/internal/domain/entity"
	domainerrors "comerciojusto/internal/domain/errors"
	"comerciojusto/internal/domain/repository"
	"comerciojusto/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// FindByID loads a product with its seller profile.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).
		Preload("Profile").
		Preload("Profile.User").
		Where("id = ?", id).
		Take(&productM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return toProductDomain(&productM), nil
}

// FindByIDs loads several products keyed by id.
func (repo *productRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Product, error) {
	products := make(map[uuid.UUID]*entity.Product, len(ids))
	if len(ids) == 0 {
		return products, nil
	}

	var rows []model.ProductModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products")
	}
	for i := range rows {
		products[rows[i].ID] = toProductDomain(&rows[i])
	}

	return products, nil
}

// List returns products matching the filter, featured first then best sellers.
func (repo *productRepository) List(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).Model(&model.ProductModel{}).Preload("Profile")

	if filter.OnlyActive {
		query = query.Where("active = ?", true)
	}
	if filter.Category != "" && filter.Category != entity.CategoryAll {
		query = query.Where("category = ?", string(filter.Category))
	}
	if filter.ProfileID != nil {
		query = query.Where("profile_id = ?", *filter.ProfileID)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + escapeLike(search) + "%"
		query = query.Where("(name ILIKE ? OR description ILIKE ?)", pattern, pattern)
	}

	var rows []model.ProductModel
	if err := query.Order("featured DESC, sales DESC, created_at DESC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(rows))
	for i := range rows {
		products = append(products, toProductDomain(&rows[i]))
	}

	return products, nil
}

// Create inserts a product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)
	if productM.Rating.IsZero() {
		productM.Rating = entity.DefaultRating
	}

	if err := repo.db.WithContext(ctx).Omit("Profile").Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProfileNotFound.WrapMessage("invalid seller reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.Rating = productM.Rating
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Delete removes a product owned by the given profile.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID, profileID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", id, profileID).
		Delete(&model.ProductModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WrapMessage("product has orders or certifications")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// AddSales increments the sales counter in place.
func (repo *productRepository) AddSales(ctx context.Context, id uuid.UUID, units int) error {
	err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		UpdateColumn("sales", gorm.Expr("sales + ?", units)).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to add product sales")
	}

	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	product := &entity.Product{
		ID:               data.ID,
		ProfileID:        data.ProfileID,
		LegacyProducerID: data.LegacyProducerID,
		Name:             data.Name,
		Description:      data.Description,
		Category:         entity.Category(data.Category),
		Price:            data.Price,
		OriginalPrice:    data.OriginalPrice,
		ImageKey:         data.ImageKey,
		ProductionDate:   data.ProductionDate,
		LogisticsStatus:  data.LogisticsStatus,
		Stock:            data.Stock,
		Sales:            data.Sales,
		Rating:           data.Rating,
		Active:           data.Active,
		Featured:         data.Featured,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
	if data.Profile != nil {
		product.Profile = toProfileDomain(data.Profile)
	}

	return product
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:               data.ID,
		ProfileID:        data.ProfileID,
		LegacyProducerID: data.LegacyProducerID,
		Name:             data.Name,
		Description:      data.Description,
		Category:         string(data.Category),
		Price:            data.Price,
		OriginalPrice:    data.OriginalPrice,
		ImageKey:         data.ImageKey,
		ProductionDate:   data.ProductionDate,
		LogisticsStatus:  data.LogisticsStatus,
		Stock:            data.Stock,
		Sales:            data.Sales,
		Rating:           data.Rating,
		Active:           data.Active,
		Featured:         data.Featured,
	}
}
