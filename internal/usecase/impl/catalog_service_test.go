package impl

import (
	"context"
	"testing"

	"comerciojusto/internal/domain/entity"
	domainerrors "comerciojusto/internal/domain/errors"
	"comerciojusto/internal/domain/repository"
	"comerciojusto/internal/domain/service"
	mockRepo "comerciojusto/internal/mocks/repository"
	mockSvc "comerciojusto/internal/mocks/service"
	"comerciojusto/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service       usecase.CatalogUsecase
	txManager     *mockRepo.MockTransactionManager
	factory       *mockRepo.MockRepositoryFactory
	productRepo   *mockRepo.MockProductRepository
	profileRepo   *mockRepo.MockProfileRepository
	certRepo      *mockRepo.MockCertificationRepository
	reviewRepo    *mockRepo.MockReviewRepository
	txProfileRepo *mockRepo.MockProfileRepository
	txReviewRepo  *mockRepo.MockReviewRepository
	qrCode        *mockSvc.MockQRCodeService
	cache         *mockSvc.MockCache
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	fx := catalogServiceFixtures{
		txManager:     mockRepo.NewMockTransactionManager(t),
		factory:       mockRepo.NewMockRepositoryFactory(t),
		productRepo:   mockRepo.NewMockProductRepository(t),
		profileRepo:   mockRepo.NewMockProfileRepository(t),
		certRepo:      mockRepo.NewMockCertificationRepository(t),
		reviewRepo:    mockRepo.NewMockReviewRepository(t),
		txProfileRepo: mockRepo.NewMockProfileRepository(t),
		txReviewRepo:  mockRepo.NewMockReviewRepository(t),
		qrCode:        mockSvc.NewMockQRCodeService(t),
		cache:         mockSvc.NewMockCache(t),
	}
	fx.factory.EXPECT().NewProfileRepository().Return(fx.txProfileRepo).Maybe()
	fx.factory.EXPECT().NewReviewRepository().Return(fx.txReviewRepo).Maybe()

	fx.service = NewCatalogService(CatalogServiceParams{
		TxManager:   fx.txManager,
		ProductRepo: fx.productRepo,
		ProfileRepo: fx.profileRepo,
		CertRepo:    fx.certRepo,
		ReviewRepo:  fx.reviewRepo,
		QRCode:      fx.qrCode,
		Cache:       fx.cache,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	return fx
}

func TestCatalogService_ListProducts(t *testing.T) {
	tests := []struct {
		name         string
		input        *usecase.ListProductsInput
		wantCategory entity.Category
		wantSearch   string
	}{
		{name: "known category", input: &usecase.ListProductsInput{Category: "frutas", Search: " manga "}, wantCategory: entity.CategoryFruits, wantSearch: "manga"},
		{name: "unknown category falls back", input: &usecase.ListProductsInput{Category: "eletronicos"}, wantCategory: entity.CategoryAll},
		{name: "empty query", input: &usecase.ListProductsInput{}, wantCategory: entity.CategoryAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCatalogService(t)
			products := []*entity.Product{newTestProduct("Manga", "6.00")}

			fx.productRepo.EXPECT().
				List(mock.Anything, entity.ProductFilter{Category: tt.wantCategory, Search: tt.wantSearch, OnlyActive: true}).
				Return(products, nil)

			out, err := fx.service.ListProducts(context.Background(), tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCategory, out.SelectedCategory)
			assert.Equal(t, products, out.Products)
			assert.Len(t, out.Categories, 6)
		})
	}
}

func TestCatalogService_GetProductDetail(t *testing.T) {
	fx := createTestCatalogService(t)
	product := newTestProduct("Doce de leite", "15.00")
	product.Profile = &entity.Profile{ID: product.ProfileID}
	certs := []*entity.Certification{{ID: uuid.New(), Status: entity.CertificationApproved}}

	fx.productRepo.EXPECT().FindByID(mock.Anything, product.ID).Return(product, nil)
	fx.reviewRepo.EXPECT().ListByProfile(mock.Anything, product.ProfileID, 0).Return(nil, nil)
	fx.certRepo.EXPECT().ListApproved(mock.Anything, product.ProfileID, &product.ID).Return(certs, nil)

	out, err := fx.service.GetProductDetail(context.Background(), product.ID)
	require.NoError(t, err)
	assert.True(t, out.Certified)
	assert.Equal(t, product.Profile, out.Seller)
}

func TestCatalogService_GetProductDetail_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)
	id := uuid.New()

	fx.productRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.GetProductDetail(context.Background(), id)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_AddReview_UpdatesRunningAverage(t *testing.T) {
	fx := createTestCatalogService(t)
	product := newTestProduct("Pão", "7.00")
	profile := &entity.Profile{ID: product.ProfileID, Rating: decimal.RequireFromString("4.00"), TotalReviews: 2}
	buyer := uuid.New()

	fx.productRepo.EXPECT().FindByID(mock.Anything, product.ID).Return(product, nil)
	expectTx(fx.txManager, fx.factory)
	fx.txProfileRepo.EXPECT().LockByID(mock.Anything, product.ProfileID).Return(profile, nil)
	fx.txReviewRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(r *entity.Review) bool {
			return r.ProfileID == profile.ID && r.UserID == buyer && r.Stars == 1 && r.Comment == "demorou"
		})).
		Return(nil)
	fx.txProfileRepo.EXPECT().
		UpdateRating(mock.Anything, profile.ID, mock.MatchedBy(func(d decimal.Decimal) bool {
			return d.Equal(decimal.NewFromInt(3))
		}), 3).
		Return(nil)
	fx.cache.EXPECT().Delete(mock.Anything, "perfil:"+profile.ID.String()).Return(nil)

	err := fx.service.AddReview(context.Background(), &usecase.AddReviewInput{
		ProductID: product.ID,
		UserID:    buyer,
		Stars:     1,
		Comment:   " demorou ",
	})
	require.NoError(t, err)
}

func TestCatalogService_AddReview_InvalidStars(t *testing.T) {
	for _, stars := range []int{0, 6, -1} {
		fx := createTestCatalogService(t)

		err := fx.service.AddReview(context.Background(), &usecase.AddReviewInput{ProductID: uuid.New(), Stars: stars})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidReview)
	}
}

func TestCatalogService_GetPublicProfile(t *testing.T) {
	t.Run("cache miss loads and stores", func(t *testing.T) {
		fx := createTestCatalogService(t)
		profile := &entity.Profile{ID: uuid.New(), Kind: entity.ProfileKindProducer}
		key := "perfil:" + profile.ID.String()

		fx.cache.EXPECT().Get(mock.Anything, key, mock.Anything).Return(service.ErrCacheMiss)
		fx.profileRepo.EXPECT().FindByID(mock.Anything, profile.ID).Return(profile, nil)
		fx.productRepo.EXPECT().
			List(mock.Anything, entity.ProductFilter{ProfileID: &profile.ID, OnlyActive: true}).
			Return([]*entity.Product{}, nil)
		fx.certRepo.EXPECT().ListApproved(mock.Anything, profile.ID, (*uuid.UUID)(nil)).Return(nil, nil)
		fx.reviewRepo.EXPECT().ListByProfile(mock.Anything, profile.ID, usecase.PublicProfileReviewLimit).Return(nil, nil)
		fx.cache.EXPECT().Set(mock.Anything, key, mock.AnythingOfType("*usecase.PublicProfileOutput"), newTestConfig().Cache.ProfileTTL).Return(nil)

		out, err := fx.service.GetPublicProfile(context.Background(), profile.ID)
		require.NoError(t, err)
		assert.Equal(t, profile, out.Profile)
	})

	t.Run("unknown profile", func(t *testing.T) {
		fx := createTestCatalogService(t)
		id := uuid.New()

		fx.cache.EXPECT().Get(mock.Anything, mock.Anything, mock.Anything).Return(service.ErrCacheMiss)
		fx.profileRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrProfileNotFound)

		_, err := fx.service.GetPublicProfile(context.Background(), id)
		assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
	})
}

func TestCatalogService_ProductQRCode(t *testing.T) {
	fx := createTestCatalogService(t)
	product := newTestProduct("Queijo", "20.00")
	png := []byte{0x89, 'P', 'N', 'G'}

	fx.productRepo.EXPECT().FindByID(mock.Anything, product.ID).Return(product, nil)
	fx.qrCode.EXPECT().GenerateProductQR(product.ID).Return(png, nil)

	got, err := fx.service.ProductQRCode(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, png, got)
}
