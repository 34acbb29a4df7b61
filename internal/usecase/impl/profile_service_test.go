package impl

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"comerciojusto/internal/domain/entity"
	mockRepo "comerciojusto/internal/mocks/repository"
	mockSvc "comerciojusto/internal/mocks/service"
	"comerciojusto/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type profileServiceFixtures struct {
	service       usecase.ProfileUsecase
	txManager     *mockRepo.MockTransactionManager
	factory       *mockRepo.MockRepositoryFactory
	profileRepo   *mockRepo.MockProfileRepository
	productRepo   *mockRepo.MockProductRepository
	orderRepo     *mockRepo.MockOrderRepository
	certRepo      *mockRepo.MockCertificationRepository
	txProfileRepo *mockRepo.MockProfileRepository
	txUserRepo    *mockRepo.MockUserRepository
	storage       *mockSvc.MockFileStorage
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	fx := profileServiceFixtures{
		txManager:     mockRepo.NewMockTransactionManager(t),
		factory:       mockRepo.NewMockRepositoryFactory(t),
		profileRepo:   mockRepo.NewMockProfileRepository(t),
		productRepo:   mockRepo.NewMockProductRepository(t),
		orderRepo:     mockRepo.NewMockOrderRepository(t),
		certRepo:      mockRepo.NewMockCertificationRepository(t),
		txProfileRepo: mockRepo.NewMockProfileRepository(t),
		txUserRepo:    mockRepo.NewMockUserRepository(t),
		storage:       mockSvc.NewMockFileStorage(t),
	}
	fx.factory.EXPECT().NewProfileRepository().Return(fx.txProfileRepo).Maybe()
	fx.factory.EXPECT().NewUserRepository().Return(fx.txUserRepo).Maybe()

	fx.service = NewProfileService(ProfileServiceParams{
		TxManager:   fx.txManager,
		ProfileRepo: fx.profileRepo,
		ProductRepo: fx.productRepo,
		OrderRepo:   fx.orderRepo,
		CertRepo:    fx.certRepo,
		Storage:     fx.storage,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	return fx
}

func ptr[T any](v T) *T {
	return &v
}

func TestProfileService_Dashboard(t *testing.T) {
	fx := createTestProfileService(t)
	user, profile := newTestSeller()
	products := []*entity.Product{newTestProduct("Alface", "3.00")}
	orders := []*entity.Order{{ID: uuid.New(), ProfileID: profile.ID, Status: entity.OrderRequested}}

	fx.profileRepo.EXPECT().FindByUserID(mock.Anything, user.ID).Return(profile, nil)
	fx.productRepo.EXPECT().List(mock.Anything, entity.ProductFilter{ProfileID: &profile.ID}).Return(products, nil)
	fx.orderRepo.EXPECT().ListBySeller(mock.Anything, profile.ID).Return(orders, nil)
	fx.certRepo.EXPECT().ListByProfile(mock.Anything, profile.ID).Return(nil, nil)

	out, err := fx.service.Dashboard(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, profile, out.Profile)
	assert.Equal(t, products, out.Products)
	assert.Equal(t, orders, out.Orders)
}

func TestProfileService_CreateProduct(t *testing.T) {
	fx := createTestProfileService(t)
	user, profile := newTestSeller()
	profile.Producer = &entity.Producer{ID: uuid.New(), ProfileID: profile.ID}

	fx.profileRepo.EXPECT().FindByUserID(mock.Anything, user.ID).Return(profile, nil)
	fx.storage.EXPECT().
		Save(mock.Anything, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "produtos/") && strings.HasSuffix(key, ".png")
		}), mock.Anything, "image/png").
		Return("produtos/1.png", nil)
	fx.productRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Product")).
		RunAndReturn(func(_ context.Context, p *entity.Product) error {
			p.ID = uuid.New()

			return nil
		})

	product, err := fx.service.CreateProduct(context.Background(), &usecase.CreateProductInput{
		User:        user,
		Name:        " Alface crespa ",
		Description: "Colhida hoje",
		Category:    entity.CategoryGreens,
		Price:       decimal.RequireFromString("3.50"),
		Stock:       10,
		Image:       &usecase.Upload{Filename: "Alface.PNG", Size: 100, ContentType: "image/png", Content: bytes.NewReader([]byte("png"))},
	})
	require.NoError(t, err)
	assert.Equal(t, "Alface crespa", product.Name)
	assert.Equal(t, profile.ID, product.ProfileID)
	assert.Equal(t, "produtos/1.png", product.ImageKey)
	assert.True(t, product.Active)
	assert.Equal(t, &profile.Producer.ID, product.LegacyProducerID)
}

func TestProfileService_DeleteProduct(t *testing.T) {
	fx := createTestProfileService(t)
	user, profile := newTestSeller()
	product := newTestProduct("Couve", "2.00")
	product.ProfileID = profile.ID
	product.ImageKey = "produtos/couve.jpg"

	fx.profileRepo.EXPECT().FindByUserID(mock.Anything, user.ID).Return(profile, nil)
	fx.productRepo.EXPECT().FindByID(mock.Anything, product.ID).Return(product, nil)
	fx.productRepo.EXPECT().Delete(mock.Anything, product.ID, profile.ID).Return(nil)
	fx.storage.EXPECT().Delete(mock.Anything, "produtos/couve.jpg").Return(nil)

	require.NoError(t, fx.service.DeleteProduct(context.Background(), user, product.ID))
}

func TestProfileService_UpdateProfile(t *testing.T) {
	fx := createTestProfileService(t)
	user, profile := newTestSeller()
	user.Name = "Antigo"
	profile.LogoKey = "logos/velho.png"

	fx.profileRepo.EXPECT().FindByUserID(mock.Anything, user.ID).Return(profile, nil)
	fx.storage.EXPECT().Save(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("logos/novo.webp", nil)
	expectTx(fx.txManager, fx.factory)
	fx.txProfileRepo.EXPECT().
		Update(mock.Anything, mock.MatchedBy(func(p *entity.Profile) bool {
			return p.City == "Viçosa" && p.State == "MG" && p.LogoKey == "logos/novo.webp" && p.Bio == ""
		})).
		Return(nil)
	fx.txUserRepo.EXPECT().
		Update(mock.Anything, mock.MatchedBy(func(u *entity.User) bool { return u.Name == "Novo Nome" })).
		Return(nil)
	fx.storage.EXPECT().Delete(mock.Anything, "logos/velho.png").Return(nil)

	updated, err := fx.service.UpdateProfile(context.Background(), &usecase.UpdateProfileInput{
		User:  user,
		Name:  ptr("Novo Nome"),
		City:  ptr(" Viçosa "),
		State: ptr("mg"),
		Logo:  &usecase.Upload{Filename: "logo.webp", Size: 10, Content: bytes.NewReader(nil)},
	})
	require.NoError(t, err)
	assert.Equal(t, "Novo Nome", updated.OwnerName)
	assert.Equal(t, "Antigo", user.Name)
}

func TestProfileService_OpenFile(t *testing.T) {
	fx := createTestProfileService(t)

	fx.storage.EXPECT().Open(mock.Anything, "logos/a.png").Return(io.NopCloser(strings.NewReader("png")), "image/png", nil)

	rc, contentType, err := fx.service.OpenFile(context.Background(), "logos/a.png")
	require.NoError(t, err)
	defer rc.Close()
	assert.Equal(t, "image/png", contentType)
}
