package impl

import (
	"context"
	"math"
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

type cartServiceFixtures struct {
	service     usecase.CartUsecase
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	cartRepo    *mockRepo.MockCartRepository
	txCartRepo  *mockRepo.MockCartRepository
	productRepo *mockRepo.MockProductRepository
}

func createTestCartService(t *testing.T, cache service.Cache) cartServiceFixtures {
	fx := cartServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		cartRepo:    mockRepo.NewMockCartRepository(t),
		txCartRepo:  mockRepo.NewMockCartRepository(t),
		productRepo: mockRepo.NewMockProductRepository(t),
	}
	fx.factory.EXPECT().NewCartRepository().Return(fx.txCartRepo).Maybe()

	fx.service = NewCartService(CartServiceParams{
		TxManager:   fx.txManager,
		CartRepo:    fx.cartRepo,
		ProductRepo: fx.productRepo,
		Cache:       cache,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	return fx
}

func TestCartService_AddItem_TwiceKeepsFirstSnapshot(t *testing.T) {
	fx := createTestCartService(t, nil)
	ctx := context.Background()
	owner := entity.SessionCartOwner("sess-1")
	product := newTestProduct("Alface", "3.50")
	cart := &entity.Cart{ID: uuid.New(), Owner: owner, Items: entity.CartItems{}}

	fx.productRepo.EXPECT().FindByID(mock.Anything, product.ID).Return(product, nil).Twice()
	expectTx(fx.txManager, fx.factory).Twice()
	fx.txCartRepo.EXPECT().LockOrCreate(mock.Anything, owner).Return(cart, nil).Twice()
	fx.txCartRepo.EXPECT().
		SaveItems(mock.Anything, cart.ID, mock.AnythingOfType("entity.CartItems")).
		Run(func(_ context.Context, _ uuid.UUID, items entity.CartItems) {
			cart.Items = items
		}).
		Return(nil).
		Twice()

	count, err := fx.service.AddItem(ctx, &usecase.AddCartItemInput{Owner: owner, ProductID: product.ID, Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	product.Price = decimal.RequireFromString("9.99")
	product.Name = "Alface Crespa"

	count, err = fx.service.AddItem(ctx, &usecase.AddCartItemInput{Owner: owner, ProductID: product.ID, Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	line := cart.Items[product.ID.String()]
	assert.Equal(t, 4, line.Quantity)
	assert.Equal(t, "Alface", line.Name)
	assert.True(t, line.Price.Equal(decimal.RequireFromString("3.50")))
}

func TestCartService_AddItem_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   *usecase.AddCartItemInput
		wantErr error
	}{
		{
			name:    "zero quantity",
			input:   &usecase.AddCartItemInput{Owner: entity.SessionCartOwner("s"), ProductID: uuid.New(), Quantity: 0},
			wantErr: domainerrors.ErrInvalidQuantity,
		},
		{
			name:    "above the line cap",
			input:   &usecase.AddCartItemInput{Owner: entity.SessionCartOwner("s"), ProductID: uuid.New(), Quantity: entity.MaxLineQuantity + 1},
			wantErr: domainerrors.ErrInvalidQuantity,
		},
		{
			name:    "max int",
			input:   &usecase.AddCartItemInput{Owner: entity.SessionCartOwner("s"), ProductID: uuid.New(), Quantity: math.MaxInt},
			wantErr: domainerrors.ErrInvalidQuantity,
		},
		{
			name:    "no owner",
			input:   &usecase.AddCartItemInput{ProductID: uuid.New(), Quantity: 1},
			wantErr: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCartService(t, nil)

			_, err := fx.service.AddItem(context.Background(), tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCartService_AddItem_UnknownProduct(t *testing.T) {
	fx := createTestCartService(t, nil)
	productID := uuid.New()

	fx.productRepo.EXPECT().FindByID(mock.Anything, productID).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.AddItem(context.Background(), &usecase.AddCartItemInput{
		Owner:     entity.SessionCartOwner("s"),
		ProductID: productID,
		Quantity:  1,
	})
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCartService_RemoveItem_AbsentIsNoop(t *testing.T) {
	fx := createTestCartService(t, nil)
	owner := entity.UserCartOwner(uuid.New())
	kept := uuid.NewString()
	cart := &entity.Cart{ID: uuid.New(), Owner: owner, Items: entity.CartItems{
		kept: {Quantity: 1, Price: decimal.NewFromInt(2), Name: "Tomate"},
	}}

	expectTx(fx.txManager, fx.factory)
	fx.txCartRepo.EXPECT().LockByOwner(mock.Anything, owner).Return(cart, nil)

	count, err := fx.service.RemoveItem(context.Background(), owner, uuid.NewString())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	fx.txCartRepo.AssertNotCalled(t, "SaveItems", mock.Anything, mock.Anything, mock.Anything)
}

func TestCartService_RemoveItem_NoCart(t *testing.T) {
	fx := createTestCartService(t, nil)
	owner := entity.SessionCartOwner("s")

	expectTx(fx.txManager, fx.factory)
	fx.txCartRepo.EXPECT().LockByOwner(mock.Anything, owner).Return(nil, repository.ErrCartNotFound)

	count, err := fx.service.RemoveItem(context.Background(), owner, uuid.NewString())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCartService_RemoveItem_Present(t *testing.T) {
	fx := createTestCartService(t, nil)
	owner := entity.SessionCartOwner("s")
	gone := uuid.NewString()
	cart := &entity.Cart{ID: uuid.New(), Owner: owner, Items: entity.CartItems{
		gone: {Quantity: 3, Price: decimal.NewFromInt(1), Name: "Couve"},
	}}

	expectTx(fx.txManager, fx.factory)
	fx.txCartRepo.EXPECT().LockByOwner(mock.Anything, owner).Return(cart, nil)
	fx.txCartRepo.EXPECT().SaveItems(mock.Anything, cart.ID, entity.CartItems{}).Return(nil)

	count, err := fx.service.RemoveItem(context.Background(), owner, gone)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCartService_MergeAnonymousCart(t *testing.T) {
	fx := createTestCartService(t, nil)
	userID := uuid.New()
	a, b := uuid.NewString(), uuid.NewString()

	anonymous := &entity.Cart{ID: uuid.New(), Owner: entity.SessionCartOwner("sess"), Items: entity.CartItems{
		a: {Quantity: 2, Price: decimal.NewFromInt(5), Name: "A"},
	}}
	userCart := &entity.Cart{ID: uuid.New(), Owner: entity.UserCartOwner(userID), Items: entity.CartItems{
		a: {Quantity: 1, Price: decimal.NewFromInt(4), Name: "A"},
		b: {Quantity: 3, Price: decimal.NewFromInt(7), Name: "B"},
	}}

	expectTx(fx.txManager, fx.factory)
	lockAnonymous := fx.txCartRepo.EXPECT().LockByOwner(mock.Anything, entity.SessionCartOwner("sess")).Return(anonymous, nil).Call
	fx.txCartRepo.EXPECT().LockOrCreate(mock.Anything, entity.UserCartOwner(userID)).Return(userCart, nil).NotBefore(lockAnonymous)

	var saved entity.CartItems
	fx.txCartRepo.EXPECT().
		SaveItems(mock.Anything, userCart.ID, mock.AnythingOfType("entity.CartItems")).
		Run(func(_ context.Context, _ uuid.UUID, items entity.CartItems) { saved = items }).
		Return(nil)
	fx.txCartRepo.EXPECT().Delete(mock.Anything, anonymous.ID).Return(nil)

	count, err := fx.service.MergeAnonymousCart(context.Background(), "sess", userID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, 3, saved[a].Quantity)
	assert.Equal(t, 3, saved[b].Quantity)
	assert.True(t, saved[a].Price.Equal(decimal.NewFromInt(4)))
}

func TestCartService_MergeAnonymousCart_EmptySessionCartIsDeleted(t *testing.T) {
	fx := createTestCartService(t, nil)
	userID := uuid.New()
	anonymous := &entity.Cart{ID: uuid.New(), Owner: entity.SessionCartOwner("sess"), Items: entity.CartItems{}}

	expectTx(fx.txManager, fx.factory)
	fx.txCartRepo.EXPECT().LockByOwner(mock.Anything, entity.SessionCartOwner("sess")).Return(anonymous, nil)
	fx.txCartRepo.EXPECT().Delete(mock.Anything, anonymous.ID).Return(nil)
	fx.cartRepo.EXPECT().FindByOwner(mock.Anything, entity.UserCartOwner(userID)).Return(nil, repository.ErrCartNotFound)

	count, err := fx.service.MergeAnonymousCart(context.Background(), "sess", userID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCartService_MergeAnonymousCart_NoSessionCart(t *testing.T) {
	fx := createTestCartService(t, nil)
	userID := uuid.New()
	existing := &entity.Cart{ID: uuid.New(), Items: entity.CartItems{uuid.NewString(): {Quantity: 1}}}

	expectTx(fx.txManager, fx.factory)
	fx.txCartRepo.EXPECT().LockByOwner(mock.Anything, entity.SessionCartOwner("sess")).Return(nil, repository.ErrCartNotFound)
	fx.cartRepo.EXPECT().FindByOwner(mock.Anything, entity.UserCartOwner(userID)).Return(existing, nil)

	count, err := fx.service.MergeAnonymousCart(context.Background(), "sess", userID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCartService_View_DropsDeletedProducts(t *testing.T) {
	fx := createTestCartService(t, nil)
	owner := entity.SessionCartOwner("s")
	live := newTestProduct("Banana", "4.00")
	deleted := uuid.New()
	cart := &entity.Cart{ID: uuid.New(), Owner: owner, Items: entity.CartItems{
		live.ID.String(): {Quantity: 2, Price: decimal.RequireFromString("3.00"), Name: "Banana"},
		deleted.String(): {Quantity: 1, Price: decimal.RequireFromString("10.00"), Name: "Sumiu"},
	}}

	fx.cartRepo.EXPECT().FindByOwner(mock.Anything, owner).Return(cart, nil)
	fx.productRepo.EXPECT().
		FindByIDs(mock.Anything, mock.AnythingOfType("[]uuid.UUID")).
		Return(map[uuid.UUID]*entity.Product{live.ID: live}, nil)

	view, err := fx.service.View(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, live.ID, view.Lines[0].ProductID)
	assert.True(t, view.Total.Equal(decimal.RequireFromString("6.00")))
}

func TestCartService_Count_UsesCache(t *testing.T) {
	cache := mockSvc.NewMockCache(t)
	fx := createTestCartService(t, cache)
	owner := entity.SessionCartOwner("s")

	cache.EXPECT().
		Get(mock.Anything, "carrinho:s:s", mock.Anything).
		Run(func(_ context.Context, _ string, dest any) {
			*(dest.(*int)) = 7
		}).
		Return(nil)

	count, err := fx.service.Count(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, 7, count)
}

func TestCartService_Count_MissLoadsAndStores(t *testing.T) {
	cache := mockSvc.NewMockCache(t)
	fx := createTestCartService(t, cache)
	userID := uuid.New()
	owner := entity.UserCartOwner(userID)
	key := "carrinho:u:" + userID.String()

	cache.EXPECT().Get(mock.Anything, key, mock.Anything).Return(service.ErrCacheMiss)
	fx.cartRepo.EXPECT().FindByOwner(mock.Anything, owner).Return(&entity.Cart{Items: entity.CartItems{"x": {}, "y": {}}}, nil)
	cache.EXPECT().Set(mock.Anything, key, 2, newTestConfig().Cache.CartCountTTL).Return(nil)

	count, err := fx.service.Count(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
