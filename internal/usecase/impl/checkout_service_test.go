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
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkoutServiceFixtures struct {
	service       usecase.CheckoutUsecase
	txManager     *mockRepo.MockTransactionManager
	factory       *mockRepo.MockRepositoryFactory
	cartRepo      *mockRepo.MockCartRepository
	productRepo   *mockRepo.MockProductRepository
	sessionRepo   *mockRepo.MockCheckoutSessionRepository
	txCartRepo    *mockRepo.MockCartRepository
	txProductRepo *mockRepo.MockProductRepository
	txProfileRepo *mockRepo.MockProfileRepository
	txOrderRepo   *mockRepo.MockOrderRepository
	txSessionRepo *mockRepo.MockCheckoutSessionRepository
	gateway       *mockSvc.MockPaymentGateway
	publisher     *mockSvc.MockEventPublisher
}

func createTestCheckoutService(t *testing.T) checkoutServiceFixtures {
	fx := checkoutServiceFixtures{
		txManager:     mockRepo.NewMockTransactionManager(t),
		factory:       mockRepo.NewMockRepositoryFactory(t),
		cartRepo:      mockRepo.NewMockCartRepository(t),
		productRepo:   mockRepo.NewMockProductRepository(t),
		sessionRepo:   mockRepo.NewMockCheckoutSessionRepository(t),
		txCartRepo:    mockRepo.NewMockCartRepository(t),
		txProductRepo: mockRepo.NewMockProductRepository(t),
		txProfileRepo: mockRepo.NewMockProfileRepository(t),
		txOrderRepo:   mockRepo.NewMockOrderRepository(t),
		txSessionRepo: mockRepo.NewMockCheckoutSessionRepository(t),
		gateway:       mockSvc.NewMockPaymentGateway(t),
		publisher:     mockSvc.NewMockEventPublisher(t),
	}
	fx.factory.EXPECT().NewCartRepository().Return(fx.txCartRepo).Maybe()
	fx.factory.EXPECT().NewProductRepository().Return(fx.txProductRepo).Maybe()
	fx.factory.EXPECT().NewProfileRepository().Return(fx.txProfileRepo).Maybe()
	fx.factory.EXPECT().NewOrderRepository().Return(fx.txOrderRepo).Maybe()
	fx.factory.EXPECT().NewCheckoutSessionRepository().Return(fx.txSessionRepo).Maybe()

	fx.service = NewCheckoutService(CheckoutServiceParams{
		TxManager:   fx.txManager,
		CartRepo:    fx.cartRepo,
		ProductRepo: fx.productRepo,
		SessionRepo: fx.sessionRepo,
		Gateway:     fx.gateway,
		Publisher:   fx.publisher,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	return fx
}

func TestCheckoutService_CreateCheckout_EmptyCart(t *testing.T) {
	tests := []struct {
		name string
		cart *entity.Cart
		err  error
	}{
		{name: "no cart", err: repository.ErrCartNotFound},
		{name: "empty cart", cart: &entity.Cart{ID: uuid.New(), Items: entity.CartItems{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCheckoutService(t)
			userID := uuid.New()
			fx.cartRepo.EXPECT().FindByOwner(mock.Anything, entity.UserCartOwner(userID)).Return(tt.cart, tt.err)

			out, err := fx.service.CreateCheckout(context.Background(), &usecase.CreateCheckoutInput{UserID: userID})
			assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)
			assert.Nil(t, out)
			fx.gateway.AssertNotCalled(t, "CreateCheckoutSession", mock.Anything, mock.Anything)
		})
	}
}

func TestCheckoutService_CreateCheckout_ChargesSnapshotInMinorUnits(t *testing.T) {
	fx := createTestCheckoutService(t)
	userID := uuid.New()
	product := newTestProduct("Mel silvestre", "25.00")
	cart := &entity.Cart{ID: uuid.New(), Items: entity.CartItems{
		product.ID.String(): {Quantity: 2, Price: decimal.RequireFromString("19.999"), Name: "Mel"},
	}}

	fx.cartRepo.EXPECT().FindByOwner(mock.Anything, entity.UserCartOwner(userID)).Return(cart, nil)
	fx.productRepo.EXPECT().
		FindByIDs(mock.Anything, []uuid.UUID{product.ID}).
		Return(map[uuid.UUID]*entity.Product{product.ID: product}, nil)
	fx.gateway.EXPECT().
		CreateCheckoutSession(mock.Anything, mock.AnythingOfType("*service.CheckoutRequest")).
		RunAndReturn(func(_ context.Context, req *service.CheckoutRequest) (*service.CheckoutSession, error) {
			require.Len(t, req.LineItems, 1)
			assert.Equal(t, int64(1999), req.LineItems[0].UnitAmount)
			assert.Equal(t, 2, req.LineItems[0].Quantity)
			assert.Equal(t, "Mel silvestre", req.LineItems[0].Name)
			assert.Equal(t, "brl", req.Currency)
			assert.Equal(t, testBaseURL+usecase.CheckoutSuccessPath, req.SuccessURL)
			assert.Equal(t, testBaseURL+usecase.CheckoutCancelPath, req.CancelURL)
			assert.Equal(t, userID.String(), req.Metadata["user_id"])

			return &service.CheckoutSession{ID: "cs_test_1", URL: "https://pay.example.com/cs_test_1"}, nil
		})
	fx.sessionRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(s *entity.CheckoutSession) bool {
			return s.ID == "cs_test_1" && s.UserID == userID && s.AmountTotal == 3998
		})).
		Return(nil)

	out, err := fx.service.CreateCheckout(context.Background(), &usecase.CreateCheckoutInput{UserID: userID, Email: "a@b.com"})
	require.NoError(t, err)
	assert.Equal(t, "cs_test_1", out.SessionID)
	assert.Equal(t, "https://pay.example.com/cs_test_1", out.RedirectURL)
}

func TestCheckoutService_CreateCheckout_MissingProductAborts(t *testing.T) {
	fx := createTestCheckoutService(t)
	userID := uuid.New()
	cart := &entity.Cart{ID: uuid.New(), Items: entity.CartItems{
		uuid.NewString(): {Quantity: 1, Price: decimal.NewFromInt(3), Name: "Sumiu"},
	}}

	fx.cartRepo.EXPECT().FindByOwner(mock.Anything, mock.Anything).Return(cart, nil)
	fx.productRepo.EXPECT().FindByIDs(mock.Anything, mock.Anything).Return(map[uuid.UUID]*entity.Product{}, nil)

	_, err := fx.service.CreateCheckout(context.Background(), &usecase.CreateCheckoutInput{UserID: userID})
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	fx.gateway.AssertNotCalled(t, "CreateCheckoutSession", mock.Anything, mock.Anything)
}

func TestCheckoutService_CreateCheckout_ProcessorError(t *testing.T) {
	fx := createTestCheckoutService(t)
	userID := uuid.New()
	product := newTestProduct("Café", "30.00")
	cart := &entity.Cart{ID: uuid.New(), Items: entity.CartItems{
		product.ID.String(): {Quantity: 1, Price: product.Price, Name: product.Name},
	}}

	fx.cartRepo.EXPECT().FindByOwner(mock.Anything, mock.Anything).Return(cart, nil)
	fx.productRepo.EXPECT().FindByIDs(mock.Anything, mock.Anything).Return(map[uuid.UUID]*entity.Product{product.ID: product}, nil)
	fx.gateway.EXPECT().CreateCheckoutSession(mock.Anything, mock.Anything).Return(nil, errors.New("card_declined"))

	_, err := fx.service.CreateCheckout(context.Background(), &usecase.CreateCheckoutInput{UserID: userID})
	assert.ErrorIs(t, err, domainerrors.ErrPaymentProcessor)
	fx.sessionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCheckoutService_HandleWebhook_InvalidSignature(t *testing.T) {
	fx := createTestCheckoutService(t)
	payload := []byte(`{"type":"checkout.session.completed"}`)

	fx.gateway.EXPECT().ParseWebhook(payload, "t=1,v1=bad").Return(nil, domainerrors.ErrInvalidWebhookSignature.WrapMessage("bad signature"))

	out, err := fx.service.HandleWebhook(context.Background(), &usecase.WebhookInput{Payload: payload, Signature: "t=1,v1=bad"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidWebhookSignature)
	assert.Nil(t, out)
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestCheckoutService_HandleWebhook_IgnoresOtherEvents(t *testing.T) {
	tests := []struct {
		name  string
		event *service.WebhookEvent
	}{
		{name: "other type", event: &service.WebhookEvent{Type: "payment_intent.created"}},
		{name: "unpaid", event: &service.WebhookEvent{Type: service.EventCheckoutSessionCompleted, SessionID: "cs_1", PaymentStatus: "unpaid"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCheckoutService(t)
			fx.gateway.EXPECT().ParseWebhook(mock.Anything, mock.Anything).Return(tt.event, nil)

			out, err := fx.service.HandleWebhook(context.Background(), &usecase.WebhookInput{})
			require.NoError(t, err)
			assert.False(t, out.Processed)
			assert.Equal(t, tt.event.Type, out.EventType)
		})
	}
}

func TestCheckoutService_HandleWebhook_ReplayCreatesOrdersOnce(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	buyerID := uuid.New()
	apple := newTestProduct("Maçã", "4.00")
	honey := newTestProduct("Mel", "20.00")
	later := uuid.NewString()

	event := &service.WebhookEvent{
		Type:          service.EventCheckoutSessionCompleted,
		SessionID:     "cs_replay",
		PaymentStatus: "paid",
		AmountTotal:   2800,
		Metadata:      map[string]string{"user_id": buyerID.String()},
	}
	open := &entity.CheckoutSession{
		ID:     "cs_replay",
		UserID: buyerID,
		Status: entity.CheckoutSessionOpen,
		Items: entity.CartItems{
			apple.ID.String(): {Quantity: 2, Price: apple.Price, Name: apple.Name},
			honey.ID.String(): {Quantity: 1, Price: honey.Price, Name: honey.Name},
		},
	}
	completed := *open
	completed.Status = entity.CheckoutSessionCompleted
	buyerCart := &entity.Cart{ID: uuid.New(), Items: open.Items.Clone()}
	buyerCart.Items[later] = entity.CartItem{Quantity: 1, Price: decimal.NewFromInt(1), Name: "Depois"}

	fx.gateway.EXPECT().ParseWebhook(mock.Anything, mock.Anything).Return(event, nil).Twice()
	expectTx(fx.txManager, fx.factory).Twice()
	fx.txSessionRepo.EXPECT().LockByID(mock.Anything, "cs_replay").Return(open, nil).Once()
	fx.txSessionRepo.EXPECT().LockByID(mock.Anything, "cs_replay").Return(&completed, nil).Once()

	fx.txProductRepo.EXPECT().FindByIDs(mock.Anything, mock.Anything).
		Return(map[uuid.UUID]*entity.Product{apple.ID: apple, honey.ID: honey}, nil)
	fx.txOrderRepo.EXPECT().CreateIfAbsent(mock.Anything, mock.AnythingOfType("*entity.Order")).
		RunAndReturn(func(_ context.Context, order *entity.Order) (bool, error) {
			assert.Equal(t, "cs_replay", order.CheckoutSessionID)
			assert.Equal(t, buyerID, order.BuyerID)
			assert.Equal(t, entity.OrderRequested, order.Status)
			order.ID = uuid.New()

			return true, nil
		}).Twice()
	fx.txProductRepo.EXPECT().AddSales(mock.Anything, apple.ID, 2).Return(nil).Once()
	fx.txProductRepo.EXPECT().AddSales(mock.Anything, honey.ID, 1).Return(nil).Once()
	fx.txProfileRepo.EXPECT().AddSales(mock.Anything, apple.ProfileID, 2).Return(nil).Once()
	fx.txProfileRepo.EXPECT().AddSales(mock.Anything, honey.ProfileID, 1).Return(nil).Once()
	fx.txCartRepo.EXPECT().LockByOwner(mock.Anything, entity.UserCartOwner(buyerID)).Return(buyerCart, nil).Once()
	fx.txCartRepo.EXPECT().SaveItems(mock.Anything, buyerCart.ID, entity.CartItems{later: buyerCart.Items[later]}).Return(nil).Once()
	fx.txSessionRepo.EXPECT().MarkCompleted(mock.Anything, "cs_replay", mock.Anything).Return(nil).Once()
	fx.publisher.EXPECT().
		PublishOrderConfirmed(mock.Anything, mock.MatchedBy(func(e *service.OrderConfirmedEvent) bool {
			return e.CheckoutSessionID == "cs_replay" && len(e.OrderIDs) == 2 && e.AmountTotal == 2800
		})).
		Return(nil).
		Once()

	first, err := fx.service.HandleWebhook(ctx, &usecase.WebhookInput{Payload: []byte("{}"), Signature: "sig"})
	require.NoError(t, err)
	assert.True(t, first.Processed)
	assert.False(t, first.Duplicate)
	assert.Equal(t, 2, first.OrdersCreated)

	second, err := fx.service.HandleWebhook(ctx, &usecase.WebhookInput{Payload: []byte("{}"), Signature: "sig"})
	require.NoError(t, err)
	assert.True(t, second.Processed)
	assert.True(t, second.Duplicate)
	assert.Zero(t, second.OrdersCreated)
}

func TestCheckoutService_HandleWebhook_MissingSnapshotUsesCart(t *testing.T) {
	fx := createTestCheckoutService(t)
	buyerID := uuid.New()
	product := newTestProduct("Queijo", "12.00")
	buyerCart := &entity.Cart{ID: uuid.New(), Items: entity.CartItems{
		product.ID.String(): {Quantity: 1, Price: product.Price, Name: product.Name},
	}}
	event := &service.WebhookEvent{
		Type:      service.EventCheckoutSessionCompleted,
		SessionID: "cs_orphan",
		Metadata:  map[string]string{"user_id": buyerID.String()},
	}

	fx.gateway.EXPECT().ParseWebhook(mock.Anything, mock.Anything).Return(event, nil)
	expectTx(fx.txManager, fx.factory)
	fx.txSessionRepo.EXPECT().LockByID(mock.Anything, "cs_orphan").Return(nil, repository.ErrCheckoutSessionNotFound)
	fx.txCartRepo.EXPECT().LockByOwner(mock.Anything, entity.UserCartOwner(buyerID)).Return(buyerCart, nil).Twice()
	fx.txSessionRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(s *entity.CheckoutSession) bool {
			return s.ID == "cs_orphan" && s.UserID == buyerID && s.Currency == "brl" && len(s.Items) == 1
		})).
		Return(nil)
	fx.txProductRepo.EXPECT().FindByIDs(mock.Anything, []uuid.UUID{product.ID}).
		Return(map[uuid.UUID]*entity.Product{product.ID: product}, nil)
	fx.txOrderRepo.EXPECT().CreateIfAbsent(mock.Anything, mock.Anything).Return(true, nil)
	fx.txProductRepo.EXPECT().AddSales(mock.Anything, product.ID, 1).Return(nil)
	fx.txProfileRepo.EXPECT().AddSales(mock.Anything, product.ProfileID, 1).Return(nil)
	fx.txCartRepo.EXPECT().SaveItems(mock.Anything, buyerCart.ID, entity.CartItems{}).Return(nil)
	fx.txSessionRepo.EXPECT().MarkCompleted(mock.Anything, "cs_orphan", mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishOrderConfirmed(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	out, err := fx.service.HandleWebhook(context.Background(), &usecase.WebhookInput{})
	require.NoError(t, err)
	assert.Equal(t, 1, out.OrdersCreated)
}

func TestCheckoutService_HandleWebhook_MissingSnapshotWithoutUser(t *testing.T) {
	fx := createTestCheckoutService(t)
	event := &service.WebhookEvent{Type: service.EventCheckoutSessionCompleted, SessionID: "cs_anon"}

	fx.gateway.EXPECT().ParseWebhook(mock.Anything, mock.Anything).Return(event, nil)
	expectTx(fx.txManager, fx.factory)
	fx.txSessionRepo.EXPECT().LockByID(mock.Anything, "cs_anon").Return(nil, repository.ErrCheckoutSessionNotFound)

	_, err := fx.service.HandleWebhook(context.Background(), &usecase.WebhookInput{})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidWebhookPayload)
}
