package impl

import (
	"bytes"
	"context"
	"testing"

	"comerciojusto/internal/domain/entity"
	domainerrors "comerciojusto/internal/domain/errors"
	"comerciojusto/internal/domain/repository"
	"comerciojusto/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProfileService_Dashboard_Capability(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		fx := createTestProfileService(t)

		_, err := fx.service.Dashboard(context.Background(), nil)
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("no profile", func(t *testing.T) {
		fx := createTestProfileService(t)

		_, err := fx.service.Dashboard(context.Background(), &entity.User{ID: uuid.New()})
		assert.ErrorIs(t, err, domainerrors.ErrProfileRequired)
	})

	t.Run("role does not match profile kind", func(t *testing.T) {
		fx := createTestProfileService(t)
		user, profile := newTestSeller()
		user.Profile = &entity.Profile{Kind: entity.ProfileKindCompany}
		profile.Kind = entity.ProfileKindProducer

		fx.profileRepo.EXPECT().FindByUserID(mock.Anything, user.ID).Return(profile, nil)

		_, err := fx.service.Dashboard(context.Background(), user)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("superuser passes", func(t *testing.T) {
		fx := createTestProfileService(t)
		user, profile := newTestSeller()
		user.IsSuperuser = true
		user.Profile = &entity.Profile{Kind: entity.ProfileKindCompany}

		fx.profileRepo.EXPECT().FindByUserID(mock.Anything, user.ID).Return(profile, nil)
		fx.productRepo.EXPECT().List(mock.Anything, mock.Anything).Return(nil, nil)
		fx.orderRepo.EXPECT().ListBySeller(mock.Anything, profile.ID).Return(nil, nil)
		fx.certRepo.EXPECT().ListByProfile(mock.Anything, profile.ID).Return(nil, nil)

		_, err := fx.service.Dashboard(context.Background(), user)
		assert.NoError(t, err)
	})
}

func TestProfileService_CreateProduct_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   usecase.CreateProductInput
		wantErr error
	}{
		{name: "blank name", input: usecase.CreateProductInput{Name: " ", Price: decimal.NewFromInt(1)}, wantErr: domainerrors.ErrValidationFailed},
		{name: "zero price", input: usecase.CreateProductInput{Name: "A", Price: decimal.Zero}, wantErr: domainerrors.ErrValidationFailed},
		{name: "unknown category", input: usecase.CreateProductInput{Name: "A", Price: decimal.NewFromInt(1), Category: "carros"}, wantErr: domainerrors.ErrInvalidCategory},
		{name: "negative stock", input: usecase.CreateProductInput{Name: "A", Price: decimal.NewFromInt(1), Stock: -1}, wantErr: domainerrors.ErrValidationFailed},
		{
			name:    "not an image",
			input:   usecase.CreateProductInput{Name: "A", Price: decimal.NewFromInt(1), Image: &usecase.Upload{Filename: "foto.pdf"}},
			wantErr: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProfileService(t)
			user, profile := newTestSeller()
			input := tt.input
			input.User = user

			fx.profileRepo.EXPECT().FindByUserID(mock.Anything, user.ID).Return(profile, nil)

			_, err := fx.service.CreateProduct(context.Background(), &input)
			assert.ErrorIs(t, err, tt.wantErr)
			fx.productRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestProfileService_CreateProduct_DiscardsImageOnInsertError(t *testing.T) {
	fx := createTestProfileService(t)
	user, profile := newTestSeller()

	fx.profileRepo.EXPECT().FindByUserID(mock.Anything, user.ID).Return(profile, nil)
	fx.storage.EXPECT().Save(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("produtos/x.jpg", nil)
	fx.productRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("db error"))
	fx.storage.EXPECT().Delete(mock.Anything, "produtos/x.jpg").Return(nil)

	_, err := fx.service.CreateProduct(context.Background(), &usecase.CreateProductInput{
		User:  user,
		Name:  "Ovo caipira",
		Price: decimal.NewFromInt(12),
		Image: &usecase.Upload{Filename: "ovo.jpg", Size: 1, Content: bytes.NewReader(nil)},
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create product")
}

func TestProfileService_DeleteProduct_Ownership(t *testing.T) {
	fx := createTestProfileService(t)
	user, profile := newTestSeller()
	product := newTestProduct("Abóbora", "5.00")

	fx.profileRepo.EXPECT().FindByUserID(mock.Anything, user.ID).Return(profile, nil)
	fx.productRepo.EXPECT().FindByID(mock.Anything, product.ID).Return(product, nil)

	err := fx.service.DeleteProduct(context.Background(), user, product.ID)
	assert.ErrorIs(t, err, domainerrors.ErrProductOwnership)
	fx.productRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func TestProfileService_DeleteProduct_NotFound(t *testing.T) {
	fx := createTestProfileService(t)
	user, profile := newTestSeller()
	id := uuid.New()

	fx.profileRepo.EXPECT().FindByUserID(mock.Anything, user.ID).Return(profile, nil)
	fx.productRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrProductNotFound)

	err := fx.service.DeleteProduct(context.Background(), user, id)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProfileService_UpdateProfile_DiscardsNewLogoOnFailure(t *testing.T) {
	fx := createTestProfileService(t)
	user, profile := newTestSeller()
	profile.LogoKey = "logos/velho.png"

	fx.profileRepo.EXPECT().FindByUserID(mock.Anything, user.ID).Return(profile, nil)
	fx.storage.EXPECT().Save(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("logos/novo.png", nil)
	expectTx(fx.txManager, fx.factory)
	fx.txProfileRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(errors.New("db error"))
	fx.storage.EXPECT().Delete(mock.Anything, "logos/novo.png").Return(nil)

	_, err := fx.service.UpdateProfile(context.Background(), &usecase.UpdateProfileInput{
		User: user,
		Logo: &usecase.Upload{Filename: "novo.png", Size: 1, Content: bytes.NewReader(nil)},
	})
	assert.Error(t, err)
	fx.storage.AssertNotCalled(t, "Delete", mock.Anything, "logos/velho.png")
}

func TestProfileService_OpenFile_RejectsTraversal(t *testing.T) {
	fx := createTestProfileService(t)

	for _, key := range []string{"", "../etc/passwd", "logos/../../x"} {
		_, _, err := fx.service.OpenFile(context.Background(), key)
		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	}
}
