package impl

import (
	"bytes"
	"context"
	"testing"
	"time"

	"comerciojusto/internal/domain/entity"
	domainerrors "comerciojusto/internal/domain/errors"
	"comerciojusto/internal/domain/repository"
	mockRepo "comerciojusto/internal/mocks/repository"
	mockSvc "comerciojusto/internal/mocks/service"
	"comerciojusto/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type certificationServiceFixtures struct {
	service     usecase.CertificationUsecase
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	profileRepo *mockRepo.MockProfileRepository
	productRepo *mockRepo.MockProductRepository
	certRepo    *mockRepo.MockCertificationRepository
	txCertRepo  *mockRepo.MockCertificationRepository
	storage     *mockSvc.MockFileStorage
}

func createTestCertificationService(t *testing.T) certificationServiceFixtures {
	fx := certificationServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		profileRepo: mockRepo.NewMockProfileRepository(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		certRepo:    mockRepo.NewMockCertificationRepository(t),
		txCertRepo:  mockRepo.NewMockCertificationRepository(t),
		storage:     mockSvc.NewMockFileStorage(t),
	}
	fx.factory.EXPECT().NewCertificationRepository().Return(fx.txCertRepo).Maybe()

	fx.service = NewCertificationService(CertificationServiceParams{
		TxManager:   fx.txManager,
		ProfileRepo: fx.profileRepo,
		ProductRepo: fx.productRepo,
		CertRepo:    fx.certRepo,
		Storage:     fx.storage,
		Logger:      newDiscardLogger(),
	})

	return fx
}

func TestCertificationService_Submit(t *testing.T) {
	fx := createTestCertificationService(t)
	user, profile := newTestSeller()
	product := newTestProduct("Café especial", "40.00")
	product.ProfileID = profile.ID
	validUntil := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)

	fx.profileRepo.EXPECT().FindByUserID(mock.Anything, user.ID).Return(profile, nil)
	fx.productRepo.EXPECT().FindByID(mock.Anything, product.ID).Return(product, nil)
	fx.storage.EXPECT().
		Save(mock.Anything, mock.MatchedBy(func(key string) bool {
			return len(key) > len("certificados/") && key[:len("certificados/")] == "certificados/"
		}), mock.Anything, "application/pdf").
		Return("certificados/abc.pdf", nil)
	fx.certRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Certification")).
		RunAndReturn(func(_ context.Context, cert *entity.Certification) error {
			cert.ID = uuid.New()

			return nil
		})

	cert, err := fx.service.Submit(context.Background(), &usecase.SubmitCertificationInput{
		User:       user,
		ProductID:  product.ID,
		ValidUntil: &validUntil,
		File: &usecase.Upload{
			Filename:    "laudo.pdf",
			Size:        1024,
			ContentType: "application/pdf",
			Content:     bytes.NewReader([]byte("%PDF-1.4")),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.CertificationSubmitted, cert.Status)
	assert.Equal(t, "certificados/abc.pdf", cert.FileKey)
	assert.Equal(t, profile.ID, cert.ProfileID)
	assert.Equal(t, &validUntil, cert.ValidUntil)
}

func TestCertificationService_Submit_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		file        *usecase.Upload
		loadProduct bool
		wantErr     error
	}{
		{
			name:    "executable file",
			file:    &usecase.Upload{Filename: "laudo.exe", Size: 10},
			wantErr: domainerrors.ErrInvalidCertificateFile,
		},
		{
			name:    "file too large",
			file:    &usecase.Upload{Filename: "laudo.pdf", Size: entity.MaxCertificateSize + 1},
			wantErr: domainerrors.ErrCertificateTooLarge,
		},
		{
			name:    "missing file",
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:        "product of another seller",
			file:        &usecase.Upload{Filename: "laudo.png", Size: 10},
			loadProduct: true,
			wantErr:     domainerrors.ErrProductOwnership,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCertificationService(t)
			user, profile := newTestSeller()
			product := newTestProduct("Feijão", "8.00")

			fx.profileRepo.EXPECT().FindByUserID(mock.Anything, user.ID).Return(profile, nil)
			if tt.loadProduct {
				fx.productRepo.EXPECT().FindByID(mock.Anything, product.ID).Return(product, nil)
			}

			_, err := fx.service.Submit(context.Background(), &usecase.SubmitCertificationInput{
				User:      user,
				ProductID: product.ID,
				File:      tt.file,
			})
			assert.ErrorIs(t, err, tt.wantErr)
			fx.storage.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestCertificationService_Submit_RequiresProfile(t *testing.T) {
	fx := createTestCertificationService(t)

	_, err := fx.service.Submit(context.Background(), &usecase.SubmitCertificationInput{
		User: &entity.User{ID: uuid.New()},
		File: &usecase.Upload{Filename: "laudo.pdf", Size: 1},
	})
	assert.ErrorIs(t, err, domainerrors.ErrProfileRequired)

	_, err = fx.service.Submit(context.Background(), &usecase.SubmitCertificationInput{})
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestCertificationService_Submit_DeletesFileWhenInsertFails(t *testing.T) {
	fx := createTestCertificationService(t)
	user, profile := newTestSeller()
	product := newTestProduct("Arroz", "9.00")
	product.ProfileID = profile.ID

	fx.profileRepo.EXPECT().FindByUserID(mock.Anything, user.ID).Return(profile, nil)
	fx.productRepo.EXPECT().FindByID(mock.Anything, product.ID).Return(product, nil)
	fx.storage.EXPECT().Save(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("certificados/x.pdf", nil)
	fx.certRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("insert failed"))
	fx.storage.EXPECT().Delete(mock.Anything, "certificados/x.pdf").Return(nil)

	_, err := fx.service.Submit(context.Background(), &usecase.SubmitCertificationInput{
		User:      user,
		ProductID: product.ID,
		File:      &usecase.Upload{Filename: "laudo.pdf", Size: 1, Content: bytes.NewReader(nil)},
	})
	assert.Error(t, err)
}

func TestCertificationService_Review_RequiresAdmin(t *testing.T) {
	fx := createTestCertificationService(t)
	seller, _ := newTestSeller()

	_, err := fx.service.Review(context.Background(), &usecase.ReviewCertificationInput{
		Reviewer:        seller,
		CertificationID: uuid.New(),
		Action:          usecase.CertificationActionApprove,
	})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)

	_, err = fx.service.ListPending(context.Background(), seller)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestCertificationService_Review_StaffIsNotEnough(t *testing.T) {
	fx := createTestCertificationService(t)
	staff := &entity.User{ID: uuid.New(), IsStaff: true, IsSuperuser: false}

	_, err := fx.service.Review(context.Background(), &usecase.ReviewCertificationInput{
		Reviewer:        staff,
		CertificationID: uuid.New(),
		Action:          usecase.CertificationActionApprove,
	})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	fx.txCertRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)

	_, err = fx.service.ListPending(context.Background(), staff)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	fx.certRepo.AssertNotCalled(t, "ListByStatus", mock.Anything, mock.Anything)
}

func TestCertificationService_Review_Approve(t *testing.T) {
	fx := createTestCertificationService(t)
	admin := newTestAdmin()
	submittedUntil := time.Date(2027, 6, 1, 0, 0, 0, 0, time.UTC)
	cert := &entity.Certification{
		ID:         uuid.New(),
		ProfileID:  uuid.New(),
		ProductID:  uuid.New(),
		Status:     entity.CertificationSubmitted,
		ValidUntil: &submittedUntil,
	}

	expectTx(fx.txManager, fx.factory)
	fx.txCertRepo.EXPECT().LockByID(mock.Anything, cert.ID).Return(cert, nil)
	fx.txCertRepo.EXPECT().Update(mock.Anything, cert).Return(nil)

	reviewed, err := fx.service.Review(context.Background(), &usecase.ReviewCertificationInput{
		Reviewer:        admin,
		CertificationID: cert.ID,
		Action:          usecase.CertificationActionApprove,
		Opinion:         "Documentação completa",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.CertificationApproved, reviewed.Status)
	assert.Equal(t, admin.ID, *reviewed.ReviewerID)
	assert.Equal(t, "Documentação completa", reviewed.Opinion)
	assert.NotNil(t, reviewed.IssuedAt)
	assert.Equal(t, submittedUntil, *reviewed.ValidUntil)
}

func TestCertificationService_Review_TerminalStatesAreFinal(t *testing.T) {
	for _, status := range []entity.CertificationStatus{entity.CertificationRejected, entity.CertificationApproved} {
		t.Run(string(status), func(t *testing.T) {
			fx := createTestCertificationService(t)
			cert := &entity.Certification{ID: uuid.New(), Status: status}

			expectTx(fx.txManager, fx.factory)
			fx.txCertRepo.EXPECT().LockByID(mock.Anything, cert.ID).Return(cert, nil)

			_, err := fx.service.Review(context.Background(), &usecase.ReviewCertificationInput{
				Reviewer:        newTestAdmin(),
				CertificationID: cert.ID,
				Action:          usecase.CertificationActionApprove,
			})
			assert.ErrorIs(t, err, domainerrors.ErrCertificationTransition)
			assert.Equal(t, status, cert.Status)
			fx.txCertRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		})
	}
}

func TestCertificationService_Review_UnknownActionAndMissing(t *testing.T) {
	fx := createTestCertificationService(t)
	admin := newTestAdmin()

	_, err := fx.service.Review(context.Background(), &usecase.ReviewCertificationInput{Reviewer: admin, Action: "talvez"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	certID := uuid.New()
	expectTx(fx.txManager, fx.factory)
	fx.txCertRepo.EXPECT().LockByID(mock.Anything, certID).Return(nil, repository.ErrCertificationNotFound)

	_, err = fx.service.Review(context.Background(), &usecase.ReviewCertificationInput{
		Reviewer:        admin,
		CertificationID: certID,
		Action:          usecase.CertificationActionReject,
	})
	assert.ErrorIs(t, err, domainerrors.ErrCertificationNotFound)
}

func TestCertificationService_ListPending(t *testing.T) {
	fx := createTestCertificationService(t)
	pending := []*entity.Certification{{ID: uuid.New(), Status: entity.CertificationSubmitted}}

	fx.certRepo.EXPECT().ListByStatus(mock.Anything, entity.CertificationSubmitted).Return(pending, nil)

	got, err := fx.service.ListPending(context.Background(), &entity.User{ID: uuid.New(), IsSuperuser: true})
	require.NoError(t, err)
	assert.Equal(t, pending, got)
}
