package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"gatehouse/config"
	"gatehouse/internal/domain/entity"
	domainerrors "gatehouse/internal/domain/errors"
	"gatehouse/internal/domain/repository"
	mockRepo "gatehouse/internal/mocks/repository"
	mockService "gatehouse/internal/mocks/service"
	"gatehouse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceMocks struct {
	accountRepo *mockRepo.MockAccountRepository
	hasher      *mockService.MockPasswordHasher
	tokens      *mockService.MockTokenService
	mailer      *mockService.MockNotificationService
}

func newTestAuthService(t *testing.T) (usecase.AuthUsecase, authServiceMocks) {
	t.Helper()

	mocks := authServiceMocks{
		accountRepo: mockRepo.NewMockAccountRepository(t),
		hasher:      mockService.NewMockPasswordHasher(t),
		tokens:      mockService.NewMockTokenService(t),
		mailer:      mockService.NewMockNotificationService(t),
	}

	cfg := &config.Config{}
	cfg.Env.ServiceName = "gatehouse"
	cfg.App.BaseURL = "http://localhost:5000"

	service := NewAuthService(AuthServiceParams{
		AccountRepo: mocks.accountRepo,
		Hasher:      mocks.hasher,
		Tokens:      mocks.tokens,
		Mailer:      mocks.mailer,
		Config:      cfg,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return service, mocks
}

func TestAuthService_Register_Success(t *testing.T) {
	service, mocks := newTestAuthService(t)
	ctx := context.Background()

	accountID := uuid.New()

	mocks.hasher.EXPECT().Hash("hunter2hunter2").Return("$2a$10$hashed", nil)
	mocks.accountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(ctx context.Context, account *entity.Account) {
			account.ID = accountID
		}).
		Return(nil)
	mocks.tokens.EXPECT().IssueVerificationToken("alice@example.com").Return("verify-token", nil)
	mocks.mailer.EXPECT().
		Send(ctx, "alice@example.com", mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return(nil)

	output, err := service.Register(ctx, &usecase.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "hunter2hunter2",
	})

	require.NoError(t, err)
	assert.Equal(t, accountID, output.Account.ID)
	assert.Equal(t, "alice@example.com", output.Account.Email)
	assert.Equal(t, "$2a$10$hashed", output.Account.PasswordHash)
	assert.False(t, output.Account.Verified)
	assert.Equal(t, usecase.NotificationSent, output.Notification)
}

func TestAuthService_Register_VerificationLinkInBody(t *testing.T) {
	service, mocks := newTestAuthService(t)
	ctx := context.Background()

	var sentBody string

	mocks.hasher.EXPECT().Hash("hunter2hunter2").Return("$2a$10$hashed", nil)
	mocks.accountRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Account")).Return(nil)
	mocks.tokens.EXPECT().IssueVerificationToken("alice@example.com").Return("verify-token", nil)
	mocks.mailer.EXPECT().
		Send(ctx, "alice@example.com", mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Run(func(ctx context.Context, to, subject, body string) {
			sentBody = body
		}).
		Return(nil)

	_, err := service.Register(ctx, &usecase.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "hunter2hunter2",
	})

	require.NoError(t, err)
	assert.Contains(t, sentBody, "http://localhost:5000/api/verify/verify-token")
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	service, mocks := newTestAuthService(t)
	ctx := context.Background()

	mocks.hasher.EXPECT().Hash("hunter2hunter2").Return("$2a$10$hashed", nil)
	mocks.accountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Return(repository.ErrDuplicateEmail)

	output, err := service.Register(ctx, &usecase.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "hunter2hunter2",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateAccount)
}

func TestAuthService_Register_PersistFailure(t *testing.T) {
	service, mocks := newTestAuthService(t)
	ctx := context.Background()

	mocks.hasher.EXPECT().Hash("hunter2hunter2").Return("$2a$10$hashed", nil)
	mocks.accountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Return(errors.New("connection reset"))

	output, err := service.Register(ctx, &usecase.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "hunter2hunter2",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrRegistrationFailed)
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	service, mocks := newTestAuthService(t)
	ctx := context.Background()

	mocks.hasher.EXPECT().Hash("hunter2hunter2").Return("", errors.New("cost out of range"))

	output, err := service.Register(ctx, &usecase.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "hunter2hunter2",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrRegistrationFailed)
}

func TestAuthService_Register_MailFailureStillSucceeds(t *testing.T) {
	service, mocks := newTestAuthService(t)
	ctx := context.Background()

	mocks.hasher.EXPECT().Hash("hunter2hunter2").Return("$2a$10$hashed", nil)
	mocks.accountRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Account")).Return(nil)
	mocks.tokens.EXPECT().IssueVerificationToken("alice@example.com").Return("verify-token", nil)
	mocks.mailer.EXPECT().
		Send(ctx, "alice@example.com", mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return(errors.New("smtp relay down"))

	output, err := service.Register(ctx, &usecase.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "hunter2hunter2",
	})

	require.NoError(t, err)
	assert.Equal(t, usecase.NotificationFailed, output.Notification)
	assert.Equal(t, "alice@example.com", output.Account.Email)
}

func TestAuthService_Register_TokenIssueFailureStillSucceeds(t *testing.T) {
	service, mocks := newTestAuthService(t)
	ctx := context.Background()

	mocks.hasher.EXPECT().Hash("hunter2hunter2").Return("$2a$10$hashed", nil)
	mocks.accountRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Account")).Return(nil)
	mocks.tokens.EXPECT().IssueVerificationToken("alice@example.com").Return("", errors.New("empty secret"))

	output, err := service.Register(ctx, &usecase.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "hunter2hunter2",
	})

	require.NoError(t, err)
	assert.Equal(t, usecase.NotificationFailed, output.Notification)
}

func TestAuthService_Verify_Success(t *testing.T) {
	service, mocks := newTestAuthService(t)
	ctx := context.Background()

	mocks.tokens.EXPECT().VerifyVerificationToken("verify-token").Return("alice@example.com", nil)
	mocks.accountRepo.EXPECT().MarkVerified(ctx, "alice@example.com").Return(nil)

	err := service.Verify(ctx, "verify-token")

	require.NoError(t, err)
}

func TestAuthService_Verify_InvalidToken(t *testing.T) {
	service, mocks := newTestAuthService(t)
	ctx := context.Background()

	mocks.tokens.EXPECT().
		VerifyVerificationToken("garbage").
		Return("", errors.New("token signature is invalid"))

	err := service.Verify(ctx, "garbage")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrVerificationFailed)
}

func TestAuthService_Verify_UnknownEmailIsNoOp(t *testing.T) {
	service, mocks := newTestAuthService(t)
	ctx := context.Background()

	// The repository treats an unmatched email as a zero-row update, so a
	// token for a deleted account verifies without error.
	mocks.tokens.EXPECT().VerifyVerificationToken("verify-token").Return("gone@example.com", nil)
	mocks.accountRepo.EXPECT().MarkVerified(ctx, "gone@example.com").Return(nil)

	err := service.Verify(ctx, "verify-token")

	require.NoError(t, err)
}

func TestAuthService_Login_Success(t *testing.T) {
	service, mocks := newTestAuthService(t)
	ctx := context.Background()

	accountID := uuid.New()
	account := &entity.Account{
		ID:           accountID,
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$hashed",
		Verified:     true,
	}

	mocks.accountRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(account, nil)
	mocks.hasher.EXPECT().Check("hunter2hunter2", "$2a$10$hashed").Return(true, nil)
	mocks.tokens.EXPECT().IssueSessionToken(accountID).Return("session-token", nil)

	output, err := service.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "hunter2hunter2",
	})

	require.NoError(t, err)
	assert.Equal(t, "session-token", output.Token)
	assert.Equal(t, accountID, output.Account.ID)
}

func TestAuthService_Login_AccountNotFound(t *testing.T) {
	service, mocks := newTestAuthService(t)
	ctx := context.Background()

	mocks.accountRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrAccountNotFound)

	output, err := service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "hunter2hunter2",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestAuthService_Login_NotVerified(t *testing.T) {
	service, mocks := newTestAuthService(t)
	ctx := context.Background()

	account := &entity.Account{
		ID:           uuid.New(),
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$hashed",
		Verified:     false,
	}

	mocks.accountRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(account, nil)

	output, err := service.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "hunter2hunter2",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotVerified)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	service, mocks := newTestAuthService(t)
	ctx := context.Background()

	account := &entity.Account{
		ID:           uuid.New(),
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$hashed",
		Verified:     true,
	}

	mocks.accountRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(account, nil)
	mocks.hasher.EXPECT().Check("wrong-password", "$2a$10$hashed").Return(false, nil)

	output, err := service.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_MalformedStoredHash(t *testing.T) {
	service, mocks := newTestAuthService(t)
	ctx := context.Background()

	account := &entity.Account{
		ID:           uuid.New(),
		Email:        "alice@example.com",
		PasswordHash: "not-a-bcrypt-hash",
		Verified:     true,
	}

	mocks.accountRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(account, nil)
	mocks.hasher.EXPECT().
		Check("hunter2hunter2", "not-a-bcrypt-hash").
		Return(false, errors.New("hashedSecret too short"))

	output, err := service.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "hunter2hunter2",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Account_Success(t *testing.T) {
	service, mocks := newTestAuthService(t)
	ctx := context.Background()

	accountID := uuid.New()
	account := &entity.Account{ID: accountID, Email: "alice@example.com", Verified: true}

	mocks.accountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)

	got, err := service.Account(ctx, accountID)

	require.NoError(t, err)
	assert.Equal(t, account, got)
}

func TestAuthService_Account_NotFound(t *testing.T) {
	service, mocks := newTestAuthService(t)
	ctx := context.Background()

	accountID := uuid.New()

	mocks.accountRepo.EXPECT().FindByID(ctx, accountID).Return(nil, repository.ErrAccountNotFound)

	got, err := service.Account(ctx, accountID)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}
