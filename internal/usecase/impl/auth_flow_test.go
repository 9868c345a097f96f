package impl

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"sync"
	"testing"

	"gatehouse/config"
	"gatehouse/internal/domain/entity"
	domainerrors "gatehouse/internal/domain/errors"
	"gatehouse/internal/domain/repository"
	"gatehouse/internal/infra/auth"
	"gatehouse/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// memoryAccountRepo is an in-memory AccountRepository for exercising the full
// register -> verify -> login flow without a database.
type memoryAccountRepo struct {
	mu       sync.Mutex
	accounts map[string]*entity.Account
}

func newMemoryAccountRepo() *memoryAccountRepo {
	return &memoryAccountRepo{accounts: make(map[string]*entity.Account)}
}

func (r *memoryAccountRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, account := range r.accounts {
		if account.ID == id {
			copied := *account

			return &copied, nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

func (r *memoryAccountRepo) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[email]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}
	copied := *account

	return &copied, nil
}

func (r *memoryAccountRepo) Create(_ context.Context, account *entity.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[account.Email]; ok {
		return repository.ErrDuplicateEmail
	}
	account.ID = uuid.New()
	copied := *account
	r.accounts[account.Email] = &copied

	return nil
}

func (r *memoryAccountRepo) MarkVerified(_ context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if account, ok := r.accounts[email]; ok {
		account.Verified = true
	}

	return nil
}

// capturingMailer records sent messages instead of delivering them.
type capturingMailer struct {
	mu       sync.Mutex
	messages []string
}

func (m *capturingMailer) Send(_ context.Context, _, _, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, body)

	return nil
}

func newFlowTestService(t *testing.T) (usecase.AuthUsecase, *memoryAccountRepo, *capturingMailer) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Env.ServiceName = "gatehouse"
	cfg.App.BaseURL = "http://localhost:5000"
	cfg.SecretKey.Auth = "flow-test-secret"
	cfg.Auth = &config.AuthConfig{BcryptCost: bcrypt.MinCost}

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	repo := newMemoryAccountRepo()
	mailer := &capturingMailer{}

	service := NewAuthService(AuthServiceParams{
		AccountRepo: repo,
		Hasher:      auth.NewBcryptHasher(cfg),
		Tokens:      tokens,
		Mailer:      mailer,
		Config:      cfg,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return service, repo, mailer
}

var verifyLinkPattern = regexp.MustCompile(`http://localhost:5000/api/verify/(\S+)`)

func TestAuthFlow_RegisterVerifyLogin(t *testing.T) {
	service, _, mailer := newFlowTestService(t)
	ctx := context.Background()

	registered, err := service.Register(ctx, &usecase.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.Equal(t, usecase.NotificationSent, registered.Notification)
	assert.False(t, registered.Account.Verified)

	// Login before verification must be rejected.
	_, err = service.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "correct horse battery",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotVerified)

	// Pull the verification token out of the captured mail body.
	require.Len(t, mailer.messages, 1)
	match := verifyLinkPattern.FindStringSubmatch(mailer.messages[0])
	require.Len(t, match, 2)

	require.NoError(t, service.Verify(ctx, match[1]))

	// Verification is idempotent.
	require.NoError(t, service.Verify(ctx, match[1]))

	output, err := service.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, output.Token)
	assert.Equal(t, registered.Account.ID, output.Account.ID)

	// The session carries the account, which Profile resolves back.
	account, err := service.Account(ctx, output.Account.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", account.Email)
	assert.True(t, account.Verified)
}

func TestAuthFlow_DuplicateRegistration(t *testing.T) {
	service, _, _ := newFlowTestService(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "correct horse battery",
	}

	_, err := service.Register(ctx, input)
	require.NoError(t, err)

	_, err = service.Register(ctx, input)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateAccount)
}

func TestAuthFlow_WrongPasswordAfterVerification(t *testing.T) {
	service, _, mailer := newFlowTestService(t)
	ctx := context.Background()

	_, err := service.Register(ctx, &usecase.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	match := verifyLinkPattern.FindStringSubmatch(mailer.messages[0])
	require.Len(t, match, 2)
	require.NoError(t, service.Verify(ctx, match[1]))

	_, err = service.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "wrong horse battery",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthFlow_SessionTokenVerifiesForSameAccount(t *testing.T) {
	service, _, mailer := newFlowTestService(t)
	ctx := context.Background()

	cfg := &config.Config{}
	cfg.SecretKey.Auth = "flow-test-secret"
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	registered, err := service.Register(ctx, &usecase.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	match := verifyLinkPattern.FindStringSubmatch(mailer.messages[0])
	require.Len(t, match, 2)
	require.NoError(t, service.Verify(ctx, match[1]))

	output, err := service.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	claims, err := tokens.VerifySessionToken(output.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.Account.ID, claims.AccountID)
}
