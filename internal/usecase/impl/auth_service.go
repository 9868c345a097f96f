// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"

	"gatehouse/config"
	deliverycontext "gatehouse/internal/delivery/context"
	"gatehouse/internal/domain/entity"
	domainerrors "gatehouse/internal/domain/errors"
	"gatehouse/internal/domain/repository"
	"gatehouse/internal/domain/service"
	"gatehouse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface. It drives each account
// through the Unregistered -> PendingVerification -> Verified state machine.
type authService struct {
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	tokens      service.TokenService
	mailer      service.NotificationService
	baseURL     string
	serviceName string
	logger      *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	Tokens      service.TokenService
	Mailer      service.NotificationService
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		tokens:      params.Tokens,
		mailer:      params.Mailer,
		baseURL:     params.Config.App.BaseURL,
		serviceName: params.Config.Env.ServiceName,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new unverified account and sends a verification link.
//
// The store's unique email constraint is the sole arbiter of duplicates:
// there is no find-then-create, so two concurrent registrations with the
// same email cannot both succeed. Mail delivery is best-effort; a send
// failure is reported in the output, never as a failed registration.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrRegistrationFailed.WrapMessage("failed to hash password")
	}

	account := &entity.Account{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	if err := srv.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			srv.log(ctx).Warn("Registration rejected, email already taken", slog.String("email", input.Email))

			return nil, domainerrors.ErrDuplicateAccount.WrapMessage("email already registered")
		}
		srv.log(ctx).Error("Failed to persist account during registration", slog.String("email", input.Email), slog.Any("error", err))

		return nil, domainerrors.ErrRegistrationFailed.WrapMessage("failed to persist account")
	}

	output := &usecase.RegisterOutput{
		Account:      account,
		Notification: usecase.NotificationSent,
	}

	if err := srv.sendVerificationMail(ctx, account); err != nil {
		// The account exists either way; surface the delivery state instead
		// of failing the registration.
		srv.log(ctx).Warn("Failed to send verification mail",
			slog.String("email", input.Email), slog.Any("error", err))
		output.Notification = usecase.NotificationFailed
	}

	srv.log(ctx).Debug("Registration completed",
		slog.Any("accountID", account.ID),
		slog.String("notification", string(output.Notification)))

	return output, nil
}

func (srv *authService) sendVerificationMail(ctx context.Context, account *entity.Account) error {
	token, err := srv.tokens.IssueVerificationToken(account.Email)
	if err != nil {
		return errors.Wrap(err, "failed to issue verification token")
	}

	link := fmt.Sprintf("%s/api/verify/%s", srv.baseURL, token)
	subject := fmt.Sprintf("Confirm your %s account", srv.serviceName)
	body := fmt.Sprintf("Hello %s,\n\nClick the link below to confirm your account:\n\n%s\n", account.Name, link)

	if err := srv.mailer.Send(ctx, account.Email, subject, body); err != nil {
		return errors.Wrap(err, "failed to send verification message")
	}

	return nil
}

// Verify consumes a verification token and marks the matching account verified.
//
// Re-verifying an already-verified account is a harmless true->true write,
// and a token for an email that no longer resolves to an account is a
// silent no-op.
func (srv *authService) Verify(ctx context.Context, token string) error {
	email, err := srv.tokens.VerifyVerificationToken(token)
	if err != nil {
		srv.log(ctx).Warn("Verification failed", slog.Any("error", err))

		return domainerrors.ErrVerificationFailed.WrapMessage(err.Error())
	}

	if err := srv.accountRepo.MarkVerified(ctx, email); err != nil {
		srv.log(ctx).Error("Failed to mark account verified", slog.String("email", email), slog.Any("error", err))

		return errors.Wrap(err, "failed to mark account verified")
	}

	srv.log(ctx).Info("Account verified", slog.String("email", email))

	return nil
}

// Login checks credentials against a verified account and issues a session token.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Warn("Login failed, account not found", slog.String("email", input.Email))

			return nil, domainerrors.ErrAccountNotFound.WrapMessage("no account for this email")
		}
		srv.log(ctx).Error("Failed to load account during login", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load account")
	}

	if !account.Verified {
		srv.log(ctx).Warn("Login rejected, account not verified", slog.String("email", input.Email))

		return nil, domainerrors.ErrAccountNotVerified.WrapMessage("account pending verification")
	}

	// bcrypt comparison is CPU-bound and constant-ish time; a mismatch is a
	// clean false, an error means the stored hash is unreadable.
	match, err := srv.hasher.Check(input.Password, account.PasswordHash)
	if err != nil {
		srv.log(ctx).Error("Stored password hash is malformed", slog.Any("accountID", account.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to check password")
	}
	if !match {
		srv.log(ctx).Warn("Login failed, password mismatch", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	token, err := srv.tokens.IssueSessionToken(account.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session token", slog.Any("accountID", account.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Debug("Login succeeded", slog.Any("accountID", account.ID))

	return &usecase.LoginOutput{
		Token:   token,
		Account: account,
	}, nil
}

// Account loads the account behind an authenticated session.
func (srv *authService) Account(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound.WrapMessage("account behind session no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load account by id")
	}

	return account, nil
}
