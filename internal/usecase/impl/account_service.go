// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"sentimenta/config"
	deliverycontext "sentimenta/internal/delivery/context"
	"sentimenta/internal/domain/entity"
	domainerrors "sentimenta/internal/domain/errors"
	"sentimenta/internal/domain/repository"
	"sentimenta/internal/domain/service"
	"sentimenta/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	accountRepo         repository.AccountRepository
	hasher              service.PasswordHasher
	tokenService        service.TokenService
	registrationEnabled bool
	passwordMinLength   int
	logger              *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	registrationEnabled := true
	passwordMinLength := 8
	if params.Config != nil {
		if params.Config.Registration != nil {
			registrationEnabled = params.Config.Registration.Enabled
		}
		if params.Config.Limits != nil && params.Config.Limits.PasswordMinLength > 0 {
			passwordMinLength = params.Config.Limits.PasswordMinLength
		}
	}

	return &accountService{
		accountRepo:         params.AccountRepo,
		hasher:              params.Hasher,
		tokenService:        params.TokenService,
		registrationEnabled: registrationEnabled,
		passwordMinLength:   passwordMinLength,
		logger:              params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the account registration process: pre-flight
// uniqueness checks for friendly errors, with the store's unique indexes as
// the authoritative guard against races.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	if !srv.registrationEnabled {
		srv.log(ctx).Warn("Registration attempt while disabled", slog.String("email", input.Email))

		return nil, domainerrors.ErrRegistrationDisabled
	}

	if err := srv.validateRegistration(input); err != nil {
		srv.log(ctx).Warn("Registration validation failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	if err := srv.checkUniqueness(ctx, input.Email, input.Username); err != nil {
		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during registration")
	}

	newAccount := &entity.Account{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Timezone:     input.Timezone,
	}

	if err := srv.accountRepo.Create(ctx, newAccount); err != nil {
		srv.log(ctx).Error("Failed to create account", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create account during registration")
	}

	token, err := srv.tokenService.Generate(newAccount.Uid)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token after registration", slog.Int64("accountID", newAccount.Uid), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session token after registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Int64("accountID", newAccount.Uid))

	return &usecase.AuthOutput{
		Account: usecase.ToAccountOutput(newAccount),
		Token:   token,
	}, nil
}

func (srv *accountService) validateRegistration(input *usecase.RegisterInput) error {
	if strings.TrimSpace(input.Username) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("username must not be empty")
	}
	if !isPlausibleEmail(input.Email) {
		return domainerrors.ErrValidationFailed.WithDetails("email address is malformed")
	}
	if len(input.Password) < srv.passwordMinLength {
		return domainerrors.ErrValidationFailed.WithDetails("password is too short")
	}

	return nil
}

// checkUniqueness rejects registration early when the email or username is
// already taken. A concurrent duplicate still fails at insert time via the
// unique indexes.
func (srv *accountService) checkUniqueness(ctx context.Context, email, username string) error {
	_, err := srv.accountRepo.FindByEmail(ctx, email)
	if err == nil {
		srv.log(ctx).Warn("Registration rejected, email taken", slog.String("email", email))

		return domainerrors.ErrEmailTaken
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return errors.Wrap(err, "failed to check email uniqueness")
	}

	_, err = srv.accountRepo.FindByUsername(ctx, username)
	if err == nil {
		srv.log(ctx).Warn("Registration rejected, username taken", slog.String("username", username))

		return domainerrors.ErrUsernameTaken
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return errors.Wrap(err, "failed to check username uniqueness")
	}

	return nil
}

// isPlausibleEmail performs a structural sanity check. Real deliverability
// can only be proven by sending mail, so anything stricter is wasted effort.
func isPlausibleEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	return strings.Contains(domain, ".") && !strings.HasPrefix(domain, ".") && !strings.HasSuffix(domain, ".")
}

// Login orchestrates the login process. Unknown email and wrong password
// produce the same error so the response never reveals which one failed.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to load account for login")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.Generate(account.Uid)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token during login", slog.Int64("accountID", account.Uid), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session token during login")
	}

	srv.log(ctx).Debug("Login succeeded", slog.Int64("accountID", account.Uid))

	return &usecase.AuthOutput{
		Account: usecase.ToAccountOutput(account),
		Token:   token,
	}, nil
}

// GetAccount returns the account's external representation.
func (srv *accountService) GetAccount(ctx context.Context, accountID int64) (*usecase.AccountOutput, error) {
	account, err := srv.loadAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	return usecase.ToAccountOutput(account), nil
}

// UpdateProfile applies a partial update to the account's profile fields.
func (srv *accountService) UpdateProfile(ctx context.Context, accountID int64, input *usecase.UpdateProfileInput) (*usecase.AccountOutput, error) {
	account, err := srv.loadAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if input.Username != nil {
		if strings.TrimSpace(*input.Username) == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("username must not be empty")
		}
		account.Username = *input.Username
	}
	if input.Email != nil {
		if !isPlausibleEmail(*input.Email) {
			return nil, domainerrors.ErrValidationFailed.WithDetails("email address is malformed")
		}
		account.Email = *input.Email
	}
	if input.Timezone != nil {
		account.Timezone = *input.Timezone
	}

	if err := srv.accountRepo.Update(ctx, account); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		srv.log(ctx).Error("Failed to update profile", slog.Int64("accountID", accountID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update account profile")
	}

	srv.log(ctx).Debug("Profile updated", slog.Int64("accountID", accountID))

	return srv.GetAccount(ctx, accountID)
}

// ChangePassword replaces the account's password after verifying the current one.
func (srv *accountService) ChangePassword(ctx context.Context, accountID int64, input *usecase.ChangePasswordInput) error {
	account, err := srv.loadAccount(ctx, accountID)
	if err != nil {
		return err
	}

	if !srv.hasher.Check(input.OldPassword, account.PasswordHash) {
		srv.log(ctx).Warn("Password change rejected, wrong current password", slog.Int64("accountID", accountID))

		return domainerrors.ErrInvalidCredentials
	}

	if len(input.NewPassword) < srv.passwordMinLength {
		return domainerrors.ErrValidationFailed.WithDetails("password is too short")
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		srv.log(ctx).Error("Failed to hash new password", slog.Int64("accountID", accountID), slog.Any("error", err))

		return domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash new password")
	}

	account.PasswordHash = hashedPassword

	if err := srv.accountRepo.Update(ctx, account); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrAccountNotFound
		}

		return errors.Wrap(err, "failed to store new password")
	}

	srv.log(ctx).Info("Password changed", slog.Int64("accountID", accountID))

	return nil
}

// DeleteAccount removes the account; owned mood entries cascade at the store level.
func (srv *accountService) DeleteAccount(ctx context.Context, accountID int64) error {
	if err := srv.accountRepo.Delete(ctx, accountID); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrAccountNotFound
		}

		srv.log(ctx).Error("Failed to delete account", slog.Int64("accountID", accountID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete account")
	}

	srv.log(ctx).Info("Account deleted", slog.Int64("accountID", accountID))

	return nil
}

// loadAccount fetches the account or maps absence to the domain error. A
// valid token whose account has since been deleted lands here as a 404.
func (srv *accountService) loadAccount(ctx context.Context, accountID int64) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to load account")
	}

	return account, nil
}
