package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"ppoth/config"
	"ppoth/internal/domain/entity"
	domainerrors "ppoth/internal/domain/errors"
	"ppoth/internal/domain/repository"
	"ppoth/internal/domain/service"
	"ppoth/internal/seed"
	"ppoth/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
type authService struct {
	mu           sync.Mutex
	userRepo     repository.UserRepository
	tokenService service.TokenService
	hasher       service.PasswordHasher
	demoPassword string
	logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	cfg *config.Config,
	userRepo repository.UserRepository,
	tokenService service.TokenService,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) usecase.AuthUsecase {
	demoPassword := ""
	if cfg.Auth != nil {
		demoPassword = cfg.Auth.DemoPassword
	}

	return &authService{
		userRepo:     userRepo,
		tokenService: tokenService,
		hasher:       hasher,
		demoPassword: demoPassword,
		logger:       logger,
	}
}

// loadOrSeed returns the stored accounts, writing the demo accounts on
// first access.
func (srv *authService) loadOrSeed(ctx context.Context) ([]entity.User, error) {
	users, err := srv.userRepo.Load(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrSnapshotNotFound) {
			return nil, errors.Wrap(err, "failed to load users")
		}

		users = seed.Users()
		if err := srv.userRepo.Save(ctx, users); err != nil {
			return nil, errors.Wrap(err, "failed to persist seed users")
		}

		srv.logger.Info("Seeded demo accounts", "users", len(users))
	}

	return users, nil
}

// Login verifies credentials and issues a session token. Seeded demo
// accounts carry no hash and authenticate with the shared demo password;
// registered accounts verify against their bcrypt hash.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthResult, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	users, err := srv.loadOrSeed(ctx)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	for _, u := range users {
		if strings.ToLower(u.Email) != email {
			continue
		}

		if u.PasswordHash == "" {
			if srv.demoPassword == "" || input.Password != srv.demoPassword {
				return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
			}
		} else if err := srv.hasher.Compare(u.PasswordHash, input.Password); err != nil {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
		}

		return srv.issue(&u)
	}

	return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown email")
}

// Register creates a visitor account and logs it in.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthResult, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	users, err := srv.loadOrSeed(ctx)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	// 1. Reject duplicate emails
	for _, u := range users {
		if strings.ToLower(u.Email) == email {
			return nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered: "+email)
		}
	}

	// 2. Hash the password and persist the account
	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := entity.User{
		ID:           "u_" + uuid.NewString(),
		Email:        email,
		Name:         input.Name,
		Role:         entity.RoleUser,
		PasswordHash: hash,
	}
	users = append(users, user)

	if err := srv.userRepo.Save(ctx, users); err != nil {
		return nil, errors.Wrap(err, "failed to save users")
	}

	srv.logger.Info("Registered account", "userID", user.ID)

	return srv.issue(&user)
}

// CurrentUser resolves the user behind a validated token subject.
func (srv *authService) CurrentUser(ctx context.Context, userID string) (*entity.User, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	users, err := srv.loadOrSeed(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.ID == userID {
			sanitized := u.Sanitized()

			return &sanitized, nil
		}
	}

	return nil, errors.Wrap(domainerrors.ErrNotFound, "user not found: "+userID)
}

func (srv *authService) issue(user *entity.User) (*usecase.AuthResult, error) {
	token, err := srv.tokenService.GenerateToken(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	sanitized := user.Sanitized()

	return &usecase.AuthResult{User: &sanitized, Token: token}, nil
}
