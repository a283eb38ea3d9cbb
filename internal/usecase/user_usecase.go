package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/dukaanhq/dukaan/internal/domain"
)

const sessionTTL = 24 * time.Hour

// UserUseCase handles user accounts and authentication. Browser clients get
// a server-side session token; API clients get a signed bearer token.
type UserUseCase struct {
	userRepo UserRepository
	sessions SessionStore
	hasher   PasswordHasher
	tokens   TokenIssuer
	idGen    IDGenerator
}

// NewUserUseCase creates a new UserUseCase.
func NewUserUseCase(
	userRepo UserRepository,
	sessions SessionStore,
	hasher PasswordHasher,
	tokens TokenIssuer,
	idGen IDGenerator,
) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		sessions: sessions,
		hasher:   hasher,
		tokens:   tokens,
		idGen:    idGen,
	}
}

// CreateUserInput represents input for creating a user account.
type CreateUserInput struct {
	Email    string
	Name     string
	Password string
	Role     domain.Role
}

// CreateUser registers a new user with a hashed password.
func (uc *UserUseCase) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	if err := domain.ValidateEmail(input.Email); err != nil {
		return nil, err
	}

	if err := domain.ValidateName(input.Name); err != nil {
		return nil, err
	}

	if err := domain.ValidatePassword(input.Password); err != nil {
		return nil, err
	}

	if !input.Role.IsValid() {
		return nil, domain.ErrInsufficientRole
	}

	hashed, err := uc.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	user := &domain.User{
		ID:             uc.idGen.Generate(),
		Email:          strings.ToLower(strings.TrimSpace(input.Email)),
		Name:           input.Name,
		HashedPassword: hashed,
		Role:           input.Role,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// LoginResult carries both credentials issued on login.
type LoginResult struct {
	User         *domain.User
	SessionToken string
	BearerToken  string
}

// Login verifies credentials and issues a session plus a bearer token.
// Wrong email and wrong password are indistinguishable to the caller.
func (uc *UserUseCase) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := uc.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	if !user.Active {
		return nil, domain.ErrUnauthorized
	}

	if err := uc.hasher.Compare(user.HashedPassword, password); err != nil {
		return nil, domain.ErrUnauthorized
	}

	sessionToken, err := uc.sessions.Create(ctx, user.ID, sessionTTL)
	if err != nil {
		return nil, err
	}

	bearerToken, err := uc.tokens.Issue(user.ID, string(user.Role), sessionTTL)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		User:         user,
		SessionToken: sessionToken,
		BearerToken:  bearerToken,
	}, nil
}

// Logout revokes a session token.
func (uc *UserUseCase) Logout(ctx context.Context, sessionToken string) error {
	return uc.sessions.Delete(ctx, sessionToken)
}

// AuthenticateSession resolves a session token to its user.
func (uc *UserUseCase) AuthenticateSession(ctx context.Context, sessionToken string) (*domain.User, error) {
	userID, err := uc.sessions.Get(ctx, sessionToken)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	return uc.activeUser(ctx, userID)
}

// AuthenticateBearer resolves a signed bearer token to its user.
func (uc *UserUseCase) AuthenticateBearer(ctx context.Context, token string) (*domain.User, error) {
	userID, _, err := uc.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	return uc.activeUser(ctx, userID)
}

func (uc *UserUseCase) activeUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	if !user.Active {
		return nil, domain.ErrUnauthorized
	}

	return user, nil
}

// GetUser retrieves a user by ID.
func (uc *UserUseCase) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return uc.userRepo.GetByID(ctx, id)
}

// ListUsers lists user accounts.
func (uc *UserUseCase) ListUsers(ctx context.Context, page, limit int) ([]*domain.User, error) {
	_, normLimit, offset := domain.NormalizePagination(page, limit)

	return uc.userRepo.List(ctx, normLimit, offset)
}

// UpdateUserInput represents input for updating a user account.
type UpdateUserInput struct {
	ID       string
	Name     *string
	Role     *domain.Role
	Active   *bool
	Password *string
}

// UpdateUser updates an account's profile, role, status or password.
func (uc *UserUseCase) UpdateUser(ctx context.Context, input UpdateUserInput) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if err := domain.ValidateName(*input.Name); err != nil {
			return nil, err
		}
		user.Name = *input.Name
	}

	if input.Role != nil {
		if !input.Role.IsValid() {
			return nil, domain.ErrInsufficientRole
		}
		user.Role = *input.Role
	}

	if input.Active != nil {
		user.Active = *input.Active
	}

	if input.Password != nil {
		if err := domain.ValidatePassword(*input.Password); err != nil {
			return nil, err
		}

		hashed, err := uc.hasher.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		user.HashedPassword = hashed
	}

	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteUser removes a user account.
func (uc *UserUseCase) DeleteUser(ctx context.Context, id string) error {
	if _, err := uc.userRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return uc.userRepo.Delete(ctx, id)
}
