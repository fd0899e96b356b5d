package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/taskboard/internal/common"
	"github.com/dmitrijs2005/taskboard/internal/server/auth"
	"github.com/dmitrijs2005/taskboard/internal/server/config"
	"github.com/dmitrijs2005/taskboard/internal/server/models"
	"github.com/dmitrijs2005/taskboard/internal/server/repositories/repomanager"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register creates an account and returns a freshly issued token for it.
// The plaintext password exists only in this call's scope; only the bcrypt
// hash is persisted.
func (s *UserService) Register(ctx context.Context, email string, password string) (string, *models.User, error) {

	if email == "" || password == "" {
		return "", nil, fmt.Errorf("%w: Email and password are required", common.ErrorValidation)
	}
	if len(password) < minPasswordLength {
		return "", nil, fmt.Errorf("%w: Password must be at least 6 characters", common.ErrorValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, common.ErrorInternal
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
	}

	repo := s.repomanager.Users(s.db)

	user, err = repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorEmailTaken) {
			return "", nil, err
		}
		return "", nil, fmt.Errorf("error creating user: %w", err)
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, common.ErrorInternal
	}

	return token, user, nil
}

// Login verifies credentials and issues a new token. Unknown email and
// wrong password are deliberately indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email string, password string) (string, *models.User, error) {

	if email == "" || password == "" {
		return "", nil, fmt.Errorf("%w: Email and password are required", common.ErrorValidation)
	}

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", nil, common.ErrorInvalidCredentials
		}
		return "", nil, common.ErrorInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, common.ErrorInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, common.ErrorInternal
	}

	return token, user, nil
}

func (s *UserService) generateToken(user *models.User) (string, error) {
	return auth.GenerateToken(user.ID, user.Email, s.jwtSecret, s.tokenValidityDuration)
}
