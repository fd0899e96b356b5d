package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/taskboard/internal/common"
	"github.com/dmitrijs2005/taskboard/internal/server/auth"
	"github.com/dmitrijs2005/taskboard/internal/server/config"
	"github.com/dmitrijs2005/taskboard/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newUserService(t *testing.T, m *fakeManager) *UserService {
	t.Helper()
	cfg := &config.Config{
		SecretKey:             "k",
		TokenValidityDuration: time.Hour,
	}
	return NewUserService(newSQLMockDB(t), m, cfg)
}

func TestRegister_Success(t *testing.T) {
	repo := &fakeUsersRepo{}
	s := newUserService(t, &fakeManager{usersRepo: repo})

	token, user, err := s.Register(context.Background(), "a@x.com", "secret1")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "a@x.com", user.Email)

	// the stored credential is a bcrypt hash of the plaintext, never the
	// plaintext itself
	require.NotEqual(t, "secret1", repo.lastCreated.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.lastCreated.PasswordHash), []byte("secret1")))

	claims, err := auth.ParseToken(token, []byte("k"))
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"missing email", "", "secret1"},
		{"missing password", "a@x.com", ""},
		{"short password", "a@x.com", "12345"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeUsersRepo{}
			s := newUserService(t, &fakeManager{usersRepo: repo})

			_, _, err := s.Register(context.Background(), tt.email, tt.password)
			require.ErrorIs(t, err, common.ErrorValidation)
			require.Nil(t, repo.lastCreated, "no account row may be created on validation failure")
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := &fakeUsersRepo{createErr: common.ErrorEmailTaken}
	s := newUserService(t, &fakeManager{usersRepo: repo})

	_, _, err := s.Register(context.Background(), "a@x.com", "secret1")
	require.ErrorIs(t, err, common.ErrorEmailTaken)
}

func TestRegister_RepoError(t *testing.T) {
	repo := &fakeUsersRepo{createErr: errors.New("db down")}
	s := newUserService(t, &fakeManager{usersRepo: repo})

	_, _, err := s.Register(context.Background(), "a@x.com", "secret1")
	require.Error(t, err)
	require.NotErrorIs(t, err, common.ErrorValidation)
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestLogin_Success(t *testing.T) {
	repo := &fakeUsersRepo{getOut: &models.User{ID: 42, Email: "a@x.com", PasswordHash: hashOf(t, "secret1")}}
	s := newUserService(t, &fakeManager{usersRepo: repo})

	token, user, err := s.Login(context.Background(), "a@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, int64(42), user.ID)

	claims, err := auth.ParseToken(token, []byte("k"))
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
}

func TestLogin_UnknownEmailAndWrongPasswordLookAlike(t *testing.T) {
	unknown := &fakeUsersRepo{getErr: common.ErrorNotFound}
	s1 := newUserService(t, &fakeManager{usersRepo: unknown})
	_, _, err1 := s1.Login(context.Background(), "ghost@x.com", "secret1")

	wrongPassword := &fakeUsersRepo{getOut: &models.User{ID: 1, Email: "a@x.com", PasswordHash: hashOf(t, "secret1")}}
	s2 := newUserService(t, &fakeManager{usersRepo: wrongPassword})
	_, _, err2 := s2.Login(context.Background(), "a@x.com", "wrong")

	require.ErrorIs(t, err1, common.ErrorInvalidCredentials)
	require.ErrorIs(t, err2, common.ErrorInvalidCredentials)
	assert.Equal(t, err1.Error(), err2.Error(), "both failure modes must be indistinguishable")
}

func TestLogin_Validation(t *testing.T) {
	s := newUserService(t, &fakeManager{usersRepo: &fakeUsersRepo{}})

	_, _, err := s.Login(context.Background(), "", "secret1")
	require.ErrorIs(t, err, common.ErrorValidation)

	_, _, err = s.Login(context.Background(), "a@x.com", "")
	require.ErrorIs(t, err, common.ErrorValidation)
}

func TestLogin_RepoError(t *testing.T) {
	repo := &fakeUsersRepo{getErr: errors.New("db down")}
	s := newUserService(t, &fakeManager{usersRepo: repo})

	_, _, err := s.Login(context.Background(), "a@x.com", "secret1")
	require.ErrorIs(t, err, common.ErrorInternal)
}
