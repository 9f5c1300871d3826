package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/novazone/learnhub-api/internal/models"
	appErrors "github.com/novazone/learnhub-api/pkg/errors"
)

type mockUserRepo struct {
	users    map[string]models.User
	profiles []models.TeacherProfile
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *mockUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	if u, ok := m.users[id]; ok {
		return &u, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := m.FindByEmail(ctx, email)
	if err == sql.ErrNoRows {
		return false, nil
	}
	return err == nil, err
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	if m.users == nil {
		m.users = make(map[string]models.User)
	}
	m.users[user.ID] = *user
	return nil
}

type mockTeacherProfileRepo struct {
	created []models.TeacherProfile
}

func (m *mockTeacherProfileRepo) Create(ctx context.Context, profile *models.TeacherProfile) error {
	m.created = append(m.created, *profile)
	return nil
}

func newAuthService(users *mockUserRepo, teachers *mockTeacherProfileRepo, expiry time.Duration) *AuthService {
	if expiry == 0 {
		expiry = 15 * time.Minute
	}
	return NewAuthService(users, teachers, nil, nil, AuthConfig{
		TokenSecret: "test-secret",
		TokenExpiry: expiry,
		Issuer:      "learnhub-test",
	})
}

func TestRegisterIssuesToken(t *testing.T) {
	users := &mockUserRepo{}
	svc := newAuthService(users, &mockTeacherProfileRepo{}, 0)

	res, err := svc.Register(context.Background(), models.RegisterRequest{
		Email:    "alex@example.com",
		Password: "secret1",
		FullName: "Alex Johnson",
		Role:     models.RoleStudent,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.Equal(t, "bearer", res.TokenType)
	assert.Equal(t, "alex@example.com", res.User.Email)

	claims, err := svc.ValidateToken(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, claims.UserID)
	assert.Equal(t, models.RoleStudent, claims.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := &mockUserRepo{}
	svc := newAuthService(users, &mockTeacherProfileRepo{}, 0)

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Email: "alex@example.com", Password: "secret1", FullName: "Alex", Role: models.RoleStudent,
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), models.RegisterRequest{
		Email: "alex@example.com", Password: "other12", FullName: "Other", Role: models.RoleStudent,
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrEmailTaken.Code, appErr.Code)
	assert.Equal(t, 400, appErr.Status)
}

func TestRegisterTeacherCreatesProfile(t *testing.T) {
	teachers := &mockTeacherProfileRepo{}
	svc := newAuthService(&mockUserRepo{}, teachers, 0)

	res, err := svc.Register(context.Background(), models.RegisterRequest{
		Email: "sarah@example.com", Password: "secret1", FullName: "Dr. Sarah Chen", Role: models.RoleTeacher,
	})
	require.NoError(t, err)
	require.Len(t, teachers.created, 1)
	assert.Equal(t, res.User.ID, teachers.created[0].UserID)
	assert.Equal(t, "Dr. Sarah Chen", teachers.created[0].FullName)
	assert.Empty(t, teachers.created[0].Subjects)
	assert.Equal(t, 4.5, teachers.created[0].Rating)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	svc := newAuthService(&mockUserRepo{}, &mockTeacherProfileRepo{}, 0)

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Email: "x@example.com", Password: "secret1", FullName: "X", Role: models.UserRole("admin"),
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct1"), bcrypt.MinCost)
	require.NoError(t, err)
	users := &mockUserRepo{users: map[string]models.User{
		"u1": {ID: "u1", Email: "alex@example.com", PasswordHash: string(hash), FullName: "Alex", Role: models.RoleStudent},
	}}
	svc := newAuthService(users, &mockTeacherProfileRepo{}, 0)

	_, err = svc.Login(context.Background(), models.LoginRequest{Email: "alex@example.com", Password: "wrong12"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErr.Code)
	assert.Equal(t, 401, appErr.Status)
}

func TestLoginUnknownEmailSameError(t *testing.T) {
	svc := newAuthService(&mockUserRepo{}, &mockTeacherProfileRepo{}, 0)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "ghost@example.com", Password: "whatever"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
}

func TestValidateTokenExpired(t *testing.T) {
	users := &mockUserRepo{}
	svc := newAuthService(users, &mockTeacherProfileRepo{}, -time.Minute)

	res, err := svc.Register(context.Background(), models.RegisterRequest{
		Email: "old@example.com", Password: "secret1", FullName: "Old", Role: models.RoleStudent,
	})
	require.NoError(t, err)

	_, err = svc.ValidateToken(res.AccessToken)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)
}

func TestValidateTokenGarbage(t *testing.T) {
	svc := newAuthService(&mockUserRepo{}, &mockTeacherProfileRepo{}, 0)

	_, err := svc.ValidateToken("not-a-token")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)
}
