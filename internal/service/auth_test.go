package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokoku/go-storefront-api/internal/dto"
	"github.com/tokoku/go-storefront-api/internal/model"
)

func TestAuthService_Register(t *testing.T) {
	svc := NewAuthService(newTestStore(t))

	user, err := svc.Register(context.Background(), dto.RegisterRequest{
		Name: "Budi", Email: "budi@example.com", Password: "rahasia123",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleCustomer, user.Role)
	assert.Equal(t, "rahasia123", user.Password)
	assert.NotZero(t, user.ID)
	assert.Empty(t, user.Avatar)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	st := newTestStore(t)
	svc := NewAuthService(st)

	first, err := svc.Register(context.Background(), dto.RegisterRequest{
		Name: "Budi", Email: "budi@example.com", Password: "rahasia123",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), dto.RegisterRequest{
		Name: "Budi Kedua", Email: "budi@example.com", Password: "lain",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)

	// First user untouched.
	doc := st.Load()
	require.Len(t, doc.Users, 1)
	assert.Equal(t, first.ID, doc.Users[0].ID)
	assert.Equal(t, "Budi", doc.Users[0].Name)
}

func TestAuthService_Login(t *testing.T) {
	svc := NewAuthService(newTestStore(t))
	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Name: "Budi", Email: "budi@example.com", Password: "rahasia123",
	})
	require.NoError(t, err)

	user, err := svc.Login(context.Background(), dto.LoginRequest{Email: "budi@example.com", Password: "rahasia123"})
	require.NoError(t, err)
	assert.Equal(t, "Budi", user.Name)

	_, err = svc.Login(context.Background(), dto.LoginRequest{Email: "budi@example.com", Password: "salah"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), dto.LoginRequest{Email: "siapa@example.com", Password: "rahasia123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_UpdateUser_Profile(t *testing.T) {
	svc := NewAuthService(newTestStore(t))
	user, err := svc.Register(context.Background(), dto.RegisterRequest{
		Name: "Budi", Email: "budi@example.com", Password: "rahasia123",
	})
	require.NoError(t, err)

	name := "Budi Santoso"
	avatar := "https://cdn.example.com/budi.png"
	updated, err := svc.UpdateUser(context.Background(), user.ID, dto.UpdateUserRequest{
		Name: &name, Avatar: &avatar,
	})
	require.NoError(t, err)
	assert.Equal(t, "Budi Santoso", updated.Name)
	assert.Equal(t, avatar, updated.Avatar)
	assert.Equal(t, "rahasia123", updated.Password)
	assert.Equal(t, model.RoleCustomer, updated.Role)
}

func TestAuthService_UpdateUser_ChangePassword(t *testing.T) {
	svc := NewAuthService(newTestStore(t))
	user, err := svc.Register(context.Background(), dto.RegisterRequest{
		Name: "Budi", Email: "budi@example.com", Password: "rahasia123",
	})
	require.NoError(t, err)

	wrong := "bukan-itu"
	baru := "sandi-baru"
	_, err = svc.UpdateUser(context.Background(), user.ID, dto.UpdateUserRequest{
		CurrentPassword: &wrong, NewPassword: &baru,
	})
	assert.ErrorIs(t, err, ErrWrongPassword)

	lama := "rahasia123"
	updated, err := svc.UpdateUser(context.Background(), user.ID, dto.UpdateUserRequest{
		CurrentPassword: &lama, NewPassword: &baru,
	})
	require.NoError(t, err)
	assert.Equal(t, "sandi-baru", updated.Password)

	_, err = svc.Login(context.Background(), dto.LoginRequest{Email: "budi@example.com", Password: "sandi-baru"})
	assert.NoError(t, err)
}

func TestAuthService_UpdateUser_NotFound(t *testing.T) {
	svc := NewAuthService(newTestStore(t))
	name := "x"
	_, err := svc.UpdateUser(context.Background(), 999, dto.UpdateUserRequest{Name: &name})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

// Email uniqueness is only enforced at registration; an update can introduce
// a duplicate without complaint.
func TestAuthService_UpdateUser_DuplicateEmailAllowed(t *testing.T) {
	svc := NewAuthService(newTestStore(t))
	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Name: "Budi", Email: "budi@example.com", Password: "a1234567",
	})
	require.NoError(t, err)
	second, err := svc.Register(context.Background(), dto.RegisterRequest{
		Name: "Siti", Email: "siti@example.com", Password: "b1234567",
	})
	require.NoError(t, err)

	email := "budi@example.com"
	updated, err := svc.UpdateUser(context.Background(), second.ID, dto.UpdateUserRequest{Email: &email})
	require.NoError(t, err)
	assert.Equal(t, "budi@example.com", updated.Email)
}
