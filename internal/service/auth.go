package service

import (
	"context"
	"errors"

	"github.com/tokoku/go-storefront-api/internal/dto"
	"github.com/tokoku/go-storefront-api/internal/model"
	"github.com/tokoku/go-storefront-api/internal/store"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrWrongPassword      = errors.New("wrong current password")
)

// AuthService manages user records. Passwords are stored and compared in
// cleartext and there is no token or session model; the client keeps the
// returned record in local storage. Inherited from the original system.
type AuthService struct {
	store *store.Store
}

func NewAuthService(st *store.Store) *AuthService {
	return &AuthService{store: st}
}

// Register creates a user with the customer role. The email must not match
// an existing user's exactly (case-sensitive); uniqueness is checked here
// and nowhere else.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*model.User, error) {
	var created model.User
	err := s.store.Update(func(doc *model.Document) error {
		for i := range doc.Users {
			if doc.Users[i].Email == req.Email {
				return ErrEmailTaken
			}
		}
		created = model.User{
			ID:       model.NewID(),
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Password,
			Role:     model.RoleCustomer,
		}
		doc.Users = append(doc.Users, created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Login matches email and password exactly against the stored records.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*model.User, error) {
	doc := s.store.Load()
	for i := range doc.Users {
		u := &doc.Users[i]
		if u.Email == req.Email && u.Password == req.Password {
			return u, nil
		}
	}
	return nil, ErrInvalidCredentials
}

// UpdateUser applies a partial update to the matched user. A password change
// requires the current password; other fields merge independently. Email
// uniqueness is not re-checked here, so an update can introduce a duplicate.
func (s *AuthService) UpdateUser(ctx context.Context, id model.ID, req dto.UpdateUserRequest) (*model.User, error) {
	var updated model.User
	err := s.store.Update(func(doc *model.Document) error {
		for i := range doc.Users {
			u := &doc.Users[i]
			if u.ID != id {
				continue
			}
			if req.NewPassword != nil {
				if req.CurrentPassword == nil || *req.CurrentPassword != u.Password {
					return ErrWrongPassword
				}
				u.Password = *req.NewPassword
			}
			if req.Name != nil {
				u.Name = *req.Name
			}
			if req.Email != nil {
				u.Email = *req.Email
			}
			if req.Avatar != nil {
				u.Avatar = *req.Avatar
			}
			updated = *u
			return nil
		}
		return ErrUserNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
