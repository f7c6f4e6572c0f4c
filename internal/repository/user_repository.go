package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/iliyamo/cinetrack-web/internal/api"
	"github.com/iliyamo/cinetrack-web/internal/model"
)

// ErrInvalidUser is returned when the backend accepts a login or signup
// but the reply carries no user id.
var ErrInvalidUser = errors.New("invalid response from server")

type UserRepo struct{ API *api.Client }

func NewUserRepo(c *api.Client) *UserRepo { return &UserRepo{API: c} }

// Create registers a new account and returns the stored user.
func (r *UserRepo) Create(ctx context.Context, name, email, password string) (model.User, error) {
	u, err := r.API.Signup(ctx, api.SignupRequest{
		Name:     strings.TrimSpace(name),
		Email:    strings.TrimSpace(email),
		Password: password,
	})
	if err != nil {
		return model.User{}, translate(err)
	}
	if !u.Valid() {
		return model.User{}, ErrInvalidUser
	}
	return u, nil
}

// Authenticate checks credentials against the backend.
func (r *UserRepo) Authenticate(ctx context.Context, email, password string) (model.User, error) {
	u, err := r.API.Login(ctx, api.LoginRequest{Email: strings.TrimSpace(email), Password: password})
	if err != nil {
		return model.User{}, translate(err)
	}
	if !u.Valid() {
		return model.User{}, ErrInvalidUser
	}
	return u, nil
}
