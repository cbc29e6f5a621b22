package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/ericwalterlaw/cryptish/internal/model"
	"github.com/ericwalterlaw/cryptish/internal/session"
)

// ErrPasswordMismatch is the local validation failure surfaced when the
// confirmation password does not match.
var ErrPasswordMismatch = errors.New("passwords do not match")

type credentials struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token   string     `json:"token"`
	User    model.User `json:"user"`
	Message string     `json:"message"`
}

// Login exchanges email and password for a bearer token and user profile.
func (c *Client) Login(ctx context.Context, email, password string) (session.Session, error) {
	return c.authenticate(ctx, "/api/auth/login", credentials{Email: email, Password: password})
}

// Register creates an account and returns a ready session. The password
// confirmation is checked locally before any request is made.
func (c *Client) Register(ctx context.Context, name, email, password, confirm string) (session.Session, error) {
	if password != confirm {
		return session.Session{}, ErrPasswordMismatch
	}
	return c.authenticate(ctx, "/api/auth/register", credentials{Name: name, Email: email, Password: password})
}

func (c *Client) authenticate(ctx context.Context, path string, creds credentials) (session.Session, error) {
	body, err := c.do(ctx, http.MethodPost, path, session.Session{}, creds)
	if err != nil {
		return session.Session{}, err
	}
	var resp authResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return session.Session{}, fmt.Errorf("decode auth response: %w", err)
	}
	if strings.TrimSpace(resp.Token) == "" {
		return session.Session{}, fmt.Errorf("auth: empty token in response")
	}
	return session.Session{Token: resp.Token, User: resp.User}, nil
}

// UpdateProfile persists profile and notification settings for the
// authenticated user and returns the updated profile.
func (c *Client) UpdateProfile(ctx context.Context, sess session.Session, user model.User) (model.User, error) {
	if !sess.IsAuthenticated() {
		return model.User{}, ErrUnauthenticated
	}
	body, err := c.do(ctx, http.MethodPut, "/api/profile", sess, user)
	if err != nil {
		return model.User{}, err
	}
	var resp struct {
		User model.User `json:"user"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return model.User{}, fmt.Errorf("decode profile response: %w", err)
	}
	if resp.User.Email == "" {
		// Some deployments echo the profile at the top level.
		var flat model.User
		if err := json.Unmarshal(body, &flat); err == nil && flat.Email != "" {
			return flat, nil
		}
		return user, nil
	}
	return resp.User, nil
}
