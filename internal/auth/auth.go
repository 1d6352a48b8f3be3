// Package auth signs staff in and out against the backend token endpoint.
package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mahannajafi/moslemi-group-project/internal/api"
	"github.com/mahannajafi/moslemi-group-project/internal/model"
	"github.com/mahannajafi/moslemi-group-project/internal/session"
)

// ErrNoSession is returned by TokenExpiry when nobody is signed in.
var ErrNoSession = errors.New("no stored session")

type Service struct {
	api      *api.Client
	sessions *session.Store
}

func NewService(client *api.Client, sessions *session.Store) *Service {
	return &Service{api: client, sessions: sessions}
}

type passwordGrant struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	GrantType string `json:"grant_type"`
}

// SignInWithPassword exchanges credentials for a token pair and persists the
// session. Backend failures propagate unchanged; nothing is stored on error.
func (s *Service) SignInWithPassword(ctx context.Context, email, password string) (*model.User, error) {
	var resp model.TokenResponse
	body := passwordGrant{Email: email, Password: password, GrantType: "password"}
	err := s.api.DoJSON(ctx, http.MethodPost, "/auth/v1/token?grant_type=password", body, api.Options{}, &resp)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Save(session.Session{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		User:         resp.User,
	}); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// SignOut revokes the refresh token and clears the stored session. With no
// refresh token there is nothing to revoke, so it clears locally and
// succeeds. The session is cleared only after the backend acknowledges:
// on a failed revocation the error propagates and the session stays, so a
// retry can still reach the logout endpoint.
func (s *Service) SignOut(ctx context.Context) error {
	refresh := s.sessions.RefreshToken()
	if refresh == "" {
		s.sessions.Clear()
		return nil
	}
	body := map[string]string{"refresh_token": refresh}
	err := s.api.DoJSON(ctx, http.MethodPost, "/auth/v1/logout", body, api.Options{Auth: true}, nil)
	if err != nil {
		return err
	}
	s.sessions.Clear()
	return nil
}

// CurrentUser returns the signed-in user, or nil.
func (s *Service) CurrentUser() *model.User {
	return s.sessions.User()
}

// TokenExpiry reads the expiry claim out of the stored access token without
// verifying the signature. Advisory only: the backend remains the authority
// on token validity.
func (s *Service) TokenExpiry() (time.Time, error) {
	token := s.sessions.AccessToken()
	if token == "" {
		return time.Time{}, ErrNoSession
	}
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, err
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, errors.New("token has no expiry claim")
	}
	return exp.Time, nil
}
