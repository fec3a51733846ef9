package services

import (
	"errors"

	"stockledger/internal/repos"

	"golang.org/x/crypto/bcrypt"
)

var ErrBadPassword = errors.New("invalid password")

// AuthService gates the whole app behind one shared password. The plain
// secret from config is hashed once at startup so it never sits in memory
// or logs as-is.
type AuthService struct {
	Sessions *repos.SessionRepo
	hash     []byte
}

func NewAuthService(sessions *repos.SessionRepo, password string) (*AuthService, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &AuthService{Sessions: sessions, hash: h}, nil
}

func (s *AuthService) Login(sid, password string) error {
	if bcrypt.CompareHashAndPassword(s.hash, []byte(password)) != nil {
		return ErrBadPassword
	}
	return s.Sessions.Bind(sid)
}

func (s *AuthService) Logout(sid string) error {
	return s.Sessions.Unbind(sid)
}

func (s *AuthService) LoggedIn(sid string) bool {
	if sid == "" {
		return false
	}
	ok, err := s.Sessions.Exists(sid)
	return err == nil && ok
}
