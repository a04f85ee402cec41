package userapp

import (
	"context"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofrs/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/andreipy/hw05-final/internal/apperr"
	userEntity "github.com/andreipy/hw05-final/internal/core/user"
	userPort "github.com/andreipy/hw05-final/internal/ports/user"
)

const tokenLifetime = 24 * time.Hour

// UserService is the identity collaborator: registration and JWT login. The
// feed core only ever sees the resulting author id.
type UserService struct {
	UserRepository userPort.UserRepository
	jwtKey         []byte
}

func NewUserService(repo userPort.UserRepository, jwtKey []byte) *UserService {
	return &UserService{
		UserRepository: repo,
		jwtKey:         jwtKey,
	}
}

// Register creates a new author. Usernames are unique.
func (s *UserService) Register(ctx context.Context, name, username, password string) (*userPort.UserDTO, error) {
	if username == "" || password == "" {
		return nil, apperr.InvalidInput("username and password are required")
	}

	if existing, err := s.UserRepository.FindByUsername(ctx, username); err == nil && existing != nil {
		return nil, apperr.InvalidInput("username %q already taken", username)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u, err := s.UserRepository.Create(ctx, &userEntity.User{
		ID:       uuid.Must(uuid.NewV4()),
		Name:     name,
		Username: username,
		Password: string(hashed),
	})
	if err != nil {
		return nil, err
	}

	return &userPort.UserDTO{
		ID:       u.ID.String(),
		Username: u.Username,
		Name:     u.Name,
	}, nil
}

// Login verifies credentials and issues a signed token.
func (s *UserService) Login(ctx context.Context, username, password string) (*userPort.LoginResponse, error) {
	u, err := s.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		return nil, apperr.InvalidInput("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, apperr.InvalidInput("invalid credentials")
	}

	expiresAt := time.Now().Add(tokenLifetime)
	claims := &jwt.StandardClaims{
		Subject:   u.ID.String(),
		Issuer:    "hw05-final",
		ExpiresAt: expiresAt.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtKey)
	if err != nil {
		return nil, err
	}

	return &userPort.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
	}, nil
}
