package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"adboard/internal/config"
	"adboard/internal/models"
	"adboard/internal/repository"

	"github.com/golang-jwt/jwt/v5"
)

type RegisterRequest struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Phone     string
	Role      models.Role
}

type AccessToken struct {
	Token     string
	ExpiresIn time.Duration
}

// Claims are carried by every bearer token the service issues.
type Claims struct {
	UserID int64       `json:"userId"`
	Email  string      `json:"email"`
	Role   models.Role `json:"role"`
	jwt.RegisteredClaims
}

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*models.User, error)
	Authenticate(ctx context.Context, username, password string) (*models.Principal, error)
	Login(ctx context.Context, username, password string) (*AccessToken, error)
	ChangePassword(ctx context.Context, principal *models.Principal, currentPassword, newPassword string) error
	IssueToken(principal *models.Principal) (*AccessToken, error)
	ParseToken(tokenString string) (*models.Principal, error)
}

type authService struct {
	userRepo repository.UserRepository
	hasher   PasswordHasher
	cfg      *config.Config

	dummyOnce sync.Once
	dummyHash []byte
}

func NewAuthService(userRepo repository.UserRepository, hasher PasswordHasher, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		hasher:   hasher,
		cfg:      cfg,
	}
}

// NormalizeUsername is applied before every lookup and insert.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

func (s *authService) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	role := req.Role
	if role == "" {
		role = models.RoleUser
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", models.ErrValidation, role)
	}

	username := NormalizeUsername(req.Username)
	if username == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", models.ErrValidation)
	}

	hash, err := s.hasher.Hash([]byte(req.Password))
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Role:         role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *authService) Authenticate(ctx context.Context, username, password string) (*models.Principal, error) {
	user, err := s.userRepo.GetByUsername(ctx, NormalizeUsername(username))
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			// spend the same bcrypt time as a real mismatch
			s.hasher.Compare(s.dummy(), []byte(password))
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.hasher.Compare([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, models.ErrInvalidCredentials
	}

	return &models.Principal{ID: user.ID, Username: user.Username, Role: user.Role}, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (*AccessToken, error) {
	principal, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}

	return s.IssueToken(principal)
}

func (s *authService) ChangePassword(ctx context.Context, principal *models.Principal, currentPassword, newPassword string) error {
	if err := requirePrincipal(principal); err != nil {
		return err
	}

	user, err := s.userRepo.GetByID(ctx, principal.ID)
	if err != nil {
		return err
	}

	if err := s.hasher.Compare([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return models.ErrIncorrectCurrentPassword
	}

	hash, err := s.hasher.Hash([]byte(newPassword))
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.userRepo.UpdatePassword(ctx, user.ID, string(hash))
}

func (s *authService) IssueToken(principal *models.Principal) (*AccessToken, error) {
	now := time.Now()

	claims := Claims{
		UserID: principal.ID,
		Email:  principal.Username,
		Role:   principal.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.AccessTokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecretKey))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &AccessToken{Token: tokenString, ExpiresIn: s.cfg.AccessTokenDuration}, nil
}

func (s *authService) ParseToken(tokenString string) (*models.Principal, error) {
	claims := &Claims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWTSecretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid token: %v", models.ErrUnauthenticated, err)
	}

	if claims.UserID == 0 || !claims.Role.Valid() {
		return nil, fmt.Errorf("%w: malformed token claims", models.ErrUnauthenticated)
	}

	return &models.Principal{ID: claims.UserID, Username: claims.Email, Role: claims.Role}, nil
}

func (s *authService) dummy() []byte {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = s.hasher.Hash([]byte("not-a-real-password"))
	})
	return s.dummyHash
}
