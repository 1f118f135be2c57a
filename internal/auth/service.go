package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/uniteam/uniteam-backend/config"
)

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// WelcomeMailer sends the account-created email with the temporary password.
type WelcomeMailer interface {
	SendWelcome(email, firstName, tempPassword string) error
}

type Service interface {
	Login(input LoginInput) (*TokenPair, *User, error)
	Refresh(refreshToken string) (string, error)
	GetUserByID(userID uint) (User, error)
	GetUserByEmail(email string) (*User, error)
	ListUsers() ([]User, error)
	ListUsersByGroup(groupID uint) ([]User, error)
	CreateUser(input CreateUserInput) (*User, error)
	EnsureAdmin(email, password, firstName, lastName string, groupID uint) error
}

type service struct {
	repo          Repository
	mailer        WelcomeMailer
	accessSecret  string
	refreshSecret string
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewService(r Repository, mailer WelcomeMailer, cfg *config.Config) Service {
	return &service{
		repo:          r,
		mailer:        mailer,
		accessSecret:  cfg.JWTAccessSecret,
		refreshSecret: cfg.JWTRefreshSecret,
		accessTTL:     time.Duration(cfg.JWTAccessTTLHours) * time.Hour,
		refreshTTL:    time.Duration(cfg.JWTRefreshTTLHours) * time.Hour,
	}
}

// =============================
// Login
// =============================

type LoginInput struct {
	Email    string
	Password string
}

func (s *service) Login(in LoginInput) (*TokenPair, *User, error) {
	user, err := s.repo.FindByEmail(strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, errors.New("incorrect email or password")
		}
		return nil, nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, nil, errors.New("incorrect email or password")
	}

	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return nil, nil, err
	}
	refreshToken, err := s.generateRefreshToken(user)
	if err != nil {
		return nil, nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
	}, user, nil
}

func (s *service) generateAccessToken(user *User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"sub":      user.Email,
		"is_admin": user.IsAdmin,
		"exp":      time.Now().Add(s.accessTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.accessSecret))
}

func (s *service) generateRefreshToken(user *User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"exp":     time.Now().Add(s.refreshTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.refreshSecret))
}

// =============================
// Refresh
// =============================

func (s *service) Refresh(refreshToken string) (string, error) {
	token, err := jwt.Parse(refreshToken, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.refreshSecret), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid refresh token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["user_id"] == nil {
		return "", errors.New("invalid token claims")
	}

	userID := uint(claims["user_id"].(float64))
	user, err := s.repo.FindByID(userID)
	if err != nil {
		return "", errors.New("user not found")
	}

	return s.generateAccessToken(&user)
}

// =============================
// Users
// =============================

func (s *service) GetUserByID(userID uint) (User, error) {
	return s.repo.FindByID(userID)
}

func (s *service) GetUserByEmail(email string) (*User, error) {
	return s.repo.FindByEmail(strings.ToLower(strings.TrimSpace(email)))
}

func (s *service) ListUsers() ([]User, error) {
	return s.repo.FindAll()
}

func (s *service) ListUsersByGroup(groupID uint) ([]User, error) {
	return s.repo.FindByGroupID(groupID)
}

type CreateUserInput struct {
	Email     string
	FirstName string
	LastName  string
	GroupID   uint
	IsAdmin   bool
}

// CreateUser provisions an account with a random temporary password and
// emails the credentials to the new member.
func (s *service) CreateUser(in CreateUserInput) (*User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if _, err := s.repo.FindByEmail(email); err == nil {
		return nil, errors.New("email already registered")
	}

	tempPassword := uuid.NewString()
	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &User{
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		GroupID:      in.GroupID,
		IsAdmin:      in.IsAdmin,
	}

	if err := s.repo.Create(user); err != nil {
		return nil, err
	}

	// Credentials go out by email. A failed send is not a failed creation,
	// an admin can always reset the password afterwards.
	if s.mailer != nil {
		if err := s.mailer.SendWelcome(user.Email, user.FirstName, tempPassword); err != nil {
			return user, errors.New("user created but welcome email failed")
		}
	}

	return user, nil
}

// EnsureAdmin seeds the bootstrap admin account when no admin exists yet.
func (s *service) EnsureAdmin(email, password, firstName, lastName string, groupID uint) error {
	count, err := s.repo.CountAdmins()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.repo.Create(&User{
		Email:        strings.ToLower(email),
		PasswordHash: string(hash),
		FirstName:    firstName,
		LastName:     lastName,
		GroupID:      groupID,
		IsAdmin:      true,
	})
}
