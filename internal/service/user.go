package service

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/ekaspersen/isabellramsvik/internal/model"
	"github.com/ekaspersen/isabellramsvik/internal/storage/postgres"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	accessTokenDuration  = time.Hour * 24
	refreshTokenDuration = time.Hour * 24 * 7
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type UserService struct {
	Storage *postgres.Storage
}

func NewUserService(s *postgres.Storage) *UserService {
	return &UserService{Storage: s}
}

// Login пускает в админку только пользователей с is_admin
func (s *UserService) Login(ctx context.Context, email, password string) (string, string, error) {
	user, err := s.Storage.GetUserByEmail(ctx, email)
	if err != nil {
		return "", "", ErrInvalidCredentials
	}
	if !user.IsAdmin {
		return "", "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", "", ErrInvalidCredentials
	}

	access, refresh, err := GenerateTokens(user.ID)
	if err != nil {
		return "", "", err
	}
	if err := s.Storage.UpdateRefreshToken(ctx, user.ID, refresh); err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func (s *UserService) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	user, err := s.Storage.GetUserByRefresh(ctx, refreshToken)
	if err != nil {
		return "", "", ErrInvalidCredentials
	}
	access, refresh, err := GenerateTokens(user.ID)
	if err != nil {
		return "", "", err
	}
	if err := s.Storage.UpdateRefreshToken(ctx, user.ID, refresh); err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func (s *UserService) GetProfile(ctx context.Context, id int64) (*model.User, error) {
	return s.Storage.GetUserByID(ctx, id)
}

// EnsureAdmin создаёт администратора из переменных окружения при первом запуске
func (s *UserService) EnsureAdmin(ctx context.Context) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seeding")
		return nil
	}
	name := os.Getenv("ADMIN_NAME")
	if name == "" {
		name = "Admin"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.Storage.UpsertAdmin(ctx, email, name, string(hash))
}

func GenerateTokens(userID int64) (string, string, error) {
	secret := []byte(os.Getenv("JWT_SECRET"))

	access := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(accessTokenDuration).Unix(),
	})
	accessStr, err := access.SignedString(secret)
	if err != nil {
		return "", "", err
	}

	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(refreshTokenDuration).Unix(),
	})
	refreshStr, err := refresh.SignedString(secret)
	if err != nil {
		return "", "", err
	}
	return accessStr, refreshStr, nil
}

func ParseToken(tokenStr string) (int64, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return 0, errors.New("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid claims")
	}
	sub, ok := claims["sub"].(float64)
	if !ok {
		return 0, errors.New("invalid subject")
	}
	return int64(sub), nil
}
