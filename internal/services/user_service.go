package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"deudasBack/internal/models"
	"deudasBack/utils"
)

// UserStore is the persistence surface the user service needs.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUserByID(ctx context.Context, id int) (models.User, error)
	GetUserByCorreo(ctx context.Context, correo string) (models.User, error)
	SetSession(ctx context.Context, userID int, session models.Session) error
}

type UserService struct {
	UserRepo     UserStore
	TokenManager *utils.Manager
	AccessTTL    time.Duration
	RefreshTTL   time.Duration
}

func (s *UserService) SignUp(ctx context.Context, user models.User) (models.Tokens, error) {
	existing, err := s.UserRepo.GetUserByCorreo(ctx, user.Correo)
	if err != nil {
		return models.Tokens{}, err
	}
	if existing.Correo != "" {
		return models.Tokens{}, models.ErrDuplicateEmail
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.Tokens{}, err
	}
	user.Password = string(hashedPassword)
	if user.Role == "" {
		user.Role = "user"
	}

	created, err := s.UserRepo.CreateUser(ctx, user)
	if err != nil {
		return models.Tokens{}, err
	}

	return s.issueTokens(ctx, created)
}

func (s *UserService) SignIn(ctx context.Context, correo, password string) (models.Tokens, error) {
	user, err := s.UserRepo.GetUserByCorreo(ctx, correo)
	if err != nil {
		return models.Tokens{}, err
	}
	if user.ID == 0 {
		log.Printf("User not found: %s", correo)
		return models.Tokens{}, models.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		log.Printf("Invalid password for user: %s", correo)
		return models.Tokens{}, models.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user)
}

func (s *UserService) issueTokens(ctx context.Context, user models.User) (models.Tokens, error) {
	accessToken, err := s.TokenManager.NewAccessToken(user.ID, user.Role, s.AccessTTL)
	if err != nil {
		log.Printf("Error signing token: %v", err)
		return models.Tokens{}, err
	}

	return s.createSession(ctx, user, accessToken)
}

func (s *UserService) createSession(ctx context.Context, user models.User, accessToken string) (models.Tokens, error) {
	var (
		res models.Tokens
		err error
	)

	res.AccessToken = accessToken

	res.RefreshToken, err = s.TokenManager.NewRefreshToken()
	if err != nil {
		// Fallback when the random source fails
		res.RefreshToken = uuid.New().String()
	}

	session := models.Session{
		UserID:       user.ID,
		Role:         user.Role,
		RefreshToken: res.RefreshToken,
		ExpiresAt:    time.Now().Add(s.RefreshTTL),
	}

	err = s.UserRepo.SetSession(ctx, user.ID, session)
	if err != nil {
		return res, err
	}

	return res, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id int) (models.User, error) {
	return s.UserRepo.GetUserByID(ctx, id)
}
