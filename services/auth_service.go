package services

import (
	"context"
	"errors"
	"time"

	"keyeditor-api/config"
	"keyeditor-api/models"
	"keyeditor-api/repositories"

	"github.com/golang-jwt/jwt/v4"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
	"gorm.io/gorm"
)

type AuthService interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	GetUserByID(id string) (*models.User, error)
}

type authService struct {
	userRepo repositories.UserRepository
	cfg      config.Config
	oauth    *oauth2.Config
	log      zerolog.Logger
}

func NewAuthService(userRepo repositories.UserRepository, cfg config.Config, log zerolog.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		cfg:      cfg,
		oauth: &oauth2.Config{
			ClientID:     cfg.OIDCClientID,
			ClientSecret: cfg.OIDCClientSecret,
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.OIDCAuthURL,
				TokenURL: cfg.OIDCTokenURL,
			},
		},
		log: log,
	}
}

type idTokenClaims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Login exchanges the authorization code for tokens at the identity provider,
// upserts the user from the id token's claims, and issues this backend's own
// session token. The id token arrives over the provider's TLS channel in the
// same exchange, so its claims are read without a local signature check.
func (s *authService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	token, err := s.oauth.Exchange(ctx, req.Code, oauth2.SetAuthURLParam("redirect_uri", req.RedirectURI))
	if err != nil {
		return nil, models.Forbidden("code exchange failed")
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, models.Forbidden("identity provider returned no id token")
	}

	claims := &idTokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(rawIDToken, claims); err != nil {
		return nil, models.Forbidden("malformed id token")
	}
	if claims.Subject == "" {
		return nil, models.Forbidden("id token without subject")
	}

	user := &models.User{ID: claims.Subject, Name: claims.Name, Email: claims.Email}
	if err := s.userRepo.Upsert(user); err != nil {
		s.log.Error().Str("op", "auth.login").Err(err).Msg("operation failed")
		return nil, models.InternalServer("")
	}

	sessionToken, err := s.generateToken(user)
	if err != nil {
		s.log.Error().Str("op", "auth.login").Err(err).Msg("operation failed")
		return nil, models.InternalServer("")
	}

	return &models.AuthResponse{Token: sessionToken, User: *user}, nil
}

func (s *authService) GetUserByID(id string) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NotFound("user not found")
		}
		s.log.Error().Str("op", "auth.getUser").Err(err).Msg("operation failed")
		return nil, models.InternalServer("")
	}
	return user, nil
}

func (s *authService) generateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"name":    user.Name,
		"exp":     now.Add(s.cfg.JWTExpiration).Unix(),
		"iat":     now.Unix(),
		"nbf":     now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.cfg.JWTSecret)
}
