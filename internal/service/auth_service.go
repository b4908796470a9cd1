package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"vaul-ai-be/internal/dto"
	"vaul-ai-be/internal/entity"
	"vaul-ai-be/internal/pkg/serverutils"
	"vaul-ai-be/internal/repository/session"
	"vaul-ai-be/internal/repository/specification"
	"vaul-ai-be/internal/repository/unitofwork"
	"vaul-ai-be/pkg/store"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const refreshTokenTTL = 7 * 24 * time.Hour

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}

type authService struct {
	uowFactory   unitofwork.RepositoryFactory
	sessionStore session.SessionStore
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, sessionStore session.SessionStore) IAuthService {
	return &authService{
		uowFactory:   uowFactory,
		sessionStore: sessionStore,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Id:           uuid.New(),
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	return &dto.RegisterResponse{Id: user.Id, Email: user.Email}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.New("invalid email or password")
	}

	return s.issueTokens(ctx, user.Id)
}

// Refresh rotates the refresh token: the presented token is revoked and a
// fresh pair is issued.
func (s *authService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.LoginResponse, error) {
	tokenHash := hashToken(req.RefreshToken)

	sess, err := s.sessionStore.Get(ctx, tokenHash)
	if err != nil {
		return nil, err
	}
	if sess == nil || time.Now().After(sess.ExpiresAt) {
		return nil, errors.New("invalid or expired refresh token")
	}

	if err := s.sessionStore.Delete(ctx, tokenHash); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, sess.UserId)
}

func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	return s.sessionStore.Delete(ctx, hashToken(refreshToken))
}

func (s *authService) issueTokens(ctx context.Context, userId uuid.UUID) (*dto.LoginResponse, error) {
	accessToken, err := serverutils.IssueAccessToken(userId)
	if err != nil {
		return nil, err
	}

	refreshToken, err := generateRefreshToken()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sess := &store.Session{
		TokenHash: hashToken(refreshToken),
		UserId:    userId,
		IssuedAt:  now,
		ExpiresAt: now.Add(refreshTokenTTL),
	}
	if err := s.sessionStore.Save(ctx, sess, refreshTokenTTL); err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(serverutils.AccessTokenTTL.Seconds()),
	}, nil
}

func generateRefreshToken() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return hex.EncodeToString(raw), nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
