package service

import (
	"context"
	"fmt"
	"log"

	"github.com/EgorLis/micro-posts/internal/domain"
)

const tokenTypeBearer = "bearer"

// AuthService связывает хешер паролей, менеджер токенов и хранилище
// пользователей в операции signup/login.
type AuthService struct {
	Log    *log.Logger
	Users  domain.UsersRepo
	Hasher domain.PasswordHasher
	Tokens domain.TokenManager
}

func NewAuth(logger *log.Logger, users domain.UsersRepo, hasher domain.PasswordHasher, tokens domain.TokenManager) *AuthService {
	return &AuthService{Log: logger, Users: users, Hasher: hasher, Tokens: tokens}
}

// Signup регистрирует пользователя и сразу выдаёт токен.
// Предпроверка по email даёт чистую ошибку в обычном случае; гонку
// check-then-act закрывает UNIQUE-констрейнт в БД — репозиторий маппит
// конфликт в тот же ErrEmailTaken.
func (s *AuthService) Signup(ctx context.Context, email, password string) (domain.TokenPair, error) {
	_, exists, err := s.Users.UserByEmail(ctx, email)
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("lookup user: %w", err)
	}
	if exists {
		return domain.TokenPair{}, domain.ErrEmailTaken
	}

	hash, err := s.Hasher.Hash(password)
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("hash password: %w", err)
	}

	u, err := s.Users.CreateUser(ctx, email, []byte(hash))
	if err != nil {
		return domain.TokenPair{}, err
	}

	tok, _, err := s.Tokens.Issue(ctx, u.Email, 0)
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("issue token: %w", err)
	}

	s.Log.Printf("signup ok user_id=%d", u.ID)
	return domain.TokenPair{AccessToken: tok, TokenType: tokenTypeBearer}, nil
}

// Login проверяет пароль и выдаёт токен. "Нет такого email" и "не тот
// пароль" возвращают одинаковый ErrInvalidCredentials, чтобы не давать
// перебирать адреса.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.TokenPair, error) {
	u, exists, err := s.Users.UserByEmail(ctx, email)
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("lookup user: %w", err)
	}
	if !exists {
		return domain.TokenPair{}, domain.ErrInvalidCredentials
	}

	ok, err := s.Hasher.Verify(password, string(u.PassHash))
	if err != nil || !ok {
		return domain.TokenPair{}, domain.ErrInvalidCredentials
	}

	tok, _, err := s.Tokens.Issue(ctx, u.Email, 0)
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("issue token: %w", err)
	}

	s.Log.Printf("login ok user_id=%d", u.ID)
	return domain.TokenPair{AccessToken: tok, TokenType: tokenTypeBearer}, nil
}
