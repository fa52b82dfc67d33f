package service

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"github.com/EgorLis/micro-posts/internal/auth/authn"
	"github.com/EgorLis/micro-posts/internal/auth/password"
	"github.com/EgorLis/micro-posts/internal/auth/token"
	"github.com/EgorLis/micro-posts/internal/domain"
)

// fakeUsers — UsersRepo в памяти с UNIQUE(email), как в Postgres
type fakeUsers struct {
	byEmail map[string]domain.User
	nextID  int64

	// эмуляция гонки signup: предпроверка по email ничего не видит,
	// но вставка упирается в констрейнт
	hideFromLookup bool
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byEmail: make(map[string]domain.User), nextID: 1}
}

func (f *fakeUsers) Close()                     {}
func (f *fakeUsers) Ping(context.Context) error { return nil }

func (f *fakeUsers) CreateUser(ctx context.Context, email string, passHash []byte) (domain.User, error) {
	if _, ok := f.byEmail[email]; ok {
		// какой констрейнт в БД, такой и тут
		return domain.User{}, domain.ErrEmailTaken
	}
	u := domain.User{ID: f.nextID, Email: email, PassHash: passHash, CreatedAt: time.Now()}
	f.nextID++
	f.byEmail[email] = u
	return u, nil
}

func (f *fakeUsers) UserByEmail(ctx context.Context, email string) (domain.User, bool, error) {
	if f.hideFromLookup {
		return domain.User{}, false, nil
	}
	u, ok := f.byEmail[email]
	return u, ok, nil
}

func (f *fakeUsers) UserByID(ctx context.Context, id domain.UserID) (domain.User, bool, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, true, nil
		}
	}
	return domain.User{}, false, nil
}

func testLogger() *log.Logger { return log.New(io.Discard, "", 0) }

func newAuthService(users *fakeUsers) (*AuthService, *token.Manager) {
	tm := token.New("test-secret", "test", 30*time.Minute)
	return NewAuth(testLogger(), users, password.NewDefault(), tm), tm
}

// Полный круг: signup -> login -> резолв токена обратно в пользователя
func TestSignupLoginResolve(t *testing.T) {
	users := newFakeUsers()
	svc, tm := newAuthService(users)
	ctx := context.Background()

	pair, err := svc.Signup(ctx, "user@example.com", "Str0ng!pass")
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if pair.TokenType != "bearer" {
		t.Errorf("token type = %q, want bearer", pair.TokenType)
	}
	if pair.AccessToken == "" {
		t.Fatal("empty access token")
	}

	logged, err := svc.Login(ctx, "user@example.com", "Str0ng!pass")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if logged.AccessToken == "" {
		t.Fatal("empty login token")
	}

	resolver := authn.New(tm, users)
	u, err := resolver.Resolve(ctx, logged.AccessToken)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if u.Email != "user@example.com" {
		t.Errorf("resolved email = %q", u.Email)
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	users := newFakeUsers()
	svc, _ := newAuthService(users)
	ctx := context.Background()

	if _, err := svc.Signup(ctx, "user@example.com", "Str0ng!pass"); err != nil {
		t.Fatalf("first Signup: %v", err)
	}
	_, err := svc.Signup(ctx, "user@example.com", "0ther!pass")
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("second Signup = %v, want ErrEmailTaken", err)
	}
	if len(users.byEmail) != 1 {
		t.Errorf("users count = %d, want 1", len(users.byEmail))
	}
}

// Невалидный пароль и неизвестный email неразличимы
func TestLoginInvalidCredentials(t *testing.T) {
	users := newFakeUsers()
	svc, _ := newAuthService(users)
	ctx := context.Background()

	if _, err := svc.Signup(ctx, "user@example.com", "Str0ng!pass"); err != nil {
		t.Fatalf("Signup: %v", err)
	}

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "user@example.com", "Wr0ng!pass"},
		{"unknown email", "other@example.com", "Str0ng!pass"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := svc.Login(ctx, c.email, c.password)
			if !errors.Is(err, domain.ErrInvalidCredentials) {
				t.Errorf("Login = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

// Гонка signup: предпроверка прошла, но вставка упёрлась в констрейнт
func TestSignupRaceMapsToEmailTaken(t *testing.T) {
	users := newFakeUsers()
	svc, _ := newAuthService(users)
	ctx := context.Background()

	if _, err := svc.Signup(ctx, "user@example.com", "Str0ng!pass"); err != nil {
		t.Fatalf("Signup: %v", err)
	}

	// пользователь "появился" между предпроверкой и вставкой
	users.hideFromLookup = true
	_, err := svc.Signup(ctx, "user@example.com", "Str0ng!pass")
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Errorf("Signup = %v, want ErrEmailTaken", err)
	}
}
