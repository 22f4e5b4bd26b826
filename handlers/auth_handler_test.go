package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/darshan1301/psfa-landing-page-sub001/middleware"
	"github.com/darshan1301/psfa-landing-page-sub001/models"
	"github.com/darshan1301/psfa-landing-page-sub001/services"
	"github.com/golang-jwt/jwt/v5"
)

type fakeAuthService struct {
	signupFunc func(ctx context.Context, input services.SignupInput) (*models.AdminUser, error)
	loginFunc  func(ctx context.Context, input services.LoginInput) (*models.AdminUser, error)
}

func (f *fakeAuthService) Signup(ctx context.Context, input services.SignupInput) (*models.AdminUser, error) {
	return f.signupFunc(ctx, input)
}

func (f *fakeAuthService) Login(ctx context.Context, input services.LoginInput) (*models.AdminUser, error) {
	return f.loginFunc(ctx, input)
}

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == middleware.SessionCookieName {
			return c
		}
	}
	return nil
}

func TestLoginSetsSessionCookie(t *testing.T) {
	const secret = "test-secret-key"
	auth := &fakeAuthService{
		loginFunc: func(ctx context.Context, input services.LoginInput) (*models.AdminUser, error) {
			return &models.AdminUser{ID: 42, Email: "admin@example.com"}, nil
		},
	}
	handler := NewAuthHandler(auth, secret, false)

	req := httptest.NewRequest(http.MethodPost, "/panel/api/auth/login",
		strings.NewReader(`{"email":"admin@example.com","password":"longenoughpassword"}`))
	rec := httptest.NewRecorder()

	handler.Login(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	cookie := sessionCookie(rec.Result())
	if cookie == nil {
		t.Fatal("session cookie was not set")
	}
	if !cookie.HttpOnly {
		t.Error("session cookie must be HttpOnly")
	}
	if cookie.SameSite != http.SameSiteStrictMode {
		t.Errorf("SameSite = %v, want Strict", cookie.SameSite)
	}
	if cookie.MaxAge != int(sessionTTL.Seconds()) {
		t.Errorf("MaxAge = %d, want %d", cookie.MaxAge, int(sessionTTL.Seconds()))
	}
	if cookie.Secure {
		t.Error("Secure must be off outside production")
	}

	// Токен подписан тем же ключом, которым его проверяет гейт.
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.Parse(cookie.Value, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		t.Fatalf("cookie token does not verify: %v", err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("token claims are not MapClaims")
	}
	if sub, _ := claims["sub"].(float64); int(sub) != 42 {
		t.Errorf("sub claim = %v, want 42", claims["sub"])
	}
	if email, _ := claims["email"].(string); email != "admin@example.com" {
		t.Errorf("email claim = %v, want admin@example.com", claims["email"])
	}
}

func TestLoginSecureCookieInProduction(t *testing.T) {
	auth := &fakeAuthService{
		loginFunc: func(ctx context.Context, input services.LoginInput) (*models.AdminUser, error) {
			return &models.AdminUser{ID: 1, Email: "admin@example.com"}, nil
		},
	}
	handler := NewAuthHandler(auth, "test-secret-key", true)

	req := httptest.NewRequest(http.MethodPost, "/panel/api/auth/login",
		strings.NewReader(`{"email":"admin@example.com","password":"longenoughpassword"}`))
	rec := httptest.NewRecorder()

	handler.Login(rec, req)

	cookie := sessionCookie(rec.Result())
	if cookie == nil {
		t.Fatal("session cookie was not set")
	}
	if !cookie.Secure {
		t.Error("session cookie must be Secure in production")
	}
}

func TestLoginInvalidCredentialsSetsNoCookie(t *testing.T) {
	auth := &fakeAuthService{
		loginFunc: func(ctx context.Context, input services.LoginInput) (*models.AdminUser, error) {
			return nil, services.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(auth, "test-secret-key", false)

	req := httptest.NewRequest(http.MethodPost, "/panel/api/auth/login",
		strings.NewReader(`{"email":"admin@example.com","password":"wrong"}`))
	rec := httptest.NewRecorder()

	handler.Login(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if cookie := sessionCookie(rec.Result()); cookie != nil {
		t.Error("no session cookie may be issued on failed login")
	}
}

func TestLogoutClearsSessionCookie(t *testing.T) {
	handler := NewAuthHandler(&fakeAuthService{}, "test-secret-key", false)

	req := httptest.NewRequest(http.MethodPost, "/panel/api/auth/logout", nil)
	rec := httptest.NewRecorder()

	handler.Logout(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	cookie := sessionCookie(rec.Result())
	if cookie == nil {
		t.Fatal("logout must send a session cookie")
	}
	if cookie.MaxAge >= 0 || cookie.Value != "" {
		t.Errorf("logout cookie = (value %q, MaxAge %d), want cleared", cookie.Value, cookie.MaxAge)
	}
}
