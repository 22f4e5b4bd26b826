package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret-key"

func signTestToken(t *testing.T, secret string, method jwt.SigningMethod, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(method, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return signed
}

func newTestGate(secret string, now time.Time) *PanelGate {
	return &PanelGate{
		secret: []byte(secret),
		now:    func() time.Time { return now },
	}
}

// clearedSessionCookie возвращает cookie сессии из ответа, если она была
// сброшена (MaxAge < 0).
func clearedSessionCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == SessionCookieName && c.MaxAge < 0 {
			return c
		}
	}
	return nil
}

func TestGateAllowsPathsOutsidePanel(t *testing.T) {
	gate := newTestGate(testSecret, time.Now())

	nextCalled := false
	handler := gate.Gate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	}))

	for _, path := range []string{"/", "/api/sports", "/about", "/panels-of-glass"} {
		nextCalled = false
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)

		handler.ServeHTTP(rec, req)

		if !nextCalled {
			t.Errorf("%s: next handler was not called", path)
		}
		if rec.Code != http.StatusOK {
			t.Errorf("%s: status = %d, want %d", path, rec.Code, http.StatusOK)
		}
	}
}

func TestGateAllowsOpenPanelPaths(t *testing.T) {
	gate := newTestGate(testSecret, time.Now())

	handler := gate.Gate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	paths := []string{
		"/panel/login",
		"/panel/signup",
		"/panel/api/auth/login",
		"/panel/api/auth/signup",
	}
	for _, path := range paths {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, path, nil)

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("%s: status = %d, want %d (open path must bypass the gate)", path, rec.Code, http.StatusOK)
		}
	}
}

func TestGateRedirectsWithoutCookie(t *testing.T) {
	gate := newTestGate(testSecret, time.Now())

	handler := gate.Gate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be called")
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/panel/sports", nil)

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != LoginPath {
		t.Errorf("Location = %q, want %q", loc, LoginPath)
	}
	// Cookie не было — чистить нечего.
	if c := clearedSessionCookie(rec.Result()); c != nil {
		t.Error("session cookie was cleared although no cookie was sent")
	}
}

func TestGateRedirectsAndClearsCookieOnInvalidToken(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name  string
		token string
	}{
		{
			name: "wrong signing key",
			token: signTestToken(t, "some-other-key", jwt.SigningMethodHS256, jwt.MapClaims{
				"sub": 1,
				"exp": now.Add(time.Hour).Unix(),
			}),
		},
		{
			name: "expired token",
			token: signTestToken(t, testSecret, jwt.SigningMethodHS256, jwt.MapClaims{
				"sub": 1,
				"exp": now.Add(-time.Minute).Unix(),
			}),
		},
		{
			name:  "garbage token",
			token: "not-a-jwt-at-all",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate := newTestGate(testSecret, now)
			handler := gate.Gate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("next handler must not be called")
			}))

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/panel/sports", nil)
			req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: tt.token})

			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusSeeOther {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
			}
			if loc := rec.Header().Get("Location"); loc != LoginPath {
				t.Errorf("Location = %q, want %q", loc, LoginPath)
			}
			cleared := clearedSessionCookie(rec.Result())
			if cleared == nil {
				t.Fatal("invalid token was present but the session cookie was not cleared")
			}
			if cleared.Value != "" {
				t.Errorf("cleared cookie value = %q, want empty", cleared.Value)
			}
		})
	}
}

func TestGateRejectsNonHS256Token(t *testing.T) {
	now := time.Now()
	// HS512 подписан тем же секретом, но метод не входит в допустимые.
	token := signTestToken(t, testSecret, jwt.SigningMethodHS512, jwt.MapClaims{
		"sub": 1,
		"exp": now.Add(time.Hour).Unix(),
	})

	gate := newTestGate(testSecret, now)
	handler := gate.Gate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be called")
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/panel/sports", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
}

func TestGateFailsClosedOnEmptySecret(t *testing.T) {
	now := time.Now()
	token := signTestToken(t, "", jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": 1,
		"exp": now.Add(time.Hour).Unix(),
	})

	gate := newTestGate("", now)
	handler := gate.Gate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be called with an empty signing key")
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/panel/sports", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
}

func TestGatePassesValidTokenAndExposesClaims(t *testing.T) {
	now := time.Now()
	token := signTestToken(t, testSecret, jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   42,
		"email": "admin@example.com",
		"exp":   now.Add(time.Hour).Unix(),
	})

	gate := newTestGate(testSecret, now)

	var gotID int
	var gotEmail string
	handler := gate.Gate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		gotID, err = GetAdminIDFromContext(r.Context())
		if err != nil {
			t.Errorf("GetAdminIDFromContext: %v", err)
		}
		gotEmail, err = GetAdminEmailFromContext(r.Context())
		if err != nil {
			t.Errorf("GetAdminEmailFromContext: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/panel/api/sports", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if gotID != 42 {
		t.Errorf("admin ID from context = %d, want 42", gotID)
	}
	if gotEmail != "admin@example.com" {
		t.Errorf("admin email from context = %q, want %q", gotEmail, "admin@example.com")
	}
}
