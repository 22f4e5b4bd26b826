package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// ProtectedPrefix покрывает панель администратора и её API.
	ProtectedPrefix = "/panel"

	LoginPath  = "/panel/login"
	SignupPath = "/panel/signup"

	SessionCookieName = "token"
)

// Пути входа всегда пропускаются, независимо от состояния cookie.
var openPanelPaths = map[string]struct{}{
	LoginPath:                {},
	SignupPath:               {},
	"/panel/api/auth/login":  {},
	"/panel/api/auth/signup": {},
}

// PanelGate is a pure decision over (path, cookie, current time, key): allow
// the request through or redirect to the login page. It never touches
// persisted state.
type PanelGate struct {
	secret []byte
	now    func() time.Time
}

func NewPanelGate(secret string) *PanelGate {
	return &PanelGate{
		secret: []byte(secret),
		now:    time.Now,
	}
}

func (g *PanelGate) Gate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		// Вне защищённого префикса запросы не инспектируются.
		if !strings.HasPrefix(path, ProtectedPrefix) {
			next.ServeHTTP(w, r)
			return
		}
		if _, open := openPanelPaths[path]; open {
			next.ServeHTTP(w, r)
			return
		}

		cookie, err := r.Cookie(SessionCookieName)
		if err != nil {
			g.redirectToLogin(w, r, false)
			return
		}

		claims, err := g.verify(cookie.Value)
		if err != nil {
			// Токен был, но не прошёл проверку — чистим cookie.
			g.redirectToLogin(w, r, true)
			return
		}

		ctx := context.WithValue(r.Context(), sessionContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// verify checks structure, signature and expiry. An empty key is a fatal
// misconfiguration and the gate fails closed: every token is rejected.
func (g *PanelGate) verify(tokenString string) (jwt.MapClaims, error) {
	if len(g.secret) == 0 {
		return nil, jwt.ErrInvalidKey
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(g.now),
	)

	token, err := parser.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return g.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

func (g *PanelGate) redirectToLogin(w http.ResponseWriter, r *http.Request, clearCookie bool) {
	if clearCookie {
		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteStrictMode,
		})
	}
	http.Redirect(w, r, LoginPath, http.StatusSeeOther)
}
