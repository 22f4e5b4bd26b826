package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/darshan1301/psfa-landing-page-sub001/middleware"
	"github.com/darshan1301/psfa-landing-page-sub001/models"
	"github.com/darshan1301/psfa-landing-page-sub001/services"
	"github.com/golang-jwt/jwt/v5"
)

// Время жизни сессии панели администратора.
const sessionTTL = 24 * time.Hour

type AuthHandler struct {
	authService  services.AuthService
	jwtSecret    []byte
	secureCookie bool
}

func NewAuthHandler(authService services.AuthService, jwtSecret string, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		jwtSecret:    []byte(jwtSecret),
		secureCookie: secureCookie,
	}
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var input services.SignupInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	user, err := h.authService.Signup(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := h.setSessionCookie(w, user); err != nil {
		serverErrorResponse(w, r, err)
		return
	}

	response := jsonResponse{"user": user}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input services.LoginInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	user, err := h.authService.Login(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := h.setSessionCookie(w, user); err != nil {
		serverErrorResponse(w, r, err)
		return
	}

	response := jsonResponse{"user": user}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   h.secureCookie,
	})

	response := jsonResponse{"message": "logged out"}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// setSessionCookie issues a signed session token and stores it in an
// HTTP-only, same-site-strict cookie. Tokens are only ever issued here,
// after the auth service has verified the credentials.
func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, user *models.AdminUser) error {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(sessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(h.jwtSecret)
	if err != nil {
		return fmt.Errorf("failed to sign token: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    tokenString,
		Path:     "/",
		MaxAge:   int(sessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   h.secureCookie,
	})

	return nil
}
