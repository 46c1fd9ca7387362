package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/frahmantamala/recognition/internal/transport"
	"github.com/frahmantamala/recognition/internal/user"
	"github.com/frahmantamala/recognition/pkg/logger"
)

type ServiceAPI interface {
	Register(dto RegisterDTO) (*user.User, error)
	Authenticate(dto LoginDTO) (*user.User, error)
	CreateSession(userID int64) (string, error)
	SessionUser(token string) (*user.User, error)
	DeleteSession(token string) error
}

// CookieConfig controls the session cookie attributes.
type CookieConfig struct {
	MaxAge time.Duration
	Secure bool
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
	Cookies CookieConfig
}

func NewHandler(svc ServiceAPI, cookies CookieConfig) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
		Cookies:     cookies,
	}
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     transport.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.Cookies.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   h.Cookies.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     transport.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.Cookies.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Register handles POST /auth/register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var dto RegisterDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.Service.Register(dto)
	if err != nil {
		switch {
		case err == ErrEmailTaken:
			h.WriteError(w, http.StatusBadRequest, "email already exists")
		default:
			if _, ok := err.(ValidationError); ok {
				h.WriteError(w, http.StatusBadRequest, err.Error())
			} else {
				h.Logger.Error("registration failed", "error", err)
				h.WriteError(w, http.StatusInternalServerError, "internal server error")
			}
		}
		return
	}

	token, err := h.Service.CreateSession(u.ID)
	if err != nil {
		h.Logger.Error("failed to create session after registration", "error", err, "user_id", u.ID)
		h.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.setSessionCookie(w, token)
	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"user": u})
}

// Login handles POST /auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.Service.Authenticate(dto)
	if err != nil {
		switch err.(type) {
		case ValidationError:
			h.WriteError(w, http.StatusBadRequest, err.Error())
		default:
			if err == ErrInvalidCredentials {
				h.WriteError(w, http.StatusUnauthorized, "invalid credentials")
			} else {
				h.Logger.Error("authentication failed", "error", err)
				h.WriteError(w, http.StatusInternalServerError, "internal server error")
			}
		}
		return
	}

	token, err := h.Service.CreateSession(u.ID)
	if err != nil {
		h.Logger.Error("failed to create session", "error", err, "user_id", u.ID)
		h.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.setSessionCookie(w, token)
	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"user": u})
}

// Logout handles POST /auth/logout. Soft auth: an absent or unknown session
// still logs out cleanly.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	token := h.ExtractSessionToken(r)
	if token != "" {
		if err := h.Service.DeleteSession(token); err != nil {
			h.Logger.Error("failed to delete session", "error", err)
			h.WriteError(w, http.StatusInternalServerError, "internal server error")
			return
		}
	}

	h.clearSessionCookie(w)
	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// Me handles GET /auth/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	token := h.ExtractSessionToken(r)
	if token == "" {
		h.WriteError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	u, err := h.Service.SessionUser(token)
	if err != nil {
		h.Logger.Error("failed to resolve session", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if u == nil {
		h.WriteError(w, http.StatusUnauthorized, "invalid session")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"user": u})
}

// SessionMiddleware authenticates the request via the session cookie and
// injects the user into the request context.
func (h *Handler) SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := h.ExtractSessionToken(r)
		if token == "" {
			h.WriteError(w, http.StatusUnauthorized, "not authenticated")
			return
		}

		u, err := h.Service.SessionUser(token)
		if err != nil {
			h.Logger.Error("session middleware: failed to resolve session", "error", err)
			h.WriteError(w, http.StatusInternalServerError, "internal server error")
			return
		}
		if u == nil {
			h.WriteError(w, http.StatusUnauthorized, "invalid session")
			return
		}

		next.ServeHTTP(w, r.WithContext(ContextWithUser(r.Context(), u)))
	})
}
