package user

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/frahmantamala/recognition/internal/transport"
	"github.com/frahmantamala/recognition/pkg/logger"
)

type ServiceAPI interface {
	ListUsers() ([]*User, error)
	UpcomingBirthdays(today time.Time) ([]UpcomingBirthday, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
	}
}

// GetUsers handles GET /users
func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.ListUsers()
	if err != nil {
		h.Logger.Error("GetUsers: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to get users")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"users": users})
}

// GetUpcomingBirthdays handles GET /users/birthdays
func (h *Handler) GetUpcomingBirthdays(w http.ResponseWriter, r *http.Request) {
	birthdays, err := h.Service.UpcomingBirthdays(time.Now())
	if err != nil {
		h.Logger.Error("GetUpcomingBirthdays: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to get birthdays")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"birthdays": birthdays})
}
