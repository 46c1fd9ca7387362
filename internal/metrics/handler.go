package metrics

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/frahmantamala/recognition/internal/transport"
	"github.com/frahmantamala/recognition/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	UserStats(userID int64) (*UserStats, error)
	Participation() (*Participation, error)
	Network() (*Network, error)
	Summary() (*Summary, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

// GetUserStats handles GET /users/{id}/stats
func (h *Handler) GetUserStats(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	userID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.Logger.Error("GetUserStats: invalid user ID", "id", idStr)
		h.WriteError(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	stats, err := h.Service.UserStats(userID)
	if err != nil {
		h.Logger.Error("GetUserStats: service error", "error", err, "user_id", userID)
		h.WriteError(w, http.StatusInternalServerError, "failed to compute user stats")
		return
	}

	h.WriteJSON(w, http.StatusOK, stats)
}

// GetParticipation handles GET /metrics/participation
func (h *Handler) GetParticipation(w http.ResponseWriter, r *http.Request) {
	participation, err := h.Service.Participation()
	if err != nil {
		h.Logger.Error("GetParticipation: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to compute participation")
		return
	}

	h.WriteJSON(w, http.StatusOK, participation)
}

// GetNetwork handles GET /metrics/network
func (h *Handler) GetNetwork(w http.ResponseWriter, r *http.Request) {
	network, err := h.Service.Network()
	if err != nil {
		h.Logger.Error("GetNetwork: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to build recognition network")
		return
	}

	h.WriteJSON(w, http.StatusOK, network)
}

// GetSummary handles GET /metrics/summary
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Service.Summary()
	if err != nil {
		h.Logger.Error("GetSummary: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to build summary")
		return
	}

	h.WriteJSON(w, http.StatusOK, summary)
}
