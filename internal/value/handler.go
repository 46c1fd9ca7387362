package value

import (
	"log/slog"
	"net/http"

	"github.com/frahmantamala/recognition/internal/transport"
	"github.com/frahmantamala/recognition/pkg/logger"
)

type ServiceAPI interface {
	GetAllValues() ([]Value, error)
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

// GetValues handles GET /values
func (h *Handler) GetValues(w http.ResponseWriter, r *http.Request) {
	values, err := h.Service.GetAllValues()
	if err != nil {
		h.Logger.Error("GetValues: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to get values")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"values": values})
}
