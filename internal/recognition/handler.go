package recognition

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/frahmantamala/recognition/internal/auth"
	"github.com/frahmantamala/recognition/internal/transport"
	"github.com/frahmantamala/recognition/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	CreateRecognition(senderID int64, dto CreateRecognitionDTO) (int64, error)
	GetRecognitions() ([]*RecognitionView, error)
	AddInteraction(recognitionID, userID int64, dto InteractionDTO) (int64, error)
	InteractionsFor(recognitionID, currentUserID int64) (*InteractionSummary, error)
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

// CreateRecognition handles POST /recognitions
func (h *Handler) CreateRecognition(w http.ResponseWriter, r *http.Request) {
	currentUser, ok := auth.UserFromContext(r.Context())
	if !ok || currentUser == nil {
		h.Logger.Error("CreateRecognition: user not found in context")
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto CreateRecognitionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateRecognition: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	recognitionID, err := h.Service.CreateRecognition(currentUser.ID, dto)
	if err != nil {
		h.Logger.Error("CreateRecognition: service error", "error", err, "sender_id", currentUser.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":        true,
		"recognition_id": recognitionID,
	})
}

// GetRecognitions handles GET /recognitions
func (h *Handler) GetRecognitions(w http.ResponseWriter, r *http.Request) {
	recognitions, err := h.Service.GetRecognitions()
	if err != nil {
		h.Logger.Error("GetRecognitions: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to get recognitions")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"recognitions": recognitions,
	})
}

// AddInteraction handles POST /recognitions/{id}/interactions
func (h *Handler) AddInteraction(w http.ResponseWriter, r *http.Request) {
	currentUser, ok := auth.UserFromContext(r.Context())
	if !ok || currentUser == nil {
		h.Logger.Error("AddInteraction: user not found in context")
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	recognitionID, ok := h.recognitionIDParam(w, r)
	if !ok {
		return
	}

	var dto InteractionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("AddInteraction: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	interactionID, err := h.Service.AddInteraction(recognitionID, currentUser.ID, dto)
	if err != nil {
		h.Logger.Error("AddInteraction: service error", "error", err, "recognition_id", recognitionID, "user_id", currentUser.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":        true,
		"interaction_id": interactionID,
	})
}

// GetInteractions handles GET /recognitions/{id}/interactions
func (h *Handler) GetInteractions(w http.ResponseWriter, r *http.Request) {
	currentUser, ok := auth.UserFromContext(r.Context())
	if !ok || currentUser == nil {
		h.Logger.Error("GetInteractions: user not found in context")
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	recognitionID, ok := h.recognitionIDParam(w, r)
	if !ok {
		return
	}

	summary, err := h.Service.InteractionsFor(recognitionID, currentUser.ID)
	if err != nil {
		h.Logger.Error("GetInteractions: service error", "error", err, "recognition_id", recognitionID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, summary)
}

func (h *Handler) recognitionIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.Logger.Error("invalid recognition ID", "id", idStr)
		h.WriteError(w, http.StatusBadRequest, "invalid recognition ID")
		return 0, false
	}
	return id, true
}
