package get_slots

import (
	"net/http"

	"prenota/internal/api/handlers"
)

const msgSlotsUnavailable = "errore nella lettura degli slot"

type Handler struct {
	useCase GetSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /slots - Failed to get slots: %v", err)
		handlers.RespondError(w, http.StatusInternalServerError, msgSlotsUnavailable)
		return
	}

	h.logger.Info("GET /slots - Returning %d slots", len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// HandleReload POST /api/slots/reload
func (h *Handler) HandleReload(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Reload(r.Context())
	if err != nil {
		h.logger.Error("POST /slots/reload - Failed to reload slots: %v", err)
		handlers.RespondError(w, http.StatusInternalServerError, msgSlotsUnavailable)
		return
	}

	h.logger.Info("POST /slots/reload - Snapshot reloaded, %d slots", len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
