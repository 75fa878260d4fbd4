package get_names

import (
	"net/http"

	"prenota/internal/api/handlers"
)

const msgNamesUnavailable = "errore lettura nomi"

type Handler struct {
	useCase GetNamesUseCase
	logger  Logger
}

func NewHandler(useCase GetNamesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/names
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	names, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /names - Failed to get names: %v", err)
		handlers.RespondError(w, http.StatusInternalServerError, msgNamesUnavailable)
		return
	}

	// Empty column still serializes as [] rather than null
	if names == nil {
		names = []string{}
	}

	h.logger.Info("GET /names - Returning %d names", len(names))
	handlers.RespondJSON(w, http.StatusOK, names)
}
