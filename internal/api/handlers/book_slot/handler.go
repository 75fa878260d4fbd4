package book_slot

import (
	"errors"
	"net/http"

	"prenota/internal/api/handlers"
	bookSlot "prenota/internal/usecase/book_slot"
)

const (
	msgInvalidRequestBody = "corpo della richiesta non valido"
	msgMissingData        = "dati mancanti"
	msgSlotNotFound       = "slot non trovato"
	msgSlotFull           = "slot pieno"
	msgPersistFailed      = "errore registrazione prenotazione"
	msgSlotsUnavailable   = "errore nella lettura degli slot"
)

type Handler struct {
	useCase BookSlotUseCase
	logger  Logger
}

func NewHandler(useCase BookSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/book
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /book - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, bookSlot.ErrInvalidInput):
			h.logger.Warn("POST /book - Invalid input: slot_id=%s", req.SlotID)
			handlers.RespondBadRequest(w, msgMissingData)

		case errors.Is(err, bookSlot.ErrSlotNotFound):
			h.logger.Warn("POST /book - Slot not found: slot_id=%s", req.SlotID)
			handlers.RespondBadRequest(w, msgSlotNotFound)

		case errors.Is(err, bookSlot.ErrSlotFull):
			h.logger.Warn("POST /book - Slot full: slot_id=%s", req.SlotID)
			handlers.RespondBadRequest(w, msgSlotFull)

		case errors.Is(err, bookSlot.ErrCacheLoadFailed):
			h.logger.Error("POST /book - Cache load failed: slot_id=%s, error=%v", req.SlotID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgSlotsUnavailable)

		case errors.Is(err, bookSlot.ErrPersistFailed):
			h.logger.Error("POST /book - Persist failed: slot_id=%s, error=%v", req.SlotID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgPersistFailed)

		default:
			h.logger.Error("POST /book - Failed to book slot: slot_id=%s, error=%v", req.SlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /book - Booking created: slot_id=%s, name=%s, remaining=%d",
		result.SlotID, result.Name, result.Remaining)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
