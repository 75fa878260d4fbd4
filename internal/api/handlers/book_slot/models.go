package book_slot

import bookSlot "prenota/internal/usecase/book_slot"

// BookSlotRequest HTTP request model
type BookSlotRequest struct {
	SlotID string `json:"slotId"`
	Name   string `json:"name"`
}

// BookSlotResponse HTTP response model
type BookSlotResponse struct {
	Success   bool   `json:"success"`
	SlotID    string `json:"slotId"`
	Day       string `json:"day"`
	Time      string `json:"time"`
	Remaining int    `json:"remaining"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookSlotRequest) ToUseCaseRequest() *bookSlot.Request {
	return &bookSlot.Request{
		SlotID: r.SlotID,
		Name:   r.Name,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookSlot.Response) *BookSlotResponse {
	return &BookSlotResponse{
		Success:   true,
		SlotID:    resp.SlotID,
		Day:       resp.Day,
		Time:      resp.Time,
		Remaining: resp.Remaining,
	}
}
