package get_slots

import getSlots "prenota/internal/usecase/get_slots"

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Header []string `json:"header"`
	Slots  []Slot   `json:"slots"`
}

// Slot модель слота в HTTP ответе
type Slot struct {
	ID        string `json:"id"`
	Time      string `json:"time"`
	Day       string `json:"day"`
	Capacity  int    `json:"capacity"`
	Booked    int    `json:"booked"`
	Remaining int    `json:"remaining"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSlots.Response) *SlotsResponse {
	slots := make([]Slot, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = Slot{
			ID:        s.ID,
			Time:      s.Time,
			Day:       s.Day,
			Capacity:  s.Capacity,
			Booked:    s.Booked,
			Remaining: s.Remaining(),
		}
	}

	return &SlotsResponse{
		Header: resp.Header,
		Slots:  slots,
	}
}
