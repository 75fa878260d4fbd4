package get_slots

import "prenota/internal/domain"

// Response снапшот таблицы слотов: заголовок дней и все слоты по порядку
type Response struct {
	Header []string
	Slots  []domain.Slot
}
