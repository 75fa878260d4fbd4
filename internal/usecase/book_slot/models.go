package book_slot

// Request модель запроса на бронирование слота
type Request struct {
	SlotID string // идентификатор слота "<row>-<col>"
	Name   string // имя бронирующего, непустое
}

// Response модель ответа с результатом бронирования
type Response struct {
	SlotID    string // идентификатор слота
	Name      string // имя бронирующего
	Day       string // день слота
	Time      string // время слота
	Remaining int    // оставшиеся места после бронирования
}
