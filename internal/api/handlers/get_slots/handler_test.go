package get_slots_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	handler "prenota/internal/api/handlers/get_slots"
	"prenota/internal/domain"
	getSlots "prenota/internal/usecase/get_slots"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	resp    *getSlots.Response
	err     error
	reloads int
}

func (f *fakeUseCase) Execute(ctx context.Context) (*getSlots.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func (f *fakeUseCase) Reload(ctx context.Context) (*getSlots.Response, error) {
	f.reloads++
	return f.Execute(ctx)
}

func Test_GetSlotsHandler_Success(t *testing.T) {
	uc := &fakeUseCase{resp: &getSlots.Response{
		Header: []string{"Lunedì", "Martedì"},
		Slots: []domain.Slot{
			{ID: "0-0", Time: "15:00", Day: "Lunedì", Capacity: 3, Booked: 1},
			{ID: "0-1", Time: "15:00", Day: "Martedì", Capacity: 2},
		},
	}}

	h := handler.NewHandler(uc, nopLogger{})
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/slots", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Header []string `json:"header"`
		Slots  []struct {
			ID        string `json:"id"`
			Time      string `json:"time"`
			Day       string `json:"day"`
			Capacity  int    `json:"capacity"`
			Booked    int    `json:"booked"`
			Remaining int    `json:"remaining"`
		} `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, []string{"Lunedì", "Martedì"}, body.Header)
	require.Len(t, body.Slots, 2)
	assert.Equal(t, "0-0", body.Slots[0].ID)
	assert.Equal(t, 2, body.Slots[0].Remaining)
	assert.Equal(t, 2, body.Slots[1].Remaining)
}

func Test_GetSlotsHandler_CacheLoadFailure(t *testing.T) {
	uc := &fakeUseCase{err: getSlots.ErrCacheLoadFailed}

	h := handler.NewHandler(uc, nopLogger{})
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/slots", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func Test_GetSlotsHandler_Reload(t *testing.T) {
	uc := &fakeUseCase{resp: &getSlots.Response{Header: []string{"Lunedì"}}}

	h := handler.NewHandler(uc, nopLogger{})
	rec := httptest.NewRecorder()
	h.HandleReload(rec, httptest.NewRequest(http.MethodPost, "/api/slots/reload", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, uc.reloads)
}
