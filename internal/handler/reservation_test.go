package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Validation failures are rejected before any repository call, so these
// tests run the handler with no database behind it.

func postReservation(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewReservationHandler(nil, 100)
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Create(e.NewContext(req, rec)))
	return rec
}

func TestCreateRejectsMissingGuestName(t *testing.T) {
	rec := postReservation(t, `{
		"address": "12 Galle Road",
		"phone": "+94 77 123 4567",
		"roomType": "STANDARD",
		"boardType": "HB",
		"checkInDate": "2024-01-01",
		"checkOutDate": "2024-01-04"
	}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Message string `json:"message"`
		Errors  []struct {
			Field          string `json:"field"`
			DefaultMessage string `json:"defaultMessage"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "guestName", body.Errors[0].Field)
	assert.Contains(t, body.Errors[0].DefaultMessage, "required")
}

func TestCreateRejectsZeroNightStay(t *testing.T) {
	rec := postReservation(t, `{
		"guestName": "Nimal Perera",
		"address": "12 Galle Road",
		"phone": "+94 77 123 4567",
		"roomType": "STANDARD",
		"boardType": "HB",
		"checkInDate": "2024-01-04",
		"checkOutDate": "2024-01-04"
	}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "at least one day")
}

func TestCreateRejectsInvalidJSON(t *testing.T) {
	rec := postReservation(t, `{"guestName": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid JSON")
}
