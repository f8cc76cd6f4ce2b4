// file: internals/features/sessions/controller/session_controller_test.go
package controller

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	m "engclass_backend/internals/features/sessions/model"
)

func sessionOn(t *testing.T, date string) m.SessionModel {
	t.Helper()
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		t.Fatalf("bad date %q: %v", date, err)
	}
	return m.SessionModel{
		SessionID:      uuid.New(),
		SessionClassID: uuid.New(),
		SessionDate:    d,
	}
}

func TestFilterSessionsByMonth(t *testing.T) {
	sessions := []m.SessionModel{
		sessionOn(t, "2025-02-28"),
		sessionOn(t, "2025-03-01"),
		sessionOn(t, "2025-03-31"),
		sessionOn(t, "2025-04-01"),
	}

	got := filterSessionsByMonth(sessions, 2025, time.March)
	if assert.Len(t, got, 2) {
		assert.Equal(t, "2025-03-01", got[0].SessionDate.Format("2006-01-02"))
		assert.Equal(t, "2025-03-31", got[1].SessionDate.Format("2006-01-02"))
	}
}

func TestFilterSessionsByMonth_NoMatch(t *testing.T) {
	sessions := []m.SessionModel{sessionOn(t, "2025-03-10")}
	assert.Empty(t, filterSessionsByMonth(sessions, 2025, time.April))
}

func TestSessionList_RejectsMalformedMonth(t *testing.T) {
	app := fiber.New()
	ctl := NewSessionController(nil, nil)
	app.Get("/api/sessions", ctl.List)

	// the month param is validated before any store read
	for _, month := range []string{"03-2025", "2025", "2025-3", "2025-13"} {
		req := httptest.NewRequest(fiber.MethodGet, "/api/sessions?month="+month, nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "month %q", month)
	}
}
