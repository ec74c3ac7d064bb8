package screening

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Darryl-Mbae/mobileuurka-hospital-sub000/internal/domain/patient"
)

func doScreening(t *testing.T, h *testHarness, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(uuid.New().String())
	if err := NewHandler(h.pipeline).RunScreening(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestRunScreeningStatusOK(t *testing.T) {
	h := newHarness(fullSnapshot())
	rec := doScreening(t, h, `{}`)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRunScreeningStatusUnprocessable(t *testing.T) {
	h := newHarness(&patient.Snapshot{Patient: &patient.Patient{}})
	rec := doScreening(t, h, `{}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422 for missing prerequisites, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), StepPatientHistory) {
		t.Errorf("body should name the missing step: %s", rec.Body.String())
	}
}

func TestRunScreeningStatusConflict(t *testing.T) {
	snap := fullSnapshot()
	snap.Triages = []*patient.Triage{{Date: daysAgo(40)}}
	snap.Labworks = []*patient.Labwork{{Date: daysAgo(90)}}
	h := newHarness(snap)
	rec := doScreening(t, h, `{}`)
	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409 for pending confirmation, got %d", rec.Code)
	}
}

func TestRunScreeningStatusBadGateway(t *testing.T) {
	h := newHarness(fullSnapshot())
	h.scorer.err = http.ErrHandlerTimeout
	rec := doScreening(t, h, `{}`)
	if rec.Code != http.StatusBadGateway {
		t.Errorf("expected 502 for scoring failure, got %d", rec.Code)
	}
}

func TestRunScreeningDeclineReturnsOK(t *testing.T) {
	snap := fullSnapshot()
	snap.Triages = []*patient.Triage{{Date: daysAgo(40)}}
	snap.Labworks = []*patient.Labwork{{Date: daysAgo(90)}}
	h := newHarness(snap)
	rec := doScreening(t, h, `{"confirm_stale": false}`)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 for an explicit decline, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), string(StateCancelled)) {
		t.Errorf("body should report cancellation: %s", rec.Body.String())
	}
}
