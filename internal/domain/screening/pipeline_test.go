package screening

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Darryl-Mbae/mobileuurka-hospital-sub000/internal/domain/alert"
	"github.com/Darryl-Mbae/mobileuurka-hospital-sub000/internal/domain/patient"
	"github.com/Darryl-Mbae/mobileuurka-hospital-sub000/internal/platform/websocket"
)

type mockSnapshots struct {
	snap *patient.Snapshot
	err  error
}

func (m *mockSnapshots) Fetch(ctx context.Context, patientID uuid.UUID) (*patient.Snapshot, error) {
	return m.snap, m.err
}

type mockScorer struct {
	resp   *ScoreResponse
	err    error
	called bool
}

func (m *mockScorer) Score(ctx context.Context, req *ScoreRequest) (*ScoreResponse, error) {
	m.called = true
	return m.resp, m.err
}

type mockExtractor struct {
	err    error
	called bool
}

func (m *mockExtractor) Extract(ctx context.Context, features map[string]interface{}) error {
	m.called = true
	return m.err
}

type mockAlerts struct {
	err            error
	classification string
	created        bool
}

func (m *mockAlerts) Dispatch(ctx context.Context, patientID uuid.UUID, classification string) (*alert.Alert, error) {
	m.classification = classification
	if m.err != nil {
		return nil, m.err
	}
	m.created = true
	return &alert.Alert{PatientID: patientID, Flagged: true}, nil
}

type mockCache struct{ refreshed bool }

func (m *mockCache) Refresh(ctx context.Context, tenant string) error {
	m.refreshed = true
	return nil
}

type mockNotifier struct{ events []websocket.Event }

func (m *mockNotifier) Publish(ctx context.Context, event websocket.Event) error {
	m.events = append(m.events, event)
	return nil
}

type testHarness struct {
	pipeline  *Pipeline
	scorer    *mockScorer
	extractor *mockExtractor
	alerts    *mockAlerts
	cache     *mockCache
	notifier  *mockNotifier
}

func newHarness(snap *patient.Snapshot) *testHarness {
	h := &testHarness{
		scorer:    &mockScorer{resp: &ScoreResponse{Classification: "Low"}},
		extractor: &mockExtractor{},
		alerts:    &mockAlerts{},
		cache:     &mockCache{},
		notifier:  &mockNotifier{},
	}
	h.pipeline = NewPipeline(
		&mockSnapshots{snap: snap},
		h.scorer, h.extractor, h.alerts, h.cache, h.notifier,
		30, zerolog.Nop(),
	)
	h.pipeline.now = func() time.Time { return testNow }
	return h
}

func runInput() *Input {
	return &Input{
		PatientID:   uuid.New(),
		OperatorID:  "op-1",
		TenantScope: "clinic_a",
	}
}

func TestRunMissingPrerequisitesHaltsBeforeNetwork(t *testing.T) {
	h := newHarness(&patient.Snapshot{Patient: &patient.Patient{}})
	result, err := h.pipeline.Run(context.Background(), runInput())
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if result.State != StateRemediation {
		t.Errorf("expected remediation state, got %s", result.State)
	}
	if len(result.MissingSteps) == 0 || result.MissingSteps[0] != StepPatientHistory {
		t.Errorf("first missing step must be patient_history, got %v", result.MissingSteps)
	}
	if h.scorer.called || h.extractor.called {
		t.Error("no network activity allowed while prerequisites are missing")
	}
}

func TestRunTwoStaleSourcesPauses(t *testing.T) {
	snap := fullSnapshot()
	snap.Triages = []*patient.Triage{{Date: daysAgo(40)}}
	snap.Labworks = []*patient.Labwork{{Date: daysAgo(90)}}
	h := newHarness(snap)

	result, err := h.pipeline.Run(context.Background(), runInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.State != StateAwaitingConfirmation {
		t.Errorf("expected awaiting_confirmation, got %s", result.State)
	}
	if result.ConfirmationMessage == "" {
		t.Error("confirmation message must be populated")
	}
	if h.scorer.called {
		t.Error("scoring must not run before confirmation")
	}
}

func TestRunDeclinedConfirmationCancels(t *testing.T) {
	snap := fullSnapshot()
	snap.Triages = []*patient.Triage{{Date: daysAgo(40)}}
	snap.Labworks = []*patient.Labwork{{Date: daysAgo(90)}}
	h := newHarness(snap)

	in := runInput()
	decline := false
	in.ConfirmStale = &decline
	result, err := h.pipeline.Run(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.State != StateCancelled {
		t.Errorf("expected cancelled, got %s", result.State)
	}
	if h.scorer.called || h.extractor.called {
		t.Error("a declined confirmation makes no network calls")
	}
}

func TestRunConfirmedStaleProceeds(t *testing.T) {
	snap := fullSnapshot()
	snap.Triages = []*patient.Triage{{Date: daysAgo(40)}}
	snap.Labworks = []*patient.Labwork{{Date: daysAgo(90)}}
	h := newHarness(snap)

	in := runInput()
	confirm := true
	in.ConfirmStale = &confirm
	result, err := h.pipeline.Run(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.State != StateComplete {
		t.Errorf("expected complete, got %s", result.State)
	}
	if !h.scorer.called {
		t.Error("scoring should run after confirmation")
	}
}

func TestRunSingleStaleSourceNoGate(t *testing.T) {
	snap := fullSnapshot()
	snap.Triages = []*patient.Triage{{Date: daysAgo(40)}}
	h := newHarness(snap)

	result, err := h.pipeline.Run(context.Background(), runInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.State != StateComplete {
		t.Errorf("one stale source proceeds without confirmation, got %s", result.State)
	}
}

func TestRunPhaseOneFailureIsFatal(t *testing.T) {
	h := newHarness(fullSnapshot())
	h.scorer.err = errors.New("connection refused")

	result, err := h.pipeline.Run(context.Background(), runInput())
	var fErr *FatalSubmissionError
	if !errors.As(err, &fErr) {
		t.Fatalf("expected FatalSubmissionError, got %v", err)
	}
	if result.State != StateFailed {
		t.Errorf("expected failed, got %s", result.State)
	}
	if h.alerts.created || h.cache.refreshed || h.extractor.called {
		t.Error("phase one failure must skip alert, enrichment and refresh")
	}
	if len(h.notifier.events) != 0 {
		t.Error("no events on a failed run")
	}
}

func TestRunHighClassificationCreatesAlert(t *testing.T) {
	h := newHarness(fullSnapshot())
	h.scorer.resp = &ScoreResponse{Classification: "High"}

	result, err := h.pipeline.Run(context.Background(), runInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.AlertCreated || h.alerts.classification != "High" {
		t.Error("high classification must create an alert before phase two")
	}
	if result.Classification != "High" {
		t.Errorf("classification should surface in the result, got %s", result.Classification)
	}
}

func TestRunEmptyClassificationNoAlert(t *testing.T) {
	h := newHarness(fullSnapshot())
	h.scorer.resp = &ScoreResponse{}

	result, err := h.pipeline.Run(context.Background(), runInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.AlertCreated || h.alerts.classification != "" {
		t.Error("empty classification must not dispatch an alert")
	}
}

func TestRunPhaseTwoFailureStillCompletes(t *testing.T) {
	h := newHarness(fullSnapshot())
	h.scorer.resp = &ScoreResponse{Classification: "High"}
	h.extractor.err = errors.New("timeout")

	result, err := h.pipeline.Run(context.Background(), runInput())
	if err != nil {
		t.Fatalf("phase two failure must not surface as an error: %v", err)
	}
	if result.State != StateComplete {
		t.Errorf("expected complete, got %s", result.State)
	}
	if !result.AlertCreated {
		t.Error("alert from phase one survives a phase two failure")
	}
	if result.Enriched {
		t.Error("result must record that enrichment was skipped")
	}
	if h.cache.refreshed || len(h.notifier.events) != 0 {
		t.Error("refresh and notify run only after successful enrichment")
	}
}

func TestRunAlertFailureDoesNotChangeOutcome(t *testing.T) {
	h := newHarness(fullSnapshot())
	h.scorer.resp = &ScoreResponse{Classification: "Mid"}
	h.alerts.err = errors.New("db down")

	result, err := h.pipeline.Run(context.Background(), runInput())
	if err != nil {
		t.Fatalf("alert persistence failure must not fail the run: %v", err)
	}
	if result.State != StateComplete {
		t.Errorf("expected complete, got %s", result.State)
	}
	if result.AlertCreated {
		t.Error("result must not claim an alert that was not stored")
	}
}

func TestRunFullSuccessRefreshesAndNotifies(t *testing.T) {
	h := newHarness(fullSnapshot())

	result, err := h.pipeline.Run(context.Background(), runInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.State != StateComplete || !result.Enriched {
		t.Errorf("expected enriched complete run, got %+v", result)
	}
	if !h.cache.refreshed {
		t.Error("patient list cache must be refreshed after full success")
	}
	if len(h.notifier.events) != 1 {
		t.Fatalf("expected one realtime event, got %d", len(h.notifier.events))
	}
	ev := h.notifier.events[0]
	if ev.EventType != "record.created" || ev.RecordType != "screening" {
		t.Errorf("unexpected event shape: %+v", ev)
	}
}
