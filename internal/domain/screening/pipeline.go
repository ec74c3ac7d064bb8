package screening

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Darryl-Mbae/mobileuurka-hospital-sub000/internal/domain/alert"
	"github.com/Darryl-Mbae/mobileuurka-hospital-sub000/internal/domain/patient"
	"github.com/Darryl-Mbae/mobileuurka-hospital-sub000/internal/platform/websocket"
)

// State names the stops of a screening run.
type State string

const (
	StateIdle                 State = "idle"
	StateRemediation          State = "remediation"
	StateAwaitingConfirmation State = "awaiting_confirmation"
	StateCancelled            State = "cancelled"
	StateSubmitting           State = "submitting"
	StateFailed               State = "failed"
	StateEnriching            State = "enriching"
	StateComplete             State = "complete"
)

// SnapshotFetcher loads the patient and all record collections.
type SnapshotFetcher interface {
	Fetch(ctx context.Context, patientID uuid.UUID) (*patient.Snapshot, error)
}

// RiskScorer is phase one of submission. Failure is fatal.
type RiskScorer interface {
	Score(ctx context.Context, req *ScoreRequest) (*ScoreResponse, error)
}

// FactorExtractor is phase two. Failure is logged, never fatal.
type FactorExtractor interface {
	Extract(ctx context.Context, features map[string]interface{}) error
}

// AlertDispatcher records a risk alert for a recognized classification.
type AlertDispatcher interface {
	Dispatch(ctx context.Context, patientID uuid.UUID, classification string) (*alert.Alert, error)
}

// CacheRefresher invalidates the tenant's cached patient lists.
type CacheRefresher interface {
	Refresh(ctx context.Context, tenant string) error
}

// Input is everything a run needs beyond its collaborators. ConfirmStale is
// tri-state: nil pauses at the confirmation gate, false cancels, true
// proceeds past it.
type Input struct {
	PatientID    uuid.UUID
	OperatorID   string
	TenantScope  string
	ConfirmStale *bool
}

// Result reports where a run ended and what the client should show.
type Result struct {
	State               State    `json:"state"`
	MissingSteps        []string `json:"missing_steps,omitempty"`
	StaleSources        []string `json:"stale_sources,omitempty"`
	ConfirmationMessage string   `json:"confirmation_message,omitempty"`
	Classification      string   `json:"classification,omitempty"`
	AlertCreated        bool     `json:"alert_created"`
	Enriched            bool     `json:"enriched"`
}

// Pipeline drives a screening run: prerequisite check, staleness gate,
// two-phase submission, alerting, and post-success refresh/notify.
type Pipeline struct {
	snapshots     SnapshotFetcher
	scorer        RiskScorer
	extractor     FactorExtractor
	alerts        AlertDispatcher
	cache         CacheRefresher
	notifier      websocket.Notifier
	thresholdDays int
	logger        zerolog.Logger
	now           func() time.Time
}

func NewPipeline(
	snapshots SnapshotFetcher,
	scorer RiskScorer,
	extractor FactorExtractor,
	alerts AlertDispatcher,
	cache CacheRefresher,
	notifier websocket.Notifier,
	thresholdDays int,
	logger zerolog.Logger,
) *Pipeline {
	return &Pipeline{
		snapshots:     snapshots,
		scorer:        scorer,
		extractor:     extractor,
		alerts:        alerts,
		cache:         cache,
		notifier:      notifier,
		thresholdDays: thresholdDays,
		logger:        logger,
		now:           time.Now,
	}
}

func sourceNames(sources []Source) []string {
	names := make([]string, len(sources))
	for i, s := range sources {
		names[i] = string(s)
	}
	return names
}

// Run executes one screening attempt. Only a *ValidationError or
// *FatalSubmissionError (or a snapshot load failure) comes back as an
// error; every other outcome is expressed in the Result state.
func (p *Pipeline) Run(ctx context.Context, in *Input) (*Result, error) {
	snap, err := p.snapshots.Fetch(ctx, in.PatientID)
	if err != nil {
		return nil, err
	}

	if missing := MissingPrerequisites(snap); len(missing) > 0 {
		return &Result{State: StateRemediation, MissingSteps: missing},
			&ValidationError{MissingSteps: missing}
	}

	now := p.now()
	stale := StaleSources(snap, p.thresholdDays, now)
	result := &Result{StaleSources: sourceNames(stale)}

	if ConfirmationRequired(stale) {
		switch {
		case in.ConfirmStale == nil:
			result.State = StateAwaitingConfirmation
			result.ConfirmationMessage = ConfirmationMessage(stale)
			return result, nil
		case !*in.ConfirmStale:
			result.State = StateCancelled
			return result, nil
		}
	}

	result.State = StateSubmitting
	payload := Assemble(snap, p.thresholdDays, now)

	score, err := p.scorer.Score(ctx, &ScoreRequest{
		Payload:     payload,
		OperatorID:  in.OperatorID,
		TenantScope: in.TenantScope,
	})
	if err != nil {
		result.State = StateFailed
		return result, &FatalSubmissionError{Err: err}
	}
	result.Classification = score.Classification

	if score.Classification != "" {
		a, err := p.alerts.Dispatch(ctx, in.PatientID, score.Classification)
		if err != nil {
			// Scoring already succeeded; a lost alert must not undo that.
			p.logger.Error().Err(&AlertPersistenceError{Err: err}).
				Str("patient_id", in.PatientID.String()).
				Msg("alert not recorded")
		}
		result.AlertCreated = a != nil
	}

	result.State = StateEnriching
	if err := p.extractor.Extract(ctx, payload); err != nil {
		p.logger.Warn().Err(&NonFatalEnrichmentError{Err: err}).
			Str("patient_id", in.PatientID.String()).
			Msg("enrichment skipped")
		result.State = StateComplete
		return result, nil
	}
	result.Enriched = true

	if err := p.cache.Refresh(ctx, in.TenantScope); err != nil {
		p.logger.Warn().Err(err).Str("tenant", in.TenantScope).Msg("patient list cache refresh failed")
	}
	p.notify(ctx, in.PatientID, score)

	result.State = StateComplete
	return result, nil
}

func (p *Pipeline) notify(ctx context.Context, patientID uuid.UUID, score *ScoreResponse) {
	data, err := json.Marshal(score)
	if err != nil {
		data = nil
	}
	event := websocket.Event{
		EventType:  "record.created",
		Topic:      "records",
		RecordType: "screening",
		PatientID:  patientID.String(),
		RecordData: data,
	}
	if err := p.notifier.Publish(ctx, event); err != nil {
		p.logger.Warn().Err(err).Msg("screening event not published")
	}
}
