package alert

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Messages keyed by risk classification. Any other classification string
// produces no alert.
var classificationMessages = map[string]string{
	"High": "High risk screening result. Immediate clinical review required.",
	"Mid":  "Moderate risk screening result. Review at next opportunity.",
	"Low":  "Low risk screening result recorded.",
}

type Service struct {
	repo   Repository
	logger zerolog.Logger
}

func NewService(repo Repository, logger zerolog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Dispatch persists an alert for a recognized classification. Returns the
// created alert, or nil when the classification does not warrant one.
func (s *Service) Dispatch(ctx context.Context, patientID uuid.UUID, classification string) (*Alert, error) {
	msg, ok := classificationMessages[classification]
	if !ok {
		return nil, nil
	}
	a := &Alert{
		PatientID: patientID,
		Message:   msg,
		Flagged:   true,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		s.logger.Error().Err(err).
			Str("patient_id", patientID.String()).
			Str("classification", classification).
			Msg("failed to persist alert")
		return nil, fmt.Errorf("persist alert: %w", err)
	}
	return a, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Alert, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) MarkReviewed(ctx context.Context, id uuid.UUID) error {
	return s.repo.MarkReviewed(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Alert, int, error) {
	return s.repo.ListByPatient(ctx, patientID, limit, offset)
}
