package patient

import (
	"context"

	"github.com/google/uuid"
)

type PatientRepository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id uuid.UUID) (*Patient, error)
	Update(ctx context.Context, p *Patient) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*Patient, int, error)
}

type HistoryRepository interface {
	Create(ctx context.Context, h *History) error
	GetByID(ctx context.Context, id uuid.UUID) (*History, error)
	Update(ctx context.Context, h *History) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*History, error)
}

type TriageRepository interface {
	Create(ctx context.Context, t *Triage) error
	GetByID(ctx context.Context, id uuid.UUID) (*Triage, error)
	Update(ctx context.Context, t *Triage) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Triage, error)
}

type LabworkRepository interface {
	Create(ctx context.Context, l *Labwork) error
	GetByID(ctx context.Context, id uuid.UUID) (*Labwork, error)
	Update(ctx context.Context, l *Labwork) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Labwork, error)
}

type UltrasoundRepository interface {
	Create(ctx context.Context, u *Ultrasound) error
	GetByID(ctx context.Context, id uuid.UUID) (*Ultrasound, error)
	Update(ctx context.Context, u *Ultrasound) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Ultrasound, error)
}

type LifestyleRepository interface {
	Create(ctx context.Context, l *Lifestyle) error
	GetByID(ctx context.Context, id uuid.UUID) (*Lifestyle, error)
	Update(ctx context.Context, l *Lifestyle) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Lifestyle, error)
}

// SnapshotRepository loads a patient and all five record collections in one
// shot for a screening run.
type SnapshotRepository interface {
	Fetch(ctx context.Context, patientID uuid.UUID) (*Snapshot, error)
}
