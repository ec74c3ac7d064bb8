package patient

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	patients    PatientRepository
	histories   HistoryRepository
	triages     TriageRepository
	labworks    LabworkRepository
	ultrasounds UltrasoundRepository
	lifestyles  LifestyleRepository
}

func NewService(
	patients PatientRepository,
	histories HistoryRepository,
	triages TriageRepository,
	labworks LabworkRepository,
	ultrasounds UltrasoundRepository,
	lifestyles LifestyleRepository,
) *Service {
	return &Service{
		patients:    patients,
		histories:   histories,
		triages:     triages,
		labworks:    labworks,
		ultrasounds: ultrasounds,
		lifestyles:  lifestyles,
	}
}

// -- Patient --

func (s *Service) CreatePatient(ctx context.Context, p *Patient) error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	return s.patients.Create(ctx, p)
}

func (s *Service) GetPatient(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.patients.GetByID(ctx, id)
}

func (s *Service) UpdatePatient(ctx context.Context, p *Patient) error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	return s.patients.Update(ctx, p)
}

func (s *Service) DeletePatient(ctx context.Context, id uuid.UUID) error {
	return s.patients.Delete(ctx, id)
}

func (s *Service) ListPatients(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	return s.patients.List(ctx, limit, offset)
}

// -- History --

func (s *Service) CreateHistory(ctx context.Context, h *History) error {
	if h.PatientID == uuid.Nil {
		return fmt.Errorf("patient_id is required")
	}
	if err := validateCounts(h); err != nil {
		return err
	}
	return s.histories.Create(ctx, h)
}

func validateCounts(h *History) error {
	for name, v := range map[string]*int{
		"gravida":               h.Gravida,
		"para":                  h.Para,
		"living_children":       h.LivingChildren,
		"previous_miscarriages": h.PreviousMiscarriages,
		"previous_stillbirths":  h.PreviousStillbirths,
	} {
		if v != nil && *v < 0 {
			return fmt.Errorf("%s cannot be negative", name)
		}
	}
	return nil
}

func (s *Service) GetHistory(ctx context.Context, id uuid.UUID) (*History, error) {
	return s.histories.GetByID(ctx, id)
}

func (s *Service) UpdateHistory(ctx context.Context, h *History) error {
	if err := validateCounts(h); err != nil {
		return err
	}
	return s.histories.Update(ctx, h)
}

func (s *Service) DeleteHistory(ctx context.Context, id uuid.UUID) error {
	return s.histories.Delete(ctx, id)
}

func (s *Service) ListHistoriesByPatient(ctx context.Context, patientID uuid.UUID) ([]*History, error) {
	return s.histories.ListByPatient(ctx, patientID)
}

// -- Triage --

func (s *Service) CreateTriage(ctx context.Context, t *Triage) error {
	if t.PatientID == uuid.Nil {
		return fmt.Errorf("patient_id is required")
	}
	if t.SystolicBP != nil && (*t.SystolicBP < 40 || *t.SystolicBP > 300) {
		return fmt.Errorf("systolic_bp out of range: %d", *t.SystolicBP)
	}
	if t.DiastolicBP != nil && (*t.DiastolicBP < 20 || *t.DiastolicBP > 200) {
		return fmt.Errorf("diastolic_bp out of range: %d", *t.DiastolicBP)
	}
	return s.triages.Create(ctx, t)
}

func (s *Service) GetTriage(ctx context.Context, id uuid.UUID) (*Triage, error) {
	return s.triages.GetByID(ctx, id)
}

func (s *Service) UpdateTriage(ctx context.Context, t *Triage) error {
	return s.triages.Update(ctx, t)
}

func (s *Service) DeleteTriage(ctx context.Context, id uuid.UUID) error {
	return s.triages.Delete(ctx, id)
}

func (s *Service) ListTriagesByPatient(ctx context.Context, patientID uuid.UUID) ([]*Triage, error) {
	return s.triages.ListByPatient(ctx, patientID)
}

// -- Labwork --

func (s *Service) CreateLabwork(ctx context.Context, l *Labwork) error {
	if l.PatientID == uuid.Nil {
		return fmt.Errorf("patient_id is required")
	}
	return s.labworks.Create(ctx, l)
}

func (s *Service) GetLabwork(ctx context.Context, id uuid.UUID) (*Labwork, error) {
	return s.labworks.GetByID(ctx, id)
}

func (s *Service) UpdateLabwork(ctx context.Context, l *Labwork) error {
	return s.labworks.Update(ctx, l)
}

func (s *Service) DeleteLabwork(ctx context.Context, id uuid.UUID) error {
	return s.labworks.Delete(ctx, id)
}

func (s *Service) ListLabworksByPatient(ctx context.Context, patientID uuid.UUID) ([]*Labwork, error) {
	return s.labworks.ListByPatient(ctx, patientID)
}

// -- Ultrasound --

func (s *Service) CreateUltrasound(ctx context.Context, u *Ultrasound) error {
	if u.PatientID == uuid.Nil {
		return fmt.Errorf("patient_id is required")
	}
	if u.FetusCount != nil && *u.FetusCount < 1 {
		return fmt.Errorf("fetus_count must be at least 1")
	}
	return s.ultrasounds.Create(ctx, u)
}

func (s *Service) GetUltrasound(ctx context.Context, id uuid.UUID) (*Ultrasound, error) {
	return s.ultrasounds.GetByID(ctx, id)
}

func (s *Service) UpdateUltrasound(ctx context.Context, u *Ultrasound) error {
	return s.ultrasounds.Update(ctx, u)
}

func (s *Service) DeleteUltrasound(ctx context.Context, id uuid.UUID) error {
	return s.ultrasounds.Delete(ctx, id)
}

func (s *Service) ListUltrasoundsByPatient(ctx context.Context, patientID uuid.UUID) ([]*Ultrasound, error) {
	return s.ultrasounds.ListByPatient(ctx, patientID)
}

// -- Lifestyle --

func (s *Service) CreateLifestyle(ctx context.Context, l *Lifestyle) error {
	if l.PatientID == uuid.Nil {
		return fmt.Errorf("patient_id is required")
	}
	return s.lifestyles.Create(ctx, l)
}

func (s *Service) GetLifestyle(ctx context.Context, id uuid.UUID) (*Lifestyle, error) {
	return s.lifestyles.GetByID(ctx, id)
}

func (s *Service) UpdateLifestyle(ctx context.Context, l *Lifestyle) error {
	return s.lifestyles.Update(ctx, l)
}

func (s *Service) DeleteLifestyle(ctx context.Context, id uuid.UUID) error {
	return s.lifestyles.Delete(ctx, id)
}

func (s *Service) ListLifestylesByPatient(ctx context.Context, patientID uuid.UUID) ([]*Lifestyle, error) {
	return s.lifestyles.ListByPatient(ctx, patientID)
}
