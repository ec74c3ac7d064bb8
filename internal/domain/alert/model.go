package alert

import (
	"time"

	"github.com/google/uuid"
)

// Alert maps to the alert table. One row per screening run whose risk
// classification warranted clinician attention.
type Alert struct {
	ID        uuid.UUID `db:"id" json:"id"`
	PatientID uuid.UUID `db:"patient_id" json:"patient_id"`
	Message   string    `db:"message" json:"message"`
	Flagged   bool      `db:"flagged" json:"flagged"`
	Reviewed  bool      `db:"reviewed" json:"reviewed"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
