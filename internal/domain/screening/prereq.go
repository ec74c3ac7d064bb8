package screening

import "github.com/Darryl-Mbae/mobileuurka-hospital-sub000/internal/domain/patient"

// Intake step names surfaced to the client when a screening cannot start.
const (
	StepPatientHistory = "patient_history"
	StepTriage         = "triage"
)

// MissingPrerequisites lists intake steps that must exist before a screening
// run may assemble or transmit anything. History comes before triage in the
// intake flow, so it is reported first.
func MissingPrerequisites(s *patient.Snapshot) []string {
	var missing []string
	if len(s.Histories) == 0 {
		missing = append(missing, StepPatientHistory)
	}
	if len(s.Triages) == 0 {
		missing = append(missing, StepTriage)
	}
	return missing
}
