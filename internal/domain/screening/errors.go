package screening

import "fmt"

// ValidationError reports missing prerequisite intake steps. Nothing is
// assembled or sent while it is outstanding.
type ValidationError struct {
	MissingSteps []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing prerequisite steps: %v", e.MissingSteps)
}

// FatalSubmissionError wraps a phase-one scoring failure. It is the only
// error that halts a run.
type FatalSubmissionError struct {
	Err error
}

func (e *FatalSubmissionError) Error() string {
	return fmt.Sprintf("risk scoring submission failed: %v", e.Err)
}

func (e *FatalSubmissionError) Unwrap() error { return e.Err }

// NonFatalEnrichmentError wraps a phase-two factor-extraction failure. The
// run still completes; post-success actions are skipped.
type NonFatalEnrichmentError struct {
	Err error
}

func (e *NonFatalEnrichmentError) Error() string {
	return fmt.Sprintf("factor extraction failed: %v", e.Err)
}

func (e *NonFatalEnrichmentError) Unwrap() error { return e.Err }

// AlertPersistenceError wraps a failure to store the risk alert. Logged,
// never halts the run.
type AlertPersistenceError struct {
	Err error
}

func (e *AlertPersistenceError) Error() string {
	return fmt.Sprintf("alert persistence failed: %v", e.Err)
}

func (e *AlertPersistenceError) Unwrap() error { return e.Err }
