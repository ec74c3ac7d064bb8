package screening

import (
	"fmt"
	"strings"
)

// staleConfirmationMin is the number of stale sources at which submission
// pauses for explicit confirmation. A single stale source proceeds silently.
const staleConfirmationMin = 2

var sourceLabels = map[Source]string{
	SourceLabwork:    "lab results",
	SourceTriage:     "triage vitals",
	SourceUltrasound: "ultrasound findings",
}

// ConfirmationRequired reports whether the stale-source count demands an
// explicit go-ahead before anything is sent.
func ConfirmationRequired(stale []Source) bool {
	return len(stale) >= staleConfirmationMin
}

// ConfirmationMessage names the stale sources and warns what submission
// will do with them.
func ConfirmationMessage(stale []Source) string {
	labels := make([]string, len(stale))
	for i, s := range stale {
		labels[i] = sourceLabels[s]
	}
	return fmt.Sprintf(
		"The following records are out of date: %s. Their fields will be submitted as %q. Proceed anyway?",
		strings.Join(labels, ", "), Sentinel)
}
