package screening

import (
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/Darryl-Mbae/mobileuurka-hospital-sub000/internal/domain/patient"
)

// Assemble flattens a snapshot into the scoring feature payload. Every
// declared feature is present in the result: values read from the latest
// record of each source, the sentinel everywhere a value is unavailable or
// its staleness-sensitive source has gone stale. Pure function of
// (snapshot, threshold, now).
func Assemble(s *patient.Snapshot, thresholdDays int, now time.Time) map[string]interface{} {
	stale := make(map[Source]bool)
	for _, src := range StaleSources(s, thresholdDays, now) {
		stale[src] = true
	}

	latest := make(map[Source]patient.Record)
	fields := make(map[Source]map[string]interface{})
	for _, src := range []Source{SourceHistory, SourceTriage, SourceLabwork, SourceUltrasound, SourceLifestyle} {
		if r := latestByDate(recordsFor(s, src)); r != nil {
			latest[src] = r
			fields[src] = r.Fields()
		}
	}

	payload := make(map[string]interface{}, len(fieldSpecs))
	for _, spec := range fieldSpecs {
		payload[spec.Dest] = resolve(spec, fields, stale)
	}
	return payload
}

func resolve(spec FieldSpec, fields map[Source]map[string]interface{}, stale map[Source]bool) interface{} {
	if spec.StaleSensitive && stale[spec.Source] {
		return Sentinel
	}
	src, ok := fields[spec.Source]
	if !ok {
		return Sentinel
	}
	v, ok := src[spec.SourceField]
	if !ok {
		return Sentinel
	}
	if s, isStr := v.(string); isStr {
		if s == "" {
			return Sentinel
		}
		return capitalize(s)
	}
	return v
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
