package screening

import (
	"time"

	"github.com/Darryl-Mbae/mobileuurka-hospital-sub000/internal/domain/patient"
)

// IsStale reports whether a record date is too old to trust. A nil date is
// always stale.
func IsStale(date *time.Time, thresholdDays int, now time.Time) bool {
	if date == nil {
		return true
	}
	return now.Sub(*date) > time.Duration(thresholdDays)*24*time.Hour
}

// latestByDate picks the record with the most recent date. Records with a
// nil date sort oldest. Returns nil for an empty slice. Order of insertion
// never matters; ties keep the earlier element.
func latestByDate(records []patient.Record) patient.Record {
	var latest patient.Record
	for _, r := range records {
		if latest == nil {
			latest = r
			continue
		}
		ld, rd := latest.RecordDate(), r.RecordDate()
		switch {
		case rd == nil:
		case ld == nil:
			latest = r
		case rd.After(*ld):
			latest = r
		}
	}
	return latest
}

func historyRecords(s *patient.Snapshot) []patient.Record {
	out := make([]patient.Record, len(s.Histories))
	for i, r := range s.Histories {
		out[i] = r
	}
	return out
}

func triageRecords(s *patient.Snapshot) []patient.Record {
	out := make([]patient.Record, len(s.Triages))
	for i, r := range s.Triages {
		out[i] = r
	}
	return out
}

func labworkRecords(s *patient.Snapshot) []patient.Record {
	out := make([]patient.Record, len(s.Labworks))
	for i, r := range s.Labworks {
		out[i] = r
	}
	return out
}

func ultrasoundRecords(s *patient.Snapshot) []patient.Record {
	out := make([]patient.Record, len(s.Ultrasounds))
	for i, r := range s.Ultrasounds {
		out[i] = r
	}
	return out
}

func lifestyleRecords(s *patient.Snapshot) []patient.Record {
	out := make([]patient.Record, len(s.Lifestyles))
	for i, r := range s.Lifestyles {
		out[i] = r
	}
	return out
}

func recordsFor(s *patient.Snapshot, src Source) []patient.Record {
	switch src {
	case SourceHistory:
		return historyRecords(s)
	case SourceTriage:
		return triageRecords(s)
	case SourceLabwork:
		return labworkRecords(s)
	case SourceUltrasound:
		return ultrasoundRecords(s)
	case SourceLifestyle:
		return lifestyleRecords(s)
	}
	return nil
}

// StaleSources returns the staleness-checked collections whose latest record
// is stale, in the fixed order labworks, triages, ultrasounds. Histories and
// lifestyles are background data and never checked.
func StaleSources(s *patient.Snapshot, thresholdDays int, now time.Time) []Source {
	var stale []Source
	for _, src := range []Source{SourceLabwork, SourceTriage, SourceUltrasound} {
		latest := latestByDate(recordsFor(s, src))
		if latest == nil {
			// An absent collection has nothing to go stale; its fields
			// resolve to the sentinel anyway.
			continue
		}
		if IsStale(latest.RecordDate(), thresholdDays, now) {
			stale = append(stale, src)
		}
	}
	return stale
}
