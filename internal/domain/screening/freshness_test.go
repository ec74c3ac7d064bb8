package screening

import (
	"testing"
	"time"

	"github.com/Darryl-Mbae/mobileuurka-hospital-sub000/internal/domain/patient"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func daysAgo(n int) *time.Time {
	t := testNow.Add(-time.Duration(n) * 24 * time.Hour)
	return &t
}

func TestIsStale(t *testing.T) {
	cases := []struct {
		name string
		date *time.Time
		want bool
	}{
		{"nil date", nil, true},
		{"fresh", daysAgo(10), false},
		{"exactly at threshold", daysAgo(30), false},
		{"past threshold", daysAgo(40), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsStale(tc.date, 30, testNow); got != tc.want {
				t.Errorf("IsStale = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestLatestByDateOutOfOrder(t *testing.T) {
	old, mid, newest := daysAgo(100), daysAgo(50), daysAgo(5)
	records := []patient.Record{
		&patient.Triage{Date: mid},
		&patient.Triage{Date: newest},
		&patient.Triage{Date: nil},
		&patient.Triage{Date: old},
	}
	got := latestByDate(records)
	if got == nil || got.RecordDate() == nil || !got.RecordDate().Equal(*newest) {
		t.Errorf("expected newest record selected regardless of position")
	}
}

func TestLatestByDateAllNil(t *testing.T) {
	records := []patient.Record{
		&patient.Labwork{},
		&patient.Labwork{},
	}
	if got := latestByDate(records); got == nil {
		t.Error("a record with nil date still counts as latest when nothing is dated")
	}
	if latestByDate(nil) != nil {
		t.Error("empty slice has no latest record")
	}
}

func TestStaleSourcesOrderAndMembership(t *testing.T) {
	snap := &patient.Snapshot{
		Histories:   []*patient.History{{Date: daysAgo(365)}},
		Triages:     []*patient.Triage{{Date: daysAgo(40)}},
		Labworks:    []*patient.Labwork{{Date: daysAgo(90)}},
		Ultrasounds: []*patient.Ultrasound{{Date: daysAgo(3)}},
		Lifestyles:  []*patient.Lifestyle{{Date: daysAgo(400)}},
	}
	got := StaleSources(snap, 30, testNow)
	if len(got) != 2 || got[0] != SourceLabwork || got[1] != SourceTriage {
		t.Errorf("expected [labwork triage], got %v", got)
	}
}

func TestStaleSourcesHistoriesNeverChecked(t *testing.T) {
	snap := &patient.Snapshot{
		Histories: []*patient.History{{Date: daysAgo(1000)}},
		Triages:   []*patient.Triage{{Date: daysAgo(1)}},
	}
	if got := StaleSources(snap, 30, testNow); len(got) != 0 {
		t.Errorf("histories must never be reported stale, got %v", got)
	}
}

func TestStaleSourcesEmptyCollectionSkipped(t *testing.T) {
	snap := &patient.Snapshot{
		Triages: []*patient.Triage{{Date: daysAgo(40)}},
	}
	got := StaleSources(snap, 30, testNow)
	if len(got) != 1 || got[0] != SourceTriage {
		t.Errorf("absent labworks/ultrasounds must not be flagged, got %v", got)
	}
}

func TestStaleSourcesLatestGoverns(t *testing.T) {
	// An old record followed by a fresh one: the collection is fresh.
	snap := &patient.Snapshot{
		Triages: []*patient.Triage{
			{Date: daysAgo(200)},
			{Date: daysAgo(2)},
		},
	}
	if got := StaleSources(snap, 30, testNow); len(got) != 0 {
		t.Errorf("freshness is judged on the latest record, got %v", got)
	}
}
