package screening

import (
	"reflect"
	"testing"

	"github.com/Darryl-Mbae/mobileuurka-hospital-sub000/internal/domain/patient"
)

func intp(v int) *int           { return &v }
func strp(v string) *string     { return &v }
func floatp(v float64) *float64 { return &v }

func fullSnapshot() *patient.Snapshot {
	return &patient.Snapshot{
		Patient: &patient.Patient{Name: "Test"},
		Histories: []*patient.History{{
			Date:    daysAgo(200),
			Gravida: intp(3),
			Para:    intp(2),
		}},
		Triages: []*patient.Triage{{
			Date:       daysAgo(10),
			SystolicBP: intp(120),
			EdemaLevel: strp("mild"),
		}},
		Labworks: []*patient.Labwork{{
			Date:       daysAgo(10),
			Hemoglobin: floatp(11.2),
			BloodGroup: strp("o"),
		}},
		Ultrasounds: []*patient.Ultrasound{{
			Date:       daysAgo(10),
			FetusCount: intp(1),
		}},
		Lifestyles: []*patient.Lifestyle{{
			Date:        daysAgo(300),
			StressLevel: strp("low"),
		}},
	}
}

func TestAssembleFullPopulation(t *testing.T) {
	payload := Assemble(fullSnapshot(), 30, testNow)
	if len(payload) != len(fieldSpecs) {
		t.Fatalf("expected %d features, got %d", len(fieldSpecs), len(payload))
	}
	for _, spec := range fieldSpecs {
		if _, ok := payload[spec.Dest]; !ok {
			t.Errorf("feature %s missing from payload", spec.Dest)
		}
	}
}

func TestAssembleValuesPassThrough(t *testing.T) {
	payload := Assemble(fullSnapshot(), 30, testNow)
	if payload["SystolicBloodPressure"] != 120 {
		t.Errorf("fresh triage systolic should pass through, got %v", payload["SystolicBloodPressure"])
	}
	if payload["Gravida"] != 3 {
		t.Errorf("history gravida should pass through, got %v", payload["Gravida"])
	}
	if payload["Hemoglobin"] != 11.2 {
		t.Errorf("labwork hemoglobin should pass through, got %v", payload["Hemoglobin"])
	}
}

func TestAssembleCapitalizesStrings(t *testing.T) {
	payload := Assemble(fullSnapshot(), 30, testNow)
	if payload["EdemaLevel"] != "Mild" {
		t.Errorf("expected Mild, got %v", payload["EdemaLevel"])
	}
	if payload["BloodGroup"] != "O" {
		t.Errorf("expected O, got %v", payload["BloodGroup"])
	}
	if payload["StressLevel"] != "Low" {
		t.Errorf("expected Low, got %v", payload["StressLevel"])
	}
}

func TestAssembleStaleTriageForcesSentinel(t *testing.T) {
	snap := fullSnapshot()
	snap.Triages = []*patient.Triage{{
		Date:       daysAgo(40),
		SystolicBP: intp(120),
	}}
	payload := Assemble(snap, 30, testNow)
	if payload["SystolicBloodPressure"] != Sentinel {
		t.Errorf("stale triage value must resolve to sentinel even when present, got %v",
			payload["SystolicBloodPressure"])
	}
	// History features are unaffected by staleness.
	if payload["Gravida"] != 3 {
		t.Errorf("history features survive staleness, got %v", payload["Gravida"])
	}
}

func TestAssembleFreshTriagePasses(t *testing.T) {
	snap := fullSnapshot()
	snap.Triages = []*patient.Triage{{
		Date:       daysAgo(10),
		SystolicBP: intp(118),
	}}
	payload := Assemble(snap, 30, testNow)
	if payload["SystolicBloodPressure"] != 118 {
		t.Errorf("10-day-old triage at 30-day threshold passes through, got %v",
			payload["SystolicBloodPressure"])
	}
}

func TestAssembleEmptyCollectionsAllSentinel(t *testing.T) {
	snap := &patient.Snapshot{Patient: &patient.Patient{Name: "Empty"}}
	payload := Assemble(snap, 30, testNow)
	for _, spec := range fieldSpecs {
		if payload[spec.Dest] != Sentinel {
			t.Errorf("feature %s should default to sentinel, got %v", spec.Dest, payload[spec.Dest])
		}
	}
}

func TestAssembleMissingFieldSentinel(t *testing.T) {
	snap := fullSnapshot()
	payload := Assemble(snap, 30, testNow)
	// DiastolicBP was never set on the triage record.
	if payload["DiastolicBloodPressure"] != Sentinel {
		t.Errorf("unset column resolves to sentinel, got %v", payload["DiastolicBloodPressure"])
	}
}

func TestAssembleLatestRecordWins(t *testing.T) {
	snap := fullSnapshot()
	snap.Triages = []*patient.Triage{
		{Date: daysAgo(5), SystolicBP: intp(140)},
		{Date: daysAgo(20), SystolicBP: intp(110)},
	}
	payload := Assemble(snap, 30, testNow)
	if payload["SystolicBloodPressure"] != 140 {
		t.Errorf("latest-by-date record wins regardless of slice order, got %v",
			payload["SystolicBloodPressure"])
	}
}

func TestAssembleDeterministic(t *testing.T) {
	snap := fullSnapshot()
	a := Assemble(snap, 30, testNow)
	b := Assemble(snap, 30, testNow)
	if !reflect.DeepEqual(a, b) {
		t.Error("assembly must be deterministic for fixed snapshot, threshold and clock")
	}
}
