package screening

// Source identifies which record collection a scoring feature is read from.
type Source string

const (
	SourceHistory    Source = "patient_history"
	SourceTriage     Source = "triage"
	SourceLabwork    Source = "labwork"
	SourceUltrasound Source = "ultrasound"
	SourceLifestyle  Source = "lifestyle"
)

// Sentinel is the value a feature takes when its source record, field, or
// value is missing, or when the source collection is stale.
const Sentinel = "Unknown"

// FieldSpec declares one scoring feature: the name the scoring service
// expects, the collection and storage column it is read from, and whether a
// stale collection forces the sentinel. Feature names are aliased
// independently of storage names.
type FieldSpec struct {
	Dest           string
	Source         Source
	SourceField    string
	StaleSensitive bool
}

// fieldSpecs is the full feature contract of the risk scoring service.
// Histories and lifestyles carry background data and are never
// staleness-gated; vitals, labs and imaging are.
var fieldSpecs = []FieldSpec{
	// -- patient history --
	{Dest: "Gravida", Source: SourceHistory, SourceField: "gravida"},
	{Dest: "Parity", Source: SourceHistory, SourceField: "para"},
	{Dest: "LivingChildren", Source: SourceHistory, SourceField: "living_children"},
	{Dest: "AgeAtFirstPregnancy", Source: SourceHistory, SourceField: "age_at_first_pregnancy"},
	{Dest: "PriorCesarean", Source: SourceHistory, SourceField: "previous_cesarean"},
	{Dest: "PriorMiscarriages", Source: SourceHistory, SourceField: "previous_miscarriages"},
	{Dest: "PriorStillbirths", Source: SourceHistory, SourceField: "previous_stillbirths"},
	{Dest: "PriorPretermBirth", Source: SourceHistory, SourceField: "previous_preterm_birth"},
	{Dest: "PriorPostpartumHemorrhage", Source: SourceHistory, SourceField: "postpartum_hemorrhage"},
	{Dest: "PriorPreeclampsia", Source: SourceHistory, SourceField: "preeclampsia"},
	{Dest: "PriorEclampsia", Source: SourceHistory, SourceField: "eclampsia"},
	{Dest: "PriorGestationalDiabetes", Source: SourceHistory, SourceField: "gestational_diabetes"},
	{Dest: "ChronicHypertension", Source: SourceHistory, SourceField: "chronic_hypertension"},
	{Dest: "DiabetesMellitus", Source: SourceHistory, SourceField: "diabetes_mellitus"},
	{Dest: "Asthma", Source: SourceHistory, SourceField: "asthma"},
	{Dest: "ThyroidDisorder", Source: SourceHistory, SourceField: "thyroid_disorder"},
	{Dest: "HeartDisease", Source: SourceHistory, SourceField: "heart_disease"},
	{Dest: "KidneyDisease", Source: SourceHistory, SourceField: "kidney_disease"},
	{Dest: "SickleCellDisease", Source: SourceHistory, SourceField: "sickle_cell"},
	{Dest: "KnownHIVPositive", Source: SourceHistory, SourceField: "hiv_positive"},
	{Dest: "PriorBloodTransfusion", Source: SourceHistory, SourceField: "blood_transfusion"},
	{Dest: "FamilyDiabetes", Source: SourceHistory, SourceField: "family_diabetes"},
	{Dest: "FamilyHypertension", Source: SourceHistory, SourceField: "family_hypertension"},
	{Dest: "FamilyTwins", Source: SourceHistory, SourceField: "family_twins"},
	{Dest: "Allergies", Source: SourceHistory, SourceField: "allergies"},
	{Dest: "PriorSurgeries", Source: SourceHistory, SourceField: "surgeries"},

	// -- triage vitals --
	{Dest: "SystolicBloodPressure", Source: SourceTriage, SourceField: "systolic_bp", StaleSensitive: true},
	{Dest: "DiastolicBloodPressure", Source: SourceTriage, SourceField: "diastolic_bp", StaleSensitive: true},
	{Dest: "HeartRate", Source: SourceTriage, SourceField: "heart_rate", StaleSensitive: true},
	{Dest: "RespiratoryRate", Source: SourceTriage, SourceField: "respiratory_rate", StaleSensitive: true},
	{Dest: "BodyTemperature", Source: SourceTriage, SourceField: "temperature", StaleSensitive: true},
	{Dest: "OxygenSaturation", Source: SourceTriage, SourceField: "oxygen_saturation", StaleSensitive: true},
	{Dest: "Weight", Source: SourceTriage, SourceField: "weight", StaleSensitive: true},
	{Dest: "Height", Source: SourceTriage, SourceField: "height", StaleSensitive: true},
	{Dest: "BodyMassIndex", Source: SourceTriage, SourceField: "bmi", StaleSensitive: true},
	{Dest: "MidUpperArmCircumference", Source: SourceTriage, SourceField: "muac", StaleSensitive: true},
	{Dest: "FundalHeight", Source: SourceTriage, SourceField: "fundal_height", StaleSensitive: true},
	{Dest: "FetalHeartRate", Source: SourceTriage, SourceField: "fetal_heart_rate", StaleSensitive: true},
	{Dest: "FetalMovement", Source: SourceTriage, SourceField: "fetal_movement", StaleSensitive: true},
	{Dest: "UrineProteinDipstick", Source: SourceTriage, SourceField: "urine_protein", StaleSensitive: true},
	{Dest: "UrineGlucoseDipstick", Source: SourceTriage, SourceField: "urine_glucose", StaleSensitive: true},
	{Dest: "EdemaLevel", Source: SourceTriage, SourceField: "edema_level", StaleSensitive: true},
	{Dest: "PresentingComplaint", Source: SourceTriage, SourceField: "complaint", StaleSensitive: true},

	// -- labwork --
	{Dest: "Hemoglobin", Source: SourceLabwork, SourceField: "hemoglobin", StaleSensitive: true},
	{Dest: "Hematocrit", Source: SourceLabwork, SourceField: "hematocrit", StaleSensitive: true},
	{Dest: "WhiteCellCount", Source: SourceLabwork, SourceField: "white_cell_count", StaleSensitive: true},
	{Dest: "PlateletCount", Source: SourceLabwork, SourceField: "platelet_count", StaleSensitive: true},
	{Dest: "FastingGlucose", Source: SourceLabwork, SourceField: "fasting_glucose", StaleSensitive: true},
	{Dest: "RandomGlucose", Source: SourceLabwork, SourceField: "random_glucose", StaleSensitive: true},
	{Dest: "BloodGroup", Source: SourceLabwork, SourceField: "blood_group", StaleSensitive: true},
	{Dest: "RhesusFactor", Source: SourceLabwork, SourceField: "rhesus_factor", StaleSensitive: true},
	{Dest: "HIVStatus", Source: SourceLabwork, SourceField: "hiv_status", StaleSensitive: true},
	{Dest: "SyphilisResult", Source: SourceLabwork, SourceField: "syphilis_result", StaleSensitive: true},
	{Dest: "HepatitisB", Source: SourceLabwork, SourceField: "hepatitis_b", StaleSensitive: true},
	{Dest: "MalariaTest", Source: SourceLabwork, SourceField: "malaria_test", StaleSensitive: true},
	{Dest: "UrinalysisProtein", Source: SourceLabwork, SourceField: "urinalysis_protein", StaleSensitive: true},
	{Dest: "UrinalysisGlucose", Source: SourceLabwork, SourceField: "urinalysis_glucose", StaleSensitive: true},
	{Dest: "SerumCreatinine", Source: SourceLabwork, SourceField: "creatinine", StaleSensitive: true},
	{Dest: "BloodUrea", Source: SourceLabwork, SourceField: "blood_urea", StaleSensitive: true},

	// -- ultrasound --
	{Dest: "GestationalAgeWeeks", Source: SourceUltrasound, SourceField: "gestational_age_weeks", StaleSensitive: true},
	{Dest: "FetusCount", Source: SourceUltrasound, SourceField: "fetus_count", StaleSensitive: true},
	{Dest: "AmnioticFluidIndex", Source: SourceUltrasound, SourceField: "amniotic_fluid_index", StaleSensitive: true},
	{Dest: "BiparietalDiameter", Source: SourceUltrasound, SourceField: "biparietal_diameter", StaleSensitive: true},
	{Dest: "HeadCircumference", Source: SourceUltrasound, SourceField: "head_circumference", StaleSensitive: true},
	{Dest: "AbdominalCircumference", Source: SourceUltrasound, SourceField: "abdominal_circumference", StaleSensitive: true},
	{Dest: "FemurLength", Source: SourceUltrasound, SourceField: "femur_length", StaleSensitive: true},
	{Dest: "EstimatedFetalWeight", Source: SourceUltrasound, SourceField: "estimated_fetal_weight", StaleSensitive: true},
	{Dest: "PlacentaPosition", Source: SourceUltrasound, SourceField: "placenta_position", StaleSensitive: true},
	{Dest: "PlacentaGrade", Source: SourceUltrasound, SourceField: "placenta_grade", StaleSensitive: true},
	{Dest: "FetalPresentation", Source: SourceUltrasound, SourceField: "fetal_presentation", StaleSensitive: true},
	{Dest: "FetalHeartbeatPresent", Source: SourceUltrasound, SourceField: "fetal_heartbeat", StaleSensitive: true},

	// -- lifestyle --
	{Dest: "Smoking", Source: SourceLifestyle, SourceField: "smoking"},
	{Dest: "AlcoholUse", Source: SourceLifestyle, SourceField: "alcohol"},
	{Dest: "DrugUse", Source: SourceLifestyle, SourceField: "drug_use"},
	{Dest: "CaffeineCupsPerDay", Source: SourceLifestyle, SourceField: "caffeine_cups_per_day"},
	{Dest: "ExerciseFrequency", Source: SourceLifestyle, SourceField: "exercise_frequency"},
	{Dest: "DietQuality", Source: SourceLifestyle, SourceField: "diet_quality"},
	{Dest: "SleepHours", Source: SourceLifestyle, SourceField: "sleep_hours"},
	{Dest: "StressLevel", Source: SourceLifestyle, SourceField: "stress_level"},
	{Dest: "OccupationHazard", Source: SourceLifestyle, SourceField: "occupation_hazard"},
	{Dest: "SupportAtHome", Source: SourceLifestyle, SourceField: "support_at_home"},
}

// FieldSpecs returns a copy of the feature table.
func FieldSpecs() []FieldSpec {
	out := make([]FieldSpec, len(fieldSpecs))
	copy(out, fieldSpecs)
	return out
}
