package patient

import (
	"time"

	"github.com/google/uuid"
)

// Patient maps to the patient table.
type Patient struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	Name        string     `db:"name" json:"name"`
	DateOfBirth *time.Time `db:"date_of_birth" json:"date_of_birth,omitempty"`
	Phone       *string    `db:"phone" json:"phone,omitempty"`
	Email       *string    `db:"email" json:"email,omitempty"`
	Address     *string    `db:"address" json:"address,omitempty"`
	NextOfKin   *string    `db:"next_of_kin" json:"next_of_kin,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

// History maps to the patient_history table. One row per intake interview;
// obstetric and medical background that does not go stale.
type History struct {
	ID                   uuid.UUID  `db:"id" json:"id"`
	PatientID            uuid.UUID  `db:"patient_id" json:"patient_id"`
	Date                 *time.Time `db:"date" json:"date,omitempty"`
	Gravida              *int       `db:"gravida" json:"gravida,omitempty"`
	Para                 *int       `db:"para" json:"para,omitempty"`
	LivingChildren       *int       `db:"living_children" json:"living_children,omitempty"`
	AgeAtFirstPregnancy  *int       `db:"age_at_first_pregnancy" json:"age_at_first_pregnancy,omitempty"`
	PreviousCesarean     *bool      `db:"previous_cesarean" json:"previous_cesarean,omitempty"`
	PreviousMiscarriages *int       `db:"previous_miscarriages" json:"previous_miscarriages,omitempty"`
	PreviousStillbirths  *int       `db:"previous_stillbirths" json:"previous_stillbirths,omitempty"`
	PreviousPretermBirth *bool      `db:"previous_preterm_birth" json:"previous_preterm_birth,omitempty"`
	PostpartumHemorrhage *bool      `db:"postpartum_hemorrhage" json:"postpartum_hemorrhage,omitempty"`
	Preeclampsia         *bool      `db:"preeclampsia" json:"preeclampsia,omitempty"`
	Eclampsia            *bool      `db:"eclampsia" json:"eclampsia,omitempty"`
	GestationalDiabetes  *bool      `db:"gestational_diabetes" json:"gestational_diabetes,omitempty"`
	ChronicHypertension  *bool      `db:"chronic_hypertension" json:"chronic_hypertension,omitempty"`
	DiabetesMellitus     *bool      `db:"diabetes_mellitus" json:"diabetes_mellitus,omitempty"`
	Asthma               *bool      `db:"asthma" json:"asthma,omitempty"`
	ThyroidDisorder      *bool      `db:"thyroid_disorder" json:"thyroid_disorder,omitempty"`
	HeartDisease         *bool      `db:"heart_disease" json:"heart_disease,omitempty"`
	KidneyDisease        *bool      `db:"kidney_disease" json:"kidney_disease,omitempty"`
	SickleCell           *bool      `db:"sickle_cell" json:"sickle_cell,omitempty"`
	HIVPositive          *bool      `db:"hiv_positive" json:"hiv_positive,omitempty"`
	BloodTransfusion     *bool      `db:"blood_transfusion" json:"blood_transfusion,omitempty"`
	FamilyDiabetes       *bool      `db:"family_diabetes" json:"family_diabetes,omitempty"`
	FamilyHypertension   *bool      `db:"family_hypertension" json:"family_hypertension,omitempty"`
	FamilyTwins          *bool      `db:"family_twins" json:"family_twins,omitempty"`
	Allergies            *string    `db:"allergies" json:"allergies,omitempty"`
	Surgeries            *string    `db:"surgeries" json:"surgeries,omitempty"`
	CreatedAt            time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt            time.Time  `db:"updated_at" json:"updated_at"`
}

// Triage maps to the triage table. Vitals taken at each visit; trusted only
// while fresh.
type Triage struct {
	ID               uuid.UUID  `db:"id" json:"id"`
	PatientID        uuid.UUID  `db:"patient_id" json:"patient_id"`
	Date             *time.Time `db:"date" json:"date,omitempty"`
	SystolicBP       *int       `db:"systolic_bp" json:"systolic_bp,omitempty"`
	DiastolicBP      *int       `db:"diastolic_bp" json:"diastolic_bp,omitempty"`
	HeartRate        *int       `db:"heart_rate" json:"heart_rate,omitempty"`
	RespiratoryRate  *int       `db:"respiratory_rate" json:"respiratory_rate,omitempty"`
	Temperature      *float64   `db:"temperature" json:"temperature,omitempty"`
	OxygenSaturation *int       `db:"oxygen_saturation" json:"oxygen_saturation,omitempty"`
	Weight           *float64   `db:"weight" json:"weight,omitempty"`
	Height           *float64   `db:"height" json:"height,omitempty"`
	BMI              *float64   `db:"bmi" json:"bmi,omitempty"`
	MUAC             *float64   `db:"muac" json:"muac,omitempty"`
	FundalHeight     *float64   `db:"fundal_height" json:"fundal_height,omitempty"`
	FetalHeartRate   *int       `db:"fetal_heart_rate" json:"fetal_heart_rate,omitempty"`
	FetalMovement    *string    `db:"fetal_movement" json:"fetal_movement,omitempty"`
	UrineProtein     *string    `db:"urine_protein" json:"urine_protein,omitempty"`
	UrineGlucose     *string    `db:"urine_glucose" json:"urine_glucose,omitempty"`
	EdemaLevel       *string    `db:"edema_level" json:"edema_level,omitempty"`
	Complaint        *string    `db:"complaint" json:"complaint,omitempty"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updated_at"`
}

// Labwork maps to the labwork table.
type Labwork struct {
	ID                uuid.UUID  `db:"id" json:"id"`
	PatientID         uuid.UUID  `db:"patient_id" json:"patient_id"`
	Date              *time.Time `db:"date" json:"date,omitempty"`
	Hemoglobin        *float64   `db:"hemoglobin" json:"hemoglobin,omitempty"`
	Hematocrit        *float64   `db:"hematocrit" json:"hematocrit,omitempty"`
	WhiteCellCount    *float64   `db:"white_cell_count" json:"white_cell_count,omitempty"`
	PlateletCount     *float64   `db:"platelet_count" json:"platelet_count,omitempty"`
	FastingGlucose    *float64   `db:"fasting_glucose" json:"fasting_glucose,omitempty"`
	RandomGlucose     *float64   `db:"random_glucose" json:"random_glucose,omitempty"`
	BloodGroup        *string    `db:"blood_group" json:"blood_group,omitempty"`
	RhesusFactor      *string    `db:"rhesus_factor" json:"rhesus_factor,omitempty"`
	HIVStatus         *string    `db:"hiv_status" json:"hiv_status,omitempty"`
	SyphilisResult    *string    `db:"syphilis_result" json:"syphilis_result,omitempty"`
	HepatitisB        *string    `db:"hepatitis_b" json:"hepatitis_b,omitempty"`
	MalariaTest       *string    `db:"malaria_test" json:"malaria_test,omitempty"`
	UrinalysisProtein *string    `db:"urinalysis_protein" json:"urinalysis_protein,omitempty"`
	UrinalysisGlucose *string    `db:"urinalysis_glucose" json:"urinalysis_glucose,omitempty"`
	Creatinine        *float64   `db:"creatinine" json:"creatinine,omitempty"`
	BloodUrea         *float64   `db:"blood_urea" json:"blood_urea,omitempty"`
	CreatedAt         time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at" json:"updated_at"`
}

// Ultrasound maps to the ultrasound table.
type Ultrasound struct {
	ID                     uuid.UUID  `db:"id" json:"id"`
	PatientID              uuid.UUID  `db:"patient_id" json:"patient_id"`
	Date                   *time.Time `db:"date" json:"date,omitempty"`
	GestationalAgeWeeks    *float64   `db:"gestational_age_weeks" json:"gestational_age_weeks,omitempty"`
	FetusCount             *int       `db:"fetus_count" json:"fetus_count,omitempty"`
	AmnioticFluidIndex     *float64   `db:"amniotic_fluid_index" json:"amniotic_fluid_index,omitempty"`
	BiparietalDiameter     *float64   `db:"biparietal_diameter" json:"biparietal_diameter,omitempty"`
	HeadCircumference      *float64   `db:"head_circumference" json:"head_circumference,omitempty"`
	AbdominalCircumference *float64   `db:"abdominal_circumference" json:"abdominal_circumference,omitempty"`
	FemurLength            *float64   `db:"femur_length" json:"femur_length,omitempty"`
	EstimatedFetalWeight   *float64   `db:"estimated_fetal_weight" json:"estimated_fetal_weight,omitempty"`
	PlacentaPosition       *string    `db:"placenta_position" json:"placenta_position,omitempty"`
	PlacentaGrade          *string    `db:"placenta_grade" json:"placenta_grade,omitempty"`
	FetalPresentation      *string    `db:"fetal_presentation" json:"fetal_presentation,omitempty"`
	FetalHeartbeat         *bool      `db:"fetal_heartbeat" json:"fetal_heartbeat,omitempty"`
	CreatedAt              time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt              time.Time  `db:"updated_at" json:"updated_at"`
}

// Lifestyle maps to the lifestyle table. Like histories, never
// staleness-checked.
type Lifestyle struct {
	ID                 uuid.UUID  `db:"id" json:"id"`
	PatientID          uuid.UUID  `db:"patient_id" json:"patient_id"`
	Date               *time.Time `db:"date" json:"date,omitempty"`
	Smoking            *bool      `db:"smoking" json:"smoking,omitempty"`
	Alcohol            *bool      `db:"alcohol" json:"alcohol,omitempty"`
	DrugUse            *bool      `db:"drug_use" json:"drug_use,omitempty"`
	CaffeineCupsPerDay *int       `db:"caffeine_cups_per_day" json:"caffeine_cups_per_day,omitempty"`
	ExerciseFrequency  *string    `db:"exercise_frequency" json:"exercise_frequency,omitempty"`
	DietQuality        *string    `db:"diet_quality" json:"diet_quality,omitempty"`
	SleepHours         *float64   `db:"sleep_hours" json:"sleep_hours,omitempty"`
	StressLevel        *string    `db:"stress_level" json:"stress_level,omitempty"`
	OccupationHazard   *string    `db:"occupation_hazard" json:"occupation_hazard,omitempty"`
	SupportAtHome      *bool      `db:"support_at_home" json:"support_at_home,omitempty"`
	CreatedAt          time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at" json:"updated_at"`
}

// Snapshot is a patient plus every historical record collection, fetched
// fresh for a single screening run. Collections are ordered by date
// ascending with null dates first.
type Snapshot struct {
	Patient     *Patient      `json:"patient"`
	Histories   []*History    `json:"histories"`
	Triages     []*Triage     `json:"triages"`
	Labworks    []*Labwork    `json:"labworks"`
	Ultrasounds []*Ultrasound `json:"ultrasounds"`
	Lifestyles  []*Lifestyle  `json:"lifestyles"`
}

// Record is the read surface the screening pipeline uses: a date for
// freshness checks and a storage-name field map for feature resolution.
// Fields omits nil columns entirely, so "missing" and "null" look the same
// to a caller.
type Record interface {
	RecordDate() *time.Time
	Fields() map[string]interface{}
}

func (h *History) RecordDate() *time.Time    { return h.Date }
func (t *Triage) RecordDate() *time.Time     { return t.Date }
func (l *Labwork) RecordDate() *time.Time    { return l.Date }
func (u *Ultrasound) RecordDate() *time.Time { return u.Date }
func (l *Lifestyle) RecordDate() *time.Time  { return l.Date }
