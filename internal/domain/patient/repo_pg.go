package patient

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Darryl-Mbae/mobileuurka-hospital-sub000/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

func conn(ctx context.Context, pool *pgxpool.Pool) queryable {
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return pool
}

// =========== Patient Repository ===========

type patientRepoPG struct{ pool *pgxpool.Pool }

func NewPatientRepoPG(pool *pgxpool.Pool) PatientRepository {
	return &patientRepoPG{pool: pool}
}

const patientCols = `id, name, date_of_birth, phone, email, address, next_of_kin, created_at, updated_at`

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.Name, &p.DateOfBirth, &p.Phone, &p.Email, &p.Address, &p.NextOfKin,
		&p.CreatedAt, &p.UpdatedAt)
	return &p, err
}

func (r *patientRepoPG) Create(ctx context.Context, p *Patient) error {
	p.ID = uuid.New()
	_, err := conn(ctx, r.pool).Exec(ctx, `
		INSERT INTO patient (id, name, date_of_birth, phone, email, address, next_of_kin)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		p.ID, p.Name, p.DateOfBirth, p.Phone, p.Email, p.Address, p.NextOfKin)
	return err
}

func (r *patientRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return scanPatient(conn(ctx, r.pool).QueryRow(ctx, `SELECT `+patientCols+` FROM patient WHERE id = $1`, id))
}

func (r *patientRepoPG) Update(ctx context.Context, p *Patient) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `
		UPDATE patient SET name=$2, date_of_birth=$3, phone=$4, email=$5, address=$6, next_of_kin=$7, updated_at=NOW()
		WHERE id = $1`,
		p.ID, p.Name, p.DateOfBirth, p.Phone, p.Email, p.Address, p.NextOfKin)
	return err
}

func (r *patientRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `DELETE FROM patient WHERE id = $1`, id)
	return err
}

func (r *patientRepoPG) List(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	q := conn(ctx, r.pool)
	var total int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM patient`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := q.Query(ctx, `SELECT `+patientCols+` FROM patient ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, p)
	}
	return items, total, rows.Err()
}

// =========== History Repository ===========

type historyRepoPG struct{ pool *pgxpool.Pool }

func NewHistoryRepoPG(pool *pgxpool.Pool) HistoryRepository {
	return &historyRepoPG{pool: pool}
}

const historyCols = `id, patient_id, date, gravida, para, living_children, age_at_first_pregnancy,
	previous_cesarean, previous_miscarriages, previous_stillbirths, previous_preterm_birth,
	postpartum_hemorrhage, preeclampsia, eclampsia, gestational_diabetes,
	chronic_hypertension, diabetes_mellitus, asthma, thyroid_disorder, heart_disease,
	kidney_disease, sickle_cell, hiv_positive, blood_transfusion,
	family_diabetes, family_hypertension, family_twins, allergies, surgeries,
	created_at, updated_at`

func scanHistory(row pgx.Row) (*History, error) {
	var h History
	err := row.Scan(&h.ID, &h.PatientID, &h.Date, &h.Gravida, &h.Para, &h.LivingChildren, &h.AgeAtFirstPregnancy,
		&h.PreviousCesarean, &h.PreviousMiscarriages, &h.PreviousStillbirths, &h.PreviousPretermBirth,
		&h.PostpartumHemorrhage, &h.Preeclampsia, &h.Eclampsia, &h.GestationalDiabetes,
		&h.ChronicHypertension, &h.DiabetesMellitus, &h.Asthma, &h.ThyroidDisorder, &h.HeartDisease,
		&h.KidneyDisease, &h.SickleCell, &h.HIVPositive, &h.BloodTransfusion,
		&h.FamilyDiabetes, &h.FamilyHypertension, &h.FamilyTwins, &h.Allergies, &h.Surgeries,
		&h.CreatedAt, &h.UpdatedAt)
	return &h, err
}

func (r *historyRepoPG) Create(ctx context.Context, h *History) error {
	h.ID = uuid.New()
	_, err := conn(ctx, r.pool).Exec(ctx, `
		INSERT INTO patient_history (id, patient_id, date, gravida, para, living_children, age_at_first_pregnancy,
			previous_cesarean, previous_miscarriages, previous_stillbirths, previous_preterm_birth,
			postpartum_hemorrhage, preeclampsia, eclampsia, gestational_diabetes,
			chronic_hypertension, diabetes_mellitus, asthma, thyroid_disorder, heart_disease,
			kidney_disease, sickle_cell, hiv_positive, blood_transfusion,
			family_diabetes, family_hypertension, family_twins, allergies, surgeries)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25,$26,$27,$28,$29)`,
		h.ID, h.PatientID, h.Date, h.Gravida, h.Para, h.LivingChildren, h.AgeAtFirstPregnancy,
		h.PreviousCesarean, h.PreviousMiscarriages, h.PreviousStillbirths, h.PreviousPretermBirth,
		h.PostpartumHemorrhage, h.Preeclampsia, h.Eclampsia, h.GestationalDiabetes,
		h.ChronicHypertension, h.DiabetesMellitus, h.Asthma, h.ThyroidDisorder, h.HeartDisease,
		h.KidneyDisease, h.SickleCell, h.HIVPositive, h.BloodTransfusion,
		h.FamilyDiabetes, h.FamilyHypertension, h.FamilyTwins, h.Allergies, h.Surgeries)
	return err
}

func (r *historyRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*History, error) {
	return scanHistory(conn(ctx, r.pool).QueryRow(ctx, `SELECT `+historyCols+` FROM patient_history WHERE id = $1`, id))
}

func (r *historyRepoPG) Update(ctx context.Context, h *History) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `
		UPDATE patient_history SET date=$2, gravida=$3, para=$4, living_children=$5, age_at_first_pregnancy=$6,
			previous_cesarean=$7, previous_miscarriages=$8, previous_stillbirths=$9, previous_preterm_birth=$10,
			postpartum_hemorrhage=$11, preeclampsia=$12, eclampsia=$13, gestational_diabetes=$14,
			chronic_hypertension=$15, diabetes_mellitus=$16, asthma=$17, thyroid_disorder=$18, heart_disease=$19,
			kidney_disease=$20, sickle_cell=$21, hiv_positive=$22, blood_transfusion=$23,
			family_diabetes=$24, family_hypertension=$25, family_twins=$26, allergies=$27, surgeries=$28,
			updated_at=NOW()
		WHERE id = $1`,
		h.ID, h.Date, h.Gravida, h.Para, h.LivingChildren, h.AgeAtFirstPregnancy,
		h.PreviousCesarean, h.PreviousMiscarriages, h.PreviousStillbirths, h.PreviousPretermBirth,
		h.PostpartumHemorrhage, h.Preeclampsia, h.Eclampsia, h.GestationalDiabetes,
		h.ChronicHypertension, h.DiabetesMellitus, h.Asthma, h.ThyroidDisorder, h.HeartDisease,
		h.KidneyDisease, h.SickleCell, h.HIVPositive, h.BloodTransfusion,
		h.FamilyDiabetes, h.FamilyHypertension, h.FamilyTwins, h.Allergies, h.Surgeries)
	return err
}

func (r *historyRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `DELETE FROM patient_history WHERE id = $1`, id)
	return err
}

func (r *historyRepoPG) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*History, error) {
	rows, err := conn(ctx, r.pool).Query(ctx,
		`SELECT `+historyCols+` FROM patient_history WHERE patient_id = $1 ORDER BY date ASC NULLS FIRST`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*History
	for rows.Next() {
		h, err := scanHistory(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, h)
	}
	return items, rows.Err()
}

// =========== Triage Repository ===========

type triageRepoPG struct{ pool *pgxpool.Pool }

func NewTriageRepoPG(pool *pgxpool.Pool) TriageRepository {
	return &triageRepoPG{pool: pool}
}

const triageCols = `id, patient_id, date, systolic_bp, diastolic_bp, heart_rate, respiratory_rate,
	temperature, oxygen_saturation, weight, height, bmi, muac, fundal_height,
	fetal_heart_rate, fetal_movement, urine_protein, urine_glucose, edema_level, complaint,
	created_at, updated_at`

func scanTriage(row pgx.Row) (*Triage, error) {
	var t Triage
	err := row.Scan(&t.ID, &t.PatientID, &t.Date, &t.SystolicBP, &t.DiastolicBP, &t.HeartRate, &t.RespiratoryRate,
		&t.Temperature, &t.OxygenSaturation, &t.Weight, &t.Height, &t.BMI, &t.MUAC, &t.FundalHeight,
		&t.FetalHeartRate, &t.FetalMovement, &t.UrineProtein, &t.UrineGlucose, &t.EdemaLevel, &t.Complaint,
		&t.CreatedAt, &t.UpdatedAt)
	return &t, err
}

func (r *triageRepoPG) Create(ctx context.Context, t *Triage) error {
	t.ID = uuid.New()
	_, err := conn(ctx, r.pool).Exec(ctx, `
		INSERT INTO triage (id, patient_id, date, systolic_bp, diastolic_bp, heart_rate, respiratory_rate,
			temperature, oxygen_saturation, weight, height, bmi, muac, fundal_height,
			fetal_heart_rate, fetal_movement, urine_protein, urine_glucose, edema_level, complaint)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20)`,
		t.ID, t.PatientID, t.Date, t.SystolicBP, t.DiastolicBP, t.HeartRate, t.RespiratoryRate,
		t.Temperature, t.OxygenSaturation, t.Weight, t.Height, t.BMI, t.MUAC, t.FundalHeight,
		t.FetalHeartRate, t.FetalMovement, t.UrineProtein, t.UrineGlucose, t.EdemaLevel, t.Complaint)
	return err
}

func (r *triageRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Triage, error) {
	return scanTriage(conn(ctx, r.pool).QueryRow(ctx, `SELECT `+triageCols+` FROM triage WHERE id = $1`, id))
}

func (r *triageRepoPG) Update(ctx context.Context, t *Triage) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `
		UPDATE triage SET date=$2, systolic_bp=$3, diastolic_bp=$4, heart_rate=$5, respiratory_rate=$6,
			temperature=$7, oxygen_saturation=$8, weight=$9, height=$10, bmi=$11, muac=$12, fundal_height=$13,
			fetal_heart_rate=$14, fetal_movement=$15, urine_protein=$16, urine_glucose=$17, edema_level=$18,
			complaint=$19, updated_at=NOW()
		WHERE id = $1`,
		t.ID, t.Date, t.SystolicBP, t.DiastolicBP, t.HeartRate, t.RespiratoryRate,
		t.Temperature, t.OxygenSaturation, t.Weight, t.Height, t.BMI, t.MUAC, t.FundalHeight,
		t.FetalHeartRate, t.FetalMovement, t.UrineProtein, t.UrineGlucose, t.EdemaLevel, t.Complaint)
	return err
}

func (r *triageRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `DELETE FROM triage WHERE id = $1`, id)
	return err
}

func (r *triageRepoPG) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Triage, error) {
	rows, err := conn(ctx, r.pool).Query(ctx,
		`SELECT `+triageCols+` FROM triage WHERE patient_id = $1 ORDER BY date ASC NULLS FIRST`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Triage
	for rows.Next() {
		t, err := scanTriage(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

// =========== Labwork Repository ===========

type labworkRepoPG struct{ pool *pgxpool.Pool }

func NewLabworkRepoPG(pool *pgxpool.Pool) LabworkRepository {
	return &labworkRepoPG{pool: pool}
}

const labworkCols = `id, patient_id, date, hemoglobin, hematocrit, white_cell_count, platelet_count,
	fasting_glucose, random_glucose, blood_group, rhesus_factor, hiv_status, syphilis_result,
	hepatitis_b, malaria_test, urinalysis_protein, urinalysis_glucose, creatinine, blood_urea,
	created_at, updated_at`

func scanLabwork(row pgx.Row) (*Labwork, error) {
	var l Labwork
	err := row.Scan(&l.ID, &l.PatientID, &l.Date, &l.Hemoglobin, &l.Hematocrit, &l.WhiteCellCount, &l.PlateletCount,
		&l.FastingGlucose, &l.RandomGlucose, &l.BloodGroup, &l.RhesusFactor, &l.HIVStatus, &l.SyphilisResult,
		&l.HepatitisB, &l.MalariaTest, &l.UrinalysisProtein, &l.UrinalysisGlucose, &l.Creatinine, &l.BloodUrea,
		&l.CreatedAt, &l.UpdatedAt)
	return &l, err
}

func (r *labworkRepoPG) Create(ctx context.Context, l *Labwork) error {
	l.ID = uuid.New()
	_, err := conn(ctx, r.pool).Exec(ctx, `
		INSERT INTO labwork (id, patient_id, date, hemoglobin, hematocrit, white_cell_count, platelet_count,
			fasting_glucose, random_glucose, blood_group, rhesus_factor, hiv_status, syphilis_result,
			hepatitis_b, malaria_test, urinalysis_protein, urinalysis_glucose, creatinine, blood_urea)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19)`,
		l.ID, l.PatientID, l.Date, l.Hemoglobin, l.Hematocrit, l.WhiteCellCount, l.PlateletCount,
		l.FastingGlucose, l.RandomGlucose, l.BloodGroup, l.RhesusFactor, l.HIVStatus, l.SyphilisResult,
		l.HepatitisB, l.MalariaTest, l.UrinalysisProtein, l.UrinalysisGlucose, l.Creatinine, l.BloodUrea)
	return err
}

func (r *labworkRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Labwork, error) {
	return scanLabwork(conn(ctx, r.pool).QueryRow(ctx, `SELECT `+labworkCols+` FROM labwork WHERE id = $1`, id))
}

func (r *labworkRepoPG) Update(ctx context.Context, l *Labwork) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `
		UPDATE labwork SET date=$2, hemoglobin=$3, hematocrit=$4, white_cell_count=$5, platelet_count=$6,
			fasting_glucose=$7, random_glucose=$8, blood_group=$9, rhesus_factor=$10, hiv_status=$11,
			syphilis_result=$12, hepatitis_b=$13, malaria_test=$14, urinalysis_protein=$15,
			urinalysis_glucose=$16, creatinine=$17, blood_urea=$18, updated_at=NOW()
		WHERE id = $1`,
		l.ID, l.Date, l.Hemoglobin, l.Hematocrit, l.WhiteCellCount, l.PlateletCount,
		l.FastingGlucose, l.RandomGlucose, l.BloodGroup, l.RhesusFactor, l.HIVStatus,
		l.SyphilisResult, l.HepatitisB, l.MalariaTest, l.UrinalysisProtein,
		l.UrinalysisGlucose, l.Creatinine, l.BloodUrea)
	return err
}

func (r *labworkRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `DELETE FROM labwork WHERE id = $1`, id)
	return err
}

func (r *labworkRepoPG) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Labwork, error) {
	rows, err := conn(ctx, r.pool).Query(ctx,
		`SELECT `+labworkCols+` FROM labwork WHERE patient_id = $1 ORDER BY date ASC NULLS FIRST`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Labwork
	for rows.Next() {
		l, err := scanLabwork(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, l)
	}
	return items, rows.Err()
}

// =========== Ultrasound Repository ===========

type ultrasoundRepoPG struct{ pool *pgxpool.Pool }

func NewUltrasoundRepoPG(pool *pgxpool.Pool) UltrasoundRepository {
	return &ultrasoundRepoPG{pool: pool}
}

const ultrasoundCols = `id, patient_id, date, gestational_age_weeks, fetus_count, amniotic_fluid_index,
	biparietal_diameter, head_circumference, abdominal_circumference, femur_length,
	estimated_fetal_weight, placenta_position, placenta_grade, fetal_presentation, fetal_heartbeat,
	created_at, updated_at`

func scanUltrasound(row pgx.Row) (*Ultrasound, error) {
	var u Ultrasound
	err := row.Scan(&u.ID, &u.PatientID, &u.Date, &u.GestationalAgeWeeks, &u.FetusCount, &u.AmnioticFluidIndex,
		&u.BiparietalDiameter, &u.HeadCircumference, &u.AbdominalCircumference, &u.FemurLength,
		&u.EstimatedFetalWeight, &u.PlacentaPosition, &u.PlacentaGrade, &u.FetalPresentation, &u.FetalHeartbeat,
		&u.CreatedAt, &u.UpdatedAt)
	return &u, err
}

func (r *ultrasoundRepoPG) Create(ctx context.Context, u *Ultrasound) error {
	u.ID = uuid.New()
	_, err := conn(ctx, r.pool).Exec(ctx, `
		INSERT INTO ultrasound (id, patient_id, date, gestational_age_weeks, fetus_count, amniotic_fluid_index,
			biparietal_diameter, head_circumference, abdominal_circumference, femur_length,
			estimated_fetal_weight, placenta_position, placenta_grade, fetal_presentation, fetal_heartbeat)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)`,
		u.ID, u.PatientID, u.Date, u.GestationalAgeWeeks, u.FetusCount, u.AmnioticFluidIndex,
		u.BiparietalDiameter, u.HeadCircumference, u.AbdominalCircumference, u.FemurLength,
		u.EstimatedFetalWeight, u.PlacentaPosition, u.PlacentaGrade, u.FetalPresentation, u.FetalHeartbeat)
	return err
}

func (r *ultrasoundRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Ultrasound, error) {
	return scanUltrasound(conn(ctx, r.pool).QueryRow(ctx, `SELECT `+ultrasoundCols+` FROM ultrasound WHERE id = $1`, id))
}

func (r *ultrasoundRepoPG) Update(ctx context.Context, u *Ultrasound) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `
		UPDATE ultrasound SET date=$2, gestational_age_weeks=$3, fetus_count=$4, amniotic_fluid_index=$5,
			biparietal_diameter=$6, head_circumference=$7, abdominal_circumference=$8, femur_length=$9,
			estimated_fetal_weight=$10, placenta_position=$11, placenta_grade=$12, fetal_presentation=$13,
			fetal_heartbeat=$14, updated_at=NOW()
		WHERE id = $1`,
		u.ID, u.Date, u.GestationalAgeWeeks, u.FetusCount, u.AmnioticFluidIndex,
		u.BiparietalDiameter, u.HeadCircumference, u.AbdominalCircumference, u.FemurLength,
		u.EstimatedFetalWeight, u.PlacentaPosition, u.PlacentaGrade, u.FetalPresentation, u.FetalHeartbeat)
	return err
}

func (r *ultrasoundRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `DELETE FROM ultrasound WHERE id = $1`, id)
	return err
}

func (r *ultrasoundRepoPG) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Ultrasound, error) {
	rows, err := conn(ctx, r.pool).Query(ctx,
		`SELECT `+ultrasoundCols+` FROM ultrasound WHERE patient_id = $1 ORDER BY date ASC NULLS FIRST`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Ultrasound
	for rows.Next() {
		u, err := scanUltrasound(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, u)
	}
	return items, rows.Err()
}

// =========== Lifestyle Repository ===========

type lifestyleRepoPG struct{ pool *pgxpool.Pool }

func NewLifestyleRepoPG(pool *pgxpool.Pool) LifestyleRepository {
	return &lifestyleRepoPG{pool: pool}
}

const lifestyleCols = `id, patient_id, date, smoking, alcohol, drug_use, caffeine_cups_per_day,
	exercise_frequency, diet_quality, sleep_hours, stress_level, occupation_hazard, support_at_home,
	created_at, updated_at`

func scanLifestyle(row pgx.Row) (*Lifestyle, error) {
	var l Lifestyle
	err := row.Scan(&l.ID, &l.PatientID, &l.Date, &l.Smoking, &l.Alcohol, &l.DrugUse, &l.CaffeineCupsPerDay,
		&l.ExerciseFrequency, &l.DietQuality, &l.SleepHours, &l.StressLevel, &l.OccupationHazard, &l.SupportAtHome,
		&l.CreatedAt, &l.UpdatedAt)
	return &l, err
}

func (r *lifestyleRepoPG) Create(ctx context.Context, l *Lifestyle) error {
	l.ID = uuid.New()
	_, err := conn(ctx, r.pool).Exec(ctx, `
		INSERT INTO lifestyle (id, patient_id, date, smoking, alcohol, drug_use, caffeine_cups_per_day,
			exercise_frequency, diet_quality, sleep_hours, stress_level, occupation_hazard, support_at_home)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		l.ID, l.PatientID, l.Date, l.Smoking, l.Alcohol, l.DrugUse, l.CaffeineCupsPerDay,
		l.ExerciseFrequency, l.DietQuality, l.SleepHours, l.StressLevel, l.OccupationHazard, l.SupportAtHome)
	return err
}

func (r *lifestyleRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Lifestyle, error) {
	return scanLifestyle(conn(ctx, r.pool).QueryRow(ctx, `SELECT `+lifestyleCols+` FROM lifestyle WHERE id = $1`, id))
}

func (r *lifestyleRepoPG) Update(ctx context.Context, l *Lifestyle) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `
		UPDATE lifestyle SET date=$2, smoking=$3, alcohol=$4, drug_use=$5, caffeine_cups_per_day=$6,
			exercise_frequency=$7, diet_quality=$8, sleep_hours=$9, stress_level=$10,
			occupation_hazard=$11, support_at_home=$12, updated_at=NOW()
		WHERE id = $1`,
		l.ID, l.Date, l.Smoking, l.Alcohol, l.DrugUse, l.CaffeineCupsPerDay,
		l.ExerciseFrequency, l.DietQuality, l.SleepHours, l.StressLevel, l.OccupationHazard, l.SupportAtHome)
	return err
}

func (r *lifestyleRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `DELETE FROM lifestyle WHERE id = $1`, id)
	return err
}

func (r *lifestyleRepoPG) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Lifestyle, error) {
	rows, err := conn(ctx, r.pool).Query(ctx,
		`SELECT `+lifestyleCols+` FROM lifestyle WHERE patient_id = $1 ORDER BY date ASC NULLS FIRST`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Lifestyle
	for rows.Next() {
		l, err := scanLifestyle(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, l)
	}
	return items, rows.Err()
}

// =========== Snapshot Repository ===========

type snapshotRepoPG struct {
	patients    PatientRepository
	histories   HistoryRepository
	triages     TriageRepository
	labworks    LabworkRepository
	ultrasounds UltrasoundRepository
	lifestyles  LifestyleRepository
}

func NewSnapshotRepoPG(pool *pgxpool.Pool) SnapshotRepository {
	return &snapshotRepoPG{
		patients:    NewPatientRepoPG(pool),
		histories:   NewHistoryRepoPG(pool),
		triages:     NewTriageRepoPG(pool),
		labworks:    NewLabworkRepoPG(pool),
		ultrasounds: NewUltrasoundRepoPG(pool),
		lifestyles:  NewLifestyleRepoPG(pool),
	}
}

func (r *snapshotRepoPG) Fetch(ctx context.Context, patientID uuid.UUID) (*Snapshot, error) {
	p, err := r.patients.GetByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	snap := &Snapshot{Patient: p}
	if snap.Histories, err = r.histories.ListByPatient(ctx, patientID); err != nil {
		return nil, err
	}
	if snap.Triages, err = r.triages.ListByPatient(ctx, patientID); err != nil {
		return nil, err
	}
	if snap.Labworks, err = r.labworks.ListByPatient(ctx, patientID); err != nil {
		return nil, err
	}
	if snap.Ultrasounds, err = r.ultrasounds.ListByPatient(ctx, patientID); err != nil {
		return nil, err
	}
	if snap.Lifestyles, err = r.lifestyles.ListByPatient(ctx, patientID); err != nil {
		return nil, err
	}
	return snap, nil
}
