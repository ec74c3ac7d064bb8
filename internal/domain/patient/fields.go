package patient

// Field maps use storage (snake_case) names. Entries are present only when
// the underlying column is non-nil.

func putInt(m map[string]interface{}, key string, v *int) {
	if v != nil {
		m[key] = *v
	}
}

func putFloat(m map[string]interface{}, key string, v *float64) {
	if v != nil {
		m[key] = *v
	}
}

func putBool(m map[string]interface{}, key string, v *bool) {
	if v != nil {
		m[key] = *v
	}
}

func putString(m map[string]interface{}, key string, v *string) {
	if v != nil {
		m[key] = *v
	}
}

func (h *History) Fields() map[string]interface{} {
	m := make(map[string]interface{})
	putInt(m, "gravida", h.Gravida)
	putInt(m, "para", h.Para)
	putInt(m, "living_children", h.LivingChildren)
	putInt(m, "age_at_first_pregnancy", h.AgeAtFirstPregnancy)
	putBool(m, "previous_cesarean", h.PreviousCesarean)
	putInt(m, "previous_miscarriages", h.PreviousMiscarriages)
	putInt(m, "previous_stillbirths", h.PreviousStillbirths)
	putBool(m, "previous_preterm_birth", h.PreviousPretermBirth)
	putBool(m, "postpartum_hemorrhage", h.PostpartumHemorrhage)
	putBool(m, "preeclampsia", h.Preeclampsia)
	putBool(m, "eclampsia", h.Eclampsia)
	putBool(m, "gestational_diabetes", h.GestationalDiabetes)
	putBool(m, "chronic_hypertension", h.ChronicHypertension)
	putBool(m, "diabetes_mellitus", h.DiabetesMellitus)
	putBool(m, "asthma", h.Asthma)
	putBool(m, "thyroid_disorder", h.ThyroidDisorder)
	putBool(m, "heart_disease", h.HeartDisease)
	putBool(m, "kidney_disease", h.KidneyDisease)
	putBool(m, "sickle_cell", h.SickleCell)
	putBool(m, "hiv_positive", h.HIVPositive)
	putBool(m, "blood_transfusion", h.BloodTransfusion)
	putBool(m, "family_diabetes", h.FamilyDiabetes)
	putBool(m, "family_hypertension", h.FamilyHypertension)
	putBool(m, "family_twins", h.FamilyTwins)
	putString(m, "allergies", h.Allergies)
	putString(m, "surgeries", h.Surgeries)
	return m
}

func (t *Triage) Fields() map[string]interface{} {
	m := make(map[string]interface{})
	putInt(m, "systolic_bp", t.SystolicBP)
	putInt(m, "diastolic_bp", t.DiastolicBP)
	putInt(m, "heart_rate", t.HeartRate)
	putInt(m, "respiratory_rate", t.RespiratoryRate)
	putFloat(m, "temperature", t.Temperature)
	putInt(m, "oxygen_saturation", t.OxygenSaturation)
	putFloat(m, "weight", t.Weight)
	putFloat(m, "height", t.Height)
	putFloat(m, "bmi", t.BMI)
	putFloat(m, "muac", t.MUAC)
	putFloat(m, "fundal_height", t.FundalHeight)
	putInt(m, "fetal_heart_rate", t.FetalHeartRate)
	putString(m, "fetal_movement", t.FetalMovement)
	putString(m, "urine_protein", t.UrineProtein)
	putString(m, "urine_glucose", t.UrineGlucose)
	putString(m, "edema_level", t.EdemaLevel)
	putString(m, "complaint", t.Complaint)
	return m
}

func (l *Labwork) Fields() map[string]interface{} {
	m := make(map[string]interface{})
	putFloat(m, "hemoglobin", l.Hemoglobin)
	putFloat(m, "hematocrit", l.Hematocrit)
	putFloat(m, "white_cell_count", l.WhiteCellCount)
	putFloat(m, "platelet_count", l.PlateletCount)
	putFloat(m, "fasting_glucose", l.FastingGlucose)
	putFloat(m, "random_glucose", l.RandomGlucose)
	putString(m, "blood_group", l.BloodGroup)
	putString(m, "rhesus_factor", l.RhesusFactor)
	putString(m, "hiv_status", l.HIVStatus)
	putString(m, "syphilis_result", l.SyphilisResult)
	putString(m, "hepatitis_b", l.HepatitisB)
	putString(m, "malaria_test", l.MalariaTest)
	putString(m, "urinalysis_protein", l.UrinalysisProtein)
	putString(m, "urinalysis_glucose", l.UrinalysisGlucose)
	putFloat(m, "creatinine", l.Creatinine)
	putFloat(m, "blood_urea", l.BloodUrea)
	return m
}

func (u *Ultrasound) Fields() map[string]interface{} {
	m := make(map[string]interface{})
	putFloat(m, "gestational_age_weeks", u.GestationalAgeWeeks)
	putInt(m, "fetus_count", u.FetusCount)
	putFloat(m, "amniotic_fluid_index", u.AmnioticFluidIndex)
	putFloat(m, "biparietal_diameter", u.BiparietalDiameter)
	putFloat(m, "head_circumference", u.HeadCircumference)
	putFloat(m, "abdominal_circumference", u.AbdominalCircumference)
	putFloat(m, "femur_length", u.FemurLength)
	putFloat(m, "estimated_fetal_weight", u.EstimatedFetalWeight)
	putString(m, "placenta_position", u.PlacentaPosition)
	putString(m, "placenta_grade", u.PlacentaGrade)
	putString(m, "fetal_presentation", u.FetalPresentation)
	putBool(m, "fetal_heartbeat", u.FetalHeartbeat)
	return m
}

func (l *Lifestyle) Fields() map[string]interface{} {
	m := make(map[string]interface{})
	putBool(m, "smoking", l.Smoking)
	putBool(m, "alcohol", l.Alcohol)
	putBool(m, "drug_use", l.DrugUse)
	putInt(m, "caffeine_cups_per_day", l.CaffeineCupsPerDay)
	putString(m, "exercise_frequency", l.ExerciseFrequency)
	putString(m, "diet_quality", l.DietQuality)
	putFloat(m, "sleep_hours", l.SleepHours)
	putString(m, "stress_level", l.StressLevel)
	putString(m, "occupation_hazard", l.OccupationHazard)
	putBool(m, "support_at_home", l.SupportAtHome)
	return m
}
