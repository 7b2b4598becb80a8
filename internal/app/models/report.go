package models

// DetailedReport is the full report document. The sub-documents are open
// string-to-string mappings; their schema is not enforced.
type DetailedReport struct {
	ID        string `bson:"_id,omitempty" json:"_id,omitempty"`
	PatientID string `bson:"patient_id" json:"patient_id"`
	DoctorID  string `bson:"doctor_id" json:"doctor_id"`
	Date      string `bson:"date" json:"date"`

	// Demographic snapshot copied from the patient at save time.
	PatientName string `bson:"patient_name" json:"patient_name"`
	DateOfBirth string `bson:"date_of_birth" json:"date_of_birth"`
	Gender      string `bson:"gender" json:"gender"`
	BloodGroup  string `bson:"blood_group" json:"blood_group"`
	ContactInfo string `bson:"contact_info" json:"contact_info"`

	DoctorName string `bson:"doctor_name" json:"doctor_name"`
	Conclusion string `bson:"conclusion" json:"conclusion"`
	Summary    string `bson:"summary" json:"summary"`

	DetailedHistory      map[string]string `bson:"detailed_history" json:"detailed_history"`
	MedicalHistory       map[string]string `bson:"medical_history" json:"medical_history"`
	MedicalCondition     map[string]string `bson:"medical_condition" json:"medical_condition"`
	CurrentMedication    map[string]string `bson:"current_medication" json:"current_medication"`
	TestResults          map[string]string `bson:"test_results" json:"test_results"`
	LifestyleRiskFactors map[string]string `bson:"lifestyle_risk_factors" json:"lifestyle_risk_factors"`

	TestsID         []string `bson:"tests_id" json:"tests_id"`
	PrescriptionsID []string `bson:"prescriptions_id" json:"prescriptions_id"`
}

// ReportSummary is the list-view projection of a DetailedReport. It is never
// persisted on its own; ReportFile carries the blob-store sentinel.
type ReportSummary struct {
	ID              string   `bson:"_id,omitempty" json:"_id"`
	PatientID       string   `bson:"patient_id" json:"patient_id"`
	DoctorID        string   `bson:"doctor_id" json:"doctor_id"`
	Date            string   `bson:"date" json:"date"`
	DoctorName      string   `bson:"doctor_name" json:"doctor_name"`
	Conclusion      string   `bson:"conclusion" json:"conclusion"`
	TestsID         []string `bson:"tests_id" json:"tests_id"`
	PrescriptionsID []string `bson:"prescriptions_id" json:"prescriptions_id"`
	ReportFile      string   `bson:"-" json:"report_file"`
}
