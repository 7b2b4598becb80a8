package requests

// Record save payloads. Validation stays at presence level; any extra keys
// the client sends are ignored rather than rejected.

type SavePatient struct {
	Name        string `json:"name" validate:"required"`
	DateOfBirth string `json:"date_of_birth"`
	Gender      string `json:"gender"`
	BloodGroup  string `json:"blood_group"`
	ContactInfo string `json:"contact_info"`
}

type SaveDetailedReport struct {
	PatientID   string `json:"patient_id" validate:"required"`
	DoctorID    string `json:"doctor_id"`
	Date        string `json:"date"`
	PatientName string `json:"patient_name"`
	DateOfBirth string `json:"date_of_birth"`
	Gender      string `json:"gender"`
	BloodGroup  string `json:"blood_group"`
	ContactInfo string `json:"contact_info"`
	DoctorName  string `json:"doctor_name"`
	Conclusion  string `json:"conclusion"`
	Summary     string `json:"summary"`

	DetailedHistory      map[string]string `json:"detailed_history"`
	MedicalHistory       map[string]string `json:"medical_history"`
	MedicalCondition     map[string]string `json:"medical_condition"`
	CurrentMedication    map[string]string `json:"current_medication"`
	TestResults          map[string]string `json:"test_results"`
	LifestyleRiskFactors map[string]string `json:"lifestyle_risk_factors"`

	TestsID         []string `json:"tests_id"`
	PrescriptionsID []string `json:"prescriptions_id"`
}

type SaveAppointment struct {
	PatientID string `json:"patient_id" validate:"required"`
	DoctorID  string `json:"doctor_id" validate:"required"`
	Date      string `json:"date"`
	Name      string `json:"name"`
	Sex       string `json:"sex"`
	Age       string `json:"age"`
}
