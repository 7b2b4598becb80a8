package responses

type SavePatient struct {
	PatientID string `json:"patient_id"`
}

type SaveDetailedReport struct {
	ReportID string `json:"report_id"`
}

type SaveAppointment struct {
	AppointmentID string `json:"appointment_id"`
}
