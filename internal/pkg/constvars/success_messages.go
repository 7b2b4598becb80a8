package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	SavePatientSuccessMessage        = "Patient saved successfully!"
	SaveDetailedReportSuccessMessage = "Detailed report saved successfully!"
	SaveAppointmentSuccessMessage    = "Appointment saved successfully!"
)
