package constvars

const (
	URLParamPatientID     = "patient_id"
	URLParamDoctorID      = "doctor_id"
	URLParamAppointmentID = "appointment_id"
)

const (
	URLQueryParamN = "n"
)

const (
	MultipartFileField = "file"
)

// DefaultAppointmentFetchLimit is the number of appointments returned by
// get_n_appointments when the caller does not supply n.
const DefaultAppointmentFetchLimit = 5
