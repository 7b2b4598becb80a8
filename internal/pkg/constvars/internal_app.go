package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	MongoCollectionPatients     = "patients"
	MongoCollectionReports      = "reports"
	MongoCollectionAppointments = "appointments"
)

const (
	// SchemaKindAadhaar and SchemaKindPrescription name the two extraction
	// schema descriptors. The value doubles as the required envelope key in
	// the model's JSON output.
	SchemaKindAadhaar      = "aadhaar_info"
	SchemaKindPrescription = "prescription_info"
)

// ReportFileSentinel marks that the full report file lives in the object
// store, not inside the summary document.
const ReportFileSentinel = "Stored in object storage"

const (
	SessionKeyPrefix = "questionnaire_session:"
)

const (
	EventPatientSaved     = "patient.saved"
	EventReportSaved      = "report.saved"
	EventAppointmentSaved = "appointment.saved"
)

const (
	ChatRoleSystem    = "system"
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)
