package constvars

const (
	LoggingRequestIDKey       = "request_id"
	LoggingClientRequestIDKey = "client_request_id"
	LoggingEndpointKey        = "endpoint"
	LoggingMethodKey          = "method"
	LoggingRemoteAddrKey      = "remote_addr"
	LoggingUserAgentKey       = "user_agent"
	LoggingQueryKey           = "query"
	LoggingStatusCodeKey      = "status_code"
	LoggingDurationKey        = "duration"
	LoggingSuccessKey         = "success"
	LoggingErrorTypeKey       = "error_type"
	LoggingPatientIDKey       = "patient_id"
	LoggingDoctorIDKey        = "doctor_id"
	LoggingReportIDKey        = "report_id"
	LoggingAppointmentIDKey   = "appointment_id"
	LoggingSessionIDKey       = "session_id"
	LoggingSchemaKindKey      = "schema_kind"
	LoggingEventTypeKey       = "event_type"
	LoggingFileNameKey        = "file_name"
)
