package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"numeric":  "must be a number",
	"oneof":    "must be one of [%s]",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"lt":       "must be less than %s",
	"lte":      "must be less than or equal to %s",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gt":    true,
	"gte":   true,
	"lt":    true,
	"lte":   true,
}

// Error messages for clients
const (
	ErrClientSomethingWrongWithApplication = "something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "cannot process the request, please check your input"
	ErrClientServerLongRespond             = "server took too long to respond, please try again"

	ErrClientPatientNotFound       = "patient not found"
	ErrClientReportNotFound        = "no detailed report found"
	ErrClientReportsNotFound       = "no reports found"
	ErrClientAppointmentNotFound   = "appointment not found"
	ErrClientAppointmentsNotFound  = "no appointments found"
	ErrClientInvalidFetchLimit     = "invalid value for 'n', please provide a positive integer"
	ErrClientMissingUploadFile     = "no file part in the request"
	ErrClientEmptyUploadFile       = "no selected file"
	ErrClientFileTypeNotAllowed    = "file type not allowed"
	ErrClientSessionNotFound       = "user data not found"
	ErrClientSessionAlreadyDone    = "questionnaire already completed for this user"
	ErrClientModelOutputMalformed  = "the extraction model returned an unreadable answer, please retry"
	ErrClientModelUnavailable      = "the assistant model is unavailable, please try again later"
	ErrClientMissingRequestPayload = "invalid or missing JSON data"
)

// Error messages for developers
const (
	ErrDevValidationFailed       = "Validation failed"
	ErrDevCannotParseJSON        = "Failed to parse JSON request body"
	ErrDevCannotMarshalJSON      = "Failed to marshal data to JSON"
	ErrDevCannotParseMultipart   = "Failed to parse multipart form"
	ErrDevServerDeadlineExceeded = "Request exceeded the configured deadline"
	ErrDevMissingRequestID       = "Request ID missing from context"

	ErrDevDBFailedToFindDocument    = "MongoDB failed to find document"
	ErrDevDBFailedToInsertDocument  = "MongoDB failed to insert document"
	ErrDevDBFailedToUpdateDocument  = "MongoDB failed to update document"
	ErrDevDBFailedToIterateDocument = "MongoDB failed to iterate documents"
	ErrDevDBStringNotObjectID       = "Provided string is not a valid ObjectID"

	ErrDevRedisSetData    = "Redis failed to set data"
	ErrDevRedisGetData    = "Redis failed to get data"
	ErrDevRedisDeleteData = "Redis failed to delete data"

	ErrDevMinioFailedToCreateObject = "Minio failed to create object in bucket %s"

	ErrDevEventPublishFailed = "Failed to publish record event to queue"

	ErrDevCreateHTTPRequest      = "Failed to create HTTP request"
	ErrDevSendHTTPRequest        = "Failed to send HTTP request"
	ErrDevDecodeResponse         = "Failed to decode %s response body"
	ErrDevModelBadStatus         = "Model endpoint returned non-200 status: %d"
	ErrDevModelEmptyChoices      = "Model endpoint returned no choices"
	ErrDevModelOutputNotJSON     = "Model output could not be parsed as JSON"
	ErrDevModelOutputMissingKey  = "Model output is missing the required envelope key %q"
	ErrDevSessionNotFound        = "No questionnaire session found for the supplied identifier"
	ErrDevSessionAlreadyTerminal = "Questionnaire session already reached the terminal stage"
	ErrDevSessionStoreFull       = "Session store rejected the write"
	ErrDevPatientMissingForSave  = "Referenced patient does not exist"
)
