package requests

// SubmitResponses covers both questionnaire stages: user_id identifies the
// session, responses maps question text (or id) to the patient's answer.
type SubmitResponses struct {
	UserID    string            `json:"user_id" validate:"required"`
	Responses map[string]string `json:"responses" validate:"required,min=1"`
}
