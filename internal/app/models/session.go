package models

import "time"

const (
	SessionStageFirstSubmitted  = "first_stage_submitted"
	SessionStageSecondSubmitted = "second_stage_submitted"
)

// QuestionnaireSession is the transient per-user questionnaire state. It
// lives only in the session store and is evicted by TTL or capacity.
type QuestionnaireSession struct {
	ID                   string            `json:"id"`
	Stage                string            `json:"stage"`
	FirstStageResponses  map[string]string `json:"first_stage_responses"`
	SecondStageResponses map[string]string `json:"second_stage_responses,omitempty"`
	CreatedAt            time.Time         `json:"created_at"`
	UpdatedAt            time.Time         `json:"updated_at"`
}
