package responses

import "medrecord-service/internal/app/models"

type Questionnaire struct {
	Questions []models.Question `json:"questions"`
}

type NextQuestions struct {
	NextQuestions []models.DerivedQuestion `json:"next_questions"`
}

type FinalReport struct {
	FinalReport string `json:"final_report"`
}
