package models

import "medrecord-service/internal/pkg/constvars"

// Question is one entry of the fixed first-stage questionnaire.
type Question struct {
	ID       int    `json:"id"`
	Category string `json:"category"`
	Question string `json:"question"`
}

// DerivedQuestion is a follow-up question proposed by the chat model after
// the first stage.
type DerivedQuestion struct {
	Category string `json:"category"`
	Question string `json:"question"`
}

// FirstStageQuestionnaire returns the fixed question set served by
// GET /questionnaire. The content never changes between calls.
func FirstStageQuestionnaire() []Question {
	return []Question{
		{ID: 1, Category: constvars.QuestionCategoryDetailedHistory, Question: "What brings you in today? (Chief Complaint)"},
		{ID: 2, Category: constvars.QuestionCategoryDetailedHistory, Question: "How long have you been experiencing these symptoms?"},
		{ID: 3, Category: constvars.QuestionCategoryMedicalHistory, Question: "Do you have any chronic conditions (e.g., diabetes, hypertension)?"},
		{ID: 4, Category: constvars.QuestionCategoryMedicalHistory, Question: "Have you had any major surgeries or procedures in the past?"},
		{ID: 5, Category: constvars.QuestionCategoryMedicalHistory, Question: "Do you have any known allergies (medications, food, environmental)?"},
		{ID: 6, Category: constvars.QuestionCategoryMedicalHistory, Question: "Is there a history of any major diseases in your family?"},
		{ID: 7, Category: constvars.QuestionCategoryMedication, Question: "Are you currently taking any prescribed medications?"},
		{ID: 8, Category: constvars.QuestionCategoryMedication, Question: "Are you taking any over-the-counter drugs or supplements?"},
		{ID: 9, Category: constvars.QuestionCategoryTestResults, Question: "Have you had any recent lab tests or imaging done?"},
		{ID: 10, Category: constvars.QuestionCategoryLifestyle, Question: "How would you describe your diet and nutrition habits?"},
		{ID: 11, Category: constvars.QuestionCategoryLifestyle, Question: "Do you smoke, drink alcohol, or use any substances?"},
		{ID: 12, Category: constvars.QuestionCategoryLifestyle, Question: "How frequently do you exercise?"},
		{ID: 13, Category: constvars.QuestionCategoryLifestyle, Question: "How has your mental health been recently?"},
	}
}
