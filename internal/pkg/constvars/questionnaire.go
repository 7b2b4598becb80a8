package constvars

const (
	QuestionCategoryDetailedHistory = "Detailed History"
	QuestionCategoryMedicalHistory  = "Medical History"
	QuestionCategoryMedication      = "Current Medication"
	QuestionCategoryTestResults     = "Test Results"
	QuestionCategoryLifestyle       = "Lifestyle & Risk Factors"
)
