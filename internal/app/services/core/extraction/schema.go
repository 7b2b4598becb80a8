package extraction

import "medrecord-service/internal/pkg/constvars"

// schemaDescriptor binds an extraction kind to the vision prompt that
// produces it and the envelope key the model's output must contain.
type schemaDescriptor struct {
	Kind        string
	Prompt      string
	EnvelopeKey string
}

var schemaDescriptors = map[string]schemaDescriptor{
	constvars.SchemaKindAadhaar: {
		Kind:        constvars.SchemaKindAadhaar,
		Prompt:      constvars.AadhaarExtractionPrompt,
		EnvelopeKey: constvars.SchemaKindAadhaar,
	},
	constvars.SchemaKindPrescription: {
		Kind:        constvars.SchemaKindPrescription,
		Prompt:      constvars.PrescriptionExtractionPrompt,
		EnvelopeKey: constvars.SchemaKindPrescription,
	},
}
