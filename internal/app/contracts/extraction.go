package contracts

import "context"

type ExtractionUsecase interface {
	// ExtractDocument runs the vision model over the image and returns the
	// parsed structured record for the given schema kind
	// (constvars.SchemaKindAadhaar or constvars.SchemaKindPrescription).
	ExtractDocument(ctx context.Context, image []byte, fileName, contentType, schemaKind string) (map[string]interface{}, error)
}
