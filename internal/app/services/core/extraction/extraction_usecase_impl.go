package extraction

import (
	"context"
	"fmt"
	"medrecord-service/internal/app/contracts"
	"medrecord-service/internal/pkg/constvars"
	"medrecord-service/internal/pkg/exceptions"
	"medrecord-service/internal/pkg/utils"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

var (
	extractionUsecaseInstance contracts.ExtractionUsecase
	onceExtractionUsecase     sync.Once
)

type extractionUsecase struct {
	ModelClient   contracts.ModelClient
	ObjectStorage contracts.ObjectStorage
	Log           *zap.Logger
}

func NewExtractionUsecase(
	modelClient contracts.ModelClient,
	objectStorage contracts.ObjectStorage,
	logger *zap.Logger,
) contracts.ExtractionUsecase {
	onceExtractionUsecase.Do(func() {
		extractionUsecaseInstance = &extractionUsecase{
			ModelClient:   modelClient,
			ObjectStorage: objectStorage,
			Log:           logger,
		}
	})
	return extractionUsecaseInstance
}

func (uc *extractionUsecase) ExtractDocument(ctx context.Context, image []byte, fileName, contentType, schemaKind string) (map[string]interface{}, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("extractionUsecase.ExtractDocument called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSchemaKindKey, schemaKind),
		zap.String(constvars.LoggingFileNameKey, fileName),
	)

	descriptor, ok := schemaDescriptors[schemaKind]
	if !ok {
		return nil, exceptions.ErrModelMissingEnvelope(fmt.Errorf("unknown schema kind %q", schemaKind), schemaKind)
	}

	rawOutput, err := uc.ModelClient.CompleteWithImage(ctx, descriptor.Prompt, image, contentType)
	if err != nil {
		return nil, err
	}

	extracted, err := utils.ExtractJSONObject(rawOutput)
	if err != nil {
		uc.Log.Error("extractionUsecase.ExtractDocument model output not parseable",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSchemaKindKey, schemaKind),
			zap.Error(err),
		)
		return nil, exceptions.ErrModelMalformedOutput(err)
	}

	if _, ok := extracted[descriptor.EnvelopeKey]; !ok {
		return nil, exceptions.ErrModelMissingEnvelope(fmt.Errorf("envelope key %q absent from model output", descriptor.EnvelopeKey), descriptor.EnvelopeKey)
	}

	// Archive the source image so extractions stay auditable. The archive is
	// best effort and never fails the extraction.
	if uc.ObjectStorage != nil {
		objectName := utils.GenerateFileName(schemaKind, filepath.Ext(fileName))
		if _, uploadErr := uc.ObjectStorage.UploadImage(ctx, image, objectName, contentType); uploadErr != nil {
			uc.Log.Warn("extractionUsecase.ExtractDocument image archive failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingFileNameKey, objectName),
				zap.Error(uploadErr),
			)
		}
	}

	return extracted, nil
}
