package controllers

import (
	"context"
	"errors"
	"io"
	"medrecord-service/internal/app/config"
	"medrecord-service/internal/app/contracts"
	"medrecord-service/internal/pkg/constvars"
	"medrecord-service/internal/pkg/exceptions"
	"medrecord-service/internal/pkg/utils"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

// allowedImageExtensions mirrors what the extraction models accept.
var allowedImageExtensions = map[string]string{
	".png":  constvars.MIMEImagePNG,
	".jpg":  constvars.MIMEImageJPEG,
	".jpeg": constvars.MIMEImageJPEG,
}

type ExtractionController struct {
	Log               *zap.Logger
	InternalConfig    *config.InternalConfig
	ExtractionUsecase contracts.ExtractionUsecase
}

func NewExtractionController(
	logger *zap.Logger,
	internalConfig *config.InternalConfig,
	extractionUsecase contracts.ExtractionUsecase,
) *ExtractionController {
	return &ExtractionController{
		Log:               logger,
		InternalConfig:    internalConfig,
		ExtractionUsecase: extractionUsecase,
	}
}

func (c *ExtractionController) ExtractAadhaar(w http.ResponseWriter, r *http.Request) {
	c.extract(w, r, constvars.SchemaKindAadhaar)
}

func (c *ExtractionController) ExtractPrescription(w http.ResponseWriter, r *http.Request) {
	c.extract(w, r, constvars.SchemaKindPrescription)
}

func (c *ExtractionController) extract(w http.ResponseWriter, r *http.Request, schemaKind string) {
	maxMemory := int64(c.InternalConfig.App.RequestBodyLimitInMegabyte) << 20
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, header, err := r.FormFile(constvars.MultipartFileField)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrMissingUploadFile(err))
		return
	}
	defer file.Close()

	if header.Filename == "" {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrEmptyUploadFile(nil))
		return
	}

	extension := strings.ToLower(filepath.Ext(header.Filename))
	contentType, allowed := allowedImageExtensions[extension]
	if !allowed {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrFileTypeNotAllowed(nil))
		return
	}

	image, err := io.ReadAll(file)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	if len(image) == 0 {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrEmptyUploadFile(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(c.InternalConfig.App.ModelTimeoutInSeconds)*time.Second)
	defer cancel()

	extracted, err := c.ExtractionUsecase.ExtractDocument(ctx, image, header.Filename, contentType, schemaKind)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			utils.BuildErrorResponse(c.Log, w, exceptions.ErrServerDeadlineExceeded(ctx.Err()))
			return
		}
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, extracted)
}
