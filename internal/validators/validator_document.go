package validators

import (
	"bytes"
	"context"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/pdfplace/pdfplace/models"
)

// DocumentValidator validates upload requests: the filename must be
// present and the content must parse as a PDF.
type DocumentValidator struct {
	conf *model.Configuration
}

func NewDocumentValidator() Validator {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &DocumentValidator{conf: conf}
}

func (v *DocumentValidator) Validate(_ context.Context, obj any) error {
	switch value := obj.(type) {
	case models.Upload:
		return v.validateUpload(value)
	case *models.Upload:
		return v.validateUpload(*value)
	default:
		return ErrUnsupportedType
	}
}

func (v *DocumentValidator) validateUpload(upload models.Upload) error {
	if upload.Filename == "" {
		return ErrEmptyFilename
	}
	if len(upload.Content) == 0 {
		return ErrEmptyPayload
	}

	if err := api.Validate(bytes.NewReader(upload.Content), v.conf); err != nil {
		return fmt.Errorf("%w: %v", ErrNotPDF, err)
	}

	return nil
}
