package docgen

import (
	"context"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/exportdocs/exportdocs/pkg/docgen_server/export"
	"github.com/exportdocs/exportdocs/pkg/docgen_server/model"
)

// GeneratorController turns a shipment record and a document selection
// into export blobs.
type GeneratorController interface {
	Generate(ctx context.Context, req GenerateRequest) (GenerateResult, error)
	ExportCSV(ctx context.Context, req ExportCSVRequest) (ExportCSVResult, error)
}

type GenerateRequest struct {
	Record    model.ShipmentRecord `json:"record"`
	Documents []DocumentID         `json:"documents"` // Selected document identifiers.
}

type GenerateResult struct {
	HTML          string `json:"html"`           // The combined document, ready to serve as text/html.
	DocumentCount int    `json:"document_count"` // Number of documents rendered into HTML.
}

type ExportCSVRequest struct {
	Record model.ShipmentRecord `json:"record"`
}

type ExportCSVResult struct {
	CSV string `json:"csv"` // Sectioned CSV export, ready to serve as text/csv.
}

type _GeneratorController struct {
	awbNumber AWBNumberFunc
}

// NewGeneratorController creates a GeneratorController. awbNumber may
// be nil, in which case air waybill numbers come from math/rand.
func NewGeneratorController(awbNumber AWBNumberFunc) GeneratorController {
	if awbNumber == nil {
		awbNumber = defaultAWBNumber
	}
	return &_GeneratorController{
		awbNumber: awbNumber,
	}
}

func (c *_GeneratorController) Generate(ctx context.Context, req GenerateRequest) (GenerateResult, error) {
	if err := ValidateGenerateRequest(req); err != nil {
		return GenerateResult{}, err
	}
	if len(req.Documents) == 0 {
		return GenerateResult{}, model.ErrNoDocumentSelected
	}

	selected := lo.SliceToMap(req.Documents, func(id DocumentID) (DocumentID, struct{}) {
		return id, struct{}{}
	})

	renderCtx := RenderContext{
		Record:    req.Record,
		Items:     req.Record.EffectiveItems(),
		AWBNumber: c.awbNumber,
	}

	// Selection order is irrelevant; documents always come out in
	// registry order.
	fragments := make([]string, 0, len(selected))
	for _, doc := range Registry {
		if _, ok := selected[doc.ID]; !ok {
			continue
		}
		fragments = append(fragments, doc.Render(renderCtx))
	}

	logrus.Debugf("generated %d document(s) for invoice %q", len(fragments), req.Record.Shipment.InvoiceNumber)
	return GenerateResult{
		HTML:          Assemble(fragments),
		DocumentCount: len(fragments),
	}, nil
}

func (c *_GeneratorController) ExportCSV(ctx context.Context, req ExportCSVRequest) (ExportCSVResult, error) {
	if err := ValidateExportCSVRequest(req); err != nil {
		return ExportCSVResult{}, err
	}

	return ExportCSVResult{
		CSV: export.MarshalShipmentCSV(req.Record),
	}, nil
}
