package docgen

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/samber/lo"

	"github.com/exportdocs/exportdocs/pkg/docgen_server/model"
)

type PartyRule struct{}

func (r PartyRule) Validate(value interface{}) error {
	party, ok := value.(model.Party)
	if !ok {
		return fmt.Errorf("invalid type: %T", value)
	}

	return validation.ValidateStruct(&party,
		validation.Field(&party.Name, validation.Required),
	)
}

type ShipmentInfoRule struct{}

func (r ShipmentInfoRule) Validate(value interface{}) error {
	info, ok := value.(model.ShipmentInfo)
	if !ok {
		return fmt.Errorf("invalid type: %T", value)
	}

	return validation.ValidateStruct(&info,
		validation.Field(&info.InvoiceNumber, validation.Required),
		validation.Field(&info.InvoiceDate, validation.By(requiredDate)),
		validation.Field(&info.Incoterm, validation.In(lo.ToAnySlice(model.KnownIncoterms)...)),
		validation.Field(&info.PaymentTerm, validation.In(lo.ToAnySlice(model.KnownPaymentTerms)...)),
		validation.Field(&info.Currency, validation.In(lo.ToAnySlice(model.KnownCurrencies)...)),
		validation.Field(&info.PackageType, validation.In(lo.ToAnySlice(model.KnownPackageTypes)...)),
	)
}

type LineItemRule struct{}

func (r LineItemRule) Validate(value interface{}) error {
	item, ok := value.(model.LineItem)
	if !ok {
		return fmt.Errorf("invalid type: %T", value)
	}

	return validation.ValidateStruct(&item,
		validation.Field(&item.Unit, validation.In(lo.ToAnySlice(model.KnownUnits)...)),
	)
}

func requiredDate(value interface{}) error {
	date, ok := value.(model.Date)
	if !ok {
		return fmt.Errorf("invalid type: %T", value)
	}
	if date.IsZero() {
		return errors.New("cannot be blank")
	}
	return nil
}

type ShipmentRecordRule struct{}

func (r ShipmentRecordRule) Validate(value interface{}) error {
	rec, ok := value.(model.ShipmentRecord)
	if !ok {
		return fmt.Errorf("invalid type: %T", value)
	}

	if err := validation.ValidateStruct(&rec,
		validation.Field(&rec.Exporter, PartyRule{}),
		validation.Field(&rec.Consignee, PartyRule{}),
		validation.Field(&rec.Shipment, ShipmentInfoRule{}),
		validation.Field(&rec.Items, validation.Each(LineItemRule{})),
	); err != nil {
		return err
	}

	if len(rec.EffectiveItems()) == 0 {
		return errors.New("items: at least one non-blank line item is required")
	}
	return nil
}

func ValidateGenerateRequest(req GenerateRequest) error {
	if err := validation.ValidateStruct(&req,
		validation.Field(&req.Record, ShipmentRecordRule{}),
	); err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	for _, id := range req.Documents {
		if _, found := DocumentTypeByID(id); !found {
			return fmt.Errorf("documents: %q: %w", id, model.ErrUnknownDocumentType)
		}
	}

	return nil
}

func ValidateExportCSVRequest(req ExportCSVRequest) error {
	if err := validation.ValidateStruct(&req,
		validation.Field(&req.Record, ShipmentRecordRule{}),
	); err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}
