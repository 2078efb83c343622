package export_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exportdocs/exportdocs/pkg/docgen_server/export"
	"github.com/exportdocs/exportdocs/pkg/docgen_server/model"
)

func sampleRecord() model.ShipmentRecord {
	return model.ShipmentRecord{
		Exporter: model.Party{
			Name:        "Acme Exports Pvt Ltd",
			Address:     "12 Industrial Estate",
			CityCountry: "Mumbai, India",
			Contact:     "+91 22 1234 5678",
			Email:       "sales@acme.example",
			IECCode:     "IEC0012345",
			TaxID:       "27AAAAA0000A1Z5",
		},
		Consignee: model.Party{
			Name:        "Globex Imports GmbH",
			Address:     "Hafenstrasse 9",
			CityCountry: "Hamburg, Germany",
		},
		Shipment: model.ShipmentInfo{
			InvoiceNumber:   "INV-2026-001",
			InvoiceDate:     model.NewDateFromStringNoError("2026-01-15"),
			PONumber:        "PO-555",
			PortOfLoading:   "Nhava Sheva",
			PortOfDischarge: "Hamburg",
			CountryOfOrigin: "India",
			Incoterm:        model.IncotermFOB,
			PaymentTerm:     model.PaymentTermLC,
			VesselName:      "MV Example",
			PackageType:     "Cartons",
			NumPackages:     "24",
			GrossWeight:     "480",
			NetWeight:       "455",
			Currency:        model.CurrencyUSD,
		},
		Items: []model.LineItem{
			{
				Description: "Stainless Steel Widgets",
				HSCode:      "7326.90",
				Quantity:    model.NewDecimalFromInt(10),
				Unit:        model.UnitPCS,
				UnitPrice:   model.NewDecimalFromInt(125),
			},
		},
	}
}

func TestMarshalShipmentCSV(t *testing.T) {
	data := export.MarshalShipmentCSV(sampleRecord())

	assert.Contains(t, data, "EXPORTER INFORMATION\n")
	assert.Contains(t, data, "CONSIGNEE INFORMATION\n")
	assert.Contains(t, data, "SHIPMENT DETAILS\n")
	assert.Contains(t, data, "ITEMS\n")
	assert.Contains(t, data, "name,Acme Exports Pvt Ltd\n")
	assert.Contains(t, data, "invoiceNumber,INV-2026-001\n")
	assert.Contains(t, data, "invoiceDate,2026-01-15\n")
	assert.Contains(t, data, "Description,HS Code,Quantity,Unit,Unit Price,Total\n")
	assert.Contains(t, data, "Stainless Steel Widgets,7326.90,10,PCS,125,1250\n")
}

func TestMarshalShipmentCSVQuotesDelimiters(t *testing.T) {
	rec := sampleRecord()
	rec.Exporter.Address = `12, Industrial Estate "B"`

	data := export.MarshalShipmentCSV(rec)
	assert.Contains(t, data, `address,"12, Industrial Estate ""B"""`)
}

func TestMarshalShipmentCSVSkipsBlankItems(t *testing.T) {
	rec := sampleRecord()
	rec.Items = append(rec.Items, model.LineItem{})

	data := export.MarshalShipmentCSV(rec)
	assert.Equal(t, 1, strings.Count(data, "\nStainless"))
	assert.NotContains(t, data, "\n,,0,")
}

func TestParseShipmentCSVRoundTrip(t *testing.T) {
	rec := sampleRecord()
	rec.Exporter.Address = `12, Industrial Estate "B"`

	parsed, err := export.ParseShipmentCSV(export.MarshalShipmentCSV(rec))
	require.NoError(t, err)

	assert.Equal(t, rec.Exporter, parsed.Exporter)
	assert.Equal(t, rec.Consignee, parsed.Consignee)
	assert.Equal(t, rec.Shipment, parsed.Shipment)
	require.Len(t, parsed.Items, 1)
	assert.Equal(t, rec.Items[0].Description, parsed.Items[0].Description)
	assert.Equal(t, rec.Items[0].HSCode, parsed.Items[0].HSCode)
	assert.Equal(t, rec.Items[0].Unit, parsed.Items[0].Unit)
	assert.True(t, parsed.GrandTotal().Fixed2() == "1250.00")
}

func TestParseShipmentCSVBadInput(t *testing.T) {
	_, err := export.ParseShipmentCSV(`ITEMS` + "\n" + `"unterminated`)
	require.Error(t, err)
}
