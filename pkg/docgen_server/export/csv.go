// Package export flattens a shipment record into the sectioned CSV
// form used for spreadsheet handoff, and parses it back.
package export

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/exportdocs/exportdocs/pkg/docgen_server/model"
)

const (
	sectionExporter  = "EXPORTER INFORMATION"
	sectionConsignee = "CONSIGNEE INFORMATION"
	sectionShipment  = "SHIPMENT DETAILS"
	sectionItems     = "ITEMS"
)

var itemColumns = []string{"Description", "HS Code", "Quantity", "Unit", "Unit Price", "Total"}

func exporterFields(p model.Party) [][2]string {
	return [][2]string{
		{"name", p.Name},
		{"address", p.Address},
		{"city", p.CityCountry},
		{"contact", p.Contact},
		{"email", p.Email},
		{"iec", p.IECCode},
		{"gst", p.TaxID},
	}
}

func consigneeFields(p model.Party) [][2]string {
	return [][2]string{
		{"name", p.Name},
		{"address", p.Address},
		{"city", p.CityCountry},
		{"contact", p.Contact},
		{"email", p.Email},
	}
}

func shipmentFields(s model.ShipmentInfo) [][2]string {
	invoiceDate := ""
	if !s.InvoiceDate.IsZero() {
		invoiceDate = s.InvoiceDate.String()
	}
	return [][2]string{
		{"invoiceNumber", s.InvoiceNumber},
		{"invoiceDate", invoiceDate},
		{"poNumber", s.PONumber},
		{"portLoading", s.PortOfLoading},
		{"portDischarge", s.PortOfDischarge},
		{"countryOrigin", s.CountryOfOrigin},
		{"incoterms", string(s.Incoterm)},
		{"paymentTerms", string(s.PaymentTerm)},
		{"vesselName", s.VesselName},
		{"packageType", string(s.PackageType)},
		{"numPackages", s.NumPackages},
		{"grossWeight", s.GrossWeight},
		{"netWeight", s.NetWeight},
		{"currency", string(s.Currency)},
	}
}

// MarshalShipmentCSV serializes the effective record into four labeled
// sections. Fields containing delimiters, quotes or newlines are quoted
// CSV-style so the output survives a parse.
func MarshalShipmentCSV(rec model.ShipmentRecord) string {
	sb := &strings.Builder{}
	w := csv.NewWriter(sb)

	writeSection := func(title string, fields [][2]string) {
		_ = w.Write([]string{title})
		for _, field := range fields {
			_ = w.Write([]string{field[0], field[1]})
		}
		_ = w.Write([]string{""})
	}

	writeSection(sectionExporter, exporterFields(rec.Exporter))
	writeSection(sectionConsignee, consigneeFields(rec.Consignee))
	writeSection(sectionShipment, shipmentFields(rec.Shipment))

	_ = w.Write([]string{sectionItems})
	_ = w.Write(itemColumns)
	for _, item := range rec.EffectiveItems() {
		_ = w.Write([]string{
			item.Description,
			item.HSCode,
			item.Quantity.String(),
			string(item.Unit),
			item.UnitPrice.String(),
			item.Amount().String(),
		})
	}

	w.Flush()
	return sb.String()
}

// ParseShipmentCSV is the inverse of MarshalShipmentCSV.
func ParseShipmentCSV(data string) (model.ShipmentRecord, error) {
	r := csv.NewReader(strings.NewReader(data))
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return model.ShipmentRecord{}, fmt.Errorf("parse shipment csv: %w", err)
	}

	var rec model.ShipmentRecord
	section := ""
	for _, fields := range records {
		if len(fields) == 1 {
			switch fields[0] {
			case sectionExporter, sectionConsignee, sectionShipment, sectionItems:
				section = fields[0]
			}
			continue
		}

		switch section {
		case sectionExporter:
			setPartyField(&rec.Exporter, fields[0], fields[1])
		case sectionConsignee:
			setPartyField(&rec.Consignee, fields[0], fields[1])
		case sectionShipment:
			setShipmentField(&rec.Shipment, fields[0], fields[1])
		case sectionItems:
			if len(fields) != len(itemColumns) || fields[0] == itemColumns[0] {
				continue
			}
			rec.Items = append(rec.Items, model.LineItem{
				Description: fields[0],
				HSCode:      fields[1],
				Quantity:    model.NewDecimalFromStringOrZero(fields[2]),
				Unit:        model.Unit(fields[3]),
				UnitPrice:   model.NewDecimalFromStringOrZero(fields[4]),
			})
		}
	}
	return rec, nil
}

func setPartyField(p *model.Party, key, value string) {
	switch key {
	case "name":
		p.Name = value
	case "address":
		p.Address = value
	case "city":
		p.CityCountry = value
	case "contact":
		p.Contact = value
	case "email":
		p.Email = value
	case "iec":
		p.IECCode = value
	case "gst":
		p.TaxID = value
	}
}

func setShipmentField(s *model.ShipmentInfo, key, value string) {
	switch key {
	case "invoiceNumber":
		s.InvoiceNumber = value
	case "invoiceDate":
		if date, err := model.NewDateFromString(value); err == nil {
			s.InvoiceDate = date
		}
	case "poNumber":
		s.PONumber = value
	case "portLoading":
		s.PortOfLoading = value
	case "portDischarge":
		s.PortOfDischarge = value
	case "countryOrigin":
		s.CountryOfOrigin = value
	case "incoterms":
		s.Incoterm = model.Incoterm(value)
	case "paymentTerms":
		s.PaymentTerm = model.PaymentTerm(value)
	case "vesselName":
		s.VesselName = value
	case "packageType":
		s.PackageType = model.PackageType(value)
	case "numPackages":
		s.NumPackages = value
	case "grossWeight":
		s.GrossWeight = value
	case "netWeight":
		s.NetWeight = value
	case "currency":
		s.Currency = model.Currency(value)
	}
}
