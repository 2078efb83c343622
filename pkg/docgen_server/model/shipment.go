package model

import "github.com/samber/lo"

type Incoterm string
type PaymentTerm string
type Currency string
type Unit string
type PackageType string

const (
	IncotermFOB = Incoterm("FOB") // Free On Board
	IncotermCIF = Incoterm("CIF") // Cost, Insurance & Freight
	IncotermCFR = Incoterm("CFR") // Cost and Freight
	IncotermEXW = Incoterm("EXW") // Ex Works
	IncotermFCA = Incoterm("FCA") // Free Carrier
	IncotermDDP = Incoterm("DDP") // Delivered Duty Paid
	IncotermDAP = Incoterm("DAP") // Delivered At Place
)

const (
	PaymentTermLC      = PaymentTerm("L/C")     // Letter of Credit
	PaymentTermTT      = PaymentTerm("T/T")     // Telegraphic Transfer
	PaymentTermDA      = PaymentTerm("D/A")     // Documents Against Acceptance
	PaymentTermDP      = PaymentTerm("D/P")     // Documents Against Payment
	PaymentTermAdvance = PaymentTerm("Advance") // Advance Payment
)

const (
	CurrencyUSD = Currency("USD")
	CurrencyEUR = Currency("EUR")
	CurrencyGBP = Currency("GBP")
	CurrencyINR = Currency("INR")
	CurrencyCNY = Currency("CNY")
)

const (
	UnitPCS  = Unit("PCS")
	UnitKGS  = Unit("KGS")
	UnitMTR  = Unit("MTR")
	UnitSET  = Unit("SET")
	UnitBOX  = Unit("BOX")
	UnitROLL = Unit("ROLL")
	UnitPAIR = Unit("PAIR")
)

var KnownIncoterms = []Incoterm{IncotermFOB, IncotermCIF, IncotermCFR, IncotermEXW, IncotermFCA, IncotermDDP, IncotermDAP}
var KnownPaymentTerms = []PaymentTerm{PaymentTermLC, PaymentTermTT, PaymentTermDA, PaymentTermDP, PaymentTermAdvance}
var KnownCurrencies = []Currency{CurrencyUSD, CurrencyEUR, CurrencyGBP, CurrencyINR, CurrencyCNY}
var KnownUnits = []Unit{UnitPCS, UnitKGS, UnitMTR, UnitSET, UnitBOX, UnitROLL, UnitPAIR}
var KnownPackageTypes = []PackageType{"20ft Container", "40ft Container", "Pallets", "Cartons", "Wooden Crates", "Drums"}

// OrDefault falls back to USD when no currency is set on the record.
func (c Currency) OrDefault() Currency {
	if c == "" {
		return CurrencyUSD
	}
	return c
}

// OrDefault falls back to PCS when no unit is set on the line item.
func (u Unit) OrDefault() Unit {
	if u == "" {
		return UnitPCS
	}
	return u
}

// Party is an exporter or consignee entity. Every field except Name is
// optional and renders as "N/A" in generated documents when blank.
type Party struct {
	Name        string `json:"name"`         // Company name.
	Address     string `json:"address"`      // Street address.
	CityCountry string `json:"city_country"` // City and country, free form.
	Contact     string `json:"contact"`      // Contact phone number.
	Email       string `json:"email"`        // Contact email address.
	IECCode     string `json:"iec_code"`     // Import/export registration code. Exporter only.
	TaxID       string `json:"tax_id"`       // Tax registration code. Exporter only.
}

// ShipmentInfo holds the per-shipment metadata shared by all documents.
type ShipmentInfo struct {
	InvoiceNumber   string      `json:"invoice_number"`    // Required.
	InvoiceDate     Date        `json:"invoice_date"`      // Required.
	PONumber        string      `json:"po_number"`         // Purchase order / contract number.
	PortOfLoading   string      `json:"port_of_loading"`   //
	PortOfDischarge string      `json:"port_of_discharge"` //
	CountryOfOrigin string      `json:"country_of_origin"` //
	Incoterm        Incoterm    `json:"incoterm"`          // One of KnownIncoterms or empty.
	PaymentTerm     PaymentTerm `json:"payment_term"`      // One of KnownPaymentTerms or empty.
	VesselName      string      `json:"vessel_name"`       // Vessel or flight name.
	PackageType     PackageType `json:"package_type"`      //
	NumPackages     string      `json:"num_packages"`      //
	GrossWeight     string      `json:"gross_weight"`      // Kilograms.
	NetWeight       string      `json:"net_weight"`        // Kilograms.
	Currency        Currency    `json:"currency"`          // Defaults to USD.
}

// LineItem is one goods entry of a shipment.
type LineItem struct {
	Description string  `json:"description"`
	HSCode      string  `json:"hs_code"` // Harmonized System code.
	Quantity    Decimal `json:"quantity"`
	Unit        Unit    `json:"unit"`       // Defaults to PCS.
	UnitPrice   Decimal `json:"unit_price"` //
}

// Amount is quantity times unit price, rounded to 2 decimal places.
func (item LineItem) Amount() Decimal {
	return item.Quantity.Mul(item.UnitPrice).Round2()
}

// IsBlank reports whether the item is an untouched form row. Blank rows
// are dropped from the effective record.
func (item LineItem) IsBlank() bool {
	return item.Description == "" && item.Quantity.IsZero() && item.UnitPrice.IsZero()
}

// ShipmentRecord is the full dataset backing document generation.
// Item order is preserved and drives the 1-based numbering in the
// itemized tables.
type ShipmentRecord struct {
	Exporter  Party        `json:"exporter"`
	Consignee Party        `json:"consignee"`
	Shipment  ShipmentInfo `json:"shipment"`
	Items     []LineItem   `json:"items"`
}

// EffectiveItems returns the items with blank rows filtered out, in
// their original order.
func (rec ShipmentRecord) EffectiveItems() []LineItem {
	return lo.Filter(rec.Items, func(item LineItem, _ int) bool {
		return !item.IsBlank()
	})
}

// GrandTotal is the sum of the effective item amounts. It is recomputed
// on every call so it can never disagree with the item list.
func (rec ShipmentRecord) GrandTotal() Decimal {
	total := Decimal{}
	for _, item := range rec.EffectiveItems() {
		total = total.Add(item.Amount())
	}
	return total
}
