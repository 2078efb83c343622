package docgen

import "github.com/samber/lo"

// DocumentID is the stable selection key of a document type.
type DocumentID string

const (
	DocCommercialInvoice     = DocumentID("commercial_invoice")
	DocPackingList           = DocumentID("packing_list")
	DocCertificateOfOrigin   = DocumentID("certificate_origin")
	DocShippingBill          = DocumentID("shipping_bill")
	DocSLI                   = DocumentID("sli")
	DocProformaInvoice       = DocumentID("proforma")
	DocBillOfLading          = DocumentID("bill_lading")
	DocAirWaybill            = DocumentID("air_waybill")
	DocInsuranceCertificate  = DocumentID("insurance_certificate")
	DocInspectionCertificate = DocumentID("inspection_certificate")
	DocPhytosanitary         = DocumentID("phytosanitary")
	DocFumigation            = DocumentID("fumigation")
	DocHealthCertificate     = DocumentID("health_certificate")
	DocBillOfExchange        = DocumentID("bill_exchange")
	DocLetterOfCredit        = DocumentID("letter_credit")
	DocExportLicense         = DocumentID("export_license")
	DocDangerousGoods        = DocumentID("dangerous_goods")
	DocCertificateOfFreeSale = DocumentID("free_sale")
)

// DocumentType describes one entry of the template registry.
type DocumentType struct {
	ID              DocumentID
	Label           string
	Render          RenderFunc
	DefaultSelected bool
}

// Registry is the fixed catalog of available document types. Its order
// defines both the default grouping and the order selected documents
// are concatenated in the combined output.
var Registry = []DocumentType{
	{ID: DocCommercialInvoice, Label: "Commercial Invoice", Render: renderCommercialInvoice, DefaultSelected: true},
	{ID: DocPackingList, Label: "Packing List", Render: renderPackingList, DefaultSelected: true},
	{ID: DocCertificateOfOrigin, Label: "Certificate of Origin", Render: renderCertificateOfOrigin},
	{ID: DocShippingBill, Label: "Shipping Bill", Render: renderShippingBill},
	{ID: DocSLI, Label: "Shipper's Letter of Instruction", Render: renderShippersLetterOfInstruction},
	{ID: DocProformaInvoice, Label: "Proforma Invoice", Render: renderProformaInvoice},
	{ID: DocBillOfLading, Label: "Bill of Lading (B/L)", Render: renderBillOfLading},
	{ID: DocAirWaybill, Label: "Air Waybill (AWB)", Render: renderAirWaybill},
	{ID: DocInsuranceCertificate, Label: "Insurance Certificate", Render: renderInsuranceCertificate},
	{ID: DocInspectionCertificate, Label: "Inspection Certificate", Render: renderInspectionCertificate},
	{ID: DocPhytosanitary, Label: "Phytosanitary Certificate", Render: renderPhytosanitaryCertificate},
	{ID: DocFumigation, Label: "Fumigation Certificate", Render: renderFumigationCertificate},
	{ID: DocHealthCertificate, Label: "Health Certificate", Render: renderHealthCertificate},
	{ID: DocBillOfExchange, Label: "Bill of Exchange / Draft", Render: renderBillOfExchange},
	{ID: DocLetterOfCredit, Label: "Letter of Credit (L/C)", Render: renderLetterOfCredit},
	{ID: DocExportLicense, Label: "Export License", Render: renderExportLicense},
	{ID: DocDangerousGoods, Label: "Dangerous Goods Declaration", Render: renderDangerousGoodsDeclaration},
	{ID: DocCertificateOfFreeSale, Label: "Certificate of Free Sale", Render: renderCertificateOfFreeSale},
}

// DocumentTypeByID looks up a registry entry by its identifier.
func DocumentTypeByID(id DocumentID) (DocumentType, bool) {
	return lo.Find(Registry, func(doc DocumentType) bool {
		return doc.ID == id
	})
}

// KnownDocumentIDs returns all registry identifiers in registry order.
func KnownDocumentIDs() []DocumentID {
	return lo.Map(Registry, func(doc DocumentType, _ int) DocumentID {
		return doc.ID
	})
}

// DefaultSelection returns the identifiers selected by default.
func DefaultSelection() []DocumentID {
	return lo.FilterMap(Registry, func(doc DocumentType, _ int) (DocumentID, bool) {
		return doc.ID, doc.DefaultSelected
	})
}
