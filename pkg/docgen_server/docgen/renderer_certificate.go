package docgen

import (
	"fmt"

	"github.com/exportdocs/exportdocs/pkg/docgen_server/model"
)

func renderCertificateOfOrigin(c RenderContext) string {
	exp, con, ship := c.Record.Exporter, c.Record.Consignee, c.Record.Shipment
	rows := itemRows(c.Items, func(item model.LineItem) []string {
		return []string{item.Description, qtyWithUnit(item), fallbackNA(ship.CountryOfOrigin)}
	})
	return fmt.Sprintf(`
<div class="document-preview">
  <div class="doc-title">Certificate of Origin</div>
  <div class="doc-row">
    <div><span class="doc-label">Certificate No:</span> COO-%s</div>
    <div><span class="doc-label">Date:</span> %s</div>
  </div>
  <div class="doc-section"><div class="doc-section-title">Exporter</div>%s</div>
  <div class="doc-section"><div class="doc-section-title">Consignee</div>%s</div>
  <div class="doc-row">
    <div><span class="doc-label">Invoice No:</span> %s</div>
    <div><span class="doc-label">Port of Discharge:</span> %s</div>
  </div>
  <table>
    <thead><tr><th>#</th><th>Description of Goods</th><th>Quantity</th><th>Country of Origin</th></tr></thead>
    <tbody>%s</tbody>
  </table>
  <div class="doc-footer">
    <div style="margin-top:15px"><strong>Declaration:</strong> We hereby certify that the goods
      described above originated in %s.</div>
    <div class="sigs">
      <div class="signature-line">Exporter's Signature</div>
      <div class="signature-line">Chamber of Commerce Stamp</div>
    </div>
  </div>
</div>`,
		ship.InvoiceNumber, ship.InvoiceDate,
		exporterBlock(exp), consigneeBlock(con),
		ship.InvoiceNumber, fallbackNA(ship.PortOfDischarge),
		rows, fallbackNA(ship.CountryOfOrigin))
}

func renderInsuranceCertificate(c RenderContext) string {
	con, ship := c.Record.Consignee, c.Record.Shipment
	cur := ship.Currency.OrDefault()
	// Insured sum is 110% of the invoice value, a convention of marine
	// cargo insurance, derived locally to this document.
	insured := c.GrandTotal().Mul(model.NewDecimalFromFloat(1.1)).Round2()
	goods := goodsList(c.Items, func(item model.LineItem) string {
		return item.Description
	})
	return fmt.Sprintf(`
<div class="document-preview">
  <div class="doc-title">Certificate of Insurance</div>
  <div class="doc-row">
    <div><span class="doc-label">Certificate No:</span> INS-%s</div>
    <div><span class="doc-label">Date:</span> %s</div>
  </div>
  <div class="doc-section">
    <div class="doc-section-title">Assured / Insured</div>%s
  </div>
  <div class="doc-row">
    <div><span class="doc-label">Invoice No:</span> %s</div>
    <div><span class="doc-label">Vessel / Flight:</span> %s</div>
  </div>
  <div class="doc-row">
    <div><span class="doc-label">From:</span> %s</div>
    <div><span class="doc-label">To:</span> %s</div>
  </div>
  <div class="doc-section"><div class="doc-section-title">Description of Goods</div>%s</div>
  <div class="doc-row">
    <div><span class="doc-label">Sum Insured:</span> %s</div>
    <div><span class="doc-label">Basis:</span> 110%% of Invoice Value</div>
  </div>
  <div class="doc-section">
    <div class="doc-section-title">Coverage</div>
    <div>• All risks of physical loss or damage from external causes</div>
    <div>• War, strikes, riots and civil commotion risks</div>
    <div>• Total loss and general average</div>
  </div>
  <div class="doc-footer">
    <div style="margin-top:15px"><strong>Terms:</strong> Institute Cargo Clauses (A)</div>
    <div class="signature-line">Insurance Co. Authorized Signature</div>
  </div>
</div>`,
		ship.InvoiceNumber, ship.InvoiceDate,
		consigneeBlock(con),
		ship.InvoiceNumber, fallbackNA(ship.VesselName),
		fallbackNA(ship.PortOfLoading), fallbackNA(ship.PortOfDischarge),
		goods, money(cur, insured))
}

func renderInspectionCertificate(c RenderContext) string {
	exp, con, ship := c.Record.Exporter, c.Record.Consignee, c.Record.Shipment
	goods := goodsList(c.Items, func(item model.LineItem) string {
		return fmt.Sprintf("%s of %s", qtyWithUnit(item), item.Description)
	})
	return fmt.Sprintf(`
<div class="document-preview">
  <div class="doc-title">Inspection Certificate</div>
  <div class="doc-row">
    <div><span class="doc-label">Certificate No:</span> IC-%s</div>
    <div><span class="doc-label">Date:</span> %s</div>
  </div>
  <div class="doc-section"><div class="doc-section-title">Exporter</div>%s</div>
  <div class="doc-section"><div class="doc-section-title">Buyer / Consignee</div>%s</div>
  <div class="doc-row">
    <div><span class="doc-label">Invoice No:</span> %s</div>
    <div><span class="doc-label">PO No:</span> %s</div>
  </div>
  <div class="doc-section">
    <div class="doc-section-title">Description of Goods Inspected</div>%s
  </div>
  <div class="doc-section">
    <div class="doc-section-title">Inspection Results</div>
    <div>✓ Quality conforms to purchase order specifications</div>
    <div>✓ Quantity verified and matches shipping documents</div>
    <div>✓ Packaging is suitable for international transport</div>
    <div>✓ Goods are in good condition and fit for shipment</div>
  </div>
  <div class="doc-footer">
    <div style="margin-top:15px"><strong>Declaration:</strong> We hereby certify that the goods
      have been inspected and found to be in accordance with the specifications.</div>
    <div class="sigs">
      <div class="signature-line">Inspector's Signature</div>
      <div class="signature-line">Company Stamp</div>
    </div>
  </div>
</div>`,
		ship.InvoiceNumber, ship.InvoiceDate,
		exporterBlock(exp), consigneeBlock(con),
		ship.InvoiceNumber, fallbackNA(ship.PONumber),
		goods)
}

func renderPhytosanitaryCertificate(c RenderContext) string {
	exp, con, ship := c.Record.Exporter, c.Record.Consignee, c.Record.Shipment
	goods := goodsList(c.Items, func(item model.LineItem) string {
		return fmt.Sprintf("%s of %s", qtyWithUnit(item), item.Description)
	})
	return fmt.Sprintf(`
<div class="document-preview">
  <div class="doc-title">Phytosanitary Certificate</div>
  <div class="doc-subtitle">Plant Protection Organization</div>
  <div class="doc-row">
    <div><span class="doc-label">Certificate No:</span> PC-%s</div>
    <div><span class="doc-label">Date:</span> %s</div>
  </div>
  <div class="doc-section"><div class="doc-section-title">Exporter</div>%s</div>
  <div class="doc-section"><div class="doc-section-title">Consignee</div>%s</div>
  <div class="doc-row">
    <div><span class="doc-label">Port of Entry:</span> %s</div>
    <div><span class="doc-label">Country of Origin:</span> %s</div>
  </div>
  <div class="doc-section"><div class="doc-section-title">Description of Consignment</div>%s</div>
  <div class="doc-section">
    <div class="doc-section-title">Phytosanitary Declaration</div>
    <div>This is to certify that the plants, plant products, or other regulated articles described
      herein have been inspected and/or tested according to appropriate official procedures and are
      considered to be free from quarantine pests and practically free from other injurious pests.</div>
  </div>
  <div class="doc-section">
    <div class="doc-section-title">Treatment</div>
    <div>✓ Inspection conducted on: %s</div>
    <div>✓ No quarantine pests detected</div>
    <div>✓ Meets phytosanitary import requirements</div>
  </div>
  <div class="doc-footer">
    <div class="sigs">
      <div class="signature-line">Plant Protection Officer</div>
      <div class="signature-line">Official Stamp</div>
    </div>
  </div>
</div>`,
		ship.InvoiceNumber, ship.InvoiceDate,
		exporterBlock(exp), consigneeBlock(con),
		fallbackNA(ship.PortOfDischarge), fallbackNA(ship.CountryOfOrigin),
		goods, ship.InvoiceDate)
}

func renderFumigationCertificate(c RenderContext) string {
	exp, con, ship := c.Record.Exporter, c.Record.Consignee, c.Record.Shipment
	goods := goodsList(c.Items, func(item model.LineItem) string {
		return item.Description
	})
	return fmt.Sprintf(`
<div class="document-preview">
  <div class="doc-title">Fumigation Certificate</div>
  <div class="doc-subtitle">Pest Control Treatment Certificate</div>
  <div class="doc-row">
    <div><span class="doc-label">Certificate No:</span> FC-%s</div>
    <div><span class="doc-label">Date:</span> %s</div>
  </div>
  <div class="doc-section"><div class="doc-section-title">Exporter</div>%s</div>
  <div class="doc-section"><div class="doc-section-title">Consignee</div>%s</div>
  <div class="doc-row">
    <div><span class="doc-label">Container No:</span> CONT-%s</div>
    <div><span class="doc-label">No. of Packages:</span> %s</div>
  </div>
  <div class="doc-section"><div class="doc-section-title">Description of Goods</div>%s</div>
  <div class="doc-section">
    <div class="doc-section-title">Fumigation Details</div>
    <div><span class="doc-label">Fumigant Used:</span> Methyl Bromide / Aluminum Phosphide</div>
    <div><span class="doc-label">Dosage:</span> As per ISPM 15 standards</div>
    <div><span class="doc-label">Treatment Duration:</span> 24 hours</div>
    <div><span class="doc-label">Temperature:</span> 25°C</div>
    <div><span class="doc-label">Treatment Date:</span> %s</div>
  </div>
  <div class="doc-footer">
    <div style="margin-top:15px"><strong>Certification:</strong> We hereby certify that the
      above-mentioned consignment and wooden packaging material have been fumigated according to
      ISPM-15 standards and are free from pests.</div>
    <div class="sigs">
      <div class="signature-line">Licensed Fumigation Agency</div>
      <div class="signature-line">License No. &amp; Stamp</div>
    </div>
  </div>
</div>`,
		ship.InvoiceNumber, ship.InvoiceDate,
		exporterBlock(exp), consigneeBlock(con),
		ship.InvoiceNumber, fallbackNA(ship.NumPackages),
		goods, ship.InvoiceDate)
}

func renderHealthCertificate(c RenderContext) string {
	exp, con, ship := c.Record.Exporter, c.Record.Consignee, c.Record.Shipment
	goods := goodsList(c.Items, func(item model.LineItem) string {
		return fmt.Sprintf("%s of %s", qtyWithUnit(item), item.Description)
	})
	return fmt.Sprintf(`
<div class="document-preview">
  <div class="doc-title">Health Certificate</div>
  <div class="doc-subtitle">For Export of Food Products</div>
  <div class="doc-row">
    <div><span class="doc-label">Certificate No:</span> HC-%s</div>
    <div><span class="doc-label">Date:</span> %s</div>
  </div>
  <div class="doc-section">
    <div class="doc-section-title">Exporter / Manufacturer</div>%s
  </div>
  <div class="doc-section">
    <div class="doc-section-title">Importer / Consignee</div>%s
  </div>
  <div class="doc-section"><div class="doc-section-title">Description of Products</div>%s</div>
  <div class="doc-section">
    <div class="doc-section-title">Health Declaration</div>
    <div>✓ The products have been prepared under hygienic conditions</div>
    <div>✓ Raw materials used are of good quality and fit for human consumption</div>
    <div>✓ Products comply with food safety standards and regulations</div>
    <div>✓ No harmful substances or contaminants detected</div>
    <div>✓ Storage and transportation meet sanitary requirements</div>
  </div>
  <div class="doc-footer">
    <div style="margin-top:15px"><strong>Validity:</strong> This certificate is valid for
      6 months from date of issue.</div>
    <div class="sigs">
      <div class="signature-line">Health Authority Officer</div>
      <div class="signature-line">Official Seal</div>
    </div>
  </div>
</div>`,
		ship.InvoiceNumber, ship.InvoiceDate,
		exporterBlock(exp), consigneeBlock(con),
		goods)
}

func renderExportLicense(c RenderContext) string {
	exp, con, ship := c.Record.Exporter, c.Record.Consignee, c.Record.Shipment
	goods := goodsList(c.Items, func(item model.LineItem) string {
		return fmt.Sprintf("%s of %s (HS Code: %s)", qtyWithUnit(item), item.Description, item.HSCode)
	})
	return fmt.Sprintf(`
<div class="document-preview">
  <div class="doc-title">Export License</div>
  <div class="doc-row">
    <div><span class="doc-label">License No:</span> EL-%s</div>
    <div><span class="doc-label">Date of Issue:</span> %s</div>
  </div>
  <div class="doc-section">
    <div class="doc-section-title">Exporter Details</div>%s
  </div>
  <div class="doc-section">
    <div class="doc-section-title">Consignee Details</div>%s
  </div>
  <div class="doc-row">
    <div><span class="doc-label">Country of Destination:</span> %s</div>
    <div><span class="doc-label">Port of Export:</span> %s</div>
  </div>
  <div class="doc-section"><div class="doc-section-title">Description of Goods</div>%s</div>
  <div class="doc-section">
    <div class="doc-section-title">License Conditions</div>
    <div>✓ This license is valid for single shipment only</div>
    <div>✓ Shipment must be completed within 6 months</div>
    <div>✓ Goods must be exported as per approved specifications</div>
    <div>✓ Any amendments require prior approval</div>
  </div>
  <div class="doc-footer">
    <div><strong>Validity:</strong> 6 months from date of issue</div>
    <div style="margin-top:10px"><strong>Note:</strong> This license is issued subject to the
      provisions of the Foreign Trade Policy.</div>
    <div class="signature-line">Licensing Authority Signature &amp; Seal</div>
  </div>
</div>`,
		ship.InvoiceNumber, ship.InvoiceDate,
		exporterBlock(exp), consigneeBlock(con),
		fallbackNA(con.CityCountry), fallbackNA(ship.PortOfLoading),
		goods)
}

func renderCertificateOfFreeSale(c RenderContext) string {
	exp, con, ship := c.Record.Exporter, c.Record.Consignee, c.Record.Shipment
	goods := goodsList(c.Items, func(item model.LineItem) string {
		return item.Description
	})
	return fmt.Sprintf(`
<div class="document-preview">
  <div class="doc-title">Certificate of Free Sale</div>
  <div class="doc-row">
    <div><span class="doc-label">Certificate No:</span> CFS-%s</div>
    <div><span class="doc-label">Date:</span> %s</div>
  </div>
  <div class="doc-section">
    <div class="doc-section-title">Manufacturer / Exporter</div>%s
  </div>
  <div class="doc-section">
    <div class="doc-section-title">Importer / Buyer</div>%s
  </div>
  <div class="doc-section"><div class="doc-section-title">Product Details</div>%s</div>
  <div class="doc-section">
    <div class="doc-section-title">Certification</div>
    <div style="line-height:1.8">
      This is to certify that the products listed above are manufactured by
      <strong>%s</strong> and are freely sold and distributed in
      %s without any restrictions. The products comply with all
      applicable regulations and standards for sale and distribution in the country of manufacture.
    </div>
  </div>
  <div class="doc-section">
    <div class="doc-section-title">Regulatory Compliance</div>
    <div>✓ Products meet national quality standards</div>
    <div>✓ Manufacturing facility is licensed and registered</div>
    <div>✓ Products are in compliance with health and safety regulations</div>
    <div>✓ No restrictions on sale or distribution in country of origin</div>
  </div>
  <div class="doc-footer">
    <div style="margin-top:15px"><strong>Validity:</strong> 12 months from date of issue</div>
    <div class="sigs">
      <div class="signature-line">Regulatory Authority Signature</div>
      <div class="signature-line">Official Seal</div>
    </div>
  </div>
</div>`,
		ship.InvoiceNumber, ship.InvoiceDate,
		exporterBlock(exp), consigneeBlock(con),
		goods, exp.Name, fallbackNA(ship.CountryOfOrigin))
}
