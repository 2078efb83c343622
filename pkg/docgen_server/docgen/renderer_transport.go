package docgen

import (
	"fmt"

	"github.com/exportdocs/exportdocs/pkg/docgen_server/model"
)

func renderShippingBill(c RenderContext) string {
	exp, con, ship := c.Record.Exporter, c.Record.Consignee, c.Record.Shipment
	cur := ship.Currency.OrDefault()
	total := c.GrandTotal()
	rows := itemRows(c.Items, func(item model.LineItem) []string {
		return []string{item.Description, item.HSCode, qtyWithUnit(item), item.Amount().String()}
	})
	return fmt.Sprintf(`
<div class="document-preview">
  <div class="doc-title">Shipping Bill</div>
  <div class="doc-row">
    <div><span class="doc-label">Shipping Bill No:</span> SB-%s</div>
    <div><span class="doc-label">Date:</span> %s</div>
  </div>
  <div class="doc-section">
    <div class="doc-section-title">Exporter Details</div>%s
  </div>
  <div class="doc-row">
    <div><span class="doc-label">Port of Loading:</span> %s</div>
    <div><span class="doc-label">Port of Discharge:</span> %s</div>
  </div>
  <div class="doc-row">
    <div><span class="doc-label">Country of Destination:</span> %s</div>
    <div><span class="doc-label">Invoice Value:</span> %s</div>
  </div>
  <table>
    <thead><tr><th>#</th><th>Description</th><th>HS Code</th>
      <th>Quantity</th><th>FOB Value (%s)</th></tr></thead>
    <tbody>%s</tbody>
  </table>
  <div class="doc-footer">
    <div><strong>Total FOB Value:</strong> %s</div>
    <div><strong>Total in Words:</strong> %s</div>
    <div class="signature-line">Customs Authorized Officer</div>
  </div>
</div>`,
		ship.InvoiceNumber, ship.InvoiceDate,
		exporterBlock(exp),
		fallbackNA(ship.PortOfLoading), fallbackNA(ship.PortOfDischarge),
		fallbackNA(con.CityCountry), money(cur, total),
		cur, rows, money(cur, total), totalInWords(cur, total))
}

func renderShippersLetterOfInstruction(c RenderContext) string {
	exp, con, ship := c.Record.Exporter, c.Record.Consignee, c.Record.Shipment
	goods := goodsList(c.Items, func(item model.LineItem) string {
		return fmt.Sprintf("%s of %s", qtyWithUnit(item), item.Description)
	})
	return fmt.Sprintf(`
<div class="document-preview">
  <div class="doc-title">Shipper's Letter of Instruction (SLI)</div>
  <div class="doc-row">
    <div><span class="doc-label">Reference No:</span> SLI-%s</div>
    <div><span class="doc-label">Date:</span> %s</div>
  </div>
  <div class="doc-section">
    <div class="doc-section-title">To: Freight Forwarder / Carrier</div>
    <div>Please arrange shipment as per the following instructions:</div>
  </div>
  <div class="doc-section"><div class="doc-section-title">Shipper</div>%s</div>
  <div class="doc-section"><div class="doc-section-title">Consignee</div>%s</div>
  <div class="doc-row">
    <div><span class="doc-label">Port of Loading:</span> %s</div>
    <div><span class="doc-label">Port of Discharge:</span> %s</div>
  </div>
  <div class="doc-row">
    <div><span class="doc-label">Vessel / Flight:</span> %s</div>
    <div><span class="doc-label">No. of Packages:</span> %s</div>
  </div>
  <div class="doc-row">
    <div><span class="doc-label">Gross Weight:</span> %s KG</div>
    <div><span class="doc-label">Incoterms:</span> %s</div>
  </div>
  <div class="doc-section"><div class="doc-section-title">Description of Goods</div>%s</div>
  <div class="doc-footer">
    <div style="margin-top:15px"><strong>Special Instructions:</strong> Handle with care.
      Notify consignee upon arrival.</div>
    <div class="signature-line">Shipper's Signature</div>
  </div>
</div>`,
		ship.InvoiceNumber, ship.InvoiceDate,
		exporterBlock(exp), consigneeBlock(con),
		fallbackNA(ship.PortOfLoading), fallbackNA(ship.PortOfDischarge),
		fallbackNA(ship.VesselName), fallbackNA(ship.NumPackages),
		fallbackNA(ship.GrossWeight), fallbackNA(ship.Incoterm),
		goods)
}

func renderBillOfLading(c RenderContext) string {
	exp, con, ship := c.Record.Exporter, c.Record.Consignee, c.Record.Shipment
	goods := goodsList(c.Items, func(item model.LineItem) string {
		return fmt.Sprintf("%s — %s", qtyWithUnit(item), item.Description)
	})
	return fmt.Sprintf(`
<div class="document-preview">
  <div class="doc-title">Bill of Lading (B/L)</div>
  <div class="doc-subtitle">Non-Negotiable Copy</div>
  <div class="doc-row">
    <div><span class="doc-label">B/L No:</span> BL-%s</div>
    <div><span class="doc-label">Date:</span> %s</div>
  </div>
  <div class="doc-section"><div class="doc-section-title">Shipper</div>%s</div>
  <div class="doc-section"><div class="doc-section-title">Consignee</div>%s</div>
  <div class="doc-row">
    <div><span class="doc-label">Vessel:</span> %s</div>
    <div><span class="doc-label">Port of Loading:</span> %s</div>
  </div>
  <div class="doc-row">
    <div><span class="doc-label">Port of Discharge:</span> %s</div>
    <div><span class="doc-label">No. of Packages:</span> %s</div>
  </div>
  <div class="doc-row">
    <div><span class="doc-label">Gross Weight:</span> %s KG</div>
    <div><span class="doc-label">Net Weight:</span> %s KG</div>
  </div>
  <div class="doc-section"><div class="doc-section-title">Description of Goods</div>%s</div>
  <div class="doc-footer">
    <div><strong>Freight Terms:</strong> %s</div>
    <div><strong>Container Type:</strong> %s</div>
    <div class="signature-line">Carrier's Signature &amp; Stamp</div>
  </div>
</div>`,
		ship.InvoiceNumber, ship.InvoiceDate,
		exporterBlock(exp), consigneeBlock(con),
		fallbackNA(ship.VesselName), fallbackNA(ship.PortOfLoading),
		fallbackNA(ship.PortOfDischarge), fallbackNA(ship.NumPackages),
		fallbackNA(ship.GrossWeight), fallbackNA(ship.NetWeight),
		goods,
		fallbackNA(ship.Incoterm), fallbackNA(ship.PackageType))
}

func renderAirWaybill(c RenderContext) string {
	exp, con, ship := c.Record.Exporter, c.Record.Consignee, c.Record.Shipment
	goods := goodsList(c.Items, func(item model.LineItem) string {
		return fmt.Sprintf("%s — %s", qtyWithUnit(item), item.Description)
	})
	awbNo := c.AWBNumber()
	return fmt.Sprintf(`
<div class="document-preview">
  <div class="doc-title">Air Waybill (AWB)</div>
  <div class="doc-subtitle">Non-Negotiable</div>
  <div class="doc-row">
    <div><span class="doc-label">AWB No:</span> %d</div>
    <div><span class="doc-label">Date:</span> %s</div>
  </div>
  <div class="doc-section"><div class="doc-section-title">Shipper / Consignor</div>%s</div>
  <div class="doc-section"><div class="doc-section-title">Consignee</div>%s</div>
  <div class="doc-row">
    <div><span class="doc-label">Airport of Departure:</span> %s</div>
    <div><span class="doc-label">Airport of Destination:</span> %s</div>
  </div>
  <div class="doc-row">
    <div><span class="doc-label">Flight:</span> %s</div>
    <div><span class="doc-label">No. of Pieces:</span> %s</div>
  </div>
  <div class="doc-row">
    <div><span class="doc-label">Gross Weight:</span> %s KG</div>
    <div><span class="doc-label">Chargeable Weight:</span> %s KG</div>
  </div>
  <div class="doc-section">
    <div class="doc-section-title">Nature and Quantity of Goods</div>%s
  </div>
  <div class="doc-footer">
    <div style="margin-top:15px"><strong>Handling Information:</strong> Handle with care.</div>
    <div class="signature-line">Airline Agent Signature</div>
  </div>
</div>`,
		awbNo, ship.InvoiceDate,
		exporterBlock(exp), consigneeBlock(con),
		fallbackNA(ship.PortOfLoading), fallbackNA(ship.PortOfDischarge),
		fallbackNA(ship.VesselName), fallbackNA(ship.NumPackages),
		fallbackNA(ship.GrossWeight), fallbackNA(ship.GrossWeight),
		goods)
}

func renderDangerousGoodsDeclaration(c RenderContext) string {
	exp, con, ship := c.Record.Exporter, c.Record.Consignee, c.Record.Shipment
	var rows string
	for _, item := range c.Items {
		rows += fmt.Sprintf("<tr><td>UN####</td><td>%s</td><td>-</td><td>-</td><td>%s</td></tr>",
			item.Description, qtyWithUnit(item))
	}
	return fmt.Sprintf(`
<div class="document-preview">
  <div class="doc-title">Dangerous Goods Declaration</div>
  <div class="doc-subtitle">IMDG / IATA Dangerous Goods Transport Document</div>
  <div class="doc-row">
    <div><span class="doc-label">DGD No:</span> DGD-%s</div>
    <div><span class="doc-label">Date:</span> %s</div>
  </div>
  <div class="doc-section"><div class="doc-section-title">Shipper</div>%s</div>
  <div class="doc-section"><div class="doc-section-title">Consignee</div>%s</div>
  <div class="doc-row">
    <div><span class="doc-label">Vessel / Flight:</span> %s</div>
    <div><span class="doc-label">Port of Loading:</span> %s</div>
  </div>
  <table>
    <thead><tr><th>UN No.</th><th>Proper Shipping Name</th><th>Class</th>
      <th>Packing Group</th><th>Quantity</th></tr></thead>
    <tbody>%s</tbody>
  </table>
  <div class="doc-section">
    <div class="doc-section-title">Additional Handling Information</div>
    <div>• Package type: %s</div>
    <div>• Emergency response: Contact shipper immediately</div>
    <div>• Special precautions: Handle with care</div>
  </div>
  <div class="doc-footer">
    <div style="margin-top:15px"><strong>Shipper's Declaration:</strong> I hereby declare that
      the contents of this consignment are fully and accurately described above and are classified,
      packaged, marked and labeled, and are in proper condition for transport according to applicable
      regulations.</div>
    <div class="signature-line">Shipper's Signature &amp; Date</div>
  </div>
</div>`,
		ship.InvoiceNumber, ship.InvoiceDate,
		exporterBlock(exp), consigneeBlock(con),
		fallbackNA(ship.VesselName), fallbackNA(ship.PortOfLoading),
		rows, fallbackNA(ship.PackageType))
}
