package docgen

import (
	"fmt"

	"github.com/exportdocs/exportdocs/pkg/docgen_server/model"
)

func renderCommercialInvoice(c RenderContext) string {
	exp, con, ship := c.Record.Exporter, c.Record.Consignee, c.Record.Shipment
	cur := ship.Currency.OrDefault()
	total := c.GrandTotal()
	rows := itemRows(c.Items, func(item model.LineItem) []string {
		return []string{item.Description, item.HSCode, qtyWithUnit(item), item.UnitPrice.String(), item.Amount().String()}
	})
	return fmt.Sprintf(`
<div class="document-preview">
  <div class="doc-title">Commercial Invoice</div>
  <div class="doc-section"><div class="doc-section-title">Exporter / Shipper</div>%s</div>
  <div class="doc-section"><div class="doc-section-title">Consignee / Buyer</div>%s</div>
  <div class="doc-row">
    <div><span class="doc-label">Invoice No:</span> %s</div>
    <div><span class="doc-label">Date:</span> %s</div>
  </div>
  <div class="doc-row">
    <div><span class="doc-label">PO / Contract No:</span> %s</div>
    <div><span class="doc-label">Incoterms:</span> %s</div>
  </div>
  <div class="doc-row">
    <div><span class="doc-label">Port of Loading:</span> %s</div>
    <div><span class="doc-label">Port of Discharge:</span> %s</div>
  </div>
  <div class="doc-row">
    <div><span class="doc-label">Country of Origin:</span> %s</div>
    <div><span class="doc-label">Payment Terms:</span> %s</div>
  </div>
  <table>
    <thead><tr><th>#</th><th>Description of Goods</th><th>HS Code</th>
      <th>Quantity</th><th>Unit Price</th><th>Amount (%s)</th></tr></thead>
    <tbody>%s</tbody>
    <tfoot><tr><th colspan="5" style="text-align:right">TOTAL:</th>
      <th>%s</th></tr></tfoot>
  </table>
  <div class="doc-footer">
    <div><strong>Total in Words:</strong> %s</div>
    <div style="margin-top:15px"><strong>Declaration:</strong> We declare that this invoice
      shows the actual price of the goods described and that all particulars are true and correct.</div>
    <div class="signature-line">Authorized Signature</div>
  </div>
</div>`,
		exporterBlock(exp), consigneeBlock(con),
		ship.InvoiceNumber, ship.InvoiceDate,
		fallbackNA(ship.PONumber), fallbackNA(ship.Incoterm),
		fallbackNA(ship.PortOfLoading), fallbackNA(ship.PortOfDischarge),
		fallbackNA(ship.CountryOfOrigin), fallbackNA(ship.PaymentTerm),
		cur, rows, money(cur, total), totalInWords(cur, total))
}

func renderPackingList(c RenderContext) string {
	exp, con, ship := c.Record.Exporter, c.Record.Consignee, c.Record.Shipment
	rows := itemRows(c.Items, func(item model.LineItem) []string {
		return []string{item.Description, qtyWithUnit(item), fallbackNA(ship.PackageType), item.HSCode}
	})
	return fmt.Sprintf(`
<div class="document-preview">
  <div class="doc-title">Packing List</div>
  <div class="doc-section"><div class="doc-section-title">Exporter / Shipper</div>%s</div>
  <div class="doc-section"><div class="doc-section-title">Consignee</div>%s</div>
  <div class="doc-row">
    <div><span class="doc-label">Invoice No:</span> %s</div>
    <div><span class="doc-label">Date:</span> %s</div>
  </div>
  <div class="doc-row">
    <div><span class="doc-label">Vessel / Flight:</span> %s</div>
    <div><span class="doc-label">No. of Packages:</span> %s</div>
  </div>
  <div class="doc-row">
    <div><span class="doc-label">Gross Weight:</span> %s KG</div>
    <div><span class="doc-label">Net Weight:</span> %s KG</div>
  </div>
  <table>
    <thead><tr><th>#</th><th>Description</th><th>Quantity</th><th>Packing Type</th><th>HS Code</th></tr></thead>
    <tbody>%s</tbody>
  </table>
  <div class="doc-footer">
    <div><strong>Marks &amp; Numbers:</strong> %s / %s</div>
    <div class="signature-line">Authorized Signature</div>
  </div>
</div>`,
		exporterBlock(exp), consigneeBlock(con),
		ship.InvoiceNumber, ship.InvoiceDate,
		fallbackNA(ship.VesselName), fallbackNA(ship.NumPackages),
		fallbackNA(ship.GrossWeight), fallbackNA(ship.NetWeight),
		rows, con.Name, fallbackNA(ship.PortOfDischarge))
}

func renderProformaInvoice(c RenderContext) string {
	exp, con, ship := c.Record.Exporter, c.Record.Consignee, c.Record.Shipment
	cur := ship.Currency.OrDefault()
	total := c.GrandTotal()
	rows := itemRows(c.Items, func(item model.LineItem) []string {
		return []string{item.Description, qtyWithUnit(item), item.UnitPrice.String(), item.Amount().String()}
	})
	return fmt.Sprintf(`
<div class="document-preview">
  <div class="doc-title">Proforma Invoice</div>
  <div class="doc-subtitle">(For Reference Only — Not a Tax Invoice)</div>
  <div class="doc-section"><div class="doc-section-title">Seller</div>%s</div>
  <div class="doc-section"><div class="doc-section-title">Buyer</div>%s</div>
  <div class="doc-row">
    <div><span class="doc-label">Proforma Invoice No:</span> PI-%s</div>
    <div><span class="doc-label">Date:</span> %s</div>
  </div>
  <div class="doc-row">
    <div><span class="doc-label">Incoterms:</span> %s</div>
    <div><span class="doc-label">Payment Terms:</span> %s</div>
  </div>
  <table>
    <thead><tr><th>#</th><th>Description</th><th>Quantity</th>
      <th>Unit Price (%s)</th><th>Amount (%s)</th></tr></thead>
    <tbody>%s</tbody>
    <tfoot><tr><th colspan="4" style="text-align:right">TOTAL:</th>
      <th>%s</th></tr></tfoot>
  </table>
  <div class="doc-footer">
    <div><strong>Total in Words:</strong> %s</div>
    <div style="margin-top:15px"><strong>Validity:</strong> This proforma invoice is valid
      for 30 days from the date of issue.</div>
    <div style="margin-top:10px"><strong>Note:</strong> This is a preliminary invoice for
      quotation purposes only. Final commercial invoice will be issued upon shipment.</div>
    <div class="signature-line">Authorized Signature</div>
  </div>
</div>`,
		exporterBlock(exp), consigneeBlock(con),
		ship.InvoiceNumber, ship.InvoiceDate,
		fallbackNA(ship.Incoterm), fallbackNA(ship.PaymentTerm),
		cur, cur, rows, money(cur, total), totalInWords(cur, total))
}
