package docgen

import (
	"fmt"

	"github.com/exportdocs/exportdocs/pkg/docgen_server/model"
)

func renderBillOfExchange(c RenderContext) string {
	exp, con, ship := c.Record.Exporter, c.Record.Consignee, c.Record.Shipment
	cur := ship.Currency.OrDefault()
	total := c.GrandTotal()
	return fmt.Sprintf(`
<div class="document-preview">
  <div class="doc-title">Bill of Exchange / Draft</div>
  <div class="doc-row">
    <div><span class="doc-label">Draft No:</span> BE-%s</div>
    <div><span class="doc-label">Date:</span> %s</div>
  </div>
  <div class="doc-section" style="padding:20px">
    <div style="font-size:18px;margin-bottom:12px">
      <strong>Amount:</strong> %s</div>
    <div style="font-size:16px">
      <strong>In Words:</strong> %s</div>
  </div>
  <div class="doc-section">
    <div>At <strong>%s</strong> of this FIRST Bill of Exchange
      (Second of the same tenor and date being unpaid)</div>
    <div style="margin-top:12px">Pay to the order of <strong>%s</strong></div>
    <div style="margin-top:12px">The sum of <strong>%s</strong></div>
  </div>
  <div class="doc-section">
    <div class="doc-section-title">To (Drawee)</div>%s
  </div>
  <div class="doc-section">
    <div class="doc-section-title">For</div>
    <div>Value received as per Invoice No. %s</div>
    <div>dated %s</div>
  </div>
  <div class="doc-footer">
    <div style="text-align:right;margin-top:30px">
      <div><strong>%s</strong></div>
      <div class="signature-line">Drawer's Signature</div>
    </div>
  </div>
</div>`,
		ship.InvoiceNumber, ship.InvoiceDate,
		money(cur, total), totalInWords(cur, total),
		fallbackNA(ship.PaymentTerm), exp.Name, money(cur, total),
		consigneeBlock(con),
		ship.InvoiceNumber, ship.InvoiceDate,
		exp.Name)
}

func renderLetterOfCredit(c RenderContext) string {
	exp, con, ship := c.Record.Exporter, c.Record.Consignee, c.Record.Shipment
	cur := ship.Currency.OrDefault()
	total := c.GrandTotal()
	goods := goodsList(c.Items, func(item model.LineItem) string {
		return fmt.Sprintf("%s of %s", qtyWithUnit(item), item.Description)
	})
	return fmt.Sprintf(`
<div class="document-preview">
  <div class="doc-title">Letter of Credit (L/C)</div>
  <div class="doc-subtitle">Irrevocable Documentary Credit</div>
  <div class="doc-row">
    <div><span class="doc-label">L/C No:</span> LC-%s</div>
    <div><span class="doc-label">Date of Issue:</span> %s</div>
  </div>
  <div class="doc-section">
    <div class="doc-section-title">Applicant (Buyer)</div>%s
  </div>
  <div class="doc-section">
    <div class="doc-section-title">Beneficiary (Seller)</div>%s
  </div>
  <div class="doc-row">
    <div><span class="doc-label">Amount:</span> %s</div>
    <div><span class="doc-label">Expiry Date:</span> 90 days from issue</div>
  </div>
  <div class="doc-row">
    <div><span class="doc-label">Amount in Words:</span> %s</div>
  </div>
  <div class="doc-section"><div class="doc-section-title">Description of Goods</div>%s</div>
  <div class="doc-section">
    <div class="doc-section-title">Shipment Details</div>
    <div><span class="doc-label">From:</span> %s</div>
    <div><span class="doc-label">To:</span> %s</div>
    <div><span class="doc-label">Incoterms:</span> %s</div>
    <div><span class="doc-label">Latest Shipment:</span> 60 days from L/C date</div>
  </div>
  <div class="doc-section">
    <div class="doc-section-title">Documents Required</div>
    <div>• Commercial Invoice (3 originals)</div>
    <div>• Packing List (2 copies)</div>
    <div>• Bill of Lading (full set)</div>
    <div>• Certificate of Origin</div>
    <div>• Insurance Certificate</div>
  </div>
  <div class="doc-footer">
    <div style="margin-top:15px"><strong>Special Conditions:</strong> This credit is subject to
      Uniform Customs and Practice for Documentary Credits (UCP 600).</div>
    <div class="signature-line">Issuing Bank Authorized Signature</div>
  </div>
</div>`,
		ship.InvoiceNumber, ship.InvoiceDate,
		consigneeBlock(con), exporterBlock(exp),
		money(cur, total), totalInWords(cur, total),
		goods,
		fallbackNA(ship.PortOfLoading), fallbackNA(ship.PortOfDischarge),
		fallbackNA(ship.Incoterm))
}
