package docgen

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/exportdocs/exportdocs/pkg/docgen_server/model"
)

// AWBNumberFunc supplies the 8-digit tracking number the air waybill
// renderer stamps on each generated document. Production uses a random
// source; tests inject a fixed value.
type AWBNumberFunc func() int

func defaultAWBNumber() int {
	return 10000000 + rand.Intn(90000000)
}

// RenderContext carries everything a renderer needs for one invocation.
// Items holds the effective (blank-filtered) line items of the record.
type RenderContext struct {
	Record    model.ShipmentRecord
	Items     []model.LineItem
	AWBNumber AWBNumberFunc
}

// GrandTotal sums the effective item amounts.
func (c RenderContext) GrandTotal() model.Decimal {
	total := model.Decimal{}
	for _, item := range c.Items {
		total = total.Add(item.Amount())
	}
	return total
}

// RenderFunc is the contract shared by all document renderers: a pure
// mapping from a shipment record to one self-contained HTML fragment.
// Missing optional data renders as "N/A", never as an error.
type RenderFunc func(c RenderContext) string

// fallbackNA substitutes the explicit "N/A" marker for blank optional
// fields so generated documents never show empty slots.
func fallbackNA[T ~string](v T) string {
	if v == "" {
		return "N/A"
	}
	return string(v)
}

func partyLines(name string, fields ...[2]string) string {
	lines := []string{fmt.Sprintf("<div><strong>%s</strong></div>", name)}
	for _, field := range fields {
		if field[1] == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("<div>%s%s</div>", field[0], field[1]))
	}
	return strings.Join(lines, "\n")
}

// exporterBlock formats the exporter address block. Blank fields are
// omitted from the block, not shown as "N/A".
func exporterBlock(p model.Party) string {
	return partyLines(p.Name,
		[2]string{"", p.Address},
		[2]string{"", p.CityCountry},
		[2]string{"Tel: ", p.Contact},
		[2]string{"Email: ", p.Email},
		[2]string{"IEC: ", p.IECCode},
		[2]string{"GST: ", p.TaxID},
	)
}

func consigneeBlock(p model.Party) string {
	return partyLines(p.Name,
		[2]string{"", p.Address},
		[2]string{"", p.CityCountry},
		[2]string{"Tel: ", p.Contact},
		[2]string{"Email: ", p.Email},
	)
}

func money(cur model.Currency, d model.Decimal) string {
	return fmt.Sprintf("%s %s", cur, d.Fixed2())
}

func totalInWords(cur model.Currency, d model.Decimal) string {
	return fmt.Sprintf("%s %s Only", AmountInWords(d.Float64()), cur)
}

func qtyWithUnit(item model.LineItem) string {
	return fmt.Sprintf("%s %s", item.Quantity, item.Unit.OrDefault())
}

// itemRows renders one <tr> per line item with 1-based numbering. The
// cells callback returns the columns after the leading number cell.
func itemRows(items []model.LineItem, cells func(item model.LineItem) []string) string {
	var sb strings.Builder
	for i, item := range items {
		sb.WriteString(fmt.Sprintf("<tr><td>%d</td>", i+1))
		for _, cell := range cells(item) {
			sb.WriteString(fmt.Sprintf("<td>%s</td>", cell))
		}
		sb.WriteString("</tr>")
	}
	return sb.String()
}

// goodsList renders the bullet-point goods summaries used by the
// non-tabular documents.
func goodsList(items []model.LineItem, line func(item model.LineItem) string) string {
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString(fmt.Sprintf("<div>• %s</div>", line(item)))
	}
	return sb.String()
}
