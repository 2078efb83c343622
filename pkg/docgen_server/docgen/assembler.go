package docgen

import (
	_ "embed"
	"fmt"
	"strings"
)

//go:embed doc.css
var docStyle string

// PageDivider separates documents in the combined output. Printing
// turns it into a page break.
const PageDivider = `<hr class="page-divider">`

// Assemble joins rendered fragments with the page divider and wraps
// them in the shared document shell with the embedded stylesheet.
func Assemble(fragments []string) string {
	body := strings.Join(fragments, PageDivider)
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en"><head><meta charset="UTF-8">
<title>Export Documents</title>
<style>
%s</style>
</head>
<body>%s</body></html>`, docStyle, body)
}
