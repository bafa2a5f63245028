// ABOUTME: HTML utilities for rendering entry content as plain text
// ABOUTME: Used to derive entry summaries from HTML bodies

package html

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StripHTML renders an HTML fragment as plain text: tags removed, entities
// decoded, script and style content dropped, whitespace collapsed.
func StripHTML(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		// Unparseable input is returned as-is rather than lost
		return strings.TrimSpace(html)
	}

	doc.Find("script, style").Remove()

	return strings.Join(strings.Fields(doc.Text()), " ")
}
