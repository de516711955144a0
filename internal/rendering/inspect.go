package rendering

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// SectionLabels extracts the section headings from rendered layout HTML, in
// document order. Used to verify that every layout surfaces the same content
// for the same document.
func SectionLabels(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &TemplateError{Message: "failed to parse rendered HTML", Cause: err}
	}

	var labels []string
	doc.Find("section[data-section] h2").Each(func(_ int, sel *goquery.Selection) {
		labels = append(labels, strings.TrimSpace(sel.Text()))
	})
	return labels, nil
}

// SectionNames extracts the data-section identifiers from rendered HTML, in
// document order.
func SectionNames(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &TemplateError{Message: "failed to parse rendered HTML", Cause: err}
	}

	var names []string
	doc.Find("section[data-section]").Each(func(_ int, sel *goquery.Selection) {
		if name, ok := sel.Attr("data-section"); ok {
			names = append(names, name)
		}
	})
	return names, nil
}
