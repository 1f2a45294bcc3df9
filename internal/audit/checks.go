package audit

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html/atom"

	"github.com/Darin2/monitor-public/jsonld"
)

const (
	minH1Length       = 10
	minHeadings       = 3
	minDescription    = 120
	maxDescription    = 160
	minLinks          = 3
	minAltLength      = 10
	maxH1Shown        = 60
	maxGenericReports = 3
)

var (
	authorText = regexp.MustCompile(`(?i)\b(by|author|written by)\b`)

	genericLinkTexts = map[string]bool{
		"click here": true,
		"here":       true,
		"learn more": true,
		"read more":  true,
		"more":       true,
	}
)

// Audit runs every check against the HTML content of target.
func Audit(target, content string) PageReport {
	report := newPageReport(target)
	report.Bytes = len(content)

	p, err := parsePage(content)
	if err != nil {
		report.Error = err.Error()
		return report
	}

	docs := structuredData(p)

	checkSchema(&report, p)
	checkHeadings(&report, p)
	checkMetaDescription(&report, p)
	checkAuthor(&report, p, docs)
	checkDates(&report, p, docs)
	checkListsAndTables(&report, p)
	checkLinks(&report, p)
	checkImages(&report, p)
	checkSemanticHTML(&report, p)

	report.score()
	return report
}

// structuredData returns the entities of every JSON-LD block that parses.
func structuredData(p *page) []jsonld.Document {
	var docs []jsonld.Document
	for _, body := range p.ldScripts {
		parsed, err := jsonld.Parse(body)
		if err != nil {
			continue
		}
		docs = append(docs, parsed...)
	}
	return docs
}

func checkSchema(r *PageReport, p *page) {
	if len(p.ldScripts) == 0 {
		r.fail("No JSON-LD schema found")
		return
	}

	var types []string
	for _, body := range p.ldScripts {
		docs, err := jsonld.Parse(body)
		if err != nil {
			r.fail("Invalid JSON-LD syntax: %v", err)
			return
		}
		for _, doc := range docs {
			types = append(types, typeNames(doc)...)
		}
	}

	if len(types) == 0 {
		r.fail("JSON-LD found but no valid @type detected")
		return
	}

	r.pass("JSON-LD schema found (%s)", strings.Join(types, ", "))
	if slices.Contains(types, "FAQPage") {
		r.pass("FAQ schema detected (high AIEO value)")
	}
	if slices.Contains(types, "HowTo") {
		r.pass("HowTo schema detected (high AIEO value)")
	}
}

// typeNames flattens @type, which may hold a single name or a list of names.
func typeNames(doc jsonld.Document) []string {
	switch t := doc["@type"].(type) {
	case string:
		return []string{t}
	case []any:
		names := make([]string, 0, len(t))
		for _, v := range t {
			if s, ok := v.(string); ok {
				names = append(names, s)
			}
		}
		return names
	default:
		return nil
	}
}

func checkHeadings(r *PageReport, p *page) {
	var h1s []heading
	for _, h := range p.headings {
		if h.level == 1 {
			h1s = append(h1s, h)
		}
	}

	switch len(h1s) {
	case 0:
		r.fail("No H1 heading found")
	case 1:
		text := h1s[0].text
		if n := utf8.RuneCountInString(text); n < minH1Length {
			r.warn("H1 is very short (%d chars): '%s'", n, text)
		} else {
			r.pass("Single H1 found: %q", truncate(text, maxH1Shown))
		}
	default:
		r.fail("Multiple H1 headings found (%d). Should have exactly one.", len(h1s))
	}

	if len(p.headings) < minHeadings {
		r.warn("Only %d headings found. Consider adding more structure.", len(p.headings))
	}

	prev := 0
	for _, h := range p.headings {
		if prev != 0 && h.level-prev > 1 {
			r.fail("Heading hierarchy skipped from H%d to H%d", prev, h.level)
			return
		}
		prev = h.level
	}

	if len(p.headings) >= minHeadings {
		r.pass("Heading hierarchy is correct (no skipped levels)")
	}
}

func checkMetaDescription(r *PageReport, p *page) {
	desc := strings.TrimSpace(p.meta["description"])
	if desc == "" {
		r.fail("No meta description found")
		return
	}

	n := utf8.RuneCountInString(desc)
	switch {
	case n < minDescription:
		r.warn("Meta description is short (%d chars, ideal: 150-160)", n)
	case n > maxDescription:
		r.warn("Meta description is long (%d chars, ideal: 150-160)", n)
	default:
		r.pass("Meta description length good (%d chars)", n)
	}
}

func checkAuthor(r *PageReport, p *page, docs []jsonld.Document) {
	found := p.meta["author"] != "" || anyHasKey(docs, "author")
	for _, text := range p.texts {
		if found {
			break
		}
		found = authorText.MatchString(text)
	}

	if found {
		r.pass("Author information present")
	} else {
		r.fail("No author information found")
	}
}

func checkDates(r *PageReport, p *page, docs []jsonld.Document) {
	if p.times > 0 || anyHasKey(docs, "datePublished", "dateModified") {
		r.pass("Date information found")
	} else {
		r.warn("No date information found (consider adding publish date)")
	}
}

func checkListsAndTables(r *PageReport, p *page) {
	ul, ol := p.lists[atom.Ul], p.lists[atom.Ol]
	if ul+ol == 0 {
		r.fail("No lists found (consider using bulleted or numbered lists)")
	} else {
		r.pass("Lists found (%d bulleted, %d numbered)", ul, ol)
	}

	if p.tables == 0 {
		r.warn("No tables found (consider using tables for comparisons)")
		return
	}
	r.pass("Tables found (%d tables)", p.tables)
	if p.tablesBare > 0 {
		r.warn("Table found without <thead> (consider adding for structure)")
	}
}

func checkLinks(r *PageReport, p *page) {
	if len(p.links) < minLinks {
		r.warn("Only %d links found (consider adding internal links)", len(p.links))
	}

	var generic []string
	for _, l := range p.links {
		text := strings.ToLower(l.text)
		if genericLinkTexts[text] {
			generic = append(generic, fmt.Sprintf("%q (%s)", text, l.href))
		}
	}

	switch {
	case len(generic) > 0:
		shown := generic
		if len(shown) > maxGenericReports {
			shown = shown[:maxGenericReports]
		}
		r.fail("Found %d links with generic text: %s", len(generic), strings.Join(shown, ", "))
	case len(p.links) > 0:
		r.pass("Link text quality good (%d links checked)", len(p.links))
	}
}

func checkImages(r *PageReport, p *page) {
	if len(p.images) == 0 {
		return
	}

	missing, short := 0, 0
	for _, img := range p.images {
		switch n := utf8.RuneCountInString(img.alt); {
		case n == 0:
			missing++
		case n < minAltLength:
			short++
		}
	}

	switch {
	case missing > 0:
		r.fail("%d images missing alt text", missing)
	case short > 0:
		r.warn("%d images have very short alt text", short)
	default:
		r.pass("All images have alt text (%d images)", len(p.images))
	}
}

func checkSemanticHTML(r *PageReport, p *page) {
	if p.articles > 0 {
		r.pass("Semantic HTML: <article> tag found")
	} else {
		r.warn("No <article> tag found (consider wrapping main content)")
	}

	if p.times == 0 {
		return
	}
	if p.timesWithDT > 0 {
		r.pass("Semantic HTML: <time> with datetime attribute")
	} else {
		r.warn("<time> tag found but missing datetime attribute")
	}
}

func anyHasKey(docs []jsonld.Document, keys ...string) bool {
	for _, doc := range docs {
		for _, key := range keys {
			if _, ok := doc[key]; ok {
				return true
			}
		}
	}
	return false
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit]) + "..."
}
