package audit

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

type heading struct {
	level int
	text  string
}

type link struct {
	href string
	text string
}

type image struct {
	src string
	alt string
}

// page holds the parts of a parsed HTML document the checks look at.
type page struct {
	ldScripts   []string // bodies of application/ld+json scripts
	headings    []heading
	meta        map[string]string // first content per lower-cased meta name
	lists       map[atom.Atom]int
	tables      int
	tablesBare  int // tables without a thead
	links       []link
	images      []image
	articles    int
	times       int
	timesWithDT int
	texts       []string // visible text nodes
}

func parsePage(content string) (*page, error) {
	root, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}

	p := &page{
		meta:  make(map[string]string),
		lists: make(map[atom.Atom]int),
	}
	p.walk(root)
	return p, nil
}

func (p *page) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		if text := strings.TrimSpace(n.Data); text != "" {
			p.texts = append(p.texts, text)
		}
	case html.ElementNode:
		if !p.element(n) {
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		p.walk(c)
	}
}

// element records n and reports whether its children should be walked.
func (p *page) element(n *html.Node) bool {
	switch n.DataAtom {
	case atom.Script:
		if strings.EqualFold(strings.TrimSpace(attr(n, "type")), "application/ld+json") {
			p.ldScripts = append(p.ldScripts, textOf(n))
		}
		return false
	case atom.Style, atom.Noscript, atom.Template:
		return false
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		p.headings = append(p.headings, heading{
			level: int(n.Data[1] - '0'),
			text:  strings.TrimSpace(textOf(n)),
		})
	case atom.Meta:
		name := strings.ToLower(attr(n, "name"))
		if _, seen := p.meta[name]; name != "" && !seen {
			p.meta[name] = attr(n, "content")
		}
	case atom.Ul, atom.Ol:
		p.lists[n.DataAtom]++
	case atom.Table:
		p.tables++
		if !hasDescendant(n, atom.Thead) {
			p.tablesBare++
		}
	case atom.A:
		if href, ok := lookupAttr(n, "href"); ok {
			p.links = append(p.links, link{href: href, text: strings.TrimSpace(textOf(n))})
		}
	case atom.Img:
		src, ok := lookupAttr(n, "src")
		if !ok {
			src = "unknown"
		}
		p.images = append(p.images, image{src: src, alt: strings.TrimSpace(attr(n, "alt"))})
	case atom.Article:
		p.articles++
	case atom.Time:
		p.times++
		if attr(n, "datetime") != "" {
			p.timesWithDT++
		}
	}
	return true
}

func lookupAttr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, key) {
			return a.Val, true
		}
	}
	return "", false
}

func attr(n *html.Node, key string) string {
	v, _ := lookupAttr(n, key)
	return v
}

// textOf concatenates the text of every descendant text node.
func textOf(n *html.Node) string {
	var sb strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return sb.String()
}

func hasDescendant(n *html.Node, a atom.Atom) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == a {
			return true
		}
		if hasDescendant(c, a) {
			return true
		}
	}
	return false
}
