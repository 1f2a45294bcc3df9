package jsonld

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Combine merges several rendered blocks into a single script block holding a
// JSON array with one element per input, in input order. Each element is the
// parsed input left as it was, including its own @context. Inputs may be
// script blocks or bare JSON text; inputs that do not parse are skipped. When
// nothing parses the result is "" with a nil error.
func Combine(blocks ...string) (string, error) {
	entities := make([]any, 0, len(blocks))
	for _, block := range blocks {
		body := block
		if found := scripts(block, anyScript); len(found) > 0 {
			body = found[0]
		}
		v, err := decode(body)
		if err != nil || v == nil {
			continue
		}
		entities = append(entities, v)
	}

	if len(entities) == 0 {
		return "", nil
	}

	body, err := marshal(entities)
	if err != nil {
		return "", err
	}
	return wrap(body), nil
}

// Parse decodes JSON-LD text holding either a single object or an array of
// objects. Array elements that are not objects are ignored.
func Parse(text string) ([]Document, error) {
	v, err := decode(text)
	if err != nil {
		return nil, err
	}

	switch t := v.(type) {
	case map[string]any:
		return []Document{Document(t)}, nil
	case []any:
		docs := make([]Document, 0, len(t))
		for _, item := range t {
			if m, ok := item.(map[string]any); ok {
				docs = append(docs, Document(m))
			}
		}
		return docs, nil
	default:
		return nil, fmt.Errorf("json-ld must be an object or an array, got %T", v)
	}
}

// Extract returns the bodies of every application/ld+json script block in
// page, in document order.
func Extract(page string) []string {
	found := scripts(page, isJSONLD)
	bodies := make([]string, 0, len(found))
	for _, body := range found {
		bodies = append(bodies, strings.TrimSpace(body))
	}
	return bodies
}

func anyScript(string) bool { return true }

// isJSONLD matches the type attribute of a JSON-LD script, ignoring case and
// media type parameters.
func isJSONLD(typ string) bool {
	mediaType, _, _ := strings.Cut(typ, ";")
	return strings.EqualFold(strings.TrimSpace(mediaType), ScriptType)
}

// scripts returns the text of every closed script element in content whose
// type attribute satisfies keep, in document order. content may be a whole
// page or a fragment.
func scripts(content string, keep func(typ string) bool) []string {
	var (
		bodies   []string
		body     strings.Builder
		inScript bool
		collect  bool
	)

	z := html.NewTokenizer(strings.NewReader(content))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return bodies
		case html.StartTagToken:
			name, hasAttr := z.TagName()
			if atom.Lookup(name) != atom.Script {
				continue
			}
			typ := ""
			for hasAttr {
				var key, val []byte
				key, val, hasAttr = z.TagAttr()
				if string(key) == "type" {
					typ = string(val)
				}
			}
			inScript, collect = true, keep(typ)
			body.Reset()
		case html.TextToken:
			if inScript && collect {
				body.Write(z.Text())
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if inScript && atom.Lookup(name) == atom.Script {
				if collect {
					bodies = append(bodies, body.String())
				}
				inScript = false
			}
		}
	}
}

func decode(text string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(strings.TrimSpace(text)))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("failed to decode json-ld: %w", err)
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode json-ld: unexpected data after top-level value")
	}
	return v, nil
}
