// Package jsonld builds schema.org structured data documents (FAQ, HowTo,
// Article, SoftwareApplication, Organization, Person) and renders them as
// JSON-LD script blocks ready to be embedded in a web page.
//
// Builders are pure: every call produces a fresh Document from its inputs and
// nothing is shared between calls.
package jsonld

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
)

const (
	// SchemaContext is the vocabulary every document is stated in.
	SchemaContext = "https://schema.org"

	// ScriptType is the content type of the wrapping script tag.
	ScriptType = "application/ld+json"

	indent = "    "
)

// Document is a single structured-data entity. Nested objects are plain
// map[string]any values and lists are []any or []string.
type Document map[string]any

func newDocument(typ string) Document {
	return Document{
		"@context": SchemaContext,
		"@type":    typ,
	}
}

// Type returns the @type marker of the document, or "" when absent.
func (d Document) Type() string {
	t, _ := d["@type"].(string)
	return t
}

// JSON renders the document as indented JSON. Map keys are emitted in sorted
// order so that parsing and re-rendering the output is byte-identical.
func (d Document) JSON() ([]byte, error) {
	return marshal(map[string]any(d))
}

// Script renders the document wrapped in a JSON-LD script tag.
func (d Document) Script() (string, error) {
	body, err := d.JSON()
	if err != nil {
		return "", err
	}
	return wrap(body), nil
}

// marshal encodes v without escaping slashes, HTML characters or non-ASCII text.
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode json-ld: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func wrap(body []byte) string {
	return `<script type="` + ScriptType + `">` + string(body) + `</script>`
}
