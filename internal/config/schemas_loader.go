package config

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/Darin2/monitor-public/jsonld"
)

// LoadSchemas loads entity descriptors from a .json, .yaml or .yml file
func LoadSchemas(path string) (Schemas, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".json" && ext != ".yaml" && ext != ".yml" {
		return Schemas{}, fmt.Errorf("unsupported schemas file %q: use .json, .yaml or .yml", path)
	}

	schemasFile, err := os.Open(path)
	if err != nil {
		return Schemas{}, fmt.Errorf("failed to open schemas file: %w", err)
	}
	defer func() {
		if closeErr := schemasFile.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close schemas file: %v\n", closeErr)
		}
	}()

	schemas, err := decodeSchemas(schemasFile, ext)
	if err != nil {
		return Schemas{}, fmt.Errorf("failed to decode schemas file: %w", err)
	}

	return schemas, nil
}

func decodeSchemas(r io.Reader, ext string) (Schemas, error) {
	var schemas Schemas
	if ext == ".json" {
		err := json.NewDecoder(r).Decode(&schemas)
		return schemas, err
	}
	err := yaml.NewDecoder(r).Decode(&schemas)
	return schemas, err
}

// ParseKind maps a descriptor type name to a Kind. Matching ignores case and
// accepts the schema.org names FAQPage and SoftwareApplication.
func ParseKind(name string) (Kind, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	switch normalized {
	case "":
		return "", fmt.Errorf("schema type is required")
	case "faqpage":
		return KindFAQ, nil
	case "softwareapplication":
		return KindProduct, nil
	}

	for _, kind := range Kinds() {
		if Kind(normalized) == kind {
			return kind, nil
		}
	}

	names := make([]string, 0, len(Kinds()))
	for _, kind := range Kinds() {
		names = append(names, string(kind))
	}
	return "", fmt.Errorf("unknown schema type %q: must be one of %s", name, strings.Join(names, ", "))
}

// UnmarshalJSON decodes an entry whose fields depend on its "type" key
func (e *SchemaEntry) UnmarshalJSON(data []byte) error {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}

	return e.decode(head.Type, func(v any) error {
		return json.Unmarshal(data, v)
	})
}

// UnmarshalYAML decodes an entry whose fields depend on its "type" key
func (e *SchemaEntry) UnmarshalYAML(node *yaml.Node) error {
	var head struct {
		Type string `yaml:"type"`
	}
	if err := node.Decode(&head); err != nil {
		return err
	}

	return e.decode(head.Type, node.Decode)
}

func (e *SchemaEntry) decode(typeName string, decode func(any) error) error {
	kind, err := ParseKind(typeName)
	if err != nil {
		return err
	}

	var entity jsonld.Entity
	switch kind {
	case KindFAQ:
		var faq jsonld.FAQPage
		err = decode(&faq)
		entity = faq
	case KindHowTo:
		var howTo howToEntry
		err = decode(&howTo)
		entity = howTo.toHowTo()
	case KindArticle:
		var article jsonld.Article
		err = decode(&article)
		entity = normalizeArticle(article)
	case KindProduct:
		var product jsonld.Product
		err = decode(&product)
		entity = product
	case KindOrganization:
		var org jsonld.Organization
		err = decode(&org)
		entity = org
	case KindPerson:
		var person jsonld.Person
		err = decode(&person)
		entity = person
	}
	if err != nil {
		return fmt.Errorf("invalid %s entry: %w", kind, err)
	}

	e.Kind = kind
	e.Entity = entity
	return nil
}

// normalizeArticle rewrites the article dates as YYYY-MM-DD. An empty
// dateModified is left empty so that it defaults to datePublished.
func normalizeArticle(a jsonld.Article) jsonld.Article {
	a.DatePublished = jsonld.FormatDate(a.DatePublished)
	if a.DateModified != "" {
		a.DateModified = jsonld.FormatDate(a.DateModified)
	}
	return a
}

// howToEntry mirrors jsonld.HowTo with a total time that may be written as
// a number of minutes.
type howToEntry struct {
	Name        string             `json:"name" yaml:"name"`
	Description string             `json:"description" yaml:"description"`
	TotalTime   TotalTime          `json:"total-time" yaml:"total-time"`
	Steps       []jsonld.HowToStep `json:"steps" yaml:"steps"`
	Supplies    []string           `json:"supplies" yaml:"supplies"`
	Tools       []string           `json:"tools" yaml:"tools"`
}

func (h howToEntry) toHowTo() jsonld.HowTo {
	return jsonld.HowTo{
		Name:        h.Name,
		Description: h.Description,
		TotalTime:   string(h.TotalTime),
		Steps:       h.Steps,
		Supplies:    h.Supplies,
		Tools:       h.Tools,
	}
}

// TotalTime is an ISO 8601 duration. In descriptor files it can be given
// either as a string ("PT1H30M") or as a whole number of minutes (90).
type TotalTime string

// maxTotalTimeMinutes bounds numeric total-time values so they fit an int on every platform
const maxTotalTimeMinutes = math.MaxInt32

// UnmarshalJSON accepts a string or a whole number of minutes
func (t *TotalTime) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		*t = ""
	case string:
		*t = TotalTime(value)
	case float64:
		if value != math.Trunc(value) {
			return fmt.Errorf("total-time must be a whole number of minutes, got %v", value)
		}
		if math.Abs(value) > maxTotalTimeMinutes {
			return fmt.Errorf("total-time out of range: %v minutes", value)
		}
		*t = TotalTime(jsonld.FormatDuration(int(value)))
	default:
		return fmt.Errorf("invalid total-time type: %T", v)
	}
	return nil
}

// UnmarshalYAML accepts a string or a whole number of minutes
func (t *TotalTime) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("total-time must be a scalar, got %s", node.Tag)
	}

	switch node.Tag {
	case "!!null":
		*t = ""
	case "!!int":
		var minutes int64
		if err := node.Decode(&minutes); err != nil {
			return fmt.Errorf("total-time out of range: %s minutes", node.Value)
		}
		if minutes > maxTotalTimeMinutes || minutes < -maxTotalTimeMinutes {
			return fmt.Errorf("total-time out of range: %d minutes", minutes)
		}
		*t = TotalTime(jsonld.FormatDuration(int(minutes)))
	case "!!str":
		*t = TotalTime(node.Value)
	default:
		return fmt.Errorf("total-time must be a whole number of minutes or a duration string, got %q", node.Value)
	}
	return nil
}
