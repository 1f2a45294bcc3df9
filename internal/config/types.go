package config

import (
	"time"

	"github.com/Darin2/monitor-public/jsonld"
)

// GenerateFlags holds the flag values of the generate command
type GenerateFlags struct {
	File       string // path to the schemas descriptor (.json, .yaml or .yml)
	OutputFile string // empty means stdout
	Format     string // summary format, parsed by output.ParseFormat
	Combine    bool   // emit one combined block instead of one block per entry
	LogFile    string
}

// CombineFlags holds the flag values of the combine command
type CombineFlags struct {
	OutputFile string // empty means stdout
}

// AuditFlags holds the flag values of the audit command
type AuditFlags struct {
	Format      string // report format, parsed by output.ParseFormat
	Concurrency int
	Timeout     time.Duration
	InsecureTLS bool
	LogFile     string
}

// InitFlags holds the flag values of the init command
type InitFlags struct {
	Type       string
	OutputFile string
	Force      bool
}

// Schemas is the content of a descriptor file: the entities to render and
// whether they should be combined into a single block.
type Schemas struct {
	Combine bool          `json:"combine" yaml:"combine"`
	Entries []SchemaEntry `json:"schemas" yaml:"schemas"`
}

// SchemaEntry is one descriptor entry. Kind is taken from the entry's "type"
// key and selects the concrete jsonld type held in Entity.
type SchemaEntry struct {
	Kind   Kind
	Entity jsonld.Entity
}

// Kind names a supported entity type as written in descriptor files
type Kind string

const (
	KindFAQ          Kind = "faq"
	KindHowTo        Kind = "howto"
	KindArticle      Kind = "article"
	KindProduct      Kind = "product"
	KindOrganization Kind = "organization"
	KindPerson       Kind = "person"
)

// Kinds lists every supported kind in a stable order.
func Kinds() []Kind {
	return []Kind{KindFAQ, KindHowTo, KindArticle, KindProduct, KindOrganization, KindPerson}
}
