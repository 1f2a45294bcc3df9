package jsonld

import "fmt"

// Entity is implemented by every descriptor that can be turned into a Document.
type Entity interface {
	Build() Result
}

// Result holds a built document together with the sub-items that were left
// out of it. Dropped items never cause Build to fail.
type Result struct {
	Document Document
	Skipped  []Skipped
}

// Skipped describes an input sub-item that was dropped while building.
type Skipped struct {
	Field  string // output key the item would have been listed under
	Index  int    // position in the input slice
	Reason string
}

func (s Skipped) String() string {
	return fmt.Sprintf("%s[%d]: %s", s.Field, s.Index, s.Reason)
}

// Generate builds e and renders it as a script block.
func Generate(e Entity) (string, error) {
	return e.Build().Document.Script()
}

// missingReason returns a reason naming the first empty required field, or ""
// when all are present. Fields are passed as name/value pairs.
func missingReason(fields ...string) string {
	for i := 0; i+1 < len(fields); i += 2 {
		if fields[i+1] == "" {
			return "missing " + fields[i]
		}
	}
	return ""
}

func cloneStrings(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
