// Package templates embeds the starter descriptors written by the init command.
package templates

import (
	"embed"
	"fmt"
)

//go:embed faq.yaml howto.yaml article.yaml product.yaml organization.yaml person.yaml
var FS embed.FS

// Starter returns the starter descriptor for kind, one of the config kinds.
func Starter(kind string) ([]byte, error) {
	content, err := FS.ReadFile(kind + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("no starter template for %q: %w", kind, err)
	}
	return content, nil
}
