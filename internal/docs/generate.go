package docs

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// DefaultArtifactPath is where the server expects the generated document.
const DefaultArtifactPath = "docs/openapi.json"

// Generate merges the statically authored path documentation with the
// schemas introspected from the given entity structs.
func Generate(models ...any) *Document {
	doc := staticDocument()
	doc.Components = &Components{Schemas: Introspect(models...)}
	return doc
}

// WriteFile renders the document as indented UTF-8 JSON, overwriting any
// previous artifact at path. There is no partial-success mode: the caller
// aborts on any error.
func WriteFile(doc *Document, path string) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	return os.WriteFile(path, data, 0o644)
}
