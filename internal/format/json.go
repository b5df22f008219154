package format

import (
	"encoding/json"
	"io"

	"go.followtheprocess.codes/curlthis/internal/spec"
)

// JSONExporter is an [Exporter] that transforms parsed requests into
// JSON documents.
type JSONExporter struct{}

// Export implements [Exporter] for [JSONExporter] and exports the given
// request as a complete JSON document.
func (j JSONExporter) Export(w io.Writer, request spec.Request) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(request)
}
