package format

import (
	"io"

	"go.followtheprocess.codes/curlthis/internal/spec"
	"go.yaml.in/yaml/v4"
)

const yamlIndent = 2

// YAMLExporter is an [Exporter] that transforms parsed requests into
// YAML documents.
type YAMLExporter struct{}

// Export implements [Exporter] for [YAMLExporter] and exports the given
// request as a complete YAML document.
func (y YAMLExporter) Export(w io.Writer, request spec.Request) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(yamlIndent)

	return encoder.Encode(request)
}
