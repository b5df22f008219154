// Package format provides mechanisms for converting a parsed HTTP request
// into external formats.
//
// Notably, the package provides the [Exporter] interface for doing this in
// a format-agnostic way, along with the built in exporters: curl (the
// default), JSON, YAML and TOML.
package format

import (
	"io"

	"go.followtheprocess.codes/curlthis/internal/spec"
)

// Exporter is the interface defining a mechanism for exporting a parsed
// request into an external format.
type Exporter interface {
	// Export writes the [spec.Request] in an external format to w.
	Export(w io.Writer, request spec.Request) error
}

// Options is the external configuration consumed by the curl exporter.
//
// It is supplied by the CLI layer and never mutated here.
type Options struct {
	// Proxy, if set, adds a --proxy flag to the generated command.
	Proxy string

	// CookieJar, if set, adds a --cookie-jar flag (write semantics)
	// to the generated command.
	CookieJar string

	// Scheme used when resolving an origin-form target into an absolute
	// URL, defaults to "https" if empty.
	Scheme string

	// Plain suppresses styling metadata in the caller, the generated
	// command string itself is identical either way, a textual contract
	// other stages may rely on.
	Plain bool
}
