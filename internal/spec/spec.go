// Package spec provides the Request type, the concrete, canonical data
// structure describing a single raw HTTP request after parsing.
//
// Unlike the raw text handed to the parser, a Request is complete and
// concrete: the request line has been split into its components, headers
// are held as an ordered sequence of name/value pairs, and the body (if
// any) is carried verbatim.
//
// spec also provides the mechanism for resolving the request target into
// an absolute URL, which formatters rely on.
package spec

import (
	"fmt"
	"strings"
)

// Standard HTTP methods, anything else is preserved but flagged
// as non-standard.
//
//nolint:gochecknoglobals // Effectively a constant set
var standardMethods = map[string]bool{
	"GET":     true,
	"HEAD":    true,
	"POST":    true,
	"PUT":     true,
	"PATCH":   true,
	"DELETE":  true,
	"CONNECT": true,
	"OPTIONS": true,
	"TRACE":   true,
}

// IsStandardMethod reports whether method (after upper-casing) is one of
// the well known HTTP methods.
func IsStandardMethod(method string) bool {
	return standardMethods[strings.ToUpper(method)]
}

// Header is a single HTTP header as written in the raw request.
//
// Headers are kept as an ordered slice of pairs rather than a map because
// header order and duplicate names affect server side semantics and must
// survive a round trip through this tool.
type Header struct {
	// Name of the header, original casing preserved
	Name string `json:"name" toml:"name" yaml:"name"`

	// Value of the header, surrounding whitespace trimmed
	Value string `json:"value" toml:"value" yaml:"value"`
}

// Body is a HTTP request body.
//
// It is equivalent to a []byte but has a custom implementation of
// [encoding.TextMarshaler] allowing a nicer format for serialisation.
type Body []byte //nolint:recvcheck // Receiver must differ to match encoding.TextMarshaler

// MarshalText implements [encoding.TextMarshaler] for [Body].
func (b Body) MarshalText() ([]byte, error) {
	return b, nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] for [Body].
func (b *Body) UnmarshalText(text []byte) error {
	*b = append((*b)[:0], text...)
	return nil
}

// MarshalYAML implements yaml.Marshaler for [Body], serialising the body
// as a plain string rather than base64 encoded binary.
func (b Body) MarshalYAML() (any, error) {
	return string(b), nil
}

// String implements [fmt.Stringer] for [Body].
func (b Body) String() string {
	return string(b)
}

// Request is a single raw HTTP request as a canonical, fully parsed representation.
type Request struct {
	// The HTTP method, canonicalised to upper case if standard, otherwise
	// preserved exactly as written
	Method string `json:"method" toml:"method" yaml:"method"`

	// The request target exactly as written, either origin-form
	// ("/path?query") or absolute-form ("https://...")
	Target string `json:"target" toml:"target" yaml:"target"`

	// Version of the HTTP protocol as written e.g. "HTTP/1.1", informational only
	HTTPVersion string `json:"httpVersion,omitempty" toml:"http_version,omitempty" yaml:"httpVersion,omitempty"`

	// ContentTypeHint is the media type derived from the Content-Type header
	// (parameters stripped, lower cased) e.g. "application/json", empty if
	// no Content-Type header was present
	ContentTypeHint string `json:"contentTypeHint,omitempty" toml:"content_type_hint,omitempty" yaml:"contentTypeHint,omitempty"`

	// Request headers in original order, duplicates preserved
	Headers []Header `json:"headers,omitempty" toml:"headers,omitempty" yaml:"headers,omitempty"`

	// Request body, verbatim from the raw text, nil if absent
	Body Body `json:"body,omitempty" toml:"body,omitempty" yaml:"body,omitempty"`

	// NonStandard marks a method that is not one of the well known HTTP verbs,
	// such requests are accepted (servers do handle custom verbs) but flagged
	NonStandard bool `json:"nonStandard,omitempty" toml:"non_standard,omitempty" yaml:"nonStandard,omitempty"`

	// JSONBody reports whether ContentTypeHint declared JSON and the body
	// passed a cheap well-formedness scan, advisory only
	JSONBody bool `json:"jsonBody,omitempty" toml:"json_body,omitempty" yaml:"jsonBody,omitempty"`
}

// Host returns the value of the first Host header, matched case-insensitively,
// and whether one was present.
func (r Request) Host() (value string, ok bool) {
	for _, header := range r.Headers {
		if strings.EqualFold(header.Name, "Host") {
			return header.Value, true
		}
	}

	return "", false
}

// IsAbsolute reports whether the request target is in absolute-form,
// i.e. already a complete URL including a scheme.
//
// The scheme must come before any path separator so that an origin-form
// target embedding a URL in its query ("/redirect?to=https://...") is
// not mistaken for absolute-form.
func (r Request) IsAbsolute() bool {
	scheme, _, found := strings.Cut(r.Target, "://")
	return found && !strings.ContainsAny(scheme, "/?#")
}

// ResolveURL returns the absolute URL for the request.
//
// An absolute-form target is passed through unchanged. An origin-form
// target is combined with the Host header and the given scheme. If the
// target is origin-form and there is no Host header, ResolveURL returns
// an empty string, the parser guarantees this cannot happen for a
// successfully parsed request.
func (r Request) ResolveURL(scheme string) string {
	if r.IsAbsolute() {
		return r.Target
	}

	host, ok := r.Host()
	if !ok {
		return ""
	}

	if scheme == "" {
		scheme = "https"
	}

	return scheme + "://" + host + r.Target
}

// String implements [fmt.Stringer] for a [Request] and renders
// the request back to its canonical raw text form.
func (r Request) String() string {
	builder := &strings.Builder{}

	if r.HTTPVersion != "" {
		fmt.Fprintf(builder, "%s %s %s\n", r.Method, r.Target, r.HTTPVersion)
	} else {
		fmt.Fprintf(builder, "%s %s\n", r.Method, r.Target)
	}

	for _, header := range r.Headers {
		fmt.Fprintf(builder, "%s: %s\n", header.Name, header.Value)
	}

	if len(r.Body) != 0 {
		builder.WriteString("\n")
		builder.WriteString(r.Body.String())
		builder.WriteString("\n")
	}

	return builder.String()
}
