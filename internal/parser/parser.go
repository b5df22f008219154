// Package parser implements the raw HTTP request parser.
//
// The parser consumes a single blob of text as captured from a browser,
// proxy, or documentation and produces a [spec.Request]. It is a small
// line-oriented state machine over three states: the request line, the
// header section, and the body.
//
// Parsing is deterministic and pure, all failures are reported as a
// [ParseError] value carrying the closed set of failure kinds along with
// the line number and offending text so callers can surface a precise
// diagnostic. The parser never attempts to repair an invalid request,
// silently "fixing" input risks generating a command that does not
// reproduce the original request.
package parser

import (
	"fmt"
	"strings"

	"go.followtheprocess.codes/curlthis/internal/spec"
)

// Kind identifies the category of a parse failure.
type Kind int

const (
	// KindEmptyOrTruncatedInput means no usable request line was found.
	KindEmptyOrTruncatedInput Kind = iota + 1

	// KindMalformedRequestLine means the request line did not split into
	// exactly method, target and version.
	KindMalformedRequestLine

	// KindMalformedHeaderLine means a line in the header section lacked
	// a ':' delimiter.
	KindMalformedHeaderLine

	// KindMissingHostForRelativeTarget means the target was origin-form
	// but there was no Host header from which to build an absolute URL.
	KindMissingHostForRelativeTarget
)

// String implements [fmt.Stringer] for [Kind].
func (k Kind) String() string {
	switch k {
	case KindEmptyOrTruncatedInput:
		return "no usable request line found"
	case KindMalformedRequestLine:
		return "request line must be '<METHOD> <target> <version>'"
	case KindMalformedHeaderLine:
		return "header line is missing the ':' delimiter"
	case KindMissingHostForRelativeTarget:
		return "origin-form target requires a Host header"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseError is a raw request parse failure.
type ParseError struct {
	// Name of the input e.g. a file path, "stdin" or "clipboard"
	Name string

	// Text is the offending line, may be empty for truncated input
	Text string

	// Line is the 1-indexed line number the error points at, 0 when
	// there is no meaningful position (e.g. completely empty input)
	Line int

	// Kind is the category of failure
	Kind Kind
}

// Error implements the error interface for [ParseError].
//
// It is formatted as "name:line: message" so most terminals support
// clicking through to the offending position.
func (e *ParseError) Error() string {
	var position string
	if e.Line > 0 {
		position = fmt.Sprintf("%s:%d", e.Name, e.Line)
	} else {
		position = e.Name
	}

	if e.Text != "" {
		return fmt.Sprintf("%s: %s: %q", position, e.Kind, e.Text)
	}

	return fmt.Sprintf("%s: %s", position, e.Kind)
}

// Parse parses a raw HTTP request into a [spec.Request].
//
// The name is used purely for diagnostics and should identify the source
// of the text, e.g. a file path or "stdin".
//
// Both CRLF and bare LF line endings are accepted, and blank lines before
// the request line are skipped to tolerate copy/paste artifacts.
func Parse(name, raw string) (spec.Request, error) {
	// Normalising line endings up front does not alter the semantic
	// content of the body, it only unifies the line terminators
	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")

	line := 0

	// Skip leading blank lines, a common copy/paste artifact
	for line < len(lines) && strings.TrimSpace(lines[line]) == "" {
		line++
	}

	if line >= len(lines) {
		return spec.Request{}, &ParseError{
			Name: name,
			Kind: KindEmptyOrTruncatedInput,
		}
	}

	requestLine := line + 1

	request, err := parseRequestLine(name, lines[line], requestLine)
	if err != nil {
		return spec.Request{}, err
	}

	line++

	// Header section, runs until a blank line or end of input. A request
	// with headers but no blank line and no body is valid
	for ; line < len(lines); line++ {
		text := lines[line]
		if strings.TrimSpace(text) == "" {
			line++ // Consume the separator, the body starts after it
			break
		}

		header, err := parseHeaderLine(name, text, line+1)
		if err != nil {
			return spec.Request{}, err
		}

		request.Headers = append(request.Headers, header)
	}

	if !request.IsAbsolute() {
		if _, ok := request.Host(); !ok {
			return spec.Request{}, &ParseError{
				Name: name,
				Text: request.Target,
				Line: requestLine,
				Kind: KindMissingHostForRelativeTarget,
			}
		}
	}

	if line < len(lines) {
		// Everything remaining is the body, verbatim. A single trailing
		// line terminator is an artifact of line-based capture and is
		// removed, anything beyond that is preserved
		body := strings.TrimSuffix(strings.Join(lines[line:], "\n"), "\n")
		if strings.TrimSpace(body) != "" {
			request.Body = spec.Body(body)
		}
	}

	request.ContentTypeHint = contentTypeHint(request.Headers)
	request.JSONBody = isJSON(request.ContentTypeHint) && wellFormedJSON(request.Body)

	return request, nil
}

// parseRequestLine splits a request line into exactly method, target
// and version.
func parseRequestLine(name, text string, line int) (spec.Request, error) {
	fields := strings.Fields(text)
	if len(fields) != 3 {
		return spec.Request{}, &ParseError{
			Name: name,
			Text: text,
			Line: line,
			Kind: KindMalformedRequestLine,
		}
	}

	method, target, version := fields[0], fields[1], fields[2]

	request := spec.Request{
		Method:      strings.ToUpper(method),
		Target:      target,
		HTTPVersion: version,
	}

	if !spec.IsStandardMethod(method) {
		// Custom verbs are passed through exactly as written, servers
		// do accept them
		request.Method = method
		request.NonStandard = true
	}

	return request, nil
}

// parseHeaderLine splits a header line on the first ':' only, so values
// containing ':' (timestamps, URLs) survive intact.
func parseHeaderLine(name, text string, line int) (spec.Header, error) {
	colon := strings.Index(text, ":")
	if colon <= 0 {
		// No delimiter, or a line starting with ':' which has no name
		return spec.Header{}, &ParseError{
			Name: name,
			Text: text,
			Line: line,
			Kind: KindMalformedHeaderLine,
		}
	}

	return spec.Header{
		Name:  strings.TrimSpace(text[:colon]),
		Value: strings.TrimSpace(text[colon+1:]),
	}, nil
}

// contentTypeHint derives the media type from the first Content-Type
// header, parameters stripped and lower cased.
func contentTypeHint(headers []spec.Header) string {
	for _, header := range headers {
		if !strings.EqualFold(header.Name, "Content-Type") {
			continue
		}

		hint, _, _ := strings.Cut(header.Value, ";")

		return strings.ToLower(strings.TrimSpace(hint))
	}

	return ""
}

// isJSON reports whether the media type hint declares a JSON payload.
func isJSON(hint string) bool {
	return hint == "application/json" || strings.HasSuffix(hint, "+json")
}

// wellFormedJSON is a cheap advisory scan for balanced braces and brackets,
// deliberately not a full JSON parse. String literals (and escapes within
// them) are skipped so punctuation inside strings doesn't count.
//
// The result never alters the body, which is always carried through
// unchanged, it is purely a hint for downstream tooling.
func wellFormedJSON(body spec.Body) bool {
	if len(body) == 0 {
		return false
	}

	var (
		depth    int
		inString bool
		escaped  bool
	)

	for _, b := range body {
		if inString {
			switch {
			case escaped:
				escaped = false
			case b == '\\':
				escaped = true
			case b == '"':
				inString = false
			}

			continue
		}

		switch b {
		case '"':
			inString = true
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth < 0 {
				return false
			}
		}
	}

	return depth == 0 && !inString
}
