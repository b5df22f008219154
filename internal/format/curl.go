package format

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.followtheprocess.codes/curlthis/internal/spec"
)

// defaultScheme is used to resolve origin-form targets when the caller
// did not configure one.
const defaultScheme = "https"

// Quote wraps s in single quotes such that a POSIX shell treats it as
// exactly one literal argument regardless of any special characters it
// contains.
//
// Embedded single quotes are handled with the close/reopen concatenation
// trick, 'it''s' becomes 'it'"'"'s'.
//
// Every string interpolated into a generated command (URL, header values,
// body, proxy, cookie jar path) must pass through here, it is the single
// place shell safety is enforced.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}

// Command assembles the curl invocation for a parsed request.
//
// The assembly order is fixed so output is deterministic: curl, -X, the
// resolved URL, one -H per header in original order, -d for a non-empty
// body, then --proxy and --cookie-jar from options. -X is omitted only
// for a bodyless GET, curl's default.
//
// Command is total over the domain of successfully parsed requests, an
// unresolvable URL here means a defect at the parser/formatter boundary
// and panics rather than returning an error.
func Command(request spec.Request, options Options) string {
	scheme := options.Scheme
	if scheme == "" {
		scheme = defaultScheme
	}

	url := request.ResolveURL(scheme)
	if url == "" {
		panic(fmt.Sprintf("format: request %q has no resolvable URL, parser invariant violated", request.Target))
	}

	parts := []string{"curl"}

	if request.Method != http.MethodGet || len(request.Body) != 0 {
		parts = append(parts, "-X", request.Method)
	}

	parts = append(parts, Quote(url))

	for _, header := range request.Headers {
		if strings.EqualFold(header.Name, "Host") {
			// Host is folded into the URL
			continue
		}

		parts = append(parts, "-H", Quote(header.Name+": "+header.Value))
	}

	if len(request.Body) != 0 {
		// The body is emitted exactly as supplied, even when the
		// Content-Type claims JSON, re-serialising would silently alter
		// key order or numeric formatting
		parts = append(parts, "-d", Quote(request.Body.String()))
	}

	if options.Proxy != "" {
		parts = append(parts, "--proxy", Quote(options.Proxy))
	}

	if options.CookieJar != "" {
		parts = append(parts, "--cookie-jar", Quote(options.CookieJar))
	}

	return strings.Join(parts, " ")
}

// CurlExporter is an [Exporter] that transforms parsed requests into
// curl one-liners.
type CurlExporter struct {
	// Options configure proxy, cookie jar and URL scheme handling.
	Options Options
}

// Export implements [Exporter] for [CurlExporter] and exports the given
// request as a single line curl command.
func (c CurlExporter) Export(w io.Writer, request spec.Request) error {
	_, err := fmt.Fprintln(w, Command(request, c.Options))
	return err
}
