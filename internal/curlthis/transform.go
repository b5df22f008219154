package curlthis

import (
	"cmp"
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"go.followtheprocess.codes/curlthis/internal/config"
	"go.followtheprocess.codes/curlthis/internal/format"
	"go.followtheprocess.codes/curlthis/internal/parser"
	"go.followtheprocess.codes/hue"
	"go.followtheprocess.codes/msg"
)

// Styles.
const (
	// commandStyle is the style used for rendering the generated command.
	commandStyle = hue.Cyan | hue.Bold

	// dimmed is the style used for printing informational content like
	// the input source.
	dimmed = hue.BrightBlack | hue.Italic

	// bad is the style used to render the offending line in
	// parse diagnostics.
	bad = hue.Red | hue.Bold
)

// TransformOptions are the options passed to the root command.
type TransformOptions struct {
	// File is the path of a file containing the raw request, if empty
	// the request is read from stdin, clipboard or an interactive prompt.
	File string

	// Format is the output format, one of curl, json, yaml or toml.
	Format string

	// Proxy, if set, adds a --proxy flag to the generated command.
	Proxy string

	// CookieJar, if set, adds a --cookie-jar flag to the generated command.
	CookieJar string

	// Config is an explicit config file path, empty means the
	// default location.
	Config string

	// Plain renders the result with no styling at all, for piping or
	// SSH sessions. It also disables the clipboard copy.
	Plain bool

	// NoClipboard disables copying the result to the system clipboard.
	NoClipboard bool

	// Debug enables debug logging.
	Debug bool
}

// Validate reports whether the TransformOptions is valid, returning a
// non-nil error if it's not.
func (t TransformOptions) Validate() error {
	switch format := t.Format; format {
	case "curl", "json", "yaml", "toml":
		return nil
	default:
		return fmt.Errorf("invalid option for --format %q, allowed values are 'curl', 'json', 'yaml', 'toml'", format)
	}
}

// Transform handles the root command, it runs the whole pipeline: acquire
// raw text, parse it into a request, serialise that request as a shell
// safe curl command (or an alternative export format) and deliver the
// result to the terminal and the clipboard.
func (c Curlthis) Transform(options TransformOptions) error {
	logger := c.logger.WithPrefix("transform")

	logger.Debug("Transform configuration", "version", c.version, "options", fmt.Sprintf("%+v", options))

	if err := options.Validate(); err != nil {
		return err
	}

	cfg, err := config.Load(options.Config)
	if err != nil {
		return err
	}

	logger.Debug("Loaded configuration", "config", fmt.Sprintf("%+v", cfg))

	raw, source, err := c.acquire(options.File)
	if err != nil {
		return err
	}

	logger.Debug("Acquired raw request", "source", source, "bytes", len(raw))

	request, err := parser.Parse(source, raw)
	if err != nil {
		c.showParseError(err)
		return err
	}

	logger.Debug(
		"Parsed request",
		"method", request.Method,
		"target", request.Target,
		"headers", len(request.Headers),
		"body", len(request.Body),
	)

	formatOptions := format.Options{
		Proxy:     cmp.Or(options.Proxy, cfg.Proxy),
		CookieJar: cmp.Or(options.CookieJar, cfg.CookieJar),
		Scheme:    cfg.Scheme,
		Plain:     options.Plain || cfg.Plain || insideSSH(),
	}

	exporter, err := exporterFor(options.Format, formatOptions)
	if err != nil {
		return err
	}

	out := &strings.Builder{}
	if err := exporter.Export(out, request); err != nil {
		return fmt.Errorf("could not export request: %w", err)
	}

	result := strings.TrimSuffix(out.String(), "\n")

	if formatOptions.Plain {
		// Plain single line, trivial to select and pipe
		fmt.Fprintln(c.stdout, result)
	} else {
		fmt.Fprintf(c.stdout, "%s %s\n\n", dimmed.Text("from"), dimmed.Text(source))
		fmt.Fprintln(c.stdout, commandStyle.Text(result))
		fmt.Fprintln(c.stdout)
	}

	if options.Format == "curl" && cfg.Clipboard && !options.NoClipboard && !formatOptions.Plain {
		if err := clipboard.WriteAll(result); err != nil {
			// Clipboard access is best effort, a missing xclip/xsel or
			// headless session should not fail the transform
			msg.Fwarn(c.stderr, "Could not copy to clipboard: %v", err)
		} else {
			msg.Fsuccess(c.stderr, "Copied to clipboard")
		}
	}

	return nil
}

// showParseError renders a parse failure with the offending line so the
// user can fix the input.
func (c Curlthis) showParseError(err error) {
	var parseErr *parser.ParseError
	if !errors.As(err, &parseErr) || parseErr.Text == "" {
		return
	}

	fmt.Fprintf(c.stderr, "%s\n", bad.Text("  "+parseErr.Text))
}

// exporterFor selects the [format.Exporter] for the given format name.
func exporterFor(name string, options format.Options) (format.Exporter, error) {
	switch name {
	case "curl":
		return format.CurlExporter{Options: options}, nil
	case "json":
		return format.JSONExporter{}, nil
	case "yaml":
		return format.YAMLExporter{}, nil
	case "toml":
		return format.TOMLExporter{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q", name)
	}
}
