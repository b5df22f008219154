package curlthis

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

// acquire obtains the raw request text, trying each source in order:
// an explicit file, piped stdin, the system clipboard, and finally an
// interactive prompt.
//
// The returned source names where the text came from and is used in
// parse diagnostics.
func (c Curlthis) acquire(file string) (raw, source string, err error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", "", fmt.Errorf("could not read file: %w", err)
		}

		return string(data), file, nil
	}

	if f, ok := c.stdin.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		// Anything that isn't an interactive terminal (a pipe, a
		// redirected file, or a test buffer) is read in full
		data, err := io.ReadAll(c.stdin)
		if err != nil {
			return "", "", fmt.Errorf("could not read stdin: %w", err)
		}

		return string(data), "stdin", nil
	}

	if text, err := clipboard.ReadAll(); err == nil && strings.TrimSpace(text) != "" {
		return text, "clipboard", nil
	}

	// Terminal session with nothing on the clipboard, ask for a paste
	var pasted string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Paste a raw HTTP request").
				Description("Request line, headers, then an optional body").
				Value(&pasted),
		),
	)

	if err := form.Run(); err != nil {
		return "", "", fmt.Errorf("could not read interactive input: %w", err)
	}

	return pasted, "prompt", nil
}
