// Package curlthis implements the functionality of the program, the CLI in package cmd is simply the
// entrypoint to exported functions and methods in this package.
package curlthis

import (
	"io"
	"os"
	"time"

	"charm.land/log/v2"
)

// Curlthis represents the curlthis program.
type Curlthis struct {
	stdin   io.Reader   // Raw requests may be piped in here
	stdout  io.Writer   // Normal program output is written here
	stderr  io.Writer   // Logs and errors are written here
	logger  *log.Logger // The logger for the application
	version string      // Version of the program
}

// New returns a new [Curlthis].
func New(debug bool, version string, stdin io.Reader, stdout, stderr io.Writer) Curlthis {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}

	logger := log.NewWithOptions(stderr, log.Options{
		TimeFormat:      time.RFC3339Nano,
		Level:           level,
		Prefix:          "curlthis",
		ReportTimestamp: true,
	})

	logger.SetStyles(logStyles())

	return Curlthis{
		stdin:   stdin,
		stdout:  stdout,
		stderr:  stderr,
		logger:  logger,
		version: version,
	}
}

// insideSSH reports whether we appear to be running inside an SSH
// session, where clipboard access typically fails and styled output
// is awkward to copy from.
func insideSSH() bool {
	return os.Getenv("SSH_CLIENT") != "" || os.Getenv("SSH_TTY") != "" || os.Getenv("SSH_CONNECTION") != ""
}
