package curlthis

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.followtheprocess.codes/curlthis/internal/parser"
	"go.followtheprocess.codes/msg"
	"golang.org/x/sync/errgroup"
)

// requestExt is the file extension curlthis uses for saved raw requests.
const requestExt = ".request"

// CheckOptions are the options passed to the check subcommand.
type CheckOptions struct {
	// Path is the path (file or directory) to check.
	Path string

	// Debug enables debug logging.
	Debug bool
}

// Check implements the check subcommand, validating that saved raw
// request files parse cleanly.
func (c Curlthis) Check(options CheckOptions) error {
	logger := c.logger.WithPrefix("check").With("path", options.Path)
	logger.Debug("Checking path")

	info, err := os.Stat(options.Path)
	if err != nil {
		return fmt.Errorf("could not get path info: %w", err)
	}

	var paths []string

	if info.IsDir() {
		logger.Debug("Path is a directory")

		err = filepath.WalkDir(options.Path, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if filepath.Ext(path) == requestExt {
				paths = append(paths, path)
			}

			return nil
		})
		if err != nil {
			return fmt.Errorf("could not walk %s: %w", options.Path, err)
		}
	} else {
		logger.Debug("Path is a file")

		paths = []string{options.Path}
	}

	logger.Debug("Checking request files given by path", "number", len(paths))

	group := errgroup.Group{}

	for _, path := range paths {
		group.Go(func() error {
			return c.checkFile(path)
		})
	}

	if err := group.Wait(); err != nil {
		c.showParseError(err)
		return err
	}

	for _, path := range paths {
		msg.Fsuccess(c.stdout, "%s is valid", path)
	}

	return nil
}

// checkFile runs a parse check on a single raw request file.
func (c Curlthis) checkFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read file: %w", err)
	}

	// We don't actually care about the result, just that it parses
	_, err = parser.Parse(path, string(data))

	return err
}
