// Package cmd implements curlthis' CLI.
package cmd

import (
	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/curlthis/internal/curlthis"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

// Build builds and returns the curlthis CLI.
func Build() (*cli.Command, error) {
	var options curlthis.TransformOptions

	return cli.New(
		"curlthis",
		cli.Short("Transform raw HTTP requests into curl one-liners"),
		cli.Version(version),
		cli.Commit(commit),
		cli.BuildDate(date),
		cli.Example("Transform a request saved in a file", "curlthis -f request.txt"),
		cli.Example("Pipe a request through", "cat request.txt | curlthis"),
		cli.Example("Plain output suitable for piping or SSH sessions", "curlthis -f request.txt --plain"),
		cli.Example("Route the generated command through a proxy", "curlthis -f request.txt --proxy 'http://localhost:8080'"),
		cli.Example("Export the parsed request as JSON instead", "curlthis -f request.txt --format json"),
		cli.Allow(cli.NoArgs()),
		cli.Flag(&options.File, "file", 'f', "", "Input file containing the raw request"),
		cli.Flag(&options.Format, "format", 'F', "curl", "Output format, one of (curl|json|yaml|toml)"),
		cli.Flag(&options.Proxy, "proxy", cli.NoShortHand, "", "Add a --proxy flag to the generated command"),
		cli.Flag(&options.CookieJar, "cookie-jar", cli.NoShortHand, "", "Add a --cookie-jar flag to the generated command"),
		cli.Flag(&options.Config, "config", cli.NoShortHand, "", "Path to a curlthis config file"),
		cli.Flag(&options.Plain, "plain", 'p', false, "Print the result with no styling (implied in SSH sessions)"),
		cli.Flag(&options.NoClipboard, "no-clipboard", cli.NoShortHand, false, "Do not copy the result to the clipboard"),
		cli.Flag(&options.Debug, "debug", 'd', false, "Enable debug logs"),
		cli.SubCommands(check),
		cli.Run(func(cmd *cli.Command, args []string) error {
			app := curlthis.New(options.Debug, version, cmd.Stdin(), cmd.Stdout(), cmd.Stderr())
			return app.Transform(options)
		}),
	)
}
