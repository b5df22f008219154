package main

import (
	"os"

	"go.followtheprocess.codes/curlthis/internal/cmd"
	"go.followtheprocess.codes/msg"
)

func main() {
	os.Exit(run())
}

// run executes the CLI, returning the process exit code. It exists so
// the testscript harness can invoke the program in-process.
func run() int {
	command, err := cmd.Build()
	if err != nil {
		msg.Error("%v", err)
		return 1
	}

	if err := command.Execute(); err != nil {
		msg.Error("%v", err)
		return 1
	}

	return 0
}
