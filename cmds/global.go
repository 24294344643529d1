package cmds

import (
	"fmt"
	"os"
)

var defaultExecutor = NewExecutor()

func Define(name string, command *Command) {
	defaultExecutor.Define(name, command)
}

// Execute runs the process-wide commands and exits on failure.
func Execute(args []string) {
	if err := defaultExecutor.Execute(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func PrintUsage() {
	defaultExecutor.PrintUsage()
}
