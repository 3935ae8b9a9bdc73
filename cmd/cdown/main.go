// cdown — a full-screen terminal countdown.
//
// Usage:
//
//	cdown [DURATION] [-b] [-c COLOR] [-p] [-l]
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

// Exit codes. A user quit is distinguishable from natural completion.
const (
	exitFinished = 0
	exitQuit     = 1
	exitError    = 2
)

// errQuit marks a countdown the user left early. It carries no message.
var errQuit = errors.New("quit")

func main() {
	_ = godotenv.Load()
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the root command and maps its result to an exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	return exitCode(err, stderr)
}

func exitCode(err error, stderr io.Writer) int {
	switch {
	case err == nil:
		return exitFinished
	case errors.Is(err, errQuit):
		return exitQuit
	default:
		fmt.Fprintf(stderr, "%s %v\n", color.RedString("Error:"), err)
		return exitError
	}
}
