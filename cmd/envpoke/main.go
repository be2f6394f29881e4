package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/vertti/envpoke/pkg/requirements"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the root command and maps its outcome to an exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		reportError(stdout, err)
		return 1
	}
	return 0
}

// reportError prints fatal errors to the report stream. Failed checks were
// already printed as part of the report.
func reportError(w io.Writer, err error) {
	log.WithError(err).Debug("Run failed")

	var loadErr *requirements.LoadError
	switch {
	case errors.Is(err, ErrCheckFailed):
	case errors.Is(err, ErrUsage):
		fmt.Fprintf(w, "%v\nUsage: %s\n", err, rootCmd.UseLine())
		fmt.Fprintf(w, "Example: %s required.json .env.production\n", rootCmd.Name())
	case errors.As(err, &loadErr):
		fmt.Fprintf(w, "Failed to load requirements: %v\n", loadErr)
	default:
		fmt.Fprintf(w, "Error: %v\n", err)
	}
}
