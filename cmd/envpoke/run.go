package main

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vertti/envpoke/pkg/check"
	"github.com/vertti/envpoke/pkg/envcheck"
	"github.com/vertti/envpoke/pkg/envfile"
	"github.com/vertti/envpoke/pkg/output"
	"github.com/vertti/envpoke/pkg/requirements"
)

var (
	// ErrCheckFailed is returned when one or more variables are missing or empty.
	ErrCheckFailed = errors.New("check failed")
	// ErrUsage is returned when the command line has the wrong number of arguments.
	ErrUsage = errors.New("invalid usage")
)

type pokeOptions struct {
	RequiredFile string
	EnvFile      string
	Check        envcheck.Options
}

// pokeDeps carries everything poke reads from the outside world.
type pokeDeps struct {
	Requirements requirements.FileSystem
	EnvFile      envfile.FileSystem
	Env          envcheck.Vars // process environment snapshot
	Out          output.Printer
}

// poke loads the required names and the env file, checks every name against
// the merged mapping and prints the report. It returns ErrCheckFailed if any
// variable is missing or empty.
func poke(opts pokeOptions, deps pokeDeps) error {
	names, err := requirements.Load(deps.Requirements, opts.RequiredFile)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{"file": opts.RequiredFile, "count": len(names)}).Debug("Loaded requirements")

	file, err := envfile.Load(deps.EnvFile, opts.EnvFile)
	switch {
	case errors.Is(err, envfile.ErrNotFound):
		deps.Out.Notice("No env file found at %s, using process environment only", opts.EnvFile)
	case err != nil:
		return fmt.Errorf("failed to load env file %s: %w", opts.EnvFile, err)
	default:
		log.WithFields(log.Fields{"file": opts.EnvFile, "keys": file.Len()}).Debug("Loaded env file")
	}

	vars := envcheck.Merge(deps.Env, file)
	log.WithField("vars", len(vars)).Debug("Merged environment")

	deps.Out.Header(len(names))
	results := envcheck.CheckAll(names, vars, opts.Check)
	deps.Out.Results(results)

	failing := check.CountFailing(results)
	deps.Out.Summary(failing)

	if failing > 0 {
		return fmt.Errorf("%w: %d problem(s)", ErrCheckFailed, failing)
	}
	return nil
}
