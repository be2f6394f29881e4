package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vertti/envpoke/pkg/envcheck"
	"github.com/vertti/envpoke/pkg/envfile"
	"github.com/vertti/envpoke/pkg/output"
	"github.com/vertti/envpoke/pkg/requirements"
)

const defaultEnvFile = ".env"

var (
	hideValue bool
	maskValue bool
	noColor   bool
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "envpoke <required_vars_file> [env_file]",
	Short: "Check that required environment variables are set and non-empty",
	Long: `envpoke reads a list of required variable names from a JSON or YAML file
and checks each one against the process environment, overlaid by an optional
KEY=VALUE env file (default .env). Values from the env file win.

The exit status is 0 when every variable is set to a non-blank value and 1
otherwise.`,
	Version:           Version,
	Args:              requireArgs,
	PersistentPreRunE: setup,
	RunE:              runPoke,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func init() {
	rootCmd.Flags().BoolVar(&hideValue, "hide-value", false, "don't show values in output")
	rootCmd.Flags().BoolVar(&maskValue, "mask-value", false, "show masked values (first/last 3 chars)")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging on stderr")
}

func requireArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.MinimumNArgs(1)(cmd, args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return nil
}

func setup(cmd *cobra.Command, _ []string) error {
	if noColor {
		output.DisableColor()
	}
	setupLogging(cmd.ErrOrStderr(), verbose, os.Getenv(logLevelEnv))
	return nil
}

func runPoke(cmd *cobra.Command, args []string) error {
	opts := pokeOptions{
		RequiredFile: args[0],
		EnvFile:      defaultEnvFile,
		Check: envcheck.Options{
			HideValue: hideValue,
			MaskValue: maskValue,
		},
	}
	if len(args) > 1 {
		opts.EnvFile = args[1]
	}

	deps := pokeDeps{
		Requirements: &requirements.RealFileSystem{},
		EnvFile:      &envfile.RealFileSystem{},
		Env:          envcheck.Snapshot(os.Environ()),
		Out:          output.Printer{W: cmd.OutOrStdout()},
	}

	return poke(opts, deps)
}
