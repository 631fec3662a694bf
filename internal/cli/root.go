package cli

import (
	"os"

	pathtidy "github.com/Digital-Shane/path-tidy"
	"github.com/Digital-Shane/path-tidy/internal/config"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "path-tidy",
	Short: "A tool for checking and cleaning filenames and file paths",
	Long: `path-tidy checks whether a filename or file path is legal on a target
operating system (Linux, Windows, macOS, POSIX, or a conservative universal
rule set), and rewrites illegal values into a form every rule accepts.

Defaults for the platform, replacement text, and rule toggles can be
persisted with the config command and overridden per invocation with flags.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var (
	platformFlag string
	minLenFlag   int
	maxLenFlag   int
	noReserved   bool
)

func init() {
	// Global flags for all commands
	rootCmd.PersistentFlags().StringVarP(&platformFlag, "platform", "p", "", "Target platform (universal, auto, linux, windows, macos, posix)")
	rootCmd.PersistentFlags().IntVar(&minLenFlag, "min-len", 0, "Minimum accepted length in characters")
	rootCmd.PersistentFlags().IntVar(&maxLenFlag, "max-len", 0, "Maximum accepted length in characters (0 uses the platform default)")
	rootCmd.PersistentFlags().BoolVar(&noReserved, "no-reserved", false, "Skip reserved-name checking")
}

// engineOptions merges the persisted defaults with the command-line flags,
// flags winning.
func engineOptions(cfg *config.Config) ([]pathtidy.Option, error) {
	opts, err := cfg.EngineOptions()
	if err != nil {
		return nil, err
	}
	if platformFlag != "" {
		platform, err := pathtidy.ParsePlatform(platformFlag)
		if err != nil {
			return nil, err
		}
		opts = append(opts, pathtidy.WithPlatform(platform))
	}
	if minLenFlag > 0 {
		opts = append(opts, pathtidy.WithMinLength(minLenFlag))
	}
	if maxLenFlag > 0 {
		opts = append(opts, pathtidy.WithMaxLength(maxLenFlag))
	}
	if noReserved {
		opts = append(opts, pathtidy.WithReservedNameCheck(false))
	}
	return opts, nil
}
