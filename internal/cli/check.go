package cli

import (
	"fmt"

	pathtidy "github.com/Digital-Shane/path-tidy"
	"github.com/Digital-Shane/path-tidy/internal/config"
	"github.com/Digital-Shane/path-tidy/internal/tui/theme"

	"github.com/spf13/cobra"
)

var checkAsPath bool

var checkCmd = &cobra.Command{
	Use:   "check <value>",
	Short: "Check whether a filename or file path is legal on the target platform",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&checkAsPath, "path", false, "Treat the value as a whole file path instead of a single filename")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	opts, err := engineOptions(cfg)
	if err != nil {
		return err
	}

	value := args[0]
	var verr error
	if checkAsPath {
		verr = pathtidy.ValidateFilepath(value, opts...)
	} else {
		verr = pathtidy.ValidateFilename(value, opts...)
	}

	th := theme.Default()
	if verr != nil {
		fmt.Fprintln(cmd.OutOrStdout(), th.Failure(verr.Error()))
		return verr
	}
	fmt.Fprintln(cmd.OutOrStdout(), th.Success("legal"))
	return nil
}
