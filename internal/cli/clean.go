package cli

import (
	"fmt"

	pathtidy "github.com/Digital-Shane/path-tidy"
	"github.com/Digital-Shane/path-tidy/internal/config"

	"github.com/spf13/cobra"
)

var (
	cleanAsPath      bool
	cleanReplacement string
	cleanNoNormalize bool
	cleanVerify      bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean <value>",
	Short: "Rewrite a filename or file path into a legal form",
	Args:  cobra.ExactArgs(1),
	RunE:  runClean,
}

func init() {
	cleanCmd.Flags().BoolVar(&cleanAsPath, "path", false, "Treat the value as a whole file path instead of a single filename")
	cleanCmd.Flags().StringVarP(&cleanReplacement, "replacement", "r", "", "Replacement text for invalid characters")
	cleanCmd.Flags().BoolVar(&cleanNoNormalize, "no-normalize", false, "Keep '.', '..', and redundant separators as-is")
	cleanCmd.Flags().BoolVar(&cleanVerify, "verify", false, "Re-validate the result and fail on any residual violation")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	replacement := cfg.Replacement
	if cmd.Flags().Changed("replacement") {
		replacement = cleanReplacement
	}
	opts, err := engineOptions(cfg)
	if err != nil {
		return err
	}
	if cleanNoNormalize {
		opts = append(opts, pathtidy.WithNormalize(false))
	}
	if cleanVerify {
		opts = append(opts, pathtidy.WithValidateAfterSanitize(true))
	}

	value := args[0]
	var sanitized string
	if cleanAsPath {
		sanitized, err = pathtidy.SanitizeFilepath(value, replacement, opts...)
	} else {
		sanitized, err = pathtidy.SanitizeFilename(value, replacement, opts...)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), sanitized)
	return nil
}
