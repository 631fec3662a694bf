package cli

import (
	"fmt"

	"github.com/Digital-Shane/path-tidy/internal/config"

	"github.com/spf13/cobra"
)

var (
	cfgPlatform    string
	cfgReplacement string
	cfgReserved    bool
	cfgNormalize   bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or update the persisted CLI defaults",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&cfgPlatform, "set-platform", "", "Persist the default target platform")
	configCmd.Flags().StringVar(&cfgReplacement, "set-replacement", "", "Persist the default replacement text")
	configCmd.Flags().BoolVar(&cfgReserved, "set-reserved", true, "Persist whether reserved names are checked")
	configCmd.Flags().BoolVar(&cfgNormalize, "set-normalize", true, "Persist whether paths are normalized during clean")
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	changed := false
	if cmd.Flags().Changed("set-platform") {
		cfg.Platform = cfgPlatform
		changed = true
	}
	if cmd.Flags().Changed("set-replacement") {
		cfg.Replacement = cfgReplacement
		changed = true
	}
	if cmd.Flags().Changed("set-reserved") {
		cfg.CheckReserved = cfgReserved
		changed = true
	}
	if cmd.Flags().Changed("set-normalize") {
		cfg.Normalize = cfgNormalize
		changed = true
	}

	if changed {
		// Reject unknown platform tags before persisting them.
		if _, err := cfg.EngineOptions(); err != nil {
			return err
		}
		if err := cfg.Save(); err != nil {
			return err
		}
	}

	path, err := config.ConfigPath()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "config: %s\n", path)
	fmt.Fprintf(out, "platform:       %s\n", cfg.Platform)
	fmt.Fprintf(out, "replacement:    %q\n", cfg.Replacement)
	fmt.Fprintf(out, "check_reserved: %t\n", cfg.CheckReserved)
	fmt.Fprintf(out, "normalize:      %t\n", cfg.Normalize)
	return nil
}
