package cli

import (
	"fmt"

	pathtidy "github.com/Digital-Shane/path-tidy"
	"github.com/Digital-Shane/path-tidy/internal/config"
	"github.com/Digital-Shane/path-tidy/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var interactiveAsPath bool

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Check names interactively with a live verdict",
	Args:  cobra.NoArgs,
	RunE:  runInteractive,
}

func init() {
	interactiveCmd.Flags().BoolVar(&interactiveAsPath, "path", false, "Start in file-path mode instead of filename mode")
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	platform, err := pathtidy.ParsePlatform(cfg.Platform)
	if err != nil {
		return err
	}
	if platformFlag != "" {
		platform, err = pathtidy.ParsePlatform(platformFlag)
		if err != nil {
			return err
		}
	}

	model := tui.New(platform, interactiveAsPath, cfg.Replacement)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run interactive checker: %w", err)
	}
	return nil
}
