package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/tui"
)

var (
	tuiLogFile string
	tuiStyle   string
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Show the portfolio in the terminal",
	Long: `Tui renders the portfolio in the terminal with the same effects as the
web page: typed titles, sections revealed as they scroll in, the active
section highlighted in the header and an orb that follows the mouse.

Keys: arrows/pgup/pgdown scroll, 1-5 jump to a section, q quits.`,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().StringVar(&tuiLogFile, "log", "", "write logs to this file")
	tuiCmd.Flags().StringVar(&tuiStyle, "style", "dark", "glamour style for the about text (dark, light, notty)")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	store, err := loadContent()
	if err != nil {
		return err
	}
	effects, err := appConfig.Effects.ViewOptions()
	if err != nil {
		return err
	}

	opts := tui.DefaultOptions()
	opts.View = effects
	opts.Style = tuiStyle
	m, err := tui.New(store, content.NewMedia(appConfig.Content.MediaDir), opts, logger)
	if err != nil {
		return err
	}
	defer m.Close()

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(cmd.Context()),
	)
	_, err = p.Run()
	return err
}
