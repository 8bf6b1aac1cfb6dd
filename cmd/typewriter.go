package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/effects/typewriter"
)

var timelineJSON bool

var typewriterCmd = &cobra.Command{
	Use:   "typewriter",
	Short: "Print the typewriter timeline for the configured titles",
	Long: `Typewriter prints every frame of one full typewriter cycle over the
content's titles: the visible text and how long it is held. The web page plays
exactly this timeline in a loop.`,
	RunE: runTypewriter,
}

func init() {
	typewriterCmd.Flags().BoolVar(&timelineJSON, "json", false, "print frames as JSON")
	rootCmd.AddCommand(typewriterCmd)
}

func runTypewriter(cmd *cobra.Command, _ []string) error {
	store, err := loadContent()
	if err != nil {
		return err
	}
	effects, err := appConfig.Effects.ViewOptions()
	if err != nil {
		return err
	}
	frames, err := typewriter.Timeline(store.Personal.Titles, effects.Typewriter)
	if err != nil {
		return fmt.Errorf("titles: %w", err)
	}
	return writeTimeline(cmd.OutOrStdout(), frames, timelineJSON)
}

type timelineFrame struct {
	Index  int    `json:"index"`
	Text   string `json:"text"`
	HoldMs int64  `json:"hold_ms"`
}

func writeTimeline(w io.Writer, frames []typewriter.Frame, asJSON bool) error {
	if asJSON {
		out := make([]timelineFrame, len(frames))
		for i, f := range frames {
			out[i] = timelineFrame{Index: f.Index, Text: f.Text, HoldMs: f.Hold.Milliseconds()}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TITLE\tHOLD\tTEXT")
	for _, f := range frames {
		fmt.Fprintf(tw, "%d\t%s\t%q\n", f.Index, f.Hold, f.Text)
	}
	fmt.Fprintf(tw, "\ncycle: %s over %d frames\n", typewriter.CycleDuration(frames), len(frames))
	return tw.Flush()
}
