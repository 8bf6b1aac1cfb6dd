package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/page"
	"github.com/Zachkp/portfolio/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export the portfolio as a static site",
	Long: `Build writes index.html, the page assets and a copy of the media
directory into the output directory. The output directory is emptied first.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringP("output", "o", "public", "output directory")
	buildCmd.Flags().String("base-url", "", "absolute URL the site is hosted at; relative links when empty")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	store, err := loadContent()
	if err != nil {
		return err
	}
	effects, err := appConfig.Effects.ViewOptions()
	if err != nil {
		return err
	}
	renderer, err := page.New(effects, logger)
	if err != nil {
		return err
	}

	res, err := site.Build(store, renderer, content.NewMedia(appConfig.Content.MediaDir), site.Options{
		OutputDir: appConfig.Build.OutputDir,
		BaseURL:   appConfig.Build.BaseURL,
	}, logger)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Site built in %s (%d files)\n", res.OutputDir, res.Files)
	return nil
}
