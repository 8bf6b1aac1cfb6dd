package cmd

import (
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/page"
	"github.com/Zachkp/portfolio/internal/server"
	"github.com/Zachkp/portfolio/internal/sse"
	"github.com/Zachkp/portfolio/internal/watch"
)

// heartbeat keeps idle live-reload streams open through proxies.
const heartbeat = 15 * time.Second

var watchChanges bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio over HTTP",
	Long: `Serve renders the portfolio on every request.

With --watch the content document and media directory are watched; on change
the content is reloaded and open pages refresh themselves.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntP("port", "p", 8080, "port to listen on")
	serveCmd.Flags().BoolVarP(&watchChanges, "watch", "w", false, "reload content and media on change")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
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

	var broker *sse.Broker
	if watchChanges {
		broker = sse.NewBroker(heartbeat, logger)
	}
	srv, err := server.New(store, renderer, server.Options{
		Mode:   appConfig.HTTP.Mode,
		Media:  content.NewMedia(appConfig.Content.MediaDir),
		Broker: broker,
	}, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return srv.Run(ctx, appConfig.HTTP.Address(), appConfig.HTTP.ShutdownTimeout)
	})

	if watchChanges {
		w := watch.New([]string{appConfig.Content.Path, appConfig.Content.MediaDir}, watch.DefaultDebounce, logger)
		g.Go(func() error {
			err := w.Run(ctx, func() { reload(srv) })
			if errors.Is(err, watch.ErrNothingToWatch) {
				logger.Warn("live reload disabled: no content file or media directory on disk")
				return nil
			}
			return err
		})
	}

	return g.Wait()
}

// reload swaps in a fresh snapshot. A document that no longer parses keeps
// the previous snapshot live.
func reload(srv *server.Server) {
	store, err := loadContent()
	if err != nil {
		logger.Error("content reload failed", zap.Error(err))
		return
	}
	srv.Swap(store)
	logger.Info("content reloaded", zap.String("source", store.Source), zap.Int("gaps", len(store.Gaps())))
}
