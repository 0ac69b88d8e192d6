package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/jozzs/svgcast/internal/api"
	"github.com/jozzs/svgcast/pkg/cache"
)

// serveCommand creates the serve command running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		listen    string
		redisAddr string
		noCache   bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP conversion API",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.serverCache(cmd.Context(), redisAddr, noCache)
			if err != nil {
				return err
			}
			defer store.Close()

			return c.runServer(cmd.Context(), listen, store)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", c.Config.Listen, "address to listen on")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "Redis address for a shared document cache (default: local file cache)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the document cache")

	return cmd
}

// serverCache picks the cache backend: Redis when requested, otherwise the
// local file cache.
func (c *CLI) serverCache(ctx context.Context, redisAddr string, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if redisAddr != "" {
		rc, err := cache.NewRedisCache(ctx, redisAddr)
		if err != nil {
			return nil, err
		}
		c.Logger.Infof("Using Redis cache at %s", redisAddr)
		return cache.Instrumented(rc, "document"), nil
	}
	return newCache(false), nil
}

// runServer starts the HTTP server and shuts it down gracefully when the
// context is cancelled.
func (c *CLI) runServer(ctx context.Context, listen string, store cache.Cache) error {
	server := &http.Server{
		Addr:              listen,
		Handler:           api.NewServer(c.Logger, store).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Infof("Listening on %s", listen)
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		c.Logger.Info("Server stopped")
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
