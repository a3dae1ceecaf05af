package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"tender-dapp/internal/server"
	"tender-dapp/utils"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Connect the wallet and serve the tender panels over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, err := loadApp(ctx, cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			if _, err := a.Service.Connect(ctx); err != nil {
				// the list is reloaded on the next request with ?reload=true
				utils.Warn("serve: initial tender load failed", map[string]any{"error": err.Error()})
			}

			gin.SetMode(gin.ReleaseMode)
			srv := &http.Server{
				Addr:              a.Config.ListenAddr(),
				Handler:           server.SetupRouter(a.Service, a.Hub),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				utils.Info("serve: starting tender server", map[string]any{"addr": srv.Addr})
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			utils.Info("serve: shutting down", nil)
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
}
