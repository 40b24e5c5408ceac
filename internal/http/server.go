package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/orgball2608/insta-feed-ingestor/internal/ingestor"
	"github.com/orgball2608/insta-feed-ingestor/internal/ratelimit"
	"github.com/orgball2608/insta-feed-ingestor/pkg/config"
	"github.com/orgball2608/insta-feed-ingestor/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	LC       fx.Lifecycle
	Config   *config.Config
	Logger   logger.Logger
	Ingestor ingestor.Client
}

// New builds the HTTP server and ties it to the fx lifecycle.
func New(opts Opts) *http.Server {
	if opts.Config.App.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	hc := opts.Config.HTTP
	limiter := ratelimit.NewInMemoryLimiter(hc.RateLimitRequests, hc.RateLimitPer, hc.RateLimitBurst)
	router := NewRouter(NewHandler(opts.Ingestor, opts.Logger), limiter)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", opts.Config.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log := opts.Logger.WithComponent("HTTPServer")
	opts.LC.Append(fx.Hook{
		OnStart: func(context.Context) error {
			log.Info("Starting server", "addr", srv.Addr)
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("Server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Stopping server")
			return srv.Shutdown(ctx)
		},
	})

	return srv
}

var Module = fx.Module("http",
	fx.Provide(New),
	fx.Invoke(func(*http.Server) {}),
)
