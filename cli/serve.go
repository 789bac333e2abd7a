package cli

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jungle-app/jungle-booking/api"
	bk "github.com/jungle-app/jungle-booking/booking"
	"github.com/jungle-app/jungle-booking/catalog"
	"github.com/jungle-app/jungle-booking/config"
	"github.com/jungle-app/jungle-booking/database"
	"github.com/jungle-app/jungle-booking/profile"
	"github.com/jungle-app/jungle-booking/recent"
	"github.com/jungle-app/jungle-booking/supabase"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// AppModule wires the API from the environment. Missing backend settings
// degrade to unconfigured adapters instead of failing startup.
var AppModule = fx.Options(
	fx.Provide(
		config.Load,
		newLogger,
		newDatabase,
		newSupabaseClient,
		newRecentStore,
		newCatalog,
		newBookingService,
		newRecentService,
		newProfileService,
		newRouter,
	),
)

func newLogger(cfg config.Config) *slog.Logger {
	return config.NewLogger(cfg.Log)
}

func newDatabase(lc fx.Lifecycle, cfg config.Config) database.DB {
	db, closeDB := database.Open(context.Background(), cfg.DB)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			closeDB()
			return nil
		},
	})

	return db
}

func newSupabaseClient(cfg config.Config) supabase.SupabaseClient {
	return supabase.New(cfg.Supabase)
}

// newRecentStore prefers the SQLite file and falls back to memory, so the
// list survives restarts only when the file can be opened.
func newRecentStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) recent.Store {
	path, err := cfg.Local.ResolveStorePath()
	if err != nil {
		logger.Warn("using in-memory recently viewed store", "err", err)
		return recent.NewMemoryStore()
	}

	store, err := recent.OpenSQLiteStore(path)
	if err != nil {
		logger.Warn("using in-memory recently viewed store", "path", path, "err", err)
		return recent.NewMemoryStore()
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return store.Close()
		},
	})

	return store
}

func newCatalog(db database.DB) *catalog.Catalog {
	return catalog.NewCatalog(catalog.NewRepository(db))
}

func newBookingService(cfg config.Config, db database.DB) (*bk.Service, error) {
	loc, err := cfg.Booking.Location()
	if err != nil {
		return nil, err
	}

	return bk.NewService(bk.NewRepository(db), loc, cfg.Booking.SessionWait, cfg.Booking.SessionPollInterval), nil
}

func newRecentService(store recent.Store) *recent.Service {
	return recent.NewService(store)
}

func newProfileService(cfg config.Config, db database.DB, client supabase.SupabaseClient) *profile.Service {
	return profile.NewService(profile.NewRepository(db), client, cfg.Supabase.AvatarBucket)
}

func newRouter(
	cfg config.Config,
	logger *slog.Logger,
	client supabase.SupabaseClient,
	catalogService *catalog.Catalog,
	bookings *bk.Service,
	recentService *recent.Service,
	profiles *profile.Service,
) *gin.Engine {
	if cfg.Server.GinMode != "" {
		gin.SetMode(cfg.Server.GinMode)
	}

	return api.NewRouter(api.RouterDeps{
		CORS:     cfg.CORS,
		Logger:   logger,
		Client:   client,
		Catalog:  catalogService,
		Bookings: bookings,
		Recent:   recentService,
		Profile:  profiles,
	})
}

func startServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			listener, err := net.Listen("tcp", server.Addr)
			if err != nil {
				return err
			}

			logger.Info("starting server", "address", server.Addr, "mode", gin.Mode())

			go func() {
				if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("server stopped unexpectedly", "err", err)
					shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping server")
			return server.Shutdown(ctx)
		},
	})
}

func newApp(opts ...fx.Option) *fx.App {
	return fx.New(
		AppModule,
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger.With("component", "fx")}
		}),
		fx.Invoke(startServer),
		fx.Options(opts...),
	)
}

func runServe(cmd *cobra.Command, _ []string) error {
	app := newApp()

	if err := app.Start(commandContext(cmd)); err != nil {
		return err
	}

	<-app.Done()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return app.Stop(ctx)
}
