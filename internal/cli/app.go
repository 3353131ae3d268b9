package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/Skotchmaster/astrion_panel/internal/dashboard"
	"github.com/Skotchmaster/astrion_panel/internal/models"
	"github.com/Skotchmaster/astrion_panel/internal/panelclient"
	"github.com/Skotchmaster/astrion_panel/internal/query"
	"github.com/Skotchmaster/astrion_panel/internal/repo"
	"github.com/Skotchmaster/astrion_panel/internal/service"
	"github.com/Skotchmaster/astrion_panel/internal/transport"
	"github.com/Skotchmaster/astrion_panel/pkg/config"
)

type optionsFunc func(ctx context.Context) (transport.Options, error)

// App is the state one panelctl process keeps: the dashboard with its cache and
// favorites. The shell reuses it for every line it runs.
type App struct {
	cfg    config.Config
	logger *slog.Logger

	url   string
	local bool

	dash    *dashboard.Dashboard
	options optionsFunc

	lastFailed  []string
	historyFile string
}

func NewApp(cfg config.Config, logger *slog.Logger) *App {
	return &App{cfg: cfg, logger: logger, url: cfg.PanelURL, historyFile: defaultHistoryFile()}
}

func localOptions(context.Context) (transport.Options, error) {
	return transport.Options{Categories: models.Categories, Roles: models.Roles, Statuses: models.Statuses}, nil
}

func (a *App) connect() error {
	if a.dash != nil {
		return nil
	}
	cache, err := query.New(a.cfg.QueryCacheSize, a.cfg.QueryStaleTime)
	if err != nil {
		return err
	}

	if a.local {
		var products []models.Product
		var users []models.User
		if a.cfg.SeedData {
			products, users = repo.SeedProducts(), repo.SeedUsers()
		}
		r := repo.NewMemoryRepo(products, users)
		rt := service.Runtime{Latency: a.cfg.SimulatedLatency}
		a.dash = dashboard.New(&service.CatalogService{Repo: r, Runtime: rt}, &service.UserService{Repo: r, Runtime: rt}, cache)
		a.options = localOptions
		a.logger.Debug("panelctl_connected", "backend", "local")
		return nil
	}

	if a.url == "" {
		return fmt.Errorf("no panel url: pass --url or set PANEL_URL")
	}
	client := panelclient.New(a.url, 0)
	a.dash = dashboard.New(client, client, cache)
	a.options = client.Options
	a.logger.Debug("panelctl_connected", "backend", a.url)
	return nil
}

func (a *App) Options(ctx context.Context) (transport.Options, error) {
	return query.Fetch(ctx, a.dash.Cache, query.Key{"options"}, func(ctx context.Context) (transport.Options, error) {
		return a.options(ctx)
	})
}

func printf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
