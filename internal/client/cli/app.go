package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/devhub/internal/client/api"
	"github.com/dmitrijs2005/devhub/internal/client/config"
	"github.com/dmitrijs2005/devhub/internal/client/fetch"
	"github.com/dmitrijs2005/devhub/internal/client/localstore"
	"github.com/dmitrijs2005/devhub/internal/client/session"
	"github.com/dmitrijs2005/devhub/internal/logging"

	_ "modernc.org/sqlite"
)

type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

type App struct {
	config  *config.Config
	client  api.Client
	session *session.Session

	projects *fetch.ProjectFeed
	users    *fetch.UserDirectory
	chats    *fetch.ConversationList
	thread   *fetch.MessageThread

	reader *bufio.Reader
	log    logging.Logger
	db     *sql.DB

	mu   sync.Mutex
	mode Mode
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := localstore.InitDatabase(ctx, cfg.DatabaseFile)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	store := localstore.NewSQLiteStore(db)
	client := api.NewHTTPClient(cfg.APIBaseURL, store, log, cfg.RequestTimeout)
	sess := session.New(client, store, log)

	return &App{
		config:   cfg,
		client:   client,
		session:  sess,
		projects: fetch.NewProjectFeed(client),
		users:    fetch.NewUserDirectory(client),
		chats:    fetch.NewConversationList(client),
		thread:   fetch.NewMessageThread(client),
		reader:   bufio.NewReader(os.Stdin),
		log:      log,
		db:       db,
	}, nil
}

func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.log.Info(ctx, "connectivity changed", "mode", mode)
	}
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()

	if err := a.session.Bootstrap(ctx); err != nil {
		a.log.Error(ctx, "session bootstrap failed", "error", err)
	}

	go a.StartHealthWatcher(ctx, a.config.HealthCheckInterval)

	a.Root(ctx)
}

// StartHealthWatcher periodically probes GET /health and flips the
// online/offline indicator accordingly. It returns when ctx is done.
func (a *App) StartHealthWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			probeCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			_, err := a.client.Health(probeCtx)
			cancel()

			if err != nil {
				a.setMode(ctx, ModeOffline)
			} else {
				a.setMode(ctx, ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
