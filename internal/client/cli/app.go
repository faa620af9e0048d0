package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/safetytracker/tracker/internal/client/client"
	"github.com/safetytracker/tracker/internal/client/config"
	"github.com/safetytracker/tracker/internal/client/guard"
	"github.com/safetytracker/tracker/internal/client/pages"
	"github.com/safetytracker/tracker/internal/client/repositories/credentials"
	"github.com/safetytracker/tracker/internal/client/services"
	"github.com/safetytracker/tracker/internal/client/session"
	"github.com/safetytracker/tracker/internal/common"
	"github.com/safetytracker/tracker/internal/filex"
	"github.com/safetytracker/tracker/internal/logging"
)

// maxRedirects bounds how many queued navigations one command may trigger.
const maxRedirects = 3

type App struct {
	config   *config.Config
	db       *sql.DB
	session  *session.Store
	auth     services.AuthService
	stories  pages.StoryAPI
	authors  pages.AuthorAPI
	checkins pages.CheckInAPI
	logger   logging.Logger
	reader   *bufio.Reader
	out      io.Writer

	mu          sync.Mutex
	current     mountedPage
	pending     string
	unsubscribe func()
}

// NewApp opens the local database, builds the backend clients and the
// session store, and returns an App reading from stdin.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	dbPath, err := filex.EnsureParentDir(c.DBPath)
	if err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, dbPath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", c.DBPath, "error", err.Error())
		return nil, err
	}

	store := session.NewStore(credentials.NewStore(db), services.NewTokenIdentityResolver(), logger)
	api := client.NewHTTPClient(c.BaseURL, c.RequestTimeout, store, logger)
	as := services.NewAuthService(client.NewAuthClient(api), services.NewTokenIdentityResolver(), store, logger)

	a := newApp(store, as, client.NewStoryClient(api), client.NewAuthorClient(api), client.NewCheckInClient(api),
		logger, os.Stdin, os.Stdout)
	a.config = c
	a.db = db
	return a, nil
}

func newApp(store *session.Store, as services.AuthService, stories pages.StoryAPI, authors pages.AuthorAPI,
	checkins pages.CheckInAPI, logger logging.Logger, in io.Reader, out io.Writer) *App {
	a := &App{
		session:  store,
		auth:     as,
		stories:  stories,
		authors:  authors,
		checkins: checkins,
		logger:   logger,
		reader:   bufio.NewReader(in),
		out:      out,
	}
	a.unsubscribe = store.Subscribe(a.onSession)
	return a
}

// Run resolves the persisted session in the background and runs the REPL
// until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	go a.session.Resolve(ctx)

	fmt.Fprintln(a.out, "Welcome to Safety Tracker (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

// Close unmounts the current page, disposes the session store and closes
// the database.
func (a *App) Close() {
	a.mu.Lock()
	if a.current != nil {
		a.current.Unmount()
		a.current = nil
	}
	a.mu.Unlock()

	if a.unsubscribe != nil {
		a.unsubscribe()
	}
	a.session.Close()
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn(context.Background(), "closing database", "error", err.Error())
		}
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.Snapshot().SignedIn()
}

func (a *App) getStatus() string {
	snap := a.session.Snapshot()
	switch {
	case snap.Resolving:
		return "(loading...)"
	case snap.User != nil:
		return fmt.Sprintf("(Welcome, %s)", snap.User.Username)
	default:
		return ""
	}
}

// onSession drops the mounted page once nobody is signed in, so stale
// entity state cannot be acted on.
func (a *App) onSession(snap session.Session) {
	if snap.Resolving || snap.User != nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.current != nil {
		a.current.Unmount()
		a.current = nil
	}
}

// Navigate queues path to be mounted once the running command returns.
func (a *App) Navigate(path string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pending = path
}

func (a *App) takePending() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	p := a.pending
	a.pending = ""
	return p
}

// afterCommand mounts whatever the last command navigated to.
func (a *App) afterCommand(ctx context.Context) {
	for i := 0; i < maxRedirects; i++ {
		path := a.takePending()
		if path == "" {
			return
		}
		a.logger.Debug(ctx, "navigate", "path", path)
		_ = a.open(ctx, path)
	}
}

func (a *App) open(ctx context.Context, path string) error {
	switch {
	case path == common.SignInPath:
		a.mount(nil)
		fmt.Fprintln(a.out, "Please log in to continue (commands: login, register)")
		return nil
	case path == pages.StoriesPath:
		return a.Stories(ctx)
	case path == pages.AuthorsPath:
		return a.Authors(ctx)
	case path == pages.CheckInsPath:
		return a.CheckIns(ctx)
	}

	for prefix, open := range map[string]func(context.Context, []string) error{
		pages.StoriesPath + "/":  a.Story,
		pages.AuthorsPath + "/":  a.Author,
		pages.CheckInsPath + "/": a.CheckIn,
	} {
		if rest, ok := strings.CutPrefix(path, prefix); ok {
			return open(ctx, []string{rest})
		}
	}
	fmt.Fprintln(a.out, "Page not found:", path)
	return nil
}

// protect runs render behind a fresh access guard.
func (a *App) protect(ctx context.Context, render func(ctx context.Context) error) error {
	g := guard.New(a.session, a, common.SignInPath)
	if g.Evaluate() == guard.StateResolving {
		fmt.Fprintln(a.out, "Loading...")
	}
	_, err := g.Run(ctx, render)
	return err
}

// mount replaces the current page, unmounting the previous one.
func (a *App) mount(p mountedPage) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.current != nil && a.current != p {
		a.current.Unmount()
	}
	a.current = p
}

func (a *App) currentPage() mountedPage {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current
}

func (a *App) report(err error) {
	fmt.Fprintln(a.out, "Error:", pages.Message(err))
}

func parseID(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("missing id")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", args[0])
	}
	return id, nil
}
