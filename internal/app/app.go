// Package app wires together the data source, the optional file watcher and
// the HTTP server, and provides their lifecycle: create, start, stop.
package app

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/RafaelRangel0/Similar-Doctors/internal/adapters/disk"
	fsw "github.com/RafaelRangel0/Similar-Doctors/internal/adapters/fsnotify"
	"github.com/RafaelRangel0/Similar-Doctors/internal/adapters/web"
	"github.com/RafaelRangel0/Similar-Doctors/internal/ports"
	"github.com/gin-gonic/gin"
)

// DefaultAddr is where the server listens unless told otherwise.
const DefaultAddr = "127.0.0.1:5000"

// Serving modes reported by /api/health.
const (
	ModeDisk  = "disk"  // read the file on every request
	ModeWatch = "watch" // keep it in memory, reload on change
)

// Config holds initialization parameters for the App.
type Config struct {
	ProjectRoot string
	DataPath    string      // doctor list (default: <root>/data/doctors.json)
	Addr        string      // listen address (default: DefaultAddr)
	Watch       bool        // cache the data file and reload it on change
	Debug       bool        // gin debug mode
	Logger      *log.Logger // lifecycle messages (default: log.Default())
	AccessLog   io.Writer   // HTTP access log (default: os.Stdout)
}

// App is the top-level container wiring all components together.
type App struct {
	Config  Config
	Paths   *Paths
	Source  ports.DoctorSource
	Watched *WatchedSource // nil unless Config.Watch
	Server  *web.Server

	logger   *log.Logger
	stopOnce sync.Once
}

// New creates an App with all dependencies wired. Does not start services.
func New(cfg Config) (*App, error) {
	if cfg.ProjectRoot == "" {
		return nil, fmt.Errorf("project root required")
	}
	paths := NewPaths(cfg.ProjectRoot)
	cfg.DataPath = ResolveDataPath(cfg.ProjectRoot, cfg.DataPath)
	paths.Doctors = cfg.DataPath
	paths.DataDir = filepath.Dir(cfg.DataPath)
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.AccessLog == nil {
		cfg.AccessLog = os.Stdout
	}

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	a := &App{
		Config: cfg,
		Paths:  paths,
		logger: cfg.Logger,
	}

	var source ports.DoctorSource = disk.NewFileSource(cfg.DataPath)
	if cfg.Watch {
		watcher, err := fsw.NewWatcher()
		if err != nil {
			return nil, fmt.Errorf("init watcher: %w", err)
		}
		watched, err := NewWatchedSource(source, watcher, cfg.Logger)
		if err != nil {
			watcher.Stop()
			return nil, err
		}
		a.Watched = watched
		source = watched
	}
	a.Source = source

	a.Server = web.NewServer(source, web.Options{
		Mode:      a.Mode(),
		Logger:    cfg.Logger,
		AccessLog: cfg.AccessLog,
	})
	return a, nil
}

// Mode reports how the data file is served.
func (a *App) Mode() string {
	if a.Config.Watch {
		return ModeWatch
	}
	return ModeDisk
}

// Start begins watching (in watch mode) and serving.
func (a *App) Start() error {
	if !a.Paths.DataFileExists() {
		a.logger.Printf("[app] warning: %s not found; /api/doctors will fail until it exists", a.Paths.Doctors)
	}

	if a.Watched != nil {
		if err := a.Watched.Start(); err != nil {
			return err
		}
	}
	if err := a.Server.Start(a.Config.Addr); err != nil {
		if a.Watched != nil {
			a.Watched.Stop()
		}
		return err
	}
	return nil
}

// Stop shuts down the server, then the watcher. Idempotent.
func (a *App) Stop() error {
	var err error
	a.stopOnce.Do(func() {
		err = a.Server.Stop()
		if a.Watched != nil {
			if werr := a.Watched.Stop(); werr != nil && err == nil {
				err = werr
			}
		}
	})
	return err
}

// URL returns the base URL of the running server.
func (a *App) URL() string {
	return a.Server.URL()
}
