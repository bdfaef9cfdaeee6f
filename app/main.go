package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/themeswitch/app/server"
	"github.com/umputun/themeswitch/app/store"
)

var opts struct {
	DB string `short:"d" long:"db" env:"THEMESWITCH_DB" default:"themeswitch.db" description:"database URL (sqlite file or postgres://...)"`

	Server struct {
		Address     string        `long:"address" env:"ADDRESS" default:":8585" description:"server listen address"`
		ReadTimeout time.Duration `long:"read-timeout" env:"READ_TIMEOUT" default:"5s" description:"read timeout"`
		BaseURL     string        `long:"base-url" env:"BASE_URL" description:"base URL path for reverse proxy (e.g., /themes)"`
	} `group:"server" namespace:"server" env-namespace:"THEMESWITCH_SERVER"`

	Cache struct {
		MaxKeys int `long:"max-keys" env:"MAX_KEYS" default:"1000" description:"max cached preferences, 0 disables cache"`
	} `group:"cache" namespace:"cache" env-namespace:"THEMESWITCH_CACHE"`

	UI struct {
		Lang  string `long:"lang" env:"LANG" default:"en" description:"default label language (en, ru)"`
		Title string `long:"title" env:"TITLE" default:"themeswitch" description:"page title"`
	} `group:"ui" namespace:"ui" env-namespace:"THEMESWITCH_UI"`

	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `long:"version" description:"show version and exit"`
}

var revision = "unknown"

func main() {
	fmt.Printf("themeswitch %s\n", revision)

	p := flags.NewParser(&opts, flags.PassDoubleDash|flags.HelpFlag)
	if _, err := p.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			p.WriteHelp(os.Stderr)
			os.Exit(2)
		}
		fmt.Printf("%v\n", err)
		os.Exit(1)
	}

	if opts.Version {
		os.Exit(0)
	}

	setupLogs(opts.Debug)

	defer func() {
		if x := recover(); x != nil {
			log.Printf("[WARN] run time panic:\n%v", x)
			panic(x)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	signals(cancel)

	if err := run(ctx); err != nil {
		log.Printf("[ERROR] failed: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	baseURL, err := validateBaseURL(opts.Server.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}

	log.Printf("[INFO] starting themeswitch server on %s", opts.Server.Address)

	prefs, err := makeStore(ctx, opts.DB, opts.Cache.MaxKeys)
	if err != nil {
		return err
	}
	defer closeStore(prefs)

	srv, err := server.New(prefs, server.Config{
		Address:     opts.Server.Address,
		ReadTimeout: opts.Server.ReadTimeout,
		Version:     revision,
		BaseURL:     baseURL,
		Lang:        opts.UI.Lang,
		Title:       opts.UI.Title,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// makeStore opens the database and wraps it with a cache unless maxKeys is 0.
func makeStore(ctx context.Context, dbURL string, maxKeys int) (store.Interface, error) {
	db, err := store.New(ctx, dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}
	if maxKeys <= 0 {
		return db, nil
	}
	cached, err := store.NewCached(db, maxKeys)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize cache: %w", err)
	}
	log.Printf("[DEBUG] preference cache enabled, max keys %d", maxKeys)
	return cached, nil
}

// closeStore reports cache usage and closes the store.
func closeStore(st store.Interface) {
	if cached, ok := st.(*store.Cached); ok {
		stats := cached.Stats()
		log.Printf("[DEBUG] preference cache: hits %d, misses %d, keys %d", stats.Hits, stats.Misses, stats.Keys)
	}
	if err := st.Close(); err != nil {
		log.Printf("[WARN] failed to close store: %v", err)
	}
}

// validateBaseURL normalizes base URL: adds leading slash, strips trailing one.
func validateBaseURL(u string) (string, error) {
	if u == "" || u == "/" {
		return "", nil
	}
	if strings.ContainsAny(u, "?#") || strings.Contains(u, "://") {
		return "", fmt.Errorf("base URL must be a path, got %q", u)
	}
	if !strings.HasPrefix(u, "/") {
		u = "/" + u
	}
	return strings.TrimRight(u, "/"), nil
}

func setupLogs(debug bool) io.Writer {
	log.Setup(log.Msec)
	if debug {
		log.Setup(log.Debug, log.CallerFunc, log.CallerPkg, log.CallerFile)
	}
	return os.Stdout
}

func signals(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	go func() {
		stacktrace := make([]byte, 8192)
		for sig := range sigChan {
			switch sig {
			case syscall.SIGQUIT:
				length := runtime.Stack(stacktrace, true)
				fmt.Println(string(stacktrace[:length]))
			case syscall.SIGTERM, syscall.SIGINT:
				cancel()
			}
		}
	}()
	signal.Notify(sigChan, syscall.SIGQUIT, syscall.SIGTERM, syscall.SIGINT)
}
