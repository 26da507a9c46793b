package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/ItsNotGoodName/x-webglass/internal/api"
	"github.com/ItsNotGoodName/x-webglass/internal/browser"
	"github.com/ItsNotGoodName/x-webglass/internal/build"
	"github.com/ItsNotGoodName/x-webglass/internal/bus"
	"github.com/ItsNotGoodName/x-webglass/internal/config"
	"github.com/ItsNotGoodName/x-webglass/internal/inject"
	"github.com/ItsNotGoodName/x-webglass/internal/shell"
	"github.com/ItsNotGoodName/x-webglass/pkg/sutureext"
	"github.com/danielgtaylor/huma/v2/humacli"
	"github.com/joho/godotenv"
	"github.com/k0kubun/pp"
	"github.com/phsym/console-slog"
)

type Options struct {
	Debug  bool   `doc:"enable debug"`
	Host   string `doc:"host to listen on" default:"127.0.0.1"`
	Port   int    `doc:"port to listen on" default:"8080"`
	Config string `doc:"config file" default:".x-webglass.yaml"`
}

func main() {
	godotenv.Load()

	cli := humacli.New(func(hooks humacli.Hooks, options *Options) {
		if options.Debug {
			InitLogger(slog.LevelDebug)
		} else {
			InitLogger(slog.LevelInfo)
		}

		// OnStop runs on the signal goroutine; the handoff below keeps
		// it from racing view construction in OnStart.
		var mu sync.Mutex
		var view *browser.View
		var stopped bool

		hooks.OnStart(func() {
			// The engine's event loop owns this thread until the window
			// closes.
			runtime.LockOSThread()

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			bus.SetContext(ctx)

			configFilePath, err := filepath.Abs(options.Config)
			if err != nil {
				log.Fatal(err)
			}

			store, err := config.NewStore(config.NewYAML(configFilePath))
			if err != nil {
				log.Fatal(err)
			}

			if err := config.Normalize(&store); err != nil {
				log.Fatal(err)
			}

			cfg, err := store.GetConfig()
			if err != nil {
				log.Fatal(err)
			}
			if options.Debug {
				pp.Println(cfg)
			}

			v := browser.NewView(browser.Config{
				Title:  cfg.Title,
				Width:  cfg.Width,
				Height: cfg.Height,
				Debug:  options.Debug,
			})
			defer v.Destroy()

			mu.Lock()
			view = v
			stopEarly := stopped
			mu.Unlock()
			if stopEarly {
				return
			}

			inject.Attach(v)

			super := sutureext.NewSimple("x-webglass")
			sutureext.Add(super, shell.NewChrome(cfg))
			sutureext.Add(super, api.NewServer(cfg, options.Host, options.Port))
			errC := super.ServeBackground(ctx)

			v.Navigate(cfg.URL)
			v.Run()

			cancel()
			if err := <-errC; err != nil && !errors.Is(err, context.Canceled) {
				slog.Error("Supervisor failed", "error", err)
			}
		})

		hooks.OnStop(func() {
			mu.Lock()
			stopped = true
			v := view
			mu.Unlock()

			if v != nil {
				v.Terminate()
			}
		})
	})

	cli.Root().Version = build.Current.Version

	cli.Run()
}

func InitLogger(level slog.Level) {
	slog.SetDefault(slog.New(console.NewHandler(os.Stderr, &console.HandlerOptions{
		Level: level,
	})))
}
