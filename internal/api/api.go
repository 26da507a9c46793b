// Package api exposes a small local control surface that mirrors the
// window buttons and reports shell state.
package api

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/ItsNotGoodName/x-webglass/internal/browser"
	"github.com/ItsNotGoodName/x-webglass/internal/build"
	"github.com/ItsNotGoodName/x-webglass/internal/bus"
	"github.com/ItsNotGoodName/x-webglass/internal/config"
	"github.com/ItsNotGoodName/x-webglass/internal/core"
	"github.com/ItsNotGoodName/x-webglass/internal/shell"
	"github.com/ItsNotGoodName/x-webglass/pkg/chiext"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Server struct {
	cfg  config.Config
	host string
	port int

	mu       sync.Mutex
	loadDone bool
	loadOK   bool
}

func NewServer(cfg config.Config, host string, port int) *Server {
	s := &Server{
		cfg:  cfg,
		host: host,
		port: port,
	}

	bus.Subscribe("api.Server", func(ctx context.Context, event browser.PageLoaded) error {
		s.mu.Lock()
		s.loadDone = true
		s.loadOK = event.OK
		s.mu.Unlock()
		return nil
	})

	return s
}

func (s *Server) String() string {
	return "api.Server"
}

func (s *Server) Serve(ctx context.Context) error {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(chiext.Logger())

	humaAPI := humachi.New(router, huma.DefaultConfig("x-webglass", build.Current.Version))
	s.register(humaAPI)

	server := &http.Server{
		Addr:    core.Address(s.host, s.port),
		Handler: router,
	}

	errC := make(chan error, 1)
	go func() { errC <- server.ListenAndServe() }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
		<-errC
		return ctx.Err()
	case err := <-errC:
		return err
	}
}

type StateBody struct {
	UUID       string  `json:"uuid" doc:"Shell instance id"`
	Version    string  `json:"version" doc:"Build version"`
	URL        string  `json:"url" doc:"Navigation target"`
	Frameless  bool    `json:"frameless" doc:"Custom frameless chrome enabled"`
	Opacity    float64 `json:"opacity" doc:"Compositor window opacity"`
	PageLoaded bool    `json:"page_loaded" doc:"Page reported a load result"`
	PageLoadOK bool    `json:"page_load_ok" doc:"The reported load result"`
}

type StateOutput struct {
	Body StateBody
}

func (s *Server) register(humaAPI huma.API) {
	huma.Register(humaAPI, huma.Operation{
		OperationID: "get-state",
		Method:      http.MethodGet,
		Path:        "/api/state",
		Summary:     "Get shell state",
	}, func(ctx context.Context, input *struct{}) (*StateOutput, error) {
		s.mu.Lock()
		loadDone, loadOK := s.loadDone, s.loadOK
		s.mu.Unlock()

		return &StateOutput{
			Body: StateBody{
				UUID:       s.cfg.UUID,
				Version:    build.Current.Version,
				URL:        s.cfg.URL,
				Frameless:  s.cfg.Frameless,
				Opacity:    s.cfg.Opacity,
				PageLoaded: loadDone,
				PageLoadOK: loadOK,
			},
		}, nil
	})

	actions := []struct {
		operationID string
		path        string
		summary     string
		action      shell.WindowAction
	}{
		{"window-minimize", "/api/window/minimize", "Minimize the window", shell.ActionMinimize},
		{"window-maximize", "/api/window/maximize", "Toggle window maximize", shell.ActionMaximize},
		{"window-close", "/api/window/close", "Close the window", shell.ActionClose},
	}
	for _, action := range actions {
		action := action
		huma.Register(humaAPI, huma.Operation{
			OperationID:   action.operationID,
			Method:        http.MethodPost,
			Path:          action.path,
			Summary:       action.summary,
			DefaultStatus: http.StatusAccepted,
		}, func(ctx context.Context, input *struct{}) (*struct{}, error) {
			bus.Publish(shell.Command{Action: action.action})
			return &struct{}{}, nil
		})
	}
}
