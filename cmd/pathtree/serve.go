package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/vitalvas/pathtree/httptree"
	"github.com/vitalvas/pathtree/routefile"
	"github.com/vitalvas/pathtree/tree"
	"github.com/vitalvas/pathtree/treemetrics"
)

type echoResponse struct {
	Handler  string            `json:"handler"`
	Method   string            `json:"method"`
	Ints     map[string]int    `json:"ints,omitempty"`
	Strings  map[string]string `json:"strings,omitempty"`
	Values   map[string]any    `json:"values,omitempty"`
	Wildcard []string          `json:"wildcard,omitempty"`
}

// echoHandler answers with the handler name and the params of the request.
func echoHandler(name string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := httptree.Params(r)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(echoResponse{
			Handler:  name,
			Method:   r.Method,
			Ints:     p.Ints(),
			Strings:  p.Strings(),
			Values:   p.Values(),
			Wildcard: p.Wildcard(),
		})
	})
}

// newServeHandler builds the HTTP handler for a route file. Every handler
// name in the file is served by an echo handler; /metrics is reserved.
func newServeHandler(f *routefile.File, logger *slog.Logger) (http.Handler, error) {
	handlers := make(map[string]http.Handler, len(f.Routes))
	for _, e := range f.Routes {
		handlers[e.Handler] = echoHandler(e.Handler)
	}

	root, err := routefile.Build(f, httptree.FileResolver(handlers))
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	table := tree.NewTable[*http.Request, http.Handler](nil,
		tree.WithLogger(logger),
		tree.WithObserver(treemetrics.New(treemetrics.WithRegistry(reg))),
	)
	table.Replace(root)

	router := httptree.NewRouter(table)
	router.Use(httptree.RequestIDMiddleware(true), httptree.RecoveryMiddleware(logger))

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	mux.Handle("/", router)

	return mux, nil
}

func serveCmd() *cobra.Command {
	var (
		file  string
		addr  string
		debug bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a route file over HTTP",
		Long: `Serve the routes of a route file. Every route answers with a JSON
document naming its handler and the params extracted from the path.
Prometheus metrics are exposed on /metrics.

Example:
  pathtree serve -f routes.yaml --addr :8080`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			level := slog.LevelInfo
			if debug {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

			f, err := routefile.LoadFile(file)
			if err != nil {
				return err
			}

			handler, err := newServeHandler(f, logger)
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:              addr,
				Handler:           handler,
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				logger.Info("pathtree: serving", slog.String("addr", addr), slog.String("file", file))
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			return srv.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "routes.yaml", "Route file")
	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")
	cmd.Flags().BoolVar(&debug, "debug", false, "Log unmatched requests")

	return cmd
}
