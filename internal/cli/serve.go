package cli

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/ribbonchart/ribbon/pkg/chart"
	"github.com/ribbonchart/ribbon/pkg/chart/sink"
	chartio "github.com/ribbonchart/ribbon/pkg/io"
	"github.com/ribbonchart/ribbon/pkg/observability"
)

const (
	defaultServeAddr  = "localhost:8080"
	serverReadTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr  string // listen address
	input string // dataset file; empty means a generated dataset
	items int    // generated segment count when no file is given
	seed  int64  // random seed for the generated dataset
	dark  bool   // use the dark theme
}

// newServeCmd creates the serve command for hosting an interactive chart over HTTP.
// With no dataset file, it serves a generated dataset that POST /shuffle
// regenerates in place.
//
// Routes:
//   - GET  /          standalone HTML page with the interactive chart
//   - GET  /data.json the current dataset as JSON
//   - POST /shuffle   regenerate the dataset (generated datasets only)
func newServeCmd() *cobra.Command {
	opts := serveOpts{
		addr:  defaultServeAddr,
		items: defaultDemoItems,
		seed:  defaultDemoSeed,
	}

	cmd := &cobra.Command{
		Use:   "serve [file]",
		Short: "Serve an interactive chart over HTTP",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.input = args[0]
			}
			return runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().IntVarP(&opts.items, "items", "n", opts.items, "number of generated segments (ignored with a dataset file)")
	cmd.Flags().Int64Var(&opts.seed, "seed", opts.seed, "random seed for the dataset generator")
	cmd.Flags().BoolVar(&opts.dark, "dark", false, "use the dark theme")

	return cmd
}

// chartServer serves a single dataset over HTTP. The dataset is guarded by mu
// because /shuffle swaps it while / and /data.json read it.
type chartServer struct {
	mu        sync.RWMutex
	data      chart.Data
	seed      int64
	generated bool // dataset came from the generator; /shuffle is allowed
	items     int
	dark      bool
	logger    *charmlog.Logger
}

// newChartServer loads the dataset from opts, falling back to the generator
// when no file was given.
func newChartServer(opts *serveOpts, logger *charmlog.Logger) (*chartServer, error) {
	s := &chartServer{
		seed:   opts.seed,
		items:  opts.items,
		dark:   opts.dark,
		logger: logger,
	}

	if opts.input == "" {
		s.generated = true
		s.data = s.generate()
		return s, nil
	}

	data, err := chartio.Import(opts.input)
	if err != nil {
		return nil, err
	}
	data.Dark = data.Dark || opts.dark
	s.data = data
	return s, nil
}

func (s *chartServer) generate() chart.Data {
	data := randomData(s.items, s.seed)
	data.Dark = s.dark
	return data
}

// router builds the chi route tree.
func (s *chartServer) router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/", s.handleIndex)
	r.Get("/data.json", s.handleData)
	r.Post("/shuffle", s.handleShuffle)

	return r
}

// logRequests logs each request's method, path, and duration at debug level
// and feeds the serve hooks.
func (s *chartServer) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		observability.Serve().OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		elapsed := time.Since(start)
		observability.Serve().OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), elapsed)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", elapsed.Round(time.Microsecond),
		)
	})
}

func (s *chartServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	page := sink.RenderHTML(chart.New(s.data), sink.WithStandalone())
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(page); err != nil {
		s.logger.Error("write response", "err", err)
	}
}

func (s *chartServer) handleData(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	data := s.data
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	if err := chartio.WriteJSON(data, w); err != nil {
		s.logger.Error("write dataset", "err", err)
	}
}

// handleShuffle regenerates the dataset with the next seed and redirects back
// to the chart. File-backed datasets are immutable, so shuffle is rejected.
func (s *chartServer) handleShuffle(w http.ResponseWriter, r *http.Request) {
	if !s.generated {
		http.Error(w, "dataset is file-backed; shuffle is unavailable", http.StatusConflict)
		return
	}

	s.mu.Lock()
	s.seed++
	s.data = s.generate()
	seed := s.seed
	s.mu.Unlock()

	s.logger.Info("Shuffled dataset", "seed", seed)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// runServe hosts the chart server until ctx is cancelled, then shuts down
// gracefully.
func runServe(ctx context.Context, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	cs, err := newChartServer(opts, logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:        opts.addr,
		Handler:     cs.router(),
		ReadTimeout: serverReadTimeout,
		BaseContext: func(_ net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	logger.Infof("Serving chart on http://%s", opts.addr)
	printNextStep("Open it", "http://"+opts.addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
