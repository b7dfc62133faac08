package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"launch_dash/internal/analytics"
	"launch_dash/internal/server"
	"launch_dash/internal/store"
)

// Daemon serves the dashboard over HTTP
type Daemon struct {
	cancel          context.CancelFunc
	srv             *http.Server
	store           *store.Store
	addr            string
	shutdownTimeout time.Duration
	errChan         chan error
	done            chan struct{}
}

// Config holds daemon configuration
type Config struct {
	Addr            string        // Listen address (e.g., ":8050")
	RequestTimeout  time.Duration // Per-request timeout enforced by middleware
	ShutdownTimeout time.Duration // Grace period for in-flight requests on Stop
	Slider          server.Slider // Payload slider shown by the page
}

// New creates a new daemon serving the records in s
func New(cfg Config, s *store.Store) (*Daemon, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("Addr is required")
	}
	if s == nil {
		return nil, fmt.Errorf("store is required")
	}

	requestTimeout := 10 * time.Second
	if cfg.RequestTimeout > 0 {
		requestTimeout = cfg.RequestTimeout
	}

	shutdownTimeout := 10 * time.Second
	if cfg.ShutdownTimeout > 0 {
		shutdownTimeout = cfg.ShutdownTimeout
	}

	ctx, cancel := context.WithCancel(context.Background())

	handler := &server.Handler{
		Dashboard: analytics.NewDashboard(s),
		Slider:    cfg.Slider,
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server.NewRouter(handler, requestTimeout),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      requestTimeout + 5*time.Second,
		IdleTimeout:       30 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	return &Daemon{
		cancel:          cancel,
		srv:             srv,
		store:           s,
		shutdownTimeout: shutdownTimeout,
		errChan:         make(chan error, 1),
		done:            make(chan struct{}),
	}, nil
}

// Start binds the listen address and serves in the background
func (d *Daemon) Start() error {
	slog.Info("Starting daemon", "addr", d.srv.Addr)

	ln, err := net.Listen("tcp", d.srv.Addr)
	if err != nil {
		d.cancel()
		return fmt.Errorf("failed to listen on %s: %w", d.srv.Addr, err)
	}
	d.addr = ln.Addr().String()

	go func() {
		defer close(d.done)
		if err := d.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server stopped", "error", err)
			d.errChan <- err
		}
	}()

	slog.Info("Daemon started successfully", "addr", d.addr, "records", d.store.Len())
	return nil
}

// Addr returns the bound listen address once Start has succeeded
func (d *Daemon) Addr() string {
	return d.addr
}

// Errors reports a server failure that happened after Start
func (d *Daemon) Errors() <-chan error {
	return d.errChan
}

// Stop gracefully stops the daemon, waiting up to ShutdownTimeout for in-flight requests
func (d *Daemon) Stop() error {
	slog.Info("Stopping daemon")

	if d.addr == "" {
		// Never started
		d.cancel()
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), d.shutdownTimeout)
	defer cancel()

	err := d.srv.Shutdown(ctx)
	d.cancel()
	if err != nil {
		return fmt.Errorf("failed to shut down http server: %w", err)
	}
	<-d.done

	slog.Info("Daemon stopped")
	return nil
}
