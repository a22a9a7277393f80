package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"
)

const defaultShutdownTimeout = 15 * time.Second

// Run serves until SIGINT or SIGTERM, then drains in-flight requests for
// up to the configured shutdown timeout.
func (srv *HTTPServer) Run() error {
	ctx := context.Background()
	if err := srv.mapHandlers(); err != nil {
		srv.l.Errorf(ctx, "httpserver.Run: map handlers: %v", err)
		return err
	}

	server := srv.newServer()

	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		srv.l.Infof(ctx, "httpserver.Run: listening on %s (%s)", server.Addr, srv.environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		srv.l.Errorf(ctx, "httpserver.Run: serve: %v", err)
		return err
	case <-sigCtx.Done():
		srv.l.Info(ctx, "httpserver.Run: shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, srv.shutdownTimeout())
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		srv.l.Errorf(ctx, "httpserver.Run: shutdown: %v", err)
		return err
	}
	srv.l.Info(ctx, "httpserver.Run: stopped")
	return nil
}

func (srv *HTTPServer) newServer() *http.Server {
	s := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", srv.host, srv.port),
		Handler: srv.gin,
	}
	if srv.config != nil {
		s.ReadTimeout = srv.config.HTTPServer.ReadTimeout
		s.WriteTimeout = srv.config.HTTPServer.WriteTimeout
	}
	return s
}

func (srv *HTTPServer) shutdownTimeout() time.Duration {
	if srv.config != nil && srv.config.HTTPServer.ShutdownTimeout > 0 {
		return srv.config.HTTPServer.ShutdownTimeout
	}
	return defaultShutdownTimeout
}
