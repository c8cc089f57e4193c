/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"dirpx.dev/canonerr/grpcx"
	"dirpx.dev/canonerr/httpx"
	"dirpx.dev/canonerr/internal/config"
	"dirpx.dev/canonerr/mapper"
	"google.golang.org/grpc"
)

// Server runs the demo HTTP and gRPC listeners.
type Server struct {
	cfg    *config.Config
	logger *slog.Logger
	http   *http.Server
	grpc   *grpc.Server
}

// New builds both servers from cfg. It fails when the configured prefix
// rules are invalid.
func New(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("cfg cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	opts := make([]mapper.Option, 0, len(cfg.GRPCPrefixes))
	for prefix, c := range cfg.GRPCPrefixes {
		opts = append(opts, mapper.WithGRPCPrefix(prefix, c))
	}
	m, err := mapper.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build mapper: %w", err)
	}

	hf := httpx.New(httpx.WithLogger(logger.With(slog.String("transport", "http"))))
	gf := grpcx.New(grpcx.WithMapper(m), grpcx.WithLogger(logger.With(slog.String("transport", "grpc"))))

	return &Server{
		cfg:    cfg,
		logger: logger,
		http:   &http.Server{Addr: cfg.HTTPAddr, Handler: NewHTTPHandler(hf)},
		grpc:   NewGRPCServer(gf),
	}, nil
}

// Run serves until ctx is cancelled or a listener fails, then shuts both
// servers down within the configured timeout.
func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.cfg.GRPCAddr)
	if err != nil {
		return fmt.Errorf("failed to bind %s: %w", s.cfg.GRPCAddr, err)
	}

	errCh := make(chan error, 2)
	go func() {
		s.logger.Info("serving gRPC", slog.String("addr", lis.Addr().String()))
		errCh <- s.grpc.Serve(lis)
	}()
	go func() {
		s.logger.Info("serving HTTP", slog.String("addr", s.cfg.HTTPAddr))
		if err := s.http.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err = <-errCh:
	case <-ctx.Done():
	}
	s.logger.Info("shutting down")
	return errors.Join(err, s.shutdown())
}

func (s *Server) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	stopped := make(chan struct{})
	go func() {
		s.grpc.GracefulStop()
		close(stopped)
	}()

	httpErr := s.http.Shutdown(ctx)
	select {
	case <-stopped:
		return httpErr
	case <-ctx.Done():
		s.grpc.Stop()
		return errors.Join(httpErr, fmt.Errorf("graceful shutdown timeout, forced stop"))
	}
}
