// Package health publishes database reachability through grpc.health.v1.
package health

//go:generate mockgen -source=health.go -destination=health_mock.go -package=health

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/sbilibin2017/gw-image-vault/internal/logger"
)

// ServiceName is the service reported next to the overall "" entry.
const ServiceName = "gw-image-vault"

// Pinger checks a dependency. *sqlx.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Prober pings the database on a fixed interval and mirrors the result into a health server.
type Prober struct {
	db       Pinger
	server   *health.Server
	interval time.Duration
	timeout  time.Duration
}

func NewProber(db Pinger, server *health.Server, interval time.Duration) *Prober {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return &Prober{
		db:       db,
		server:   server,
		interval: interval,
		timeout:  3 * time.Second,
	}
}

// Probe pings once and records the status.
func (p *Prober) Probe(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	pingCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := p.db.PingContext(pingCtx); err != nil {
		logger.Log.Warnw("database ping failed", "error", err)
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	p.server.SetServingStatus("", status)
	p.server.SetServingStatus(ServiceName, status)
	return status
}

// Run checks immediately and then on every tick until ctx is cancelled,
// after which every service reports NOT_SERVING.
func (p *Prober) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.Probe(ctx)
	for {
		select {
		case <-ctx.Done():
			p.server.Shutdown()
			return
		case <-ticker.C:
			p.Probe(ctx)
		}
	}
}

// NewServer returns a gRPC server exposing hs.
func NewServer(hs *health.Server, opts ...grpc.ServerOption) *grpc.Server {
	s := grpc.NewServer(opts...)
	healthpb.RegisterHealthServer(s, hs)
	return s
}
