// Package feed contains snapshot source adapters: a WebSocket client for a
// live governance runtime and a fixture replayer for offline runs.
package feed

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"github.com/quantagov/quantum-arb/business/market/domain"
	"github.com/quantagov/quantum-arb/internal/apperror"
	"github.com/quantagov/quantum-arb/internal/circuitbreaker"
	"github.com/quantagov/quantum-arb/internal/logger"
	"github.com/quantagov/quantum-arb/internal/wsconn"
)

const meterName = "github.com/quantagov/quantum-arb/business/market/infra/feed"

// WSConfig holds WebSocket feed configuration.
type WSConfig struct {
	URL            string
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	MaxReconnects  int
}

// wsMetrics holds OTEL metric instruments for the feed.
type wsMetrics struct {
	snapshotsReceived metric.Int64Counter
	decodeErrors      metric.Int64Counter
	reconnects        metric.Int64Counter
}

// WSSource streams snapshots from the governance runtime over WebSocket.
type WSSource struct {
	config  WSConfig
	logger  logger.LoggerInterface
	conn    *wsconn.Client
	breaker *circuitbreaker.CircuitBreaker[*domain.Snapshot]

	out     chan *domain.Snapshot
	mu      sync.Mutex
	closed  bool
	metrics *wsMetrics

	// OnStatus is notified on connection state changes, if set.
	OnStatus func(connected bool)
}

// NewWSSource creates a WebSocket snapshot source.
func NewWSSource(cfg WSConfig, log logger.LoggerInterface) (*WSSource, error) {
	s := &WSSource{
		config:  cfg,
		logger:  log,
		breaker: circuitbreaker.New[*domain.Snapshot](circuitbreaker.DefaultConfig("snapshot-feed")),
		out:     make(chan *domain.Snapshot, 64),
	}
	if err := s.initMetrics(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *WSSource) initMetrics() error {
	meter := otel.Meter(meterName)
	var err error

	s.metrics = &wsMetrics{}

	s.metrics.snapshotsReceived, err = meter.Int64Counter(
		"feed_snapshots_total",
		metric.WithDescription("Snapshots received from the feed"),
	)
	if err != nil {
		return err
	}

	s.metrics.decodeErrors, err = meter.Int64Counter(
		"feed_decode_errors_total",
		metric.WithDescription("Snapshot payloads that failed to decode"),
	)
	if err != nil {
		return err
	}

	s.metrics.reconnects, err = meter.Int64Counter(
		"feed_reconnects_total",
		metric.WithDescription("Feed reconnection attempts"),
	)
	return err
}

// Subscribe connects to the runtime and returns the snapshot channel.
func (s *WSSource) Subscribe(ctx context.Context) (<-chan *domain.Snapshot, error) {
	wsCfg := wsconn.DefaultConfig(s.config.URL, "snapshot-feed")
	if s.config.InitialBackoff > 0 {
		wsCfg.InitialBackoff = s.config.InitialBackoff
	}
	if s.config.MaxBackoff > 0 {
		wsCfg.MaxBackoff = s.config.MaxBackoff
	}
	wsCfg.MaxReconnects = s.config.MaxReconnects

	conn, err := wsconn.New(wsCfg)
	if err != nil {
		return nil, apperror.New(apperror.CodeFeedConnectionFailed, apperror.WithCause(err))
	}

	conn.OnMessage(s.handleMessage)
	conn.OnStateChange(func(state wsconn.State, stateErr error) {
		switch state {
		case wsconn.StateConnected:
			if s.OnStatus != nil {
				s.OnStatus(true)
			}
		case wsconn.StateReconnecting:
			s.metrics.reconnects.Add(ctx, 1)
			s.logger.Warn(ctx, "snapshot feed reconnecting", "error", stateErr)
			if s.OnStatus != nil {
				s.OnStatus(false)
			}
		case wsconn.StateDisconnected, wsconn.StateClosed:
			if s.OnStatus != nil {
				s.OnStatus(false)
			}
		}
	})

	if err := conn.ConnectWithRetry(ctx); err != nil {
		return nil, apperror.New(apperror.CodeFeedConnectionFailed,
			apperror.WithCause(err),
			apperror.WithContext(s.config.URL),
		)
	}

	s.conn = conn
	s.logger.Info(ctx, "snapshot feed connected", "url", s.config.URL)
	return s.out, nil
}

// handleMessage decodes one snapshot payload. Decode runs through the
// circuit breaker so a runtime sending garbage trips the feed open instead
// of burning CPU on every frame.
func (s *WSSource) handleMessage(ctx context.Context, data []byte) {
	snap, err := s.breaker.Execute(func() (*domain.Snapshot, error) {
		var snap domain.Snapshot
		if err := json.Unmarshal(data, &snap); err != nil {
			return nil, apperror.New(apperror.CodeFeedDecodeError, apperror.WithCause(err))
		}
		if snap.MarketID == "" {
			return nil, apperror.New(apperror.CodeFeedDecodeError,
				apperror.WithContext("missing market_id"))
		}
		return &snap, nil
	})
	if err != nil {
		s.metrics.decodeErrors.Add(ctx, 1)
		s.logger.Warn(ctx, "snapshot decode failed", "error", err)
		return
	}

	if snap.Timestamp.IsZero() {
		snap.Timestamp = time.Now()
	}

	s.metrics.snapshotsReceived.Add(ctx, 1)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	select {
	case s.out <- snap:
	default:
		// Detector is behind. Drop the oldest so the freshest state wins.
		select {
		case <-s.out:
		default:
		}
		s.out <- snap
	}
}

// Close shuts the feed down.
func (s *WSSource) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	close(s.out)
	s.mu.Unlock()

	if s.conn != nil {
		return s.conn.Close()
	}
	return nil
}
