package ingest

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nats-io/nats.go"

	"github.com/heartmarshall/shelfwatch-backend/internal/config"
)

// Subscriber owns the NATS connection and the queue subscriptions feeding Handler.
type Subscriber struct {
	conn    *nats.Conn
	cfg     config.NATSConfig
	handler *Handler
	log     *slog.Logger
	subs    []*nats.Subscription
}

// Connect dials NATS with the configured reconnect policy.
func Connect(cfg config.NATSConfig, handler *Handler, logger *slog.Logger) (*Subscriber, error) {
	log := logger.With("component", "nats")

	opts := []nats.Option{
		nats.Name(cfg.ClientName),
		nats.Timeout(cfg.ConnectTimeout),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Warn("nats disconnected", slog.String("error", err.Error()))
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			log.Info("nats reconnected", slog.String("url", c.ConnectedUrl()))
		}),
	}

	conn, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect to nats: %w", err)
	}

	log.Info("nats connection established", slog.String("url", conn.ConnectedUrl()))

	return &Subscriber{conn: conn, cfg: cfg, handler: handler, log: log}, nil
}

// Start subscribes to the detection and camera status subjects in the
// configured queue group, so several replicas share the load.
func (s *Subscriber) Start(ctx context.Context) error {
	routes := []struct {
		subject string
		handle  func(context.Context, string, []byte) string
	}{
		{s.cfg.DetectionsSubject, s.handler.HandleDetections},
		{s.cfg.CameraStatusSubject, s.handler.HandleCameraStatus},
	}

	for _, rt := range routes {
		sub, err := s.conn.QueueSubscribe(rt.subject, s.cfg.QueueGroup, s.dispatch(ctx, rt.handle))
		if err != nil {
			return fmt.Errorf("subscribe %s: %w", rt.subject, err)
		}
		s.subs = append(s.subs, sub)
		s.log.Info("nats subscription started",
			slog.String("subject", rt.subject),
			slog.String("queue", s.cfg.QueueGroup),
		)
	}
	return nil
}

// dispatch bounds each message by the handler timeout. The base context is
// detached from cancellation so that Drain can finish in-flight messages.
func (s *Subscriber) dispatch(ctx context.Context, handle func(context.Context, string, []byte) string) nats.MsgHandler {
	base := context.WithoutCancel(ctx)
	return func(msg *nats.Msg) {
		msgCtx, cancel := context.WithTimeout(base, s.cfg.HandlerTimeout)
		defer cancel()
		handle(msgCtx, msg.Subject, msg.Data)
	}
}

// Ping reports the connection state for health checks.
func (s *Subscriber) Ping(_ context.Context) error {
	if status := s.conn.Status(); status != nats.CONNECTED {
		return fmt.Errorf("nats connection %s", status)
	}
	return nil
}

// Shutdown drains the subscriptions, falling back to an immediate close.
func (s *Subscriber) Shutdown() {
	if err := s.conn.Drain(); err != nil {
		s.log.Warn("nats drain failed, closing", slog.String("error", err.Error()))
		s.conn.Close()
	}
}
