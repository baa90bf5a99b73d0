package monitor

import (
	"context"
	"net"
	"time"
)

const DefaultProbeTimeout = 5 * time.Second

// LatencyProber measures network latency by timing a TCP dial to a fixed
// endpoint. A failed or timed-out dial yields nil, never an error: absence
// of a reading is a valid measurement outcome.
type LatencyProber interface {
	Probe(ctx context.Context) *float64
}

type tcpProber struct {
	address string
	timeout time.Duration
}

func NewTCPProber(host, port string, timeout time.Duration) LatencyProber {
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}
	return &tcpProber{
		address: net.JoinHostPort(host, port),
		timeout: timeout,
	}
}

func (p *tcpProber) Probe(ctx context.Context) *float64 {
	dialer := net.Dialer{Timeout: p.timeout}

	start := time.Now()
	conn, err := dialer.DialContext(ctx, "tcp", p.address)
	if err != nil {
		return nil
	}
	_ = conn.Close()

	latency := float64(time.Since(start)) / float64(time.Millisecond)
	return &latency
}
