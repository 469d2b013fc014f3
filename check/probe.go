package check

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/comet-tools/peerscan/core"
)

// Outcome is the result of a connectivity probe. Latency is meaningful only
// when Reachable is true.
type Outcome struct {
	Reachable bool
	Latency   time.Duration
}

// Status is the slice of a peer's self-reported status the pipeline cares
// about. ID is the peer's reported identity and is authoritative for output,
// even when it differs from the identity in the descriptor.
type Status struct {
	Height  int64
	Moniker string
	ID      string
}

// TCPProbe measures whether a transport-layer connection can be opened to a
// peer and how long that takes.
type TCPProbe struct {
	timeout time.Duration
	clock   clock.Clock
}

// NewTCPProbe returns a TCPProbe bounded by the given dial timeout.
func NewTCPProbe(timeout time.Duration) *TCPProbe {
	return &TCPProbe{timeout: timeout, clock: clock.New()}
}

// Probe opens a connection to host:port, closing it immediately on success.
// Any dial error or timeout yields an unreachable Outcome. There is no retry.
func (p *TCPProbe) Probe(ctx context.Context, host string, port int) Outcome {
	start := p.clock.Now()

	dialer := net.Dialer{Timeout: p.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		return Outcome{}
	}
	conn.Close() //nolint:errcheck

	return Outcome{Reachable: true, Latency: p.clock.Since(start)}
}

// StatusProbe queries a peer's RPC endpoint for its self-reported status.
type StatusProbe struct {
	timeout time.Duration
}

// NewStatusProbe returns a StatusProbe bounded by the given request timeout.
func NewStatusProbe(timeout time.Duration) *StatusProbe {
	return &StatusProbe{timeout: timeout}
}

// Fetch queries host:rpcPort for the peer's status. Any failure (timeout,
// refused connection, malformed response) yields a nil Status.
func (p *StatusProbe) Fetch(ctx context.Context, host string, rpcPort int) (*Status, error) {
	remote := fmt.Sprintf("tcp://%s", net.JoinHostPort(host, strconv.Itoa(rpcPort)))
	client, err := core.NewRemoteWithTimeout(remote, p.timeout)
	if err != nil {
		return nil, fmt.Errorf("check: creating status client: %w", err)
	}

	status, err := client.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("check: fetching status: %w", err)
	}

	return &Status{
		Height:  status.SyncInfo.LatestBlockHeight,
		Moniker: status.NodeInfo.Moniker,
		ID:      string(status.NodeInfo.DefaultNodeID),
	}, nil
}
