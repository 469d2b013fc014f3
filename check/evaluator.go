package check

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Per-peer exclusion reasons. None of these is fatal to a run; the scheduler
// logs them and carries on with the remaining descriptors.
var (
	ErrMalformedDescriptor = errors.New("check: malformed descriptor")
	ErrUnreachable         = errors.New("check: peer unreachable")
	ErrLatencyExceeded     = errors.New("check: latency above configured bound")
	ErrNoStatus            = errors.New("check: no status from peer")
	ErrHeightDiverged      = errors.New("check: height outside accepted difference")
)

// Prober reports whether a transport-layer connection can be opened to a
// peer and how long it takes.
type Prober interface {
	Probe(ctx context.Context, host string, port int) Outcome
}

// StatusGetter fetches a peer's self-reported status from its RPC endpoint.
type StatusGetter interface {
	Fetch(ctx context.Context, host string, rpcPort int) (*Status, error)
}

// Record is an accepted peer. It is created only after a descriptor passed
// the connectivity, latency bound, status retrieval and height tolerance
// checks, in that order, and is immutable afterwards.
type Record struct {
	Descriptor Descriptor
	Latency    time.Duration
	Status     Status
	// FullPeer is the canonical reportedID@host:port string used for output.
	FullPeer string
}

// Evaluator runs the full probe/filter sequence for a single descriptor.
type Evaluator struct {
	prober Prober
	status StatusGetter

	refHeight  int64
	maxDiff    int64
	maxLatency time.Duration
	portOffset int
}

// NewEvaluator composes the given probes into an Evaluator comparing peers
// against refHeight under the thresholds carried by cfg.
func NewEvaluator(prober Prober, status StatusGetter, refHeight int64, cfg Config) *Evaluator {
	return &Evaluator{
		prober:     prober,
		status:     status,
		refHeight:  refHeight,
		maxDiff:    cfg.MaxHeightDiff,
		maxLatency: cfg.MaxLatency,
		portOffset: cfg.StatusPortOffset,
	}
}

// Evaluate runs the probe/filter sequence over a raw descriptor string,
// returning a Record when the peer passes every check and the exclusion
// reason otherwise. Its only side effect is logging.
func (e *Evaluator) Evaluate(ctx context.Context, raw string) (*Record, error) {
	desc, ok := ParseDescriptor(raw)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMalformedDescriptor, raw)
	}

	outcome := e.prober.Probe(ctx, desc.Host, desc.Port)
	if !outcome.Reachable {
		return nil, fmt.Errorf("%w: %s", ErrUnreachable, desc)
	}
	if e.maxLatency > 0 && outcome.Latency > e.maxLatency {
		return nil, fmt.Errorf("%w: %s took %s", ErrLatencyExceeded, desc, outcome.Latency)
	}

	status, err := e.status.Fetch(ctx, desc.Host, desc.Port+e.portOffset)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrNoStatus, desc, err)
	}

	if diff := status.Height - e.refHeight; diff > e.maxDiff || diff < -e.maxDiff {
		return nil, fmt.Errorf("%w: %s reports %d, reference %d", ErrHeightDiverged, desc, status.Height, e.refHeight)
	}

	rec := &Record{
		Descriptor: desc,
		Latency:    outcome.Latency,
		Status:     *status,
		FullPeer:   fmt.Sprintf("%s@%s:%d", status.ID, desc.Host, desc.Port),
	}
	log.Infow("accepted peer",
		"moniker", status.Moniker,
		"addr", fmt.Sprintf("%s:%d", desc.Host, desc.Port),
		"height", status.Height,
		"latency_ms", outcome.Latency.Milliseconds(),
	)
	return rec, nil
}
