package scan

import (
	"context"
	"errors"
	"fmt"
	"time"

	logging "github.com/ipfs/go-log/v2"
	"golang.org/x/sync/errgroup"

	"github.com/comet-tools/peerscan/check"
	"github.com/comet-tools/peerscan/core"
	"github.com/comet-tools/peerscan/report"
)

var log = logging.Logger("scan")

// ErrNoPeers reports an empty descriptor source, which is fatal to a run.
var ErrNoPeers = errors.New("scan: no peer descriptors to evaluate")

// Summary describes a finished run.
type Summary struct {
	Elapsed         time.Duration
	ReferenceHeight int64
	Matched         int
	Saved           int
	Source          string
}

// Run executes a full evaluation pass: resolve the reference height, gather
// descriptors, probe and filter them under bounded concurrency, rank the
// accepted records and write the output artifacts. The config must be
// validated beforehand.
func Run(ctx context.Context, cfg *Config) (*Summary, error) {
	start := time.Now()

	client, err := core.NewRemoteWithTimeout(cfg.Core.Remote, cfg.Core.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("scan: creating reference client: %w", err)
	}
	fetcher := core.NewFetcher(client)

	// The reference height and the descriptor source are independent, so
	// both resolve before any probing starts. Failure of either is fatal.
	var (
		height int64
		peers  []string
		source string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		height, err = fetcher.ReferenceHeight(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		if cfg.PeersFile != "" {
			source = cfg.PeersFile
			peers, err = peersFromFile(cfg.PeersFile)
			return err
		}
		source = cfg.Core.Remote + "/net_info"
		peers, err = fetcher.Peers(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if len(peers) == 0 {
		return nil, fmt.Errorf("%w: source %s", ErrNoPeers, source)
	}

	log.Infow("resolved reference height", "height", height, "remote", cfg.Core.Remote)
	log.Infow("gathered peer descriptors", "count", len(peers), "source", source)

	eval := check.NewEvaluator(
		check.NewTCPProbe(cfg.Check.DialTimeout),
		check.NewStatusProbe(cfg.Check.StatusTimeout),
		height,
		cfg.Check,
	)
	accepted := check.NewScheduler(cfg.Check.Workers, eval.Evaluate).RunAll(ctx, peers)
	selection := check.Select(accepted, cfg.Check.TopN, cfg.Check.TieBreak)

	if err := report.NewWriter(cfg.Report).Write(selection, accepted); err != nil {
		return nil, err
	}

	summary := &Summary{
		Elapsed:         time.Since(start),
		ReferenceHeight: height,
		Matched:         len(accepted),
		Saved:           len(selection),
		Source:          source,
	}
	log.Infow("run finished",
		"elapsed", summary.Elapsed.String(),
		"matched", summary.Matched,
		"saved", summary.Saved,
		"source", summary.Source,
	)
	return summary, nil
}
