package scan

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/comet-tools/peerscan/core"
)

func testConfig(t *testing.T, refHost, refPort string) *Config {
	t.Helper()

	cfg := DefaultConfig()
	cfg.Core.Remote = fmt.Sprintf("tcp://%s:%s", refHost, refPort)
	cfg.Check.MaxHeightDiff = 5
	// mock nodes answer status queries on their transport port
	cfg.Check.StatusPortOffset = 0
	cfg.Check.TopN = 30
	cfg.Report.Path = filepath.Join(t.TempDir(), "top_peers.txt")
	return cfg
}

func TestRunWithFileSource(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	t.Cleanup(cancel)

	refHost, refPort := core.StartMockNode(t, core.MockNode{Height: 1000, ID: "ref"})
	hostA, portA := core.StartMockNode(t, core.MockNode{Height: 1003, Moniker: "node-a", ID: "aa11"})
	hostB, portB := core.StartMockNode(t, core.MockNode{Height: 990, Moniker: "node-b", ID: "bb22"})
	hostC, portC := core.StartUnreachableAddr(t)

	peersFile := filepath.Join(t.TempDir(), "peers.txt")
	peers := fmt.Sprintf("aa11@%s:%s,bb22@%s:%s,cc33@%s:%s,malformed-entry",
		hostA, portA, hostB, portB, hostC, portC)
	require.NoError(t, os.WriteFile(peersFile, []byte(peers), 0o644))

	cfg := testConfig(t, refHost, refPort)
	cfg.PeersFile = peersFile
	cfg.Report.WriteJSON = true
	require.NoError(t, cfg.Validate())

	summary, err := Run(ctx, cfg)
	require.NoError(t, err)

	// node-b diverged by 10, node-c unreachable, malformed entry dropped
	require.EqualValues(t, 1000, summary.ReferenceHeight)
	require.Equal(t, 1, summary.Matched)
	require.Equal(t, 1, summary.Saved)
	require.Equal(t, peersFile, summary.Source)

	primary, err := os.ReadFile(cfg.Report.Path)
	require.NoError(t, err)
	require.Equal(t, fmt.Sprintf("aa11@%s:%s", hostA, portA), string(primary))

	ids, err := os.ReadFile(filepath.Join(filepath.Dir(cfg.Report.Path), "top_peers_ids_only.txt"))
	require.NoError(t, err)
	require.Equal(t, "aa11", string(ids))
}

func TestRunWithRPCSource(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	t.Cleanup(cancel)

	hostA, portA := core.StartMockNode(t, core.MockNode{Height: 1002, Moniker: "node-a", ID: "aa11"})
	refHost, refPort := core.StartMockNode(t, core.MockNode{
		Height: 1000,
		ID:     "ref",
		Peers: []core.MockPeer{
			{ID: "aa11", RemoteIP: hostA, ListenAddr: "tcp://0.0.0.0:" + portA},
		},
	})

	cfg := testConfig(t, refHost, refPort)
	require.NoError(t, cfg.Validate())

	summary, err := Run(ctx, cfg)
	require.NoError(t, err)
	require.Equal(t, 1, summary.Matched)
	require.Equal(t, cfg.Core.Remote+"/net_info", summary.Source)

	primary, err := os.ReadFile(cfg.Report.Path)
	require.NoError(t, err)
	require.Equal(t, fmt.Sprintf("aa11@%s:%s", hostA, portA), string(primary))
}

func TestRunReferenceUnavailable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	t.Cleanup(cancel)

	refHost, refPort := core.StartUnreachableAddr(t)

	cfg := testConfig(t, refHost, refPort)
	require.NoError(t, cfg.Validate())

	_, err := Run(ctx, cfg)
	require.Error(t, err)
}

func TestRunEmptyPeerSource(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	t.Cleanup(cancel)

	refHost, refPort := core.StartMockNode(t, core.MockNode{Height: 1000, ID: "ref"})

	cfg := testConfig(t, refHost, refPort)
	require.NoError(t, cfg.Validate())

	_, err := Run(ctx, cfg)
	require.ErrorIs(t, err, ErrNoPeers)
}

func TestRunUnreadablePeersFile(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	t.Cleanup(cancel)

	refHost, refPort := core.StartMockNode(t, core.MockNode{Height: 1000, ID: "ref"})

	cfg := testConfig(t, refHost, refPort)
	cfg.PeersFile = filepath.Join(t.TempDir(), "missing.txt")
	require.NoError(t, cfg.Validate())

	_, err := Run(ctx, cfg)
	require.Error(t, err)
}
