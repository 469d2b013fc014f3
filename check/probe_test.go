package check

import (
	"context"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/require"

	"github.com/comet-tools/peerscan/core"
	"github.com/comet-tools/peerscan/libs/utils"
)

func TestTCPProbeReachable(t *testing.T) {
	host, port := core.StartMockNode(t, core.MockNode{Height: 1})
	portNum, err := utils.ParsePort(port)
	require.NoError(t, err)

	outcome := NewTCPProbe(2 * time.Second).Probe(context.Background(), host, portNum)
	require.True(t, outcome.Reachable)
	require.GreaterOrEqual(t, outcome.Latency, time.Duration(0))
}

func TestTCPProbeUnreachable(t *testing.T) {
	host, port := core.StartUnreachableAddr(t)
	portNum, err := utils.ParsePort(port)
	require.NoError(t, err)

	outcome := NewTCPProbe(time.Second).Probe(context.Background(), host, portNum)
	require.False(t, outcome.Reachable)
	require.Zero(t, outcome.Latency)
}

// Latency must be read off the probe's own clock. With a frozen mock clock
// the measured latency is exactly zero no matter how long the dial takes on
// the wall clock.
func TestTCPProbeLatencyFromClock(t *testing.T) {
	host, port := core.StartMockNode(t, core.MockNode{Height: 1})
	portNum, err := utils.ParsePort(port)
	require.NoError(t, err)

	probe := &TCPProbe{timeout: 2 * time.Second, clock: clock.NewMock()}
	outcome := probe.Probe(context.Background(), host, portNum)
	require.True(t, outcome.Reachable)
	require.Zero(t, outcome.Latency)
}

func TestStatusProbeFetch(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	t.Cleanup(cancel)

	host, port := core.StartMockNode(t, core.MockNode{
		Height:  1003,
		Moniker: "node-a",
		ID:      "aa11",
	})
	portNum, err := utils.ParsePort(port)
	require.NoError(t, err)

	status, err := NewStatusProbe(time.Second).Fetch(ctx, host, portNum)
	require.NoError(t, err)
	require.Equal(t, &Status{Height: 1003, Moniker: "node-a", ID: "aa11"}, status)
}

func TestStatusProbeFetchFailure(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	t.Cleanup(cancel)

	host, port := core.StartUnreachableAddr(t)
	portNum, err := utils.ParsePort(port)
	require.NoError(t, err)

	status, err := NewStatusProbe(time.Second).Fetch(ctx, host, portNum)
	require.Error(t, err)
	require.Nil(t, status)
}
