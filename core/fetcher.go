package core

import (
	"context"
	"fmt"
	"strings"
)

// Fetcher queries the reference endpoint for the data the evaluation
// pipeline seeds itself with: the reference height and, optionally, the
// endpoint's own view of its connected peers.
type Fetcher struct {
	client Client
}

// NewFetcher returns a new Fetcher over the given Client.
func NewFetcher(client Client) *Fetcher {
	return &Fetcher{client: client}
}

// ReferenceHeight queries the reference endpoint for its latest block height.
func (f *Fetcher) ReferenceHeight(ctx context.Context) (int64, error) {
	status, err := f.client.Status(ctx)
	if err != nil {
		return 0, fmt.Errorf("core/fetcher: getting status: %w", err)
	}
	return status.SyncInfo.LatestBlockHeight, nil
}

// Peers queries the reference endpoint for its currently connected peers,
// returning them as id@host:port descriptor strings. The transport port is
// taken from the trailing segment of the peer's reported listen address.
func (f *Fetcher) Peers(ctx context.Context) ([]string, error) {
	netInfo, err := f.client.NetInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("core/fetcher: getting net info: %w", err)
	}

	peers := make([]string, 0, len(netInfo.Peers))
	for _, peer := range netInfo.Peers {
		listenAddr := peer.NodeInfo.ListenAddr
		port := listenAddr[strings.LastIndex(listenAddr, ":")+1:]
		peers = append(peers, fmt.Sprintf("%s@%s:%s", peer.NodeInfo.DefaultNodeID, peer.RemoteIP, port))
	}
	return peers, nil
}
