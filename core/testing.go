package core

import (
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cometbft/cometbft/p2p"
	coretypes "github.com/cometbft/cometbft/rpc/core/types"
	rpctypes "github.com/cometbft/cometbft/rpc/jsonrpc/types"
	"github.com/stretchr/testify/require"
)

// MockNode describes the canned data a mock CometBFT RPC node answers
// `status` and `net_info` queries with.
type MockNode struct {
	Height  int64
	Moniker string
	ID      string
	Peers   []MockPeer
}

// MockPeer is a single entry of a MockNode's `net_info` answer.
type MockPeer struct {
	ID         string
	RemoteIP   string
	ListenAddr string
}

// StartMockNode starts an HTTP server answering CometBFT JSON-RPC requests
// with the given MockNode's data and returns its host and port. The server
// also accepts raw TCP connections on that port, so it doubles as a
// connectivity probe target. It is shut down on test cleanup.
func StartMockNode(t *testing.T, node MockNode) (host, port string) {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpctypes.RPCRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		var resp rpctypes.RPCResponse
		switch req.Method {
		case "status":
			resp = rpctypes.NewRPCSuccessResponse(req.ID, &coretypes.ResultStatus{
				NodeInfo: p2p.DefaultNodeInfo{
					DefaultNodeID: p2p.ID(node.ID),
					Moniker:       node.Moniker,
				},
				SyncInfo: coretypes.SyncInfo{LatestBlockHeight: node.Height},
			})
		case "net_info":
			peers := make([]coretypes.Peer, 0, len(node.Peers))
			for _, peer := range node.Peers {
				peers = append(peers, coretypes.Peer{
					NodeInfo: p2p.DefaultNodeInfo{
						DefaultNodeID: p2p.ID(peer.ID),
						ListenAddr:    peer.ListenAddr,
					},
					RemoteIP: peer.RemoteIP,
				})
			}
			resp = rpctypes.NewRPCSuccessResponse(req.ID, &coretypes.ResultNetInfo{
				Listening: true,
				NPeers:    len(peers),
				Peers:     peers,
			})
		default:
			resp = rpctypes.RPCMethodNotFoundError(req.ID)
		}

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	t.Cleanup(srv.Close)

	host, port, err := net.SplitHostPort(srv.Listener.Addr().String())
	require.NoError(t, err)
	return host, port
}

// StartUnreachableAddr returns the host and port of an address that was
// briefly listened on and then closed, so connections to it fail.
func StartUnreachableAddr(t *testing.T) (host, port string) {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	host, port, err = net.SplitHostPort(addr)
	require.NoError(t, err)
	return host, port
}
