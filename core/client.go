package core

import (
	"fmt"
	"time"

	cmtlog "github.com/cometbft/cometbft/libs/log"
	"github.com/cometbft/cometbft/rpc/client"
	rpchttp "github.com/cometbft/cometbft/rpc/client/http"
	retryhttp "github.com/hashicorp/go-retryablehttp"
	logging "github.com/ipfs/go-log/v2"
	"go.uber.org/zap"
)

// Client is an alias to the CometBFT RPC client.
type Client = client.Client

// DefaultRequestTimeout bounds every request issued through NewRemote.
const DefaultRequestTimeout = 2 * time.Second

// NewRemote creates a new Client that communicates with a remote CometBFT
// endpoint over HTTP, with every request bounded by DefaultRequestTimeout.
func NewRemote(ip, port string) (Client, error) {
	return NewRemoteWithTimeout(fmt.Sprintf("tcp://%s:%s", ip, port), DefaultRequestTimeout)
}

// NewRemoteWithTimeout creates a new Client against the given remote address
// with every request bounded by the given timeout. Requests are issued once
// and never retried.
func NewRemoteWithTimeout(remote string, timeout time.Duration) (Client, error) {
	httpClient := retryhttp.NewClient()
	httpClient.RetryMax = 0
	httpClient.HTTPClient.Timeout = timeout
	// suppress logging
	httpClient.Logger = nil

	client, err := rpchttp.NewWithClient(
		remote,
		"/websocket",
		httpClient.StandardClient(),
	)
	if err != nil {
		return nil, err
	}

	client.WSEvents.SetLogger(clientLog)
	return client, nil
}

var clientLog = newServiceLogger("core-ws")

type serviceLogger struct {
	log *zap.SugaredLogger
}

func newServiceLogger(system string) *serviceLogger {
	return &serviceLogger{&logging.Logger(system).SugaredLogger}
}

func (s *serviceLogger) Debug(msg string, keyvals ...interface{}) {
	s.log.Debugw(msg, keyvals...)
}

func (s *serviceLogger) Info(msg string, keyvals ...interface{}) {
	s.log.Infow(msg, keyvals...)
}

func (s *serviceLogger) Error(msg string, keyvals ...interface{}) {
	s.log.Errorw(msg, keyvals...)
}

func (s *serviceLogger) With(keyvals ...interface{}) cmtlog.Logger {
	return &serviceLogger{s.log.With(keyvals...)}
}
