package core

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/comet-tools/peerscan/libs/utils"
)

const (
	DefaultRPCScheme = "tcp"
	DefaultRPCPort   = "26657"
)

var ErrNoEndpoint = errors.New("core: no reference endpoint configured")

// Config holds the connection details of the reference endpoint that every
// candidate peer is compared against.
type Config struct {
	// Remote is the reference endpoint in <scheme>://<host>:<port> form.
	Remote string
	// RequestTimeout bounds every request issued against Remote.
	RequestTimeout time.Duration
}

// DefaultConfig returns default configuration for the reference endpoint
// connection.
func DefaultConfig() Config {
	return Config{
		RequestTimeout: DefaultRequestTimeout,
	}
}

// Validate performs basic validation of the config, defaulting the scheme
// and port when absent.
func (cfg *Config) Validate() error {
	if cfg.Remote == "" {
		return ErrNoEndpoint
	}

	if !strings.Contains(cfg.Remote, "://") {
		cfg.Remote = DefaultRPCScheme + "://" + cfg.Remote
	}

	u, err := url.Parse(cfg.Remote)
	if err != nil {
		return fmt.Errorf("core: invalid remote endpoint: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("core: both protocol and host must be present in remote endpoint %q", cfg.Remote)
	}

	// https remotes carry an implicit port, everything else defaults to
	// the conventional RPC port.
	if _, _, err := net.SplitHostPort(u.Host); err != nil && u.Scheme != "https" {
		u.Host = net.JoinHostPort(u.Host, DefaultRPCPort)
		cfg.Remote = u.String()
	}

	if _, err := utils.ValidateAddr(u.Host); err != nil {
		return fmt.Errorf("core: invalid remote host: %w", err)
	}

	if cfg.RequestTimeout <= 0 {
		return fmt.Errorf("core: request timeout must be positive, got %s", cfg.RequestTimeout)
	}
	return nil
}
