package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		remote string
		want   string
		err    bool
	}{
		{name: "full endpoint", remote: "tcp://127.0.0.1:26657", want: "tcp://127.0.0.1:26657"},
		{name: "scheme defaulted", remote: "127.0.0.1:26657", want: "tcp://127.0.0.1:26657"},
		{name: "port defaulted", remote: "tcp://127.0.0.1", want: "tcp://127.0.0.1:26657"},
		{name: "https keeps implicit port", remote: "https://203.0.113.7", want: "https://203.0.113.7"},
		{name: "hostname resolved locally", remote: "tcp://localhost", want: "tcp://localhost:26657"},
		{name: "unresolvable host", remote: "tcp://host.invalid:26657", err: true},
		{name: "empty", remote: "", err: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Remote = tt.remote

			err := cfg.Validate()
			if tt.err {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, cfg.Remote)
		})
	}
}

func TestConfigValidateRequestTimeout(t *testing.T) {
	cfg := Config{Remote: "tcp://127.0.0.1:26657"}
	require.Error(t, cfg.Validate())

	cfg.RequestTimeout = DefaultRequestTimeout
	require.NoError(t, cfg.Validate())
}
