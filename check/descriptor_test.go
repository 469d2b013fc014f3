package check

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDescriptor(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Descriptor
		ok   bool
	}{
		{
			name: "valid",
			raw:  "ab12cd@10.0.0.1:26656",
			want: Descriptor{ID: "ab12cd", Host: "10.0.0.1", Port: 26656},
			ok:   true,
		},
		{
			name: "valid with surrounding whitespace",
			raw:  " ab12cd@10.0.0.1:26656\n",
			want: Descriptor{ID: "ab12cd", Host: "10.0.0.1", Port: 26656},
			ok:   true,
		},
		{
			name: "hostname",
			raw:  "ab12cd@peer.example.org:26656",
			want: Descriptor{ID: "ab12cd", Host: "peer.example.org", Port: 26656},
			ok:   true,
		},
		{name: "missing id separator", raw: "10.0.0.1:26656"},
		{name: "missing port", raw: "ab12cd@10.0.0.1"},
		{name: "empty host", raw: "ab12cd@:26656"},
		{name: "port not a number", raw: "ab12cd@10.0.0.1:rpc"},
		{name: "port out of range", raw: "ab12cd@10.0.0.1:70000"},
		{name: "two id separators", raw: "ab@cd@10.0.0.1:26656"},
		{name: "empty", raw: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDescriptor(tt.raw)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestDescriptorString(t *testing.T) {
	d := Descriptor{ID: "ab12cd", Host: "10.0.0.1", Port: 26656}
	require.Equal(t, "ab12cd@10.0.0.1:26656", d.String())
}
