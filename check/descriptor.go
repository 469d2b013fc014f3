package check

import (
	"fmt"
	"strings"

	"github.com/comet-tools/peerscan/libs/utils"
)

// Descriptor identifies a candidate peer: an opaque id plus the host and
// transport port probes are run against.
type Descriptor struct {
	ID   string
	Host string
	Port int
}

// ParseDescriptor parses a compound id@host:port descriptor string.
// Malformed descriptors report ok=false and are expected to be discarded
// silently by the caller.
func ParseDescriptor(raw string) (Descriptor, bool) {
	parts := strings.Split(strings.TrimSpace(raw), "@")
	if len(parts) != 2 {
		return Descriptor{}, false
	}

	hostPort := strings.Split(parts[1], ":")
	if len(hostPort) != 2 || hostPort[0] == "" {
		return Descriptor{}, false
	}

	port, err := utils.ParsePort(hostPort[1])
	if err != nil {
		return Descriptor{}, false
	}

	return Descriptor{ID: parts[0], Host: hostPort[0], Port: port}, true
}

// String returns the canonical id@host:port form.
func (d Descriptor) String() string {
	return fmt.Sprintf("%s@%s:%d", d.ID, d.Host, d.Port)
}
