package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	logging "github.com/ipfs/go-log/v2"
	"go.uber.org/multierr"

	"github.com/comet-tools/peerscan/check"
)

var log = logging.Logger("report")

// DefaultPath is the default primary selection file.
const DefaultPath = "top_peers.txt"

// Config describes the output artifacts of a run.
type Config struct {
	// Path of the primary selection file. The ids-only and JSON artifacts
	// derive their names from it.
	Path string
	// WriteJSON additionally emits a JSON artifact describing every
	// accepted record, not only the selected ones.
	WriteJSON bool
}

// DefaultConfig returns the default output configuration.
func DefaultConfig() Config {
	return Config{Path: DefaultPath}
}

// Validate performs basic validation of the config.
func (cfg *Config) Validate() error {
	if cfg.Path == "" {
		return errors.New("report: output path must not be empty")
	}
	return nil
}

// Writer emits the output artifacts of a finished run.
type Writer struct {
	cfg Config
}

// NewWriter returns a Writer emitting artifacts per the given config.
func NewWriter(cfg Config) *Writer {
	return &Writer{cfg: cfg}
}

// Write emits the primary selection file, the derived ids-only file and,
// when configured, the JSON artifact covering the whole accepted set. It is
// called only once ranking is finalized; each file is staged next to its
// target and renamed into place, so no partial artifact is ever observable.
func (w *Writer) Write(selection, accepted []*check.Record) error {
	err := multierr.Append(
		w.writeSelection(selection),
		w.writeIDs(selection),
	)
	if w.cfg.WriteJSON {
		err = multierr.Append(err, w.writeAccepted(accepted))
	}
	return err
}

func (w *Writer) writeSelection(selection []*check.Record) error {
	peers := make([]string, len(selection))
	for i, rec := range selection {
		peers[i] = rec.FullPeer
	}
	if err := writeFileAtomic(w.cfg.Path, []byte(strings.Join(peers, ","))); err != nil {
		return fmt.Errorf("report: writing selection: %w", err)
	}
	log.Infow("saved top connections", "count", len(selection), "path", w.cfg.Path)
	return nil
}

func (w *Writer) writeIDs(selection []*check.Record) error {
	ids := make([]string, len(selection))
	for i, rec := range selection {
		ids[i] = rec.Status.ID
	}
	path := w.derivedPath("_ids_only.txt")
	if err := writeFileAtomic(path, []byte(strings.Join(ids, ","))); err != nil {
		return fmt.Errorf("report: writing peer ids: %w", err)
	}
	log.Infow("saved peer ids", "count", len(selection), "path", path)
	return nil
}

// acceptedPeer is the JSON layout of a single accepted record.
type acceptedPeer struct {
	Moniker  string `json:"moniker"`
	NodeID   string `json:"node_id"`
	IP       string `json:"ip"`
	Port     int    `json:"port"`
	FullPeer string `json:"full_peer"`
	Latency  int64  `json:"latency"`
}

func (w *Writer) writeAccepted(accepted []*check.Record) error {
	peers := make([]acceptedPeer, len(accepted))
	for i, rec := range accepted {
		peers[i] = acceptedPeer{
			Moniker:  rec.Status.Moniker,
			NodeID:   rec.Status.ID,
			IP:       rec.Descriptor.Host,
			Port:     rec.Descriptor.Port,
			FullPeer: rec.FullPeer,
			Latency:  rec.Latency.Milliseconds(),
		}
	}

	data, err := json.MarshalIndent(peers, "", "    ")
	if err != nil {
		return fmt.Errorf("report: encoding accepted peers: %w", err)
	}

	path := w.derivedPath("_moniker_objs.json")
	if err := writeFileAtomic(path, data); err != nil {
		return fmt.Errorf("report: writing accepted peers: %w", err)
	}
	log.Infow("saved accepted peer metadata", "count", len(accepted), "path", path)
	return nil
}

func (w *Writer) derivedPath(suffix string) string {
	return strings.TrimSuffix(w.cfg.Path, ".txt") + suffix
}

func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	if _, err := tmp.Write(data); err != nil {
		tmp.Close() //nolint:errcheck
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
