// Package events publishes storefront events (placed orders) to a
// configurable destination: stdout, JSONL files, or Kafka.
package events

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/lapuropizza/storefront/internal/models"
)

type Sink interface {
	WriteMessage(topic string, msg []byte) error
	Close() error
}

// FromConfig selects the sink for the configured output. Kafka takes
// precedence when enabled.
func FromConfig(cfg *models.Config) (Sink, error) {
	if cfg.Kafka.Enabled {
		return NewKafkaSink(strings.Split(cfg.Kafka.BrokerList, ","))
	}
	switch cfg.Events.Output {
	case "", "console":
		return &ConsoleSink{}, nil
	case "file":
		return NewFileSink(cfg.Events.Path)
	case "kafka":
		return NewKafkaSink(strings.Split(cfg.Kafka.BrokerList, ","))
	default:
		return nil, fmt.Errorf("unsupported events output: %s", cfg.Events.Output)
	}
}

type ConsoleSink struct{}

func (c *ConsoleSink) WriteMessage(topic string, msg []byte) error {
	output := fmt.Sprintf("[%s] %s\n", topic, string(msg))
	if _, err := os.Stdout.Write([]byte(output)); err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}
	return nil
}

func (c *ConsoleSink) Close() error { return nil }

// FileSink appends one JSON document per line to <dir>/<topic>.jsonl.
type FileSink struct {
	mu    sync.Mutex
	dir   string
	files map[string]*os.File
}

func NewFileSink(dir string) (*FileSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating events directory: %w", err)
	}
	return &FileSink{dir: dir, files: make(map[string]*os.File)}, nil
}

func (f *FileSink) WriteMessage(topic string, msg []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	file, ok := f.files[topic]
	if !ok {
		var err error
		file, err = os.OpenFile(
			filepath.Join(f.dir, topic+".jsonl"),
			os.O_APPEND|os.O_CREATE|os.O_WRONLY,
			0o644,
		)
		if err != nil {
			return err
		}
		f.files[topic] = file
	}

	if _, err := file.Write(msg); err != nil {
		return err
	}
	_, err := file.WriteString("\n")
	return err
}

func (f *FileSink) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	var lastErr error
	for _, file := range f.files {
		if err := file.Close(); err != nil {
			lastErr = err
		}
	}
	f.files = make(map[string]*os.File)
	return lastErr
}
