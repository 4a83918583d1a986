package events

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/lapuropizza/storefront/internal/models"
)

func TestFileSinkAppendsJSONL(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewFileSink(dir)
	if err != nil {
		t.Fatal(err)
	}

	if err := sink.WriteMessage("orders", []byte(`{"id":"o1"}`)); err != nil {
		t.Fatal(err)
	}
	if err := sink.WriteMessage("orders", []byte(`{"id":"o2"}`)); err != nil {
		t.Fatal(err)
	}
	if err := sink.Close(); err != nil {
		t.Fatal(err)
	}

	file, err := os.Open(filepath.Join(dir, "orders.jsonl"))
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	var ids []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var event struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(scanner.Bytes(), &event); err != nil {
			t.Fatalf("line %q: %v", scanner.Text(), err)
		}
		ids = append(ids, event.ID)
	}
	if len(ids) != 2 || ids[0] != "o1" || ids[1] != "o2" {
		t.Fatalf("ids = %v", ids)
	}
}

func TestFromConfigSelection(t *testing.T) {
	cfg := &models.Config{}
	sink, err := FromConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := sink.(*ConsoleSink); !ok {
		t.Fatalf("default sink = %T, want *ConsoleSink", sink)
	}

	cfg = &models.Config{Events: models.EventsConfig{Output: "file", Path: t.TempDir()}}
	sink, err = FromConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := sink.(*FileSink); !ok {
		t.Fatalf("sink = %T, want *FileSink", sink)
	}

	cfg = &models.Config{Events: models.EventsConfig{Output: "teletype"}}
	if _, err := FromConfig(cfg); err == nil {
		t.Fatal("expected error for unsupported output")
	}
}
