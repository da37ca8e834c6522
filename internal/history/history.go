package history

import (
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/colormine/internal/colour"
)

const (
	// Key is the store key holding the JSON array of recent colours.
	Key = "colorMine_history"

	// MaxEntries is the number of colours kept.
	MaxEntries = 10
)

// History is the list of recently used colours, most recent first.
type History struct {
	mu      sync.Mutex
	entries []string
	store   Store
	logger  hclog.Logger
}

// Load reads the history from store. A missing, unreadable or corrupt value is
// logged and treated as an empty history; Load never fails.
func Load(store Store, logger hclog.Logger) *History {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	h := &History{store: store, logger: logger}

	raw, ok, err := store.Get(Key)
	if err != nil {
		logger.Warn("failed to read history, starting empty", "error", err)
		return h
	}
	if !ok || raw == "" {
		return h
	}

	var saved []string
	if err := json.Unmarshal([]byte(raw), &saved); err != nil {
		logger.Warn("failed to parse history, starting empty", "error", err)
		return h
	}

	for _, s := range saved {
		rgb, err := colour.ParseHex(s)
		if err != nil {
			logger.Debug("dropping invalid history entry", "entry", s)
			continue
		}
		hex := rgb.Hex()
		if slices.Contains(h.entries, hex) {
			continue
		}
		h.entries = append(h.entries, hex)
		if len(h.entries) == MaxEntries {
			break
		}
	}
	logger.Debug("history loaded", "entries", len(h.entries))
	return h
}

// Add moves hex to the front, dropping any earlier copy and anything past
// MaxEntries, then writes the list through to the store. The in-memory list is
// updated even if the write fails.
func (h *History) Add(hex string) error {
	rgb, err := colour.ParseHex(hex)
	if err != nil {
		return err
	}
	canonical := rgb.Hex()

	h.mu.Lock()
	if len(h.entries) > 0 && h.entries[0] == canonical {
		h.mu.Unlock()
		return nil
	}
	next := make([]string, 0, MaxEntries)
	next = append(next, canonical)
	for _, e := range h.entries {
		if e != canonical && len(next) < MaxEntries {
			next = append(next, e)
		}
	}
	h.entries = next
	snapshot := slices.Clone(next)
	h.mu.Unlock()

	return h.save(snapshot)
}

// Clear removes all entries and persists the empty list.
func (h *History) Clear() error {
	h.mu.Lock()
	h.entries = nil
	h.mu.Unlock()
	return h.save([]string{})
}

// Entries returns a copy of the history, most recent first.
func (h *History) Entries() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.entries)
}

// Len returns the number of entries.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

func (h *History) save(entries []string) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}
	if err := h.store.Set(Key, string(data)); err != nil {
		h.logger.Error("failed to save history", "error", err)
		return fmt.Errorf("failed to save history: %w", err)
	}
	return nil
}
