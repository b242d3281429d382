package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/iamkaran-ai/kodnest-premium-app/internal/schema"
	"github.com/iamkaran-ai/kodnest-premium-app/internal/types"
)

// Store keys in the underlying KV.
const (
	historyKey    = "prp_analysis_history"
	selectedIDKey = "prp_selected_analysis_id"
)

// Store provides list/get/save/update operations over persisted analysis
// entries. Every stored record passes through the schema normalizer on read;
// records that fail normalization are dropped and surfaced via the
// hadCorrupted flag, never as errors.
type Store struct {
	kv KV
}

// NewStore creates a Store over the given KV backend.
func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

// List returns all valid entries, newest first, and whether any stored
// record had to be dropped as corrupt. A corrupt record never blocks access
// to the remaining valid records.
func (s *Store) List(ctx context.Context) ([]types.AnalysisEntry, bool, error) {
	raw, found, err := s.kv.GetItem(ctx, historyKey)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read history: %w", err)
	}
	if !found || raw == "" {
		return []types.AnalysisEntry{}, false, nil
	}

	var records []any
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		// The whole blob is unreadable; nothing is salvageable.
		return []types.AnalysisEntry{}, true, nil
	}

	entries := []types.AnalysisEntry{}
	hadCorrupted := false
	for _, record := range records {
		m, ok := record.(map[string]any)
		if !ok {
			hadCorrupted = true
			continue
		}
		entry := schema.NormalizeEntry(m)
		if entry == nil {
			hadCorrupted = true
			continue
		}
		entries = append(entries, *entry)
	}
	return entries, hadCorrupted, nil
}

// Get returns the entry with the given id, or nil when absent.
func (s *Store) Get(ctx context.Context, id string) (*types.AnalysisEntry, error) {
	if id == "" {
		return nil, nil
	}
	entries, _, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		if entries[i].ID == id {
			return &entries[i], nil
		}
	}
	return nil, nil
}

// Save normalizes and persists a new entry at the head of the history, and
// records it as the currently selected entry.
func (s *Store) Save(ctx context.Context, entry *types.AnalysisEntry) error {
	raw, err := entryToRaw(entry)
	if err != nil {
		return err
	}
	normalized := schema.NormalizeEntry(raw)
	if normalized == nil {
		return fmt.Errorf("entry %q failed normalization", entry.ID)
	}

	entries, _, err := s.List(ctx)
	if err != nil {
		return err
	}

	next := append([]types.AnalysisEntry{*normalized}, entries...)
	if err := s.writeEntries(ctx, next); err != nil {
		return err
	}
	return s.SetSelected(ctx, normalized.ID)
}

// Update applies the mutator to the entry with the given id, re-normalizes
// the result, recomputes the final score from the confidence map, and writes
// it back. When re-normalization fails the stored record is left unchanged
// and nil is returned. A nil entry with nil error means the id was not found
// or the patched record was rejected.
func (s *Store) Update(ctx context.Context, id string, mutate func(*types.AnalysisEntry)) (*types.AnalysisEntry, error) {
	entries, _, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	index := -1
	for i := range entries {
		if entries[i].ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, nil
	}

	patched, err := cloneEntry(&entries[index])
	if err != nil {
		return nil, err
	}
	mutate(patched)

	raw, err := entryToRaw(patched)
	if err != nil {
		return nil, err
	}
	normalized := schema.NormalizeEntry(raw)
	if normalized == nil {
		return nil, nil
	}
	normalized.FinalScore = schema.ComputeFinalScore(normalized.BaseScore, normalized.SkillConfidenceMap)

	entries[index] = *normalized
	if err := s.writeEntries(ctx, entries); err != nil {
		return nil, err
	}
	if err := s.SetSelected(ctx, normalized.ID); err != nil {
		return nil, err
	}
	return normalized, nil
}

// SetConfidence toggles one skill's confidence on the entry and recomputes
// its final score. Confidence entries for skills not present in the entry's
// extracted skills are discarded during re-normalization.
func (s *Store) SetConfidence(ctx context.Context, id, skill string, confidence types.Confidence) (*types.AnalysisEntry, error) {
	return s.Update(ctx, id, func(entry *types.AnalysisEntry) {
		if entry.SkillConfidenceMap == nil {
			entry.SkillConfidenceMap = map[string]types.Confidence{}
		}
		entry.SkillConfidenceMap[skill] = confidence
		entry.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	})
}

// SetSelected records the id of the most recently selected entry.
func (s *Store) SetSelected(ctx context.Context, id string) error {
	if err := s.kv.SetItem(ctx, selectedIDKey, id); err != nil {
		return fmt.Errorf("failed to record selected entry: %w", err)
	}
	return nil
}

// SelectedOrLatest returns the currently selected entry when one is recorded
// and still valid, falling back to the newest entry. Returns nil when the
// history is empty.
func (s *Store) SelectedOrLatest(ctx context.Context) (*types.AnalysisEntry, error) {
	id, found, err := s.kv.GetItem(ctx, selectedIDKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read selected entry id: %w", err)
	}
	if found && id != "" {
		entry, err := s.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if entry != nil {
			return entry, nil
		}
	}

	entries, _, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return &entries[0], nil
}

// writeEntries validates every entry against the canonical schema and writes
// the whole history back in one step.
func (s *Store) writeEntries(ctx context.Context, entries []types.AnalysisEntry) error {
	for i := range entries {
		data, err := json.Marshal(&entries[i])
		if err != nil {
			return fmt.Errorf("failed to marshal entry %q: %w", entries[i].ID, err)
		}
		if err := schema.ValidateEntryJSON(data); err != nil {
			return fmt.Errorf("refusing to persist entry %q: %w", entries[i].ID, err)
		}
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}
	if err := s.kv.SetItem(ctx, historyKey, string(data)); err != nil {
		return fmt.Errorf("failed to write history: %w", err)
	}
	return nil
}

// entryToRaw round-trips an entry through JSON so it can be fed back into
// the normalizer.
func entryToRaw(entry *types.AnalysisEntry) (map[string]any, error) {
	data, err := json.Marshal(entry)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entry: %w", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal entry: %w", err)
	}
	return raw, nil
}

func cloneEntry(entry *types.AnalysisEntry) (*types.AnalysisEntry, error) {
	data, err := json.Marshal(entry)
	if err != nil {
		return nil, fmt.Errorf("failed to clone entry: %w", err)
	}
	var clone types.AnalysisEntry
	if err := json.Unmarshal(data, &clone); err != nil {
		return nil, fmt.Errorf("failed to clone entry: %w", err)
	}
	return &clone, nil
}
