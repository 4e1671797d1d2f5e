package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// StateStore persists the keyed JSON blobs that make up a team.  Each
// (team, key) pair holds one value; Load reports false when nothing was
// saved under the key yet.
//
// LoadAll and SaveAll work on several keys of one team at once.  SaveAll
// writes either every value or none of them, and LoadAll never observes
// half of a concurrent SaveAll.
type StateStore interface {
	Load(ctx context.Context, teamID, key string, dst any) (bool, error)
	LoadAll(ctx context.Context, teamID string, dst map[string]any) error
	Save(ctx context.Context, teamID, key string, v any) error
	SaveAll(ctx context.Context, teamID string, values map[string]any) error
	Delete(ctx context.Context, teamID string) error
}

func encode(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	return b, nil
}

// encodeAll encodes every value before anything is written, so an
// unencodable value aborts the whole batch.  Keys come back sorted.
func encodeAll(values map[string]any) ([]string, map[string][]byte, error) {
	keys := slices.Sorted(maps.Keys(values))
	out := make(map[string][]byte, len(values))
	for _, k := range keys {
		b, err := encode(values[k])
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", k, err)
		}
		out[k] = b
	}
	return keys, out, nil
}

func decode(b []byte, dst any) error {
	if err := json.Unmarshal(b, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	return nil
}
