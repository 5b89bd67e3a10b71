package appstate

import (
	"context"
	"encoding/json"

	"fundilink/utils"

	"go.uber.org/zap"
)

// SchemaVersion guards every persisted payload. Bump it when a stored
// structure changes shape; stale entries are then discarded on load instead
// of being misread.
const SchemaVersion = 1

type envelope struct {
	Version int             `json:"version"`
	Payload json.RawMessage `json:"payload"`
}

// State is the typed load/save boundary over a Store.
type State struct {
	store Store
}

func New(store Store) *State {
	return &State{store: store}
}

// SaveJSON marshals v into a versioned envelope under key.
func (s *State) SaveJSON(ctx context.Context, key string, v interface{}) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	data, err := json.Marshal(envelope{Version: SchemaVersion, Payload: payload})
	if err != nil {
		return err
	}
	return s.store.Set(ctx, key, data)
}

// LoadJSON unmarshals the value under key into dst. Missing, corrupt, or
// version-mismatched entries report false; corrupt ones are also deleted so
// they never resurface. Nothing here ever returns an error to the caller —
// persisted state is advisory, not authoritative.
func (s *State) LoadJSON(ctx context.Context, key string, dst interface{}) bool {
	data, ok, err := s.store.Get(ctx, key)
	if err != nil || !ok {
		return false
	}
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil || env.Version != SchemaVersion {
		utils.GetLogger().Debug("Discarding unusable persisted state",
			zap.String("key", key), zap.Error(err))
		_ = s.store.Delete(ctx, key)
		return false
	}
	if err := json.Unmarshal(env.Payload, dst); err != nil {
		utils.GetLogger().Debug("Discarding corrupt persisted payload",
			zap.String("key", key), zap.Error(err))
		_ = s.store.Delete(ctx, key)
		return false
	}
	return true
}

// Clear removes the given keys, ignoring ones that are absent.
func (s *State) Clear(ctx context.Context, keys ...string) error {
	return s.store.Delete(ctx, keys...)
}

// Close releases the underlying store.
func (s *State) Close() error {
	return s.store.Close()
}
