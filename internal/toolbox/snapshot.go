package toolbox

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

var ErrCorruptSnapshot = errors.New("corrupt state snapshot")

// snapshot is the persisted form of State. Enums are stored by name so the
// document survives reordering of the constants.
type snapshot struct {
	Tool      string `json:"tool" mapstructure:"tool"`
	Direction string `json:"direction" mapstructure:"direction"`
	Input     string `json:"input" mapstructure:"input"`
	Output    string `json:"output" mapstructure:"output"`
}

// StateStore is the persistence capability. Get returns nil, nil for a key
// that was never written.
type StateStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

// EncodeState serialises s as a JSON snapshot.
func EncodeState(s State) ([]byte, error) {
	return json.Marshal(snapshot{
		Tool:      s.Tool.Name(),
		Direction: s.Direction.Name(),
		Input:     s.Input,
		Output:    s.Output,
	})
}

// DecodeState rebuilds a State from a snapshot. Decoding is field by field
// over DefaultState: absent, unknown or mistyped fields keep their default
// and are reported in the returned error, which never invalidates the state.
func DecodeState(data []byte) (State, error) {
	state := DefaultState()
	if len(bytes.TrimSpace(data)) == 0 {
		return state, nil
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return state, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}

	snap := snapshot{
		Tool:      state.Tool.Name(),
		Direction: state.Direction.Name(),
	}
	var errs []error
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &snap,
	})
	if err != nil {
		return state, err
	}
	if err := decoder.Decode(raw); err != nil {
		errs = append(errs, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err))
	}

	if tool, err := ParseTool(snap.Tool); err == nil {
		state.Tool = tool
	} else {
		errs = append(errs, err)
	}
	if dir, err := ParseDirection(snap.Direction); err == nil {
		state.Direction = dir
	} else {
		errs = append(errs, err)
	}
	state.Input = snap.Input
	state.Output = snap.Output

	return state, errors.Join(errs...)
}

// LoadState reads the snapshot stored under key. A nil store, a missing key
// or a read failure all yield DefaultState; the error is informational.
func LoadState(ctx context.Context, store StateStore, key string) (State, error) {
	if store == nil {
		return DefaultState(), nil
	}
	data, err := store.Get(ctx, key)
	if err != nil {
		return DefaultState(), fmt.Errorf("failed to read state %q: %w", key, err)
	}
	if data == nil {
		return DefaultState(), nil
	}
	return DecodeState(data)
}

// SaveState writes s under key. A nil store is a no-op.
func SaveState(ctx context.Context, store StateStore, key string, s State) error {
	if store == nil {
		return nil
	}
	data, err := EncodeState(s)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}
	if err := store.Put(ctx, key, data); err != nil {
		return fmt.Errorf("failed to write state %q: %w", key, err)
	}
	return nil
}
