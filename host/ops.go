package host

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sarchlab/macsim/emu"
)

// LoadOperations reads a JSON array of operations, e.g.
//
//	[{"a": 5, "b": 6, "clear": true}, {"a": 3, "b": 7}]
func LoadOperations(path string) ([]emu.Operation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read operations file: %w", err)
	}

	var ops []emu.Operation
	if err := json.Unmarshal(data, &ops); err != nil {
		return nil, fmt.Errorf("failed to parse operations: %w", err)
	}

	return ops, nil
}

// SaveOperations writes operations as a JSON array.
func SaveOperations(path string, ops []emu.Operation) error {
	data, err := json.MarshalIndent(ops, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize operations: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write operations file: %w", err)
	}

	return nil
}
