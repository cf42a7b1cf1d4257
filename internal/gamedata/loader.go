package gamedata

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Load decodes an embedded JSON file into T. Unknown fields are rejected.
func Load[T any](filename string) (T, error) {
	var out T

	raw, err := dataFS.ReadFile(filename)
	if err != nil {
		return out, fmt.Errorf("read %s: %w", filename, err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&out); err != nil {
		return out, fmt.Errorf("decode %s: %w", filename, err)
	}
	return out, nil
}
