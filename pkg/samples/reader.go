package samples

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Read decodes a stream of JSON documents, one response per document
// (JSON Lines or simply concatenated objects). Each document must be an
// object: the bingo card only checks mappings, so anything else is
// rejected up front rather than silently matching nothing.
func Read(r io.Reader) ([]map[string]any, error) {
	dec := json.NewDecoder(r)

	var responses []map[string]any
	for i := 1; ; i++ {
		var doc any
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return responses, nil
			}
			return nil, fmt.Errorf("failed to decode response %d: %w", i, err)
		}

		obj, ok := doc.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("response %d is not a JSON object", i)
		}
		responses = append(responses, obj)
	}
}
