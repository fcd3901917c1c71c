// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package generate

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// checkResponse parses the model's raw JSON text and verifies every
// required top-level field is present and non-null. Validation is
// shallow: the schema sent with the request already constrains nested
// shapes, so the payload is returned untouched for the client to use.
func checkResponse(raw string, required []string) (json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	for _, name := range required {
		val, ok := fields[name]
		if !ok || isJSONNull(val) {
			return nil, fmt.Errorf("%w: %q", ErrIncompleteResponse, name)
		}
	}

	return json.RawMessage(raw), nil
}

func isJSONNull(v json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}
