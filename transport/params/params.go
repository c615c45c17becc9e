// Package params reads loosely typed request fields shared by the HTTP and socket transports.
package params

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Int reads a JSON number or a numeric string as an integer.
func Int(raw json.RawMessage) (int64, bool) {
	if len(raw) == 0 {
		return 0, false
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		return 0, false
	}

	var text string
	switch typed := value.(type) {
	case json.Number:
		text = typed.String()
	case string:
		text = strings.TrimSpace(typed)
	default:
		return 0, false
	}

	number, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, false
	}

	return number, true
}

// IsMissing reports an absent or null field.
func IsMissing(raw json.RawMessage) bool {
	return len(raw) == 0 || string(bytes.TrimSpace(raw)) == "null"
}
