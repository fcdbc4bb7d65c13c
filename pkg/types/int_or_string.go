package types

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

var ErrInvalidIntOrString = errors.New("invalid int or string")

// IntOrString accepts both 5 and "5" in JSON payloads sent by form based clients.
type IntOrString int

func (i *IntOrString) UnmarshalJSON(b []byte) error {
	var asInt int
	if err := json.Unmarshal(b, &asInt); err == nil {
		*i = IntOrString(asInt)
		return nil
	}

	var asStr string
	if err := json.Unmarshal(b, &asStr); err != nil {
		return ErrInvalidIntOrString
	}

	parsed, err := strconv.Atoi(strings.TrimSpace(asStr))
	if err != nil {
		return ErrInvalidIntOrString
	}

	*i = IntOrString(parsed)

	return nil
}
