package models

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// payloadPrefix is the data-URI prefix every stored payload carries.
const payloadPrefix = "data:application/pdf;base64,"

// ErrMalformedPayload is returned when a stored payload cannot be decoded
// back into document bytes.
var ErrMalformedPayload = errors.New("malformed document payload")

// EncodePayload wraps raw document bytes into the stored data-URI form.
func EncodePayload(content []byte) string {
	return payloadPrefix + base64.StdEncoding.EncodeToString(content)
}

// DecodePayload unwraps a stored payload back into raw document bytes.
func DecodePayload(payload string) ([]byte, error) {
	encoded, ok := strings.CutPrefix(payload, payloadPrefix)
	if !ok {
		return nil, fmt.Errorf("%w: missing data URI prefix", ErrMalformedPayload)
	}

	content, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	return content, nil
}
