package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

var sizeUnits = []string{"Bytes", "KB", "MB", "GB"}

// FormatFileSize renders a byte count in the largest 1024-based unit that
// keeps the value above one, with up to two decimals and trailing zeros
// trimmed.
func FormatFileSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}

	exp := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	if exp >= len(sizeUnits) {
		exp = len(sizeUnits) - 1
	}

	value := float64(bytes) / math.Pow(1024, float64(exp))
	rendered := strconv.FormatFloat(value, 'f', 2, 64)
	rendered = strings.TrimRight(rendered, "0")
	rendered = strings.TrimSuffix(rendered, ".")

	return fmt.Sprintf("%s %s", rendered, sizeUnits[exp])
}
