package engine

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// reportIDLayout is the UTC timestamp that prefixes every report id.
const reportIDLayout = "20060102-150405"

// reportID names a report evaluated at at, for example
// "20240501-120000-9f3ac2d1", so ids sort in evaluation order.
func reportID(at time.Time) string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return at.UTC().Format(reportIDLayout)
	}
	return at.UTC().Format(reportIDLayout) + "-" + hex.EncodeToString(b)
}
