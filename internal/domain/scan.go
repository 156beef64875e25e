package domain

import (
	"fmt"
	"regexp"
)

const MaxScanPayloadLen = 128

var scanPayloadRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ParseScanPayload validates a scanned check-in code and returns the guest
// identifier it carries. The payload is not trimmed.
func ParseScanPayload(raw string) (string, error) {
	if len(raw) > MaxScanPayloadLen {
		return "", fmt.Errorf("%w: longer than %d characters", ErrInvalidScanPayload, MaxScanPayloadLen)
	}
	if !scanPayloadRe.MatchString(raw) {
		return "", fmt.Errorf("%w: unexpected characters", ErrInvalidScanPayload)
	}
	return raw, nil
}
