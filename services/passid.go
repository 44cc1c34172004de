package services

import (
	"crypto/rand"
	"fmt"
)

// PassIDPrefix is the fixed prefix of every admission pass identifier.
const PassIDPrefix = "OSS-EV-"

// passIDAlphabet excludes glyphs that are easy to confuse when read aloud or
// transcribed at the door (0/O, 1/I).
const passIDAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const passIDLength = 8

// GeneratePassID returns a new pass identifier of the form OSS-EV-XXXXXXXX.
// It makes no uniqueness guarantee; callers must treat a store-level unique
// violation as retryable and generate again.
func GeneratePassID() (string, error) {
	buf := make([]byte, passIDLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("pass id entropy: %w", err)
	}
	for i, b := range buf {
		buf[i] = passIDAlphabet[int(b)%len(passIDAlphabet)]
	}
	return PassIDPrefix + string(buf), nil
}
