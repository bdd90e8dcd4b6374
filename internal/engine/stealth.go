package engine

import (
	stealth "github.com/anatolykoptev/go-stealth"
)

// BrowserClient is the TLS-fingerprinted client used when YT_STEALTH is on.
type BrowserClient = stealth.BrowserClient

// ChromeHeaders returns the header set of a desktop Chrome navigation.
func ChromeHeaders() map[string]string { return stealth.ChromeHeaders() }
