package config

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	mongoScheme    = "mongodb"
	mongoSRVScheme = "mongodb+srv"
)

// ResolvePort parses raw as a TCP port.
// Returns fallback and false when raw is empty, non-numeric or out of range.
func ResolvePort(raw string, fallback int) (int, bool) {
	port, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || port < 1 || port > 65535 {
		return fallback, false
	}
	return port, true
}

// ResolveDatabaseURL normalises raw into a mongodb connection string.
// A missing scheme is filled in with mongodb://. Empty input, a foreign
// scheme or a string without a host resolves to fallback and false.
func ResolveDatabaseURL(raw string, fallback string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, false
	}

	if !strings.Contains(raw, "://") {
		raw = mongoScheme + "://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fallback, false
	}
	if u.Scheme != mongoScheme && u.Scheme != mongoSRVScheme {
		return fallback, false
	}
	if u.Host == "" {
		return fallback, false
	}

	return raw, true
}

// NormaliseOrigins strips trailing slashes and drops duplicates while keeping order.
// Browsers never send a trailing slash in the Origin header.
func NormaliseOrigins(origins []string) []string {
	seen := map[string]bool{}
	normalised := []string{}
	for _, origin := range origins {
		origin = strings.TrimRight(strings.TrimSpace(origin), "/")
		if origin == "" || seen[origin] {
			continue
		}
		seen[origin] = true
		normalised = append(normalised, origin)
	}
	return normalised
}
