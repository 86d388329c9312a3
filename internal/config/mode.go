package config

import "strings"

// Mode selects which identity and storage backend the process uses.
type Mode string

const (
	// ModeMock serves everything from an in-memory store with mock identities.
	ModeMock Mode = "MOCK"
	// ModeDev targets the development Supabase project and database.
	ModeDev Mode = "DEV"
	// ModeLive targets the production Supabase project and database.
	ModeLive Mode = "LIVE"
)

// ResolveMode normalizes a raw configuration value into one of the three
// operating modes. Unrecognized or empty values resolve to ModeMock; the
// caller is expected to log a warning in that case. Resolution never fails.
func ResolveMode(raw string) Mode {
	switch Mode(strings.ToUpper(strings.TrimSpace(raw))) {
	case ModeMock:
		return ModeMock
	case ModeDev:
		return ModeDev
	case ModeLive:
		return ModeLive
	}
	return ModeMock
}

// IsRemote reports whether the mode talks to a real Supabase project.
func (m Mode) IsRemote() bool {
	return m == ModeDev || m == ModeLive
}
