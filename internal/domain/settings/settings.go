// Package settings defines the user-facing preferences of the client and the
// pure transforms applied to them before they are persisted.
package settings

import (
	"strings"
)

// Defaults for values that have never been written.
const (
	DefaultSuggestionCount = 3
	MinSuggestionCount     = 0
	MaxSuggestionCount     = 100
)

// Settings is a point-in-time view of every preference.
type Settings struct {
	BaseURL         string
	BearerToken     *string
	SuggestionCount int
	PrimaryColor    PrimaryColor
	ListOrder       map[int]int
	HiddenLists     map[int]struct{}
	UseMaterialYou  bool
	FontSize        FontSize
	PaddingMode     PaddingMode
}

// Default returns the settings a fresh installation starts with.
func Default() Settings {
	return Settings{
		SuggestionCount: DefaultSuggestionCount,
		PrimaryColor:    Purple,
		ListOrder:       map[int]int{},
		HiddenLists:     map[int]struct{}{},
		FontSize:        FontMedium,
		PaddingMode:     PaddingNormal,
	}
}

// NormalizeBaseURL appends a single trailing "/" to a non-blank URL that
// lacks one. Blank input is returned unchanged.
func NormalizeBaseURL(raw string) string {
	if strings.TrimSpace(raw) == "" || strings.HasSuffix(raw, "/") {
		return raw
	}
	return raw + "/"
}

// ClampSuggestionCount bounds n to [MinSuggestionCount, MaxSuggestionCount].
func ClampSuggestionCount(n int) int {
	return min(max(n, MinSuggestionCount), MaxSuggestionCount)
}

// NormalizeBearerToken maps a blank token to nil, meaning "no token".
func NormalizeBearerToken(token *string) *string {
	if token == nil || strings.TrimSpace(*token) == "" {
		return nil
	}
	return token
}
