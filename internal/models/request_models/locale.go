package request_models

import "strings"

// Locale selects the language of prompts and labels.
type Locale string

const (
	LocaleZh Locale = "zh"
	LocaleEn Locale = "en"
)

// ParseLocale maps any "en" variant (en, en-US, EN_gb) to LocaleEn and
// everything else to LocaleZh.
func ParseLocale(s string) Locale {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(s)), "en") {
		return LocaleEn
	}
	return LocaleZh
}
