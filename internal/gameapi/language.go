package gameapi

import "strings"

// DefaultLocale is used when a site language has no provider mapping
const DefaultLocale = "zh"

// supportedLocales is the provider's locale allow-list
var supportedLocales = map[string]bool{
	"ar": true, "bg": true, "ca": true, "cs": true, "da": true,
	"de": true, "el": true, "en": true, "es": true, "et": true,
	"fi": true, "fr": true, "he": true, "hi": true, "hr": true,
	"hu": true, "hy": true, "id": true, "it": true, "ja": true,
	"ka": true, "ko": true, "lt": true, "lv": true, "mn": true,
	"ms": true, "nl": true, "pl": true, "pt": true, "ro": true,
	"ru": true, "sk": true, "sl": true, "sq": true, "sv": true,
	"th": true, "tr": true, "uk": true, "vi": true, "zh": true,
}

// ResolveLocale maps a site language code to a provider locale. Region
// variants like "zh_CN" or "en-GB" reduce to their base language; anything
// outside the provider's allow-list falls back to DefaultLocale. The second
// return is false when the fallback was taken.
func ResolveLocale(siteLang string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(siteLang))
	if normalized == "" {
		return DefaultLocale, false
	}

	if supportedLocales[normalized] {
		return normalized, true
	}

	if idx := strings.IndexAny(normalized, "_-"); idx > 0 {
		base := normalized[:idx]
		if supportedLocales[base] {
			return base, true
		}
	}

	return DefaultLocale, false
}
