package gameapi

import "strings"

// vendorAliases maps legacy platform labels to canonical vendor codes
var vendorAliases = map[string]string{
	"AG":        "casino-evolution",
	"BBIN":      "casino-evolution",
	"EVO":       "casino-evolution",
	"PT":        "slot-pragmatic",
	"PP":        "slot-pragmatic",
	"PRAGMATIC": "slot-pragmatic",
	"CQ9":       "slot-cq9",
	"PG":        "slot-pgsoft",
	"JDB":       "slot-jdb",
	"WG":        "slot-wg",
	"HACKSAW":   "slot-hacksaw",
	"TITAN":     "slot-titan",
	"UPPERCUT":  "slot-uppercut",
	"PETER":     "slot-peter",
	"FC":        "slot-fachai",
	"FACHAI":    "slot-fachai",
	"JILI":      "slot-jili",
	"TADA":      "slot-tada",
	"MG":        "slot-mg",
	"PL":        "casino-playace",
	"SA":        "casino-sa",
}

// ResolveVendorAlias maps a legacy vendor label to its canonical code. The
// static table always wins; unmapped labels get a synthesized
// "slot-"+lowercase code. The second return is false when the code was
// synthesized.
func ResolveVendorAlias(label string) (string, bool) {
	trimmed := strings.TrimSpace(label)
	if mapped, ok := vendorAliases[strings.ToUpper(trimmed)]; ok {
		return mapped, true
	}
	return "slot-" + strings.ToLower(trimmed), false
}
