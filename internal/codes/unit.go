package codes

import "strings"

// UnitEach is the generic fallback unit code.
const UnitEach = "EA"

// Unit labels appear in English or Swedish depending on who typed the
// record; both map to the same UN/CEFACT code.
var unitCodes = map[string]string{
	"percent":    "P1",
	"procent":    "P1",
	"fixed rate": "1I",
	"fast summa": "1I",
	"minutes":    "MIN",
	"minuter":    "MIN",
	"words":      "D68",
	"ord":        "D68",
	"hours":      "HUR",
	"timmar":     "HUR",
}

// UnitCode resolves a unit label to its UN/CEFACT code, case-insensitively.
// Unrecognized labels resolve to UnitEach rather than failing.
func UnitCode(label string) string {
	if code, ok := unitCodes[strings.ToLower(label)]; ok {
		return code
	}
	return UnitEach
}
