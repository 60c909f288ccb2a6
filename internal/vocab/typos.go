package vocab

import "strings"

// typoMap corrects recurring OCR confusions where digits substitute for
// letters inside known menu tokens. Keys are matched case-insensitively
// against whole tokens.
var typoMap = map[string]string{
	"bb0":   "BBQ",
	"88q":   "BBQ",
	"8bq":   "BBQ",
	"b8q":   "BBQ",
	"gyr0":  "GYRO",
	"c0mb0": "COMBO",
	"0nion": "onion",
	"wi":    "with",
	"w1th":  "with",
	"wlth":  "with",
}

// CorrectTypo returns the corrected form of a token, or the token unchanged.
func CorrectTypo(tok string) string {
	if fixed, ok := typoMap[strings.ToLower(tok)]; ok {
		return fixed
	}
	return tok
}
