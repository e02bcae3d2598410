package parser

import "github.com/MrEasybutton/BAUx2/lexer"

var keywords = map[string]bool{
	"BAU":       true,
	"WA":        true,
	"CO":        true,
	"PE":        true,
	"ROPE":      true,
	"RO":        true,
	"PONDE":     true,
	"ENDPONDE":  true,
	"FUWA":      true,
	"MOCO":      true,
	"CHIHUAHUA": true,
	"KIRA":      true,
	"BAULEAN":   true,
	"MOE":       true,
	"FLUFFY":    true,
	"FUZZY":     true,
}

// IsName reports whether s is usable as a variable name or section
// label.  Keywords are reserved.
func IsName(s string) bool {
	if s == "" || keywords[s] {
		return false
	}
	for i, r := range s {
		if i == 0 && !lexer.IsNameStart(r) {
			return false
		}
		if i > 0 && !lexer.IsNameRune(r) {
			return false
		}
	}
	return true
}
