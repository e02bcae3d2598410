package lexer

import "unicode"

func IsMetaChar(r rune) bool {
	return r == '"' ||
		r == '{' ||
		r == '}' ||
		r == ';'
}

func IsNameStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func IsNameRune(r rune) bool {
	return unicode.IsLetter(r) ||
		unicode.IsDigit(r) ||
		r == '_'
}
