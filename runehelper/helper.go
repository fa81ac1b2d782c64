package runehelper

func IsLetter(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

func IsDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

// IsIdentifierLetter reports whether ch may start an identifier.
func IsIdentifierLetter(ch rune) bool {
	return ch == '_' || IsLetter(ch)
}

// IsIdentifier reports whether ch may continue an identifier.
func IsIdentifier(ch rune) bool {
	return IsDigit(ch) || IsIdentifierLetter(ch)
}

func IsIdentifierRunes(s []rune) bool {
	if len(s) == 0 || !IsIdentifierLetter(s[0]) {
		return false
	}
	for _, r := range s[1:] {
		if !IsIdentifier(r) {
			return false
		}
	}
	return true
}

// IsSingleSpace reports whether ch is discarded between tokens.
func IsSingleSpace(ch rune) bool {
	return ch == ' ' || ch == '\t'
}
