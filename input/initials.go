package input

import "unicode"

// MaxInitials is the length of a name on the score log.
const MaxInitials = 3

// AppendInitials adds the letters of typed to buf, upper-cased, until buf holds
// MaxInitials runes. Anything that is not a letter is dropped.
func AppendInitials(buf, typed []rune) []rune {
	for _, r := range typed {
		if len(buf) >= MaxInitials {
			break
		}
		if !unicode.IsLetter(r) {
			continue
		}
		buf = append(buf, unicode.ToUpper(r))
	}
	return buf
}

// Initials normalizes free text the same way AppendInitials does.
func Initials(s string) string {
	return string(AppendInitials(nil, []rune(s)))
}
