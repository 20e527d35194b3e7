package lexer

// isWhitespace returns true if the byte is a space, tab, newline or
// carriage return.
func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// isDigit returns true if the byte is a decimal digit.
func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// isHexDigit returns true if the byte is a hexadecimal digit.
func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// isLetter returns true if the byte is an ASCII letter.
func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// isNonASCII returns true if the byte is part of a multi-byte UTF-8
// sequence (high bit set).
func isNonASCII(b byte) bool {
	return b >= 0x80
}

// isNameStart returns true if the byte may start an identifier name.
func isNameStart(b byte) bool {
	return isLetter(b) || isNonASCII(b) || b == '_'
}

// isName returns true if the byte may continue an identifier name,
// i.e. it may appear after the first byte (identifiers permit '-'
// internally, but not as the first byte handled by isNameStart alone;
// the identifier combinator allows a leading '-' explicitly).
func isName(b byte) bool {
	return isNameStart(b) || isDigit(b) || b == '-'
}
