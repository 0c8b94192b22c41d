package buffer

import "strings"

// EOLPolicy names the end-of-line convention a Document normalizes
// inserted text to (when normalization is enabled) and represents
// stored text as on egress.
type EOLPolicy int

const (
	// LF replaces CRLF and CR with LF on ingress; LF on egress.
	LF EOLPolicy = iota
	// CRLF replaces LF and standalone CR with CRLF on ingress; CRLF
	// on egress.
	CRLF
	// CR replaces CRLF and LF with CR on ingress; CR on egress.
	CR
	// None leaves ingested text untouched; the document's detected
	// policy is inferred from content (CRLF, then LF, then CR,
	// defaulting to LF) rather than enforced.
	None
)

func (p EOLPolicy) String() string {
	switch p {
	case LF:
		return "LF"
	case CRLF:
		return "CRLF"
	case CR:
		return "CR"
	case None:
		return "None"
	default:
		return "unknown"
	}
}

// Sequence returns the literal terminator bytes for the policy. None
// has no single sequence; callers needing egress representation for
// None should use DetectEOLPolicy on the live content instead.
func (p EOLPolicy) Sequence() string {
	switch p {
	case CRLF:
		return "\r\n"
	case CR:
		return "\r"
	default:
		return "\n"
	}
}

// DetectEOLPolicy inspects text for its first line terminator and
// reports CRLF, LF or CR accordingly; text with no terminator detects
// as LF, matching the documented ingress default.
func DetectEOLPolicy(text string) EOLPolicy {
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				return CRLF
			}
			return CR
		case '\n':
			return LF
		}
	}
	return LF
}

// normalizeEOL rewrites every CRLF, LF or CR run in text to the
// sequence for policy, in one left-to-right pass. It is a no-op for
// None.
func normalizeEOL(text string, policy EOLPolicy) string {
	if policy == None || !containsTerminator(text) {
		return text
	}
	target := policy.Sequence()
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch c {
		case '\n':
			b.WriteString(target)
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			b.WriteString(target)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func containsTerminator(text string) bool {
	return strings.IndexAny(text, "\r\n") >= 0
}
