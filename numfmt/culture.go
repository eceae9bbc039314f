package numfmt

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/arloliu/matio/errs"
)

// Culture holds the numeric punctuation rules applied when converting
// between tokens and values. The zero separators of Invariant mean plain
// strconv syntax: '.' decimal point, no grouping.
//
// MatrixMarket streams always use Invariant; the delimited codec accepts a
// caller-supplied culture.
type Culture struct {
	// Decimal is the decimal separator rune.
	Decimal rune
	// Group is the digit group separator rune, 0 when ungrouped.
	Group rune

	tag    language.Tag
	hasTag bool
}

// Invariant is the culture-neutral rule set: '.' decimal point, no digit
// grouping.
var Invariant = Culture{Decimal: '.'}

// CultureFor derives the numeric punctuation rules for tag by probing the
// CLDR number printer: it formats two known decimals and picks out the
// separator runes, so the table never needs hand maintenance.
func CultureFor(tag language.Tag) Culture {
	c := Culture{Decimal: '.', tag: tag, hasTag: true}

	p := message.NewPrinter(tag)
	for _, r := range p.Sprintf("%v", number.Decimal(0.5)) {
		if !unicode.IsDigit(r) {
			c.Decimal = r
			break
		}
	}
	for _, r := range p.Sprintf("%v", number.Decimal(1000000)) {
		if !unicode.IsDigit(r) {
			c.Group = r
			break
		}
	}

	return c
}

// IsInvariant reports whether c applies plain strconv punctuation.
func (c Culture) IsInvariant() bool {
	return c.Decimal == '.' && c.Group == 0
}

// normalize rewrites a token from culture punctuation to strconv syntax:
// group separators removed, the decimal separator replaced by '.'.
func (c Culture) normalize(token string) string {
	if c.IsInvariant() {
		return token
	}

	var sb strings.Builder
	sb.Grow(len(token))
	for _, r := range token {
		switch r {
		case c.Group:
			// dropped
		case c.Decimal:
			sb.WriteRune('.')
		default:
			sb.WriteRune(r)
		}
	}

	return sb.String()
}

// parseFloat converts a token to a float of the given bit size under c's
// punctuation rules.
func (c Culture) parseFloat(token string, bitSize int) (float64, error) {
	v, err := strconv.ParseFloat(c.normalize(strings.TrimSpace(token)), bitSize)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errs.ErrNumberParse, err)
	}

	return v, nil
}

// parseComplex converts a single token to a complex value. Full complex
// literals like "(1.5+2i)" always use invariant strconv syntax, so they
// parse as-is regardless of culture; only a plain real token goes through
// c's punctuation rules and gets a zero imaginary part.
func (c Culture) parseComplex(token string, bitSize int) (complex128, error) {
	token = strings.TrimSpace(token)
	if strings.HasPrefix(token, "(") || strings.HasSuffix(token, "i") {
		v, err := strconv.ParseComplex(token, bitSize)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", errs.ErrNumberParse, err)
		}

		return v, nil
	}

	re, err := c.parseFloat(token, bitSize/2)
	if err != nil {
		return 0, err
	}

	return complex(re, 0), nil
}
