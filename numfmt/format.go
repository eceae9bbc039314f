package numfmt

import (
	"fmt"

	"golang.org/x/text/message"

	"github.com/arloliu/matio/errs"
)

// DefaultFormat is the number format applied when the caller supplies none.
// Formats use fmt verb syntax; "%v" renders the shortest representation
// that round-trips.
const DefaultFormat = "%v"

// FormatFunc renders one value as a token.
type FormatFunc[T Value] func(v T) string

// FormatterFor selects the token rendering for the output kind T once per
// writer call. verb is a fmt verb string ("%v", "%.6e", ...); an empty verb
// means DefaultFormat.
//
// Real kinds honor c's punctuation through the CLDR printer when c was
// built by CultureFor. Complex kinds always render invariant "(re+imi)"
// form, which the delimited tokenizer keeps atomic via its parenthesis
// rule.
func FormatterFor[T Value](verb string, c Culture) (FormatFunc[T], error) {
	if verb == "" {
		verb = DefaultFormat
	}

	var zero T
	switch any(zero).(type) {
	case float64, float32:
		if c.hasTag && !c.IsInvariant() {
			p := message.NewPrinter(c.tag)

			return func(v T) string { return p.Sprintf(verb, v) }, nil
		}

		return func(v T) string { return fmt.Sprintf(verb, v) }, nil

	case complex128, complex64:
		return func(v T) string { return fmt.Sprintf(verb, v) }, nil

	default:
		return nil, fmt.Errorf("%w: %T", errs.ErrUnsupportedType, zero)
	}
}
