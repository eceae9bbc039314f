package numfmt

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestCultureFor_German(t *testing.T) {
	c := CultureFor(language.German)
	require.Equal(t, ',', c.Decimal)
	require.Equal(t, '.', c.Group)
	require.False(t, c.IsInvariant())
}

func TestCultureFor_English(t *testing.T) {
	c := CultureFor(language.AmericanEnglish)
	require.Equal(t, '.', c.Decimal)
	require.Equal(t, ',', c.Group)
}

func TestNormalize(t *testing.T) {
	c := CultureFor(language.German)
	require.Equal(t, "1234.5", c.normalize("1.234,5"))
	require.Equal(t, "-0.25", c.normalize("-0,25"))

	// invariant passes tokens through untouched
	require.Equal(t, "1.234,5", Invariant.normalize("1.234,5"))
}

func TestCultureParseFloat(t *testing.T) {
	c := CultureFor(language.German)
	v, err := c.parseFloat("1.234,5", 64)
	require.NoError(t, err)
	require.Equal(t, 1234.5, v)
}

func TestCultureParseComplex(t *testing.T) {
	c := CultureFor(language.German)

	// complex literals are always invariant; the culture's group separator
	// must not strip the decimal point
	v, err := c.parseComplex("(1.5+2i)", 128)
	require.NoError(t, err)
	require.Equal(t, complex(1.5, 2), v)

	v, err = c.parseComplex("2.5i", 128)
	require.NoError(t, err)
	require.Equal(t, complex(0, 2.5), v)

	// a plain real token still follows the culture's punctuation
	v, err = c.parseComplex("1.234,5", 128)
	require.NoError(t, err)
	require.Equal(t, complex(1234.5, 0), v)
}

func TestFormatterFor_Localized(t *testing.T) {
	format, err := FormatterFor[float64]("%v", CultureFor(language.German))
	require.NoError(t, err)
	require.Equal(t, "1.234,5", format(1234.5))
}

func TestFormatterFor_Invariant(t *testing.T) {
	format, err := FormatterFor[float64]("", Invariant)
	require.NoError(t, err)
	require.Equal(t, "1234.5", format(1234.5))

	cformat, err := FormatterFor[complex128]("%v", Invariant)
	require.NoError(t, err)
	require.Equal(t, "(1.5+2i)", cformat(complex(1.5, 2)))
}

func TestFormatterFor_Verb(t *testing.T) {
	format, err := FormatterFor[float64]("%.3f", Invariant)
	require.NoError(t, err)
	require.Equal(t, "0.125", format(0.125))
}
