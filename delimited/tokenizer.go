package delimited

import (
	"regexp"
	"strings"
	"sync"

	"github.com/arloliu/matio/internal/hash"
)

// quotedAtoms keeps parenthesized and quoted spans atomic regardless of
// the delimiter; complex literals like (1.5+2i) survive a comma delimiter
// because of the first alternative.
const quotedAtoms = `\([^)]*\)|"[^"]*"|'[^']*'`

// tokenPattern builds the token pattern for a delimiter. An empty
// delimiter means any whitespace; otherwise every rune of the delimiter
// acts as a separator.
func tokenPattern(delimiter string) string {
	if delimiter == "" {
		return quotedAtoms + `|\S+`
	}

	return quotedAtoms + `|[^` + classEscape(delimiter) + `]+`
}

// classEscape escapes the runes that are special inside a character class.
func classEscape(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\\', ']', '^', '-':
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}

	return sb.String()
}

// Compiled patterns are shared across reader instances; the same delimiter
// always yields the same pattern, so the cache is keyed by the pattern's
// xxHash64. Read-mostly after warmup.
var (
	tokenizerMu    sync.RWMutex
	tokenizerCache = make(map[uint64]*regexp.Regexp)
)

func tokenizerFor(delimiter string) (*regexp.Regexp, error) {
	pattern := tokenPattern(delimiter)
	key := hash.ID(pattern)

	tokenizerMu.RLock()
	re, ok := tokenizerCache[key]
	tokenizerMu.RUnlock()
	if ok {
		return re, nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}

	tokenizerMu.Lock()
	tokenizerCache[key] = re
	tokenizerMu.Unlock()

	return re, nil
}

// unquote strips one matching pair of surrounding quote characters before
// numeric parsing. Parentheses stay: the complex parser consumes them.
func unquote(token string) string {
	if len(token) >= 2 {
		first, last := token[0], token[len(token)-1]
		if first == last && (first == '\'' || first == '"') {
			return token[1 : len(token)-1]
		}
	}

	return token
}
