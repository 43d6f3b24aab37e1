// Package dateformat provides locale-aware date formatting with a bounded
// formatter cache.
//
// The package keeps a process-wide default locale, configurable with
// SetLocale. Formatters are cheap to use but not to construct (locale
// resolution goes through golang.org/x/text matching), so they are cached
// by (locale, options) with least-recently-used eviction: the space of
// distinct pairs is small in practice but unbounded in principle.
package dateformat

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/text/language"
)

// Sentinel errors for formatter operations.
var (
	ErrInvalidLocale  = errors.New("invalid locale")
	ErrInvalidPattern = errors.New("invalid date pattern")
)

// DefaultLocale is used until SetLocale succeeds, and as the fallback when
// formatting with an unresolvable locale.
const DefaultLocale = "en-US"

// MaxCachedFormatters bounds the formatter cache.
const MaxCachedFormatters = 64

// Style selects a predefined date or time representation.
type Style int

// Styles, from omitted to most verbose.
const (
	StyleNone Style = iota
	StyleShort
	StyleMedium
	StyleLong
	StyleFull
)

func (s Style) String() string {
	switch s {
	case StyleNone:
		return "none"
	case StyleShort:
		return "short"
	case StyleMedium:
		return "medium"
	case StyleLong:
		return "long"
	case StyleFull:
		return "full"
	}
	return "unknown"
}

// Options selects what a Formatter renders. Zero value renders a medium
// date with no time.
//
// Pattern, when non-empty, overrides DateStyle/TimeStyle with a custom
// token format: YYYY, YY, MMMM, MMM, MM, M, DD, D, with [brackets] for
// literal text. Month names come from the formatter's locale.
type Options struct {
	DateStyle Style
	TimeStyle Style
	Pattern   string
}

// cacheKey builds the pure, serializable cache key for (locale, options).
func (o Options) cacheKey(locale string) string {
	return locale + "|" + o.DateStyle.String() + "|" + o.TimeStyle.String() + "|" + o.Pattern
}

// Formatter renders times for one resolved locale and option set.
type Formatter struct {
	locale string // canonical matched tag, e.g. "fr-CA"
	data   *localeData
	opts   Options
}

// New creates an uncached Formatter. The locale accepts both BCP 47 and
// POSIX-style underscore forms ("fr-CA", "fr_CA"). Returns
// ErrInvalidLocale when the locale cannot be parsed.
func New(locale string, opts Options) (*Formatter, error) {
	canonical, data, err := resolveLocale(locale)
	if err != nil {
		return nil, err
	}
	if opts.Pattern != "" {
		if err := validatePattern(opts.Pattern); err != nil {
			return nil, err
		}
	}
	if opts.DateStyle == StyleNone && opts.TimeStyle == StyleNone && opts.Pattern == "" {
		opts.DateStyle = StyleMedium
	}
	return &Formatter{locale: canonical, data: data, opts: opts}, nil
}

// formatters caches Formatter instances by (locale, options).
var formatters, _ = lru.New[string, *Formatter](MaxCachedFormatters)

// Cached returns a Formatter for (locale, opts), constructing and caching
// it on first use.
func Cached(locale string, opts Options) (*Formatter, error) {
	canonical, _, err := resolveLocale(locale)
	if err != nil {
		return nil, err
	}
	key := opts.cacheKey(canonical)
	if f, ok := formatters.Get(key); ok {
		return f, nil
	}
	f, err := New(canonical, opts)
	if err != nil {
		return nil, err
	}
	formatters.Add(key, f)
	return f, nil
}

// Locale returns the canonical locale the formatter resolved to.
func (f *Formatter) Locale() string {
	return f.locale
}

// Format renders t according to the formatter's locale and options.
func (f *Formatter) Format(t time.Time) string {
	if f.opts.Pattern != "" {
		return f.formatPattern(t, f.opts.Pattern)
	}

	var parts []string
	if f.opts.DateStyle != StyleNone {
		parts = append(parts, f.formatPattern(t, f.data.datePattern(f.opts.DateStyle)))
	}
	if f.opts.TimeStyle != StyleNone {
		parts = append(parts, f.formatTime(t))
	}
	return strings.Join(parts, ", ")
}

// formatPattern expands date tokens against the locale's name tables.
// Token grammar follows the bracket-escape rules of validatePattern.
func (f *Formatter) formatPattern(t time.Time, pattern string) string {
	var out strings.Builder
	out.Grow(len(pattern) + 10)

	i := 0
	for i < len(pattern) {
		if pattern[i] == '[' {
			end := strings.Index(pattern[i+1:], "]")
			if end == -1 {
				out.WriteString(pattern[i:])
				break
			}
			out.WriteString(pattern[i+1 : i+1+end])
			i += end + 2
			continue
		}

		matched := false
		for _, tok := range patternTokens {
			if strings.HasPrefix(pattern[i:], tok) {
				out.WriteString(f.expandToken(tok, t))
				i += len(tok)
				matched = true
				break
			}
		}
		if !matched {
			out.WriteByte(pattern[i])
			i++
		}
	}
	return out.String()
}

// patternTokens ordered by length descending for greedy matching.
var patternTokens = []string{"YYYY", "MMMM", "WWWW", "MMM", "YY", "MM", "DD", "M", "D"}

func (f *Formatter) expandToken(tok string, t time.Time) string {
	switch tok {
	case "YYYY":
		return fmt.Sprintf("%04d", t.Year())
	case "YY":
		return fmt.Sprintf("%02d", t.Year()%100)
	case "MMMM":
		return f.data.monthsLong[t.Month()-1]
	case "MMM":
		return f.data.monthsShort[t.Month()-1]
	case "MM":
		return fmt.Sprintf("%02d", int(t.Month()))
	case "M":
		return strconv.Itoa(int(t.Month()))
	case "WWWW":
		return f.data.weekdays[t.Weekday()]
	case "DD":
		return fmt.Sprintf("%02d", t.Day())
	case "D":
		return strconv.Itoa(t.Day())
	}
	return tok
}

func (f *Formatter) formatTime(t time.Time) string {
	if f.data.time24 {
		return t.Format("15:04")
	}
	return t.Format("3:04 PM")
}

// MaxPatternLength limits custom pattern length to prevent abuse.
const MaxPatternLength = 50

func validatePattern(pattern string) error {
	if len(pattern) > MaxPatternLength {
		return fmt.Errorf("%w: exceeds %d characters", ErrInvalidPattern, MaxPatternLength)
	}
	rest := pattern
	for {
		open := strings.Index(rest, "[")
		if open == -1 {
			return nil
		}
		end := strings.Index(rest[open+1:], "]")
		if end == -1 {
			return fmt.Errorf("%w: unclosed bracket", ErrInvalidPattern)
		}
		rest = rest[open+end+2:]
	}
}

// ---------------------------------------------------------------------------
// Process-wide default locale
// ---------------------------------------------------------------------------

var (
	localeMu      sync.RWMutex
	currentLocale = DefaultLocale
)

// SetLocale changes the process-wide default locale. On an unparseable
// locale the previous setting stays in effect and an error is returned;
// the caller decides whether to log it.
func SetLocale(locale string) error {
	canonical, _, err := resolveLocale(locale)
	if err != nil {
		return err
	}
	localeMu.Lock()
	currentLocale = canonical
	localeMu.Unlock()
	return nil
}

// Locale returns the process-wide default locale.
func Locale() string {
	localeMu.RLock()
	defer localeMu.RUnlock()
	return currentLocale
}

// Format renders t with the process-wide default locale. It never fails:
// an unusable state falls back to DefaultLocale with the zero options.
func Format(t time.Time, opts Options) string {
	f, err := Cached(Locale(), opts)
	if err != nil {
		f, err = Cached(DefaultLocale, opts)
		if err != nil {
			f, _ = Cached(DefaultLocale, Options{})
		}
	}
	return f.Format(t)
}

// ---------------------------------------------------------------------------
// Locale resolution
// ---------------------------------------------------------------------------

// resolveLocale parses the locale (accepting underscore separators) and
// matches it against the supported set. Unknown-but-parseable locales fall
// back to the closest supported tag; syntactically broken ones error.
func resolveLocale(locale string) (string, *localeData, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
	if normalized == "" {
		return "", nil, fmt.Errorf("%w: empty", ErrInvalidLocale)
	}
	tag, err := language.Parse(normalized)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %q: %v", ErrInvalidLocale, locale, err)
	}
	_, index, _ := matcher.Match(tag)
	data := &locales[index]
	return data.name, data, nil
}

var matcher = language.NewMatcher(supportedTags())

func supportedTags() []language.Tag {
	tags := make([]language.Tag, len(locales))
	for i := range locales {
		tags[i] = language.MustParse(locales[i].name)
	}
	return tags
}
