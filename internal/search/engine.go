package search

import (
	"regexp"

	"github.com/itsakc-me/piecetree-go/internal/errs"
)

// MatchesCap bounds how many matches FindAll ever materializes,
// regardless of the caller-supplied max.
const MatchesCap = 1000

// defaultWordSeparators is used for whole_word boundary assertions
// when Options.WordSeparators is empty: the neighbouring byte must be
// a document boundary, whitespace, or punctuation.
const defaultWordSeparators = " \t\n\r\f\v~!@#$%^&*()-=+[{]}\\|;:'\",.<>/?`"

// Options configures a query.
type Options struct {
	UseRegex       bool
	CaseSensitive  bool
	WordSeparators string
	WholeWord      bool
	CaptureGroups  bool
}

// Match is one search result.
type Match struct {
	Start, End int
	Groups     []string // populated only when Options.CaptureGroups is set
}

// TextSource is the minimal read surface search needs from a document.
type TextSource interface {
	Length() int
	TextRange(start, end int) string
}

// Engine searches a TextSource.
type Engine struct {
	src TextSource
}

// New returns an Engine reading from src.
func New(src TextSource) *Engine {
	return &Engine{src: src}
}

// CompileQuery builds the regular expression a query and its options
// compile to: literal queries are escaped, whole_word wraps the
// pattern with boundary assertions against word_separators (or the
// default separator class), and case_sensitive toggles the (?i) flag.
func CompileQuery(query string, opts Options) (*regexp.Regexp, error) {
	pattern := query
	if !opts.UseRegex {
		pattern = regexp.QuoteMeta(pattern)
	}
	if opts.WholeWord {
		seps := opts.WordSeparators
		if seps == "" {
			seps = defaultWordSeparators
		}
		class := "[" + regexp.QuoteMeta(seps) + "]"
		pattern = `(?:^|` + class + `)(?:` + pattern + `)(?:$|` + class + `)`
	}
	if !opts.CaseSensitive {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errs.Wrap(errs.InvalidQuery, "compiling search query", err)
	}
	return re, nil
}

// windowSize and minTailMargin drive the sliding-window scan: windowSize
// is how much text is pulled from the source per step, and the retained
// overlap between consecutive windows is tailLength: twice the larger of
// minTailMargin and the compiled pattern's source length.
const (
	windowSize    = 8192
	minTailMargin = 256
)

func tailLength(queryLen int) int {
	margin := minTailMargin
	if queryLen > margin {
		margin = queryLen
	}
	return 2 * margin
}

// FindAll returns every match at offset >= start, in ascending order,
// capped at min(max, MatchesCap).
func (e *Engine) FindAll(query string, start int, opts Options, max int) ([]Match, error) {
	re, err := CompileQuery(query, opts)
	if err != nil {
		return nil, err
	}
	if max <= 0 || max > MatchesCap {
		max = MatchesCap
	}
	var out []Match
	cb := func(m Match) bool {
		out = append(out, m)
		return len(out) < max
	}
	e.scanForward(re, start, e.src.Length(), opts, cb)
	return out, nil
}

// FindNext returns the first match whose start offset is >= start.
func (e *Engine) FindNext(query string, start int, opts Options) (Match, bool, error) {
	re, err := CompileQuery(query, opts)
	if err != nil {
		return Match{}, false, err
	}
	var found Match
	ok := false
	e.scanForward(re, start, e.src.Length(), opts, func(m Match) bool {
		found = m
		ok = true
		return false
	})
	return found, ok, nil
}

// FindPrevious returns the last match whose end offset is < end.
func (e *Engine) FindPrevious(query string, end int, opts Options) (Match, bool, error) {
	re, err := CompileQuery(query, opts)
	if err != nil {
		return Match{}, false, err
	}
	var last Match
	ok := false
	e.scanForward(re, 0, end, opts, func(m Match) bool {
		if m.End < end {
			last = m
			ok = true
		}
		return true
	})
	return last, ok, nil
}

// scanForward runs re over e.src in overlapping windows covering
// [from, to), invoking cb with every match whose start lies in that
// range, in ascending order, until cb returns false or the source is
// exhausted. Each window retains a tail of the previous window so
// matches straddling a window boundary are still found; reportFloor
// tracks the lowest offset still eligible to report, so the retained
// tail is never double-reported.
func (e *Engine) scanForward(re *regexp.Regexp, from, to int, opts Options, cb func(Match) bool) {
	if from < 0 {
		from = 0
	}
	if to > e.src.Length() {
		to = e.src.Length()
	}
	if from >= to {
		return
	}

	tail := tailLength(len(re.String()))
	windowBase := from
	reportFloor := from

	for windowBase < to {
		windowEnd := windowBase + windowSize
		if windowEnd > to {
			windowEnd = to
		}
		window := e.src.TextRange(windowBase, windowEnd)

		searchFrom := 0
		if windowBase < reportFloor {
			searchFrom = reportFloor - windowBase
		}

		var groupIdx [][]int
		if opts.CaptureGroups {
			groupIdx = re.FindAllStringSubmatchIndex(window[searchFrom:], -1)
		}
		idx := re.FindAllStringIndex(window[searchFrom:], -1)

		for i, loc := range idx {
			mStart := windowBase + searchFrom + loc[0]
			mEnd := windowBase + searchFrom + loc[1]
			if mStart < reportFloor || mStart >= to {
				continue
			}
			match := Match{Start: mStart, End: mEnd}
			if opts.CaptureGroups && i < len(groupIdx) {
				match.Groups = submatchStrings(window[searchFrom:], groupIdx[i])
			}
			if !cb(match) {
				return
			}
			reportFloor = mEnd
			if reportFloor == mStart {
				reportFloor++ // guarantee forward progress on zero-width matches
			}
		}

		if windowEnd >= to {
			break
		}
		next := windowEnd - tail
		if next <= windowBase {
			next = windowBase + 1
		}
		windowBase = next
	}
}

func submatchStrings(s string, loc []int) []string {
	groups := make([]string, 0, len(loc)/2)
	for i := 0; i < len(loc); i += 2 {
		if loc[i] < 0 {
			groups = append(groups, "")
			continue
		}
		groups = append(groups, s[loc[i]:loc[i+1]])
	}
	return groups
}
