package filter

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Filter decides whether a cleaned record is kept.
type Filter interface {
	Match(record string) bool
}

// Parse builds a filter from an expression:
// - Comma-separated exact values: "alpha,beta"
// - Glob: "user-*"
// - Regex: "/^[0-9]+$/"
// Anything else is a case-insensitive substring match.
func Parse(expr string) (Filter, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return Always(true), nil
	}
	if strings.HasPrefix(expr, "/") && strings.HasSuffix(expr, "/") && len(expr) > 2 {
		re, err := regexp.Compile(expr[1 : len(expr)-1])
		if err != nil {
			return nil, fmt.Errorf("filter %q: %w", expr, err)
		}
		return Regex{re: re}, nil
	}
	if strings.Contains(expr, ",") {
		set := map[string]struct{}{}
		for _, p := range strings.Split(expr, ",") {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			set[p] = struct{}{}
		}
		return ExactSet{set: set}, nil
	}
	if strings.ContainsAny(expr, "*?[") {
		re, err := compileGlob(expr)
		if err != nil {
			return nil, fmt.Errorf("filter %q: %w", expr, err)
		}
		return Glob{pattern: expr, re: re}, nil
	}
	return SubstrCI{needle: expr}, nil
}

// Keep returns the indexes of records matched by f, in order.
func Keep(f Filter, records []string) []int {
	idx := make([]int, 0, len(records))
	for i, r := range records {
		if f == nil || f.Match(r) {
			idx = append(idx, i)
		}
	}
	return idx
}

type Always bool

func (a Always) Match(string) bool { return bool(a) }

type ExactSet struct{ set map[string]struct{} }

func (e ExactSet) Match(record string) bool {
	_, ok := e.set[record]
	return ok
}

// Glob matches the whole record; '*' and '?' also match path separators.
type Glob struct {
	pattern string
	re      *regexp.Regexp
}

func (g Glob) Match(record string) bool { return g.re.MatchString(record) }

func (g Glob) String() string { return fmt.Sprintf("glob:%s", g.pattern) }

type Regex struct{ re *regexp.Regexp }

func (r Regex) Match(record string) bool { return r.re.MatchString(record) }

func (r Regex) String() string { return fmt.Sprintf("regex:%s", r.re) }

// SubstrCI matches if record contains needle, case-insensitively.
type SubstrCI struct{ needle string }

func (s SubstrCI) Match(record string) bool {
	return strings.Contains(strings.ToLower(record), strings.ToLower(s.needle))
}

func (s SubstrCI) String() string { return fmt.Sprintf("substr-ci:%s", s.needle) }

// errBadGlob reports an unterminated or empty character class.
var errBadGlob = errors.New("syntax error in glob pattern")

// compileGlob translates a glob into an anchored regexp:
// '*' -> ".*", '?' -> ".", "[...]" kept as a class ("[^" or "[!" negates),
// a backslash escapes the next character, everything else is quoted.
func compileGlob(pattern string) (*regexp.Regexp, error) {
	var b strings.Builder
	b.WriteString(`(?s)^`)
	rs := []rune(pattern)
	for i := 0; i < len(rs); i++ {
		switch c := rs[i]; c {
		case '*':
			b.WriteString(`.*`)
		case '?':
			b.WriteString(`.`)
		case '\\':
			if i+1 >= len(rs) {
				return nil, errBadGlob
			}
			i++
			b.WriteString(regexp.QuoteMeta(string(rs[i])))
		case '[':
			j := i + 1
			var class strings.Builder
			class.WriteByte('[')
			if j < len(rs) && (rs[j] == '^' || rs[j] == '!') {
				class.WriteByte('^')
				j++
			}
			n := 0
			for ; j < len(rs) && rs[j] != ']'; j++ {
				switch rs[j] {
				case '-':
					if n == 0 || j+1 >= len(rs) || rs[j+1] == ']' {
						return nil, errBadGlob
					}
					class.WriteByte('-')
				case '\\':
					if j+1 >= len(rs) {
						return nil, errBadGlob
					}
					j++
					class.WriteString(regexp.QuoteMeta(string(rs[j])))
				default:
					class.WriteString(regexp.QuoteMeta(string(rs[j])))
				}
				n++
			}
			if j >= len(rs) || n == 0 {
				return nil, errBadGlob
			}
			class.WriteByte(']')
			b.WriteString(class.String())
			i = j
		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
		}
	}
	b.WriteString(`$`)
	return regexp.Compile(b.String())
}
