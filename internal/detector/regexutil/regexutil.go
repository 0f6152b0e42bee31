// Package regexutil provides the anchored-prefix matcher, lazy regex
// compilation, and capture-group expansion shared by every rule table in
// the detection engine.
package regexutil

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"sync"

	"go.elara.ws/pcre"
)

// Anchor wraps a raw rule pattern in the anchored-prefix, case-insensitive
// wrapper that every rule in the corpus is matched with: the pattern only
// matches at the start of the user agent, or where it is not preceded by
// an identifier character.
func Anchor(pattern string) string {
	escaped := strings.ReplaceAll(pattern, "/", `\/`)
	return `(?i:^|[^A-Z0-9\-_]|[^A-Z0-9\-]_|sprd-|MZ-)(?i:` + escaped + `)`
}

// LazyRegex compiles its pattern on first use and never again. Matching
// never panics the caller: a runtime backtracking failure in the
// underlying engine is trapped and treated as a non-match.
type LazyRegex struct {
	pattern string
	once    sync.Once
	re      *pcre.Regexp
	compErr error
}

// New builds a LazyRegex from an already-anchored pattern.
func New(pattern string) *LazyRegex {
	return &LazyRegex{pattern: pattern}
}

// NewUserAgentMatch builds a LazyRegex from a raw rule pattern, applying
// the anchored-prefix wrapper first.
func NewUserAgentMatch(pattern string) *LazyRegex {
	return New(Anchor(pattern))
}

func (r *LazyRegex) compile() {
	r.once.Do(func() {
		re, err := pcre.Compile(r.pattern)
		if err != nil {
			r.compErr = fmt.Errorf("regexutil: invalid pattern %q: %w", r.pattern, err)
			return
		}
		r.re = re
	})
}

// MatchString reports whether the user agent matches. A load error
// (rejected at rule build time normally) or a match-time panic from the
// backtracker is treated as a non-match, never propagated.
func (r *LazyRegex) MatchString(s string) (matched bool) {
	r.compile()
	if r.compErr != nil || r.re == nil {
		return false
	}
	defer func() {
		if recover() != nil {
			matched = false
		}
	}()
	return r.re.MatchString(s)
}

// FindSubmatch returns the capture groups of the first match, in the same
// shape as regexp.FindStringSubmatch (index 0 is the whole match). Returns
// nil on no match, load error, or a trapped runtime panic.
func (r *LazyRegex) FindSubmatch(s string) (groups []string) {
	r.compile()
	if r.compErr != nil || r.re == nil {
		return nil
	}
	defer func() {
		if recover() != nil {
			groups = nil
		}
	}()
	return r.re.FindStringSubmatch(s)
}

// FindAllSubmatch returns every non-overlapping match's capture groups.
func (r *LazyRegex) FindAllSubmatch(s string) (all [][]string) {
	r.compile()
	if r.compErr != nil || r.re == nil {
		return nil
	}
	defer func() {
		if recover() != nil {
			all = nil
		}
	}()
	return r.re.FindAllStringSubmatch(s, -1)
}

// bareGroupRef matches a bare $1..$9 not already delimited, so it can be
// rewritten before a longer digit run turns it into an out-of-range
// reference (e.g. "$10" must stay group 1 followed by a literal "0", never
// group 10).
var bareGroupRef = regexp.MustCompile(`\$([1-9])`)

// delimit rewrites every bare $N (1-9) in a template into ${N}, so that a
// template such as "$10" is not misread as capture group 10.
func delimit(template string) string {
	return bareGroupRef.ReplaceAllString(template, "${$1}")
}

// Expand substitutes $1..$9 (or ${1}..${9}) in template with the
// corresponding entries of groups (as returned by FindSubmatch). A
// reference to a group beyond len(groups)-1 expands to the empty string.
func Expand(template string, groups []string) string {
	if !strings.Contains(template, "$") {
		return template
	}
	safe := delimit(template)

	var out strings.Builder
	for i := 0; i < len(safe); i++ {
		c := safe[i]
		if c != '$' {
			out.WriteByte(c)
			continue
		}
		if i+1 < len(safe) && safe[i+1] == '{' {
			end := strings.IndexByte(safe[i+2:], '}')
			if end >= 0 {
				idxStr := safe[i+2 : i+2+end]
				var idx int
				if _, err := fmt.Sscanf(idxStr, "%d", &idx); err == nil && idx < len(groups) {
					out.WriteString(groups[idx])
				}
				i += 2 + end
				continue
			}
		}
		out.WriteByte(c)
	}
	return out.String()
}

// TrimVersion normalizes a captured version string: leading/trailing '.'
// and spaces are stripped.
func TrimVersion(v string) string {
	return strings.Trim(v, ". ")
}

// EngineVersionCache is the bounded, shared cache mapping an engine token
// (e.g. "Chrome", "Cronet") to the compiled regex used to pull its version
// out of a user agent. Reads vastly outnumber writes, so it is guarded by
// a reader-preferring RWMutex. It logs once past a soft limit and aborts
// the process at twice that, bounding memory against pathological or
// buggy callers that mint unbounded distinct tokens.
type EngineVersionCache struct {
	mu       sync.RWMutex
	compiled map[string]*pcre.Regexp
	soft     int
	warned   bool
	logger   *slog.Logger
}

// NewEngineVersionCache builds a cache with the given soft warn limit
// (hard abort fires at 2x soft). A soft limit of 0 uses the default of 40,
// matching the corpus's ~20 distinct browser engines.
func NewEngineVersionCache(soft int, logger *slog.Logger) *EngineVersionCache {
	if soft <= 0 {
		soft = 40
	}
	return &EngineVersionCache{
		compiled: make(map[string]*pcre.Regexp),
		soft:     soft,
		logger:   logger,
	}
}

// Regex returns the compiled engine-version regex for token, compiling and
// caching it on first use.
func (c *EngineVersionCache) Regex(token string) (*pcre.Regexp, error) {
	c.mu.RLock()
	if re, ok := c.compiled[token]; ok {
		c.mu.RUnlock()
		return re, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	if re, ok := c.compiled[token]; ok {
		return re, nil
	}

	pattern := `(?i:` + token + `\s*/?\s*((?=\d+\.\d)\d+[.\d]*|\d{1,7}(?=\D|$)))`
	re, err := pcre.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("regexutil: invalid engine-version token %q: %w", token, err)
	}

	if len(c.compiled) >= 2*c.soft {
		panic(fmt.Sprintf("regexutil: engine-version cache exceeded hard limit of %d entries", 2*c.soft))
	}
	if len(c.compiled) >= c.soft && !c.warned {
		c.warned = true
		if c.logger != nil {
			c.logger.Warn("engine-version regex cache exceeded soft limit",
				slog.Int("soft_limit", c.soft), slog.Int("entries", len(c.compiled)))
		}
	}

	c.compiled[token] = re
	return re, nil
}
