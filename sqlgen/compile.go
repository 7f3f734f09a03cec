package sqlgen

import (
	"fmt"
	"strings"
)

// compiler carries per-compilation state: anonymous name counters and the
// bound parameter set. One compiler spans a whole statement including its
// subqueries, so generated names stay unique across nesting levels.
type compiler struct {
	counters map[string]int
	params   map[string]any
	order    []string
}

func newCompiler() *compiler {
	return &compiler{
		counters: make(map[string]int),
		params:   make(map[string]any),
	}
}

// nextName allocates the next anonymous name for a prefix. Labels and bind
// parameters sharing a prefix draw from the same sequence.
func (c *compiler) nextName(prefix string) string {
	c.counters[prefix]++
	return fmt.Sprintf("%s_%d", prefix, c.counters[prefix])
}

func (c *compiler) addParam(name string, value any) {
	if _, ok := c.params[name]; !ok {
		c.order = append(c.order, name)
	}
	c.params[name] = value
}

// reservedWords is the subset of reserved identifiers that forces quoting.
var reservedWords = map[string]struct{}{
	"all": {}, "and": {}, "any": {}, "as": {}, "asc": {}, "between": {},
	"by": {}, "case": {}, "cast": {}, "check": {}, "collate": {},
	"column": {}, "constraint": {}, "create": {}, "cross": {},
	"current_date": {}, "current_time": {}, "default": {}, "delete": {},
	"desc": {}, "distinct": {}, "drop": {}, "else": {}, "end": {},
	"except": {}, "exists": {}, "for": {}, "foreign": {}, "from": {},
	"full": {}, "group": {}, "having": {}, "in": {}, "index": {},
	"inner": {}, "insert": {}, "intersect": {}, "into": {}, "is": {},
	"join": {}, "left": {}, "like": {}, "limit": {}, "not": {}, "null": {},
	"offset": {}, "on": {}, "or": {}, "order": {}, "outer": {},
	"primary": {}, "references": {}, "right": {}, "select": {}, "set": {},
	"some": {}, "table": {}, "then": {}, "to": {}, "union": {},
	"unique": {}, "update": {}, "user": {}, "using": {}, "values": {},
	"when": {}, "where": {}, "with": {},
}

// QuoteIdent quotes an identifier when it is a reserved word or contains
// anything beyond lowercase letters, digits and underscores. Lowercase
// unreserved names render bare.
func QuoteIdent(name string) string {
	return quoteIdent(name)
}

func quoteIdent(name string) string {
	if identNeedsQuote(name) {
		return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
	}
	return name
}

func identNeedsQuote(name string) bool {
	if name == "" {
		return true
	}
	if _, ok := reservedWords[name]; ok {
		return true
	}
	for i := 0; i < len(name); i++ {
		ch := name[i]
		switch {
		case ch >= 'a' && ch <= 'z':
		case ch == '_':
		case ch >= '0' && ch <= '9':
			if i == 0 {
				return true
			}
		default:
			return true
		}
	}
	return false
}
