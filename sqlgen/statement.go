package sqlgen

import (
	"strconv"
	"strings"

	"github.com/gear6io/geosql/pkg/errors"
)

// Statement is a compiled SQL statement with its named bound parameters.
// It has no identity beyond the single compilation that produced it.
type Statement struct {
	SQL    string
	Params map[string]any

	order []string
}

func newStatement(sql string, c *compiler) *Statement {
	return &Statement{SQL: sql, Params: c.params, order: c.order}
}

// Raw wraps a literal SQL string into a parameterless statement.
func Raw(sql string) *Statement {
	return &Statement{SQL: sql, Params: map[string]any{}}
}

// ParamNames returns parameter names in order of first appearance.
func (s *Statement) ParamNames() []string {
	names := make([]string, len(s.order))
	copy(names, s.order)
	return names
}

// Placeholder selects the positional placeholder style used by a driver.
type Placeholder int

const (
	// Dollar renders $1, $2, ... (Postgres).
	Dollar Placeholder = iota
	// Question renders ?, ?, ...
	Question
)

// Positional rewrites :name parameters to positional placeholders and
// returns the argument values in placeholder order. Casts written as ::
// and text inside quotes are left alone.
func (s *Statement) Positional(style Placeholder) (string, []any, error) {
	var sb strings.Builder
	var args []any
	inString, inIdent := false, false
	n := 0

	sql := s.SQL
	for i := 0; i < len(sql); i++ {
		ch := sql[i]
		switch {
		case ch == '\'' && !inIdent:
			inString = !inString
			sb.WriteByte(ch)
		case ch == '"' && !inString:
			inIdent = !inIdent
			sb.WriteByte(ch)
		case ch == ':' && !inString && !inIdent:
			if i+1 < len(sql) && sql[i+1] == ':' {
				sb.WriteString("::")
				i++
				continue
			}
			j := i + 1
			for j < len(sql) && isNameChar(sql[j]) {
				j++
			}
			if j == i+1 {
				sb.WriteByte(ch)
				continue
			}
			name := sql[i+1 : j]
			value, ok := s.Params[name]
			if !ok {
				return "", nil, errors.Newf(ErrUnboundParameter,
					"parameter %q has no bound value", name)
			}
			n++
			if style == Dollar {
				sb.WriteString("$" + strconv.Itoa(n))
			} else {
				sb.WriteByte('?')
			}
			args = append(args, value)
			i = j - 1
		default:
			sb.WriteByte(ch)
		}
	}
	return sb.String(), args, nil
}

func isNameChar(ch byte) bool {
	switch {
	case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z':
		return true
	case ch >= '0' && ch <= '9', ch == '_':
		return true
	}
	return false
}
