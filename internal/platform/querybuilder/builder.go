package querybuilder

import (
	"fmt"
	"strconv"
	"strings"
)

type Condition interface {
	appendSQL(buf *strings.Builder, args *[]any, argIndex *int)
}

type eqCondition struct {
	column string
	value  any
}

func Eq(column string, value any) Condition {
	return eqCondition{column: column, value: value}
}

func (c eqCondition) appendSQL(buf *strings.Builder, args *[]any, argIndex *int) {
	buf.WriteString(c.column)
	buf.WriteString(" = ")
	appendArg(buf, c.value, args, argIndex)
}

type containsCondition struct {
	column   string
	fragment string
}

// Contains matches column case-insensitively against %fragment%.
// Wildcards inside fragment are passed through unescaped.
func Contains(column, fragment string) Condition {
	return containsCondition{column: column, fragment: fragment}
}

func (c containsCondition) appendSQL(buf *strings.Builder, args *[]any, argIndex *int) {
	buf.WriteString(c.column)
	buf.WriteString(" ILIKE ")
	appendArg(buf, "%"+c.fragment+"%", args, argIndex)
}

type exprCondition struct {
	expr string
	args []any
}

// Expr embeds raw SQL; each '?' consumes one of args.
func Expr(expr string, args ...any) Condition {
	return exprCondition{expr: expr, args: args}
}

func (c exprCondition) appendSQL(buf *strings.Builder, args *[]any, argIndex *int) {
	buf.WriteString(rewritePlaceholders(c.expr, c.args, args, argIndex))
}

type SelectBuilder struct {
	columns []string
	table   string
	joins   []string
	where   []Condition
	orderBy []string
	limit   int
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

// Join adds an inner join, e.g. Join("games g", "t.game_id = g.game_id").
func (b *SelectBuilder) Join(table, on string) *SelectBuilder {
	b.joins = append(b.joins, "JOIN "+table+" ON "+on)
	return b
}

func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *SelectBuilder) OrderBy(parts ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, parts...)
	return b
}

func (b *SelectBuilder) Limit(limit int) *SelectBuilder {
	b.limit = limit
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("select columns are required")
	}
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("select table is required")
	}

	var buf strings.Builder
	buf.WriteString("SELECT ")
	buf.WriteString(strings.Join(b.columns, ", "))
	buf.WriteString(" FROM ")
	buf.WriteString(b.table)
	for _, join := range b.joins {
		buf.WriteString(" ")
		buf.WriteString(join)
	}

	args := make([]any, 0, len(b.where))
	argIndex := 1
	appendWhereClause(&buf, b.where, &args, &argIndex)
	if len(b.orderBy) > 0 {
		buf.WriteString(" ORDER BY ")
		buf.WriteString(strings.Join(b.orderBy, ", "))
	}
	if b.limit > 0 {
		buf.WriteString(" LIMIT ")
		buf.WriteString(strconv.Itoa(b.limit))
	}

	return buf.String(), args, nil
}

type InsertBuilder struct {
	table   string
	columns []string
	values  []any
	suffix  string
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (b *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	b.columns = append([]string(nil), columns...)
	return b
}

func (b *InsertBuilder) Values(values ...any) *InsertBuilder {
	b.values = append([]any(nil), values...)
	return b
}

func (b *InsertBuilder) Suffix(sql string) *InsertBuilder {
	b.suffix = strings.TrimSpace(sql)
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("insert table is required")
	}
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("insert columns are required")
	}
	if len(b.values) != len(b.columns) {
		return "", nil, fmt.Errorf("insert has %d values, expected %d", len(b.values), len(b.columns))
	}

	var buf strings.Builder
	buf.WriteString("INSERT INTO ")
	buf.WriteString(b.table)
	buf.WriteString(" (")
	buf.WriteString(strings.Join(b.columns, ", "))
	buf.WriteString(") VALUES (")

	args := make([]any, 0, len(b.values))
	argIndex := 1
	for i, value := range b.values {
		if i > 0 {
			buf.WriteString(", ")
		}
		appendArg(&buf, value, &args, &argIndex)
	}
	buf.WriteString(")")
	appendSuffix(&buf, b.suffix)

	return buf.String(), args, nil
}

type DeleteBuilder struct {
	table  string
	where  []Condition
	suffix string
}

func DeleteFrom(table string) *DeleteBuilder {
	return &DeleteBuilder{table: table}
}

func (b *DeleteBuilder) Where(conditions ...Condition) *DeleteBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *DeleteBuilder) Suffix(sql string) *DeleteBuilder {
	b.suffix = strings.TrimSpace(sql)
	return b
}

// ToSQL refuses to build an unconditional delete.
func (b *DeleteBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("delete table is required")
	}
	if len(b.where) == 0 {
		return "", nil, fmt.Errorf("delete from %s requires a where clause", b.table)
	}

	var buf strings.Builder
	buf.WriteString("DELETE FROM ")
	buf.WriteString(b.table)

	args := make([]any, 0, len(b.where))
	argIndex := 1
	appendWhereClause(&buf, b.where, &args, &argIndex)
	appendSuffix(&buf, b.suffix)

	return buf.String(), args, nil
}

func appendWhereClause(buf *strings.Builder, conditions []Condition, args *[]any, argIndex *int) {
	if len(conditions) == 0 {
		return
	}
	buf.WriteString(" WHERE ")
	for i, c := range conditions {
		if i > 0 {
			buf.WriteString(" AND ")
		}
		c.appendSQL(buf, args, argIndex)
	}
}

func appendSuffix(buf *strings.Builder, suffix string) {
	if suffix == "" {
		return
	}
	buf.WriteString(" ")
	buf.WriteString(suffix)
}

func appendArg(buf *strings.Builder, value any, args *[]any, argIndex *int) {
	buf.WriteString("$")
	buf.WriteString(strconv.Itoa(*argIndex))
	*args = append(*args, value)
	*argIndex++
}

func rewritePlaceholders(expr string, exprArgs []any, args *[]any, argIndex *int) string {
	if len(exprArgs) == 0 {
		return expr
	}

	var out strings.Builder
	next := 0
	for i := 0; i < len(expr); i++ {
		if expr[i] == '?' && next < len(exprArgs) {
			appendArg(&out, exprArgs[next], args, argIndex)
			next++
			continue
		}
		out.WriteByte(expr[i])
	}
	return out.String()
}
