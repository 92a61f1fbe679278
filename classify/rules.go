package classify

import (
	"math"
	"strings"

	"github.com/jmgilman/go/sqlfault/sqlerr"
)

// Dialect tags a rule with the database family it was written for.
// It does not take part in matching.
type Dialect string

const (
	DialectAny       Dialect = ""
	DialectMySQL     Dialect = "mysql"
	DialectPostgres  Dialect = "postgres"
	DialectSQLServer Dialect = "sqlserver"
	DialectOracle    Dialect = "oracle"
	DialectDB2       Dialect = "db2"
	DialectH2        Dialect = "h2"
)

// AnyCode makes a rule match every vendor code.
const AnyCode = math.MinInt

// Rule matches a SQL error whose message contains Contains (case-sensitive),
// whose state equals State unless State is empty, and whose vendor code
// equals Code unless Code is AnyCode.
type Rule struct {
	Contains string
	State    string
	Code     int
	Dialect  Dialect
}

// Matches reports whether the rule matches e.
func (r Rule) Matches(e *sqlerr.Error) bool {
	if e == nil || !strings.Contains(e.Message, r.Contains) {
		return false
	}
	if r.State != "" && e.State != r.State {
		return false
	}
	return r.Code == AnyCode || e.Code == r.Code
}

// RuleSet is an ordered list of rules.
type RuleSet []Rule

// Match reports whether any rule matches any of errs.
func (rs RuleSet) Match(errs []*sqlerr.Error) bool {
	_, ok := rs.First(errs)
	return ok
}

// First returns the first error matched by any rule.
func (rs RuleSet) First(errs []*sqlerr.Error) (*sqlerr.Error, bool) {
	for _, e := range errs {
		for _, r := range rs {
			if r.Matches(e) {
				return e, true
			}
		}
	}
	return nil, false
}

func phrase(contains string, dialect Dialect) Rule {
	return Rule{Contains: contains, Code: AnyCode, Dialect: dialect}
}

// ValueTooLongRules match column size overflows by message only.
func ValueTooLongRules() RuleSet {
	return RuleSet{
		phrase("too long", DialectAny),
		phrase("too large", DialectAny),
		phrase("ORA-01461", DialectOracle),
		phrase("ORA-01401", DialectOracle),
		phrase("data would be truncated", DialectSQLServer),
		phrase("SQLCODE=-302, SQLSTATE=22001", DialectDB2),
	}
}

// ForeignKeyRules match referential integrity failures by message only.
func ForeignKeyRules() RuleSet {
	return RuleSet{
		phrase("FOREIGN KEY constraint", DialectSQLServer),
		phrase("foreign key constraint", DialectPostgres),
		phrase("integrity constraint", DialectOracle),
		phrase("constraint violation", DialectH2),
		phrase("SQLCODE=-530, SQLSTATE=23503", DialectDB2),
	}
}

// UniqueVariableIndex is the engine's unique index over process variables.
const UniqueVariableIndex = "ACT_UNIQ_VARIABLE"

// UniqueVariableRules match a violation of UniqueVariableIndex. The vendor
// constants come from each driver's documented error codes.
func UniqueVariableRules() RuleSet {
	return RuleSet{
		{Contains: UniqueVariableIndex, State: "23000", Code: 1062, Dialect: DialectMySQL},
		{Contains: strings.ToLower(UniqueVariableIndex), State: "23505", Code: 0, Dialect: DialectPostgres},
		{Contains: UniqueVariableIndex, State: "23000", Code: 2601, Dialect: DialectSQLServer},
		{Contains: UniqueVariableIndex, State: "23000", Code: 1, Dialect: DialectOracle},
		{Contains: UniqueVariableIndex + "_INDEX_C", State: "23505", Code: 23505, Dialect: DialectH2},
	}
}
