package sqlfmt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat_SimpleSelect(t *testing.T) {
	got := Format("select * from t where a=1", DefaultOptions())

	want := strings.Join([]string{
		"SELECT",
		"    *",
		"FROM",
		"    t",
		"WHERE",
		"    a = 1",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestFormat_ColumnsOnePerLine(t *testing.T) {
	got := Format("SELECT a, b, c FROM t", DefaultOptions())

	want := strings.Join([]string{
		"SELECT",
		"    a,",
		"    b,",
		"    c",
		"FROM",
		"    t",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestFormat_AndOrBreakLines(t *testing.T) {
	got := Format("select id from users where age > 18 and active = true or admin = 1", DefaultOptions())

	want := strings.Join([]string{
		"SELECT",
		"    id",
		"FROM",
		"    users",
		"WHERE",
		"    age > 18",
		"    AND active = TRUE",
		"    OR admin = 1",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestFormat_BetweenAndStaysInline(t *testing.T) {
	got := Format("select * from t where x between 1 and 5", DefaultOptions())

	assert.Contains(t, got, "x BETWEEN 1 AND 5")
}

func TestFormat_MultiWordKeywords(t *testing.T) {
	got := Format("select a from t left   outer join u on t.id = u.id group by a order by a", DefaultOptions())

	want := strings.Join([]string{
		"SELECT",
		"    a",
		"FROM",
		"    t",
		"    LEFT OUTER JOIN u ON t.id = u.id",
		"GROUP BY",
		"    a",
		"ORDER BY",
		"    a",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestFormat_ShortParenthesesStayInline(t *testing.T) {
	got := Format("select count(*) from t where id in (1, 2, 3)", DefaultOptions())

	assert.Contains(t, got, "    count(*)")
	assert.Contains(t, got, "    id IN (1, 2, 3)")
}

func TestFormat_SubqueryIsIndented(t *testing.T) {
	got := Format("select * from (select id from users where name = 'a very long name to force breaking') x", DefaultOptions())

	want := strings.Join([]string{
		"SELECT",
		"    *",
		"FROM",
		"    (",
		"        SELECT",
		"            id",
		"        FROM",
		"            users",
		"        WHERE",
		"            name = 'a very long name to force breaking'",
		"    ) x",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestFormat_BlankLineBetweenStatements(t *testing.T) {
	got := Format("select 1; select 2;", DefaultOptions())

	assert.Equal(t, "SELECT\n    1;\n\nSELECT\n    2;", got)
}

func TestFormat_LinesBetweenQueriesOption(t *testing.T) {
	opts := DefaultOptions()
	opts.LinesBetweenQueries = 0

	got := Format("select 1; select 2", opts)

	assert.Equal(t, "SELECT\n    1;\nSELECT\n    2", got)
}

func TestFormat_UnionHasNoIndent(t *testing.T) {
	got := Format("select a from t union all select b from u", DefaultOptions())

	want := strings.Join([]string{
		"SELECT",
		"    a",
		"FROM",
		"    t",
		"UNION ALL",
		"SELECT",
		"    b",
		"FROM",
		"    u",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestFormat_LimitKeepsCommaInline(t *testing.T) {
	got := Format("select a from t limit 5, 10", DefaultOptions())

	assert.True(t, strings.HasSuffix(got, "LIMIT\n    5, 10"), got)
}

func TestFormat_StringsAndIdentifiersKeepCase(t *testing.T) {
	got := Format(`select "MixedCase", 'select from' from MyTable`, DefaultOptions())

	assert.Contains(t, got, `"MixedCase",`)
	assert.Contains(t, got, `'select from'`)
	assert.Contains(t, got, "MyTable")
}

func TestFormat_PlaceholdersAreNotSubstituted(t *testing.T) {
	got := Format("select * from t where a = ? and b = $2 and c = :name", DefaultOptions())

	assert.Contains(t, got, "a = ?")
	assert.Contains(t, got, "AND b = $2")
	assert.Contains(t, got, "AND c = :name")
}

func TestFormat_Comments(t *testing.T) {
	got := Format("select a -- first column\nfrom t /* the table */", DefaultOptions())

	assert.Contains(t, got, "a -- first column\n")
	assert.Contains(t, got, "/* the table */")
}

func TestFormat_LowercaseOption(t *testing.T) {
	opts := DefaultOptions()
	opts.Uppercase = false

	got := Format("select * from t", opts)

	assert.Equal(t, "select\n    *\nfrom\n    t", got)
}

func TestFormat_CaseBlock(t *testing.T) {
	got := Format("select case when a=1 then 'x' else 'y' end from t", DefaultOptions())

	assert.Equal(t, "SELECT\n    CASE\n        WHEN a = 1 THEN 'x'\n        ELSE 'y'\n    END\nFROM\n    t", got)
}

func TestFormat_CaseBlockKeepsCaseWhenNotUppercasing(t *testing.T) {
	opts := DefaultOptions()
	opts.Uppercase = false

	got := Format("select case when a then 1 end from t", opts)

	assert.Contains(t, got, "\n    case\n        when a then 1\n    end\n")
}

func TestFormat_MalformedInputStillFormats(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"select (((",
		")))",
		"'unterminated",
		"/* open comment",
		"select \x00\xff from",
	}
	for _, input := range inputs {
		assert.NotPanics(t, func() { Format(input, DefaultOptions()) }, "input %q", input)
	}
	assert.Equal(t, "", Format("   ", DefaultOptions()))
}
