package sqlfmt

import (
	"sort"
	"strings"
)

// Clause keywords start a new indented block.
var topLevelWords = []string{
	"ADD", "AFTER", "ALTER COLUMN", "ALTER TABLE", "DELETE FROM", "EXCEPT",
	"FETCH FIRST", "FROM", "GROUP BY", "GO", "HAVING", "INSERT INTO", "INSERT",
	"LIMIT", "MODIFY", "ORDER BY", "RETURNING", "SELECT", "SET CURRENT SCHEMA",
	"SET SCHEMA", "SET", "UPDATE", "VALUES", "WHERE",
}

// Set operators sit flush with the surrounding clauses.
var topLevelNoIndentWords = []string{
	"INTERSECT", "INTERSECT ALL", "MINUS", "UNION", "UNION ALL",
}

// Boolean connectives and joins break the line inside a clause.
var newlineWords = []string{
	"AND", "CROSS APPLY", "CROSS JOIN", "ELSE", "FULL JOIN", "FULL OUTER JOIN",
	"INNER JOIN", "JOIN", "LEFT JOIN", "LEFT OUTER JOIN", "OR", "OUTER APPLY",
	"OUTER JOIN", "RIGHT JOIN", "RIGHT OUTER JOIN", "WHEN", "XOR",
}

var reservedWords = []string{
	"ALL", "ALTER", "ANALYZE", "ANY", "AS", "ASC", "AUTO_INCREMENT", "BEGIN",
	"BETWEEN", "BIGINT", "BINARY", "BOOLEAN", "BOTH", "BY", "CASCADE",
	"CAST", "CHAR", "CHARACTER", "CHECK", "COLLATE", "COLUMN", "COMMIT",
	"CONSTRAINT", "CREATE", "CROSS", "CURRENT_DATE", "CURRENT_TIME",
	"CURRENT_TIMESTAMP", "DATABASE", "DATE", "DECIMAL", "DEFAULT", "DELETE",
	"DESC", "DESCRIBE", "DISTINCT", "DO", "DROP", "ENGINE", "ESCAPE",
	"EXISTS", "EXPLAIN", "FALSE", "FIRST", "FOR", "FOREIGN", "FULL", "FUNCTION",
	"GRANT", "IF", "IGNORE", "ILIKE", "IN", "INDEX", "INNER", "INT", "INTEGER",
	"INTERVAL", "INTO", "IS", "KEY", "LAST", "LEFT", "LIKE", "LOCK", "NATURAL",
	"NOT", "NULL", "NULLS", "NUMERIC", "OFFSET", "ON", "ONLY", "OUTER", "OVER",
	"PARTITION", "PRIMARY", "PROCEDURE", "RECURSIVE", "REFERENCES", "REPLACE",
	"REVOKE", "RIGHT", "ROLLBACK", "ROW", "ROWS", "SCHEMA", "SHOW", "SOME",
	"TABLE", "TEMPORARY", "TEXT", "THEN", "TIMESTAMP", "TO", "TOP",
	"TRANSACTION", "TRIGGER", "TRUE", "TRUNCATE", "UNIQUE", "UNSIGNED", "USING",
	"VARCHAR", "VIEW", "WINDOW", "WITH", "WITHOUT",
}

// CASE and END open and close an indented block like parentheses.
var (
	openBlockWords  = []string{"CASE"}
	closeBlockWords = []string{"END"}
)

type keyword struct {
	parts []string
	kind  tokenKind
}

// keywords is ordered longest phrase first so "LEFT OUTER JOIN" wins over
// "LEFT" and "UNION ALL" over "UNION".
var keywords = buildKeywords()

func buildKeywords() []keyword {
	var out []keyword
	add := func(words []string, kind tokenKind) {
		for _, w := range words {
			out = append(out, keyword{parts: strings.Fields(w), kind: kind})
		}
	}
	add(topLevelWords, tokenReservedTopLevel)
	add(topLevelNoIndentWords, tokenReservedTopLevelNoIndent)
	add(newlineWords, tokenReservedNewline)
	add(reservedWords, tokenReserved)
	add(openBlockWords, tokenOpenParen)
	add(closeBlockWords, tokenCloseParen)

	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i].parts) > len(out[j].parts)
	})
	return out
}
