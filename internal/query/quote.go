package query

// Identifiers and values are interpolated as given. Names come from the
// warehouse's own metadata or from the operator's command line and are
// trusted.

// backtick wraps a name in MySQL/BigQuery identifier quotes.
// Example: "my_table" -> "`my_table`"
func backtick(name string) string {
	return "`" + name + "`"
}

// doubleQuote wraps a name in ANSI identifier quotes (PostgreSQL, SQLite).
func doubleQuote(name string) string {
	return `"` + name + `"`
}

// bracket wraps a name in SQL Server identifier quotes.
func bracket(name string) string {
	return "[" + name + "]"
}

// singleQuote renders a string literal.
func singleQuote(value string) string {
	return "'" + value + "'"
}

// doubleQuoteLiteral renders a BigQuery string literal.
func doubleQuoteLiteral(value string) string {
	return `"` + value + `"`
}
