package query

import "strings"

// Canonical type names shared by every dialect.
const (
	TypeBool       = "BOOL"
	TypeDate       = "DATE"
	TypeDatetime   = "DATETIME"
	TypeInt64      = "INT64"
	TypeNumeric    = "NUMERIC"
	TypeDecimal    = "DECIMAL"
	TypeBigNumeric = "BIGNUMERIC"
	TypeBigDecimal = "BIGDECIMAL"
	TypeFloat64    = "FLOAT64"
	TypeString     = "STRING"
	TypeTime       = "TIME"
	TypeTimestamp  = "TIMESTAMP"
)

// BigQuery already reports canonical names. Parameterized types such as
// STRING(20) or ARRAY<STRING> are kept verbatim and stay unrecognized.
func normalizeBigQuery(native string) string {
	return native
}

// baseType lower-cases a native type and strips its length/precision suffix.
func baseType(native string) string {
	t := strings.ToLower(strings.TrimSpace(native))
	if i := strings.IndexByte(t, '('); i >= 0 {
		rest := t[i:]
		t = strings.TrimSpace(t[:i])
		if j := strings.IndexByte(rest, ')'); j >= 0 && j+1 < len(rest) {
			t += rest[j+1:]
		}
	}
	t = strings.TrimSuffix(t, " zerofill")
	t = strings.TrimSuffix(t, " unsigned")
	return strings.TrimSpace(t)
}

var mysqlTypes = map[string]string{
	"bool":       TypeBool,
	"boolean":    TypeBool,
	"tinyint":    TypeInt64,
	"smallint":   TypeInt64,
	"mediumint":  TypeInt64,
	"int":        TypeInt64,
	"integer":    TypeInt64,
	"bigint":     TypeInt64,
	"year":       TypeInt64,
	"decimal":    TypeNumeric,
	"numeric":    TypeNumeric,
	"float":      TypeFloat64,
	"double":     TypeFloat64,
	"real":       TypeFloat64,
	"char":       TypeString,
	"varchar":    TypeString,
	"tinytext":   TypeString,
	"text":       TypeString,
	"mediumtext": TypeString,
	"longtext":   TypeString,
	"enum":       TypeString,
	"set":        TypeString,
	"date":       TypeDate,
	"datetime":   TypeDatetime,
	"timestamp":  TypeTimestamp,
	"time":       TypeTime,
}

func normalizeMySQL(native string) string {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(native)), "tinyint(1)") {
		return TypeBool
	}
	if t, ok := mysqlTypes[baseType(native)]; ok {
		return t
	}
	return strings.ToUpper(strings.TrimSpace(native))
}

var postgresTypes = map[string]string{
	"boolean":                     TypeBool,
	"smallint":                    TypeInt64,
	"integer":                     TypeInt64,
	"bigint":                      TypeInt64,
	"numeric":                     TypeNumeric,
	"decimal":                     TypeNumeric,
	"real":                        TypeFloat64,
	"double precision":            TypeFloat64,
	"character varying":           TypeString,
	"character":                   TypeString,
	"text":                        TypeString,
	"uuid":                        TypeString,
	"date":                        TypeDate,
	"timestamp without time zone": TypeDatetime,
	"timestamp with time zone":    TypeTimestamp,
	"time without time zone":      TypeTime,
	"time with time zone":         TypeTime,
}

func normalizePostgres(native string) string {
	if t, ok := postgresTypes[baseType(native)]; ok {
		return t
	}
	return strings.ToUpper(strings.TrimSpace(native))
}

var sqlServerTypes = map[string]string{
	"bit":            TypeBool,
	"tinyint":        TypeInt64,
	"smallint":       TypeInt64,
	"int":            TypeInt64,
	"bigint":         TypeInt64,
	"decimal":        TypeNumeric,
	"numeric":        TypeNumeric,
	"money":          TypeNumeric,
	"smallmoney":     TypeNumeric,
	"float":          TypeFloat64,
	"real":           TypeFloat64,
	"char":           TypeString,
	"varchar":        TypeString,
	"nchar":          TypeString,
	"nvarchar":       TypeString,
	"date":           TypeDate,
	"datetime":       TypeDatetime,
	"datetime2":      TypeDatetime,
	"smalldatetime":  TypeDatetime,
	"datetimeoffset": TypeTimestamp,
	"time":           TypeTime,
}

func normalizeSQLServer(native string) string {
	if t, ok := sqlServerTypes[baseType(native)]; ok {
		return t
	}
	return strings.ToUpper(strings.TrimSpace(native))
}

// sqliteRules follow SQLite's type affinity rules, checked in order.
var sqliteRules = []struct {
	contains []string
	canon    string
}{
	{[]string{"BOOL"}, TypeBool},
	{[]string{"INT"}, TypeInt64},
	{[]string{"CHAR", "CLOB", "TEXT"}, TypeString},
	{[]string{"REAL", "FLOA", "DOUB"}, TypeFloat64},
	{[]string{"DATETIME"}, TypeDatetime},
	{[]string{"TIMESTAMP"}, TypeTimestamp},
	{[]string{"DATE"}, TypeDate},
	{[]string{"TIME"}, TypeTime},
	{[]string{"DECIMAL", "NUMERIC"}, TypeNumeric},
}

func normalizeSQLite(native string) string {
	t := strings.ToUpper(strings.TrimSpace(native))
	for _, rule := range sqliteRules {
		for _, c := range rule.contains {
			if strings.Contains(t, c) {
				return rule.canon
			}
		}
	}
	return t
}
