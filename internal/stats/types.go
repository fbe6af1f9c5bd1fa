// Package stats classifies a table's columns, runs their statistics queries
// and shapes the results into per-column reports.
package stats

import "github.com/dbsmedya/tablestats/internal/query"

// DataType is a recognized column type. Anything outside the enum parses to
// TypeUnrecognized.
type DataType int

const (
	TypeUnrecognized DataType = iota
	TypeBool
	TypeDate
	TypeDatetime
	TypeInt64
	TypeNumeric
	TypeDecimal
	TypeBigNumeric
	TypeBigDecimal
	TypeFloat64
	TypeString
	TypeTime
	TypeTimestamp
)

var dataTypeNames = map[string]DataType{
	query.TypeBool:       TypeBool,
	query.TypeDate:       TypeDate,
	query.TypeDatetime:   TypeDatetime,
	query.TypeInt64:      TypeInt64,
	query.TypeNumeric:    TypeNumeric,
	query.TypeDecimal:    TypeDecimal,
	query.TypeBigNumeric: TypeBigNumeric,
	query.TypeBigDecimal: TypeBigDecimal,
	query.TypeFloat64:    TypeFloat64,
	query.TypeString:     TypeString,
	query.TypeTime:       TypeTime,
	query.TypeTimestamp:  TypeTimestamp,
}

// ParseDataType matches a canonical type name exactly.
func ParseDataType(name string) DataType {
	return dataTypeNames[name]
}

func (t DataType) String() string {
	for name, dt := range dataTypeNames {
		if dt == t {
			return name
		}
	}
	return "UNRECOGNIZED"
}

// Numeric reports whether numeric statistics apply to the type.
func (t DataType) Numeric() bool {
	switch t {
	case TypeInt64, TypeNumeric, TypeDecimal, TypeBigNumeric, TypeBigDecimal, TypeFloat64:
		return true
	case TypeBool, TypeDate, TypeDatetime, TypeString, TypeTime, TypeTimestamp, TypeUnrecognized:
		return false
	default:
		return false
	}
}

// Kind selects the statistics and report layout of a column.
type Kind int

const (
	KindUnsupported Kind = iota
	KindCategorical
	KindNumeric
)

func (k Kind) String() string {
	switch k {
	case KindUnsupported:
		return "unsupported"
	case KindCategorical:
		return "categorical"
	case KindNumeric:
		return "numeric"
	default:
		return "unknown"
	}
}

// ColumnDescriptor is one row of schema discovery.
type ColumnDescriptor struct {
	FieldPath    string
	ColumnName   string
	DataType     string // canonical name, see query.Type*
	NativeType   string // as reported by the source
	TableCatalog string
	TableSchema  string
	TableName    string
}

// Type parses the descriptor's canonical type name.
func (d ColumnDescriptor) Type() DataType {
	return ParseDataType(d.DataType)
}

// Nested reports whether the descriptor is a nested or repeated field.
func (d ColumnDescriptor) Nested() bool {
	return d.FieldPath != d.ColumnName
}

// Table returns the table the column belongs to.
func (d ColumnDescriptor) Table() query.TableRef {
	return query.TableRef{Catalog: d.TableCatalog, Schema: d.TableSchema, Table: d.TableName}
}

// Classify assigns a column its kind. Unrecognized types and nested fields
// are unsupported.
func Classify(d ColumnDescriptor) Kind {
	t := d.Type()
	if t == TypeUnrecognized || d.Nested() {
		return KindUnsupported
	}
	if t.Numeric() {
		return KindNumeric
	}
	return KindCategorical
}
