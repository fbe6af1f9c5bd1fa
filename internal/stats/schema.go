package stats

import (
	"fmt"

	"github.com/dbsmedya/tablestats/internal/query"
	"github.com/dbsmedya/tablestats/internal/types"
	"github.com/dbsmedya/tablestats/internal/warehouse"
)

var schemaFields = []string{
	query.ColTableCatalog,
	query.ColTableSchema,
	query.ColTableName,
	query.ColColumnName,
	query.ColFieldPath,
	query.ColDataType,
}

// DescriptorsFromResult converts schema discovery rows into descriptors in
// row order. A row missing any schema field aborts the conversion.
func DescriptorsFromResult(res *warehouse.Result, d query.Dialect) ([]ColumnDescriptor, error) {
	descriptors := make([]ColumnDescriptor, 0, len(res.Rows))

	for i, row := range res.Rows {
		values := make(map[string]string, len(schemaFields))
		for _, field := range schemaFields {
			v, ok := row[field]
			if !ok || v == nil {
				return nil, fmt.Errorf("malformed schema row %d: missing %s", i, field)
			}
			values[field] = types.ToString(v)
		}

		native := values[query.ColDataType]
		descriptors = append(descriptors, ColumnDescriptor{
			FieldPath:    values[query.ColFieldPath],
			ColumnName:   values[query.ColColumnName],
			DataType:     d.NormalizeType(native),
			NativeType:   native,
			TableCatalog: values[query.ColTableCatalog],
			TableSchema:  values[query.ColTableSchema],
			TableName:    values[query.ColTableName],
		})
	}

	return descriptors, nil
}
