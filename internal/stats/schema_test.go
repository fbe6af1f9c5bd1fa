package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsmedya/tablestats/internal/query"
	"github.com/dbsmedya/tablestats/internal/warehouse"
)

func TestDescriptorsFromResult(t *testing.T) {
	res := &warehouse.Result{
		Rows: []warehouse.Row{
			schemaRow("proj", "ds", "t", "id", "id", "INT64"),
			schemaRow("proj", "ds", "t", "address", "address.city", "STRING"),
		},
	}

	descriptors, err := DescriptorsFromResult(res, query.BigQuery())
	require.NoError(t, err)
	require.Len(t, descriptors, 2)

	assert.Equal(t, ColumnDescriptor{
		FieldPath:    "id",
		ColumnName:   "id",
		DataType:     "INT64",
		NativeType:   "INT64",
		TableCatalog: "proj",
		TableSchema:  "ds",
		TableName:    "t",
	}, descriptors[0])
	assert.Equal(t, "address.city", descriptors[1].FieldPath)
	assert.True(t, descriptors[1].Nested())
}

func TestDescriptorsFromResult_NormalizesNativeTypes(t *testing.T) {
	res := &warehouse.Result{
		Rows: []warehouse.Row{
			schemaRow("shop", "shop", "orders", "paid", "paid", "tinyint(1)"),
			schemaRow("shop", "shop", "orders", "total", "total", "decimal(10,2)"),
			schemaRow("shop", "shop", "orders", "meta", "meta", "json"),
		},
	}

	descriptors, err := DescriptorsFromResult(res, query.MySQL())
	require.NoError(t, err)

	assert.Equal(t, "BOOL", descriptors[0].DataType)
	assert.Equal(t, "tinyint(1)", descriptors[0].NativeType)
	assert.Equal(t, KindNumeric, Classify(descriptors[1]))
	assert.Equal(t, KindUnsupported, Classify(descriptors[2]))
}

func TestDescriptorsFromResult_MalformedRow(t *testing.T) {
	row := schemaRow("proj", "ds", "t", "id", "id", "INT64")
	delete(row, query.ColFieldPath)

	_, err := DescriptorsFromResult(&warehouse.Result{Rows: []warehouse.Row{row}}, query.BigQuery())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "field_path")
}

func TestDescriptorsFromResult_NullField(t *testing.T) {
	row := schemaRow("proj", "ds", "t", "id", "id", "INT64")
	row[query.ColDataType] = nil

	_, err := DescriptorsFromResult(&warehouse.Result{Rows: []warehouse.Row{row}}, query.BigQuery())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "data_type")
}
