package query

import "fmt"

// BigQuery targets GoogleSQL. Tables are addressed as `catalog.schema.table`
// and columns are read from INFORMATION_SCHEMA.COLUMN_FIELD_PATHS so nested
// fields appear with their dotted path.
func BigQuery() Dialect {
	return &sqlDialect{
		name:    "bigquery",
		quote:   backtick,
		literal: doubleQuoteLiteral,
		tableName: func(ref TableRef) string {
			return backtick(ref.String())
		},
		countIf: func(cond string) string { return "COUNTIF(" + cond + ")" },
		isInf:   func(col string) string { return "IS_INF(" + col + ")" },
		average: identity,
		schema: func(d *sqlDialect, ref TableRef) string {
			return fmt.Sprintf("SELECT\n  %s, %s, %s, %s, %s, %s\nFROM %s.%s.INFORMATION_SCHEMA.COLUMN_FIELD_PATHS\nWHERE table_name=%s",
				ColTableCatalog, ColTableSchema, ColTableName, ColColumnName, ColFieldPath, ColDataType,
				backtick(ref.Catalog), ref.Schema, doubleQuoteLiteral(ref.Table))
		},
		normalize: normalizeBigQuery,
	}
}

// MySQL addresses tables as `schema`.`table`; the catalog only labels the
// report. COLUMN_TYPE is reported so tinyint(1) can be told apart as BOOL.
func MySQL() Dialect {
	return &sqlDialect{
		name:    "mysql",
		quote:   backtick,
		literal: singleQuote,
		tableName: func(ref TableRef) string {
			return backtick(ref.Schema) + "." + backtick(ref.Table)
		},
		countIf: countIfCase,
		isInf:   noInfinity,
		average: identity,
		schema: func(d *sqlDialect, ref TableRef) string {
			return schemaProjection(ref, "TABLE_SCHEMA", "TABLE_NAME", "COLUMN_NAME", "COLUMN_TYPE") +
				fmt.Sprintf("\nFROM information_schema.COLUMNS\nWHERE TABLE_SCHEMA = %s AND TABLE_NAME = %s\nORDER BY ORDINAL_POSITION",
					singleQuote(ref.Schema), singleQuote(ref.Table))
		},
		tableInfo: func(d *sqlDialect, ref TableRef) string {
			return fmt.Sprintf("SELECT\n  (SELECT COUNT(1) FROM %s) AS %s,\n  (SELECT DATA_LENGTH + INDEX_LENGTH FROM information_schema.TABLES WHERE TABLE_SCHEMA = %s AND TABLE_NAME = %s) AS %s",
				d.tableName(ref), ColRowCount, singleQuote(ref.Schema), singleQuote(ref.Table), ColByteSize)
		},
		normalize: normalizeMySQL,
	}
}

// Postgres addresses tables by their three-part name; the catalog must be
// the connected database.
func Postgres() Dialect {
	return &sqlDialect{
		name:    "postgres",
		quote:   doubleQuote,
		literal: singleQuote,
		tableName: func(ref TableRef) string {
			return doubleQuote(ref.Catalog) + "." + doubleQuote(ref.Schema) + "." + doubleQuote(ref.Table)
		},
		countIf: countIfCase,
		isInf: func(col string) string {
			return col + "::float8 IN ('Infinity'::float8, '-Infinity'::float8)"
		},
		average: identity,
		schema: func(d *sqlDialect, ref TableRef) string {
			return schemaProjection(ref, "table_schema", "table_name", "column_name", "data_type") +
				fmt.Sprintf("\nFROM information_schema.columns\nWHERE table_schema = %s AND table_name = %s\nORDER BY ordinal_position",
					singleQuote(ref.Schema), singleQuote(ref.Table))
		},
		tableInfo: func(d *sqlDialect, ref TableRef) string {
			rel := doubleQuote(ref.Schema) + "." + doubleQuote(ref.Table)
			return fmt.Sprintf("SELECT\n  (SELECT COUNT(1) FROM %s) AS %s,\n  pg_total_relation_size(%s::regclass) AS %s",
				d.tableName(ref), ColRowCount, singleQuote(rel), ColByteSize)
		},
		normalize: normalizePostgres,
	}
}

// SQLServer uses TOP instead of LIMIT and averages through FLOAT so integer
// columns keep their fractional mean.
func SQLServer() Dialect {
	return &sqlDialect{
		name:    "sqlserver",
		quote:   bracket,
		literal: singleQuote,
		tableName: func(ref TableRef) string {
			return bracket(ref.Catalog) + "." + bracket(ref.Schema) + "." + bracket(ref.Table)
		},
		countIf: countIfCase,
		isInf:   noInfinity,
		average: func(col string) string { return "CAST(" + col + " AS FLOAT)" },
		useTop:  true,
		schema: func(d *sqlDialect, ref TableRef) string {
			return schemaProjection(ref, "TABLE_SCHEMA", "TABLE_NAME", "COLUMN_NAME", "DATA_TYPE") +
				fmt.Sprintf("\nFROM %s.INFORMATION_SCHEMA.COLUMNS\nWHERE TABLE_SCHEMA = %s AND TABLE_NAME = %s\nORDER BY ORDINAL_POSITION",
					bracket(ref.Catalog), singleQuote(ref.Schema), singleQuote(ref.Table))
		},
		tableInfo: func(d *sqlDialect, ref TableRef) string {
			db := bracket(ref.Catalog)
			return fmt.Sprintf("SELECT\n  (SELECT COUNT_BIG(1) FROM %s) AS %s,\n"+
				"  (SELECT CAST(ISNULL(SUM(a.used_pages), 0) AS BIGINT) * 8192\n"+
				"   FROM %s.sys.partitions p\n"+
				"   JOIN %s.sys.allocation_units a ON a.container_id = p.partition_id\n"+
				"   WHERE p.object_id = OBJECT_ID(%s)) AS %s",
				d.tableName(ref), ColRowCount, db, db, singleQuote(d.tableName(ref)), ColByteSize)
		},
		normalize: normalizeSQLServer,
	}
}

// SQLite reads columns through pragma_table_info. The catalog only labels
// the report; the schema is the attached database name, usually "main".
func SQLite() Dialect {
	return &sqlDialect{
		name:    "sqlite",
		quote:   doubleQuote,
		literal: singleQuote,
		tableName: func(ref TableRef) string {
			return doubleQuote(ref.Schema) + "." + doubleQuote(ref.Table)
		},
		countIf: countIfCase,
		isInf: func(col string) string {
			return col + " IN (9e999, -9e999)"
		},
		average: identity,
		schema: func(d *sqlDialect, ref TableRef) string {
			return schemaProjection(ref, singleQuote(ref.Schema), singleQuote(ref.Table), "name", "type") +
				fmt.Sprintf("\nFROM pragma_table_info(%s, %s)\nORDER BY cid",
					singleQuote(ref.Table), singleQuote(ref.Schema))
		},
		tableInfo: func(d *sqlDialect, ref TableRef) string {
			return fmt.Sprintf("SELECT\n  (SELECT COUNT(1) FROM %s) AS %s,\n  (SELECT page_count * page_size FROM pragma_page_count(), pragma_page_size()) AS %s",
				d.tableName(ref), ColRowCount, ColByteSize)
		},
		normalize: normalizeSQLite,
	}
}
