// Package query builds the SQL text tablestats sends to a warehouse: schema
// discovery, per-column statistics, per-column top-N value counts and table
// metadata, for each supported SQL dialect.
package query

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidTableID is returned when a table identifier is not of the form
// catalog.schema.table.
var ErrInvalidTableID = errors.New("table id must have the form catalog.schema.table")

// TableRef identifies a table by its three-part name. Catalog is the BigQuery
// project or the SQL database, Schema the dataset or schema.
type TableRef struct {
	Catalog string
	Schema  string
	Table   string
}

// ParseTableID splits a fully qualified table identifier into its parts.
func ParseTableID(id string) (TableRef, error) {
	parts := strings.Split(id, ".")
	if len(parts) != 3 {
		return TableRef{}, fmt.Errorf("%w: %q", ErrInvalidTableID, id)
	}
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			return TableRef{}, fmt.Errorf("%w: %q", ErrInvalidTableID, id)
		}
	}
	return TableRef{Catalog: parts[0], Schema: parts[1], Table: parts[2]}, nil
}

// String returns the dotted catalog.schema.table form.
func (r TableRef) String() string {
	return r.Catalog + "." + r.Schema + "." + r.Table
}
