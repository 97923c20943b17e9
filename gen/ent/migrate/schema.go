// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BillsColumns holds the columns for the "bills" table.
	BillsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "phone", Type: field.TypeString, Size: 20},
		{Name: "bill_type", Type: field.TypeString},
		{Name: "cost_per_unit", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(10,4)"}},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(5,2)"}},
		{Name: "file_name", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "submission_id", Type: field.TypeUUID},
	}
	// BillsTable holds the schema information for the "bills" table.
	BillsTable = &schema.Table{
		Name:       "bills",
		Columns:    BillsColumns,
		PrimaryKey: []*schema.Column{BillsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "bills_submissions_bills",
				Columns:    []*schema.Column{BillsColumns[7]},
				RefColumns: []*schema.Column{SubmissionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// SubmissionsColumns holds the columns for the "submissions" table.
	SubmissionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "phone", Type: field.TypeString, Size: 20},
		{Name: "document_count", Type: field.TypeInt},
		{Name: "warning_count", Type: field.TypeInt, Default: 0},
		{Name: "notified", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SubmissionsTable holds the schema information for the "submissions" table.
	SubmissionsTable = &schema.Table{
		Name:       "submissions",
		Columns:    SubmissionsColumns,
		PrimaryKey: []*schema.Column{SubmissionsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BillsTable,
		SubmissionsTable,
	}
)

func init() {
	BillsTable.ForeignKeys[0].RefTable = SubmissionsTable
	BillsTable.Annotation = &entsql.Annotation{
		Table: "bills",
	}
	SubmissionsTable.Annotation = &entsql.Annotation{
		Table: "submissions",
	}
}
