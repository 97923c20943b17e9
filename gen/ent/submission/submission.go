// Code generated by ent, DO NOT EDIT.

package submission

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the submission type in the database.
	Label = "submission"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPhone holds the string denoting the phone field in the database.
	FieldPhone = "phone"
	// FieldDocumentCount holds the string denoting the document_count field in the database.
	FieldDocumentCount = "document_count"
	// FieldWarningCount holds the string denoting the warning_count field in the database.
	FieldWarningCount = "warning_count"
	// FieldNotified holds the string denoting the notified field in the database.
	FieldNotified = "notified"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeBills holds the string denoting the bills edge name in mutations.
	EdgeBills = "bills"
	// Table holds the table name of the submission in the database.
	Table = "submissions"
	// BillsTable is the table that holds the bills relation/edge.
	BillsTable = "bills"
	// BillsInverseTable is the table name for the Bill entity.
	// It exists in this package in order to avoid circular dependency with the "bill" package.
	BillsInverseTable = "bills"
	// BillsColumn is the table column denoting the bills relation/edge.
	BillsColumn = "submission_id"
)

// Columns holds all SQL columns for submission fields.
var Columns = []string{
	FieldID,
	FieldPhone,
	FieldDocumentCount,
	FieldWarningCount,
	FieldNotified,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	PhoneValidator func(string) error
	// DocumentCountValidator is a validator for the "document_count" field. It is called by the builders before save.
	DocumentCountValidator func(int) error
	// DefaultWarningCount holds the default value on creation for the "warning_count" field.
	DefaultWarningCount int
	// WarningCountValidator is a validator for the "warning_count" field. It is called by the builders before save.
	WarningCountValidator func(int) error
	// DefaultNotified holds the default value on creation for the "notified" field.
	DefaultNotified bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Submission queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPhone orders the results by the phone field.
func ByPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhone, opts...).ToFunc()
}

// ByDocumentCount orders the results by the document_count field.
func ByDocumentCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentCount, opts...).ToFunc()
}

// ByWarningCount orders the results by the warning_count field.
func ByWarningCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWarningCount, opts...).ToFunc()
}

// ByNotified orders the results by the notified field.
func ByNotified(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotified, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByBillsCount orders the results by bills count.
func ByBillsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newBillsStep(), opts...)
	}
}

// ByBills orders the results by bills terms.
func ByBills(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBillsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newBillsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BillsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, BillsTable, BillsColumn),
	)
}
