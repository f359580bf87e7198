package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Table and column names shared by the migrator and the query builders.
const (
	tableLessonViews     = "lesson_views"
	tableProgressChanges = "progress_changes"
	tableLLMRequests     = "llm_requests"

	colID        = "id"
	colSequence  = "sequence"
	colTimestamp = "timestamp"
	colSessionID = "session_id"
)

// eventColumns returns the columns every journal table starts with.
func eventColumns() []*schema.Column {
	return []*schema.Column{
		{Name: colID, Type: field.TypeInt, Increment: true},
		{Name: colSequence, Type: field.TypeInt64, Unique: true},
		{Name: colTimestamp, Type: field.TypeTime},
		{Name: colSessionID, Type: field.TypeString},
	}
}

func eventTable(name string, extra ...*schema.Column) *schema.Table {
	cols := append(eventColumns(), extra...)
	return &schema.Table{
		Name:       name,
		Columns:    cols,
		PrimaryKey: []*schema.Column{cols[0]},
		Indexes: []*schema.Index{
			{Name: name + "_session_id", Columns: []*schema.Column{cols[3]}},
		},
	}
}

// Tables is the complete journal schema.
var Tables = []*schema.Table{
	eventTable(tableLessonViews,
		&schema.Column{Name: "day", Type: field.TypeInt},
		&schema.Column{Name: "source", Type: field.TypeString},
	),
	eventTable(tableProgressChanges,
		&schema.Column{Name: "day", Type: field.TypeInt},
		&schema.Column{Name: "completed", Type: field.TypeBool},
	),
	eventTable(tableLLMRequests,
		&schema.Column{Name: "provider", Type: field.TypeString},
		&schema.Column{Name: "model", Type: field.TypeString},
		&schema.Column{Name: "purpose", Type: field.TypeString},
		&schema.Column{Name: "input_tokens", Type: field.TypeInt},
		&schema.Column{Name: "output_tokens", Type: field.TypeInt},
		&schema.Column{Name: "latency_ms", Type: field.TypeInt64},
		&schema.Column{Name: "success", Type: field.TypeBool},
		&schema.Column{Name: "error_message", Type: field.TypeString, Size: 2147483647},
	),
}
