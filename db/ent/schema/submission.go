package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type Submission struct{ ent.Schema }

func (Submission) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "submissions"},
	}
}

func (Submission) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("phone").NotEmpty().MaxLen(20),
		field.Int("document_count").NonNegative(),
		field.Int("warning_count").NonNegative().Default(0),
		field.Bool("notified").Default(false),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Submission) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE submission -> MANY bills
		edge.To("bills", Bill.Type),
	}
}
