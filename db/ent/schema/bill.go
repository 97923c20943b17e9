package schema

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"

	"github.com/bollettelab/bollette-tracker/constants"
)

var rePhone = regexp.MustCompile(`^\+?[0-9][0-9 ]{5,19}$`)

var errInvalidPhone = errors.New("invalid phone number")

// validBillType admits only the canonical classification strings; synonym
// folding happens before persistence, so a miss here is a programming error.
func validBillType(s string) error {
	for _, v := range constants.BillTypesAsStrings() {
		if s == v {
			return nil
		}
	}
	return fmt.Errorf("invalid bill type %q", s)
}

type Bill struct{ ent.Schema }

func (Bill) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "bills"},
	}
}

func (Bill) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("submission_id", uuid.UUID{}),
		field.String("phone").NotEmpty().MaxLen(20).
			Validate(func(s string) error {
				if rePhone.MatchString(s) {
					return nil
				}
				return errInvalidPhone
			}),
		field.String("bill_type").NotEmpty().
			Validate(validBillType),
		field.Float("cost_per_unit").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(10,4)"}),
		field.Float("confidence").
			Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(5,2)"}),
		field.String("file_name").Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Bill) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY bills -> ONE submission (FK: bills.submission_id)
		edge.From("submission", Submission.Type).
			Ref("bills").
			Field("submission_id").
			Required().
			Unique(),
	}
}
