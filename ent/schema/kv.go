package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// KV is a single string setting, such as the onboarding flag or the
// serialized profile.
type KV struct {
	ent.Schema
}

func (KV) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique().
			NotEmpty().
			Immutable().
			Comment("Setting name"),
		field.Text("data").
			Comment("Setting value as stored text"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("When the value was last written"),
	}
}
