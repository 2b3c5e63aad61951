package m_discount_group

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the discount_groups table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a discount group.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{GroupID, Name, Priority, StackingStrategy, CreatedAt},
		[]interface{}{data.GroupID, data.Name, data.Priority, data.StackingStrategy, spanner.CommitTimestamp},
	)
}

// DeleteMut creates a Spanner mutation for deleting a discount group.
func (m *Model) DeleteMut(groupID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{groupID})
}
