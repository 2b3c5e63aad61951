package m_group_member

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the discount_group_members table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a group membership.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{UserID, GroupID},
		[]interface{}{data.UserID, data.GroupID},
	)
}
