package m_user

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the users table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a user.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{UserID, Email, AccountType, DiscountPercent, CreatedAt, UpdatedAt},
		[]interface{}{data.UserID, data.Email, data.AccountType, data.DiscountPercent, spanner.CommitTimestamp, spanner.CommitTimestamp},
	)
}

// DeleteMut creates a Spanner mutation for deleting a user.
func (m *Model) DeleteMut(userID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{userID})
}
