package m_user_category_discount

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the user_category_discounts table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a personal category discount.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{UserID, CategoryID, DiscountPercent},
		[]interface{}{data.UserID, data.CategoryID, data.DiscountPercent},
	)
}
