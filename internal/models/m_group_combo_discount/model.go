package m_group_combo_discount

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the group_category_manufacturer_discounts table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a group combo rule.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{GroupID, CategoryID, ManufacturerID, DiscountPercent},
		[]interface{}{data.GroupID, data.CategoryID, data.ManufacturerID, data.DiscountPercent},
	)
}
