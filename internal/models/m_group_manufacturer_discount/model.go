package m_group_manufacturer_discount

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the group_manufacturer_discounts table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a group manufacturer rule.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{GroupID, ManufacturerID, DiscountPercent},
		[]interface{}{data.GroupID, data.ManufacturerID, data.DiscountPercent},
	)
}
