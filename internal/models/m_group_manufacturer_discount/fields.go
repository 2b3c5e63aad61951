package m_group_manufacturer_discount

// Field name constants for the group_manufacturer_discounts table.
const (
	TableName = "group_manufacturer_discounts"

	GroupID         = "group_id"
	ManufacturerID  = "manufacturer_id"
	DiscountPercent = "discount_percent"
)
