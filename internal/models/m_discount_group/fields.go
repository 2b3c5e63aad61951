package m_discount_group

// Field name constants for the discount_groups table.
const (
	TableName = "discount_groups"

	GroupID          = "group_id"
	Name             = "name"
	Priority         = "priority"
	StackingStrategy = "stacking_strategy"
	CreatedAt        = "created_at"
)
