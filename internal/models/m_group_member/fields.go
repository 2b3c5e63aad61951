package m_group_member

// Field name constants for the discount_group_members table.
const (
	TableName = "discount_group_members"

	UserID  = "user_id"
	GroupID = "group_id"
)
