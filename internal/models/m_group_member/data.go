package m_group_member

// Data represents the database model for the discount_group_members table.
type Data struct {
	UserID  string `spanner:"user_id"`
	GroupID string `spanner:"group_id"`
}
