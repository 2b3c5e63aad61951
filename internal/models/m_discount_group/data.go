package m_discount_group

import "time"

// Data represents the database model for the discount_groups table.
type Data struct {
	GroupID          string    `spanner:"group_id"`
	Name             string    `spanner:"name"`
	Priority         int64     `spanner:"priority"`
	StackingStrategy string    `spanner:"stacking_strategy"`
	CreatedAt        time.Time `spanner:"created_at"`
}
