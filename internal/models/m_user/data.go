package m_user

import "time"

// Data represents the database model for the users table.
type Data struct {
	UserID          string    `spanner:"user_id"`
	Email           string    `spanner:"email"`
	AccountType     string    `spanner:"account_type"`
	DiscountPercent float64   `spanner:"discount_percent"`
	CreatedAt       time.Time `spanner:"created_at"`
	UpdatedAt       time.Time `spanner:"updated_at"`
}
