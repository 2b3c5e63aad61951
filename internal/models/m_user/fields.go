package m_user

// Field name constants for the users table.
const (
	TableName = "users"

	UserID          = "user_id"
	Email           = "email"
	AccountType     = "account_type"
	DiscountPercent = "discount_percent"
	CreatedAt       = "created_at"
	UpdatedAt       = "updated_at"
)

// Account types recognized by the pricing engine. Only B2B accounts carry a
// discount profile.
const (
	AccountTypeB2B    = "b2b"
	AccountTypeRetail = "retail"
)
