package domain

// User is the registration record kept by the backend.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	CreatedAt string `json:"created_at"`
}

// UserItem is one currency item balance (dungeon keys).
type UserItem struct {
	ItemType string `json:"item_type"`
	Quantity int    `json:"quantity"`
}
