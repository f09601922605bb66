package domain

// User represents the users table. The token column holds the single
// currently-valid bearer token; reissuing replaces it wholesale. It is
// never serialized with the entity -- the creation response is the only
// place a token crosses the wire, via its own DTO.
type User struct {
	ID    string `gorm:"type:uuid;primaryKey" json:"id"`
	Name  string `gorm:"type:text;not null" json:"name"`
	Token string `gorm:"type:text;not null;uniqueIndex:idx_users_token" json:"-"`

	// Relations
	Chats []Chat `gorm:"many2many:user_chats" json:"-"`
}

func (User) TableName() string {
	return "users"
}
