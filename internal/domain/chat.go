package domain

// Chat represents the chats table. Membership lives in the user_chats
// join table; both sides of the relation resolve through it, so adding a
// member is a single row insert observed consistently from either
// aggregate.
type Chat struct {
	ID   string `gorm:"type:uuid;primaryKey" json:"id"`
	Name string `gorm:"type:text;not null" json:"name"`

	// Relations
	Users []User `gorm:"many2many:user_chats" json:"-"`
}

func (Chat) TableName() string {
	return "chats"
}
