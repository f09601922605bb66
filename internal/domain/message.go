package domain

// Message represents the messages table. IDs are store-assigned and
// monotonically increasing; clients page forward with
// ?lastMessageId=<highest seen>. Messages are immutable once created.
type Message struct {
	ID      int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Content string `gorm:"type:text;not null" json:"content"`
	UserID  string `gorm:"type:uuid;not null;index" json:"-"`
	ChatID  string `gorm:"type:uuid;not null;index:idx_messages_chat_cursor,priority:1" json:"-"`
}

func (Message) TableName() string {
	return "messages"
}
