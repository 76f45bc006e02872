package entity

import (
	"strings"
	"time"

	"clinic-booking-api/pkg/apperror"

	"github.com/google/uuid"
)

// Chat is a conversation a patient opens with one or more doctors
type Chat struct {
	ID         int       `gorm:"primaryKey;autoIncrement" json:"id"`
	OpenedByID uuid.UUID `gorm:"type:uuid;not null;index" json:"opened_by_id"`
	CreatedAt  time.Time `gorm:"type:date;not null;default:CURRENT_DATE" json:"created_at"`

	// Relationships
	OpenedBy     PatientDetails  `gorm:"foreignKey:OpenedByID;references:UserID" json:"opened_by,omitempty"`
	Participants []DoctorDetails `gorm:"many2many:chat_participants;joinForeignKey:ChatID;joinReferences:DoctorID" json:"participants,omitempty"`
	Messages     []Message       `gorm:"foreignKey:ChatID;constraint:OnDelete:CASCADE" json:"messages,omitempty"`
}

func (Chat) TableName() string {
	return "chats"
}

// HasParticipant reports whether doctorID takes part in the chat.
// Participants must be preloaded.
func (c *Chat) HasParticipant(doctorID uuid.UUID) bool {
	for _, p := range c.Participants {
		if p.UserID == doctorID {
			return true
		}
	}
	return false
}

// ChatParticipant is a row of the chat/doctor join table
type ChatParticipant struct {
	ChatID   int       `gorm:"primaryKey"`
	DoctorID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

func (ChatParticipant) TableName() string {
	return "chat_participants"
}

// Message is posted into a chat by a patient. Image and video hold
// references to externally stored uploads.
type Message struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	ChatID      int       `gorm:"not null;index" json:"chat_id"`
	AuthorID    uuid.UUID `gorm:"type:uuid;not null;index" json:"author_id"`
	Text        *string   `gorm:"type:text" json:"text,omitempty"`
	Image       *string   `gorm:"type:varchar(512)" json:"image,omitempty"`
	Video       *string   `gorm:"type:varchar(512)" json:"video,omitempty"`
	CreatedDate time.Time `gorm:"autoCreateTime" json:"created_date"`

	// Relationships
	Author PatientDetails `gorm:"foreignKey:AuthorID;references:UserID" json:"author,omitempty"`
}

func (Message) TableName() string {
	return "messages"
}

// Validate requires at least one payload.
func (m *Message) Validate() error {
	present := func(s *string) bool { return s != nil && strings.TrimSpace(*s) != "" }
	if !present(m.Text) && !present(m.Image) && !present(m.Video) {
		return apperror.Validation("text", "a message needs text, an image or a video")
	}
	return nil
}
