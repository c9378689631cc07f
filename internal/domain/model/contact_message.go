package model

import "time"

// ContactKind tells a contact-form message from an issue report.
type ContactKind string

const (
	// contact form on /contact
	ContactKindMessage ContactKind = "contact"
	// "report an issue" dialog next to the chat widget
	ContactKindReport ContactKind = "report"
)

// IssueTypes are the choices offered by the report dialog.
var IssueTypes = []string{
	"Website Bug",
	"Payment Issue",
	"Product Information Error",
	"User Account Problem",
	"Other",
}

// ContactMessage is a visitor message left for the cafe staff.
type ContactMessage struct {
	ID        string      `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Kind      ContactKind `gorm:"type:varchar(20);not null;index" json:"kind"`
	Name      string      `gorm:"type:varchar(100);not null" json:"name"`
	Email     string      `gorm:"type:varchar(255);not null;index" json:"email"`
	IssueType string      `gorm:"type:varchar(50)" json:"issue_type,omitempty"`
	Body      string      `gorm:"type:text;not null" json:"body"`
	CreatedAt time.Time   `gorm:"not null;index" json:"created_at"`
}
