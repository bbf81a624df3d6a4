package models

import "time"

// Field is the authoritative copy of one synchronized brand field.
// (UserID, FieldID) is the primary key; UpdatedAt is server-assigned on
// every write and drives the changed-since sync query.
type Field struct {
	UserID    string
	FieldID   string
	Category  string
	Content   string
	UpdatedAt time.Time
}
