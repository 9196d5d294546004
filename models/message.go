package models

import "time"

// Role values for Message.Role.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// MessageType values for Message.MessageType.
const (
	TypeText         = "text"
	TypeImage        = "image"
	TypeImageToImage = "image-to-image"
)

// Message is a single chat log entry. Rows are append-only: nothing ever
// updates or deletes one. Seq breaks timestamp ties and is not part of the
// wire contract.
type Message struct {
	Seq         uint64    `gorm:"primaryKey;autoIncrement" json:"-"`
	ID          string    `gorm:"uniqueIndex;size:36;not null" json:"id"`
	Role        string    `gorm:"size:20;not null" json:"role"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	Timestamp   time.Time `gorm:"index;not null" json:"timestamp"`
	ImageURL    string    `gorm:"type:text" json:"image_url,omitempty"`
	MessageType string    `gorm:"size:20" json:"message_type,omitempty"`
}
