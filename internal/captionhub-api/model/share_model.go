package model

import (
	"time"
)

// ShareModel maps a short slug to a caption for public share links.
type ShareModel struct {
	ID        uint64     `gorm:"primary_key;AUTO_INCREMENT;column:id" json:"id"`
	Slug      string     `gorm:"column:slug;not null;unique_index" json:"slug"`
	CaptionId uint64     `gorm:"column:caption_id;not null;index" json:"caption_id"`
	CreatedAt time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time  `gorm:"column:updated_at" json:"-"`
	DeletedAt *time.Time `gorm:"column:deleted_at" json:"-"`
}

// TableName
func (s *ShareModel) TableName() string {
	return "shares"
}
