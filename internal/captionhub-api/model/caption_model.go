package model

import (
	"time"

	validator "github.com/go-playground/validator/v10"
)

// CaptionModel stores an uploaded image together with its caption text
// and a small thumbnail for listings. UserId is zero for guest uploads.
type CaptionModel struct {
	ID           uint64     `gorm:"primary_key;AUTO_INCREMENT;column:id" json:"id"`
	UserId       uint64     `gorm:"column:user_id;index" json:"user_id,omitempty"`
	Caption      string     `json:"caption" gorm:"column:caption;type:text;not null"`
	Filename     string     `json:"filename" gorm:"column:filename"`
	Format       string     `json:"format" gorm:"column:format;not null"`
	Width        int        `json:"width" gorm:"column:width;not null"`
	Height       int        `json:"height" gorm:"column:height;not null"`
	Image        []byte     `json:"-" gorm:"column:image;type:mediumblob;not null"`
	Thumbnail    []byte     `json:"-" gorm:"column:thumbnail;type:blob;not null"`
	IsPublic     bool       `json:"is_public" gorm:"column:is_public;not null;default:true"`
	ProcessingMs int64      `json:"processing_ms" gorm:"column:processing_ms"`
	CreatedAt    time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at" json:"-"`
	DeletedAt    *time.Time `gorm:"column:deleted_at" json:"-"`
}

// Validate the fields.
func (c *CaptionModel) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// TableName
func (c *CaptionModel) TableName() string {
	return "captions"
}

// Owned reports whether the record belongs to a registered user.
func (c *CaptionModel) Owned() bool {
	return c.UserId != 0
}

// CaptionInfo is the outward-facing caption shape for listings,
// without the image blobs.
type CaptionInfo struct {
	ID           uint64    `json:"id"`
	UserId       uint64    `json:"user_id,omitempty"`
	Caption      string    `json:"caption"`
	Filename     string    `json:"filename"`
	Format       string    `json:"format"`
	Width        int       `json:"width"`
	Height       int       `json:"height"`
	IsPublic     bool      `json:"is_public"`
	ProcessingMs int64     `json:"processing_ms"`
	CreatedAt    time.Time `json:"created_at"`
}

// Info strips the blobs for list and detail responses.
func (c *CaptionModel) Info() *CaptionInfo {
	return &CaptionInfo{
		ID:           c.ID,
		UserId:       c.UserId,
		Caption:      c.Caption,
		Filename:     c.Filename,
		Format:       c.Format,
		Width:        c.Width,
		Height:       c.Height,
		IsPublic:     c.IsPublic,
		ProcessingMs: c.ProcessingMs,
		CreatedAt:    c.CreatedAt,
	}
}
