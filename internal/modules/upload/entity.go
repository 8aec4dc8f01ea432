package upload

import "time"

// Upload records an image stored on disk. Removing an image from a form
// only clears the reference; the row and the file stay until the
// reconciliation pass (cmd/storagegc) collects unreferenced ones.
type Upload struct {
	ID           string    `gorm:"column:id;primaryKey" json:"id"`
	UserID       string    `gorm:"column:user_id" json:"user_id"`
	OriginalName string    `gorm:"column:original_name" json:"original_name"`
	FilePath     string    `gorm:"column:file_path" json:"-"`  // relative disk path
	FileURL      string    `gorm:"column:file_url" json:"url"` // public HTTP URL
	MimeType     string    `gorm:"column:mime_type" json:"mime_type"`
	Size         int64     `gorm:"column:size" json:"size"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Upload) TableName() string { return "uploads" }
