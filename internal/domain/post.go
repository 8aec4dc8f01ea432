package domain

import "time"

// PostCategories is the fixed set the editor offers.
var PostCategories = []string{"Agrarisch", "Techniek", "Innovatie", "Duurzaamheid"}

func IsValidCategory(c string) bool {
	for _, v := range PostCategories {
		if v == c {
			return true
		}
	}
	return false
}

// BlogPost is a published or draft article. Content is sanitized HTML
// produced by the rich-text editor; the slug is derived from the title on
// every save and never user-supplied.
type BlogPost struct {
	ID        string    `json:"id" gorm:"column:id;primaryKey"`
	Title     string    `json:"title" gorm:"column:title"`
	Slug      string    `json:"slug" gorm:"column:slug;uniqueIndex"`
	Excerpt   string    `json:"excerpt" gorm:"column:excerpt"`
	Content   string    `json:"content" gorm:"column:content"`
	ImageURL  string    `json:"image_url" gorm:"column:image_url"`
	Category  string    `json:"category" gorm:"column:category"`
	ReadTime  string    `json:"read_time" gorm:"column:read_time"`
	AuthorID  string    `json:"author_id" gorm:"column:author_id"`
	Published bool      `json:"published" gorm:"column:published"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (BlogPost) TableName() string { return "blog_posts" }
