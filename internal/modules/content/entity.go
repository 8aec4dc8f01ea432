package content

import "time"

type InquiryStatus string

const (
	InquiryStatusNew     InquiryStatus = "new"
	InquiryStatusHandled InquiryStatus = "handled"
)

// Inquiry is a submitted contact form entry.
type Inquiry struct {
	ID        string        `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name      string        `gorm:"type:varchar(255);not null" json:"name"`
	Email     string        `gorm:"type:varchar(255);not null" json:"email"`
	Phone     string        `gorm:"type:varchar(50)" json:"phone"`
	Subject   string        `gorm:"type:varchar(255)" json:"subject"`
	Message   string        `gorm:"type:text;not null" json:"message"`
	Status    InquiryStatus `gorm:"type:varchar(20);not null;default:'new'" json:"status"`
	IP        string        `gorm:"type:varchar(64)" json:"-"`
	UserAgent string        `gorm:"type:varchar(512)" json:"-"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func (Inquiry) TableName() string { return "inquiries" }

// ServicePage is one of the fixed service offerings shown on the site.
type ServicePage struct {
	ID          string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Slug        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Tagline     string    `gorm:"type:varchar(512)" json:"tagline"`
	Description string    `gorm:"type:text" json:"description"`
	ImageURL    string    `gorm:"type:varchar(512)" json:"image_url"`
	SortOrder   int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (ServicePage) TableName() string { return "service_pages" }

type Testimonial struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Author    string    `gorm:"type:varchar(255);not null" json:"author"`
	Company   string    `gorm:"type:varchar(255)" json:"company"`
	Quote     string    `gorm:"type:text;not null" json:"quote"`
	Rating    int       `gorm:"not null;default:5" json:"rating"`
	SortOrder int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}

func (Testimonial) TableName() string { return "testimonials" }

type GalleryItem struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Category  string    `gorm:"type:varchar(100)" json:"category"`
	ImageURL  string    `gorm:"type:varchar(512);not null" json:"image_url"`
	SortOrder int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}

func (GalleryItem) TableName() string { return "gallery_items" }
