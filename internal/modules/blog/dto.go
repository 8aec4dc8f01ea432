package blog

import "loonbedrijf/internal/domain"

type SavePostRequest struct {
	Title     string `json:"title" binding:"required"`
	Excerpt   string `json:"excerpt" binding:"required"`
	Content   string `json:"content" binding:"required"`
	ImageURL  string `json:"image_url"`
	Category  string `json:"category" binding:"required"`
	ReadTime  string `json:"read_time" binding:"required"`
	Published bool   `json:"published"`
}

// ListQuery carries the paging/sort/filter surface of the list endpoints.
type ListQuery struct {
	Page      int
	PageSize  int
	SortField string
	SortAsc   bool
	Search    string
	Category  string
}

type PostPage struct {
	Posts    []domain.BlogPost `json:"posts"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
	// HasMore is false once a page returns fewer rows than the page size;
	// the infinite-scroll client stops fetching on it.
	HasMore bool `json:"has_more"`
}

type PostWithRelated struct {
	Post    domain.BlogPost   `json:"post"`
	Related []domain.BlogPost `json:"related"`
}
