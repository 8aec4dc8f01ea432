package blog

import "errors"

var (
	ErrPostNotFound    = errors.New("post not found")
	ErrSlugTaken       = errors.New("a post with this slug already exists")
	ErrInvalidCategory = errors.New("unknown category")
)
