package content

import "errors"

var (
	ErrInquiryNotFound = errors.New("inquiry not found")
	ErrServiceNotFound = errors.New("service page not found")
)
