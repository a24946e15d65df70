package response

// Pagination describes the window a list response was cut from.
type Pagination struct {
	Page  int `json:"page"`
	Size  int `json:"size"`
	Total int `json:"total"`
}

// Paginated is the wire shape of every list endpoint.
type Paginated[T any] struct {
	Pagination Pagination `json:"pagination"`
	Items      []T        `json:"items"`
}

func NewPaginated[T any](page, size, total int, items []T) Paginated[T] {
	if items == nil {
		items = []T{}
	}
	return Paginated[T]{
		Pagination: Pagination{Page: page, Size: size, Total: total},
		Items:      items,
	}
}
