package models

// Page is one page of a listing. PageIndex is zero-based.
type Page[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"totalCount"`
	PageIndex  int   `json:"pageIndex"`
	PageSize   int   `json:"pageSize"`
}

// EmptyPage returns a page with no items but correct paging echo.
func EmptyPage[T any](pageIndex, pageSize int) Page[T] {
	return Page[T]{Items: []T{}, TotalCount: 0, PageIndex: pageIndex, PageSize: pageSize}
}
