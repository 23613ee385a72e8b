package dto

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams orders and pages a listing. Zero values leave the result unsorted and
// unbounded.
type QueryParams struct {
	Page    int
	Limit   int
	SortBy  string
	SortDir string
}
