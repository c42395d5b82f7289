package dto

// OrderFilter narrows sales and purchase order listings.
// Status "all" (or empty) disables the status filter.
type OrderFilter struct {
	Status string `form:"status"`
	From   string `form:"from"` // YYYY-MM-DD inclusive
	To     string `form:"to"`   // YYYY-MM-DD inclusive
	Page   int    `form:"page,default=1"`
	Limit  int    `form:"limit,default=50"`
}
