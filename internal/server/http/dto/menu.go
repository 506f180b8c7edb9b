package dto

// MenuItemResponse is one menu row.
type MenuItemResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	Available bool   `json:"available"`
}

// MenuItemRequest updates price and availability together.
type MenuItemRequest struct {
	Price     string `json:"price" binding:"required"`
	Available *bool  `json:"available" binding:"required"`
}
