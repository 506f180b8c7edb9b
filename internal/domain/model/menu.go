package model

// MenuItem mirrors one row of the Menu sheet.
type MenuItem struct {
	ID        string
	Name      string
	Price     string
	Available bool
}
