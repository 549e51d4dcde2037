package domain

type Stall struct {
	ID          string
	Name        string
	Description string
	Categories  []string
	Image       string
}

type MenuItem struct {
	ID          string
	Name        string
	Price       float64
	Description string
	IsVeg       bool
	Rating      float64
	Popular     bool
}
