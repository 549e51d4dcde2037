package service

import "github.com/ssv8317/canteen-ordering/internal/core/domain"

var stalls = []domain.Stall{
	{
		ID:          "1",
		Name:        "Frankie Corner",
		Description: "Delicious frankies with various fillings",
		Categories:  []string{"Fast Food", "Snacks"},
		Image:       "https://images.pexels.com/photos/2233729/pexels-photo-2233729.jpeg",
	},
	{
		ID:          "2",
		Name:        "Fresh Juice Bar",
		Description: "Refreshing juices made from fresh fruits",
		Categories:  []string{"Beverages", "Healthy"},
		Image:       "https://images.pexels.com/photos/1132558/pexels-photo-1132558.jpeg",
	},
	{
		ID:          "3",
		Name:        "Breakfast Express",
		Description: "Quick and tasty breakfast options",
		Categories:  []string{"Breakfast", "South Indian"},
		Image:       "https://images.pexels.com/photos/139746/pexels-photo-139746.jpeg",
	},
	{
		ID:          "4",
		Name:        "Biryani Point",
		Description: "Authentic biryani with aromatic spices",
		Categories:  []string{"Main Course", "Non-Veg"},
		Image:       "https://images.pexels.com/photos/7394819/pexels-photo-7394819.jpeg",
	},
}

var menusByStall = map[string][]domain.MenuItem{
	"1": {
		{ID: "101", Name: "Paneer Frankie", Price: 80, Description: "Soft roti filled with paneer, veggies, and spices", IsVeg: true, Rating: 4.5, Popular: true},
		{ID: "102", Name: "Chicken Frankie", Price: 100, Description: "Soft roti filled with spiced chicken and veggies", IsVeg: false, Rating: 4.7, Popular: true},
		{ID: "103", Name: "Egg Frankie", Price: 70, Description: "Soft roti filled with spiced egg and veggies", IsVeg: false, Rating: 4.2, Popular: false},
		{ID: "104", Name: "Mixed Veg Frankie", Price: 70, Description: "Soft roti filled with mixed vegetables", IsVeg: true, Rating: 4.0, Popular: false},
	},
	"2": {
		{ID: "201", Name: "Mango Juice", Price: 50, Description: "Fresh mango juice without added sugar", IsVeg: true, Rating: 4.6, Popular: true},
		{ID: "202", Name: "Watermelon Juice", Price: 40, Description: "Chilled watermelon juice", IsVeg: true, Rating: 4.3, Popular: false},
		{ID: "203", Name: "Orange Juice", Price: 45, Description: "Freshly squeezed orange juice", IsVeg: true, Rating: 4.4, Popular: true},
		{ID: "204", Name: "Sugarcane Juice", Price: 35, Description: "Sugarcane juice with a hint of ginger and lime", IsVeg: true, Rating: 4.1, Popular: false},
	},
	"3": {
		{ID: "301", Name: "Idli Sambar", Price: 40, Description: "Steamed idlis served with sambar and chutney", IsVeg: true, Rating: 4.5, Popular: true},
		{ID: "302", Name: "Masala Dosa", Price: 60, Description: "Crispy dosa with spiced potato filling", IsVeg: true, Rating: 4.8, Popular: true},
		{ID: "303", Name: "Poha", Price: 30, Description: "Flattened rice with onions, peanuts, and spices", IsVeg: true, Rating: 4.0, Popular: false},
		{ID: "304", Name: "Upma", Price: 30, Description: "Semolina upma with vegetables", IsVeg: true, Rating: 3.9, Popular: false},
	},
	"4": {
		{ID: "401", Name: "Chicken Biryani", Price: 120, Description: "Hyderabadi-style chicken biryani with raita", IsVeg: false, Rating: 4.9, Popular: true},
		{ID: "402", Name: "Veg Biryani", Price: 90, Description: "Vegetable biryani with aromatic spices", IsVeg: true, Rating: 4.3, Popular: false},
		{ID: "403", Name: "Egg Biryani", Price: 100, Description: "Egg biryani with boiled eggs and fried onions", IsVeg: false, Rating: 4.4, Popular: false},
	},
}
