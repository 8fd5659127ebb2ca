package clients

import "github.com/odualeSamsonSolomon/JoTech/models"

// FallbackProducts is the built-in sample catalog used when the catalog
// service cannot be reached, so the storefront stays browsable offline.
func FallbackProducts() []models.Product {
	return []models.Product{
		{ID: "1", Name: "iPhone 15 Pro", Price: 520000, Stock: 5},
		{ID: "2", Name: "Samsung Galaxy S24", Price: 480000, Stock: 8},
		{ID: "3", Name: "iPad Air", Price: 350000, Stock: 3},
		{ID: "4", Name: "MacBook Air M3", Price: 1200000, Stock: 2},
		{ID: "5", Name: "Sony WH-1000XM5", Price: 85000, Stock: 12},
		{ID: "6", Name: "Google Pixel 8", Price: 420000, Stock: 6},
		{ID: "7", Name: "Apple Watch Ultra", Price: 180000, Stock: 4},
		{ID: "8", Name: "Samsung Tab S9", Price: 580000, Stock: 7},
		{ID: "9", Name: "AirPods Pro Max", Price: 250000, Stock: 3},
		{ID: "10", Name: "Nintendo Switch OLED", Price: 280000, Stock: 9},
		{ID: "11", Name: "DJI Mini 4 Pro", Price: 450000, Stock: 2},
		{ID: "12", Name: "Canon EOS R50", Price: 750000, Stock: 1},
	}
}
