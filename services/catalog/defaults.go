package catalog

import "time"

// defaultProducts seeds an empty catalog so the storefront is usable
// out of the box.
func defaultProducts() []Product {
	return []Product{
		{
			UID:         "1",
			Name:        "Sienna Leather Tote",
			Description: "Italian full-grain leather with gold hardware",
			Price:       15000,
			Category:    "handbags",
			Image:       "https://images.sereneshop.example/products/sienna-leather-tote.jpg",
			Badge:       "New",
			InStock:     true,
			StockCount:  15,
			Featured:    true,
			Rating:      4.8,
			RatingCount: 124,
			DateAdded:   time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
			Attributes: map[string]string{
				"material": "leather",
				"color":    "brown",
				"brand":    "serene",
			},
		},
		{
			UID:         "2",
			Name:        "Florentine Silk Scarf",
			Description: "Hand-rolled edges with exclusive print",
			Price:       2000,
			Category:    "scarves",
			Image:       "https://images.sereneshop.example/products/florentine-silk-scarf.jpg",
			Badge:       "Bestseller",
			InStock:     true,
			StockCount:  42,
			Featured:    true,
			Bestseller:  true,
			Rating:      4.9,
			RatingCount: 287,
			DateAdded:   time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC),
			Attributes: map[string]string{
				"material": "silk",
				"color":    "burgundy",
				"brand":    "serene",
			},
		},
		{
			UID:         "3",
			Name:        "Geneva Automatic Watch",
			Description: "Swiss movement with sapphire crystal",
			Price:       11250,
			Category:    "watches",
			Image:       "https://images.sereneshop.example/products/geneva-automatic-watch.jpg",
			InStock:     true,
			StockCount:  8,
			Featured:    true,
			Rating:      4.7,
			RatingCount: 96,
			DateAdded:   time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC),
			Attributes: map[string]string{
				"material": "steel",
				"color":    "silver",
				"brand":    "luxury",
			},
		},
		{
			UID:         "4",
			Name:        "Venice Leather Clutch",
			Description: "Hand-stitched with antique brass closure",
			Price:       3320,
			Category:    "handbags",
			Image:       "https://images.sereneshop.example/products/venice-leather-clutch.jpg",
			Badge:       "Limited",
			InStock:     true,
			StockCount:  5,
			Featured:    true,
			Rating:      4.6,
			RatingCount: 54,
			DateAdded:   time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC),
			Attributes: map[string]string{
				"material": "leather",
				"color":    "black",
				"brand":    "luxury",
			},
		},
	}
}
