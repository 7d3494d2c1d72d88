package catalogRepo

import "sattva/models"

var providers = []models.Provider{
	{
		ID:           1,
		Name:         "Dr. Ananya Sharma",
		Specialty:    "Panchakarma Specialist",
		Price:        "$80",
		Availability: []string{"Mon", "Wed", "Fri"},
		ImageID:      "sattva/providers/ananya-sharma",
		Position:     0,
	},
	{
		ID:           2,
		Name:         "Dr. Rajesh Gupta",
		Specialty:    "Ayurvedic Nutritionist",
		Price:        "$65",
		Availability: []string{"Tue", "Thu", "Sat"},
		ImageID:      "sattva/providers/rajesh-gupta",
		Position:     1,
	},
}

var timeSlots = []string{"09:00 AM", "10:30 AM", "02:00 PM", "04:30 PM"}

var products = []models.Product{
	{ID: 1, Name: "Triphala Powder", Price: 25, Category: "Digestion", Dosha: "Tridoshic", Tag: "Bestseller", ImageID: "sattva/products/triphala-powder", Position: 0},
	{ID: 2, Name: "Brahmi Oil", Price: 35, Category: "Stress", Dosha: "Vata", Tag: "New", ImageID: "sattva/products/brahmi-oil", Position: 1},
	{ID: 3, Name: "Neem Capsules", Price: 20, Category: "Skin", Dosha: "Pitta", ImageID: "sattva/products/neem-capsules", Position: 2},
	{ID: 4, Name: "Ashwagandha", Price: 30, Category: "Energy", Dosha: "Kapha", ImageID: "sattva/products/ashwagandha", Position: 3},
	{ID: 5, Name: "Kumkumadi Tailam", Price: 55, Category: "Glow", Dosha: "Tridoshic", Tag: "Luxury", ImageID: "sattva/products/kumkumadi-tailam", Position: 4},
	{ID: 6, Name: "Chyawanprash", Price: 40, Category: "Immunity", Dosha: "Kapha", ImageID: "sattva/products/chyawanprash", Position: 5},
}

var articles = []models.Article{
	{ID: 1, Title: "Morning Rituals for Vata Balance", Tag: "Yoga", ReadTime: "5 min", ImageID: "sattva/journal/vata-morning-rituals", Position: 0},
	{ID: 2, Title: "Cooling Summer Recipes", Tag: "Recipes", ReadTime: "8 min", ImageID: "sattva/journal/cooling-summer-recipes", Position: 1},
	{ID: 3, Title: "Understanding Ashwagandha", Tag: "Herbs", ReadTime: "4 min", ImageID: "sattva/journal/understanding-ashwagandha", Position: 2},
}
