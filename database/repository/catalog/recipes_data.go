package catalogRepo

import "sattva/models"

var recipes = []models.Recipe{
	{
		ID:          "golden-milk",
		Title:       "Ojas-Building Golden Milk",
		Description: "A soothing night-time elixir to calm Vata and boost immunity.",
		PrepTime:    "5 min",
		CookTime:    "10 min",
		Servings:    2,
		Tags:        []string{"Sleep", "Immunity", "Vata"},
		Category:    "orange",
		Ingredients: []models.Ingredient{
			{Name: "Almond Milk", BaseQty: 2, Unit: "cups"},
			{Name: "Turmeric Powder", BaseQty: 0.5, Unit: "tsp"},
			{Name: "Ghee", BaseQty: 1, Unit: "tsp"},
			{Name: "Black Pepper", BaseQty: 1, Unit: "pinch"},
			{Name: "Raw Honey", BaseQty: 1, Unit: "tsp"},
		},
		Steps: []string{
			"Warm the almond milk in a small saucepan over medium heat.",
			"Whisk in the turmeric, black pepper, and ghee until dissolved.",
			"Bring to a gentle simmer (do not boil) for 5 minutes.",
			"Remove from heat and let cool slightly.",
			"Stir in raw honey (never cook honey!) and serve warm.",
		},
		Position: 0,
	},
	{
		ID:          "kitchari",
		Title:       "Tridoshic Kitchari Cleanse",
		Description: "The most healing Ayurvedic meal. Easy to digest and balancing for all bodies.",
		PrepTime:    "10 min",
		CookTime:    "25 min",
		Servings:    4,
		Tags:        []string{"Detox", "Digestion", "Tridoshic"},
		Category:    "yellow",
		Ingredients: []models.Ingredient{
			{Name: "Basmati Rice", BaseQty: 1, Unit: "cup"},
			{Name: "Split Mung Beans", BaseQty: 0.5, Unit: "cup"},
			{Name: "Ghee", BaseQty: 2, Unit: "tbsp"},
			{Name: "Cumin Seeds", BaseQty: 1, Unit: "tsp"},
			{Name: "Mustard Seeds", BaseQty: 0.5, Unit: "tsp"},
		},
		Steps: []string{
			"Rinse rice and mung beans until water runs clear.",
			"Heat ghee in a pot. Add seeds and let them pop.",
			"Add rice/beans and sauté for 2 minutes.",
			"Add 4 cups water and bring to boil.",
			"Simmer covered for 20-25 mins until mushy.",
		},
		Position: 1,
	},
	{
		ID:          "ccf-tea",
		Title:       "CCF Digestive Tea",
		Description: "Cumin, Coriander, and Fennel. The classic bloat-busting remedy.",
		PrepTime:    "2 min",
		CookTime:    "10 min",
		Servings:    1,
		Tags:        []string{"Digestion", "Bloating", "Pitta"},
		Category:    "emerald",
		Ingredients: []models.Ingredient{
			{Name: "Cumin Seeds", BaseQty: 0.5, Unit: "tsp"},
			{Name: "Coriander Seeds", BaseQty: 0.5, Unit: "tsp"},
			{Name: "Fennel Seeds", BaseQty: 0.5, Unit: "tsp"},
			{Name: "Water", BaseQty: 1.5, Unit: "cups"},
		},
		Steps: []string{
			"Boil water in a small pot.",
			"Add all three seeds.",
			"Simmer for 5-10 minutes (longer = stronger).",
			"Strain and sip warm throughout the day.",
		},
		Position: 2,
	},
	{
		ID:          "stewed-apples",
		Title:       "Spiced Stewed Apples",
		Description: "A warm, pre-digested breakfast perfect for Vata mornings.",
		PrepTime:    "5 min",
		CookTime:    "15 min",
		Servings:    1,
		Tags:        []string{"Breakfast", "Energy", "Vata"},
		Category:    "red",
		Ingredients: []models.Ingredient{
			{Name: "Apple (peeled/chopped)", BaseQty: 1, Unit: "whole"},
			{Name: "Cloves", BaseQty: 2, Unit: "whole"},
			{Name: "Cinnamon Stick", BaseQty: 1, Unit: "inch"},
			{Name: "Water", BaseQty: 0.25, Unit: "cup"},
		},
		Steps: []string{
			"Peel and chop the apple into bite-sized cubes.",
			"Place in pot with water and spices.",
			"Cover and cook on low heat until soft (15 mins).",
			"Eat warm to stimulate Agni (digestive fire).",
		},
		Position: 3,
	},
	{
		ID:          "coconut-chutney",
		Title:       "Cooling Cilantro Chutney",
		Description: "A refreshing side to balance spicy meals and cool Pitta fire.",
		PrepTime:    "10 min",
		CookTime:    "0 min",
		Servings:    4,
		Tags:        []string{"Cooling", "Skin", "Pitta"},
		Category:    "green",
		Ingredients: []models.Ingredient{
			{Name: "Fresh Cilantro", BaseQty: 1, Unit: "bunch"},
			{Name: "Desiccated Coconut", BaseQty: 0.5, Unit: "cup"},
			{Name: "Lime Juice", BaseQty: 1, Unit: "tbsp"},
			{Name: "Ginger", BaseQty: 1, Unit: "inch"},
		},
		Steps: []string{
			"Wash cilantro thoroughly.",
			"Blend all ingredients with a splash of water.",
			"Blend until smooth paste forms.",
			"Serve alongside curries or rice.",
		},
		Position: 4,
	},
	{
		ID:          "saffron-rice",
		Title:       "Royal Saffron Rice",
		Description: "Sweet, aromatic rice that builds tissue strength.",
		PrepTime:    "5 min",
		CookTime:    "20 min",
		Servings:    2,
		Tags:        []string{"Strength", "Lunch", "Tridoshic"},
		Category:    "amber",
		Ingredients: []models.Ingredient{
			{Name: "Basmati Rice", BaseQty: 1, Unit: "cup"},
			{Name: "Saffron Strands", BaseQty: 1, Unit: "pinch"},
			{Name: "Cardamom Pods", BaseQty: 2, Unit: "whole"},
			{Name: "Ghee", BaseQty: 1, Unit: "tsp"},
		},
		Steps: []string{
			"Soak saffron in 1 tbsp warm milk/water.",
			"Cook rice with cardamom pods.",
			"Once cooked, fluff with ghee.",
			"Drizzle saffron water over rice before serving.",
		},
		Position: 5,
	},
	{
		ID:          "ginger-tea",
		Title:       "Agni-Igniting Ginger Tea",
		Description: "Burns toxins (Ama) and clears sinus congestion.",
		PrepTime:    "2 min",
		CookTime:    "10 min",
		Servings:    1,
		Tags:        []string{"Detox", "Kapha", "Cold/Flu"},
		Category:    "stone",
		Ingredients: []models.Ingredient{
			{Name: "Fresh Ginger (Grated)", BaseQty: 1, Unit: "inch"},
			{Name: "Black Peppercorns", BaseQty: 2, Unit: "whole"},
			{Name: "Honey", BaseQty: 1, Unit: "tsp"},
			{Name: "Water", BaseQty: 1.5, Unit: "cups"},
		},
		Steps: []string{
			"Boil water with ginger and pepper.",
			"Reduce volume by half (strong decoction).",
			"Strain into a mug.",
			"Add honey only when tea is warm (not hot).",
		},
		Position: 6,
	},
	{
		ID:          "roasted-roots",
		Title:       "Grounding Root Bowl",
		Description: "Heavy, warming vegetables to settle anxiety and Vata.",
		PrepTime:    "10 min",
		CookTime:    "30 min",
		Servings:    2,
		Tags:        []string{"Dinner", "Grounding", "Vata"},
		Category:    "orange",
		Ingredients: []models.Ingredient{
			{Name: "Sweet Potato", BaseQty: 1, Unit: "large"},
			{Name: "Carrots", BaseQty: 2, Unit: "whole"},
			{Name: "Beets", BaseQty: 2, Unit: "small"},
			{Name: "Sesame Oil", BaseQty: 1, Unit: "tbsp"},
		},
		Steps: []string{
			"Preheat oven to 400°F (200°C).",
			"Chop all veggies into uniform chunks.",
			"Toss with sesame oil and salt.",
			"Roast for 30-35 mins until tender.",
		},
		Position: 7,
	},
	{
		ID:          "date-shake",
		Title:       "Date & Almond Shake",
		Description: "A heavy, sweet tonic for building vitality (Ojas).",
		PrepTime:    "5 min",
		CookTime:    "0 min",
		Servings:    1,
		Tags:        []string{"Vitality", "Weight Gain", "Vata"},
		Category:    "rose",
		Ingredients: []models.Ingredient{
			{Name: "Dates (Soaked)", BaseQty: 4, Unit: "whole"},
			{Name: "Almonds (Soaked)", BaseQty: 10, Unit: "whole"},
			{Name: "Warm Milk", BaseQty: 1, Unit: "cup"},
			{Name: "Cinnamon", BaseQty: 1, Unit: "pinch"},
		},
		Steps: []string{
			"Peel almonds (remove skins).",
			"Remove pits from dates.",
			"Blend all ingredients until smooth.",
			"Drink warm for best digestion.",
		},
		Position: 8,
	},
	{
		ID:          "mung-soup",
		Title:       "Green Mung Bean Soup",
		Description: "A lighter alternative to Kitchari, great for Kapha types.",
		PrepTime:    "10 min",
		CookTime:    "30 min",
		Servings:    4,
		Tags:        []string{"Light", "Kapha", "Lunch"},
		Category:    "lime",
		Ingredients: []models.Ingredient{
			{Name: "Whole Green Mung", BaseQty: 1, Unit: "cup"},
			{Name: "Spinach", BaseQty: 1, Unit: "cup"},
			{Name: "Ginger Paste", BaseQty: 1, Unit: "tsp"},
			{Name: "Lemon", BaseQty: 0.5, Unit: "fruit"},
		},
		Steps: []string{
			"Soak beans overnight.",
			"Boil beans until soft (approx 25 mins).",
			"Add spinach and ginger in the last 5 mins.",
			"Blend slightly for creaminess and add lemon.",
		},
		Position: 9,
	},
}
