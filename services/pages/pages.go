// Package pages serves the static shell content: the navigation bar and the
// home page.
package pages

import "sattva/models"

const (
	RouteHome     = "/"
	RouteShop     = "/shop"
	RouteJournal  = "/journal"
	RouteBook     = "/book"
	RouteRecipes  = "/recipes"
	cartBadgeSize = 2
)

// Routes lists the client routes, in navigation order.
var Routes = []string{RouteHome, RouteShop, RouteJournal, RouteBook, RouteRecipes}

type PageService interface {
	Nav() models.Nav
	Home() models.HomePage
}

type DefaultPageService struct{}

func (DefaultPageService) Nav() models.Nav {
	return models.Nav{
		Brand: "Sattva",
		Links: []models.NavLink{
			{Label: "Home", Route: RouteHome},
			{Label: "The Journal", Route: RouteJournal},
			{Label: "Recipes", Route: RouteRecipes},
			{Label: "Apothecary", Route: RouteShop},
			{Label: "Book Consultation", Route: RouteBook, Primary: true},
		},
		CartCount: cartBadgeSize,
	}
}

func (DefaultPageService) Home() models.HomePage {
	return models.HomePage{
		Eyebrow:  "Est. 2024 • The Science of Life",
		Headline: "Return to Rhythm.",
		Manifesto: "In a world of constant noise, Sattva is your pause. We don't just sell herbs; " +
			"we decode your body's unique language through the ancient lens of Ayurveda, " +
			"recalibrating your health back to its natural state.",
		Quote: models.Quote{
			Text:   "Health is not the mere absence of disease. It is the dynamic expression of life.",
			Source: "Charaka Samhita",
		},
		Pathways: []models.Pathway{
			{
				Title:       "The Apothecary",
				Subtitle:    "Formulations",
				Description: "Small-batch, handmade herbal remedies sourced from the Himalayan foothills.",
				Route:       RouteShop,
			},
			{
				Title:        "The Clinic",
				Description:  "Speak to a Vaidya. 1:1 sessions to determine your Prakriti (Constitution).",
				Route:        RouteBook,
				CallToAction: "Book Session",
			},
			{
				Title:        "Ayurvedic Kitchen",
				Description:  "Food as medicine. Seasonal recipes.",
				Route:        RouteRecipes,
				CallToAction: "Start Cooking",
			},
			{
				Title:        "The Journal",
				Subtitle:     "Wisdom for the Modern Age",
				Description:  "Deep dives into sleep hygiene, gut health, and seasonal routines.",
				Route:        RouteJournal,
				CallToAction: "Read the latest article",
			},
		},
		Footer: models.Quote{
			Text: "When diet is wrong, medicine is of no use. When diet is correct, medicine is of no need.",
		},
	}
}
