// Package seed holds the default dataset used to initialize empty stores on
// first read.
package seed

import (
	"fmt"
	"strings"

	"ppoth/internal/domain/entity"
)

// vetted builds a fully populated, verified seed listing. Seed data is
// deterministic so repeated seeding produces identical snapshots.
func vetted(id, name, trade string, imageID int) entity.Business {
	host := strings.ToLower(strings.ReplaceAll(name, " ", ""))

	return entity.Business{
		ID:               id,
		Name:             name,
		ShortDescription: fmt.Sprintf("Premier %s services for luxury Hamptons estates.", trade),
		Description: fmt.Sprintf("Experience the pinnacle of %s with %s. Serving the East End for over a decade, "+
			"we specialize in high-end residential projects, ensuring discretion, quality, and white-glove service.", trade, name),
		Address:         "123 Main St, East Hampton, NY 11937",
		Phone:           "(631) 555-0199",
		Email:           fmt.Sprintf("contact@%s.com", host),
		Website:         fmt.Sprintf("www.%s.com", host),
		Rating:          4.9,
		ReviewCount:     24,
		Verified:        true,
		YearsInBusiness: 12,
		ImageURL:        fmt.Sprintf("https://picsum.photos/id/%d/800/600", imageID),
		Gallery: []string{
			fmt.Sprintf("https://picsum.photos/id/%d/800/600", imageID+1),
			fmt.Sprintf("https://picsum.photos/id/%d/800/600", imageID+2),
		},
		Services: []string{"Consultation", "Installation", "Maintenance", "Emergency Service"},
		BioText:  fmt.Sprintf("Since founding %s, our mission has been simple: perfection in every detail.", name),
		Reviews: []entity.Review{
			{
				ID:     "r1",
				Author: "Alistair W.",
				Rating: 5,
				Text:   "Absolutely impeccable service. The team arrived on time and left the property spotless.",
				Date:   "2023-08-15",
			},
			{
				ID:     "r2",
				Author: "Eleanor R.",
				Rating: 5,
				Text:   "The best in the Hamptons. Highly recommended for any estate owner.",
				Date:   "2023-09-02",
			},
		},
		Metrics: &entity.Metrics{
			Views:         240,
			ContactClicks: 18,
			Impressions:   1100,
			MonthlyHistory: []entity.MonthlyMetric{
				{Period: "Jan", Views: 42, Contacts: 4},
				{Period: "Feb", Views: 51, Contacts: 3},
				{Period: "Mar", Views: 66, Contacts: 6},
				{Period: "Apr", Views: 74, Contacts: 8},
				{Period: "May", Views: 93, Contacts: 11},
				{Period: "Jun", Views: 118, Contacts: 14},
			},
		},
	}
}

// Directory returns the default category hierarchy.
func Directory() []entity.Category {
	return []entity.Category{
		{
			ID:          "cat_construction_repairs",
			Name:        "CONSTRUCTION, REPAIRS & MAINTENANCE",
			Description: "Builders, Systems, Renovations & Essential Services",
			ImageURL:    "https://images.unsplash.com/photo-1600607687939-ce8a6c25118c?auto=format&fit=crop&w=800&q=80",
			Icon:        "HardHat",
			SubCategories: []entity.SubCategory{
				{ID: "sub_appliance", Name: "Appliance Repair", Icon: "Wrench", Businesses: []entity.Business{
					vetted("biz_app_1", "Hamptons Appliance Pros", "appliance repair", 10),
					vetted("biz_app_2", "Elite Home Appliances", "luxury appliance care", 11),
				}},
				{ID: "sub_electrician", Name: "Electrician", Icon: "Zap", Businesses: []entity.Business{
					vetted("biz_elec_1", "Wire Works Luxury", "electrical design", 20),
					vetted("biz_elec_2", "Hampton Circuits", "emergency electrical", 21),
				}},
				{ID: "sub_plumber", Name: "Plumber", Icon: "Wrench", Businesses: []entity.Business{
					vetted("biz_plumb_1", "East End Plumbing Co", "estate plumbing", 40),
					vetted("biz_plumb_2", "Harbor Plumbing & Heating", "radiant heating", 41),
				}},
				{ID: "sub_roofer", Name: "Roofer", Icon: "Home", Businesses: []entity.Business{
					vetted("biz_roof_1", "Cedar & Slate Roofing", "cedar roofing", 44),
				}},
			},
		},
		{
			ID:          "cat_outdoor",
			Name:        "OUTDOOR & GROUNDS",
			Description: "Landscaping, Pools & Property Grounds",
			ImageURL:    "https://images.unsplash.com/photo-1558904541-efa843a96f01?auto=format&fit=crop&w=800&q=80",
			Icon:        "Leaf",
			SubCategories: []entity.SubCategory{
				{ID: "sub_landscaper", Name: "Landscaper", Icon: "Shovel", Businesses: []entity.Business{
					vetted("biz_land_1", "Gardens of Georgica", "estate landscaping", 50),
					vetted("biz_land_2", "Further Lane Gardens", "formal gardens", 51),
				}},
				{ID: "sub_pool_svc", Name: "Pool Service", Icon: "Waves", Businesses: []entity.Business{
					vetted("biz_pool_1", "Crystal Pools Hamptons", "pool care", 54),
				}},
				{ID: "sub_pest", Name: "Pest Control", Icon: "Bug", Businesses: []entity.Business{
					vetted("biz_pest_1", "Shoreline Pest Solutions", "tick and pest control", 58),
				}},
			},
		},
		{
			ID:          "cat_lifestyle",
			Name:        "LIFESTYLE & HOME SERVICES",
			Description: "Staffing, Catering & Personal Services",
			ImageURL:    "https://images.unsplash.com/photo-1414235077428-338989a2e8c0?auto=format&fit=crop&w=800&q=80",
			Icon:        "Sparkles",
			SubCategories: []entity.SubCategory{
				{ID: "sub_chef", Name: "Private Chef", Icon: "ChefHat", Businesses: []entity.Business{
					vetted("biz_chef_1", "Montauk Table Private Chefs", "private dining", 60),
				}},
				{ID: "sub_auto", Name: "Auto Detailing", Icon: "Car", Businesses: []entity.Business{
					vetted("biz_auto_1", "Concours Auto Spa", "auto detailing", 64),
				}},
			},
		},
		{
			ID:          "cat_cleaning",
			Name:        "CLEANING & RESTORATION",
			Description: "Housekeeping, Windows & Fine Textiles",
			ImageURL:    "https://images.unsplash.com/photo-1581578731548-c64695cc6952?auto=format&fit=crop&w=800&q=80",
			Icon:        "Wind",
			SubCategories: []entity.SubCategory{
				{ID: "sub_housekeeping", Name: "Housekeeping", Icon: "Sparkles", Businesses: []entity.Business{
					vetted("biz_house_1", "White Glove Housekeeping", "estate housekeeping", 70),
					vetted("biz_house_2", "Dune Road Domestics", "household staffing", 71),
				}},
				{ID: "sub_windows", Name: "Window Cleaning", Icon: "Droplets", Businesses: []entity.Business{
					vetted("biz_win_1", "Clearview Window Co", "window cleaning", 74),
				}},
			},
		},
	}
}

// HomepageSettings returns the default homepage configuration. The default
// spotlight references a listing from the seed directory.
func HomepageSettings() *entity.HomepageSettings {
	return &entity.HomepageSettings{
		HeroImages: []string{
			"https://images.unsplash.com/photo-1613490493576-7fde63acd811?auto=format&fit=crop&w=1920&q=80",
			"https://images.unsplash.com/photo-1600585154340-be6161a56a0c?auto=format&fit=crop&w=1920&q=80",
		},
		HeroVideoURL:       "",
		SpotlightPartnerID: "biz_land_1",
		LogoURL:            "/assets/ppoth-logo.png",
		FooterLogoURL:      "/assets/ppoth-logo.png",
	}
}

// Pages returns the built-in CMS page defaults. Page(slug) falls back to
// these for known slugs even after the page list has been persisted.
func Pages() []entity.PageContent {
	return []entity.PageContent{
		{
			Slug:     "home",
			Title:    "The Gold Standard of Hamptons Living",
			Subtitle: "Connecting discerning homeowners with the East End's most trusted, vetted, and elite service professionals.",
			Body:     "Curated Categories",
		},
		{
			Slug:     "about",
			Title:    "About Preferred Partners",
			Subtitle: "Excellence in every interaction.",
			Body: "Preferred Partners of the Hamptons (PPOTH) was founded on a simple principle: excellence is the only option.\n\n" +
				"Our directory is not open to everyone. Every business listed here has passed a rigorous vetting process, checking for " +
				"licensure, insurance, years in business, and most importantly, a track record of white-glove service.",
			ImageURL: "https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?auto=format&fit=crop&w=800&q=80",
		},
		{
			Slug:     "apply",
			Title:    "Become a Partner",
			Subtitle: "Join the most exclusive network of home service professionals on the East End.",
			Body: "Membership is by invitation or application only. We seek partners who demonstrate an unwavering commitment to " +
				"quality, discretion, and reliability.",
			ImageURL: "https://images.unsplash.com/photo-1600566753086-00f18fb6b3ea?auto=format&fit=crop&w=800&q=80",
		},
	}
}

// Users returns the seeded demo accounts. Seeded accounts authenticate with
// the shared demo password; no hash is stored for them.
func Users() []entity.User {
	return []entity.User{
		{ID: "u_admin", Email: "admin@ppoth.com", Name: "System Admin", Role: entity.RoleAdmin},
		{ID: "u_partner", Email: "partner@hamptons.com", Name: "John Gardener", Role: entity.RolePartner, BusinessID: "biz_land_1"},
		{ID: "u_user", Email: "user@hamptons.com", Name: "Hamptons Resident", Role: entity.RoleUser},
	}
}
