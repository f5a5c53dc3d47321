package entity

// HomepageSettings is the singleton record driving the public homepage.
// SpotlightPartnerID references a Business by id; HeroVideoURL, when set,
// overrides the hero image slideshow.
type HomepageSettings struct {
	HeroImages         []string `json:"heroImages"`
	HeroVideoURL       string   `json:"heroVideoUrl,omitempty"`
	SpotlightPartnerID string   `json:"spotlightPartnerId"`
	LogoURL            string   `json:"logoUrl"`
	FooterLogoURL      string   `json:"footerLogoUrl"`
}

// Clone returns a copy with its own hero image slice.
func (s HomepageSettings) Clone() HomepageSettings {
	out := s
	out.HeroImages = append([]string(nil), s.HeroImages...)

	return out
}

// PageContent is a CMS record keyed by page slug (e.g. "home", "about",
// "apply"). Body carries rich text produced by the admin editor.
type PageContent struct {
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Body     string `json:"body"`
	ImageURL string `json:"imageUrl,omitempty"`
}
