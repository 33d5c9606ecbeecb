package models

// Bookmaker is a betting-operator content entity sourced from the CMS.
type Bookmaker struct {
	ID       string   `json:"id"`
	Slug     string   `json:"slug"`
	Name     string   `json:"name"`
	LogoURL  string   `json:"logo_url"`
	SiteURL  string   `json:"site_url"`
	Bonus    string   `json:"bonus"`
	Licenses []string `json:"licenses"`
}

// Game is a supported esports discipline sourced from the CMS.
type Game struct {
	ID   string `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// Guide is an editorial article sourced from the CMS.
type Guide struct {
	ID       string `json:"id"`
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	GameSlug string `json:"game_slug"`
	Excerpt  string `json:"excerpt"`
	Body     string `json:"body,omitempty"`
}
