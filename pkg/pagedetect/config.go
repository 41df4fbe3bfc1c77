package pagedetect

// Keywords configures the detection heuristics. Every list has a
// default; zero-value fields fall back to it, so partial overrides
// from a config file compose with the built-in vocabulary.
type Keywords struct {
	// Authentication terms searched in the concatenated action
	// expressions of a segment.
	Authentication []string `yaml:"authentication" json:"authentication"`

	// LoginActions terms searched in the resolved names of clicked
	// elements when classifying authentication.
	LoginActions []string `yaml:"login_actions" json:"login_actions"`

	// DashboardURL substrings that mark a segment URL as a dashboard.
	DashboardURL []string `yaml:"dashboard_url" json:"dashboard_url"`

	// MeaningfulPath domain terms preferred when naming a page from
	// its URL path.
	MeaningfulPath []string `yaml:"meaningful_path" json:"meaningful_path"`

	// GenericPath components skipped when naming a page from its URL
	// path.
	GenericPath []string `yaml:"generic_path" json:"generic_path"`

	// NameStoplist tokens excluded from action-derived page names.
	NameStoplist []string `yaml:"name_stoplist" json:"name_stoplist"`
}

// DefaultKeywords returns the built-in heuristic vocabulary.
func DefaultKeywords() Keywords {
	return Keywords{
		Authentication: []string{"username", "password", "login", "sign in", "email", "credentials"},
		LoginActions:   []string{"login", "sign in"},
		DashboardURL:   []string{"dashboard", "/home", "/main"},
		MeaningfulPath: []string{
			"dashboard", "admin", "auth", "login", "profile", "settings",
			"user", "employee", "time", "leave", "pim",
		},
		GenericPath:  []string{"index", "main", "home", "page"},
		NameStoplist: []string{"button", "link", "input", "field", "text", "form", "page", "name", "label"},
	}
}

// withDefaults fills any empty keyword list from DefaultKeywords.
func (k Keywords) withDefaults() Keywords {
	defaults := DefaultKeywords()
	if len(k.Authentication) == 0 {
		k.Authentication = defaults.Authentication
	}
	if len(k.LoginActions) == 0 {
		k.LoginActions = defaults.LoginActions
	}
	if len(k.DashboardURL) == 0 {
		k.DashboardURL = defaults.DashboardURL
	}
	if len(k.MeaningfulPath) == 0 {
		k.MeaningfulPath = defaults.MeaningfulPath
	}
	if len(k.GenericPath) == 0 {
		k.GenericPath = defaults.GenericPath
	}
	if len(k.NameStoplist) == 0 {
		k.NameStoplist = defaults.NameStoplist
	}
	return k
}
