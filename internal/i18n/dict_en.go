package i18n

var en = map[string]string{
	// Navbar
	"nav.about":           "About Us",
	"nav.login":           "Login",
	"nav.logout":          "Logout",
	"nav.dashboard.rh":    "HR Management",
	"nav.dashboard.admin": "Administration",

	// Home
	"home.section.title":            "Current Opportunities",
	"home.section.subtitle":         "Help us build a resilient and sustainable future for Africa's drylands.",
	"home.filters.title":            "Filter Opportunities",
	"home.filters.search.label":     "Search",
	"home.filters.type.label":       "Type",
	"home.filters.type.all":         "All Types",
	"home.filters.country.label":    "Country",
	"home.filters.country.all":      "All Countries",
	"home.filters.department.label": "Department",
	"home.filters.department.all":   "All Departments",
	"home.filters.status.label":     "Status",
	"home.filters.status.ongoing":   "Ongoing",
	"home.filters.status.closed":    "Closed",
	"home.filters.clearAll":         "Clear All Filters",
	"home.showing":                  "Showing",
	"home.of":                       "of",
	"home.opportunities":            "opportunities",
	"home.noresults.title":          "No opportunities match your filters",
	"home.noresults.subtitle":       "Try adjusting your filter criteria or check back later for new opportunities",

	// Offer types
	"offer.type.candidature":              "Candidature",
	"offer.type.manifestation":            "Manifestation",
	"offer.type.appel_d_offre_service":    "Appel d'Offre (Service)",
	"offer.type.appel_d_offre_equipement": "Appel d'Offre (Equipement)",
	"offer.type.consultation":             "Consultation",

	// Offer detail
	"offer.deadline":       "Deadline",
	"offer.reference":      "Reference",
	"offer.apply":          "Apply Now",
	"offer.download.tdr":   "Download TDR",
	"offer.notfound.title": "Offer not found",
	"offer.notfound.back":  "Back to opportunities",

	// About
	"about.title": "About the OSS",
	"about.p1":    "The Sahara and Sahel Observatory (OSS) is an international organization with an African vocation, founded in 1992 and based in Tunis since 2000.",

	// Errors
	"error.login":       "Login failed",
	"error.apply":       "Application failed",
	"error.offers":      "Failed to fetch offers",
	"error.apps":        "Failed to fetch applications",
	"error.users":       "Failed to fetch users",
	"error.logs":        "Failed to fetch logs",
	"error.download":    "Failed to download document",
	"error.unavailable": "Service unavailable",
}
