package i18n

var fr = map[string]string{
	// Navbar
	"nav.about":           "À propos",
	"nav.login":           "Connexion",
	"nav.logout":          "Déconnexion",
	"nav.dashboard.rh":    "Gestion RH",
	"nav.dashboard.admin": "Administration",

	// Home
	"home.section.title":            "Opportunités en cours",
	"home.section.subtitle":         "Aidez-nous à bâtir un avenir résilient et durable pour les zones arides d'Afrique.",
	"home.filters.title":            "Filtrer les opportunités",
	"home.filters.search.label":     "Recherche",
	"home.filters.type.label":       "Type",
	"home.filters.type.all":         "Tous les types",
	"home.filters.country.label":    "Pays",
	"home.filters.country.all":      "Tous les pays",
	"home.filters.department.label": "Département",
	"home.filters.department.all":   "Tous les départements",
	"home.filters.status.label":     "Statut",
	"home.filters.status.ongoing":   "En cours",
	"home.filters.status.closed":    "Clôturée",
	"home.filters.clearAll":         "Effacer tous les filtres",
	"home.showing":                  "Affichage de",
	"home.of":                       "sur",
	"home.opportunities":            "opportunités",
	"home.noresults.title":          "Aucune opportunité ne correspond à vos filtres",
	"home.noresults.subtitle":       "Ajustez vos critères de filtrage ou revenez plus tard pour découvrir de nouvelles opportunités",

	// Offer types
	"offer.type.candidature":              "Candidature",
	"offer.type.manifestation":            "Manifestation d'intérêt",
	"offer.type.appel_d_offre_service":    "Appel d'offre (service)",
	"offer.type.appel_d_offre_equipement": "Appel d'offre (équipement)",
	"offer.type.consultation":             "Consultation",

	// Offer detail
	"offer.deadline":       "Date limite",
	"offer.reference":      "Référence",
	"offer.apply":          "Postuler",
	"offer.download.tdr":   "Télécharger les TDR",
	"offer.notfound.title": "Offre introuvable",
	"offer.notfound.back":  "Retour aux opportunités",

	// About
	"about.title": "À propos de l'OSS",
	"about.p1":    "L'Observatoire du Sahara et du Sahel (OSS) est une organisation internationale à vocation africaine, créée en 1992 et établie à Tunis depuis 2000.",

	// Errors
	"error.login":       "Échec de la connexion",
	"error.apply":       "Échec de la candidature",
	"error.offers":      "Échec du chargement des offres",
	"error.apps":        "Échec du chargement des candidatures",
	"error.users":       "Échec du chargement des utilisateurs",
	"error.logs":        "Échec du chargement des journaux",
	"error.download":    "Échec du téléchargement du document",
	"error.unavailable": "Service indisponible",
}
