package api

import (
	"strconv"
	"time"

	"github.com/mehdi-chebbi/potal-oss-fr/internal/filter"
	"github.com/mehdi-chebbi/potal-oss-fr/internal/i18n"
	"github.com/mehdi-chebbi/potal-oss-fr/internal/model"
)

// OfferView is an offer annotated with everything a page needs to render it:
// the status derived at evaluation time, the localized type label, the badge
// color token and the localized detail link.
type OfferView struct {
	model.Offer
	Status     model.OfferStatus `json:"status"`
	TypeLabel  string            `json:"type_label"`
	TypeBadge  string            `json:"type_badge"`
	DetailPath string            `json:"detail_path"`
}

func newOfferView(offer model.Offer, loc i18n.Locale, now time.Time) OfferView {
	return OfferView{
		Offer:      offer,
		Status:     filter.ComputeStatus(offer.Deadline, now),
		TypeLabel:  i18n.T(loc.Lang, "offer.type."+string(offer.Type)),
		TypeBadge:  model.TypeBadge(offer.Type),
		DetailPath: i18n.Path(loc.Prefix, "/offer/"+strconv.Itoa(offer.ID)),
	}
}

func newOfferViews(offers []model.Offer, loc i18n.Locale, now time.Time) []OfferView {
	views := make([]OfferView, 0, len(offers))
	for _, offer := range offers {
		views = append(views, newOfferView(offer, loc, now))
	}
	return views
}

// OfferFacets are the distinct values available per filter dimension,
// computed over the unfiltered collection.
type OfferFacets struct {
	Types       []string `json:"types"`
	Countries   []string `json:"countries"`
	Departments []string `json:"departments"`
}

func offerFacets(offers []model.Offer) OfferFacets {
	return OfferFacets{
		Types:       filter.Distinct(offers, func(o model.Offer) string { return string(o.Type) }),
		Countries:   filter.Distinct(offers, func(o model.Offer) string { return o.Country }),
		Departments: filter.Distinct(offers, func(o model.Offer) string { return o.Department }),
	}
}

// ApplicationFacets mirror OfferFacets for the applications tab.
type ApplicationFacets struct {
	OfferTypes  []string `json:"offer_types"`
	Departments []string `json:"departments"`
	Countries   []string `json:"countries"`
}

func applicationFacets(apps []model.Application) ApplicationFacets {
	return ApplicationFacets{
		OfferTypes:  filter.Distinct(apps, func(a model.Application) string { return a.OfferType }),
		Departments: filter.Distinct(apps, func(a model.Application) string { return a.OfferDepartment }),
		Countries:   filter.Distinct(apps, func(a model.Application) string { return a.ApplicantCountry }),
	}
}

// HomeView is the public landing page: the filtered offer list with its
// facets and "showing X of Y" counts.
type HomeView struct {
	Lang     i18n.Lang            `json:"lang"`
	Labels   map[string]string    `json:"labels"`
	Criteria filter.OfferCriteria `json:"criteria"`
	Offers   []OfferView          `json:"offers"`
	Facets   OfferFacets          `json:"facets"`
	Showing  int                  `json:"showing"`
	Total    int                  `json:"total"`
}

// OfferDetailView renders one offer, or its not-found state.
type OfferDetailView struct {
	Lang     i18n.Lang         `json:"lang"`
	Labels   map[string]string `json:"labels"`
	Offer    *OfferView        `json:"offer"`
	NotFound bool              `json:"not_found"`
	HomePath string            `json:"home_path"`
}

// AboutView is the localized static about page.
type AboutView struct {
	Lang   i18n.Lang         `json:"lang"`
	Labels map[string]string `json:"labels"`
}

// DashboardView is the HR dashboard: two independently filtered snapshots.
// A fetch failure leaves that snapshot empty and sets the matching error
// string; the other tab is unaffected.
type DashboardView struct {
	Lang i18n.Lang `json:"lang"`

	Offers        []OfferView          `json:"offers"`
	OfferCriteria filter.OfferCriteria `json:"offer_criteria"`
	OfferFacets   OfferFacets          `json:"offer_facets"`
	OffersShowing int                  `json:"offers_showing"`
	OffersTotal   int                  `json:"offers_total"`
	OffersError   string               `json:"offers_error,omitempty"`

	Applications        []model.Application        `json:"applications"`
	ApplicationCriteria filter.ApplicationCriteria `json:"application_criteria"`
	ApplicationFacets   ApplicationFacets          `json:"application_facets"`
	ApplicationsShowing int                        `json:"applications_showing"`
	ApplicationsTotal   int                        `json:"applications_total"`
	ApplicationsError   string                     `json:"applications_error,omitempty"`

	// DefaultDeadline seeds the offer form's deadline picker.
	DefaultDeadline string `json:"default_deadline"`
}

// AdminView is the admin dashboard: users and the activity log.
type AdminView struct {
	Lang i18n.Lang `json:"lang"`

	Users      []model.User `json:"users"`
	UsersError string       `json:"users_error,omitempty"`

	Logs      []model.LogEntry `json:"logs"`
	LogsError string           `json:"logs_error,omitempty"`
}

// SessionView is the whoami response; User is null for anonymous requests.
type SessionView struct {
	User *model.User `json:"user"`
}

func pageLabels(lang i18n.Lang, keys ...string) map[string]string {
	labels := make(map[string]string, len(keys))
	for _, key := range keys {
		labels[key] = i18n.T(lang, key)
	}
	return labels
}
