package api

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/mehdi-chebbi/potal-oss-fr/internal/filter"
	"github.com/mehdi-chebbi/potal-oss-fr/internal/i18n"
	"github.com/mehdi-chebbi/potal-oss-fr/internal/middleware"
	"github.com/mehdi-chebbi/potal-oss-fr/internal/upstream"
)

// Page handlers return localized view-models. Each page fetches its own
// snapshot from upstream on every request and filters it in memory; a filter
// change is just another request with different query parameters and never
// causes more than the same single snapshot fetch.

var homeLabelKeys = []string{
	"nav.about", "nav.login", "nav.logout",
	"home.section.title", "home.section.subtitle",
	"home.filters.title", "home.filters.search.label",
	"home.filters.type.label", "home.filters.type.all",
	"home.filters.country.label", "home.filters.country.all",
	"home.filters.department.label", "home.filters.department.all",
	"home.filters.status.label", "home.filters.status.ongoing",
	"home.filters.status.closed", "home.filters.clearAll",
	"home.showing", "home.of", "home.opportunities",
	"home.noresults.title", "home.noresults.subtitle",
}

func offerCriteriaFromQuery(q url.Values) filter.OfferCriteria {
	c := filter.DefaultOfferCriteria()
	c.Search = q.Get("search")
	c.Type = q.Get("type")
	c.Country = q.Get("country")
	c.Department = q.Get("department")
	// An explicit empty status means "no constraint"; an absent one keeps the
	// ongoing default.
	if q.Has("status") {
		c.Status = q.Get("status")
	}
	return c
}

func applicationCriteriaFromQuery(q url.Values) filter.ApplicationCriteria {
	return filter.ApplicationCriteria{
		Search:           q.Get("app_search"),
		OfferType:        q.Get("app_offer_type"),
		Department:       q.Get("app_department"),
		ApplicantCountry: q.Get("app_country"),
	}
}

// Home renders the public opportunity list. An upstream failure leaves the
// snapshot empty without an error banner, like the portal home always
// behaved.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	loc := i18n.Resolve(r.URL.Path)
	criteria := offerCriteriaFromQuery(r.URL.Query())
	now := time.Now()

	offers, err := h.upstream.Offers(r.Context())
	if err != nil {
		h.logger.Warn("failed to fetch offers", zap.Error(err))
		offers = nil
	}
	matched := filter.Offers(offers, criteria, now)

	respondJSON(w, http.StatusOK, HomeView{
		Lang:     loc.Lang,
		Labels:   pageLabels(loc.Lang, homeLabelKeys...),
		Criteria: criteria,
		Offers:   newOfferViews(matched, loc, now),
		Facets:   offerFacets(offers),
		Showing:  len(matched),
		Total:    len(offers),
	})
}

// OfferDetail renders one offer. An unknown or malformed id renders the
// dedicated not-found state with a way home, not an error banner.
func (h *Handler) OfferDetail(w http.ResponseWriter, r *http.Request) {
	loc := i18n.Resolve(r.URL.Path)
	labels := pageLabels(loc.Lang,
		"offer.deadline", "offer.reference", "offer.apply",
		"offer.download.tdr", "offer.notfound.title", "offer.notfound.back")

	notFound := func() {
		respondJSON(w, http.StatusNotFound, OfferDetailView{
			Lang:     loc.Lang,
			Labels:   labels,
			NotFound: true,
			HomePath: i18n.Path(loc.Prefix, "/"),
		})
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		notFound()
		return
	}

	offer, err := h.upstream.Offer(r.Context(), id)
	if err != nil {
		if upstream.NotFound(err) {
			notFound()
			return
		}
		h.respondUpstreamError(w, loc.Lang, err, "error.offers")
		return
	}

	view := newOfferView(*offer, loc, time.Now())
	respondJSON(w, http.StatusOK, OfferDetailView{
		Lang:     loc.Lang,
		Labels:   labels,
		Offer:    &view,
		HomePath: i18n.Path(loc.Prefix, "/"),
	})
}

// About renders the localized about page.
func (h *Handler) About(w http.ResponseWriter, r *http.Request) {
	loc := i18n.Resolve(r.URL.Path)
	respondJSON(w, http.StatusOK, AboutView{
		Lang:   loc.Lang,
		Labels: pageLabels(loc.Lang, "nav.about", "about.title", "about.p1"),
	})
}

// RHDashboard renders the HR view: the offer and application snapshots, each
// with its own criteria and facets. Either fetch failing surfaces its own
// inline error string while the other snapshot stays usable.
func (h *Handler) RHDashboard(w http.ResponseWriter, r *http.Request) {
	loc := i18n.Resolve(r.URL.Path)
	now := time.Now()
	q := r.URL.Query()

	view := DashboardView{
		Lang:                loc.Lang,
		OfferCriteria:       offerCriteriaFromQuery(q),
		ApplicationCriteria: applicationCriteriaFromQuery(q),
		DefaultDeadline:     now.AddDate(0, 0, 30).Format("2006-01-02"),
	}

	offers, err := h.upstream.Offers(r.Context())
	if err != nil {
		h.logger.Warn("failed to fetch offers", zap.Error(err))
		view.OffersError = i18n.T(loc.Lang, "error.offers")
	} else {
		matched := filter.Offers(offers, view.OfferCriteria, now)
		view.Offers = newOfferViews(matched, loc, now)
		view.OfferFacets = offerFacets(offers)
		view.OffersShowing = len(matched)
		view.OffersTotal = len(offers)
	}

	apps, err := h.upstream.Applications(r.Context(), middleware.Token(r))
	if err != nil {
		h.logger.Warn("failed to fetch applications", zap.Error(err))
		view.ApplicationsError = i18n.T(loc.Lang, "error.apps")
	} else {
		matched := filter.Applications(apps, view.ApplicationCriteria)
		view.Applications = matched
		view.ApplicationFacets = applicationFacets(apps)
		view.ApplicationsShowing = len(matched)
		view.ApplicationsTotal = len(apps)
	}

	respondJSON(w, http.StatusOK, view)
}

// AdminDashboard renders the admin view: users and the activity log.
func (h *Handler) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	loc := i18n.Resolve(r.URL.Path)
	view := AdminView{Lang: loc.Lang}

	users, err := h.upstream.Users(r.Context(), middleware.Token(r))
	if err != nil {
		h.logger.Warn("failed to fetch users", zap.Error(err))
		view.UsersError = i18n.T(loc.Lang, "error.users")
	} else {
		view.Users = users
	}

	logs, err := h.upstream.Logs(r.Context(), middleware.Token(r))
	if err != nil {
		h.logger.Warn("failed to fetch logs", zap.Error(err))
		view.LogsError = i18n.T(loc.Lang, "error.logs")
	} else {
		view.Logs = logs
	}

	respondJSON(w, http.StatusOK, view)
}

// RedirectHome sends any unknown path to the localized home.
func (h *Handler) RedirectHome(w http.ResponseWriter, r *http.Request) {
	loc := i18n.Resolve(r.URL.Path)
	http.Redirect(w, r, i18n.Path(loc.Prefix, "/"), http.StatusFound)
}
