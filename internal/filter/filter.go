// Package filter implements the in-memory filtering that backs the offer
// lists and the HR dashboard: combined predicate scans over the last fetched
// snapshot, derived status computation, and facet extraction for the filter
// dropdowns. Filtering never touches the network.
package filter

import (
	"strings"
	"time"

	"github.com/mehdi-chebbi/potal-oss-fr/internal/model"
)

// OfferCriteria selects a subset of an offer collection. An empty string on
// any dimension means "no constraint", never a literal value to match.
type OfferCriteria struct {
	Search     string `json:"search"`
	Type       string `json:"type"`
	Country    string `json:"country"`
	Department string `json:"department"`
	Status     string `json:"status"`
}

// DefaultOfferCriteria is the reset state of the offer filters: everything
// open except status, which narrows to ongoing offers.
func DefaultOfferCriteria() OfferCriteria {
	return OfferCriteria{Status: string(model.OfferStatusOngoing)}
}

// ApplicationCriteria selects a subset of an application collection. There is
// no default narrowing; all applications are visible until a filter is set.
type ApplicationCriteria struct {
	Search           string `json:"search"`
	OfferType        string `json:"offerType"`
	Department       string `json:"department"`
	ApplicantCountry string `json:"applicantCountry"`
}

// ComputeStatus derives an offer's status from its deadline at evaluation
// time. Closed iff deadline < now, strictly: a deadline equal to now is still
// ongoing. A deadline that does not parse counts as ongoing, matching how the
// portal always treated malformed dates.
func ComputeStatus(deadline string, now time.Time) model.OfferStatus {
	d, err := parseDeadline(deadline)
	if err != nil {
		return model.OfferStatusOngoing
	}
	if d.Before(now) {
		return model.OfferStatusClosed
	}
	return model.OfferStatusOngoing
}

func parseDeadline(deadline string) (time.Time, error) {
	if d, err := time.Parse("2006-01-02", deadline); err == nil {
		return d, nil
	}
	return time.Parse(time.RFC3339, deadline)
}

// Offers returns the offers matching every non-empty criterion, preserving
// input order. Search is a case-insensitive substring match over title or
// description; type, country and department are exact matches; status is
// matched against the status derived from the deadline at now.
func Offers(offers []model.Offer, c OfferCriteria, now time.Time) []model.Offer {
	search := strings.ToLower(c.Search)

	var matched []model.Offer
	for _, offer := range offers {
		if search != "" &&
			!strings.Contains(strings.ToLower(offer.Title), search) &&
			!strings.Contains(strings.ToLower(offer.Description), search) {
			continue
		}
		if c.Type != "" && string(offer.Type) != c.Type {
			continue
		}
		if c.Country != "" && offer.Country != c.Country {
			continue
		}
		if c.Department != "" && offer.Department != c.Department {
			continue
		}
		if c.Status != "" && string(ComputeStatus(offer.Deadline, now)) != c.Status {
			continue
		}
		matched = append(matched, offer)
	}
	return matched
}

// Applications returns the applications matching every non-empty criterion,
// preserving input order. Search covers applicant name, email and the title
// of the offer applied to.
func Applications(apps []model.Application, c ApplicationCriteria) []model.Application {
	search := strings.ToLower(c.Search)

	var matched []model.Application
	for _, app := range apps {
		if search != "" &&
			!strings.Contains(strings.ToLower(app.FullName), search) &&
			!strings.Contains(strings.ToLower(app.Email), search) &&
			!strings.Contains(strings.ToLower(app.OfferTitle), search) {
			continue
		}
		if c.OfferType != "" && app.OfferType != c.OfferType {
			continue
		}
		if c.Department != "" && app.OfferDepartment != c.Department {
			continue
		}
		if c.ApplicantCountry != "" && app.ApplicantCountry != c.ApplicantCountry {
			continue
		}
		matched = append(matched, app)
	}
	return matched
}

// Distinct collects the distinct values of one field across a collection in
// first-occurrence order. Facet options are always computed over the
// unfiltered collection so the other dimensions stay selectable.
func Distinct[T any](records []T, field func(T) string) []string {
	seen := make(map[string]struct{}, len(records))
	var values []string
	for _, rec := range records {
		v := field(rec)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	return values
}
