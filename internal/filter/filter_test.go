package filter

import (
	"reflect"
	"testing"
	"time"

	"github.com/mehdi-chebbi/potal-oss-fr/internal/model"
)

var testNow = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func testOffers() []model.Offer {
	return []model.Offer{
		{ID: 1, Type: model.OfferTypeCandidature, Title: "Water Engineer", Description: "Hydrology project", Country: "Tunisia", Department: "Water", Deadline: "2099-01-01"},
		{ID: 2, Type: model.OfferTypeConsultation, Title: "Climate Consultant", Description: "Adaptation study", Country: "Mali", Department: "Climate", Deadline: "2000-01-01"},
		{ID: 3, Type: model.OfferTypeServiceTender, Title: "IT Services", Description: "Network maintenance", Country: "Tunisia", Department: "IT", Deadline: "2099-06-01"},
	}
}

func TestComputeStatus(t *testing.T) {
	tests := []struct {
		name     string
		deadline string
		want     model.OfferStatus
	}{
		{"future deadline", "2099-01-01", model.OfferStatusOngoing},
		{"past deadline", "2000-01-01", model.OfferStatusClosed},
		{"deadline equal to now", testNow.Format(time.RFC3339), model.OfferStatusOngoing},
		{"rfc3339 past", "2020-05-01T00:00:00Z", model.OfferStatusClosed},
		{"unparseable", "not-a-date", model.OfferStatusOngoing},
		{"empty", "", model.OfferStatusOngoing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeStatus(tt.deadline, testNow); got != tt.want {
				t.Errorf("ComputeStatus(%q) = %q, want %q", tt.deadline, got, tt.want)
			}
		})
	}
}

func TestComputeStatusBoundary(t *testing.T) {
	// A deadline that parses to exactly now is still ongoing: strict less-than.
	day := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	if got := ComputeStatus("2026-03-15", day); got != model.OfferStatusOngoing {
		t.Fatalf("deadline equal to now should be ongoing, got %q", got)
	}
	if got := ComputeStatus("2026-03-15", day.Add(time.Second)); got != model.OfferStatusClosed {
		t.Fatalf("deadline just behind now should be closed, got %q", got)
	}
}

func TestDefaultOfferCriteria(t *testing.T) {
	want := OfferCriteria{Status: "ongoing"}
	if got := DefaultOfferCriteria(); got != want {
		t.Fatalf("DefaultOfferCriteria() = %+v, want %+v", got, want)
	}
}

func TestOffers(t *testing.T) {
	offers := testOffers()

	tests := []struct {
		name     string
		criteria OfferCriteria
		wantIDs  []int
	}{
		{"default ongoing", DefaultOfferCriteria(), []int{1, 3}},
		{"closed only", OfferCriteria{Status: "closed"}, []int{2}},
		{"closed in Mali", OfferCriteria{Status: "closed", Country: "Mali"}, []int{2}},
		{"no constraints", OfferCriteria{}, []int{1, 2, 3}},
		{"search title", OfferCriteria{Search: "water"}, []int{1}},
		{"search description", OfferCriteria{Search: "NETWORK"}, []int{3}},
		{"search no match", OfferCriteria{Search: "nomatch"}, nil},
		{"type", OfferCriteria{Type: "consultation"}, []int{2}},
		{"country and status", OfferCriteria{Country: "Tunisia", Status: "ongoing"}, []int{1, 3}},
		{"department", OfferCriteria{Department: "IT"}, []int{3}},
		{"all dimensions", OfferCriteria{Search: "it", Type: "appel_d_offre_service", Country: "Tunisia", Department: "IT", Status: "ongoing"}, []int{3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Offers(offers, tt.criteria, testNow)
			var ids []int
			for _, o := range got {
				ids = append(ids, o.ID)
			}
			if !reflect.DeepEqual(ids, tt.wantIDs) {
				t.Errorf("Offers() ids = %v, want %v", ids, tt.wantIDs)
			}
		})
	}
}

func TestOffersPreservesOrder(t *testing.T) {
	offers := testOffers()
	got := Offers(offers, OfferCriteria{}, testNow)
	if len(got) != len(offers) {
		t.Fatalf("expected all %d offers, got %d", len(offers), len(got))
	}
	for i := range got {
		if got[i].ID != offers[i].ID {
			t.Fatalf("order changed at %d: got id %d, want %d", i, got[i].ID, offers[i].ID)
		}
	}
}

func TestOffersDoesNotInvent(t *testing.T) {
	offers := testOffers()
	byID := make(map[int]bool, len(offers))
	for _, o := range offers {
		byID[o.ID] = true
	}
	for _, c := range []OfferCriteria{{}, {Search: "e"}, {Status: "closed"}, {Country: "Mali"}} {
		for _, o := range Offers(offers, c, testNow) {
			if !byID[o.ID] {
				t.Fatalf("filtered set contains id %d not present in input", o.ID)
			}
		}
	}
}

func testApplications() []model.Application {
	return []model.Application{
		{ID: 1, FullName: "Awa Diallo", Email: "awa@example.com", ApplicantCountry: "Senegal", OfferTitle: "Water Engineer", OfferType: "candidature", OfferDepartment: "Water"},
		{ID: 2, FullName: "John Smith", Email: "john@example.org", ApplicantCountry: "Mali", OfferTitle: "Climate Consultant", OfferType: "consultation", OfferDepartment: "Climate"},
		{ID: 3, FullName: "Fatma Ben Ali", Email: "fatma@example.com", ApplicantCountry: "Tunisia", OfferTitle: "Water Engineer", OfferType: "candidature", OfferDepartment: "Water"},
	}
}

func TestApplications(t *testing.T) {
	apps := testApplications()

	tests := []struct {
		name     string
		criteria ApplicationCriteria
		wantIDs  []int
	}{
		{"empty criteria keeps all", ApplicationCriteria{}, []int{1, 2, 3}},
		{"search by name", ApplicationCriteria{Search: "awa"}, []int{1}},
		{"search by email", ApplicationCriteria{Search: "JOHN@"}, []int{2}},
		{"search by offer title", ApplicationCriteria{Search: "water"}, []int{1, 3}},
		{"offer type", ApplicationCriteria{OfferType: "consultation"}, []int{2}},
		{"department", ApplicationCriteria{Department: "Water"}, []int{1, 3}},
		{"applicant country", ApplicationCriteria{ApplicantCountry: "Tunisia"}, []int{3}},
		{"combined", ApplicationCriteria{Search: "water", ApplicantCountry: "Senegal"}, []int{1}},
		{"no match", ApplicationCriteria{Search: "zzz"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Applications(apps, tt.criteria)
			var ids []int
			for _, a := range got {
				ids = append(ids, a.ID)
			}
			if !reflect.DeepEqual(ids, tt.wantIDs) {
				t.Errorf("Applications() ids = %v, want %v", ids, tt.wantIDs)
			}
		})
	}
}

func TestDistinct(t *testing.T) {
	offers := []model.Offer{
		{Country: "Tunisia"},
		{Country: "Mali"},
		{Country: "Tunisia"},
		{Country: "Senegal"},
		{Country: "Mali"},
	}
	got := Distinct(offers, func(o model.Offer) string { return o.Country })
	want := []string{"Tunisia", "Mali", "Senegal"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Distinct() = %v, want %v", got, want)
	}
	if len(got) > len(offers) {
		t.Fatalf("distinct values exceed collection size")
	}
}

func TestDistinctEmpty(t *testing.T) {
	if got := Distinct(nil, func(o model.Offer) string { return o.Country }); got != nil {
		t.Fatalf("Distinct(nil) = %v, want nil", got)
	}
}
