package validate

import (
	"errors"
	"testing"

	"github.com/mehdi-chebbi/potal-oss-fr/internal/model"
)

func docSet(docs ...model.DocumentKind) func(model.DocumentKind) bool {
	set := make(map[model.DocumentKind]bool, len(docs))
	for _, d := range docs {
		set[d] = true
	}
	return func(d model.DocumentKind) bool { return set[d] }
}

func TestApplicationCandidature(t *testing.T) {
	// Candidature requires exactly the four base documents.
	err := Application(model.OfferTypeCandidature, docSet(
		model.DocumentCV, model.DocumentDiplome, model.DocumentIDCard, model.DocumentCoverLetter,
	))
	if err != nil {
		t.Fatalf("complete candidature rejected: %v", err)
	}
}

func TestApplicationTenderRequiresAllTen(t *testing.T) {
	all := model.AllDocuments()
	if len(all) != 10 {
		t.Fatalf("expected 10 document slots, got %d", len(all))
	}

	for _, typ := range []model.OfferType{
		model.OfferTypeManifestation,
		model.OfferTypeServiceTender,
		model.OfferTypeEquipmentTender,
		model.OfferTypeConsultation,
	} {
		if err := Application(typ, docSet(all...)); err != nil {
			t.Errorf("complete %s rejected: %v", typ, err)
		}
		// Base four alone is not enough for tender types.
		err := Application(typ, docSet(
			model.DocumentCV, model.DocumentDiplome, model.DocumentIDCard, model.DocumentCoverLetter,
		))
		var missing *MissingDocumentError
		if !errors.As(err, &missing) {
			t.Errorf("%s with base docs only: error = %v, want MissingDocumentError", typ, err)
			continue
		}
		if missing.Document != model.DocumentDeclaration {
			t.Errorf("%s first missing = %q, want %q", typ, missing.Document, model.DocumentDeclaration)
		}
	}
}

func TestApplicationReportsCVFirst(t *testing.T) {
	// With everything missing, cv is always the first report, whatever the type.
	for _, typ := range []model.OfferType{model.OfferTypeCandidature, model.OfferTypeConsultation} {
		err := Application(typ, docSet())
		var missing *MissingDocumentError
		if !errors.As(err, &missing) {
			t.Fatalf("error = %v, want MissingDocumentError", err)
		}
		if missing.Document != model.DocumentCV {
			t.Errorf("first missing for %s = %q, want cv", typ, missing.Document)
		}
	}
}

func TestApplicationFailFastOrder(t *testing.T) {
	// The first gap in the fixed check order is the one reported.
	err := Application(model.OfferTypeConsultation, docSet(
		model.DocumentCV, model.DocumentDiplome, model.DocumentIDCard, model.DocumentCoverLetter,
		model.DocumentDeclaration, model.DocumentReferencing,
		// extrait_registre missing
		model.DocumentMethodology, model.DocumentReferences, model.DocumentFinancial,
	))
	var missing *MissingDocumentError
	if !errors.As(err, &missing) {
		t.Fatalf("error = %v, want MissingDocumentError", err)
	}
	if missing.Document != model.DocumentRegistry {
		t.Fatalf("reported %q, want %q", missing.Document, model.DocumentRegistry)
	}
}

func TestUserFormCreate(t *testing.T) {
	tests := []struct {
		name       string
		input      UserFormInput
		wantFields []string
	}{
		{
			"valid",
			UserFormInput{Name: "Amal", Email: "amal@oss.org", Password: "secret1", ConfirmPassword: "secret1"},
			nil,
		},
		{
			"empty password on create",
			UserFormInput{Name: "Amal", Email: "amal@oss.org"},
			[]string{"password", "confirmPassword"},
		},
		{
			"short password",
			UserFormInput{Name: "Amal", Email: "amal@oss.org", Password: "abc", ConfirmPassword: "abc"},
			[]string{"password"},
		},
		{
			"mismatched confirmation",
			UserFormInput{Name: "Amal", Email: "amal@oss.org", Password: "secret1", ConfirmPassword: "secret2"},
			[]string{"confirmPassword"},
		},
		{
			"invalid email",
			UserFormInput{Name: "Amal", Email: "not-an-email", Password: "secret1", ConfirmPassword: "secret1"},
			[]string{"email"},
		},
		{
			"everything wrong at once",
			UserFormInput{},
			[]string{"name", "email", "password", "confirmPassword"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := UserForm(tt.input, false)
			if len(errs) != len(tt.wantFields) {
				t.Fatalf("got %d errors (%v), want %d", len(errs), errs, len(tt.wantFields))
			}
			for _, field := range tt.wantFields {
				if errs[field] == "" {
					t.Errorf("expected an error on %q, got %v", field, errs)
				}
			}
		})
	}
}

func TestUserFormEdit(t *testing.T) {
	// A blank password during an edit means "keep the current one".
	errs := UserForm(UserFormInput{Name: "Amal", Email: "amal@oss.org"}, true)
	if len(errs) != 0 {
		t.Fatalf("blank password on edit should pass, got %v", errs)
	}

	// But a typed password re-enables the password rules.
	errs = UserForm(UserFormInput{Name: "Amal", Email: "amal@oss.org", Password: "abc", ConfirmPassword: "zzz"}, true)
	if errs["password"] == "" || errs["confirmPassword"] == "" {
		t.Fatalf("typed password on edit should be validated, got %v", errs)
	}
}

func TestUserFormEmailShapes(t *testing.T) {
	valid := []string{"a@b.co", "first.last@sub.domain.org", "x+tag@y.io"}
	invalid := []string{"a@b", "a b@c.d", "@c.d", "a@", "a@c."}

	for _, email := range valid {
		errs := UserForm(UserFormInput{Name: "n", Email: email, Password: "secret1", ConfirmPassword: "secret1"}, false)
		if errs["email"] != "" {
			t.Errorf("email %q rejected: %v", email, errs["email"])
		}
	}
	for _, email := range invalid {
		errs := UserForm(UserFormInput{Name: "n", Email: email, Password: "secret1", ConfirmPassword: "secret1"}, false)
		if errs["email"] == "" {
			t.Errorf("email %q accepted, want rejection", email)
		}
	}
}
