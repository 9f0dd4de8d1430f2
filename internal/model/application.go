package model

// DocumentKind identifies one of the upload slots of an application. The
// values double as multipart field names on the wire.
type DocumentKind string

const (
	DocumentCV          DocumentKind = "cv"
	DocumentDiplome     DocumentKind = "diplome"
	DocumentIDCard      DocumentKind = "id_card"
	DocumentCoverLetter DocumentKind = "cover_letter"
	DocumentDeclaration DocumentKind = "declaration_sur_honneur"
	DocumentReferencing DocumentKind = "fiche_de_referencement"
	DocumentRegistry    DocumentKind = "extrait_registre"
	DocumentMethodology DocumentKind = "note_methodologique"
	DocumentReferences  DocumentKind = "liste_references"
	DocumentFinancial   DocumentKind = "offre_financiere"
)

var baseDocuments = []DocumentKind{
	DocumentCV,
	DocumentDiplome,
	DocumentIDCard,
	DocumentCoverLetter,
}

var tenderDocuments = []DocumentKind{
	DocumentDeclaration,
	DocumentReferencing,
	DocumentRegistry,
	DocumentMethodology,
	DocumentReferences,
	DocumentFinancial,
}

// RequiredDocuments returns the upload slots an applicant must fill for the
// given offer type, in the order they are checked. Every type requires the
// base four; every type except candidature additionally requires the six
// tender documents.
func RequiredDocuments(t OfferType) []DocumentKind {
	if t == OfferTypeCandidature {
		return baseDocuments
	}
	return AllDocuments()
}

// AllDocuments lists every upload slot in wire order.
func AllDocuments() []DocumentKind {
	docs := make([]DocumentKind, 0, len(baseDocuments)+len(tenderDocuments))
	docs = append(docs, baseDocuments...)
	docs = append(docs, tenderDocuments...)
	return docs
}

type Application struct {
	ID               int    `json:"id"`
	OfferID          int    `json:"offer_id"`
	FullName         string `json:"full_name"`
	Email            string `json:"email"`
	TelNumber        string `json:"tel_number"`
	ApplicantCountry string `json:"applicant_country"`
	CreatedAt        string `json:"created_at"`

	CVURL               string  `json:"cv_url"`
	CVFilename          string  `json:"cv_filename"`
	DiplomeURL          string  `json:"diplome_url"`
	DiplomeFilename     string  `json:"diplome_filename"`
	IDCardURL           string  `json:"id_card_url"`
	IDCardFilename      string  `json:"id_card_filename"`
	CoverLetterURL      string  `json:"cover_letter_url"`
	CoverLetterFilename string  `json:"cover_letter_filename"`
	DeclarationURL      *string `json:"declaration_sur_honneur_url"`
	DeclarationFilename *string `json:"declaration_sur_honneur_filename"`
	ReferencingURL      *string `json:"fiche_de_referencement_url"`
	ReferencingFilename *string `json:"fiche_de_referencement_filename"`
	RegistryURL         *string `json:"extrait_registre_url"`
	RegistryFilename    *string `json:"extrait_registre_filename"`
	MethodologyURL      *string `json:"note_methodologique_url"`
	MethodologyFilename *string `json:"note_methodologique_filename"`
	ReferencesURL       *string `json:"liste_references_url"`
	ReferencesFilename  *string `json:"liste_references_filename"`
	FinancialURL        *string `json:"offre_financiere_url"`
	FinancialFilename   *string `json:"offre_financiere_filename"`

	OfferTitle      string `json:"offer_title"`
	OfferType       string `json:"offer_type"`
	OfferDepartment string `json:"offer_department"`
}

// ApplicantInput is the non-file half of an application submission.
type ApplicantInput struct {
	OfferID          int    `json:"offer_id"`
	FullName         string `json:"full_name"`
	Email            string `json:"email"`
	TelNumber        string `json:"tel_number"`
	ApplicantCountry string `json:"applicant_country"`
}
