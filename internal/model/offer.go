package model

type OfferType string

const (
	OfferTypeCandidature     OfferType = "candidature"
	OfferTypeManifestation   OfferType = "manifestation"
	OfferTypeServiceTender   OfferType = "appel_d_offre_service"
	OfferTypeEquipmentTender OfferType = "appel_d_offre_equipement"
	OfferTypeConsultation    OfferType = "consultation"
)

type OfferStatus string

const (
	OfferStatusOngoing OfferStatus = "ongoing"
	OfferStatusClosed  OfferStatus = "closed"
)

type Offer struct {
	ID          int       `json:"id"`
	Type        OfferType `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Country     string    `json:"country"`
	Projet      string    `json:"projet"`
	Department  string    `json:"department"`
	Reference   string    `json:"reference"`
	Deadline    string    `json:"deadline"`
	CreatedAt   string    `json:"created_at"`
	TdrFilename *string   `json:"tdr_filename"`
	TdrURL      *string   `json:"tdr_url"`
}

// OfferInput carries the fields an HR user submits when creating or editing
// an offer. The optional TDR document travels separately as a file part.
type OfferInput struct {
	Type        OfferType `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Country     string    `json:"country"`
	Projet      string    `json:"projet"`
	Department  string    `json:"department"`
	Reference   string    `json:"reference"`
	Deadline    string    `json:"deadline"`
}

// TypeBadge maps an offer type to the badge color token the UI renders.
// Unknown types fall back to the neutral badge.
func TypeBadge(t OfferType) string {
	switch t {
	case OfferTypeCandidature:
		return "bg-blue-100 text-blue-800"
	case OfferTypeManifestation:
		return "bg-purple-100 text-purple-800"
	case OfferTypeServiceTender:
		return "bg-yellow-100 text-yellow-800"
	case OfferTypeEquipmentTender:
		return "bg-orange-100 text-orange-800"
	case OfferTypeConsultation:
		return "bg-green-100 text-green-800"
	default:
		return "bg-gray-100 text-gray-800"
	}
}
