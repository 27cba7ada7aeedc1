package services

import "github.com/fenilmodi00/ipo-pulse/models"

// IPOCard is the display form of a record. Every value has already been passed
// through RenderSafe so renderers never see raw upstream shapes.
type IPOCard struct {
	ID          string           `json:"id"`
	CompanyName string           `json:"company_name"`
	Type        models.IPOType   `json:"type"`
	Status      models.IPOStatus `json:"status"`

	PriceBand   string `json:"price_band"`
	LotSize     string `json:"lot_size"`
	IssueSize   string `json:"issue_size"`
	OpenDate    string `json:"open_date"`
	CloseDate   string `json:"close_date"`
	ListingDate string `json:"listing_date"`
	Registrar   string `json:"registrar"`
	LeadManager string `json:"lead_manager"`

	TotalSubscription string `json:"total_subscription"`
	Subscription      string `json:"subscription"`
	GMP               string `json:"gmp"`

	// Only for issues that have not closed
	ExpectedGain string `json:"expected_gain,omitempty"`

	// Only for closed issues
	ListingGain  *ListingGain `json:"listing_gain,omitempty"`
	ListingPrice string       `json:"listing_price,omitempty"`
}

// BuildIPOCard renders a record for display
func BuildIPOCard(record models.IPORecord) IPOCard {
	card := IPOCard{
		ID:                record.ID,
		CompanyName:       record.CompanyName,
		Type:              record.Type,
		Status:            record.Status,
		PriceBand:         RenderSafe(record.PriceBand),
		LotSize:           RenderSafe(record.LotSize),
		IssueSize:         RenderSafe(record.IssueSize),
		OpenDate:          RenderSafe(record.OpenDate),
		CloseDate:         RenderSafe(record.CloseDate),
		ListingDate:       RenderSafe(record.ListingDate),
		Registrar:         RenderSafe(record.Registrar),
		LeadManager:       RenderSafe(record.LeadManager),
		TotalSubscription: AggregateSubscription(record.Subscription),
		Subscription:      RenderSafe(record.Subscription),
		GMP:               RenderSafe(record.GMP),
	}

	if record.IsClosed() {
		gain := ClassifyListingGain(record.ListingGain)
		card.ListingGain = &gain
		card.ListingPrice = RenderSafe(record.ListingPrice)
	} else {
		card.ExpectedGain = RenderSafe(record.ExpectedGain)
	}

	return card
}

// BuildIPOCards renders a list of records, keeping their order
func BuildIPOCards(records []models.IPORecord) []IPOCard {
	cards := make([]IPOCard, 0, len(records))
	for _, record := range records {
		cards = append(cards, BuildIPOCard(record))
	}
	return cards
}
