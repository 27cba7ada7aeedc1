package models

// IPOType is the listing board of an issue
type IPOType string

const (
	IPOTypeMainboard IPOType = "Mainboard"
	IPOTypeSME       IPOType = "SME"
)

// IPOStatus drives which attributes of a record are relevant for display
type IPOStatus string

const (
	IPOStatusOngoing  IPOStatus = "Ongoing"
	IPOStatusUpcoming IPOStatus = "Upcoming"
	IPOStatusClosed   IPOStatus = "Closed"
)

// IPORecord is one tracked IPO.
// Only ID, CompanyName, Type and Status are guaranteed; every other attribute
// comes straight from generated text and may be missing or oddly shaped.
type IPORecord struct {
	// Identification
	ID          string    `json:"id"`
	CompanyName string    `json:"companyName"`
	Type        IPOType   `json:"type"`
	Status      IPOStatus `json:"status"`

	// Issue details
	PriceBand   Field `json:"priceBand,omitzero"`
	LotSize     Field `json:"lotSize,omitzero"`
	IssueSize   Field `json:"issueSize,omitzero"`
	OpenDate    Field `json:"openDate,omitzero"`
	CloseDate   Field `json:"closeDate,omitzero"`
	ListingDate Field `json:"listingDate,omitzero"`

	// Demand and sentiment
	Subscription Field `json:"subscription,omitzero"` // {retail, nii, qib}
	GMP          Field `json:"gmp,omitzero"`
	ExpectedGain Field `json:"expectedGain,omitzero"`

	// Populated once the issue has listed
	ListingGain  Field `json:"listingGain,omitzero"`
	ListingPrice Field `json:"listingPrice,omitzero"`

	// Attribution
	Registrar   Field `json:"registrar,omitzero"`
	LeadManager Field `json:"leadManager,omitzero"`
}

// IsClosed reports whether listing fields apply to the record
func (r IPORecord) IsClosed() bool {
	return r.Status == IPOStatusClosed
}

// Subscription builds the conventional {retail, nii, qib} subscription object
func Subscription(retail, nii, qib string) Field {
	return NewField(struct {
		Retail string `json:"retail"`
		NII    string `json:"nii"`
		QIB    string `json:"qib"`
	}{retail, nii, qib})
}

// CloneRecords returns a copy of the slice. Field values are immutable so a shallow copy is enough.
func CloneRecords(records []IPORecord) []IPORecord {
	if records == nil {
		return nil
	}
	out := make([]IPORecord, len(records))
	copy(out, records)
	return out
}
