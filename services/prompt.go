package services

import (
	"fmt"
	"time"
)

const ipoFeedPromptTemplate = `You are a data extraction service for the Indian primary market.
Using reputable Indian financial sources (for example Chittorgarh or Zerodha), collect IPO data
for %s to %s, reading their "Recent Listings", "Current IPOs" and "Forthcoming" sections.

Return at least 25 IPOs in total. For each IPO provide:
- company name
- type: Mainboard or SME
- status relative to %s: Ongoing, Upcoming or Closed
- price band, lot size, issue size
- open date, close date, listing date
- subscription multiples for retail, NII and QIB investors
- grey market premium (GMP) and the expected gain percentage
- listingGain and listingPrice when the status is Closed
- the registrar (e.g. Link Intime, KFin Tech) and the lead manager

Respond with a JSON array only. Each element must have this shape:
{
  "id": "string",
  "companyName": "string",
  "type": "Mainboard" | "SME",
  "status": "Ongoing" | "Upcoming" | "Closed",
  "priceBand": "string",
  "lotSize": number,
  "issueSize": "string",
  "openDate": "string",
  "closeDate": "string",
  "listingDate": "string",
  "subscription": { "retail": "string", "nii": "string", "qib": "string" },
  "gmp": "string",
  "expectedGain": "string",
  "listingGain": "string",
  "listingPrice": "string",
  "registrar": "string",
  "leadManager": "string"
}`

// BuildIPOFeedPrompt renders the request covering the previous and the current month
func BuildIPOFeedPrompt(now time.Time) string {
	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	previous := current.AddDate(0, -1, 0)

	return fmt.Sprintf(ipoFeedPromptTemplate,
		previous.Format("January 2006"),
		current.Format("January 2006"),
		now.Format("January 2, 2006"),
	)
}
