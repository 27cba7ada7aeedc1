package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/fenilmodi00/ipo-pulse/models"
	"github.com/google/uuid"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// RecordValidationError describes why one generated element was rejected
type RecordValidationError struct {
	Index  int    `json:"index"`
	Field  string `json:"field,omitempty"`
	Reason string `json:"reason"`
}

// Error implements the error interface
func (e *RecordValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("record %d: %s", e.Index, e.Reason)
	}
	return fmt.Sprintf("record %d: %s: %s", e.Index, e.Field, e.Reason)
}

// ValidateRecords converts the elements of a generated JSON array into IPO records.
// Each element must be an object with a non-empty companyName and a recognizable
// type and status. Elements failing those checks are dropped and reported; all
// other attributes are kept verbatim as loose fields.
func ValidateRecords(elements []json.RawMessage) ([]models.IPORecord, []error) {
	records := make([]models.IPORecord, 0, len(elements))
	var problems []error

	for index, element := range elements {
		record, err := validateRecord(index, element)
		if err != nil {
			problems = append(problems, err)
			continue
		}
		records = append(records, record)
	}

	return records, problems
}

func validateRecord(index int, element json.RawMessage) (models.IPORecord, error) {
	var record models.IPORecord

	trimmed := bytes.TrimSpace(element)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return record, &RecordValidationError{Index: index, Reason: "element is not an object"}
	}

	var attributes map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &attributes); err != nil {
		return record, &RecordValidationError{Index: index, Reason: "element is not an object"}
	}

	companyName, ok := stringAttribute(attributes, "companyName")
	companyName = normalizeCompanyName(companyName)
	if !ok || companyName == "" {
		return record, &RecordValidationError{Index: index, Field: "companyName", Reason: "missing or not a non-empty string"}
	}

	rawType, _ := stringAttribute(attributes, "type")
	ipoType, ok := ParseIPOType(rawType)
	if !ok {
		return record, &RecordValidationError{Index: index, Field: "type", Reason: fmt.Sprintf("unrecognized value %q", rawType)}
	}

	rawStatus, _ := stringAttribute(attributes, "status")
	status, ok := ParseIPOStatus(rawStatus)
	if !ok {
		return record, &RecordValidationError{Index: index, Field: "status", Reason: fmt.Sprintf("unrecognized value %q", rawStatus)}
	}

	id, err := recordID(attributes["id"])
	if err != nil {
		return record, &RecordValidationError{Index: index, Field: "id", Reason: err.Error()}
	}

	record = models.IPORecord{
		ID:          id,
		CompanyName: companyName,
		Type:        ipoType,
		Status:      status,
	}

	for key, target := range looseFields(&record) {
		if raw, exists := attributes[key]; exists {
			*target = models.FieldFromRaw(raw)
		}
	}

	return record, nil
}

// looseFields maps the wire name of every optional attribute to its slot in the record
func looseFields(record *models.IPORecord) map[string]*models.Field {
	return map[string]*models.Field{
		"priceBand":    &record.PriceBand,
		"lotSize":      &record.LotSize,
		"issueSize":    &record.IssueSize,
		"openDate":     &record.OpenDate,
		"closeDate":    &record.CloseDate,
		"listingDate":  &record.ListingDate,
		"subscription": &record.Subscription,
		"gmp":          &record.GMP,
		"expectedGain": &record.ExpectedGain,
		"listingGain":  &record.ListingGain,
		"listingPrice": &record.ListingPrice,
		"registrar":    &record.Registrar,
		"leadManager":  &record.LeadManager,
	}
}

func stringAttribute(attributes map[string]json.RawMessage, key string) (string, bool) {
	raw, exists := attributes[key]
	if !exists {
		return "", false
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", false
	}
	return value, true
}

// recordID accepts a string or numeric id and generates one when it is absent
func recordID(raw json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return uuid.NewString(), nil
	}

	switch trimmed[0] {
	case '"':
		var id string
		if err := json.Unmarshal(trimmed, &id); err != nil {
			return "", fmt.Errorf("malformed string")
		}
		id = strings.TrimSpace(id)
		if id == "" {
			return uuid.NewString(), nil
		}
		return id, nil
	case '{', '[', 't', 'f':
		return "", fmt.Errorf("must be a string or a number")
	default:
		var number json.Number
		if err := json.Unmarshal(trimmed, &number); err != nil {
			return "", fmt.Errorf("must be a string or a number")
		}
		return number.String(), nil
	}
}

func normalizeCompanyName(name string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(name, " "))
}

func enumKey(value string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' || r == '_' {
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(value)))
}

// ParseIPOType matches a board name case-insensitively
func ParseIPOType(value string) (models.IPOType, bool) {
	switch enumKey(value) {
	case "mainboard", "main", "mainline":
		return models.IPOTypeMainboard, true
	case "sme", "smeipo", "smeboard":
		return models.IPOTypeSME, true
	}
	return "", false
}

// ParseIPOStatus matches a status case-insensitively, including the common synonyms
// "Open"/"Live" for ongoing issues and "Listed" for closed ones
func ParseIPOStatus(value string) (models.IPOStatus, bool) {
	switch enumKey(value) {
	case "ongoing", "open", "live", "current":
		return models.IPOStatusOngoing, true
	case "upcoming", "forthcoming":
		return models.IPOStatusUpcoming, true
	case "closed", "listed", "completed":
		return models.IPOStatusClosed, true
	}
	return "", false
}
