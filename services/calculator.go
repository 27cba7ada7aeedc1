package services

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// SIPResult is the projection of a monthly systematic investment plan
type SIPResult struct {
	MonthlyInvestment float64 `json:"monthly_investment"`
	AnnualRate        float64 `json:"annual_rate"`
	Years             float64 `json:"years"`
	MonthlyRate       float64 `json:"monthly_rate"`
	Months            float64 `json:"months"`
	FutureValue       float64 `json:"future_value"`
	Invested          float64 `json:"invested"`
	Returns           float64 `json:"returns"`
}

// CalculateSIP projects the future value of investing monthly at an annual rate
// for a number of years, with contributions at the start of each month:
//
//	FV = P * ((1+i)^n - 1) / i * (1+i),  i = r/12/100,  n = years*12
//
// A zero rate reduces to the plain sum of contributions.
func CalculateSIP(monthlyInvestment, annualRate, years float64) SIPResult {
	monthlyRate := annualRate / 12 / 100
	months := years * 12

	var futureValue float64
	if monthlyRate == 0 {
		futureValue = monthlyInvestment * months
	} else {
		futureValue = monthlyInvestment * ((math.Pow(1+monthlyRate, months) - 1) / monthlyRate) * (1 + monthlyRate)
	}

	invested := monthlyInvestment * months

	return SIPResult{
		MonthlyInvestment: monthlyInvestment,
		AnnualRate:        annualRate,
		Years:             years,
		MonthlyRate:       monthlyRate,
		Months:            months,
		FutureValue:       futureValue,
		Invested:          invested,
		Returns:           futureValue - invested,
	}
}

// LotInvestmentValue is the amount needed to apply for one lot
func LotInvestmentValue(pricePerShare, sharesPerLot float64) float64 {
	return pricePerShare * sharesPerLot
}

// AllotmentProbability is the percentage chance of getting one lot for a given
// subscription multiple, rounded to two decimals. Issues that are not
// oversubscribed allot everyone.
func AllotmentProbability(subscriptionRate float64) float64 {
	if subscriptionRate <= 1 {
		return 100
	}
	return roundTo(100/subscriptionRate, 2)
}

// AllotmentOdds phrases the probability as "1 in N applicants"
func AllotmentOdds(subscriptionRate float64) string {
	applicants := math.Round(subscriptionRate)
	if math.IsNaN(applicants) || applicants < 1 {
		applicants = 1
	}
	return fmt.Sprintf("1 in %.0f applicants", applicants)
}

func roundTo(value float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return math.Round(value*factor) / factor
}

var inrPrinter = message.NewPrinter(language.MustParse("en-IN"))

// FormatINR renders a rupee amount rounded to whole rupees with locale digit grouping
func FormatINR(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "₹" + formatJSNumber(amount)
	}
	return inrPrinter.Sprintf("₹%.0f", math.Round(amount))
}
