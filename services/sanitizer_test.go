package services

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fenilmodi00/ipo-pulse/models"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestRenderSafe(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  string
	}{
		{"nil", nil, ""},
		{"absent field", models.Field{}, ""},
		{"null field", models.FieldFromRaw(json.RawMessage("null")), ""},
		{"string field", models.Text("₹250-265"), "₹250-265"},
		{"integer field", models.Number(50), "50"},
		{"decimal literal", models.FieldFromRaw(json.RawMessage("1.50")), "1.5"},
		{"object keeps key order", models.FieldFromRaw(json.RawMessage(`{"retail": "1x", "nii": 2}`)), `{"retail":"1x","nii":2}`},
		{"array", json.RawMessage(`[1, 2]`), "[1,2]"},
		{"bool field", models.FieldFromRaw(json.RawMessage("true")), "true"},
		{"plain string", "Link Intime", "Link Intime"},
		{"plain float", 12.5, "12.5"},
		{"large float", 1e21, "1e+21"},
		{"tiny float", 1.5e-7, "1.5e-7"},
		{"plain int", 42, "42"},
		{"plain bool", false, "false"},
		{"decoded map", map[string]interface{}{"a": "b"}, `{"a":"b"}`},
		{"nil field pointer", (*models.Field)(nil), ""},
		{"unencodable value", make(chan int), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderSafe(tt.value))
		})
	}
}

func TestRenderSafeStringIdentityProperty(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("For any string, RenderSafe returns it unchanged, directly or as a field", prop.ForAll(
		func(s string) bool {
			return RenderSafe(s) == s && RenderSafe(models.Text(s)) == s
		},
		gen.AnyString().SuchThat(utf8.ValidString),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestAggregateSubscription(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  string
	}{
		{"ongoing mock record", models.Subscription("12.5x", "4.2x", "1.1x"), "17.8x"},
		{"unparseable category counts as zero", models.FieldFromRaw(json.RawMessage(`{"retail":"abc","nii":5,"qib":"2x"}`)), "7.0x"},
		{"nil", nil, SubscriptionUnavailable},
		{"absent field", models.Field{}, SubscriptionUnavailable},
		{"null field", models.FieldFromRaw(json.RawMessage("null")), SubscriptionUnavailable},
		{"string is not an object", models.Text("12x"), SubscriptionUnavailable},
		{"number is not an object", models.Number(12), SubscriptionUnavailable},
		{"empty object", models.FieldFromRaw(json.RawMessage(`{}`)), "0.0x"},
		{"array has no categories", models.FieldFromRaw(json.RawMessage(`[1,2,3]`)), "0.0x"},
		{"grouping and spacing", models.Subscription("1,234.5x", " 3 X", "0.5"), "1238.0x"},
		{"numeric prefix only", models.Subscription("2.5x (day 2)", "1x", "0"), "3.5x"},
		{"nested object counts as zero", models.FieldFromRaw(json.RawMessage(`{"retail":{"value":3},"nii":"1x","qib":null}`)), "1.0x"},
		{"decoded map", map[string]interface{}{"retail": 2.0, "nii": "3x", "qib": "4x"}, "9.0x"},
		{"raw message", json.RawMessage(`{"retail":"185x","nii":"98x","qib":"45x"}`), "328.0x"},
		{"exact tie rounds up", models.Subscription("12.25x", "0x", "0x"), "12.3x"},
		{"small exact tie rounds up", models.Subscription("0.25x", "0x", "0x"), "0.3x"},
		{"tie across categories", models.Subscription("1x", "0.125x", "0.125x"), "1.3x"},
		{"inexact literal rounds by binary value", models.Subscription("0.15x", "0x", "0x"), "0.1x"},
		{"negative tie rounds away from zero", models.Subscription("-1.25x", "0x", "0x"), "-1.3x"},
		{"negative zero", models.Subscription("-0x", "0x", "0x"), "0.0x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AggregateSubscription(tt.value))
		})
	}
}

func TestAggregateSubscriptionSumProperty(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("For any three multiples, the total has one decimal and is within half a tenth of the sum", prop.ForAll(
		func(retail, nii, qib float64) bool {
			subscription := models.Subscription(
				strconv.FormatFloat(retail, 'f', -1, 64)+"x",
				strconv.FormatFloat(nii, 'f', -1, 64)+"x",
				strconv.FormatFloat(qib, 'f', -1, 64)+"x",
			)
			total := AggregateSubscription(subscription)
			digits, ok := strings.CutSuffix(total, "x")
			if !ok {
				return false
			}
			whole, fraction, ok := strings.Cut(digits, ".")
			if !ok || whole == "" || len(fraction) != 1 {
				return false
			}
			value, err := strconv.ParseFloat(digits, 64)
			if err != nil {
				return false
			}
			return math.Abs(value-(retail+nii+qib)) <= 0.05+1e-9
		},
		gen.Float64Range(0, 1000),
		gen.Float64Range(0, 1000),
		gen.Float64Range(0, 1000),
	))

	// Quarter multiples are exact in binary, so ties are real ties and round up
	properties.Property("For quarter multiples, ties round half up", prop.ForAll(
		func(retail, nii, qib int) bool {
			quarters := retail + nii + qib
			tenths := (5*quarters + 1) / 2
			want := fmt.Sprintf("%d.%dx", tenths/10, tenths%10)

			subscription := models.Subscription(
				strconv.FormatFloat(float64(retail)/4, 'f', -1, 64)+"x",
				strconv.FormatFloat(float64(nii)/4, 'f', -1, 64)+"x",
				strconv.FormatFloat(float64(qib)/4, 'f', -1, 64)+"x",
			)
			return AggregateSubscription(subscription) == want
		},
		gen.IntRange(0, 4000),
		gen.IntRange(0, 4000),
		gen.IntRange(0, 4000),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestFormatFixed(t *testing.T) {
	tests := []struct {
		value    float64
		decimals int
		want     string
	}{
		{12.25, 1, "12.3"},
		{1.25, 1, "1.3"},
		{1.005, 2, "1.00"},
		{8.345, 2, "8.35"},
		{3.125, 2, "3.13"},
		{0.625, 2, "0.63"},
		{17.8, 1, "17.8"},
		{0, 1, "0.0"},
		{1e21, 1, "1e+21"},
		{math.Inf(1), 1, "Infinity"},
		{math.NaN(), 1, "NaN"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatFixed(tt.value, tt.decimals), "value %v", tt.value)
	}
}

func TestParseLeadingFloat(t *testing.T) {
	tests := []struct {
		input string
		want  float64
		ok    bool
	}{
		{"12.5", 12.5, true},
		{"  7abc", 7, true},
		{".5", 0.5, true},
		{"-2", -2, true},
		{"1e3x", 1000, true},
		{"abc", 0, false},
		{"", 0, false},
		{"-", 0, false},
	}

	for _, tt := range tests {
		got, ok := parseLeadingFloat(tt.input)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}

	got, ok := parseLeadingFloat("Infinity")
	assert.True(t, ok)
	assert.True(t, math.IsInf(got, 1))
}

func TestClassifyListingGain(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		percent  float64
		isProfit bool
		label    string
	}{
		{"gain", models.Text("58%"), 58, true, "58%"},
		{"loss", models.Text("-2%"), -2, false, "-2%"},
		{"flat counts as profit", models.Text("0%"), 0, true, "0%"},
		{"unreadable counts as zero", models.Text("N/A"), 0, true, "N/A"},
		{"numeric field", models.Number(12.5), 12.5, true, "12.5"},
		{"absent", models.Field{}, 0, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gain := ClassifyListingGain(tt.value)
			assert.Equal(t, tt.percent, gain.Percent)
			assert.Equal(t, tt.isProfit, gain.IsProfit)
			assert.Equal(t, tt.label, gain.Label)
		})
	}
}

func TestBuildIPOCard(t *testing.T) {
	records := MockDataset()

	ongoing := BuildIPOCard(records[1])
	assert.Equal(t, "mock-2", ongoing.ID)
	assert.Equal(t, "17.8x", ongoing.TotalSubscription)
	assert.Equal(t, "80%", ongoing.ExpectedGain)
	assert.Equal(t, "1200", ongoing.LotSize)
	assert.Nil(t, ongoing.ListingGain)
	assert.Empty(t, ongoing.ListingPrice)

	var nephroPlus models.IPORecord
	for _, record := range records {
		if record.ID == "closed-12" {
			nephroPlus = record
		}
	}

	closed := BuildIPOCard(nephroPlus)
	assert.Empty(t, closed.ExpectedGain)
	if assert.NotNil(t, closed.ListingGain) {
		assert.False(t, closed.ListingGain.IsProfit)
		assert.Equal(t, -2.0, closed.ListingGain.Percent)
	}
	assert.Equal(t, "₹617", closed.ListingPrice)

	assert.Len(t, BuildIPOCards(records), len(records))
}
