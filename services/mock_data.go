package services

import "github.com/fenilmodi00/ipo-pulse/models"

// MockDataset returns the built-in records served whenever a live fetch fails.
// Every call returns a fresh copy.
func MockDataset() []models.IPORecord {
	return models.CloneRecords(mockDataset)
}

var mockDataset = []models.IPORecord{
	// Ongoing and upcoming
	{
		ID:           "mock-1",
		CompanyName:  "Bharat Coking Coal Ltd",
		Type:         models.IPOTypeMainboard,
		Status:       models.IPOStatusUpcoming,
		PriceBand:    models.Text("₹250-265"),
		LotSize:      models.Number(50),
		IssueSize:    models.Text("1200 Cr"),
		OpenDate:     models.Text("Jan 28, 2026"),
		CloseDate:    models.Text("Jan 31, 2026"),
		ListingDate:  models.Text("Feb 05, 2026"),
		Subscription: models.Subscription("0x", "0x", "0x"),
		GMP:          models.Text("+₹45"),
		ExpectedGain: models.Text("18%"),
		Registrar:    models.Text("KFin Technologies"),
		LeadManager:  models.Text("SBI Capital Markets"),
	},
	{
		ID:           "mock-2",
		CompanyName:  "Victory Electric Vehicles",
		Type:         models.IPOTypeSME,
		Status:       models.IPOStatusOngoing,
		PriceBand:    models.Text("₹95-100"),
		LotSize:      models.Number(1200),
		IssueSize:    models.Text("45 Cr"),
		OpenDate:     models.Text("Jan 24, 2026"),
		CloseDate:    models.Text("Jan 27, 2026"),
		ListingDate:  models.Text("Feb 01, 2026"),
		Subscription: models.Subscription("12.5x", "4.2x", "1.1x"),
		GMP:          models.Text("+₹80"),
		ExpectedGain: models.Text("80%"),
		Registrar:    models.Text("Bigshare Services"),
		LeadManager:  models.Text("Hem Securities"),
	},

	// Closed
	{
		ID:           "closed-1",
		CompanyName:  "E to E Transportation",
		Type:         models.IPOTypeSME,
		Status:       models.IPOStatusClosed,
		PriceBand:    models.Text("₹72-76"),
		LotSize:      models.Number(1600),
		IssueSize:    models.Text("22 Cr"),
		OpenDate:     models.Text("Jan 10, 2026"),
		CloseDate:    models.Text("Jan 13, 2026"),
		ListingDate:  models.Text("Jan 18, 2026"),
		Subscription: models.Subscription("185x", "98x", "45x"),
		GMP:          models.Text("+₹40"),
		ExpectedGain: models.Text("52%"),
		ListingGain:  models.Text("58%"),
		ListingPrice: models.Text("₹120"),
		Registrar:    models.Text("Maashitla Securities"),
		LeadManager:  models.Text("Beeline Capital"),
	},
	{
		ID:           "closed-2",
		CompanyName:  "Dhara Rail Projects",
		Type:         models.IPOTypeSME,
		Status:       models.IPOStatusClosed,
		PriceBand:    models.Text("₹102-108"),
		LotSize:      models.Number(1200),
		IssueSize:    models.Text("35 Cr"),
		OpenDate:     models.Text("Jan 08, 2026"),
		CloseDate:    models.Text("Jan 11, 2026"),
		ListingDate:  models.Text("Jan 16, 2026"),
		Subscription: models.Subscription("210x", "150x", "80x"),
		GMP:          models.Text("+₹90"),
		ExpectedGain: models.Text("83%"),
		ListingGain:  models.Text("92%"),
		ListingPrice: models.Text("₹207"),
		Registrar:    models.Text("Skyline Financial"),
		LeadManager:  models.Text("Interactive Fin"),
	},
	{
		ID:           "closed-3",
		CompanyName:  "Nanta Tech",
		Type:         models.IPOTypeMainboard,
		Status:       models.IPOStatusClosed,
		PriceBand:    models.Text("₹340-360"),
		LotSize:      models.Number(40),
		IssueSize:    models.Text("600 Cr"),
		OpenDate:     models.Text("Jan 05, 2026"),
		CloseDate:    models.Text("Jan 08, 2026"),
		ListingDate:  models.Text("Jan 13, 2026"),
		Subscription: models.Subscription("15x", "32x", "45x"),
		GMP:          models.Text("+₹120"),
		ExpectedGain: models.Text("33%"),
		ListingGain:  models.Text("35%"),
		ListingPrice: models.Text("₹486"),
		Registrar:    models.Text("Link Intime"),
		LeadManager:  models.Text("ICICI Securities"),
	},
	{
		ID:           "closed-4",
		CompanyName:  "Apollo Techno Industries",
		Type:         models.IPOTypeMainboard,
		Status:       models.IPOStatusClosed,
		PriceBand:    models.Text("₹210-225"),
		LotSize:      models.Number(65),
		IssueSize:    models.Text("450 Cr"),
		OpenDate:     models.Text("Jan 02, 2026"),
		CloseDate:    models.Text("Jan 05, 2026"),
		ListingDate:  models.Text("Jan 10, 2026"),
		Subscription: models.Subscription("8x", "12x", "20x"),
		GMP:          models.Text("+₹15"),
		ExpectedGain: models.Text("7%"),
		ListingGain:  models.Text("12%"),
		ListingPrice: models.Text("₹252"),
		Registrar:    models.Text("KFin Tech"),
		LeadManager:  models.Text("JM Financial"),
	},
	{
		ID:           "closed-5",
		CompanyName:  "Bai-Kakaji Polymers",
		Type:         models.IPOTypeSME,
		Status:       models.IPOStatusClosed,
		PriceBand:    models.Text("₹55-58"),
		LotSize:      models.Number(2000),
		IssueSize:    models.Text("18 Cr"),
		OpenDate:     models.Text("Dec 28, 2025"),
		CloseDate:    models.Text("Dec 31, 2025"),
		ListingDate:  models.Text("Jan 05, 2026"),
		Subscription: models.Subscription("450x", "320x", "110x"),
		GMP:          models.Text("+₹65"),
		ExpectedGain: models.Text("112%"),
		ListingGain:  models.Text("125%"),
		ListingPrice: models.Text("₹130"),
		Registrar:    models.Text("Bigshare Services"),
		LeadManager:  models.Text("Shreni Shares"),
	},
	{
		ID:           "closed-6",
		CompanyName:  "Meesho",
		Type:         models.IPOTypeMainboard,
		Status:       models.IPOStatusClosed,
		PriceBand:    models.Text("₹320-340"),
		LotSize:      models.Number(45),
		IssueSize:    models.Text("3500 Cr"),
		OpenDate:     models.Text("Dec 26, 2025"),
		CloseDate:    models.Text("Dec 29, 2025"),
		ListingDate:  models.Text("Jan 03, 2026"),
		Subscription: models.Subscription("12x", "45x", "95x"),
		GMP:          models.Text("+₹70"),
		ExpectedGain: models.Text("20%"),
		ListingGain:  models.Text("22%"),
		ListingPrice: models.Text("₹414"),
		Registrar:    models.Text("Link Intime"),
		LeadManager:  models.Text("Kotak Mahindra"),
	},
	{
		ID:           "closed-7",
		CompanyName:  "Admach Systems",
		Type:         models.IPOTypeSME,
		Status:       models.IPOStatusClosed,
		PriceBand:    models.Text("₹88-92"),
		LotSize:      models.Number(1200),
		IssueSize:    models.Text("28 Cr"),
		OpenDate:     models.Text("Dec 24, 2025"),
		CloseDate:    models.Text("Dec 27, 2025"),
		ListingDate:  models.Text("Jan 01, 2026"),
		Subscription: models.Subscription("120x", "85x", "25x"),
		GMP:          models.Text("+₹25"),
		ExpectedGain: models.Text("27%"),
		ListingGain:  models.Text("18%"),
		ListingPrice: models.Text("₹108"),
		Registrar:    models.Text("Cameo Corporate"),
		LeadManager:  models.Text("Fedex Securities"),
	},
	{
		ID:           "closed-8",
		CompanyName:  "ICICI Prudential AMC",
		Type:         models.IPOTypeMainboard,
		Status:       models.IPOStatusClosed,
		PriceBand:    models.Text("₹850-900"),
		LotSize:      models.Number(15),
		IssueSize:    models.Text("2500 Cr"),
		OpenDate:     models.Text("Dec 20, 2025"),
		CloseDate:    models.Text("Dec 23, 2025"),
		ListingDate:  models.Text("Dec 29, 2025"),
		Subscription: models.Subscription("35x", "60x", "95x"),
		GMP:          models.Text("+₹200"),
		ExpectedGain: models.Text("22%"),
		ListingGain:  models.Text("25%"),
		ListingPrice: models.Text("₹1125"),
		Registrar:    models.Text("KFin Tech"),
		LeadManager:  models.Text("ICICI Securities"),
	},
	{
		ID:           "closed-9",
		CompanyName:  "Corona Remedies",
		Type:         models.IPOTypeMainboard,
		Status:       models.IPOStatusClosed,
		PriceBand:    models.Text("₹450-480"),
		LotSize:      models.Number(30),
		IssueSize:    models.Text("1200 Cr"),
		OpenDate:     models.Text("Dec 19, 2025"),
		CloseDate:    models.Text("Dec 22, 2025"),
		ListingDate:  models.Text("Dec 27, 2025"),
		Subscription: models.Subscription("8x", "15x", "32x"),
		GMP:          models.Text("+₹20"),
		ExpectedGain: models.Text("4%"),
		ListingGain:  models.Text("1%"),
		ListingPrice: models.Text("₹485"),
		Registrar:    models.Text("Link Intime"),
		LeadManager:  models.Text("Axis Capital"),
	},
	{
		ID:           "closed-10",
		CompanyName:  "TechNova Systems",
		Type:         models.IPOTypeMainboard,
		Status:       models.IPOStatusClosed,
		PriceBand:    models.Text("₹450-480"),
		LotSize:      models.Number(30),
		IssueSize:    models.Text("800 Cr"),
		OpenDate:     models.Text("Dec 18, 2025"),
		CloseDate:    models.Text("Dec 21, 2025"),
		ListingDate:  models.Text("Dec 26, 2025"),
		Subscription: models.Subscription("45x", "90x", "120x"),
		GMP:          models.Text("+₹150"),
		ExpectedGain: models.Text("35%"),
		ListingGain:  models.Text("42%"),
		ListingPrice: models.Text("₹681"),
		Registrar:    models.Text("Bigshare Services"),
		LeadManager:  models.Text("HDFC Bank"),
	},
	{
		ID:           "closed-11",
		CompanyName:  "Zenith Drugs & Pharma",
		Type:         models.IPOTypeSME,
		Status:       models.IPOStatusClosed,
		PriceBand:    models.Text("₹110-115"),
		LotSize:      models.Number(1000),
		IssueSize:    models.Text("40 Cr"),
		OpenDate:     models.Text("Dec 15, 2025"),
		CloseDate:    models.Text("Dec 18, 2025"),
		ListingDate:  models.Text("Dec 23, 2025"),
		Subscription: models.Subscription("85x", "55x", "20x"),
		GMP:          models.Text("+₹30"),
		ExpectedGain: models.Text("26%"),
		ListingGain:  models.Text("30%"),
		ListingPrice: models.Text("₹149"),
		Registrar:    models.Text("Maashitla"),
		LeadManager:  models.Text("Unistone Capital"),
	},
	{
		ID:           "closed-12",
		CompanyName:  "NephroPlus",
		Type:         models.IPOTypeMainboard,
		Status:       models.IPOStatusClosed,
		PriceBand:    models.Text("₹600-630"),
		LotSize:      models.Number(24),
		IssueSize:    models.Text("1800 Cr"),
		OpenDate:     models.Text("Dec 14, 2025"),
		CloseDate:    models.Text("Dec 17, 2025"),
		ListingDate:  models.Text("Dec 22, 2025"),
		Subscription: models.Subscription("5x", "8x", "18x"),
		GMP:          models.Text("+₹0"),
		ExpectedGain: models.Text("0%"),
		ListingGain:  models.Text("-2%"),
		ListingPrice: models.Text("₹617"),
		Registrar:    models.Text("KFin Tech"),
		LeadManager:  models.Text("IIFL Securities"),
	},
	{
		ID:           "closed-13",
		CompanyName:  "Greenhitech Ventures",
		Type:         models.IPOTypeSME,
		Status:       models.IPOStatusClosed,
		PriceBand:    models.Text("₹45-50"),
		LotSize:      models.Number(3000),
		IssueSize:    models.Text("12 Cr"),
		OpenDate:     models.Text("Dec 12, 2025"),
		CloseDate:    models.Text("Dec 15, 2025"),
		ListingDate:  models.Text("Dec 20, 2025"),
		Subscription: models.Subscription("310x", "220x", "100x"),
		GMP:          models.Text("+₹50"),
		ExpectedGain: models.Text("100%"),
		ListingGain:  models.Text("115%"),
		ListingPrice: models.Text("₹107"),
		Registrar:    models.Text("Purva Sharegistry"),
		LeadManager:  models.Text("Beeline"),
	},
	{
		ID:           "closed-14",
		CompanyName:  "Tata Technologies",
		Type:         models.IPOTypeMainboard,
		Status:       models.IPOStatusClosed,
		PriceBand:    models.Text("₹500-500"),
		LotSize:      models.Number(30),
		IssueSize:    models.Text("3042 Cr"),
		OpenDate:     models.Text("Dec 10, 2025"),
		CloseDate:    models.Text("Dec 13, 2025"),
		ListingDate:  models.Text("Dec 18, 2025"),
		Subscription: models.Subscription("16x", "62x", "203x"),
		GMP:          models.Text("+₹400"),
		ExpectedGain: models.Text("80%"),
		ListingGain:  models.Text("140%"),
		ListingPrice: models.Text("₹1200"),
		Registrar:    models.Text("Link Intime"),
		LeadManager:  models.Text("JM Financial"),
	},
	{
		ID:           "closed-15",
		CompanyName:  "Gandhar Oil Refinery",
		Type:         models.IPOTypeMainboard,
		Status:       models.IPOStatusClosed,
		PriceBand:    models.Text("₹160-169"),
		LotSize:      models.Number(88),
		IssueSize:    models.Text("500 Cr"),
		OpenDate:     models.Text("Dec 05, 2025"),
		CloseDate:    models.Text("Dec 08, 2025"),
		ListingDate:  models.Text("Dec 13, 2025"),
		Subscription: models.Subscription("29x", "64x", "152x"),
		GMP:          models.Text("+₹75"),
		ExpectedGain: models.Text("44%"),
		ListingGain:  models.Text("76%"),
		ListingPrice: models.Text("₹298"),
		Registrar:    models.Text("Link Intime"),
		LeadManager:  models.Text("Nuvama"),
	},
	{
		ID:           "closed-16",
		CompanyName:  "Flair Writing Industries",
		Type:         models.IPOTypeMainboard,
		Status:       models.IPOStatusClosed,
		PriceBand:    models.Text("₹288-304"),
		LotSize:      models.Number(49),
		IssueSize:    models.Text("593 Cr"),
		OpenDate:     models.Text("Dec 01, 2025"),
		CloseDate:    models.Text("Dec 04, 2025"),
		ListingDate:  models.Text("Dec 09, 2025"),
		Subscription: models.Subscription("13x", "35x", "122x"),
		GMP:          models.Text("+₹80"),
		ExpectedGain: models.Text("26%"),
		ListingGain:  models.Text("65%"),
		ListingPrice: models.Text("₹501"),
		Registrar:    models.Text("Link Intime"),
		LeadManager:  models.Text("Nuvama"),
	},
	{
		ID:           "closed-17",
		CompanyName:  "Innova Captab",
		Type:         models.IPOTypeMainboard,
		Status:       models.IPOStatusClosed,
		PriceBand:    models.Text("₹426-448"),
		LotSize:      models.Number(33),
		IssueSize:    models.Text("570 Cr"),
		OpenDate:     models.Text("Nov 28, 2025"),
		CloseDate:    models.Text("Dec 01, 2025"),
		ListingDate:  models.Text("Dec 06, 2025"),
		Subscription: models.Subscription("17x", "25x", "116x"),
		GMP:          models.Text("+₹90"),
		ExpectedGain: models.Text("20%"),
		ListingGain:  models.Text("22%"),
		ListingPrice: models.Text("₹546"),
		Registrar:    models.Text("KFin Tech"),
		LeadManager:  models.Text("JM Financial"),
	},
	{
		ID:           "closed-18",
		CompanyName:  "Azad Engineering",
		Type:         models.IPOTypeMainboard,
		Status:       models.IPOStatusClosed,
		PriceBand:    models.Text("₹524-524"),
		LotSize:      models.Number(28),
		IssueSize:    models.Text("740 Cr"),
		OpenDate:     models.Text("Nov 25, 2025"),
		CloseDate:    models.Text("Nov 28, 2025"),
		ListingDate:  models.Text("Dec 03, 2025"),
		Subscription: models.Subscription("23x", "90x", "179x"),
		GMP:          models.Text("+₹300"),
		ExpectedGain: models.Text("57%"),
		ListingGain:  models.Text("35%"),
		ListingPrice: models.Text("₹707"),
		Registrar:    models.Text("KFin Tech"),
		LeadManager:  models.Text("Axis Capital"),
	},
	{
		ID:           "closed-19",
		CompanyName:  "Happy Forgings",
		Type:         models.IPOTypeMainboard,
		Status:       models.IPOStatusClosed,
		PriceBand:    models.Text("₹808-850"),
		LotSize:      models.Number(17),
		IssueSize:    models.Text("1000 Cr"),
		OpenDate:     models.Text("Nov 22, 2025"),
		CloseDate:    models.Text("Nov 25, 2025"),
		ListingDate:  models.Text("Nov 30, 2025"),
		Subscription: models.Subscription("15x", "63x", "214x"),
		GMP:          models.Text("+₹450"),
		ExpectedGain: models.Text("53%"),
		ListingGain:  models.Text("55%"),
		ListingPrice: models.Text("₹1317"),
		Registrar:    models.Text("Link Intime"),
		LeadManager:  models.Text("JM Financial"),
	},
	{
		ID:           "closed-20",
		CompanyName:  "Credo Brands (Mufti)",
		Type:         models.IPOTypeMainboard,
		Status:       models.IPOStatusClosed,
		PriceBand:    models.Text("₹266-280"),
		LotSize:      models.Number(53),
		IssueSize:    models.Text("550 Cr"),
		OpenDate:     models.Text("Nov 20, 2025"),
		CloseDate:    models.Text("Nov 23, 2025"),
		ListingDate:  models.Text("Nov 28, 2025"),
		Subscription: models.Subscription("4x", "11x", "22x"),
		GMP:          models.Text("+₹10"),
		ExpectedGain: models.Text("3%"),
		ListingGain:  models.Text("0%"),
		ListingPrice: models.Text("₹280"),
		Registrar:    models.Text("Link Intime"),
		LeadManager:  models.Text("DAM Capital"),
	},
}
