package rubric

// Enhanced is the original 100-point rubric. Core categories sum to 100;
// Bonus/Penalty floats on top and may go negative, so totals range beyond
// 0..100 and badge thresholds apply to the raw sum.
var Enhanced = Rubric{
	Name:    "enhanced",
	Version: "v2",
	Title:   "Enhanced 100-Point Assessment",
	Categories: []Category{
		{
			Name: "Core Identity",
			Max:  40,
			Factors: []Factor{
				{Field: "name", Label: "Business or individual name", Kind: Bool, Points: 5},
				{Field: "phones_verified", Label: "Phone numbers verified", Kind: Steps, Steps: []float64{0, 6, 10}},
				{Field: "address", Label: "Address verification", Kind: Enum,
					Table: map[string]float64{"none": 0, "partial": 5, "full": 10},
					Rank:  []string{"none", "partial", "full"}},
				{Field: "social_media", Label: "Social media presence", Kind: Enum,
					Table: map[string]float64{"none": 0, "personal": 2, "active": 5},
					Rank:  []string{"none", "personal", "active"}},
				{Field: "id", Label: "Photo ID", Kind: Enum,
					Table: map[string]float64{"missing": 0, "unclear": 5, "clear": 10},
					Rank:  []string{"missing", "unclear", "clear"}},
			},
		},
		{
			Name: "Trust & Guarantors",
			Max:  15,
			Factors: []Factor{
				{Field: "family_contacts", Label: "Guarantor contacts", Kind: Steps, Steps: []float64{0, 8, 15}},
			},
		},
		{
			Name: "Business Legitimacy",
			Max:  30,
			Factors: []Factor{
				{Field: "registration", Label: "Business registration", Kind: Enum,
					Table: map[string]float64{"none": 0, "smedan": 5, "cac": 10},
					Rank:  []string{"none", "smedan", "cac"}},
				{Field: "supplier_proof", Label: "Supplier proof", Kind: Enum,
					Table: map[string]float64{"none": 0, "verbal": 3, "whatsapp": 6, "invoice": 10},
					Rank:  []string{"none", "verbal", "whatsapp", "invoice"}},
				{Field: "operations", Label: "Operations evidence", Kind: Enum,
					Table: map[string]float64{"none": 0, "screenshots": 3, "products": 6, "photos": 10},
					Rank:  []string{"none", "screenshots", "products", "photos"}},
			},
		},
		{
			Name: "Service Quality",
			Max:  15,
			Factors: []Factor{
				{Field: "refund_policy", Label: "Refund policy", Kind: Enum,
					Table: map[string]float64{"none": 0, "vague": 1, "verbal": 3, "documented": 5},
					Rank:  []string{"none", "vague", "verbal", "documented"}},
				{Field: "delivery_timeline", Label: "Delivery timeline", Kind: Enum,
					Table: map[string]float64{"none": 0, "vague": 0, "general": 3, "specific": 5},
					Rank:  []string{"none", "vague", "general", "specific"}},
				{Field: "references", Label: "Customer references", Kind: Steps, Steps: []float64{0, 3, 3, 5}},
			},
		},
		{
			Name: "Bonus/Penalty",
			Max:  8,
			Factors: []Factor{
				{Field: "responsiveness", Label: "Responsiveness", Kind: Enum,
					Table: map[string]float64{"slow": -3, "medium": 2, "fast": 5},
					Rank:  []string{"slow", "medium", "fast"}},
				{Field: "communication", Label: "Communication style", Kind: Enum,
					Table: map[string]float64{"poor": 0, "professional": 3},
					Rank:  []string{"poor", "professional"}},
				{Field: "red_flags", Label: "Red flags", Kind: PerUnit, Points: -10},
			},
		},
	},
}
