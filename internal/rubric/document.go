package rubric

var qualityScale = map[string]float64{"poor": 1, "acceptable": 3, "excellent": 5}

var qualityRank = []string{"poor", "acceptable", "excellent"}

// Document is the document-centric rubric revision: presence of documents,
// their reviewed quality, and observed WhatsApp behavior. Several point
// values are halves, so totals are fractional. The WhatsApp category is
// floored at zero: the red-flag penalty never exceeds the interaction
// sub-score itself.
var Document = Rubric{
	Name:    "document",
	Version: "v3",
	Title:   "Document-Centric Assessment",
	Categories: []Category{
		{
			Name: "Basic Information",
			Max:  15,
			Factors: []Factor{
				{Field: "name", Label: "Business or individual name", Kind: Bool, Points: 3},
				{Field: "phone", Label: "Phone number", Kind: Bool, Points: 4},
				{Field: "address_provided", Label: "Address", Kind: Bool, Points: 4},
				{Field: "social_media_provided", Label: "Social media handle", Kind: Bool, Points: 4},
			},
		},
		{
			Name: "Documents Submitted",
			Max:  25,
			Factors: []Factor{
				{Field: "id_submitted", Label: "Photo ID", Kind: Bool, Points: 5},
				{Field: "guarantors", Label: "Guarantor contacts", Kind: PerUnit, Points: 2.5, MaxUnits: 2},
				{Field: "registration", Label: "Business registration", Kind: Enum,
					Table: map[string]float64{"none": 0, "smedan": 3, "cac": 5},
					Rank:  []string{"none", "smedan", "cac"}},
				{Field: "supplier_proof_submitted", Label: "Supplier proof", Kind: Bool, Points: 5},
				{Field: "operations_proof_submitted", Label: "Operations proof", Kind: Bool, Points: 5},
				{Field: "testimonials_submitted", Label: "Customer testimonials", Kind: Bool, Points: 2.5},
			},
		},
		{
			Name: "Document Quality",
			Max:  35,
			Factors: []Factor{
				{Field: "id_quality", Label: "ID quality", Kind: Enum, Table: qualityScale, Rank: qualityRank},
				{Field: "registration_quality", Label: "Registration quality", Kind: Enum, Table: qualityScale, Rank: qualityRank},
				{Field: "supplier_proof_quality", Label: "Supplier proof quality", Kind: Enum, Table: qualityScale, Rank: qualityRank},
				{Field: "operations_quality", Label: "Operations proof quality", Kind: Enum, Table: qualityScale, Rank: qualityRank},
				{Field: "testimonial_authenticity", Label: "Testimonial authenticity", Kind: Enum,
					Table: map[string]float64{"suspicious": 0, "mixed": 5, "authentic": 10},
					Rank:  []string{"suspicious", "mixed", "authentic"}},
				{Field: "refund_policy_documented", Label: "Refund policy documented", Kind: Bool, Points: 2.5},
				{Field: "delivery_info_provided", Label: "Delivery information", Kind: Bool, Points: 2.5},
			},
		},
		{
			Name:        "WhatsApp Interaction",
			Max:         25,
			FloorAtZero: true,
			Factors: []Factor{
				{Field: "responsiveness_rating", Label: "Responsiveness rating", Kind: PerUnit, Points: 2, MaxUnits: 5},
				{Field: "professional_communication", Label: "Professional communication", Kind: Bool, Points: 10},
				{Field: "red_flags", Label: "Red flags", Kind: PerUnit, Points: -5},
			},
		},
	},
}
