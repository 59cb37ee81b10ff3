package advisory

import (
	"reflect"
	"testing"

	"github.com/Rex-Orokumue/Vendor-verification/internal/answers"
)

func TestEnhancedRecommendationsWorstCase(t *testing.T) {
	got := Recommendations("enhanced", answers.Record{})
	want := []string{
		"Obtain complete business/individual name",
		"Verify all phone numbers provided",
		"Request complete address with verification",
		"Obtain clear photo ID documentation",
		"Request business registration documents",
		"Request formal supplier documentation",
		"Collect more customer references",
		"Document clear refund policy",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Recommendations mismatch:\ngot  %v\nwant %v", got, want)
	}
}

func TestEnhancedRecommendationsCleanVendor(t *testing.T) {
	rec := answers.Record{
		Name:           true,
		PhonesVerified: 2,
		Address:        "full",
		ID:             "clear",
		Registration:   "cac",
		SupplierProof:  "invoice",
		References:     3,
		RefundPolicy:   "documented",
	}
	if got := Recommendations("enhanced", rec); len(got) != 0 {
		t.Errorf("Recommendations = %v, want none for a fully verified vendor", got)
	}
}

func TestEnhancedRiskFactors(t *testing.T) {
	t.Run("worst case includes required entries", func(t *testing.T) {
		got := RiskFactors("enhanced", answers.Record{})
		want := []string{
			"Unprofessional communication style",
			"No phone verification completed",
			"No business registration on file",
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("RiskFactors mismatch:\ngot  %v\nwant %v", got, want)
		}
	})

	t.Run("red flag count interpolated first", func(t *testing.T) {
		rec := answers.Record{RedFlags: 4, Responsiveness: "slow"}
		got := RiskFactors("enhanced", rec)
		if len(got) == 0 || got[0] != "4 red flags identified" {
			t.Errorf("RiskFactors = %v, want leading red flag entry", got)
		}
		if got[1] != "Poor communication responsiveness" {
			t.Errorf("RiskFactors[1] = %q, want responsiveness entry", got[1])
		}
	})

	t.Run("clean vendor has none", func(t *testing.T) {
		rec := answers.Record{
			PhonesVerified: 2,
			Responsiveness: "fast",
			Communication:  "professional",
			Registration:   "cac",
		}
		if got := RiskFactors("enhanced", rec); len(got) != 0 {
			t.Errorf("RiskFactors = %v, want none", got)
		}
	})
}

func TestRegistrationFiresInBothLists(t *testing.T) {
	rec := answers.Record{Registration: "none"}

	recs := Recommendations("enhanced", rec)
	risks := RiskFactors("enhanced", rec)

	if !contains(recs, "Request business registration documents") {
		t.Errorf("recommendations %v missing registration entry", recs)
	}
	if !contains(risks, "No business registration on file") {
		t.Errorf("risk factors %v missing registration entry", risks)
	}
}

func TestDocumentRecommendations(t *testing.T) {
	rec := answers.Record{
		Name:                   true,
		Phone:                  true,
		IDSubmitted:            true,
		Guarantors:             1,
		Registration:           "smedan",
		SupplierProofSubmitted: true,
		TestimonialsSubmitted:  true,
		IDQuality:              "poor",
		RefundPolicyDocumented: true,
	}
	got := Recommendations("document", rec)
	want := []string{
		"Request additional guarantor contacts",
		"Request higher quality copies of submitted documents",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Recommendations mismatch:\ngot  %v\nwant %v", got, want)
	}
}

func TestDocumentRiskFactors(t *testing.T) {
	rec := answers.Record{
		RedFlags:                2,
		ResponsivenessRating:    4,
		TestimonialAuthenticity: "suspicious",
		OperationsQuality:       "poor",
		Registration:            "cac",
	}
	got := RiskFactors("document", rec)
	want := []string{
		"2 red flags identified",
		"Unprofessional communication style",
		"Testimonials appear fabricated or reused",
		"Poor quality documents submitted",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RiskFactors mismatch:\ngot  %v\nwant %v", got, want)
	}
}

func TestAdvisoriesDeterministic(t *testing.T) {
	rec := answers.Record{RedFlags: 1, Registration: "none", SupplierProof: "verbal"}
	for i := 0; i < 3; i++ {
		if !reflect.DeepEqual(Recommendations("enhanced", rec), Recommendations("enhanced", rec)) {
			t.Fatal("Recommendations not stable across calls")
		}
		if !reflect.DeepEqual(RiskFactors("enhanced", rec), RiskFactors("enhanced", rec)) {
			t.Fatal("RiskFactors not stable across calls")
		}
	}
}

func TestUnknownRubricYieldsNothing(t *testing.T) {
	if got := Recommendations("ultimate", answers.Record{}); got != nil {
		t.Errorf("Recommendations(ultimate) = %v, want nil", got)
	}
	if got := RiskFactors("ultimate", answers.Record{}); got != nil {
		t.Errorf("RiskFactors(ultimate) = %v, want nil", got)
	}
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
