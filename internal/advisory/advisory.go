// Package advisory derives the recommendation and risk-factor lists from an
// answer record. Each list is produced by its own fixed sequence of
// independent checks; emission order is check-definition order and never
// changes for identical input. Recommendations and risk factors are separate
// rule sets even where predicates overlap.
package advisory

import (
	"fmt"

	"github.com/Rex-Orokumue/Vendor-verification/internal/answers"
)

// Recommendations returns the follow-up actions suggested for rec under the
// named rubric. Unknown rubric names yield nothing; the engine validates
// names before calling.
func Recommendations(rubricName string, rec answers.Record) []string {
	switch rubricName {
	case "enhanced":
		return enhancedRecommendations(rec)
	case "document":
		return documentRecommendations(rec)
	}
	return nil
}

// RiskFactors returns the warning signs identified in rec under the named
// rubric.
func RiskFactors(rubricName string, rec answers.Record) []string {
	switch rubricName {
	case "enhanced":
		return enhancedRiskFactors(rec)
	case "document":
		return documentRiskFactors(rec)
	}
	return nil
}

func enhancedRecommendations(rec answers.Record) []string {
	var recs []string
	if !rec.Name {
		recs = append(recs, "Obtain complete business/individual name")
	}
	if rec.PhonesVerified != 2 {
		recs = append(recs, "Verify all phone numbers provided")
	}
	if rec.Address != "full" {
		recs = append(recs, "Request complete address with verification")
	}
	if rec.ID != "clear" {
		recs = append(recs, "Obtain clear photo ID documentation")
	}
	if rec.Registration == "none" || rec.Registration == "" {
		recs = append(recs, "Request business registration documents")
	}
	if rec.SupplierProof == "none" || rec.SupplierProof == "verbal" || rec.SupplierProof == "" {
		recs = append(recs, "Request formal supplier documentation")
	}
	if rec.References < 3 {
		recs = append(recs, "Collect more customer references")
	}
	if rec.RefundPolicy != "documented" {
		recs = append(recs, "Document clear refund policy")
	}
	return recs
}

func enhancedRiskFactors(rec answers.Record) []string {
	var risks []string
	if rec.RedFlags > 0 {
		risks = append(risks, fmt.Sprintf("%d red flags identified", rec.RedFlags))
	}
	if rec.Responsiveness == "slow" {
		risks = append(risks, "Poor communication responsiveness")
	}
	if rec.Communication != "professional" {
		risks = append(risks, "Unprofessional communication style")
	}
	if rec.PhonesVerified == 0 {
		risks = append(risks, "No phone verification completed")
	}
	if rec.Registration == "none" || rec.Registration == "" {
		risks = append(risks, "No business registration on file")
	}
	return risks
}

func documentRecommendations(rec answers.Record) []string {
	var recs []string
	if !rec.Name {
		recs = append(recs, "Obtain complete business/individual name")
	}
	if !rec.Phone {
		recs = append(recs, "Collect and verify vendor phone number")
	}
	if !rec.IDSubmitted {
		recs = append(recs, "Obtain clear photo ID documentation")
	}
	if rec.Guarantors < 2 {
		recs = append(recs, "Request additional guarantor contacts")
	}
	if rec.Registration == "none" || rec.Registration == "" {
		recs = append(recs, "Request business registration documents")
	}
	if !rec.SupplierProofSubmitted {
		recs = append(recs, "Request formal supplier documentation")
	}
	if !rec.TestimonialsSubmitted {
		recs = append(recs, "Collect customer testimonials")
	}
	if anyQualityPoor(rec) {
		recs = append(recs, "Request higher quality copies of submitted documents")
	}
	if !rec.RefundPolicyDocumented {
		recs = append(recs, "Document clear refund policy")
	}
	return recs
}

func documentRiskFactors(rec answers.Record) []string {
	var risks []string
	if rec.RedFlags > 0 {
		risks = append(risks, fmt.Sprintf("%d red flags identified", rec.RedFlags))
	}
	if rec.ResponsivenessRating <= 2 {
		risks = append(risks, "Slow responses during WhatsApp interaction")
	}
	if !rec.ProfessionalCommunication {
		risks = append(risks, "Unprofessional communication style")
	}
	if rec.TestimonialAuthenticity == "suspicious" {
		risks = append(risks, "Testimonials appear fabricated or reused")
	}
	if anyQualityPoor(rec) {
		risks = append(risks, "Poor quality documents submitted")
	}
	if rec.Registration == "none" || rec.Registration == "" {
		risks = append(risks, "No business registration on file")
	}
	return risks
}

var qualityFields = []string{
	"id_quality",
	"registration_quality",
	"supplier_proof_quality",
	"operations_quality",
}

func anyQualityPoor(rec answers.Record) bool {
	for _, field := range qualityFields {
		if rec.Option(field) == "poor" {
			return true
		}
	}
	return false
}
