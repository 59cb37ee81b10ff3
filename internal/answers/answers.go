// Package answers models the vendor questionnaire: the immutable record of
// attestations a reviewer collected, plus the vendor metadata that travels
// with it into reports. A Record is constructed once per assessment and
// passed by value into the engine; it is never mutated.
package answers

import (
	"time"
)

// Record holds every questionnaire field across all scoring modes. Zero
// values are the documented defaults and always mean the worst category for
// that field (false, "", 0). Which subset of fields a given mode accepts is
// enforced by schema validation, not by this struct.
type Record struct {
	// Shared.
	Name     bool `yaml:"name" json:"name"`
	RedFlags int  `yaml:"red_flags" json:"red_flags"`

	// Enhanced rubric.
	PhonesVerified   int    `yaml:"phones_verified" json:"phones_verified"`
	Address          string `yaml:"address" json:"address"`
	SocialMedia      string `yaml:"social_media" json:"social_media"`
	ID               string `yaml:"id" json:"id"`
	FamilyContacts   int    `yaml:"family_contacts" json:"family_contacts"`
	Registration     string `yaml:"registration" json:"registration"`
	SupplierProof    string `yaml:"supplier_proof" json:"supplier_proof"`
	Operations       string `yaml:"operations" json:"operations"`
	RefundPolicy     string `yaml:"refund_policy" json:"refund_policy"`
	DeliveryTimeline string `yaml:"delivery_timeline" json:"delivery_timeline"`
	References       int    `yaml:"references" json:"references"`
	Responsiveness   string `yaml:"responsiveness" json:"responsiveness"`
	Communication    string `yaml:"communication" json:"communication"`

	// Document rubric.
	Phone                     bool   `yaml:"phone" json:"phone"`
	AddressProvided           bool   `yaml:"address_provided" json:"address_provided"`
	SocialMediaProvided       bool   `yaml:"social_media_provided" json:"social_media_provided"`
	IDSubmitted               bool   `yaml:"id_submitted" json:"id_submitted"`
	Guarantors                int    `yaml:"guarantors" json:"guarantors"`
	SupplierProofSubmitted    bool   `yaml:"supplier_proof_submitted" json:"supplier_proof_submitted"`
	OperationsProofSubmitted  bool   `yaml:"operations_proof_submitted" json:"operations_proof_submitted"`
	TestimonialsSubmitted     bool   `yaml:"testimonials_submitted" json:"testimonials_submitted"`
	IDQuality                 string `yaml:"id_quality" json:"id_quality"`
	RegistrationQuality       string `yaml:"registration_quality" json:"registration_quality"`
	SupplierProofQuality      string `yaml:"supplier_proof_quality" json:"supplier_proof_quality"`
	OperationsQuality         string `yaml:"operations_quality" json:"operations_quality"`
	TestimonialAuthenticity   string `yaml:"testimonial_authenticity" json:"testimonial_authenticity"`
	RefundPolicyDocumented    bool   `yaml:"refund_policy_documented" json:"refund_policy_documented"`
	DeliveryInfoProvided      bool   `yaml:"delivery_info_provided" json:"delivery_info_provided"`
	ResponsivenessRating      int    `yaml:"responsiveness_rating" json:"responsiveness_rating"`
	ProfessionalCommunication bool   `yaml:"professional_communication" json:"professional_communication"`

	// Gate checklist.
	Location                bool `yaml:"location" json:"location"`
	IDPhoto                 bool `yaml:"id_photo" json:"id_photo"`
	SupplierProofProvided   bool `yaml:"supplier_proof_provided" json:"supplier_proof_provided"`
	OperationsProofProvided bool `yaml:"operations_proof_provided" json:"operations_proof_provided"`
	AgreedToRules           bool `yaml:"agreed_to_rules" json:"agreed_to_rules"`
	VideoCallVerification   bool `yaml:"video_call_verification" json:"video_call_verification"`
}

// Flag returns the boolean field registered under key. Unknown keys are
// false; rule tables only reference keys defined here.
func (r Record) Flag(key string) bool {
	switch key {
	case "name":
		return r.Name
	case "phone":
		return r.Phone
	case "address_provided":
		return r.AddressProvided
	case "social_media_provided":
		return r.SocialMediaProvided
	case "id_submitted":
		return r.IDSubmitted
	case "supplier_proof_submitted":
		return r.SupplierProofSubmitted
	case "operations_proof_submitted":
		return r.OperationsProofSubmitted
	case "testimonials_submitted":
		return r.TestimonialsSubmitted
	case "refund_policy_documented":
		return r.RefundPolicyDocumented
	case "delivery_info_provided":
		return r.DeliveryInfoProvided
	case "professional_communication":
		return r.ProfessionalCommunication
	case "location":
		return r.Location
	case "id_photo":
		return r.IDPhoto
	case "supplier_proof_provided":
		return r.SupplierProofProvided
	case "operations_proof_provided":
		return r.OperationsProofProvided
	case "agreed_to_rules":
		return r.AgreedToRules
	case "video_call_verification":
		return r.VideoCallVerification
	}
	return false
}

// Count returns the integer field registered under key.
func (r Record) Count(key string) int {
	switch key {
	case "phones_verified":
		return r.PhonesVerified
	case "family_contacts":
		return r.FamilyContacts
	case "references":
		return r.References
	case "guarantors":
		return r.Guarantors
	case "responsiveness_rating":
		return r.ResponsivenessRating
	case "red_flags":
		return r.RedFlags
	}
	return 0
}

// Option returns the enumerated category field registered under key. An
// empty string means the field was not answered.
func (r Record) Option(key string) string {
	switch key {
	case "address":
		return r.Address
	case "social_media":
		return r.SocialMedia
	case "id":
		return r.ID
	case "registration":
		return r.Registration
	case "supplier_proof":
		return r.SupplierProof
	case "operations":
		return r.Operations
	case "refund_policy":
		return r.RefundPolicy
	case "delivery_timeline":
		return r.DeliveryTimeline
	case "responsiveness":
		return r.Responsiveness
	case "communication":
		return r.Communication
	case "id_quality":
		return r.IDQuality
	case "registration_quality":
		return r.RegistrationQuality
	case "supplier_proof_quality":
		return r.SupplierProofQuality
	case "operations_quality":
		return r.OperationsQuality
	case "testimonial_authenticity":
		return r.TestimonialAuthenticity
	}
	return ""
}

// VendorInfo is the identifying metadata collected alongside the
// questionnaire. None of it is scored; it flows into reports and
// certificates.
type VendorInfo struct {
	Name     string `yaml:"name" json:"name"`
	Category string `yaml:"category" json:"category"`
	// Assessed is the assessment date as written in the dossier,
	// "2006-01-02" or RFC 3339. Empty means the assessment ran now.
	Assessed string `yaml:"assessed" json:"assessed,omitempty"`
}

// AssessedTime parses the recorded assessment date, falling back to now
// when the date is absent or unparseable.
func (v VendorInfo) AssessedTime(now time.Time) time.Time {
	if v.Assessed == "" {
		return now
	}
	if t, err := time.Parse("2006-01-02", v.Assessed); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, v.Assessed); err == nil {
		return t
	}
	return now
}
