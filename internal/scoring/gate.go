package scoring

import (
	"fmt"

	"github.com/Rex-Orokumue/Vendor-verification/internal/answers"
)

// Gate runs the initial-screening checklist in its fixed order. Every
// unmet condition appends one issue; the vendor passes only with a clean
// sheet. Proof of goods is satisfied by either supplier proof or
// operations proof.
func Gate(rec answers.Record) GateResult {
	var issues []string
	if !rec.Name {
		issues = append(issues, "Vendor name not provided")
	}
	if !rec.Phone {
		issues = append(issues, "Phone number not provided")
	}
	if !rec.Location {
		issues = append(issues, "Location not provided")
	}
	if !rec.IDPhoto {
		issues = append(issues, "ID photo not submitted")
	}
	if !rec.SupplierProofProvided && !rec.OperationsProofProvided {
		issues = append(issues, "No supplier or operations proof submitted")
	}
	if !rec.AgreedToRules {
		issues = append(issues, "Vendor has not agreed to platform rules")
	}
	if !rec.VideoCallVerification {
		issues = append(issues, "Video call verification not completed")
	}
	if rec.RedFlags > 0 {
		issues = append(issues, fmt.Sprintf("%d red flag(s) observed during screening", rec.RedFlags))
	}
	if rec.ResponsivenessRating < 2 {
		issues = append(issues, "Unresponsive during screening conversation")
	}

	passed := len(issues) == 0
	return GateResult{Passed: passed, Issues: issues, Badge: GateBadge(passed)}
}
