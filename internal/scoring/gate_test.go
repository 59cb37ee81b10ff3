package scoring

import (
	"reflect"
	"testing"

	"github.com/Rex-Orokumue/Vendor-verification/internal/answers"
)

func compliantGate() answers.Record {
	return answers.Record{
		Name:                  true,
		Phone:                 true,
		Location:              true,
		IDPhoto:               true,
		SupplierProofProvided: true,
		AgreedToRules:         true,
		VideoCallVerification: true,
		ResponsivenessRating:  3,
	}
}

func TestGateCompliantRecordPasses(t *testing.T) {
	res := Gate(compliantGate())
	if !res.Passed {
		t.Errorf("Passed = false, want true; issues: %v", res.Issues)
	}
	if len(res.Issues) != 0 {
		t.Errorf("Issues = %v, want none", res.Issues)
	}
	if res.Badge.Status != "PROVISIONAL" {
		t.Errorf("Badge.Status = %q, want PROVISIONAL", res.Badge.Status)
	}
}

func TestGatePassedMatchesIssueCount(t *testing.T) {
	records := []answers.Record{
		{},
		compliantGate(),
		{Name: true, Phone: true},
		func() answers.Record {
			r := compliantGate()
			r.RedFlags = 2
			return r
		}(),
	}
	for i, rec := range records {
		res := Gate(rec)
		if res.Passed != (len(res.Issues) == 0) {
			t.Errorf("record %d: Passed = %v with %d issues", i, res.Passed, len(res.Issues))
		}
	}
}

func TestGateSingleFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*answers.Record)
		want   string
	}{
		{"missing name", func(r *answers.Record) { r.Name = false }, "Vendor name not provided"},
		{"missing phone", func(r *answers.Record) { r.Phone = false }, "Phone number not provided"},
		{"missing location", func(r *answers.Record) { r.Location = false }, "Location not provided"},
		{"missing id photo", func(r *answers.Record) { r.IDPhoto = false }, "ID photo not submitted"},
		{"no rules agreement", func(r *answers.Record) { r.AgreedToRules = false }, "Vendor has not agreed to platform rules"},
		{"no video call", func(r *answers.Record) { r.VideoCallVerification = false }, "Video call verification not completed"},
		{"red flags", func(r *answers.Record) { r.RedFlags = 3 }, "3 red flag(s) observed during screening"},
		{"unresponsive", func(r *answers.Record) { r.ResponsivenessRating = 1 }, "Unresponsive during screening conversation"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := compliantGate()
			tt.mutate(&rec)
			res := Gate(rec)
			if res.Passed {
				t.Fatal("Passed = true, want false")
			}
			if len(res.Issues) != 1 || res.Issues[0] != tt.want {
				t.Errorf("Issues = %v, want [%q]", res.Issues, tt.want)
			}
			if res.Badge.Status != "FAILED" {
				t.Errorf("Badge.Status = %q, want FAILED", res.Badge.Status)
			}
		})
	}
}

func TestGateProofAlternatives(t *testing.T) {
	rec := compliantGate()
	rec.SupplierProofProvided = false
	rec.OperationsProofProvided = true
	if res := Gate(rec); !res.Passed {
		t.Errorf("operations proof alone should satisfy the proof check; issues: %v", res.Issues)
	}

	rec.OperationsProofProvided = false
	res := Gate(rec)
	if res.Passed {
		t.Fatal("Passed = true with no proof at all")
	}
	if res.Issues[0] != "No supplier or operations proof submitted" {
		t.Errorf("Issues[0] = %q, want proof issue", res.Issues[0])
	}
}

func TestGateIssueOrderIsChecklistOrder(t *testing.T) {
	res := Gate(answers.Record{RedFlags: 1})
	want := []string{
		"Vendor name not provided",
		"Phone number not provided",
		"Location not provided",
		"ID photo not submitted",
		"No supplier or operations proof submitted",
		"Vendor has not agreed to platform rules",
		"Video call verification not completed",
		"1 red flag(s) observed during screening",
		"Unresponsive during screening conversation",
	}
	if !reflect.DeepEqual(res.Issues, want) {
		t.Errorf("Issues order mismatch:\ngot  %v\nwant %v", res.Issues, want)
	}
}
