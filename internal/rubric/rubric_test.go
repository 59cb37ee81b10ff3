package rubric

import (
	"reflect"
	"testing"
)

func TestByName(t *testing.T) {
	rb, err := ByName("enhanced")
	if err != nil {
		t.Fatalf("ByName(enhanced) error = %v", err)
	}
	if rb.Name != "enhanced" || rb.Version != "v2" {
		t.Errorf("ByName(enhanced) = %s/%s, want enhanced/v2", rb.Name, rb.Version)
	}

	if _, err := ByName("ultimate"); err == nil {
		t.Error("ByName(ultimate) error = nil, want unknown rubric error")
	}
}

func TestNames(t *testing.T) {
	want := []string{"document", "enhanced"}
	if got := Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestFactorMax(t *testing.T) {
	tests := []struct {
		name   string
		factor Factor
		want   float64
	}{
		{"bool award", Factor{Kind: Bool, Points: 5}, 5},
		{"enum best entry", Factor{Kind: Enum, Table: map[string]float64{"none": 0, "partial": 5, "full": 10}}, 10},
		{"steps last entry", Factor{Kind: Steps, Steps: []float64{0, 6, 10}}, 10},
		{"per-unit capped", Factor{Kind: PerUnit, Points: 2.5, MaxUnits: 2}, 5},
		{"penalty maxes at zero", Factor{Kind: PerUnit, Points: -10}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.factor.Max(); got != tt.want {
				t.Errorf("Max() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEnhancedCoreCategoriesSumTo100(t *testing.T) {
	var sum float64
	for _, cat := range Enhanced.Categories {
		if cat.Name == "Bonus/Penalty" {
			continue
		}
		sum += cat.Max
	}
	if sum != 100 {
		t.Errorf("core category maxes sum to %v, want 100", sum)
	}
}

func TestDocumentCategoriesSumTo100(t *testing.T) {
	var sum float64
	for _, cat := range Document.Categories {
		sum += cat.Max
	}
	if sum != 100 {
		t.Errorf("category maxes sum to %v, want 100", sum)
	}
}

// Every enum factor must rank its categories worst to best, and the point
// table must follow that ranking without dipping. The calculator relies on
// this when a reviewer upgrades a single answer.
func TestEnumFactorsRankedAndMonotonic(t *testing.T) {
	for _, rb := range []Rubric{Enhanced, Document} {
		for _, cat := range rb.Categories {
			for _, f := range cat.Factors {
				if f.Kind != Enum {
					continue
				}
				t.Run(rb.Name+"/"+f.Field, func(t *testing.T) {
					if len(f.Rank) != len(f.Table) {
						t.Fatalf("len(Rank) = %d, len(Table) = %d", len(f.Rank), len(f.Table))
					}
					prev := -1e9
					for _, value := range f.Rank {
						pts, ok := f.Table[value]
						if !ok {
							t.Fatalf("ranked value %q missing from table", value)
						}
						if pts < prev {
							t.Errorf("points for %q = %v, below previous %v", value, pts, prev)
						}
						prev = pts
					}
				})
			}
		}
	}
}

func TestStepFactorsNeverDecrease(t *testing.T) {
	for _, rb := range []Rubric{Enhanced, Document} {
		for _, cat := range rb.Categories {
			for _, f := range cat.Factors {
				if f.Kind != Steps {
					continue
				}
				t.Run(rb.Name+"/"+f.Field, func(t *testing.T) {
					for i := 1; i < len(f.Steps); i++ {
						if f.Steps[i] < f.Steps[i-1] {
							t.Errorf("Steps[%d] = %v, below Steps[%d] = %v", i, f.Steps[i], i-1, f.Steps[i-1])
						}
					}
				})
			}
		}
	}
}

func TestWhatsAppCategoryFloored(t *testing.T) {
	for _, cat := range Document.Categories {
		if cat.Name == "WhatsApp Interaction" {
			if !cat.FloorAtZero {
				t.Error("WhatsApp Interaction FloorAtZero = false, want true")
			}
			return
		}
	}
	t.Fatal("WhatsApp Interaction category not found")
}
