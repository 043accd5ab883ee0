package types_test

import (
	"testing"

	"github.com/secmon-lab/tdhazard/pkg/domain/types"
)

func TestHazardID_IsValid(t *testing.T) {
	tests := []struct {
		name string
		id   types.HazardID
		want bool
	}{
		{"fire hazard", types.HazardFireHazard, true},
		{"take pictures", types.HazardTakePictures, true},
		{"empty", "", false},
		{"missing prefix", "FireHazard", false},
		{"unknown", "sho:ZombieOutbreak", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.id.IsValid(); got != tt.want {
				t.Errorf("HazardID.IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseHazardID(t *testing.T) {
	id, err := types.ParseHazardID("sho:FireHazard")
	if err != nil {
		t.Fatalf("ParseHazardID() error = %v", err)
	}
	if id != types.HazardFireHazard {
		t.Errorf("ParseHazardID() = %v, want %v", id, types.HazardFireHazard)
	}

	if _, err := types.ParseHazardID("sho:Nonexistent"); err == nil {
		t.Error("ParseHazardID() should fail for unknown id")
	}
}

func TestAllHazardIDs(t *testing.T) {
	ids := types.AllHazardIDs()
	if len(ids) != 24 {
		t.Errorf("len(AllHazardIDs()) = %d, want 24", len(ids))
	}

	seen := make(map[types.HazardID]bool)
	for _, id := range ids {
		if seen[id] {
			t.Errorf("duplicate hazard id: %s", id)
		}
		seen[id] = true
		if !id.IsValid() {
			t.Errorf("enumerated id %s should be valid", id)
		}
	}
}

func TestAffordanceKind(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"property", "property", false},
		{"action", "action", false},
		{"event", "event", false},
		{"empty", "", true},
		{"uppercase", "Property", true},
		{"unknown", "thing", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := types.ParseAffordanceKind(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseAffordanceKind(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestConditionOp_IsOrdering(t *testing.T) {
	ordering := []types.ConditionOp{
		types.ConditionOpLt, types.ConditionOpLe,
		types.ConditionOpGt, types.ConditionOpGe,
	}
	for _, op := range ordering {
		if !op.IsOrdering() {
			t.Errorf("%s should be an ordering operator", op)
		}
	}

	for _, op := range []types.ConditionOp{types.ConditionOpEq, types.ConditionOpNe} {
		if op.IsOrdering() {
			t.Errorf("%s should not be an ordering operator", op)
		}
	}
}

func TestGapPolicy_Normalize(t *testing.T) {
	if got := types.GapPolicy("").Normalize(); got != types.GapPolicyForbid {
		t.Errorf("empty gap policy should normalize to forbid, got %s", got)
	}
	if got := types.GapPolicyAllow.Normalize(); got != types.GapPolicyAllow {
		t.Errorf("allow should stay allow, got %s", got)
	}
}

func TestRiskLabel_Validate(t *testing.T) {
	tests := []struct {
		name    string
		label   types.RiskLabel
		wantErr bool
	}{
		{"valid lowercase", "low", false},
		{"valid with hyphen", "very-high", false},
		{"valid with numbers", "level-3", false},
		{"empty", "", true},
		{"uppercase", "Low", true},
		{"spaces", "very high", true},
		{"underscore", "very_high", true},
		{"trailing hyphen", "low-", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.label.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("RiskLabel.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
