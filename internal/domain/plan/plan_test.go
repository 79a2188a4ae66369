package plan

import "testing"

func tier(t Tier) *string {
	s := string(t)
	return &s
}

func TestAllowsProject(t *testing.T) {
	tests := []struct {
		name  string
		tier  *string
		count int
		want  bool
	}{
		{"starter with no projects", tier(TierStarter), 0, true},
		{"starter at limit", tier(TierStarter), 1, false},
		{"basic at limit", tier(TierBasic), 1, false},
		{"medium under limit", tier(TierMedium), 1, true},
		{"medium at limit", tier(TierMedium), 2, false},
		{"premium never denied", tier(TierPremium), 10000, true},
		{"trial never denied", tier(TierTrial), 10000, true},
		{"missing tier denied", nil, 0, false},
		{"unknown tier denied", tier("GOLD"), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AllowsProject(tt.tier, tt.count); got != tt.want {
				t.Errorf("AllowsProject(%v, %d) = %v, want %v", tt.tier, tt.count, got, tt.want)
			}
		})
	}
}

func TestAllowsGroupAndRow(t *testing.T) {
	if !AllowsGroup(tier(TierStarter), 0) {
		t.Error("starter should allow the first group per type")
	}
	if AllowsGroup(tier(TierStarter), 1) {
		t.Error("starter should deny a second group per type")
	}
	if !AllowsGroup(tier(TierBasic), 500) {
		t.Error("basic has unlimited groups per type")
	}

	if !AllowsRow(tier(TierStarter), 2) {
		t.Error("starter should allow a third row in a group")
	}
	if AllowsRow(tier(TierStarter), 3) {
		t.Error("starter should deny a fourth row in a group")
	}
	if !AllowsRow(tier(TierTrial), 500) {
		t.Error("trial has unlimited rows per group")
	}
}

func TestAllowsSharing(t *testing.T) {
	if AllowsSharing(tier(TierStarter), 0) {
		t.Error("starter has no sharing feature")
	}
	if AllowsSharing(tier(TierBasic), 0) {
		t.Error("basic has no sharing feature")
	}
	if !AllowsSharing(tier(TierMedium), 4) {
		t.Error("medium should allow a fifth recipient")
	}
	if AllowsSharing(tier(TierMedium), 5) {
		t.Error("medium should deny a sixth recipient")
	}
	if !AllowsSharing(tier(TierPremium), 5000) {
		t.Error("premium sharing is unlimited")
	}
	if AllowsSharing(nil, 0) {
		t.Error("missing tier must deny sharing")
	}
}

func TestForTier(t *testing.T) {
	limits, ok := ForTier(tier(TierStarter))
	if !ok {
		t.Fatal("expected starter tier to resolve")
	}
	if limits.Projects != 1 || limits.GroupsPerType != 1 || limits.RowsPerGroup != 3 {
		t.Errorf("unexpected starter limits: %+v", limits)
	}

	if _, ok := ForTier(nil); ok {
		t.Error("nil tier must not resolve")
	}
}
