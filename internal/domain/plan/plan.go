// Package plan defines the subscription tiers and the limit checks applied
// before inserts and share invitations.
package plan

// Tier is a subscription tier name.
type Tier string

const (
	TierStarter Tier = "STARTER"
	TierBasic   Tier = "BASIC"
	TierMedium  Tier = "MEDIUM"
	TierPremium Tier = "PREMIUM"
	TierTrial   Tier = "TRIAL"
)

// Unlimited is the sentinel for an axis with no cap.
const Unlimited = -1

// Limits holds the per-axis caps of a tier.
type Limits struct {
	Tier          Tier
	Projects      int
	GroupsPerType int
	RowsPerGroup  int
	SharedUsers   int
	Sharing       bool
}

var catalog = map[Tier]Limits{
	TierStarter: {Tier: TierStarter, Projects: 1, GroupsPerType: 1, RowsPerGroup: 3, SharedUsers: 0, Sharing: false},
	TierBasic:   {Tier: TierBasic, Projects: 1, GroupsPerType: Unlimited, RowsPerGroup: Unlimited, SharedUsers: 0, Sharing: false},
	TierMedium:  {Tier: TierMedium, Projects: 2, GroupsPerType: Unlimited, RowsPerGroup: Unlimited, SharedUsers: 5, Sharing: true},
	TierPremium: {Tier: TierPremium, Projects: Unlimited, GroupsPerType: Unlimited, RowsPerGroup: Unlimited, SharedUsers: Unlimited, Sharing: true},
	TierTrial:   {Tier: TierTrial, Projects: Unlimited, GroupsPerType: Unlimited, RowsPerGroup: Unlimited, SharedUsers: Unlimited, Sharing: true},
}

// All returns the limits of every tier, in a stable order.
func All() []Limits {
	return []Limits{
		catalog[TierStarter],
		catalog[TierBasic],
		catalog[TierMedium],
		catalog[TierPremium],
		catalog[TierTrial],
	}
}

// ForTier resolves the limits of a tier. An unknown or missing tier resolves
// to nothing, which every check treats as a denial.
func ForTier(tier *string) (Limits, bool) {
	if tier == nil {
		return Limits{}, false
	}
	limits, ok := catalog[Tier(*tier)]
	return limits, ok
}

func allows(limit, count int) bool {
	return limit == Unlimited || count < limit
}

// AllowsProject reports whether an owner with the given tier and current
// project count may create another project.
func AllowsProject(tier *string, count int) bool {
	limits, ok := ForTier(tier)
	return ok && allows(limits.Projects, count)
}

// AllowsGroup reports whether another group of the same type may be created
// in a project.
func AllowsGroup(tier *string, countPerType int) bool {
	limits, ok := ForTier(tier)
	return ok && allows(limits.GroupsPerType, countPerType)
}

// AllowsRow reports whether another entry row may be created in a group.
func AllowsRow(tier *string, countInGroup int) bool {
	limits, ok := ForTier(tier)
	return ok && allows(limits.RowsPerGroup, countInGroup)
}

// AllowsSharing reports whether the tier permits sharing at all and, if so,
// whether another recipient fits under the per-project cap.
func AllowsSharing(tier *string, recipientCount int) bool {
	limits, ok := ForTier(tier)
	return ok && limits.Sharing && allows(limits.SharedUsers, recipientCount)
}
