package models

// LoginStreak stores the daily check-in state for the single tracker user.
type LoginStreak struct {
	LastLoginDate string   `json:"last_login_date"`
	CurrentStreak int      `json:"current_streak"`
	ClaimedDates  []string `json:"claimed_dates"`
	TotalPoints   int      `json:"total_points"`
}

// HasClaimed reports whether a claim was already recorded for the given date.
func (s *LoginStreak) HasClaimed(date string) bool {
	for _, d := range s.ClaimedDates {
		if d == date {
			return true
		}
	}
	return false
}

// RewardTier is one slot of the 7-day cyclic reward table.
type RewardTier struct {
	Day    int    `json:"day"`
	Points int    `json:"points"`
	Badge  string `json:"badge,omitempty"`
}

// DefaultRewardTiers is the 7-day reward cycle. Day 7 also grants a badge.
var DefaultRewardTiers = []RewardTier{
	{Day: 1, Points: 5},
	{Day: 2, Points: 10},
	{Day: 3, Points: 15},
	{Day: 4, Points: 20},
	{Day: 5, Points: 25},
	{Day: 6, Points: 30},
	{Day: 7, Points: 50, Badge: "Special Badge"},
}

// TierFor returns the reward tier for an absolute streak length. The table
// cycles: day 8 of an unbroken streak pays the same as day 1.
func TierFor(tiers []RewardTier, streak int) RewardTier {
	if streak < 1 {
		streak = 1
	}
	return tiers[(streak-1)%len(tiers)]
}
