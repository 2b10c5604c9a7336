// internal/domain/models/reward.go
package models

// Reward is a points-redeemable perk offered to youths.
type Reward struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Points      int    `json:"points,omitempty"`
	Image       string `json:"image,omitempty"`
	Club        int64  `json:"club,omitempty"`
	ClubName    string `json:"club_name,omitempty"`
	Status      string `json:"status,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// RewardClaim is one redemption of a reward by a youth.
type RewardClaim struct {
	ID        int64  `json:"id"`
	Reward    int64  `json:"reward,omitempty"`
	Youth     int64  `json:"user,omitempty"`
	YouthName string `json:"user_name,omitempty"`
	Status    any    `json:"status,omitempty"`
	ClaimedAt string `json:"created_at,omitempty"`
}
