package models

// Unlimited is the sentinel for uncapped users or dashboards.
const Unlimited = -1

// Subscription is a plan tier offered to clients.
type Subscription struct {
	Plan          string   `json:"plan"`
	Price         float64  `json:"price"`
	Interval      string   `json:"interval"`
	Features      []string `json:"features"`
	ActiveUsers   int      `json:"activeUsers"`
	MaxUsers      int      `json:"maxUsers"`
	MaxDashboards int      `json:"maxDashboards"`
	Storage       string   `json:"storage"`
}

func (s Subscription) UnlimitedUsers() bool {
	return s.MaxUsers == Unlimited
}

func (s Subscription) UnlimitedDashboards() bool {
	return s.MaxDashboards == Unlimited
}

// SubscriptionsResponse holds the subscription tiers.
type SubscriptionsResponse struct {
	Subscriptions []Subscription `json:"subscriptions"`
}
