package model

// User is the profile object returned by the auth endpoints and persisted
// alongside the bearer token.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Country  string `json:"country,omitempty"`
	Timezone string `json:"timezone,omitempty"`

	TwoFactorEnabled   bool `json:"two_factor_enabled"`
	EmailNotifications bool `json:"email_notifications"`
	PriceAlerts        bool `json:"price_alerts"`
	MarketingEmails    bool `json:"marketing_emails"`
}
