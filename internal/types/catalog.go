package types

// Default values applied to partially populated catalog records. The catalog
// API returns sparse objects, so defaults are resolved once at the
// deserialization boundary rather than scattered through business logic.
const (
	DefaultSubscriberName = "Valued Customer"
	DefaultPlan           = "Standard"
	DefaultShowName       = "Unknown"
	DefaultChannelName    = "Fubo"
)

// Subscriber represents a customer record fetched from the catalog service.
type Subscriber struct {
	ID                    string  `json:"id,omitempty"`
	Name                  string  `json:"name"`
	Email                 string  `json:"email"`
	FavoriteTeams         string  `json:"favorite_teams"`
	FavoriteSports        string  `json:"favorite_sports"`
	AverageDailyWatchTime float64 `json:"average_daily_watch_time_hours"`
	Plan                  string  `json:"user_plan"`
}

// ApplyDefaults fills missing optional fields with their documented defaults.
func (s *Subscriber) ApplyDefaults() {
	if s.Name == "" {
		s.Name = DefaultSubscriberName
	}
	if s.Plan == "" {
		s.Plan = DefaultPlan
	}
}

// Show represents a piece of content metadata used as recommendation
// material inside the generated email.
type Show struct {
	ShowName    string `json:"show_name"`
	ChannelName string `json:"channel_name"`
	Genre       string `json:"genre,omitempty"`
	Description string `json:"description,omitempty"`
}

// ApplyDefaults fills missing optional fields with their documented defaults.
func (s *Show) ApplyDefaults() {
	if s.ShowName == "" {
		s.ShowName = DefaultShowName
	}
	if s.ChannelName == "" {
		s.ChannelName = DefaultChannelName
	}
}
