package destination

// TypeFlags selects which catalog item types a destination wants to hear
// about. Unset flags default to false, so a destination only receives what
// it explicitly opted into.
type TypeFlags struct {
	EnableAlbums   bool `yaml:"enable_albums"`
	EnableMovies   bool `yaml:"enable_movies"`
	EnableEpisodes bool `yaml:"enable_episodes"`
	EnableSeries   bool `yaml:"enable_series"`
	EnableSeasons  bool `yaml:"enable_seasons"`
	EnableSongs    bool `yaml:"enable_songs"`
}

// Config is the immutable per-destination settings object handed to a sink
// with every delivery. One struct covers all sink kinds; each sink reads the
// fields it cares about and ignores the rest.
type Config struct {
	// Name identifies the destination in logs and delivery records.
	Name string `yaml:"name"`

	// URL is the endpoint: a webhook URL for Discord-shaped and generic
	// sinks, the server base URL for Gotify-shaped ones.
	URL string `yaml:"url"`

	// Token authenticates against token-based sinks (Gotify app token).
	Token string `yaml:"token,omitempty"`

	// Username and AvatarURL override the displayed sender where the sink
	// supports it (Discord).
	Username  string `yaml:"username,omitempty"`
	AvatarURL string `yaml:"avatar_url,omitempty"`

	// Priority is forwarded to sinks with a message-priority concept (Gotify).
	Priority int `yaml:"priority,omitempty"`

	TypeFlags `yaml:",inline"`
}

// File is the on-disk shape of the destinations file: one list per sink kind.
type File struct {
	Discord []Config `yaml:"discord"`
	Gotify  []Config `yaml:"gotify"`
	Webhook []Config `yaml:"webhook"`
}
