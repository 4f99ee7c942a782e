package config

// Config holds all w3tokens configuration.
type Config struct {
	Listen        string  `json:"listen"`
	LogLevel      string  `json:"log_level"`
	LogJSON       bool    `json:"log_json"`
	Gateway       Gateway `json:"gateway"`
	Events        Events  `json:"events"`
	Factory       string  `json:"factory_address,omitempty"` // token factory used when createpool has no address
	DefaultSigner string  `json:"default_signer,omitempty"`  // used when a request has no signer

	// internal: config dir path used for Save()
	configDir string
}

// Gateway is the ethconnect-style blockchain gateway the connector submits
// transactions to and receives events from.
type Gateway struct {
	URL          string `json:"url"`
	InstancePath string `json:"instance_path,omitempty"` // appended to URL for per-contract calls, e.g. "/instances"
	Username     string `json:"username,omitempty"`
	Password     string `json:"password,omitempty"`
}

// Events configures the gateway event stream.
type Events struct {
	Stream    string `json:"stream"`     // event stream name
	Topic     string `json:"topic"`      // websocket topic, also the subscription name prefix
	FromBlock string `json:"from_block"` // first block for new subscriptions
	BatchSize int    `json:"batch_size"`
}
