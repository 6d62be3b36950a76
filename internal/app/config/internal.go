package config

type InternalConfig struct {
	App       App          `mapstructure:"app"`
	Backend   AppBackend   `mapstructure:"backend"`
	Transport AppTransport `mapstructure:"transport"`
	Draft     AppDraft     `mapstructure:"draft"`
	Archive   AppArchive   `mapstructure:"archive"`
}

type App struct {
	Env                        string `mapstructure:"env"`
	Port                       string `mapstructure:"port"`
	Version                    string `mapstructure:"version"`
	Address                    string `mapstructure:"address"`
	Timezone                   string `mapstructure:"timezone"`
	EndpointPrefix             string `mapstructure:"endpoint_prefix"`
	MaxRequests                int    `mapstructure:"max_requests"`
	ShutdownTimeoutInSeconds   int    `mapstructure:"shutdown_timeout_in_seconds"`
	RequestBodyLimitInMegabyte int    `mapstructure:"request_body_limit_in_megabyte"`
	SubmitRateLimitPerMinute   int    `mapstructure:"submit_rate_limit_per_minute"`
	SubmitBlockTimeInMinutes   int    `mapstructure:"submit_block_time_in_minutes"`
}

// AppBackend describes the API that receives supply requests over HTTP.
type AppBackend struct {
	ApiUrl               string `mapstructure:"api_url"`
	ParseResponse        bool   `mapstructure:"parse_response"`
	HTTPTimeoutInSeconds int    `mapstructure:"http_timeout_in_seconds"`
}

// AppTransport selects how built requests leave the service: "http" or "rabbitmq".
type AppTransport struct {
	Driver string `mapstructure:"driver"`
	Queue  string `mapstructure:"queue"`
}

type AppDraft struct {
	TTLInMinutes int `mapstructure:"ttl_in_minutes"`
}

type AppArchive struct {
	Enabled    bool   `mapstructure:"enabled"`
	BucketName string `mapstructure:"bucket_name"`
}
