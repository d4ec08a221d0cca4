package config

type ChatflowConfModel struct {
	LogLevel     string       `mapstructure:"log_level"`
	Mode         string       `mapstructure:"mode"`
	Server       Server       `mapstructure:"server"`
	Store        Store        `mapstructure:"store"`
	Auth         Auth         `mapstructure:"auth"`
	Notification Notification `mapstructure:"notification"`
	Seed         Seed         `mapstructure:"seed"`
}

type Server struct {
	Host       string `mapstructure:"host"`
	Port       int    `mapstructure:"port"`
	APIPrefix  string `mapstructure:"api_prefix"`
	APIVersion string `mapstructure:"api_version"`
}

type Store struct {
	Path string `mapstructure:"path"`
}

type Auth struct {
	// SentinelPassword is the demo-only credential every account shares.
	// There is no hashing and no real secret verification.
	SentinelPassword string `mapstructure:"sentinel_password"`
}

type Notification struct {
	Permission string `mapstructure:"permission"`
}

type Seed struct {
	DemoUsers bool `mapstructure:"demo_users"`
}
