package config

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Port int `yaml:"port" validate:"gt=0"`
}

// NetworkConfig locates the network data file.
type NetworkConfig struct {
	DataPath string `yaml:"dataPath" validate:"required"`
}

// PlannerConfig contains speed assumptions for estimated legs.
type PlannerConfig struct {
	TaxiSpeedKmh    float64 `yaml:"taxiSpeedKmh" validate:"gte=0"`
	WalkingSpeedKmh float64 `yaml:"walkingSpeedKmh" validate:"gte=0"`
}

// CacheConfig tunes the plan-response cache.
type CacheConfig struct {
	TTLSeconds             int `yaml:"ttlSeconds" validate:"gte=0"`
	CleanupIntervalSeconds int `yaml:"cleanupIntervalSeconds" validate:"gte=0"`
}

// AppConfig is the root configuration structure.
type AppConfig struct {
	Server  ServerConfig  `yaml:"server" validate:"required"`
	Network NetworkConfig `yaml:"network" validate:"required"`
	Planner PlannerConfig `yaml:"planner"`
	Cache   CacheConfig   `yaml:"cache"`
}
