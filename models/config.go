package models

type Config struct {
	Debug          bool   `yaml:"debug" envconfig:"POPDIFF_DEBUG"`
	SemVer         string `yaml:"semver" envconfig:"POPDIFF_SERVICE_SEMVER" default:"0.1.0"`
	ServiceContact string `yaml:"serviceContact" envconfig:"POPDIFF_SERVICE_CONTACT"`

	Api struct {
		Url  string `yaml:"url" envconfig:"POPDIFF_API_URL"`
		Port string `yaml:"port" envconfig:"POPDIFF_API_INTERNAL_PORT" default:"5000"`
	} `yaml:"api"`

	Database struct {
		Driver         string `yaml:"driver" toml:"driver" envconfig:"POPDIFF_DB_DRIVER" default:"sqlite3"`
		Path           string `yaml:"path" toml:"path" envconfig:"POPDIFF_DB_PATH" default:"instance/ArchGenome.db"`
		ConnectRetries uint64 `yaml:"connectRetries" toml:"connect_retries" envconfig:"POPDIFF_DB_CONNECT_RETRIES" default:"3"`
	} `yaml:"database" toml:"database"`

	Artifacts struct {
		HeatmapDirectory string `yaml:"heatmapDirectory" toml:"heatmap_directory" envconfig:"POPDIFF_HEATMAP_DIR" default:"static/heatmap"`
		ResultsDirectory string `yaml:"resultsDirectory" toml:"results_directory" envconfig:"POPDIFF_RESULTS_DIR" default:"Pop_diff_result"`
		ResultsFileName  string `yaml:"resultsFileName" toml:"results_file_name" envconfig:"POPDIFF_RESULTS_FILE" default:"pairwise_fst.txt"`

		// opt-in; generated files accumulate otherwise
		SanitationEnabled       bool `yaml:"sanitationEnabled" toml:"sanitation_enabled" envconfig:"POPDIFF_SANITATION_ENABLED"`
		SanitationIntervalHours int  `yaml:"sanitationIntervalHours" toml:"sanitation_interval_hours" envconfig:"POPDIFF_SANITATION_INTERVAL_HOURS" default:"24"`
		MaxAgeHours             int  `yaml:"maxAgeHours" toml:"max_age_hours" envconfig:"POPDIFF_ARTIFACT_MAX_AGE_HOURS" default:"168"`
	} `yaml:"artifacts" toml:"artifacts"`
}
