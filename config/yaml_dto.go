package config

// YAMLConfig mirrors the on-disk configuration file. Pointer fields
// distinguish an omitted key from a zero value.
type YAMLConfig struct {
	Window         *int     `yaml:"window"`
	SerialInterval *float64 `yaml:"serial_interval"`
	Region         *string  `yaml:"region"`
	Subregions     []string `yaml:"subregions"`
	IncludeTotal   *bool    `yaml:"include_total"`
	DateColumn     *string  `yaml:"date_column"`
	DateLayout     *string  `yaml:"date_layout"`
	Workers        *int     `yaml:"workers"`
}
