package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds every tunable the pipeline reads. Values come from defaults,
// an optional YAML file, and OPTAMETRICS_* environment variables, in that
// order of increasing precedence.
type Config struct {
	Pitch     PitchConfig     `mapstructure:"pitch"`
	Passing   PassingConfig   `mapstructure:"passing"`
	Sequences SequencesConfig `mapstructure:"sequences"`
	Defense   DefenseConfig   `mapstructure:"defense"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// PitchConfig describes the real pitch dimensions in meters, used to convert
// meter thresholds into Opta units.
type PitchConfig struct {
	LengthMeters float64 `mapstructure:"length_meters"`
	WidthMeters  float64 `mapstructure:"width_meters"`
}

// ScaleX converts a distance in meters along the length of the pitch into
// Opta units.
func (p PitchConfig) ScaleX(meters float64) float64 {
	return meters * 100 / p.LengthMeters
}

// PassingConfig controls pass classification.
type PassingConfig struct {
	// KeyPassValues and AssistValues are the raw feed values of the assist
	// qualifier that mark a pass as a key pass or an assist.
	KeyPassValues []int `mapstructure:"key_pass_values"`
	AssistValues  []int `mapstructure:"assist_values"`

	// Progressive pass distance gains in meters by pitch region.
	ProgOwnHalfMeters   float64 `mapstructure:"prog_own_half_meters"`
	ProgCrossHalfMeters float64 `mapstructure:"prog_cross_half_meters"`
	ProgOppHalfMeters   float64 `mapstructure:"prog_opp_half_meters"`

	// ProgExclusions are qualifiers that disqualify a pass from counting
	// as progressive.
	ProgExclusions []string `mapstructure:"prog_exclusions"`
}

// SequencesConfig controls the sequence detectors.
type SequencesConfig struct {
	ShotTypes []string `mapstructure:"shot_types"`

	// LossTypes are the event types that count as giving possession away
	// in a transition scan.
	LossTypes []string `mapstructure:"loss_types"`

	// RestartTriggers are the event types that open a set piece or
	// buildup phase sequence.
	RestartTriggers []string `mapstructure:"restart_triggers"`

	BuildupStartX float64 `mapstructure:"buildup_start_x"`
	BuildupMaxX   float64 `mapstructure:"buildup_max_x"`

	MaxPasses         int `mapstructure:"max_passes"`
	SetPieceMaxPasses int `mapstructure:"set_piece_max_passes"`
}

// DefenseConfig controls pressing and turnover metrics.
type DefenseConfig struct {
	// PPDAZoneX is the x threshold above which defensive actions count
	// toward PPDA.
	PPDAZoneX float64 `mapstructure:"ppda_zone_x"`
	// PPDAPassZoneX is the x threshold below which opponent passes count
	// as allowed build-up.
	PPDAPassZoneX float64 `mapstructure:"ppda_pass_zone_x"`
	// HighTurnoverRadiusMeters is the distance from the opponent goal
	// within which a regain counts as a high turnover.
	HighTurnoverRadiusMeters float64 `mapstructure:"high_turnover_radius_meters"`
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("pitch.length_meters", 105.0)
	v.SetDefault("pitch.width_meters", 68.0)

	v.SetDefault("passing.key_pass_values", []int{13, 14, 15})
	v.SetDefault("passing.assist_values", []int{16})
	v.SetDefault("passing.prog_own_half_meters", 30.0)
	v.SetDefault("passing.prog_cross_half_meters", 15.0)
	v.SetDefault("passing.prog_opp_half_meters", 10.0)
	v.SetDefault("passing.prog_exclusions", []string{"Cross", "Launch", "Throw-in"})

	v.SetDefault("sequences.shot_types", []string{"Goal", "Miss", "Attempt Saved", "Post"})
	v.SetDefault("sequences.loss_types", []string{
		"Pass", "Take On", "Aerial", "Challenge",
		"Error", "Dispossessed", "Clearance", "Save", "Goal",
	})
	v.SetDefault("sequences.restart_triggers", []string{
		"Out", "Foul", "Corner Awarded", "Card",
		"Keeper pick-up", "Claim", "Offside provoked", "Ball recovery",
	})
	v.SetDefault("sequences.buildup_start_x", 15.0)
	v.SetDefault("sequences.buildup_max_x", 66.67)
	v.SetDefault("sequences.max_passes", 35)
	v.SetDefault("sequences.set_piece_max_passes", 50)

	v.SetDefault("defense.ppda_zone_x", 40.0)
	v.SetDefault("defense.ppda_pass_zone_x", 60.0)
	v.SetDefault("defense.high_turnover_radius_meters", 40.0)

	v.SetDefault("logging.level", "info")
}

// Load reads configuration from the given file path. An empty path loads
// defaults and environment overrides only.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("OPTAMETRICS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(err)
	}
	return cfg
}
