package config

// ReadabilityConfig holds the thresholds driving the readability engine.
//
// Defaults come from DefaultReadabilityConfig rather than env-default tags so
// that an explicit false or zero in YAML survives loading. Every field can be
// overridden by its READABILITY_* environment variable.
type ReadabilityConfig struct {
	Version     int               `yaml:"version"      env:"READABILITY_VERSION"`
	Limits      LimitsConfig      `yaml:"limits"`
	LIX         LIXConfig         `yaml:"lix"`
	FleschDouma FleschDoumaConfig `yaml:"flesch_douma"`
	Output      OutputConfig      `yaml:"output"`
}

// LimitsConfig bounds accepted input.
type LimitsConfig struct {
	// MaxTextLength is measured in characters (runes), not bytes.
	MaxTextLength int `yaml:"max_text_length" env:"READABILITY_MAX_TEXT_LENGTH"`
}

// LIXConfig holds LIX and judgement thresholds.
type LIXConfig struct {
	// LongWordMinLen is the letter count from which a word counts as long.
	LongWordMinLen int            `yaml:"long_word_min_len" env:"READABILITY_LONG_WORD_MIN_LEN"`
	JudgementBands JudgementBands `yaml:"judgement_bands"`
}

// JudgementBands are ascending LIX boundaries. A score below Easy is easy,
// below Medium is medium, below Complex is complex, anything else very complex.
type JudgementBands struct {
	Easy    float64 `yaml:"easy"    env:"READABILITY_BAND_EASY"`
	Medium  float64 `yaml:"medium"  env:"READABILITY_BAND_MEDIUM"`
	Complex float64 `yaml:"complex" env:"READABILITY_BAND_COMPLEX"`
}

// FleschDoumaConfig holds the ease-score switch and its plausibility guardrail.
type FleschDoumaConfig struct {
	EnabledByDefault    bool    `yaml:"enabled_by_default"     env:"READABILITY_FLESCH_ENABLED_BY_DEFAULT"`
	SyllablesPerWordMin float64 `yaml:"syllables_per_word_min" env:"READABILITY_FLESCH_SPW_MIN"`
	SyllablesPerWordMax float64 `yaml:"syllables_per_word_max" env:"READABILITY_FLESCH_SPW_MAX"`
}

// OutputConfig shapes the result.
type OutputConfig struct {
	IncludeDebugFields bool    `yaml:"include_debug_fields" env:"READABILITY_INCLUDE_DEBUG_FIELDS"`
	IncludeCEFRHint    bool    `yaml:"include_cefr_hint"    env:"READABILITY_INCLUDE_CEFR_HINT"`
	CEFRConfidenceCap  float64 `yaml:"cefr_confidence_cap"  env:"READABILITY_CEFR_CONFIDENCE_CAP"`
}

// DefaultReadabilityConfig returns the baseline thresholds every profile
// file is layered on.
func DefaultReadabilityConfig() ReadabilityConfig {
	return ReadabilityConfig{
		Version: 1,
		Limits: LimitsConfig{
			MaxTextLength: 200_000,
		},
		LIX: LIXConfig{
			LongWordMinLen: 7,
			JudgementBands: JudgementBands{
				Easy:    30,
				Medium:  40,
				Complex: 55,
			},
		},
		FleschDouma: FleschDoumaConfig{
			EnabledByDefault:    false,
			SyllablesPerWordMin: 0.8,
			SyllablesPerWordMax: 4.0,
		},
		Output: OutputConfig{
			IncludeDebugFields: true,
			IncludeCEFRHint:    true,
			CEFRConfidenceCap:  0.4,
		},
	}
}
