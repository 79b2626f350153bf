package config

import (
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/thanos/pkg/errors"
	"github.com/arthur-debert/thanos/pkg/logging"
	"github.com/arthur-debert/thanos/pkg/weights"
)

// rcCandidates lists the accepted rc file names, in lookup priority.
// JSON is the canonical format; yaml and toml carry the same shape.
var rcCandidates = []struct {
	name   string
	parser koanf.Parser
}{
	{RCFileJSON, json.Parser()},
	{".thanosrc.yaml", yaml.Parser()},
	{".thanosrc.yml", yaml.Parser()},
	{".thanosrc.toml", toml.Parser()},
}

// rawWeights mirrors the "weights" object of an rc file.
type rawWeights struct {
	ByExtension map[string]float64 `koanf:"by_extension"`
	ByAgeDays   map[string]float64 `koanf:"by_age_days"`
	BySizeMB    map[string]float64 `koanf:"by_size_mb"`
}

// LoadWeights loads the weight configuration from the nearest
// .thanosrc file. When no rc file is found it returns an empty config
// and an empty source path; the caller then falls back to unweighted
// selection.
func LoadWeights(dir string) (weights.Config, string, error) {
	logger := logging.GetLogger("config")

	for _, candidate := range rcCandidates {
		path, found := FindConfigFile(dir, candidate.name)
		if !found {
			continue
		}

		k := koanf.New(".")
		if err := k.Load(file.Provider(path), candidate.parser); err != nil {
			return weights.Config{}, "", errors.Wrapf(err, errors.ErrConfigParse,
				"failed to parse rc file: %s", path)
		}

		var raw rawWeights
		if err := k.Unmarshal("weights", &raw); err != nil {
			return weights.Config{}, "", errors.Wrapf(err, errors.ErrConfigParse,
				"invalid weights section in rc file: %s", path)
		}

		cfg := buildConfig(raw)
		logger.Debug().
			Str("file", path).
			Int("extensions", len(cfg.ByExtension)).
			Int("age_rules", len(cfg.ByAgeDays)).
			Int("size_rules", len(cfg.BySizeMB)).
			Msg("loaded weight configuration")

		return cfg, path, nil
	}

	return weights.Config{}, "", nil
}

// buildConfig converts the raw wire maps into the compiled weight
// config. Wire maps are unordered, so range rules get a deterministic
// order: ascending lower bound, malformed selectors last.
func buildConfig(raw rawWeights) weights.Config {
	cfg := weights.Config{}

	if len(raw.ByExtension) > 0 {
		cfg.ByExtension = make(map[string]float64, len(raw.ByExtension))
		for ext, w := range raw.ByExtension {
			cfg.ByExtension[ext] = clampWeight(ext, w)
		}
	}

	cfg.ByAgeDays = buildRangeRules(raw.ByAgeDays)
	cfg.BySizeMB = buildRangeRules(raw.BySizeMB)

	return cfg
}

func buildRangeRules(table map[string]float64) []weights.RangeRule {
	if len(table) == 0 {
		return nil
	}

	logger := logging.GetLogger("config")
	rules := make([]weights.RangeRule, 0, len(table))
	for selector, w := range table {
		rule := weights.NewRangeRule(selector, clampWeight(selector, w))
		if !rule.Valid() {
			logger.Warn().
				Str("selector", selector).
				Msg("malformed range selector will never match")
		}
		rules = append(rules, rule)
	}
	weights.SortRangeRules(rules)
	return rules
}

// clampWeight forces a configured weight into [0,1]. Out-of-range
// values are a config mistake but must not abort the run.
func clampWeight(selector string, w float64) float64 {
	if w < 0 || w > 1 {
		logger := logging.GetLogger("config")
		logger.Warn().
			Str("selector", selector).
			Float64("weight", w).
			Msg("weight outside [0,1], clamping")
	}
	if w < 0 {
		return 0
	}
	if w > 1 {
		return 1
	}
	return w
}
