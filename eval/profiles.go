package eval

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Profile returns a built-in weight preset by name, matched
// case-insensitively. "balanced" is the default searcher configuration;
// "aggressive" trades material terms for point tempo; "material" leans
// the other way.
func Profile(name string) (Weights, error) {
	switch strings.ToLower(name) {
	case "balanced":
		return DefaultWeights(), nil
	case "aggressive":
		w := DefaultWeights()
		w.PointSelf = 24.0
		w.PointOpp = 24.0
		w.AffordableSelf = 1.0
		w.TurnPenalty = 0.05
		w.Efficiency = 1.3
		return w, nil
	case "material":
		w := DefaultWeights()
		w.PointSelf = 16.0
		w.PointOpp = 16.0
		w.GemSelf = 0.4
		w.GemOpp = 0.4
		w.BonusSelf = 1.6
		w.BonusOpp = 1.6
		w.ReservedSelf = 0.8
		w.NobleProgressSelf = 1.1
		w.NobleProgressOpp = 1.1
		return w, nil
	}
	return Weights{}, fmt.Errorf("unknown weight profile: %s", name)
}

// ProfileNames lists the built-in presets in display order.
func ProfileNames() []string {
	return []string{"balanced", "aggressive", "material"}
}

// LoadFile reads a JSON weight file and applies it over the defaults.
// Keys use the snake_case field names; unknown keys are an error so a
// typo cannot silently leave a default in place.
func LoadFile(path string) (Weights, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Weights{}, fmt.Errorf("reading weight file: %w", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Weights{}, fmt.Errorf("parsing weight file %s: %w", path, err)
	}

	w := DefaultWeights()
	var meta mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &w,
		Metadata:         &meta,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Weights{}, err
	}
	if err := dec.Decode(fields); err != nil {
		return Weights{}, fmt.Errorf("decoding weight file %s: %w", path, err)
	}
	if len(meta.Unused) > 0 {
		sort.Strings(meta.Unused)
		return Weights{}, fmt.Errorf("unknown weight keys in %s: %s", path, strings.Join(meta.Unused, ", "))
	}
	return w, nil
}
