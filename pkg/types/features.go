package types

import "sort"

// featuresMode distinguishes the three knowledge states of TargetFeatures.
type featuresMode int

const (
	featuresUnknown featuresMode = iota
	featuresSet
	featuresAll
)

// TargetFeatures holds what is known about a platform's target features.
// Three states are possible: nothing is known, an explicit set is known, or
// every feature is assumed enabled.
type TargetFeatures struct {
	mode featuresMode
	set  map[string]bool
}

// FeaturesUnknown returns a TargetFeatures in the unknown state: feature
// queries report known=false.
func FeaturesUnknown() TargetFeatures {
	return TargetFeatures{mode: featuresUnknown}
}

// FeatureSet returns a TargetFeatures with exactly the given features
// enabled.
func FeatureSet(names ...string) TargetFeatures {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return TargetFeatures{mode: featuresSet, set: set}
}

// NoFeatures returns a TargetFeatures with no features enabled. Unlike
// FeaturesUnknown, queries are answered definitively.
func NoFeatures() TargetFeatures {
	return TargetFeatures{mode: featuresSet, set: map[string]bool{}}
}

// AllFeatures returns a TargetFeatures with every feature enabled.
func AllFeatures() TargetFeatures {
	return TargetFeatures{mode: featuresAll}
}

// IsUnknown reports whether nothing is known about the feature set.
func (f TargetFeatures) IsUnknown() bool {
	return f.mode == featuresUnknown
}

// IsAll reports whether every feature is assumed enabled.
func (f TargetFeatures) IsAll() bool {
	return f.mode == featuresAll
}

// Matches reports whether the named feature is enabled. known is false only
// in the unknown state; in that case matched is meaningless.
func (f TargetFeatures) Matches(feature string) (matched, known bool) {
	switch f.mode {
	case featuresUnknown:
		return false, false
	case featuresAll:
		return true, true
	default:
		return f.set[feature], true
	}
}

// Names returns the explicit feature set in sorted order. Nil for the
// unknown and all states.
func (f TargetFeatures) Names() []string {
	if f.mode != featuresSet || len(f.set) == 0 {
		return nil
	}
	names := make([]string, 0, len(f.set))
	for n := range f.set {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
