package types

import "testing"

func TestTargetFeaturesMatches(t *testing.T) {
	tests := []struct {
		name        string
		features    TargetFeatures
		query       string
		wantMatched bool
		wantKnown   bool
	}{
		{
			name:      "unknown state answers known=false",
			features:  FeaturesUnknown(),
			query:     "sse2",
			wantKnown: false,
		},
		{
			name:        "explicit set contains feature",
			features:    FeatureSet("sse2", "avx"),
			query:       "sse2",
			wantMatched: true,
			wantKnown:   true,
		},
		{
			name:        "explicit set missing feature",
			features:    FeatureSet("sse2", "avx"),
			query:       "neon",
			wantMatched: false,
			wantKnown:   true,
		},
		{
			name:        "no features answers definitively",
			features:    NoFeatures(),
			query:       "sse2",
			wantMatched: false,
			wantKnown:   true,
		},
		{
			name:        "all features matches anything",
			features:    AllFeatures(),
			query:       "whatever",
			wantMatched: true,
			wantKnown:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched, known := tt.features.Matches(tt.query)
			if known != tt.wantKnown {
				t.Fatalf("known = %v, want %v", known, tt.wantKnown)
			}
			if known && matched != tt.wantMatched {
				t.Errorf("matched = %v, want %v", matched, tt.wantMatched)
			}
		})
	}
}

func TestTargetFeaturesStates(t *testing.T) {
	if !FeaturesUnknown().IsUnknown() {
		t.Error("FeaturesUnknown should be unknown")
	}
	if !AllFeatures().IsAll() {
		t.Error("AllFeatures should be all")
	}
	if NoFeatures().IsUnknown() || NoFeatures().IsAll() {
		t.Error("NoFeatures should be an explicit empty set")
	}
}

func TestTargetFeaturesNames(t *testing.T) {
	names := FeatureSet("neon", "aes", "crc").Names()
	want := []string{"aes", "crc", "neon"}
	if len(names) != len(want) {
		t.Fatalf("Names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("Names = %v, want %v", names, want)
		}
	}
	if FeaturesUnknown().Names() != nil || AllFeatures().Names() != nil {
		t.Error("unknown and all states should have nil Names")
	}
}
