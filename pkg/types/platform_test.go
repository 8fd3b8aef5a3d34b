package types

import (
	"errors"
	"testing"
)

func TestNewPlatform(t *testing.T) {
	p, err := NewPlatform("x86_64-unknown-linux-gnu", NoFeatures())
	if err != nil {
		t.Fatalf("NewPlatform: %v", err)
	}
	if !p.IsBuiltin() || !p.IsStandard() {
		t.Errorf("expected builtin standard platform, got source %q", p.Triple().Source)
	}
	if p.TripleStr() != "x86_64-unknown-linux-gnu" {
		t.Errorf("TripleStr = %q", p.TripleStr())
	}
}

func TestNewPlatformHeuristicFallback(t *testing.T) {
	p, err := NewPlatform("armv5te-unknown-linux-gnueabi", NoFeatures())
	if err != nil {
		t.Fatalf("NewPlatform: %v", err)
	}
	if !p.IsHeuristic() || !p.IsStandard() {
		t.Errorf("expected heuristic standard platform, got source %q", p.Triple().Source)
	}
}

func TestNewPlatformStrictRejectsHeuristic(t *testing.T) {
	_, err := NewPlatformStrict("armv5te-unknown-linux-gnueabi", NoFeatures())
	if !errors.Is(err, ErrUnknownTriple) {
		t.Errorf("err = %v, want ErrUnknownTriple", err)
	}
}

func TestNewCustomPlatform(t *testing.T) {
	def := []byte(`{"arch": "mycpu", "os": "none", "target-pointer-width": "32"}`)
	p, err := NewCustomPlatform("mycpu-unknown-none", def, NoFeatures())
	if err != nil {
		t.Fatalf("NewCustomPlatform: %v", err)
	}
	if !p.IsCustom() || p.IsStandard() {
		t.Errorf("expected custom platform, got source %q", p.Triple().Source)
	}
	if p.Triple().Spec.PointerWidth != 32 {
		t.Errorf("PointerWidth = %d, want 32", p.Triple().Spec.PointerWidth)
	}
}

func TestCurrentPlatform(t *testing.T) {
	p, err := CurrentPlatform()
	if err != nil {
		t.Skipf("no triple mapping for this Go port: %v", err)
	}
	if !p.IsBuiltin() {
		t.Errorf("current platform should be builtin, got %q", p.Triple().Source)
	}
	if !p.TargetFeatures().IsUnknown() {
		t.Error("current platform features should be unknown")
	}
}

func TestPlatformFlags(t *testing.T) {
	p, err := NewPlatform("x86_64-unknown-linux-gnu", NoFeatures())
	if err != nil {
		t.Fatalf("NewPlatform: %v", err)
	}
	if p.HasFlag("test") {
		t.Error("flags should default to unset")
	}
	if p.Flags() != nil {
		t.Errorf("Flags = %v, want nil", p.Flags())
	}

	p.AddFlags("test", "cargo_web")
	if !p.HasFlag("test") || !p.HasFlag("cargo_web") {
		t.Error("added flags should be set")
	}
	flags := p.Flags()
	if len(flags) != 2 || flags[0] != "cargo_web" || flags[1] != "test" {
		t.Errorf("Flags = %v, want sorted [cargo_web test]", flags)
	}
}

func TestPlatformRecordValidate(t *testing.T) {
	valid := func() *PlatformRecord {
		tr, err := ParseTriple("x86_64-unknown-linux-gnu")
		if err != nil {
			t.Fatalf("ParseTriple: %v", err)
		}
		return NewPlatformRecord(tr)
	}

	tests := []struct {
		name    string
		mutate  func(*PlatformRecord)
		wantErr error
	}{
		{
			name:   "valid record",
			mutate: func(r *PlatformRecord) {},
		},
		{
			name:    "empty triple",
			mutate:  func(r *PlatformRecord) { r.TripleStr = "" },
			wantErr: ErrEmptyTriple,
		},
		{
			name:    "bad source",
			mutate:  func(r *PlatformRecord) { r.Source = "guessed" },
			wantErr: ErrInvalidSource,
		},
		{
			name:    "bad endian",
			mutate:  func(r *PlatformRecord) { r.Endian = "middle" },
			wantErr: ErrInvalidEndian,
		},
		{
			name:    "bad pointer width",
			mutate:  func(r *PlatformRecord) { r.PointerWidth = 48 },
			wantErr: ErrInvalidPointerWidth,
		},
		{
			name:    "bad family",
			mutate:  func(r *PlatformRecord) { r.Families = []string{"beos"} },
			wantErr: ErrInvalidFamily,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid()
			tt.mutate(r)
			err := r.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestFeatureRecordValidate(t *testing.T) {
	r := &FeatureRecord{TripleStr: "x86_64-unknown-linux-gnu", Feature: "sse2"}
	if err := r.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	r.Feature = ""
	if err := r.Validate(); !errors.Is(err, ErrEmptyFeature) {
		t.Errorf("err = %v, want ErrEmptyFeature", err)
	}
	r = &FeatureRecord{Feature: "sse2"}
	if err := r.Validate(); !errors.Is(err, ErrEmptyTriple) {
		t.Errorf("err = %v, want ErrEmptyTriple", err)
	}
}
