package types

import "time"

// PlatformRecord is a catalog row describing a registered platform. Builtin
// rows are seeded on attach; custom rows carry the target definition JSON
// they were registered with.
type PlatformRecord struct {
	RecordID     string    // UUID v7, generated on creation.
	TripleStr    string    // Triple string, unique across the table.
	Source       string    // One of the TripleSource constants.
	OS           string    // Resolved operating system.
	Arch         string    // Resolved architecture.
	Vendor       string    // Resolved vendor.
	Env          string    // Resolved environment; empty when none.
	ABI          string    // Resolved ABI; empty when none.
	Families     []string  // Target families; empty for bare-metal targets.
	Endian       string    // EndianLittle or EndianBig.
	PointerWidth int       // 16, 32, or 64.
	CustomJSON   string    // Custom target definition; empty unless Source is custom.
	Notes        string    // Free-form operator notes.
	CreatedAt    time.Time // Timestamp of creation.
	UpdatedAt    time.Time // Timestamp of last modification.
}

// Validate checks that the record is well-formed. Returns a sentinel error
// from this package on failure.
func (r *PlatformRecord) Validate() error {
	if r.TripleStr == "" {
		return ErrEmptyTriple
	}
	if !validTripleSources[r.Source] {
		return ErrInvalidSource
	}
	if r.Endian != EndianLittle && r.Endian != EndianBig {
		return ErrInvalidEndian
	}
	switch r.PointerWidth {
	case 16, 32, 64:
	default:
		return ErrInvalidPointerWidth
	}
	for _, f := range r.Families {
		if !validFamilies[f] {
			return ErrInvalidFamily
		}
	}
	return nil
}

// Spec converts the record to the TargetSpec it describes.
func (r *PlatformRecord) Spec() TargetSpec {
	return TargetSpec{
		OS:           r.OS,
		Arch:         r.Arch,
		Vendor:       r.Vendor,
		Env:          r.Env,
		ABI:          r.ABI,
		Families:     append([]string(nil), r.Families...),
		Endian:       r.Endian,
		PointerWidth: r.PointerWidth,
		Panic:        PanicUnwind,
	}
}

// NewPlatformRecord builds a record from a resolved triple.
func NewPlatformRecord(t Triple) *PlatformRecord {
	return &PlatformRecord{
		TripleStr:    t.Value,
		Source:       t.Source,
		OS:           t.Spec.OS,
		Arch:         t.Spec.Arch,
		Vendor:       t.Spec.Vendor,
		Env:          t.Spec.Env,
		ABI:          t.Spec.ABI,
		Families:     append([]string(nil), t.Spec.Families...),
		Endian:       t.Spec.Endian,
		PointerWidth: t.Spec.PointerWidth,
	}
}

// FeatureRecord is a catalog row marking a target feature as enabled for a
// registered platform.
type FeatureRecord struct {
	RecordID  string    // UUID v7, generated on creation.
	TripleStr string    // Triple the feature belongs to.
	Feature   string    // Feature name, e.g. "sse2" or "neon".
	CreatedAt time.Time // Timestamp of creation.
}

// Validate checks that the record is well-formed.
func (r *FeatureRecord) Validate() error {
	if r.TripleStr == "" {
		return ErrEmptyTriple
	}
	if r.Feature == "" {
		return ErrEmptyFeature
	}
	return nil
}
