// Tests for README rendering, placeholder errors, and drift checking.
package docgen

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testConfig(t *testing.T, template, fragment string) Config {
	t.Helper()
	dir := t.TempDir()
	return Config{
		TemplatePath: writeFile(t, dir, "README.tpl.md", template),
		FragmentPath: writeFile(t, dir, "fragment.md", fragment),
		OutputPath:   filepath.Join(dir, "README.md"),
		Crate:        "targetspec",
		Version:      "v0.3.0",
		License:      "MIT",
		Badges:       []string{"[![build](b.svg)](b)", "[![docs](d.svg)](d)"},
	}
}

func TestRender(t *testing.T) {
	cfg := testConfig(t,
		"# {{crate}} {{version}}\n\n{{badges}}\n\n{{readme}}\n\nLicense: {{license}}\n",
		"Body text.")

	out, err := Render(cfg)
	require.NoError(t, err)
	assert.Equal(t,
		"# targetspec v0.3.0\n\n[![build](b.svg)](b)\n[![docs](d.svg)](d)\n\nBody text.\n\nLicense: MIT\n",
		string(out))
}

func TestRender_TrailingNewline(t *testing.T) {
	tests := []struct {
		name     string
		template string
	}{
		{"no trailing newline", "{{crate}}"},
		{"one trailing newline", "{{crate}}\n"},
		{"many trailing newlines", "{{crate}}\n\n\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t, tt.template, "")
			out, err := Render(cfg)
			require.NoError(t, err)
			assert.Equal(t, "targetspec\n", string(out))
		})
	}
}

func TestRender_UnknownPlaceholder(t *testing.T) {
	cfg := testConfig(t, "# Title\n{{autor}}\n", "")

	_, err := Render(cfg)
	var terr *TemplateError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, KindUnknownPlaceholder, terr.Kind)
	assert.Equal(t, "autor", terr.Name)
	assert.Equal(t, 8, terr.Offset)
	assert.Equal(t, 9, terr.Length)

	d := terr.Diagnostic()
	assert.Equal(t, "targetspec::unknown-placeholder", d.Code)
	assert.Equal(t, cfg.TemplatePath, d.Origin)
	require.Len(t, d.Labels, 1)
	span := d.Labels[0].Span
	assert.Equal(t, "{{autor}}", d.Source[span.Offset:span.Offset+span.Length])
}

func TestRender_UnterminatedPlaceholder(t *testing.T) {
	cfg := testConfig(t, "intro {{crate\nmore text\n", "")

	_, err := Render(cfg)
	var terr *TemplateError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, KindBadPlaceholder, terr.Kind)
	assert.Equal(t, 6, terr.Offset)
	assert.Equal(t, 2, terr.Length)
}

func TestGenerateAndCheck(t *testing.T) {
	cfg := testConfig(t, "# {{crate}}\n\n{{readme}}\n", "Body.")

	require.NoError(t, Generate(cfg))

	drift, err := Check(cfg)
	require.NoError(t, err)
	assert.Nil(t, drift)

	// Editing the generated file is drift on the edited line.
	require.NoError(t, os.WriteFile(cfg.OutputPath, []byte("# targetspec\n\nEdited.\n"), 0o644))
	drift, err = Check(cfg)
	require.NoError(t, err)
	require.NotNil(t, drift)
	assert.Equal(t, 3, drift.FirstLine)
	assert.False(t, drift.Missing)
}

func TestCheck_MissingOutput(t *testing.T) {
	cfg := testConfig(t, "# {{crate}}\n", "")

	drift, err := Check(cfg)
	require.NoError(t, err)
	require.NotNil(t, drift)
	assert.True(t, drift.Missing)
}

func TestCheck_RenderErrorPropagates(t *testing.T) {
	cfg := testConfig(t, "{{bogus}}\n", "")
	_, err := Check(cfg)
	var terr *TemplateError
	assert.True(t, errors.As(err, &terr))
}
