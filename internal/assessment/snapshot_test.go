package assessment

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abhisek/devmap/internal/ceiling"
	"github.com/abhisek/devmap/internal/taxonomy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_JSON(t *testing.T) {
	a, err := Decode([]byte(`{"d1-sa1-sg1-s1": 2, "d2-sa1-sg2-s1": null, "d3-sa1-sg1-s1": 0}`), FormatJSON)
	require.NoError(t, err)

	want := ceiling.Assessments{
		"d1-sa1-sg1-s1": ceiling.Developing,
		"d2-sa1-sg2-s1": ceiling.NotPresent,
		"d3-sa1-sg1-s1": ceiling.NotPresent,
	}
	assert.Equal(t, want, a)

	// null is an assessed skill, not a missing one
	_, ok := a.Assessed("d2-sa1-sg2-s1")
	assert.True(t, ok)
}

func TestDecode_YAML(t *testing.T) {
	data := "d1-sa1-sg1-s1: 3\nd1-sa2-sg1-s1: 1\nd2-sa1-sg2-s1: ~\n"
	a, err := Decode([]byte(data), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, ceiling.Solid, a["d1-sa1-sg1-s1"])
	assert.Equal(t, ceiling.NeedsWork, a["d1-sa2-sg1-s1"])
	assert.Equal(t, ceiling.NotPresent, a["d2-sa1-sg2-s1"])
}

func TestDecode_EmptyYAML(t *testing.T) {
	a, err := Decode([]byte(""), FormatYAML)
	require.NoError(t, err)
	assert.Empty(t, a)
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
	}{
		{"level too high", `{"a": 4}`, FormatJSON},
		{"negative level", `{"a": -1}`, FormatJSON},
		{"fractional level", `{"a": 1.5}`, FormatJSON},
		{"string level", `{"a": "2"}`, FormatJSON},
		{"not an object", `[1, 2]`, FormatJSON},
		{"malformed json", `{"a": `, FormatJSON},
		{"empty key", `{"": 1}`, FormatJSON},
		{"yaml list", "- 1\n- 2\n", FormatYAML},
		{"yaml nested", "a:\n  b: 1\n", FormatYAML},
		{"yaml level too high", "a: 9\n", FormatYAML},
		{"yaml int keys", "1: 2\n", FormatYAML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data), tt.format)
			if !errors.Is(err, ErrInvalidSnapshot) {
				t.Errorf("got %v, want ErrInvalidSnapshot", err)
			}
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"snap.json", FormatJSON, false},
		{"snap.YAML", FormatYAML, false},
		{"dir/snap.yml", FormatYAML, false},
		{"snap.csv", 0, true},
		{"snap", 0, true},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: err = %v, wantErr %v", tt.path, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snap.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"d1-sa1-sg1-s1": 1}`), 0o644))

	a, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, ceiling.Assessments{"d1-sa1-sg1-s1": ceiling.NeedsWork}, a)
}

func TestLoad_Stdin(t *testing.T) {
	a, err := Load(Stdin, strings.NewReader(`{"d1-sa1-sg1-s1": 3}`))
	require.NoError(t, err)
	assert.Equal(t, ceiling.Solid, a["d1-sa1-sg1-s1"])
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("x: 7\n"), 0o644))

	_, err := Load(bad, nil)
	var se *SnapshotError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, bad, se.Path)
	assert.ErrorIs(t, err, ErrInvalidSnapshot)

	_, err = Load(filepath.Join(dir, "missing.json"), nil)
	require.ErrorAs(t, err, &se)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(filepath.Join(dir, "snap.txt"), nil)
	assert.ErrorIs(t, err, ErrInvalidSnapshot)
}

func TestResolve(t *testing.T) {
	tax := taxonomy.Default()
	a := ceiling.Assessments{
		"d1-sa1-sg1-s1": ceiling.Developing,
		"zz-legacy":     ceiling.Solid,
		"aa-legacy":     ceiling.NeedsWork,
	}

	t.Run("lenient drops unknown ids", func(t *testing.T) {
		known, ignored, err := Resolve(a, tax, false)
		require.NoError(t, err)
		assert.Equal(t, ceiling.Assessments{"d1-sa1-sg1-s1": ceiling.Developing}, known)
		assert.Equal(t, []string{"aa-legacy", "zz-legacy"}, ignored)
		assert.Len(t, a, 3, "input must not be modified")
	})

	t.Run("strict rejects unknown ids", func(t *testing.T) {
		_, _, err := Resolve(a, tax, true)
		require.ErrorIs(t, err, ErrUnknownSkill)
		assert.Contains(t, err.Error(), "aa-legacy, zz-legacy")
	})

	t.Run("out of range level", func(t *testing.T) {
		_, _, err := Resolve(ceiling.Assessments{"d1-sa1-sg1-s1": 5}, tax, false)
		assert.ErrorIs(t, err, ErrInvalidSnapshot)
	})
}
