package main

import (
	"path/filepath"
	"testing"

	"github.com/heshanpadmasiri/codeconv/java"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Annotation declarations are not supported
const annotationInClass = `
class TestAnnotation {
    int validField1 = 5;

    public int getField1() {
        return validField1;
    }

    @interface MyAnnotation {
    }

    int validField2 = 10;

    public int getField2() {
        return validField2;
    }
}
`

func TestErrorRecovery(t *testing.T) {
	tmp := t.TempDir()
	src := writeTemp(t, tmp, "TestAnnotation.java", annotationInClass)

	t.Run("non-strict mode continues on error", func(t *testing.T) {
		stdout, stderr, err := run(t, "", "file", src)
		require.NoError(t, err)
		assert.Contains(t, stdout, "// FIXME: Failed to migrate")
		assert.Contains(t, stdout, "GetField1() int {")
		assert.Contains(t, stdout, "GetField2() int {")
		assert.Contains(t, stderr, "annotation_type_declaration")
	})

	t.Run("strict flag fails the file", func(t *testing.T) {
		stdout, _, err := run(t, "", "--strict", "file", src)
		require.ErrorIs(t, err, java.ErrStrict)
		assert.Empty(t, stdout)
	})

	t.Run("strict config fails the file", func(t *testing.T) {
		cfg := writeTemp(t, tmp, "strict.toml", "strict = true\n")
		_, _, err := run(t, "", "--config", cfg, "file", src)
		require.ErrorIs(t, err, java.ErrStrict)
	})

	t.Run("missing explicit config", func(t *testing.T) {
		_, _, err := run(t, "", "--config", filepath.Join(tmp, "absent.toml"), "file", src)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading config")
	})
}
