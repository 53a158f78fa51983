package main

import (
	"path/filepath"
	"testing"

	"github.com/heshanpadmasiri/codeconv/gosrc"
	"github.com/heshanpadmasiri/codeconv/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullConfig = `package_name = "mapped"
strict = true

[type_mappings]
SyntaxKind = "diagnostics.SyntaxKind"

[project]
profile = "cs2vb"

[[project.type_identifiers]]
from = "{AAAA}"
to = "{BBBB}"

[[project.rewrites]]
pattern = ".resx<"
replacement = ".resources<"

[project.list_region]
start_tag = "<NoWarn>"
end_tag = "</NoWarn>"
from = ";"
to = ","
`

func TestLoadConfig(t *testing.T) {
	path := writeTemp(t, t.TempDir(), "codeconv.toml", fullConfig)
	c, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "mapped", c.PackageName)
	assert.True(t, c.Strict)
	assert.Equal(t, map[string]string{"SyntaxKind": "diagnostics.SyntaxKind"}, c.TypeMappings)
	assert.Equal(t, gosrc.Config{PackageName: "mapped"}, c.goConfig())

	t.Run("configured profile is extended", func(t *testing.T) {
		p, err := c.profile("")
		require.NoError(t, err)
		assert.Equal(t, "cs2vb", p.Name)
		assert.Len(t, p.TypeIdentifiers, 3)
		assert.Equal(t, project.IdentifierPair{From: "{AAAA}", To: "{BBBB}"}, p.TypeIdentifiers[2])
		require.Len(t, p.FileRewrites, 4)
		assert.Equal(t, ".resx<", p.FileRewrites[3].Pattern)
		assert.Equal(t, "<NoWarn>", p.ListRegion.StartTag)
	})

	t.Run("other built-in profile ignores the extension", func(t *testing.T) {
		p, err := c.profile("java2go")
		require.NoError(t, err)
		assert.Equal(t, "java2go", p.Name)
		assert.Len(t, p.TypeIdentifiers, 2)
		assert.Nil(t, p.ListRegion)
	})

	t.Run("custom profile", func(t *testing.T) {
		p, err := c.profile("custom")
		require.NoError(t, err)
		assert.Equal(t, []project.IdentifierPair{{From: "{AAAA}", To: "{BBBB}"}}, p.TypeIdentifiers)
	})
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	c, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, gosrc.PackageName, c.PackageName)
	assert.False(t, c.Strict)

	p, err := c.profile("")
	require.NoError(t, err)
	assert.Equal(t, "java2go", p.Name)
}

func TestLoadConfigExplicitErrors(t *testing.T) {
	tmp := t.TempDir()
	_, err := loadConfig(filepath.Join(tmp, "missing.toml"))
	assert.ErrorContains(t, err, "reading config")

	bad := writeTemp(t, tmp, "bad.toml", "strict = \n")
	_, err = loadConfig(bad)
	assert.ErrorContains(t, err, "parsing")
}
