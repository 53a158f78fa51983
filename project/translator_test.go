package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTranslator(t *testing.T, name string) *Translator {
	t.Helper()
	profile, err := Lookup(name)
	require.NoError(t, err)
	tr, err := NewTranslator(profile)
	require.NoError(t, err)
	return tr
}

func TestTranslateGolden(t *testing.T) {
	tests := []struct {
		profile string
		input   string
	}{
		{"cs2vb", "Sample.csproj"},
		{"java2go", "sample.project"},
	}
	for _, tt := range tests {
		t.Run(tt.profile, func(t *testing.T) {
			input, err := os.ReadFile(filepath.Join("testdata", tt.input))
			require.NoError(t, err)

			g := goldie.New(t)
			g.Assert(t, "TestTranslateGolden-"+tt.profile, []byte(mustTranslator(t, tt.profile).Translate(string(input))))
		})
	}
}

func TestPostProcess(t *testing.T) {
	tr := mustTranslator(t, "cs2vb")

	text := "<A>x;y</A>\n<DefineConstants>A;B;C</DefineConstants>\n<B>1;2</B>"
	assert.Equal(t, "<A>x;y</A>\n<DefineConstants>A,B,C</DefineConstants>\n<B>1;2</B>", tr.PostProcess(text))

	for _, unchanged := range []string{
		"<DefineConstants>A;B",
		"A;B</DefineConstants>",
		"</DefineConstants>A;B<DefineConstants>",
		"",
	} {
		assert.Equal(t, unchanged, tr.PostProcess(unchanged))
	}

	stray := "</DefineConstants>x;y<DefineConstants>A;B</DefineConstants>"
	assert.Equal(t, "</DefineConstants>x;y<DefineConstants>A,B</DefineConstants>", tr.PostProcess(stray))

	// only the first region is rewritten
	twice := "<DefineConstants>A;B</DefineConstants><DefineConstants>C;D</DefineConstants>"
	assert.Equal(t, "<DefineConstants>A,B</DefineConstants><DefineConstants>C;D</DefineConstants>", tr.PostProcess(twice))
}

func TestPostProcessWithoutRegion(t *testing.T) {
	tr := mustTranslator(t, "java2go")
	assert.Equal(t, "<DefineConstants>A;B</DefineConstants>", tr.PostProcess("<DefineConstants>A;B</DefineConstants>"))
}

func TestIdentifiersAreCaseInsensitive(t *testing.T) {
	tr := mustTranslator(t, "cs2vb")
	assert.Equal(t,
		"{F184B08F-C81C-45F6-A57F-5ABD9991F28F};{778DAE3C-4631-46EA-AA77-85C1314464D9}",
		tr.Translate("{fae04ec0-301f-11d3-bf4b-00c04f79efbc};{9A19103F-16F7-4668-BE54-9A1E7A4F7556}"))
}

func TestIdentifierRemapDoesNotChain(t *testing.T) {
	tr, err := NewTranslator(Profile{TypeIdentifiers: []IdentifierPair{{From: "A1", To: "B1"}, {From: "B1", To: "C1"}}})
	require.NoError(t, err)
	assert.Equal(t, "B1 C1", tr.Translate("A1 B1"))
}

func TestLongerIdentifierWinsOverItsPrefix(t *testing.T) {
	pairs := []IdentifierPair{
		{From: "org.eclipse.jdt.core.java", To: "go.core"},
		{From: "org.eclipse.jdt.core.javanature", To: "go.nature"},
	}
	tr, err := NewTranslator(Profile{TypeIdentifiers: pairs})
	require.NoError(t, err)
	assert.Equal(t, "<nature>go.nature</nature>", tr.Translate("<nature>org.eclipse.jdt.core.javanature</nature>"))
	assert.Equal(t, "<id>go.core</id>", tr.Translate("<id>org.eclipse.jdt.core.java</id>"))
	assert.Equal(t, pairs, tr.TranslateTypeIdentifiers())
}

func TestInverseRoundTrip(t *testing.T) {
	forward := mustTranslator(t, "cs2vb")
	backward := mustTranslator(t, "vb2cs")

	text := `<ProjectTypeGuids>{FAE04EC0-301F-11D3-BF4B-00C04F79EFBC}</ProjectTypeGuids>
<DefineConstants>DEBUG;TRACE</DefineConstants>
<Compile Include="A.cs" />`
	vb := forward.Translate(text)
	assert.Contains(t, vb, `Include="A.vb"`)
	assert.Equal(t, text, backward.Translate(vb))
}

func TestTranslatorReturnsCopies(t *testing.T) {
	tr := mustTranslator(t, "cs2vb")
	pairs := tr.TranslateTypeIdentifiers()
	require.Len(t, pairs, 2)
	pairs[0].To = "changed"
	assert.NotEqual(t, "changed", tr.TranslateTypeIdentifiers()[0].To)

	rewrites := tr.FileReferenceRewrites()
	require.Len(t, rewrites, 3)
	assert.Equal(t, `\Microsoft.CSharp.targets`, rewrites[0].Pattern)
	assert.Equal(t, ".cs<", rewrites[2].Pattern)
}

func TestNewTranslatorRejectsNonBijectiveProfiles(t *testing.T) {
	_, err := NewTranslator(Profile{TypeIdentifiers: []IdentifierPair{{From: "a", To: "x"}, {From: "A", To: "y"}}})
	require.ErrorIs(t, err, ErrNotBijective)
	assert.Contains(t, err.Error(), "source identifier")

	_, err = NewTranslator(Profile{TypeIdentifiers: []IdentifierPair{{From: "a", To: "x"}, {From: "b", To: "X"}}})
	require.ErrorIs(t, err, ErrNotBijective)
	assert.Contains(t, err.Error(), "target identifier")
}

func TestLookup(t *testing.T) {
	assert.Equal(t, []string{"cs2vb", "java2go", "vb2cs"}, Names())

	vb2cs, err := Lookup("vb2cs")
	require.NoError(t, err)
	assert.Equal(t, "vb2cs", vb2cs.Name)
	assert.Equal(t, ",", vb2cs.ListRegion.From)
	assert.Equal(t, ";", vb2cs.ListRegion.To)

	_, err = Lookup("cobol2go")
	require.ErrorIs(t, err, ErrUnknownProfile)
}
