package project

import (
	"errors"
	"fmt"
	"slices"
	"sort"
)

// ErrUnknownProfile is returned by Lookup for names without a built-in profile
var ErrUnknownProfile = errors.New("unknown project profile")

// IdentifierPair maps a project type identifier (usually a GUID) of the
// source language onto its target language counterpart
type IdentifierPair struct {
	From string `toml:"from"`
	To   string `toml:"to"`
}

// Rewrite is a literal text substitution applied to project files
type Rewrite struct {
	Pattern     string `toml:"pattern"`
	Replacement string `toml:"replacement"`
}

// ListRegion describes a delimited region of a project file whose list
// separator differs between the two languages
type ListRegion struct {
	StartTag string `toml:"start_tag"`
	EndTag   string `toml:"end_tag"`
	From     string `toml:"from"`
	To       string `toml:"to"`
}

// Profile is the project metadata knowledge of one language pair
type Profile struct {
	Name            string           `toml:"profile"`
	TypeIdentifiers []IdentifierPair `toml:"type_identifiers"`
	FileRewrites    []Rewrite        `toml:"rewrites"`
	ListRegion      *ListRegion      `toml:"list_region"`
}

// Inverse is the profile translating in the opposite direction
func (p Profile) Inverse() Profile {
	inv := Profile{Name: p.Name + "-inverse"}
	for _, pair := range p.TypeIdentifiers {
		inv.TypeIdentifiers = append(inv.TypeIdentifiers, IdentifierPair{From: pair.To, To: pair.From})
	}
	for _, rw := range p.FileRewrites {
		inv.FileRewrites = append(inv.FileRewrites, Rewrite{Pattern: rw.Replacement, Replacement: rw.Pattern})
	}
	if p.ListRegion != nil {
		region := *p.ListRegion
		region.From, region.To = region.To, region.From
		inv.ListRegion = &region
	}
	return inv
}

var csToVB = Profile{
	Name: "cs2vb",
	TypeIdentifiers: []IdentifierPair{
		{From: "{FAE04EC0-301F-11D3-BF4B-00C04F79EFBC}", To: "{F184B08F-C81C-45F6-A57F-5ABD9991F28F}"},
		{From: "{9A19103F-16F7-4668-BE54-9A1E7A4F7556}", To: "{778DAE3C-4631-46EA-AA77-85C1314464D9}"},
	},
	FileRewrites: []Rewrite{
		{Pattern: `\Microsoft.CSharp.targets`, Replacement: `\Microsoft.VisualBasic.targets`},
		{Pattern: `.cs"`, Replacement: `.vb"`},
		{Pattern: `.cs<`, Replacement: `.vb<`},
	},
	ListRegion: &ListRegion{StartTag: "<DefineConstants>", EndTag: "</DefineConstants>", From: ";", To: ","},
}

var javaToGo = Profile{
	Name: "java2go",
	TypeIdentifiers: []IdentifierPair{
		{From: "org.eclipse.jdt.core.javanature", To: "com.googlecode.goclipse.core.goNature"},
		{From: "org.eclipse.jdt.core.javabuilder", To: "com.googlecode.goclipse.goBuilder"},
	},
	FileRewrites: []Rewrite{
		{Pattern: `.java"`, Replacement: `.go"`},
		{Pattern: `.java<`, Replacement: `.go<`},
	},
}

func builtins() map[string]Profile {
	vbToCS := csToVB.Inverse()
	vbToCS.Name = "vb2cs"
	return map[string]Profile{
		csToVB.Name:   csToVB,
		vbToCS.Name:   vbToCS,
		javaToGo.Name: javaToGo,
	}
}

// Lookup returns a copy of the built-in profile called name
func Lookup(name string) (Profile, error) {
	p, ok := builtins()[name]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q (known: %v)", ErrUnknownProfile, name, Names())
	}
	p.TypeIdentifiers = slices.Clone(p.TypeIdentifiers)
	p.FileRewrites = slices.Clone(p.FileRewrites)
	if p.ListRegion != nil {
		region := *p.ListRegion
		p.ListRegion = &region
	}
	return p, nil
}

// Names lists the built-in profiles
func Names() []string {
	var names []string
	for name := range builtins() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
