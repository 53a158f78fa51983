package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/heshanpadmasiri/codeconv/gosrc"
	"github.com/heshanpadmasiri/codeconv/project"
	"github.com/pelletier/go-toml/v2"
)

const configFileName = "Config.toml"

// config represents migration configuration
type config struct {
	PackageName   string            `toml:"package_name"`
	LicenseHeader string            `toml:"license_header"`
	Strict        bool              `toml:"strict"`
	TypeMappings  map[string]string `toml:"type_mappings"`
	Project       project.Profile   `toml:"project"`
}

func (c config) goConfig() gosrc.Config {
	return gosrc.Config{PackageName: c.PackageName, LicenseHeader: c.LicenseHeader}
}

// profile resolves the project profile. A named built-in profile is
// extended with the identifiers and rewrites given next to it.
func (c config) profile(name string) (project.Profile, error) {
	if name == "" {
		name = c.Project.Name
	}
	if name == "" {
		name = "java2go"
	}
	if name == "custom" {
		return c.Project, nil
	}
	p, err := project.Lookup(name)
	if err != nil {
		return project.Profile{}, err
	}
	if name != c.Project.Name {
		return p, nil
	}
	p.TypeIdentifiers = append(p.TypeIdentifiers, c.Project.TypeIdentifiers...)
	p.FileRewrites = append(p.FileRewrites, c.Project.FileRewrites...)
	if c.Project.ListRegion != nil {
		p.ListRegion = c.Project.ListRegion
	}
	return p, nil
}

// loadConfig loads migration configuration from path, or from Config.toml in
// the working directory when path is empty. A missing default file gives the
// defaults; an explicitly named file must exist and parse.
func loadConfig(path string) (config, error) {
	c := config{PackageName: gosrc.PackageName}

	explicit := path != ""
	if !explicit {
		wd, err := os.Getwd()
		if err != nil {
			return c, nil
		}
		path = filepath.Join(wd, configFileName)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if explicit {
			return c, fmt.Errorf("reading config: %w", err)
		}
		return c, nil
	}

	var fileConfig config
	if err := toml.Unmarshal(data, &fileConfig); err != nil {
		if explicit {
			return c, fmt.Errorf("parsing %s: %w", path, err)
		}
		// Invalid default config, keep the defaults
		return c, nil
	}

	if fileConfig.PackageName != "" {
		c.PackageName = fileConfig.PackageName
	}
	c.LicenseHeader = fileConfig.LicenseHeader
	c.Strict = fileConfig.Strict
	c.TypeMappings = fileConfig.TypeMappings
	c.Project = fileConfig.Project
	return c, nil
}
