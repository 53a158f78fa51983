package main

import (
	"github.com/heshanpadmasiri/codeconv/convert"
	"github.com/heshanpadmasiri/codeconv/diagnostics"
	"github.com/heshanpadmasiri/codeconv/java"
	"github.com/spf13/cobra"
)

// version is set via build-time ldflags
var version = "dev"

type rootOptions struct {
	configPath string
	strict     bool
}

// load reads the configuration; --strict overrides the file
func (o *rootOptions) load() (config, error) {
	c, err := loadConfig(o.configPath)
	if err != nil {
		return c, err
	}
	c.Strict = c.Strict || o.strict
	return c, nil
}

func (c config) conversion() convert.Conversion {
	return convert.JavaToGo(&java.Converter{
		Config:       c.goConfig(),
		Strict:       c.Strict,
		TypeMappings: c.TypeMappings,
	})
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "codeconv",
		Short: "Convert Java sources and snippets to Go",
		Long: `codeconv converts Java compilation units, directories of them and
bare snippets (statements, members) into Go. Snippets are wrapped in a
synthetic class or method before conversion and unwrapped afterwards.

Configuration is read from Config.toml in the working directory unless
--config names another file.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path of the TOML configuration file")
	root.PersistentFlags().BoolVar(&opts.strict, "strict", false, "fail a file when any of its members cannot be converted")

	root.AddCommand(
		newFileCmd(opts),
		newSnippetCmd(opts),
		newDirCmd(opts),
		newProjectCmd(opts),
	)
	return root
}

func main() {
	diagnostics.Fatal("codeconv", newRootCmd().Execute())
}
