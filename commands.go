package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/heshanpadmasiri/codeconv/convert"
	"github.com/heshanpadmasiri/codeconv/diagnostics"
	"github.com/heshanpadmasiri/codeconv/project"
	"github.com/spf13/cobra"
)

func newFileCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "file SOURCE [DEST]",
		Short: "Convert one Java file",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			text, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading source file: %w", err)
			}
			res, err := convert.NewSession(cfg.conversion()).ConvertFiles([]convert.SourceFile{
				{Name: filepath.Base(args[0]), Text: string(text)},
			})
			if err != nil {
				return err
			}
			reportWarnings(cmd.ErrOrStderr(), res.Warnings)
			if len(res.Failed) > 0 {
				return errors.Join(res.Failed...)
			}
			converted := res.Files[0].Text
			if len(args) == 2 {
				return writeFile(args[1], converted)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), converted)
			return err
		},
	}
}

func newSnippetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "snippet [FILE]",
		Short: "Convert a Java snippet read from FILE or standard input",
		Long: `Convert a piece of Java that need not be a compilation unit, such as a
few statements or a single method. The converted counterpart of the snippet
is printed without the synthetic declarations used to convert it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			var text []byte
			if len(args) == 0 || args[0] == "-" {
				text, err = io.ReadAll(cmd.InOrStdin())
			} else {
				text, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("reading snippet: %w", err)
			}
			res, err := convert.NewSession(cfg.conversion()).ConvertText(string(text))
			if err != nil {
				return err
			}
			reportWarnings(cmd.ErrOrStderr(), res.Warnings)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), res.Text)
			return err
		},
	}
}

func newDirCmd(opts *rootOptions) *cobra.Command {
	var jobs int
	var out string
	cmd := &cobra.Command{
		Use:   "dir DIR...",
		Short: "Convert every Java file below each DIR",
		Long: `Each directory is converted as one session, so files of a directory see
each other's declarations. Directories are converted in parallel.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			batches := make([]convert.Batch, 0, len(args))
			for _, dir := range args {
				batch, err := collectBatch(dir)
				if err != nil {
					return err
				}
				batches = append(batches, batch)
			}
			results, err := convert.RunSessions(cmd.Context(), cfg.conversion(), jobs, batches)
			if err != nil {
				return err
			}

			failed := 0
			for i, res := range results {
				reportWarnings(cmd.ErrOrStderr(), res.Warnings)
				for _, err := range res.Failed {
					diagnostics.Warnf(cmd.ErrOrStderr(), "%s: %v", batches[i].Name, err)
				}
				failed += len(res.Failed)
				for _, f := range res.Files {
					if out == "" {
						fmt.Fprintf(cmd.OutOrStdout(), "// %s\n%s\n", filepath.Join(batches[i].Name, f.Name), f.Text)
						continue
					}
					if err := writeFile(filepath.Join(out, batches[i].Name, f.Name), f.Text); err != nil {
						return err
					}
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d files failed to convert", failed)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 4, "number of directories converted at the same time")
	cmd.Flags().StringVarP(&out, "out", "o", "", "directory the converted files are written to (default: print)")
	return cmd
}

// collectBatch reads all Java files below dir. File names are relative to dir.
func collectBatch(dir string) (convert.Batch, error) {
	batch := convert.Batch{Name: filepath.Base(filepath.Clean(dir))}
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".java") {
			return nil
		}
		text, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		batch.Files = append(batch.Files, convert.SourceFile{Name: filepath.ToSlash(rel), Text: string(text)})
		return nil
	})
	if err != nil {
		return batch, fmt.Errorf("reading %s: %w", dir, err)
	}
	return batch, nil
}

func newProjectCmd(opts *rootOptions) *cobra.Command {
	var profileName string
	cmd := &cobra.Command{
		Use:   "project SOURCE [DEST]",
		Short: "Translate a project descriptor to the target language",
		Long: fmt.Sprintf(`Rewrite project type identifiers, source file references and list
separators of a project descriptor. Built-in profiles: %s. The profile
"custom" uses only the [project] section of the configuration.`, strings.Join(project.Names(), ", ")),
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			profile, err := cfg.profile(profileName)
			if err != nil {
				return err
			}
			translator, err := project.NewTranslator(profile)
			if err != nil {
				return err
			}
			text, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading project file: %w", err)
			}
			translated := translator.Translate(string(text))
			if len(args) == 2 {
				return writeFile(args[1], translated)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), translated)
			return err
		},
	}
	cmd.Flags().StringVarP(&profileName, "profile", "p", "", "project profile (default: the configured one, else java2go)")
	return cmd
}

func reportWarnings(w io.Writer, warnings string) {
	if warnings == "" {
		return
	}
	diagnostics.Warn(w, strings.TrimRight(warnings, "\n"))
}

func writeFile(path, text string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	return os.WriteFile(path, []byte(text), 0o644)
}
