// Command darklua is a small CLI wrapping the three entry points spec §6
// names as external interfaces: bundling, renaming and the general rule
// pipeline. It exists to exercise those packages end to end the way the
// teacher's cli/main.go exercises its own engine, grounded on
// runtime/cli/harness.go's root-command-plus-subcommands shape (there one
// cobra.Command per generated program command; here one per operation this
// module exposes).
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/seaofvoices/darklua-go/bundle"
	"github.com/seaofvoices/darklua-go/generate"
	"github.com/seaofvoices/darklua-go/parser"
	"github.com/seaofvoices/darklua-go/rename"
	"github.com/seaofvoices/darklua-go/resolve"
	"github.com/seaofvoices/darklua-go/resource"
	"github.com/seaofvoices/darklua-go/rules"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "darklua",
		Short:         "Transform Lua/Luau source trees",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.AddCommand(newBundleCommand(), newRenameCommand(), newProcessCommand())
	return root
}

// writeOutput writes text to outputPath, or stdout when outputPath is empty.
func writeOutput(outputPath string, text string) error {
	if outputPath == "" {
		_, err := fmt.Fprint(os.Stdout, text)
		return err
	}
	return os.WriteFile(outputPath, []byte(text), 0o644)
}

func readInput(path string) ([]byte, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %q", path)
	}
	return source, nil
}

func newBundleCommand() *cobra.Command {
	var output string
	var moduleFolderName string
	var excludes []string

	cmd := &cobra.Command{
		Use:   "bundle <entry-file>",
		Short: "Inline every reachable require() into a single file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry := args[0]
			source, err := readInput(entry)
			if err != nil {
				return err
			}

			block, err := parser.Parse(source, entry)
			if err != nil {
				return errors.Wrapf(err, "parsing %q", entry)
			}

			layer := resource.NewFilesystem()
			resolver := resolve.New(resolve.Config{ModuleFolderName: moduleFolderName}, layer)
			assembler := &bundle.Assembler{
				Resolver: resolver,
				Layer:    layer,
				Parse:    parser.Parse,
				Exclude:  excludes,
			}

			out, err := assembler.Assemble(block, entry)
			if err != nil {
				return errors.Wrapf(err, "bundling %q", entry)
			}

			return writeOutput(output, generate.Block(out, generate.ModeDense))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the bundled file here instead of stdout")
	cmd.Flags().StringVar(&moduleFolderName, "module-folder-name", "", `Directory-probe folder name (default "init")`)
	cmd.Flags().StringArrayVar(&excludes, "exclude", nil, "Glob pattern (matched against the literal require path) to leave uninlined")
	return cmd
}

func newRenameCommand() *cobra.Command {
	var output string
	var globals []string
	var alphabet string

	cmd := &cobra.Command{
		Use:   "rename <file>",
		Short: "Rename every local identifier to a short fresh name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			source, err := readInput(path)
			if err != nil {
				return err
			}

			block, err := parser.Parse(source, path)
			if err != nil {
				return errors.Wrapf(err, "parsing %q", path)
			}

			renamer := rename.New(rename.Config{GlobalVariables: globals, Alphabet: alphabet})
			renamer.Rename(block)

			return writeOutput(output, generate.Block(block, generate.ModeDense))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the renamed file here instead of stdout")
	cmd.Flags().StringArrayVar(&globals, "global", []string{"$default"}, `Identifier (or "$default"/"$roblox" shorthand) that must never be renamed`)
	cmd.Flags().StringVar(&alphabet, "alphabet", "", "Candidate alphabet for fresh names (default a-z)")
	return cmd
}

// processConfig is a decoded process configuration file. Each entry of Rules
// is either a bare rule name or a {"rule": name, ...} object, matching the
// shape rules.DecodeRule accepts directly.
type processConfig struct {
	Rules []any `json:"rules"`
}

func loadProcessConfig(path string) (processConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return processConfig{}, errors.Wrapf(err, "reading %q", path)
	}
	var cfg processConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return processConfig{}, errors.Wrapf(err, "decoding %q", path)
	}
	return cfg, nil
}

func newProcessCommand() *cobra.Command {
	var output string
	var configPath string

	cmd := &cobra.Command{
		Use:   "process <file>",
		Short: "Run the configured rule pipeline over a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			source, err := readInput(path)
			if err != nil {
				return err
			}

			cfg, err := loadProcessConfig(configPath)
			if err != nil {
				return err
			}

			registry := rules.Default()
			pipelineRules := make([]rules.Rule, 0, len(cfg.Rules))
			for _, entry := range cfg.Rules {
				rule, err := rules.DecodeRule(entry, registry)
				if err != nil {
					return errors.Wrapf(err, "loading %q", configPath)
				}
				pipelineRules = append(pipelineRules, rule)
			}

			block, err := parser.Parse(source, path)
			if err != nil {
				return errors.Wrapf(err, "parsing %q", path)
			}

			layer := resource.NewFilesystem()
			ctx := rules.NewContext(path, layer, source, parser.Parse)
			// This CLI always parses through parser.Parse, which never
			// attaches token sidecars, so there is nothing for a repair
			// pass to rebind; Repair stays nil per Pipeline's own
			// token-less-pipeline contract.
			pipeline := &rules.Pipeline{Rules: pipelineRules}

			diags, err := pipeline.Apply(block, ctx)
			if err != nil {
				return err
			}
			if len(diags) > 0 {
				for _, d := range diags {
					fmt.Fprintln(os.Stderr, d.Error())
				}
				return errors.New("process: pipeline reported diagnostics")
			}

			return writeOutput(output, generate.Block(block, generate.ModeDense))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the processed file here instead of stdout")
	cmd.Flags().StringVarP(&configPath, "config", "c", "darklua.json", "Path to the rule-configuration file")
	return cmd
}
