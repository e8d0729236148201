package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/tinyguard/internal/application/usecase"
	"github.com/bnema/tinyguard/internal/infrastructure/ruleset"
)

var compileFlags struct {
	input         string
	output        string
	blockedList   string
	noBlockedList bool
	maxRules      int
	jsonOutput    bool
}

var compileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Compile the tracker list into a static block-rule table",
	Long: `Compile the tracker list document into a rule table for the browser's
declarative request blocker.

Domains are lowercased and deduplicated, priority domains go first, and the
table is truncated to rules.max_rules. Both the rule table and the plain
blocked-domain list are replaced atomically; a failed run leaves the
previous files untouched.

Examples:
  tinyguard compile                             # Use paths from config
  tinyguard compile -i trackers.yaml -o out.json
  tinyguard compile --max-rules 5000 --json`,
	Args: cobra.NoArgs,
	RunE: runCompile,
}

func init() {
	rootCmd.AddCommand(compileCmd)
	f := compileCmd.Flags()
	f.StringVarP(&compileFlags.input, "input", "i", "", "Tracker list document (default catalog.path)")
	f.StringVarP(&compileFlags.output, "output", "o", "", "Rule table output (default rules.output)")
	f.StringVar(&compileFlags.blockedList, "blocked-list", "", "Blocked domain list output (default rules.blocked_list)")
	f.BoolVar(&compileFlags.noBlockedList, "no-blocked-list", false, "Do not write the blocked domain list")
	f.IntVar(&compileFlags.maxRules, "max-rules", 0, "Rule cap (default rules.max_rules)")
	f.BoolVar(&compileFlags.jsonOutput, "json", false, "Print stats as JSON")
}

func runCompile(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	input := usecase.CompileRulesInput{
		TrackerListPath: app.CatalogPath(),
		Destination:     app.RulesDestination(),
		Options:         app.CompileOptions(),
	}
	if compileFlags.input != "" {
		input.TrackerListPath = compileFlags.input
	}
	if compileFlags.output != "" {
		input.Destination.RulesPath = compileFlags.output
	}
	if compileFlags.blockedList != "" {
		input.Destination.BlockedListPath = compileFlags.blockedList
	}
	if compileFlags.noBlockedList {
		input.Destination.BlockedListPath = ""
	}
	if cmd.Flags().Changed("max-rules") {
		input.Options.MaxRules = compileFlags.maxRules
	}

	uc := usecase.NewCompileRulesUseCase(app.TrackerLists, ruleset.NewFileWriter())
	out, err := uc.Execute(app.Ctx(), input)
	if err != nil {
		return err
	}

	if compileFlags.jsonOutput {
		return printJSON(out.Table.Stats)
	}

	outputs := []string{input.Destination.RulesPath}
	if input.Destination.BlockedListPath != "" {
		outputs = append(outputs, input.Destination.BlockedListPath)
	}
	fmt.Println(app.Theme.RenderCompileStats(out.Table.Stats, outputs...))
	return nil
}
