// formpricing - pricing estimation rules engine CLI
//
// Usage:
//   formpricing estimate --guide guide.yaml --answers answers.json
//   formpricing validate --rules rules.yaml
//   formpricing test --rules rules.yaml --answers sample.json --base 100
//   formpricing rules new --name "Large property surcharge"
//   formpricing serve
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"form-pricing/api"
	"form-pricing/decision/estimation"
	"form-pricing/decision/validation"
	"form-pricing/internal/guidefile"
	"form-pricing/pkg/confidence"
	"form-pricing/pkg/display"
	"form-pricing/pkg/guide"
	"form-pricing/pkg/platform"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Exit codes for CI and save-pipeline integration.
const (
	ExitSuccess      = 0
	ExitInvalidRules = 1
	ExitParseError   = 10
)

func main() {
	app := &cli.App{
		Name:    "formpricing",
		Usage:   "Pricing estimation rules engine for dynamic intake forms",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"FORMPRICING_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Value:   "console",
				Usage:   "Log format (console, json)",
				EnvVars: []string{"FORMPRICING_LOG_FORMAT"},
			},
		},

		Commands: []*cli.Command{
			estimateCommand(),
			validateCommand(),
			testCommand(),
			rulesCommand(),
			serveCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitParseError)
	}
}

// =============================================================================
// ESTIMATE COMMAND
// =============================================================================

func estimateCommand() *cli.Command {
	return &cli.Command{
		Name:  "estimate",
		Usage: "Estimate a price for one submission against a saved guide",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "guide",
				Aliases:  []string{"g"},
				Usage:    "Path to the price guide (YAML or JSON)",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "answers",
				Aliases:  []string{"a"},
				Usage:    "Path to the submitted answers (YAML or JSON)",
				Required: true,
			},
			&cli.IntFlag{
				Name:    "questions",
				Aliases: []string{"q"},
				Usage:   "Total number of questions on the form, for the confidence label",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "table",
				Usage:   "Output format (table, json)",
			},
		},
		Action: runEstimate,
	}
}

func runEstimate(c *cli.Context) error {
	logger := newLogger(c)

	g, err := guidefile.LoadGuide(c.String("guide"))
	if err != nil {
		return err
	}
	answers, err := guidefile.LoadAnswers(c.String("answers"))
	if err != nil {
		return err
	}

	engine := estimation.NewEngine(logger)
	est := engine.Estimate(answers, g)

	return output(c, est, g.Currency, c.Int("questions"))
}

// =============================================================================
// VALIDATE COMMAND
// =============================================================================

func validateCommand() *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "Structurally validate a rule list before saving it",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "rules",
				Aliases: []string{"r"},
				Usage:   "Path to a bare rule list (YAML or JSON)",
			},
			&cli.StringFlag{
				Name:    "guide",
				Aliases: []string{"g"},
				Usage:   "Path to a full guide whose rules should be validated",
			},
		},
		Action: runValidate,
	}
}

func runValidate(c *cli.Context) error {
	var rules []guide.Rule
	var err error

	switch {
	case c.String("rules") != "":
		rules, err = guidefile.LoadRules(c.String("rules"))
	case c.String("guide") != "":
		var g guide.PriceGuide
		g, err = guidefile.LoadGuide(c.String("guide"))
		rules = g.Rules
	default:
		return fmt.Errorf("either --rules or --guide is required")
	}
	if err != nil {
		return err
	}

	result := validation.ValidateRules(rules)
	if result.Valid {
		fmt.Printf("✓ %d rules are structurally valid\n", len(rules))
		return nil
	}

	fmt.Printf("✗ rule list has %d problem(s):\n", len(result.Errors))
	for _, msg := range result.Errors {
		fmt.Printf("  - %s\n", msg)
	}
	return cli.Exit("", ExitInvalidRules)
}

// =============================================================================
// TEST COMMAND
// =============================================================================

func testCommand() *cli.Command {
	return &cli.Command{
		Name:  "test",
		Usage: "Preview unsaved rules against sample answers (authoring aid)",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "rules",
				Aliases:  []string{"r"},
				Usage:    "Path to the rule list under edit (YAML or JSON)",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "answers",
				Aliases:  []string{"a"},
				Usage:    "Path to the sample answers (YAML or JSON)",
				Required: true,
			},
			&cli.Float64Flag{
				Name:  "base",
				Usage: "Base price to seed the preview guide with",
			},
			&cli.Float64Flag{
				Name:  "callout",
				Usage: "Callout fee to seed the preview guide with",
			},
			&cli.StringFlag{
				Name:  "currency",
				Value: "USD",
				Usage: "Currency code for the rendered output",
			},
			&cli.IntFlag{
				Name:    "questions",
				Aliases: []string{"q"},
				Usage:   "Total number of questions on the form, for the confidence label",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "table",
				Usage:   "Output format (table, json)",
			},
		},
		Action: runTest,
	}
}

func runTest(c *cli.Context) error {
	logger := newLogger(c)

	rules, err := guidefile.LoadRules(c.String("rules"))
	if err != nil {
		return err
	}
	answers, err := guidefile.LoadAnswers(c.String("answers"))
	if err != nil {
		return err
	}

	engine := estimation.NewEngine(logger)
	est := engine.Test(rules, answers, c.Float64("base"), c.Float64("callout"))

	return output(c, est, c.String("currency"), c.Int("questions"))
}

// =============================================================================
// RULES COMMAND
// =============================================================================

func rulesCommand() *cli.Command {
	return &cli.Command{
		Name:  "rules",
		Usage: "Authoring helpers for rule lists",
		Subcommands: []*cli.Command{
			{
				Name:  "new",
				Usage: "Print a rule scaffold with a fresh id",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "name",
						Value: "New rule",
						Usage: "Rule name",
					},
				},
				Action: runRulesNew,
			},
		},
	}
}

func runRulesNew(c *cli.Context) error {
	rule := guide.Rule{
		ID:      uuid.NewString(),
		Name:    c.String("name"),
		Enabled: true,
		Order:   0,
		Condition: guide.Condition{
			QuestionID: "question-id",
			Operator:   guide.OpEquals,
			Value:      guide.BoolValue(true),
		},
		Action: guide.Action{
			Type:  guide.ActionAdd,
			Value: guide.AmountAdjustment(0),
		},
	}

	out, err := yaml.Marshal([]guide.Rule{rule})
	if err != nil {
		return err
	}
	fmt.Print(string(out))
	return nil
}

// =============================================================================
// SERVE COMMAND
// =============================================================================

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the authoring preview API server",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Usage:   "Port to listen on (overrides FORMPRICING_PORT)",
				EnvVars: []string{"FORMPRICING_PORT"},
			},
		},
		Action: runServe,
	}
}

func runServe(c *cli.Context) error {
	logger := newLogger(c)

	cfg, err := api.ConfigFromEnv()
	if err != nil {
		return fmt.Errorf("failed to load server config: %w", err)
	}
	if port := c.Int("port"); port > 0 {
		cfg.Port = port
	}

	server := api.NewServer(logger, cfg)
	return server.StartWithGracefulShutdown()
}

// =============================================================================
// OUTPUT
// =============================================================================

type jsonOutput struct {
	Estimate     guide.PriceEstimate `json:"estimate"`
	Confidence   confidence.Level    `json:"confidence"`
	CustomerText string              `json:"customer_text"`
	InternalText string              `json:"internal_text"`
}

func output(c *cli.Context, est guide.PriceEstimate, currency string, totalQuestions int) error {
	switch c.String("format") {
	case "json":
		return outputJSON(est, currency, totalQuestions)
	default:
		return outputTable(est, currency, totalQuestions)
	}
}

func outputJSON(est guide.PriceEstimate, currency string, totalQuestions int) error {
	out := jsonOutput{
		Estimate:     est,
		Confidence:   confidence.ForEstimate(est, totalQuestions),
		CustomerText: display.ForCustomer(est, currency),
		InternalText: display.ForInternal(est, currency),
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func outputTable(est guide.PriceEstimate, currency string, totalQuestions int) error {
	fmt.Println()
	fmt.Println("PRICE ESTIMATE")
	fmt.Printf("  Range:       %s\n", display.ForInternal(est, currency))
	fmt.Printf("  Mode:        %s\n", est.Mode)
	fmt.Printf("  Confidence:  %s\n", confidence.ForEstimate(est, totalQuestions))

	if customer := display.ForCustomer(est, currency); customer != "" {
		fmt.Printf("  Customer:    %q\n", customer)
	} else {
		fmt.Println("  Customer:    (hidden)")
	}

	if est.Disclaimer != "" {
		fmt.Printf("  Disclaimer:  %s\n", est.Disclaimer)
	}

	fmt.Printf("\nAPPLIED RULES (%d)\n", len(est.AppliedRules))
	for _, r := range est.AppliedRules {
		line := fmt.Sprintf("  - %s: %s", r.RuleName, describeAdjustment(r.Adjustment))
		if r.Note != "" {
			line += fmt.Sprintf(" (%s)", r.Note)
		}
		fmt.Println(line)
	}
	if len(est.AppliedRules) == 0 {
		fmt.Println("  (none)")
	}

	fmt.Println()
	return nil
}

func describeAdjustment(adj guide.Adjustment) string {
	switch adj.Kind {
	case guide.AdjustmentAmount:
		return fmt.Sprintf("%g", adj.Amount)
	case guide.AdjustmentBand:
		return fmt.Sprintf("%g–%g", adj.Band.Min, adj.Band.Max)
	default:
		return "(none)"
	}
}

func newLogger(c *cli.Context) *slog.Logger {
	return platform.NewLogger(platform.ParseLevel(c.String("log-level")), c.String("log-format"))
}
