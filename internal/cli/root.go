package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/grivetoutdoors/salestrainer/internal/config"
	"github.com/grivetoutdoors/salestrainer/internal/observability"
	"github.com/grivetoutdoors/salestrainer/internal/persona"
	"github.com/grivetoutdoors/salestrainer/internal/store"
)

var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "salestrainer",
	Short: "Role-play retail sales training against a simulated customer",
	RunE:  runTrain,
}

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Run an interactive training session",
	RunE:  runTrain,
}

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show recorded session scores, best first",
	RunE:  runLeaderboard,
}

var personasCmd = &cobra.Command{
	Use:   "personas",
	Short: "List the customer persona catalog",
	RunE:  runPersonas,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("salestrainer %s\n", Version)
	},
}

var (
	flagName    string
	flagPersona string
	flagModel   string
	flagStore   string
	flagVerbose bool
	flagLimit   int
)

func init() {
	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(personasCmd)
	rootCmd.AddCommand(versionCmd)

	for _, cmd := range []*cobra.Command{rootCmd, trainCmd} {
		cmd.Flags().StringVarP(&flagName, "name", "n", "", "Employee name (prompted when omitted)")
		cmd.Flags().StringVarP(&flagPersona, "persona", "p", "", "Force a customer persona instead of random assignment")
		cmd.Flags().StringVarP(&flagModel, "model", "m", "", "Customer model: haiku, sonnet (default from TRAINER_MODEL or haiku)")
		cmd.Flags().StringVarP(&flagStore, "store", "s", "", "Score store: appsheet, dynamo, none (default from STORE_BACKEND)")
		cmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable detailed logging")
	}
	leaderboardCmd.Flags().IntVarP(&flagLimit, "limit", "l", 20, "Maximum rows to display")
	leaderboardCmd.Flags().StringVarP(&flagStore, "store", "s", "", "Score store: appsheet, dynamo (default from STORE_BACKEND)")
}

func Execute() error {
	return rootCmd.Execute()
}

func runTrain(cmd *cobra.Command, args []string) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("training sessions are interactive — run from a terminal")
	}

	cfg := config.Load()
	logger := observability.InitLogger(flagVerbose)

	model := cfg.Anthropic.Model
	if flagModel != "" {
		model = flagModel
	}
	if model != "haiku" && model != "sonnet" {
		return fmt.Errorf("invalid model %q: must be haiku or sonnet", model)
	}
	if cfg.Anthropic.APIKey == "" && os.Getenv("ANTHROPIC_API_KEY") == "" {
		return fmt.Errorf("missing ANTHROPIC_API_KEY — set it in the environment or a .env file")
	}

	var p persona.Persona
	if flagPersona != "" {
		found, ok := persona.Find(flagPersona)
		if !ok {
			return fmt.Errorf("unknown persona %q — run 'salestrainer personas' to list them", flagPersona)
		}
		p = found
	} else {
		p = persona.Random()
	}

	ctx := cmd.Context()
	tp, err := observability.InitTracer(ctx, "salestrainer", Version)
	if err != nil {
		logger.Warn("tracing disabled", "error", err)
	} else if tp != nil {
		defer tp.Shutdown(context.Background())
	}

	reportStore, archive, err := buildStore(ctx, cfg, logger)
	if err != nil {
		return err
	}

	return runChat(ctx, chatOptions{
		EmployeeName: strings.TrimSpace(flagName),
		Persona:      p,
		Model:        model,
		Store:        reportStore,
		Archive:      archive,
		Logger:       logger,
	})
}

func runLeaderboard(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	logger := observability.InitLogger(flagVerbose)

	ctx := cmd.Context()
	reportStore, _, err := buildStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	if _, ok := reportStore.(store.Nop); ok {
		return fmt.Errorf("no score store configured — set APPSHEET_APP_ID/APPSHEET_KEY or DYNAMO_TABLE")
	}

	reports, err := reportStore.ListReports(ctx)
	if err != nil {
		return fmt.Errorf("fetch leaderboard: %w", err)
	}

	ranked := store.Rank(reports)
	if flagLimit > 0 && len(ranked) > flagLimit {
		ranked = ranked[:flagLimit]
	}

	fmt.Println("\nGrivet Sales Trainer Leaderboard")
	fmt.Printf("%s\n", strings.Repeat("─", 78))
	fmt.Printf("%-4s %-20s %-28s %-6s %s\n", "#", "EMPLOYEE", "PERSONA", "SCORE", "WHEN")
	for i, rep := range ranked {
		fmt.Printf("%-4d %-20s %-28s %-6d %s\n",
			i+1, clip(rep.EmployeeName, 20), clip(rep.Persona, 28), rep.Total, rep.Timestamp)
	}
	fmt.Println()
	return nil
}

func runPersonas(cmd *cobra.Command, args []string) error {
	fmt.Println("\nCustomer personas:")
	for _, p := range persona.Catalog {
		fmt.Printf("\n  %s\n", p.Label)
		fmt.Printf("    %s\n", p.Profile)
	}
	fmt.Println()
	return nil
}

// buildStore resolves the persistence backend from flags and config. A
// missing or unconfigured backend degrades to the no-op store with a warning
// rather than blocking training.
func buildStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (store.Store, *store.Archive, error) {
	backend := cfg.Store.Backend
	if flagStore != "" {
		backend = flagStore
	}

	var archive *store.Archive
	needAWS := backend == "dynamo" || cfg.Archive.Bucket != ""

	var awsCfg awsConfigResult
	if needAWS {
		loaded, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			logger.Warn("aws config unavailable, disabling aws-backed persistence", "error", err)
			needAWS = false
		} else {
			awsCfg = awsConfigResult{cfg: loaded, ok: true}
		}
	}

	if awsCfg.ok && cfg.Archive.Bucket != "" {
		archive = store.NewArchive(s3.NewFromConfig(awsCfg.cfg), cfg.Archive.Bucket)
	}

	switch backend {
	case "appsheet":
		if !cfg.AppSheetConfigured() {
			logger.Warn("appsheet not configured, scores will not be recorded")
			return store.Nop{}, archive, nil
		}
		return store.NewAppSheet(cfg.AppSheet.AppID, cfg.AppSheet.AccessKey, cfg.AppSheet.Table), archive, nil
	case "dynamo":
		if !awsCfg.ok || cfg.Store.DynamoTable == "" {
			logger.Warn("dynamo not configured, scores will not be recorded")
			return store.Nop{}, archive, nil
		}
		return store.NewDynamo(dynamodb.NewFromConfig(awsCfg.cfg), cfg.Store.DynamoTable), archive, nil
	case "none", "":
		return store.Nop{}, archive, nil
	default:
		return nil, nil, fmt.Errorf("invalid store %q: must be appsheet, dynamo, or none", backend)
	}
}

type awsConfigResult struct {
	cfg aws.Config
	ok  bool
}

func clip(s string, max int) string {
	runes := []rune(s)
	if len(runes) > max {
		return string(runes[:max-1]) + "…"
	}
	return s
}
