package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/servline/menuscan/internal/config"
	"github.com/servline/menuscan/internal/home"
	"github.com/servline/menuscan/internal/ingest"
	"github.com/servline/menuscan/internal/output"
	"github.com/servline/menuscan/internal/pipeline"
	"github.com/servline/menuscan/internal/pipeline/stages"
	"github.com/servline/menuscan/internal/providers"
	"github.com/servline/menuscan/internal/schema"
	"github.com/servline/menuscan/internal/semantic"
	"github.com/servline/menuscan/internal/svcctx"
	"github.com/servline/menuscan/internal/types"
	"github.com/servline/menuscan/internal/vocab"
)

var (
	applyRepairs bool
	aiRepair     bool
	saveReport   bool
	verbose      bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <menu-file>",
	Short: "Analyze an OCR'd menu text or JSON file",
	Long: `Analyze runs the full semantic pipeline over a menu file and prints
the structured result.

The input may be plain text (one OCR line per row) or JSON (an array of
line strings or objects, or {"lines": [...]}).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := newServices()
		if err != nil {
			return err
		}
		ctx := svcctx.WithServices(cmd.Context(), svcs)
		cfg := svcs.Config.Get()

		lines, err := ingest.ReadFile(args[0])
		if err != nil {
			return err
		}

		if err := loadVocabOverrides(cfg, svcs.Home, svcs.Logger); err != nil {
			return err
		}

		if !cmd.Flags().Changed("apply-repairs") {
			applyRepairs = cfg.Output.ApplyRepairs
		}

		reg := pipeline.NewRegistry()
		if err := stages.RegisterAll(reg, stages.Options{
			Crossitem:    cfg.Analysis.Crossitem(),
			ApplyRepairs: applyRepairs,
		}); err != nil {
			return err
		}

		doc := &types.Document{Lines: lines}
		if err := reg.RunAll(ctx, doc); err != nil {
			return err
		}

		if aiRepair || cfg.AIRepair.Enabled {
			if err := runAIRepair(ctx, svcs, cfg, doc); err != nil {
				return err
			}
		}

		data, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		if err := schema.ValidateDocument(data); err != nil {
			return fmt.Errorf("result failed schema validation: %w", err)
		}

		if saveReport {
			if err := saveToHome(svcs.Home, args[0], data); err != nil {
				return err
			}
		}

		return output.Write(doc)
	},
}

func init() {
	analyzeCmd.Flags().BoolVar(&applyRepairs, "apply-repairs", false, "apply auto-fixable repairs to items")
	analyzeCmd.Flags().BoolVar(&aiRepair, "ai-repair", false, "use the configured LLM to propose fixes for garbled names")
	analyzeCmd.Flags().BoolVar(&saveReport, "save", false, "save the JSON result under the menuscan home reports directory")
	analyzeCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// newServices builds the service bundle that flows through context.
func newServices() (*svcctx.Services, error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	hd, err := home.New(homeDir)
	if err != nil {
		return nil, err
	}

	mgr, err := config.NewManager(cfgFile)
	if err != nil {
		return nil, err
	}
	cfg := mgr.Get()

	registry := providers.NewRegistryFromConfig(repairProviderConfig(cfg))
	registry.SetLogger(logger)

	// Keep providers in sync when the config file changes on disk.
	mgr.OnChange(func(next *config.Config) {
		registry.Reload(repairProviderConfig(next))
	})

	return &svcctx.Services{
		Config:   mgr,
		Registry: registry,
		Logger:   logger,
		Home:     hd,
	}, nil
}

// repairProviderConfig maps the ai_repair config section onto provider
// registry settings. The --ai-repair flag forces the provider on for the
// current run even when the config leaves it disabled.
func repairProviderConfig(cfg *config.Config) providers.RegistryConfig {
	name := cfg.AIRepair.Provider
	if name == "" {
		return providers.RegistryConfig{}
	}
	return providers.RegistryConfig{
		Repairers: map[string]providers.RepairProviderConfig{
			name: {
				Type:       name,
				Model:      cfg.AIRepair.Model,
				APIKey:     cfg.ResolveAPIKey(name),
				RateLimit:  cfg.AIRepair.RateLimit,
				MaxRetries: cfg.AIRepair.MaxRetries,
				Enabled:    cfg.AIRepair.Enabled || aiRepair,
			},
		},
	}
}

// loadVocabOverrides merges site-local vocabulary from the configured path,
// falling back to the home directory file.
func loadVocabOverrides(cfg *config.Config, hd *home.Dir, logger *slog.Logger) error {
	path := cfg.Vocab.OverridesPath
	if path == "" && hd.VocabExists() {
		path = hd.VocabPath()
	}
	if path == "" {
		return nil
	}
	if err := vocab.LoadOverrides(path); err != nil {
		return fmt.Errorf("failed to load vocab overrides: %w", err)
	}
	logger.Debug("loaded vocab overrides", "path", path)
	return nil
}

// runAIRepair asks the configured provider for garbled-name fixes and, when
// repairs are being applied, folds the proposals into the document.
func runAIRepair(ctx context.Context, svcs *svcctx.Services, cfg *config.Config, doc *types.Document) error {
	repairer, err := svcs.Registry.Get(cfg.AIRepair.Provider)
	if err != nil {
		return fmt.Errorf("ai repair requested but no provider is available: %w", err)
	}

	proposed, err := providers.RepairDocumentNames(ctx, repairer, doc, svcs.Logger)
	if err != nil {
		return err
	}
	svcs.Logger.Info("ai repair complete", "proposals", proposed)

	if proposed == 0 || !applyRepairs {
		return nil
	}

	result := semantic.ApplyAutoRepairs(doc.Items)
	if doc.Report != nil && doc.Report.AutoRepairs != nil {
		result.TotalItemsRepaired += doc.Report.AutoRepairs.TotalItemsRepaired
		result.RepairsApplied += doc.Report.AutoRepairs.RepairsApplied
	}
	doc.Summary = semantic.Summarize(doc.Items)
	doc.Report = semantic.GenerateReport(doc, result)
	return nil
}

// saveToHome writes the JSON result under ~/.menuscan/reports.
func saveToHome(hd *home.Dir, inputPath string, data []byte) error {
	if err := hd.EnsureExists(); err != nil {
		return err
	}
	name := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	path := hd.ReportPath(name, "json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	fmt.Fprintf(os.Stderr, "saved report to %s\n", path)
	return nil
}
