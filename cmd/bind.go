package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"model-binder/core/config"
	"model-binder/core/database"
	"model-binder/core/logger"
	"model-binder/core/request"
	"model-binder/core/storage"
	"model-binder/feature/modelbind"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// bindCmd represents the bind command
var bindCmd = &cobra.Command{
	Use:   "bind <model> [file]",
	Short: "Bind a model from a document, stored object, environment or query",
	Long: `Binds one of the catalog models and prints the value with its problems as JSON.

Input comes from exactly one of:
  a YAML/JSON file argument
  --object   a document in the configured storage bucket
  --env      environment variables with the given prefix (and .env)
  --query    every row of a SQL query on the configured database`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		model := args[0]
		objectName, _ := cmd.Flags().GetString("object")
		envPrefix, _ := cmd.Flags().GetString("env")
		query, _ := cmd.Flags().GetString("query")

		cfg, _, err := config.LoadConfig(configDir)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()

		catalog := modelbind.DefaultCatalog()
		var store storage.Client
		if objectName != "" {
			if store, err = storage.NewClient(cfg.Storage); err != nil {
				return fmt.Errorf("failed to create storage client: %w", err)
			}
		}
		svc := modelbind.NewService(catalog, store, cfg.Storage, logg)

		var result any
		switch {
		case query != "":
			t, ok := catalog.Lookup(model)
			if !ok {
				return modelbind.NewUnknownModelError(model)
			}
			db, err := database.Connect(ctx, cfg.Database)
			if err != nil {
				return err
			}
			rows, err := database.RecordsType(ctx, db, logg, t, query)
			if err != nil {
				return err
			}
			result = rows
		case objectName != "":
			result, err = svc.BindObject(ctx, model, objectName)
		case envPrefix != "":
			data, envErr := request.FromEnv(envPrefix, envFiles(configDir)...)
			if envErr != nil {
				return fmt.Errorf("failed to read environment: %w", envErr)
			}
			result, err = svc.Bind(model, data)
		case len(args) == 2:
			f, openErr := os.Open(args[1])
			if openErr != nil {
				return openErr
			}
			defer f.Close()
			data, docErr := request.FromDocument(args[1], f)
			if docErr != nil {
				return fmt.Errorf("failed to parse %s: %w", args[1], docErr)
			}
			result, err = svc.Bind(model, data)
		default:
			return fmt.Errorf("no input: pass a file, --object, --env or --query")
		}
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			logg.Error("Failed to encode result", zap.Error(err))
			return err
		}
		return nil
	},
}

// envFiles returns the .env file in dir when it exists.
func envFiles(dir string) []string {
	path := filepath.Join(dir, ".env")
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	return []string{path}
}

func init() {
	RootCmd.AddCommand(bindCmd)
	bindCmd.Flags().String("object", "", "Object name in the storage bucket")
	bindCmd.Flags().String("env", "", "Environment variable prefix, e.g. APP_")
	bindCmd.Flags().String("query", "", "SQL query whose rows are bound")
}
