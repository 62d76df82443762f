// Package cli provides the Cobra-based CLI for squad-catalog.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"squad_catalog/domain"
	"squad_catalog/store"
)

var (
	rootCmd = &cobra.Command{
		Use:   "squad-catalog",
		Short: "Import and browse the shared squad shopping catalog",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// IMPORTANT: allow tests to inject store
			if catalogStore != nil {
				return nil
			}

			if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("loading .env: %w", err)
			}

			if cfg := viper.GetString("config"); cfg != "" {
				viper.SetConfigFile(cfg)
				if err := viper.ReadInConfig(); err != nil {
					return err
				}
			}

			slog.SetDefault(newLogger(viper.GetString("log-level")))

			var err error
			catalogStore, err = store.NewStore(store.Options{
				Kind:     viper.GetString("store"),
				Path:     viper.GetString("store-file"),
				RedisURL: viper.GetString("redis-url"),
				RedisKey: viper.GetString("redis-key"),
			})
			return err
		},
	}

	catalogStore domain.CatalogStore
)

func newLogger(level string) *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// resetFlags puts every subcommand flag back to its default so one shell line
// does not leak --dry-run or --force into the next
func resetFlags(cmd *cobra.Command) {
	for _, c := range cmd.Commands() {
		c.LocalNonPersistentFlags().VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
		resetFlags(c)
	}
}

func init() {
	// shell
	shellCmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive shell mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := bufio.NewReader(os.Stdin)
			for {
				fmt.Print("catalog> ")
				line, err := r.ReadString('\n')
				if err != nil {
					return nil
				}
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}
				if line == "exit" || line == "quit" {
					return nil
				}
				rootCmd.SetArgs(strings.Fields(line))
				if err := rootCmd.Execute(); err != nil {
					fmt.Fprintln(os.Stderr, err)
				}
				rootCmd.SetArgs(nil)
				resetFlags(rootCmd)
			}
		},
	}
	rootCmd.AddCommand(shellCmd)

	rootCmd.PersistentFlags().String("store", "file", "store backend: memory|file|redis")
	rootCmd.PersistentFlags().String("store-file", "data/catalog.json", "file store path")
	rootCmd.PersistentFlags().String("redis-url", "", "redis store url, e.g. redis://localhost:6379/0")
	rootCmd.PersistentFlags().String("redis-key", store.DefaultRedisKey, "redis key holding the catalog document")
	rootCmd.PersistentFlags().String("config", "", "config file")
	rootCmd.PersistentFlags().String("log-level", "info", "log level")

	for _, name := range []string{"store", "store-file", "redis-url", "redis-key", "config", "log-level"} {
		viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
	viper.SetEnvPrefix("SQUAD_CATALOG")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func Execute() error {
	return rootCmd.Execute()
}
