package main

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ynaga-lab/jagger-go/internal/model"
	"github.com/ynaga-lab/jagger-go/internal/tokenize"
	"github.com/ynaga-lab/jagger-go/logging"
)

var rootCmd = &cobra.Command{
	Use:   "jagger",
	Short: "jagger tokenizes Japanese text read from stdin",
	RunE:  runTokenize,
}

func init() {
	rootCmd.Flags().StringP("model", "m", "patterns", "compiled dictionary directory+basename")
	rootCmd.Flags().BoolP("wakati", "w", false, "print space-separated surfaces only, no features")
	rootCmd.Flags().BoolP("full", "f", false, "buffer all of stdin and tokenize concurrently instead of streaming line by line")
	rootCmd.Flags().IntP("workers", "j", 4, "worker count used with --full")
	rootCmd.Flags().StringP("log-level", "l", "info", "log level (trace, debug, info, warn, error, fatal)")

	viper.SetEnvPrefix("jagger")
	viper.BindEnv("model")
}

// Execute runs the root command, returning the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

// modelPath resolves the dictionary path: an explicitly passed --model
// flag wins, then the JAGGER_MODEL environment variable, then the flag's
// own default.
func modelPath(cmd *cobra.Command) string {
	if cmd.Flags().Changed("model") {
		v, _ := cmd.Flags().GetString("model")
		return v
	}
	if v := viper.GetString("model"); v != "" {
		return v
	}
	v, _ := cmd.Flags().GetString("model")
	return v
}

func runTokenize(cmd *cobra.Command, args []string) error {
	logLevel, _ := cmd.Flags().GetString("log-level")
	logging.SetLevel(logLevel)

	path := modelPath(cmd)
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	if base == "" {
		base = "patterns"
	}

	m, err := model.Load(dir, base)
	if err != nil {
		logging.Error().Err(err).Str("model", path).Msg("failed to load dictionary")
		return err
	}
	tok := tokenize.New(m.Dictionary())

	wakati, _ := cmd.Flags().GetBool("wakati")
	full, _ := cmd.Flags().GetBool("full")
	workers, _ := cmd.Flags().GetInt("workers")

	if full {
		return runBuffered(cmd.Context(), tok, wakati, workers)
	}
	return runStreaming(tok, wakati)
}
