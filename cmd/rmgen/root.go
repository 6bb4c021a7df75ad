package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = "1.0.0"

var (
	cfgFile  string
	gamedbF  string
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:          "rmgen",
	Short:        "Procedural map generator for Heroes-of-Might-and-Magic-style strategy maps",
	SilenceUsage: true,
	Long: `rmgen turns a declarative map template into a complete fhmap.FHMap: zone
layout, roads, heat-based object placement, and guards, all reproducible
from a single seed.

Examples:
  rmgen generate --template castle.yaml --seed 42 --out out.json
  rmgen generate --template castle.yaml --stop-after HeatMap --debug-svg preview.svg
  rmgen repl --template castle.yaml

Global Flags:
  --config string     config file (default $HOME/.rmgen.yaml)
  --gamedb string     path to the YAML catalog fixture (env: RMGEN_GAMEDB)
  --verbose           show per-stage timing`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCodeFor(err))
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.rmgen.yaml)")
	rootCmd.PersistentFlags().StringVar(&gamedbF, "gamedb", "", "path to the YAML catalog fixture (env: RMGEN_GAMEDB)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "show per-stage timing")

	viper.BindPFlag("gamedb", rootCmd.PersistentFlags().Lookup("gamedb"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(generateCmd, replCmd, versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.SetConfigType("yaml")
			viper.SetConfigName(".rmgen")
		}
	}

	viper.SetEnvPrefix("RMGEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintln(os.Stderr, "using config file:", viper.ConfigFileUsed())
	}
}

// resolvedGamedbPath returns the --gamedb flag's value if explicitly set,
// falling back to config-file/env precedence via viper.
func resolvedGamedbPath() (string, error) {
	path := gamedbF
	if !rootCmd.PersistentFlags().Changed("gamedb") {
		path = viper.GetString("gamedb")
	}
	if path == "" {
		return "", fmt.Errorf("a game catalog is required: set --gamedb, RMGEN_GAMEDB, or the config file's gamedb key")
	}
	return path, nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print rmgen's version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("rmgen version %s\n", version)
	},
}
