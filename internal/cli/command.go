package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/wymowa/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wymowa [word...]",
		Short: "Polish phonemic transcription",
		Long: `wymowa transcribes Polish words into phones with IPA symbols
and articulatory features.

Examples:
  wymowa chrząszcz                  # Transcribe a single word
  wymowa --format ipa dąb kąt       # Print IPA for several words
  wymowa --batch words.txt          # Process words from a file
  wymowa --list-phones              # Show the phone inventory`,
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	home, _ := os.UserHomeDir()
	defaultExplainDir := filepath.Join(home, ".local", "state", "wymowa", "explanations")

	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.wymowa.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.Language, "language", "l", flags.Language, "Language of the input words (only pl supported)")
	cmd.Flags().StringVarP(&flags.Format, "format", "f", flags.Format, "Output format: text, ipa or yaml")
	cmd.Flags().StringVar(&flags.Separator, "separator", flags.Separator, "Separator between phone symbols in text output")
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Process words from file (whitespace separated, # starts a comment)")
	cmd.Flags().IntVarP(&flags.Workers, "workers", "w", flags.Workers, "Number of words transcribed in parallel")
	cmd.Flags().StringVar(&flags.LexiconDB, "lexicon", "", "SQLite lexicon to store transcriptions in")
	cmd.Flags().BoolVar(&flags.ListPhones, "list-phones", false, "List the phone inventory of the language")
	cmd.Flags().StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: debug, info, warn or error")

	// Transcription flags
	cmd.Flags().BoolVar(&flags.DenasalizeFinalE, "denasalize-final-e", false, "Pronounce word-final ę as a plain e")
	cmd.Flags().BoolVar(&flags.KeepCase, "keep-case", false, "Do not lower-case input words before transcription")

	// Explanation flags
	cmd.Flags().BoolVar(&flags.Explain, "explain", false, "Ask OpenAI for a learner-friendly explanation of each transcription")
	cmd.Flags().StringVar(&flags.ExplainDir, "explain-dir", defaultExplainDir, "Directory for explanation files")
	cmd.Flags().StringVar(&flags.ExplainModel, "openai-model", flags.ExplainModel, "OpenAI chat model used for explanations")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("transcription.language", cmd.Flags().Lookup("language"))
	viper.BindPFlag("transcription.denasalize_final_e", cmd.Flags().Lookup("denasalize-final-e"))
	viper.BindPFlag("transcription.keep_case", cmd.Flags().Lookup("keep-case"))
	viper.BindPFlag("output.format", cmd.Flags().Lookup("format"))
	viper.BindPFlag("output.separator", cmd.Flags().Lookup("separator"))
	viper.BindPFlag("batch.workers", cmd.Flags().Lookup("workers"))
	viper.BindPFlag("lexicon.path", cmd.Flags().Lookup("lexicon"))
	viper.BindPFlag("log.level", cmd.Flags().Lookup("log-level"))
	viper.BindPFlag("explain.enabled", cmd.Flags().Lookup("explain"))
	viper.BindPFlag("explain.directory", cmd.Flags().Lookup("explain-dir"))
	viper.BindPFlag("explain.openai_model", cmd.Flags().Lookup("openai-model"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".wymowa" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".wymowa")
	}

	// Environment variables
	viper.SetEnvPrefix("WYMOWA")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// ApplyConfig copies values from the configuration file or environment into
// flags the user did not set on the command line
func ApplyConfig(cmd *cobra.Command, flags *Flags) {
	apply := func(name string, set func()) {
		if !cmd.Flags().Changed(name) {
			set()
		}
	}

	apply("language", func() { flags.Language = viper.GetString("transcription.language") })
	apply("denasalize-final-e", func() { flags.DenasalizeFinalE = viper.GetBool("transcription.denasalize_final_e") })
	apply("keep-case", func() { flags.KeepCase = viper.GetBool("transcription.keep_case") })
	apply("format", func() { flags.Format = viper.GetString("output.format") })
	apply("separator", func() { flags.Separator = viper.GetString("output.separator") })
	apply("workers", func() { flags.Workers = viper.GetInt("batch.workers") })
	apply("lexicon", func() { flags.LexiconDB = viper.GetString("lexicon.path") })
	apply("log-level", func() { flags.LogLevel = viper.GetString("log.level") })
	apply("explain", func() { flags.Explain = viper.GetBool("explain.enabled") })
	apply("explain-dir", func() { flags.ExplainDir = viper.GetString("explain.directory") })
	apply("openai-model", func() { flags.ExplainModel = viper.GetString("explain.openai_model") })
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("explain.openai_key")
}
