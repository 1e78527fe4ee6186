package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/onflow/flow-keccak/crypto/keccak"
	"github.com/onflow/flow-keccak/utils/logging"
)

const envPrefix = "KECCAKSUM"

var rootCmd = &cobra.Command{
	Use:   "keccaksum [file...]",
	Short: "Print Keccak digests of files, standard input or bit strings",
	Long: `Print Keccak digests of files, standard input or bit strings.

With no file, or when file is -, read standard input. Flags can also be set
through the environment, e.g. KECCAKSUM_BITS=512 or KECCAKSUM_LOG_LEVEL=debug.`,
	RunE:         run,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	addFlags(rootCmd.Flags())
	_ = viper.BindPFlags(rootCmd.Flags())

	cobra.OnInitialize(initConfig)
}

func addFlags(flags *pflag.FlagSet) {
	flags.Int("bits", int(keccak.Keccak256),
		"digest length in bits: 224, 256, 384, 512, or 0 for arbitrary-length output")
	flags.Bool("sha3", false,
		"compute SHA3 instead of Keccak (fixed digest lengths only)")
	flags.Int("bit-length", -1,
		"hash only the first n bits of the input (single input only)")
	flags.String("binary", "",
		"hash the given string of 0 and 1 characters instead of files")
	flags.Int("output-bits", 0,
		"number of output bits to squeeze when --bits is 0")
	flags.Int("jobs", 4, "number of inputs hashed concurrently")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
}

func initConfig() {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func run(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(viper.GetViper())

	log, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}

	err = cfg.Validate(len(args))
	if err != nil {
		return err
	}

	inputs, err := collectInputs(cfg, args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	log.Debug().
		Str("algorithm", algorithmName(cfg)).
		Int("inputs", len(inputs)).
		Int("jobs", cfg.Jobs).
		Msg("hashing inputs")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	results, err := hashInputs(ctx, log, cfg, inputs)
	for _, r := range results {
		if r.ok {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", r.digest.Hex(), r.name)
		}
	}
	return err
}
