package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/wymowa/internal/cli"
	"codeberg.org/snonux/wymowa/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	// Fill in everything not given on the command line from config/env
	cli.ApplyConfig(cmd, flags)

	proc, err := processor.NewProcessor(flags)
	if err != nil {
		return err
	}

	// Handle --list-phones flag
	if flags.ListPhones {
		return proc.ListPhones()
	}

	ctx := cmd.Context()
	switch {
	case flags.BatchFile != "":
		return proc.ProcessBatch(ctx)
	case len(args) > 0:
		return proc.ProcessWords(ctx, args)
	default:
		return fmt.Errorf("no words given: pass words as arguments or use --batch")
	}
}
