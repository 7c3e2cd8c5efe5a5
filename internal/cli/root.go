// Package cli implements the phonefmt command line tool.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"contact_phone_backend/platform/config"
	"contact_phone_backend/platform/phone"

	"github.com/spf13/cobra"
)

// AppName is the binary name.
const AppName = "phonefmt"

// ErrInvalidNumbers is returned by validate when at least one input failed.
var ErrInvalidNumbers = errors.New("one or more numbers are invalid")

type options struct {
	rulesFile string
	region    string
	formatter phone.Formatter
}

// NewRootCmd builds the command tree. Inputs come from arguments, or one per
// line from the command's input stream when no arguments are given.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   AppName,
		Short: "Format and validate phone numbers for contact lists",
		Long: `phonefmt formats phone numbers for display (+86 156-3394-4345),
strips formatting back to digits, removes trunk zeros and validates numbers.
Numbers are read from arguments, or one per line from stdin.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			rules, _, err := config.LoadPhoneRules(opts.rulesFile, opts.region)
			if err != nil {
				return err
			}
			opts.formatter = phone.New(rules)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.rulesFile, "rules", os.Getenv("PHONE_RULES_FILE"), "YAML rules file")
	rootCmd.PersistentFlags().StringVar(&opts.region, "region", os.Getenv("PHONE_DEFAULT_REGION"), "default ISO region for metadata lookups")

	rootCmd.AddCommand(
		newFormatCmd(opts),
		newStripCmd(opts),
		newDelZeroCmd(opts),
		newValidateCmd(opts),
		newDescribeCmd(opts),
	)

	return rootCmd
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// eachInput calls fn for every argument, or for every non-blank stdin line.
func eachInput(cmd *cobra.Command, args []string, fn func(string) error) error {
	if len(args) > 0 {
		for _, arg := range args {
			if err := fn(arg); err != nil {
				return err
			}
		}
		return nil
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := fn(line); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

func writeLine(w io.Writer, a ...any) error {
	_, err := fmt.Fprintln(w, a...)
	return err
}
