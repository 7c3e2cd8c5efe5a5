package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newFormatCmd(opts *options) *cobra.Command {
	var delZero bool

	cmd := &cobra.Command{
		Use:   "format [number...]",
		Short: "Format numbers for display",
		Example: `  phonefmt format +8615633944345
  phonefmt format --del-zero "+86 0156 3394 4345"
  cat contacts.txt | phonefmt format`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return eachInput(cmd, args, func(number string) error {
				if delZero {
					return writeLine(cmd.OutOrStdout(), opts.formatter.FormatAndDelZero(number))
				}
				return writeLine(cmd.OutOrStdout(), opts.formatter.Format(number))
			})
		},
	}
	cmd.Flags().BoolVar(&delZero, "del-zero", false, "drop the trunk zero after the country code first")
	return cmd
}

func newStripCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "strip [number...]",
		Aliases: []string{"normalize"},
		Short:   "Remove every character except digits and +",
		RunE: func(cmd *cobra.Command, args []string) error {
			return eachInput(cmd, args, func(number string) error {
				return writeLine(cmd.OutOrStdout(), opts.formatter.RemoveFormat(number))
			})
		},
	}
}

func newDelZeroCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "del-zero [number...]",
		Short: "Remove the trunk zero written after the country code",
		RunE: func(cmd *cobra.Command, args []string) error {
			return eachInput(cmd, args, func(number string) error {
				return writeLine(cmd.OutOrStdout(), opts.formatter.DelZero(number))
			})
		},
	}
}

func newValidateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [number...]",
		Short: "Check numbers and exit non-zero if any is invalid",
		RunE: func(cmd *cobra.Command, args []string) error {
			invalid := 0
			err := eachInput(cmd, args, func(number string) error {
				status := "valid"
				if !opts.formatter.IsValid(number) {
					status = "invalid"
					invalid++
				}
				return writeLine(cmd.OutOrStdout(), status+"\t"+number)
			})
			if err != nil {
				return err
			}
			if invalid > 0 {
				return fmt.Errorf("%w: %d", ErrInvalidNumbers, invalid)
			}
			return nil
		},
	}
}

func newDescribeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "describe [number...]",
		Short: "Show E.164 form, region and line type from libphonenumber metadata",
		RunE: func(cmd *cobra.Command, args []string) error {
			return eachInput(cmd, args, func(number string) error {
				details, err := opts.formatter.Describe(number, "")
				if err != nil {
					return fmt.Errorf("%s: %w", number, err)
				}
				return writeLine(cmd.OutOrStdout(), strings.Join([]string{
					details.E164,
					details.Region,
					string(details.Type),
					fmt.Sprintf("valid=%t", details.Valid),
				}, "\t"))
			})
		},
	}
}
