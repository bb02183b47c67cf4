package main

import (
	"fmt"
	"strings"

	"github.com/Yotrages/exquisite-wears/pkg/validate"
	"github.com/spf13/cobra"
)

// newRootCmd — CLI проверки слота корзины (JSON-массив) или потока позиций (JSONL).
// Канонический вывод идёт в stdout, сводка в stderr.
func newRootCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:           "validate-cart [file]",
		Short:         "Validate a persisted cart slot or a JSONL stream of cart lines",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := validate.InputFormat(strings.ToLower(strings.TrimSpace(format)))
			switch f {
			case validate.FormatAuto, validate.FormatJSON, validate.FormatJSONL:
			default:
				return fmt.Errorf("unknown format %q (want auto|json|jsonl)", format)
			}

			// без файла читаем stdin, по умолчанию как jsonl
			path := "/dev/stdin"
			if len(args) == 1 {
				path = args[0]
			} else if f == validate.FormatAuto {
				f = validate.FormatJSONL
			}

			summary, err := validate.ValidateFile(cmd.Context(), validate.NewCartValidator(), path, f, cmd.OutOrStdout())
			if err != nil {
				return fmt.Errorf("validation: %w (%s)", err, summary)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "validation ok (%s)\n", summary)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(validate.FormatAuto), "input format: auto|json|jsonl")
	return cmd
}
