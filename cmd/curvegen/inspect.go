package main

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/ukaji3/curvegen-go/pkg/curvegen"
	"github.com/ukaji3/curvegen-go/pkg/curvegen/output"
)

func newInspectCmd(c *cli) *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:   "inspect <workbook.xlsx>",
		Short: "Print the rows of an exported workbook as JSON",
		Example: heredoc.Doc(`
			$ curvegen inspect curve_data_20240401_153000.xlsx --pretty
		`),
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return c.bindFlags(cmd, map[string]string{"sheet": "sheet"})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := output.ReadXLSX(args[0], c.v.GetString("sheet"))
			if err != nil {
				return fmt.Errorf("failed to read workbook: %w", err)
			}

			data, err := output.ToJSON(rows, pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.Flags().String("sheet", curvegen.DefaultSheetName, "Data sheet name")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	return cmd
}
