package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/ukaji3/curvegen-go/pkg/curvegen"
	"github.com/ukaji3/curvegen-go/pkg/curvegen/document"
	"github.com/ukaji3/curvegen-go/pkg/curvegen/models"
	"github.com/ukaji3/curvegen-go/pkg/curvegen/output"
	"github.com/ukaji3/curvegen-go/pkg/curvegen/series"
)

func newExportCmd(c *cli) *cobra.Command {
	var (
		outputPath string
		format     string
		pretty     bool
	)

	cmd := &cobra.Command{
		Use:   "export <document>",
		Short: "Export a curve document as a daily time series",
		Long: heredoc.Doc(`
			Export samples every curve with points once per day over six months
			from the start date and writes the resulting table.

			Without --output the file is named curve_data_<yyyyMMdd_HHmmss> with
			the format's extension and written to --out-dir. Use --output - to
			write JSON or CSV to stdout.
		`),
		Example: heredoc.Doc(`
			# Export to xlsx in the current directory
			$ curvegen export curves.yaml

			# Override the axis and start date
			$ curvegen export curves.yaml --y-min -10 --y-max 10 --start 2024-01-01

			# Print JSON rows
			$ curvegen export curves.yaml --format json --pretty -o -
		`),
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return c.bindFlags(cmd, map[string]string{
				"axis.y-min": "y-min",
				"axis.y-max": "y-max",
				"start-date": "start",
				"out-dir":    "out-dir",
				"sheet":      "sheet",
				"mode":       "mode",
			})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := document.Load(args[0])
			if err != nil {
				return fmt.Errorf("failed to load document: %w", err)
			}
			if err := c.applyOverrides(doc); err != nil {
				return err
			}

			f := output.Format(format)
			switch f {
			case output.FormatXLSX, output.FormatJSON, output.FormatCSV:
			default:
				return fmt.Errorf("%w: %s (must be xlsx, json, or csv)", curvegen.ErrInvalidFormat, format)
			}

			opts, err := c.options()
			if err != nil {
				return err
			}

			res, err := curvegen.Export(doc)
			if err != nil {
				return err
			}

			path := outputPath
			if path == "" {
				path = filepath.Join(c.v.GetString("out-dir"), output.Filename(c.now(), f))
			}

			if err := writeResult(cmd.OutOrStdout(), res, opts, f, path, pretty); err != nil {
				return fmt.Errorf("export failed: %w", err)
			}

			c.log.Info("Exported", "path", path, "format", f, "curves", len(res.Curves), "rows", len(res.Rows))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path, - for stdout (default: generated name in --out-dir)")
	cmd.Flags().StringVar(&format, "format", string(output.FormatXLSX), "Output format: xlsx, json, csv")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().String("out-dir", ".", "Directory for generated file names")
	cmd.Flags().String("mode", string(curvegen.ModeStandard), "Workbook mode: light, standard, verbose")
	cmd.Flags().String("sheet", curvegen.DefaultSheetName, "Data sheet name")
	cmd.Flags().String("start", "", "Start date (yyyy-MM-dd), overrides the document")
	cmd.Flags().Float64("y-min", 0, "Y axis minimum, overrides the document")
	cmd.Flags().Float64("y-max", 100, "Y axis maximum, overrides the document")

	return cmd
}

// applyOverrides replaces document settings with explicitly configured ones.
func (c *cli) applyOverrides(doc *models.Document) error {
	if c.v.IsSet("start-date") {
		start, err := time.Parse(series.DateLayout, c.v.GetString("start-date"))
		if err != nil {
			return fmt.Errorf("invalid start date: %w", err)
		}
		doc.StartDate = start
	}
	if c.v.IsSet("axis.y-min") {
		doc.Axis.YMin = c.v.GetFloat64("axis.y-min")
	}
	if c.v.IsSet("axis.y-max") {
		doc.Axis.YMax = c.v.GetFloat64("axis.y-max")
	}
	return nil
}

func writeResult(stdout io.Writer, res *curvegen.Result, opts curvegen.Options, f output.Format, path string, pretty bool) error {
	if f == output.FormatXLSX {
		if path == "-" {
			return curvegen.WriteWorkbookTo(res, opts, stdout)
		}
		return curvegen.WriteWorkbook(res, opts, path)
	}

	w := stdout
	if path != "-" {
		file, err := os.Create(path)
		if err != nil {
			return err
		}
		defer file.Close()
		w = file
	}

	if f == output.FormatCSV {
		return output.WriteCSV(w, res.Rows)
	}

	data, err := output.ToJSON(res.Rows, pretty)
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
