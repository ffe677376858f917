package main

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/ukaji3/curvegen-go/pkg/curvegen/document"
	"github.com/ukaji3/curvegen-go/pkg/curvegen/editor"
)

func newCaptureCmd(c *cli) *cobra.Command {
	var (
		curveName  string
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "capture <document> <gestures>",
		Short: "Replay recorded pointer strokes into a curve",
		Long: heredoc.Doc(`
			Capture replays recorded pointer strokes (pixel samples in a drawing
			region) through the gesture filter and commits each stroke to the
			named curve, replacing its points. The curve is created when the
			document has no curve with that name.

			The updated document is written to --output, or to stdout in the
			input document's format.
		`),
		Example: heredoc.Doc(`
			# Draw the strokes in pointer.yaml into "Sales"
			$ curvegen capture curves.yaml pointer.yaml --curve Sales -o curves.yaml
		`),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := document.FormatFromPath(args[0])
			if err != nil {
				return err
			}
			doc, err := document.Load(args[0])
			if err != nil {
				return fmt.Errorf("failed to load document: %w", err)
			}
			gestures, err := document.LoadGestures(args[1])
			if err != nil {
				return fmt.Errorf("failed to load gestures: %w", err)
			}

			set := editor.FromDocument(doc)
			if i := doc.CurveByName(curveName); i >= 0 {
				if err := set.Select(doc.Curves[i].ID); err != nil {
					return err
				}
			} else {
				added := set.Add()
				if curveName != "" {
					if err := set.Rename(added.ID, curveName); err != nil {
						return err
					}
					added.Name = curveName
				}
				c.log.Info("Created curve", "name", added.Name, "id", added.ID)
			}

			for i, stroke := range gestures.PixelStrokes() {
				st, err := set.BeginStroke(gestures.Region)
				if err != nil {
					return err
				}
				st.Replay(stroke)
				points, err := set.EndStroke(st)
				if err != nil {
					return err
				}
				c.log.Debug("Replayed stroke", "stroke", i, "samples", len(stroke), "points", len(points))
			}

			active, _ := set.Active()
			c.log.Info("Captured", "curve", active.Name, "points", len(active.Points))

			if outputPath == "" || outputPath == "-" {
				return document.Encode(cmd.OutOrStdout(), set.Document(), format)
			}
			return document.Save(outputPath, set.Document())
		},
	}

	cmd.Flags().StringVar(&curveName, "curve", "", "Name of the curve to draw into (created when missing)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output document path (default: stdout)")

	return cmd
}
