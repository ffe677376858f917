package server

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"github.com/ukaji3/curvegen-go/pkg/curvegen"
	"github.com/ukaji3/curvegen-go/pkg/curvegen/document"
	"github.com/ukaji3/curvegen-go/pkg/curvegen/output"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ============================================================
// Handlers
// ============================================================

// handleRows returns the row table of a JSON curve document.
func (s *Server) handleRows(c fiber.Ctx) error {
	res, err := s.export(c)
	if err != nil {
		return s.fail(c, err)
	}

	data, err := output.ToJSON(res.Rows, false)
	if err != nil {
		s.log.Error("Failed to encode rows", "error", err)
		return s.fail(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(data)
}

// handleExport returns a JSON curve document as an xlsx attachment.
func (s *Server) handleExport(c fiber.Ctx) error {
	res, err := s.export(c)
	if err != nil {
		return s.fail(c, err)
	}

	var buf bytes.Buffer
	if err := curvegen.WriteWorkbookTo(res, s.cfg.Options, &buf); err != nil {
		s.log.Error("Failed to write workbook", "error", err)
		return s.fail(c, err)
	}

	filename := output.Filename(s.now(), output.FormatXLSX)
	s.log.Info("Exported workbook", "file", filename, "curves", len(res.Curves), "rows", len(res.Rows))

	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(buf.Bytes())
}

// export decodes the request body and runs the pipeline.
func (s *Server) export(c fiber.Ctx) (*curvegen.Result, error) {
	doc, err := document.Decode(bytes.NewReader(c.Body()), document.FormatJSON, s.now())
	if err != nil {
		return nil, &requestError{err: err}
	}
	return curvegen.Export(doc)
}

// requestError marks a malformed request body.
type requestError struct {
	err error
}

func (e *requestError) Error() string { return e.err.Error() }
func (e *requestError) Unwrap() error { return e.err }

// fail maps pipeline errors to responses. Serialization failures are
// reported generically.
func (s *Server) fail(c fiber.Ctx, err error) error {
	var reqErr *requestError
	switch {
	case errors.Is(err, curvegen.ErrNoCurves):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":       "No curves to export",
			"description": "Draw at least one curve before exporting.",
		})
	case errors.As(err, &reqErr),
		errors.Is(err, curvegen.ErrRoughnessRange),
		errors.Is(err, curvegen.ErrReservedName):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":       "export failed",
		"description": "An error occurred while exporting the data.",
	})
}
