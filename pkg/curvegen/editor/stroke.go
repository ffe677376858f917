package editor

import (
	"fmt"

	"github.com/ukaji3/curvegen-go/pkg/curvegen"
	"github.com/ukaji3/curvegen-go/pkg/curvegen/capture"
	"github.com/ukaji3/curvegen-go/pkg/curvegen/models"
)

// Stroke is a drag in progress on one curve.
type Stroke struct {
	*capture.Gesture
	curveID string
}

// CurveID returns the curve the stroke commits to.
func (st *Stroke) CurveID() string {
	return st.curveID
}

// BeginStroke binds a new gesture to the active curve. The binding is
// fixed: selecting another curve before EndStroke does not redirect it.
func (s *Set) BeginStroke(region capture.Region) (*Stroke, error) {
	if s.index(s.active) < 0 {
		return nil, fmt.Errorf("%w: no active curve", curvegen.ErrCurveNotFound)
	}
	return &Stroke{Gesture: capture.NewGesture(region), curveID: s.active}, nil
}

// EndStroke ends the gesture and commits its points to the stroke's curve
// as a whole. It returns the committed points.
func (s *Set) EndStroke(st *Stroke) ([]models.Point, error) {
	points := st.End()
	if err := s.Commit(st.curveID, points); err != nil {
		return nil, err
	}
	return points, nil
}
