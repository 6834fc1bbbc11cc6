package advanced

import (
	"context"
	"log/slog"
	"math"

	"github.com/osuushi/heightmesh/dbg"
	"github.com/osuushi/heightmesh/internal"
)

// This implements greedy insertion refinement of a height field, after Garland
// and Heckbert 1995. The mesh starts as two triangles covering the raster.
// Each step pops the triangle whose candidate point deviates the most from the
// surface, inserts that point, and flips edges until the mesh is Delaunay
// again. The triangles touched by the step get new candidates, and the loop
// goes on until the worst deviation is within the configured error or a
// budget runs out.

type State int

const (
	Seeded State = iota
	Refining
	Terminated
)

func (s State) String() string {
	switch s {
	case Seeded:
		return "Seeded"
	case Refining:
		return "Refining"
	case Terminated:
		return "Terminated"
	}
	return "State(?)"
}

// A Triangulator owns one mesh being refined against a height field. It is not
// safe for concurrent use, but any number of triangulators may share a height
// field.
type Triangulator struct {
	mesh
	config Config
	state  State
	steps  int

	snapshot snapshot
}

// Seed a triangulator for hf. Nothing is refined until RunStep or Run is
// called.
func New(hf HeightField, config Config) (*Triangulator, error) {
	if err := checkHeightField(hf); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	t := &Triangulator{config: config}
	t.heightField = hf
	t.queue = internal.NewErrorQueue()
	t.seed()

	internal.Logger().Debug("triangulator seeded",
		"width", hf.Width(),
		"height", hf.Height(),
		"error", t.Error(),
	)
	return t, nil
}

// Take one refinement step. RunStep returns false without touching the mesh
// once the worst error is within budget, which also ends the triangulation.
//
// A step either splits the worst triangle, or, when the split would go over
// the point or triangle budget, marks that triangle unsplittable. Both count
// as a step and can be undone with ReverseStep.
func (t *Triangulator) RunStep() bool {
	return t.step(true)
}

// Take one step, saving the state for ReverseStep first when undoable is set.
// Otherwise any earlier snapshot is dropped, since it no longer matches the
// mesh.
func (t *Triangulator) step(undoable bool) bool {
	if t.queue.Len() == 0 || t.Error() <= t.config.MaxError {
		if t.state != Terminated {
			internal.Logger().Debug("triangulation terminated",
				"steps", t.steps,
				"error", t.Error(),
				"points", t.NumPoints(),
				"triangles", t.NumTriangles(),
			)
		}
		t.state = Terminated
		t.snapshot.clear()
		return false
	}

	if undoable {
		t.snapshot.take(t)
	} else {
		t.snapshot.clear()
	}
	t.state = Refining
	t.steps++

	worst, err, _ := t.queue.Peek()
	t.queue.Pop()
	candidate := t.candidates[worst]
	logger := internal.Logger()
	debug := logger.Enabled(context.Background(), slog.LevelDebug)

	if !t.canSplit(worst, candidate) {
		if debug {
			logger.Debug("degenerate candidate", "triangle", dbg.Name(worst), "point", candidate)
		}
		t.queue.Push(worst, Unsplittable)
		return true
	}

	if t.overBudget(worst, candidate) {
		if debug {
			logger.Debug("split would exceed budget",
				"triangle", dbg.Name(worst),
				"point", candidate,
				"points", t.NumPoints(),
				"triangles", t.NumTriangles(),
			)
		}
		t.queue.Push(worst, Unsplittable)
		return true
	}

	if debug {
		logger.Debug("split",
			"step", t.steps,
			"triangle", dbg.Name(worst),
			"point", candidate,
			"error", err,
		)
	}
	t.split(worst, candidate)
	t.flush()
	return true
}

// Report whether splitting worst at p would go over a budget. worst has already
// been popped, so it is not counted among the live triangles.
func (t *Triangulator) overBudget(worst int, p Point) bool {
	if t.config.MaxPoints > 0 && t.NumPoints()+1 > t.config.MaxPoints {
		return true
	}
	if t.config.MaxTriangles > 0 {
		live := t.numTriangles() + 1
		if live+t.splitGrowth(worst, p) > t.config.MaxTriangles {
			return true
		}
	}
	return false
}

// Undo the last step. Only one level of undo exists: a second call in a row
// does nothing and returns false, as does a call after RunStep has returned
// false.
func (t *Triangulator) ReverseStep() bool {
	if !t.snapshot.restore(t) {
		return false
	}
	internal.Logger().Debug("step reversed", "steps", t.steps, "error", t.Error())
	return true
}

// Refine until the worst error is within budget, or no triangle can be split
// any further. Run takes no snapshots, so it can't be undone.
func (t *Triangulator) Run() {
	for t.step(false) {
	}
}

// Replace the stop conditions and refine. Triangles that earlier budgets left
// unsplittable get their candidates back first, so raising a budget resumes
// the refinement where it stopped.
func (t *Triangulator) RunWith(config Config) error {
	if err := config.Validate(); err != nil {
		return err
	}
	t.config = config
	t.snapshot.clear()

	var stalled []int
	for _, id := range t.queue.Items() {
		if t.queue.Key(id) == Unsplittable {
			stalled = append(stalled, id)
		}
	}
	for _, id := range stalled {
		t.queue.Remove(id)
		t.pending = append(t.pending, id)
	}
	t.flush()

	t.Run()
	return nil
}

func (t *Triangulator) Config() Config {
	return t.config
}

// Error is the worst candidate error still queued, or 0 when nothing can be
// split.
func (t *Triangulator) Error() float64 {
	_, err, ok := t.queue.Peek()
	if !ok {
		return 0
	}
	return math.Max(0, err)
}

func (t *Triangulator) NumPoints() int {
	return len(t.points)
}

func (t *Triangulator) NumTriangles() int {
	return t.numTriangles()
}

func (t *Triangulator) State() State {
	return t.state
}

// Number of steps taken, including budget stalls, minus any undone.
func (t *Triangulator) Steps() int {
	return t.steps
}

// Points returns the mesh vertices in point id order. Raster y is flipped so
// the mesh reads the right way up in a y-up frame, and elevations are
// multiplied by zScale.
func (t *Triangulator) Points(zScale float64) []Vertex {
	y1 := t.heightField.Height() - 1
	result := make([]Vertex, len(t.points))
	for i, p := range t.points {
		result[i] = Vertex{
			X: float64(p.X),
			Y: float64(y1 - p.Y),
			Z: t.heightField.ValueAt(p.X, p.Y) * zScale,
		}
	}
	return result
}

// Triangles returns one face per live triangle, in triangle id order, indexing
// into Points. Faces are counterclockwise in the flipped frame of Points.
func (t *Triangulator) Triangles() []Face {
	result := make([]Face, 0, t.numTriangles())
	for id := 0; id < len(t.triangles)/3; id++ {
		if !t.live(id) {
			continue
		}
		e := 3 * id
		// Flipping y reverses the winding, so swap two corners back
		result = append(result, Face{A: t.triangles[e], B: t.triangles[e+2], C: t.triangles[e+1]})
	}
	return result
}

func (t *Triangulator) live(id int) bool {
	if t.queue.Contains(id) {
		return true
	}
	for _, p := range t.pending {
		if p == id {
			return true
		}
	}
	return false
}

// MaxDeviation measures the worst vertical deviation of the current mesh from
// the height field by rescanning every triangle. Unlike Error, it also sees
// triangles that a budget left unsplittable.
func (t *Triangulator) MaxDeviation() float64 {
	worst := 0.0
	for id := 0; id < len(t.triangles)/3; id++ {
		if !t.live(id) {
			continue
		}
		a, b, c := t.corners(id)
		if _, err := findCandidate(t.heightField, a, b, c); err > worst {
			worst = err
		}
	}
	return worst
}
