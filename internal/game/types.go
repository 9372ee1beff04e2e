package game

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

const (
	MinBoardSize     = 5
	MaxBoardSize     = 12
	DefaultBoardSize = 9

	// Unreachable is the distance reported when no goal cell can be reached.
	Unreachable = math.MaxInt
)

// Cell is a board coordinate, row first.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

func (o Orientation) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

func (o *Orientation) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseOrientation(s)
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// ParseOrientation accepts "horizontal"/"h" and "vertical"/"v".
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal", "h":
		return Horizontal, nil
	case "vertical", "v":
		return Vertical, nil
	}
	return Horizontal, fmt.Errorf("unknown orientation %q", s)
}

// Wall is a two-cell segment anchored at a grid coordinate of the
// (N-1)x(N-1) wall grid.
type Wall struct {
	Row         int         `json:"row"`
	Col         int         `json:"col"`
	Orientation Orientation `json:"orientation"`
}

func (w Wall) String() string { return fmt.Sprintf("%s(%d,%d)", w.Orientation, w.Row, w.Col) }

// Reason explains the outcome of a wall placement.
type Reason string

const (
	ReasonPlaced               Reason = "wall placed"
	ReasonOutOfBounds          Reason = "out-of-bounds"
	ReasonWallExists           Reason = "wall-exists"
	ReasonAdjacentCollinear    Reason = "adjacent-collinear"
	ReasonCrossesPerpendicular Reason = "crosses-perpendicular"
	ReasonBlocksPlayer         Reason = "blocks-a-player"
	ReasonNoWallsLeft          Reason = "no-walls-left"
)

// Axis selects whether a goal is a row or a column of the board.
type Axis int

const (
	AxisRow Axis = iota
	AxisCol
)

// Goal is the line a pawn has to reach: every cell whose row (or column)
// equals Index.
type Goal struct {
	Axis  Axis `json:"axis"`
	Index int  `json:"index"`
}

func (g Goal) Reached(c Cell) bool {
	if g.Axis == AxisCol {
		return c.Col == g.Index
	}
	return c.Row == g.Index
}
