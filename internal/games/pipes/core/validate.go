package core

import "fmt"

// Validation error codes.
const (
	CodeBadSize       = "BAD_SIZE"
	CodeBadShape      = "BAD_SHAPE"
	CodeBadRotation   = "BAD_ROTATION"
	CodeUnknownKind   = "UNKNOWN_KIND"
	CodeNoStart       = "NO_START"
	CodeNoEnd         = "NO_END"
	CodeMultipleStart = "MULTIPLE_START"
	CodeAlreadySolved = "ALREADY_SOLVED"
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// ValidateBoard reports layout problems that the engine tolerates but an
// authored level should not have. Checks:
//   - a start tile exists
//   - at most one start tile
//   - at least one end tile
func ValidateBoard(b *Board) []error {
	var errs []error

	starts := 0
	for _, t := range b.tiles {
		if t.IsStart {
			starts++
		}
	}

	switch {
	case starts == 0:
		errs = append(errs, ValidationError{
			Code:    CodeNoStart,
			Message: "board has no start tile",
		})
	case starts > 1:
		errs = append(errs, ValidationError{
			Code:    CodeMultipleStart,
			Message: fmt.Sprintf("board has %d start tiles, only %v is used", starts, b.Start().Pos),
		})
	}

	if len(b.Ends()) == 0 {
		errs = append(errs, ValidationError{
			Code:    CodeNoEnd,
			Message: "board has no end tile",
		})
	}

	return errs
}

// BoardStats summarises a board.
type BoardStats struct {
	Columns    int
	Rows       int
	TotalCells int
	ByKind     map[Kind]int
	Starts     int
	Ends       int
	Flowing    int
}

// ComputeBoardStats analyzes a board. Flowing reflects the last Evaluate.
func ComputeBoardStats(b *Board) BoardStats {
	stats := BoardStats{
		Columns:    b.Columns,
		Rows:       b.Rows,
		TotalCells: b.Size(),
		ByKind:     make(map[Kind]int),
	}
	for _, t := range b.tiles {
		stats.ByKind[t.Kind]++
		if t.IsStart {
			stats.Starts++
		}
		if t.IsEnd {
			stats.Ends++
		}
		if t.CarriesFlow {
			stats.Flowing++
		}
	}
	return stats
}
