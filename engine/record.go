package engine

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteMoves writes the moves of a game as CSV, one row per move.
func WriteMoves[A comparable](w io.Writer, moves []Move[A]) error {
	writer := csv.NewWriter(w)

	header := []string{"step", "player", "action", "duration"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write moves header: %w", err)
	}
	for _, m := range moves {
		row := []string{
			strconv.Itoa(m.Step),
			m.Player.String(),
			fmt.Sprint(m.Action),
			m.Duration.String(),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write move %d: %w", m.Step, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush moves: %w", err)
	}
	return nil
}
