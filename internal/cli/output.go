package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/othello-arena/internal/model"
)

// Score is a disc count per side
type Score struct {
	Black int `json:"black"`
	White int `json:"white"`
}

// MatchResult summarises a finished match
type MatchResult struct {
	ID               string       `json:"id"`
	Size             int          `json:"size"`
	TimeLimitMS      int64        `json:"time_limit_ms"`
	IllegalLimit     int          `json:"illegal_limit"`
	Black            string       `json:"black"`
	White            string       `json:"white"`
	Moves            []model.Move `json:"moves"`
	ElapsedMS        []int64      `json:"elapsed_ms"`
	Score            Score        `json:"score"`
	Winner           string       `json:"winner"`
	Reason           string       `json:"reason"`
	ClockRemainingMS [2]int64     `json:"clock_remaining_ms"`
	IllegalRemaining [2]int       `json:"illegal_remaining"`

	transcript string
}

// ReplayResult is the position reached by replaying a move list
type ReplayResult struct {
	Size   int          `json:"size"`
	Moves  []model.Move `json:"moves"`
	ToMove string       `json:"to_move"`
	Legal  []string     `json:"legal"`
	Score  Score        `json:"score"`

	board string
}

// StrategyInfo describes a registered agent strategy
type StrategyInfo struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case MatchResult:
		o.printMatchResult(v)
	case ReplayResult:
		o.printReplayResult(v)
	case []StrategyInfo:
		o.printStrategies(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printMatchResult(r MatchResult) {
	fmt.Fprintf(o.w, "Game: %s\n", r.ID)
	fmt.Fprintf(o.w, "Black: %s  White: %s  Size: %d\n\n", r.Black, r.White, r.Size)
	fmt.Fprint(o.w, r.transcript)
}

func (o *Output) printReplayResult(r ReplayResult) {
	fmt.Fprint(o.w, r.board)
	fmt.Fprintf(o.w, "\nScore: %d-%d\n", r.Score.Black, r.Score.White)
	fmt.Fprintf(o.w, "To move: %s\n", r.ToMove)
	if len(r.Legal) == 0 {
		fmt.Fprintln(o.w, "Legal: PASS")
	} else {
		fmt.Fprintf(o.w, "Legal: %s\n", strings.Join(r.Legal, " "))
	}
}

func (o *Output) printStrategies(strategies []StrategyInfo) {
	for _, s := range strategies {
		fmt.Fprintf(o.w, "%-8s %s\n", s.Name, s.DisplayName)
	}
}
