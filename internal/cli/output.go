package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/scoretab/scoretab/internal/api/response"
	"github.com/scoretab/scoretab/internal/client"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.Player:
		o.printPlayer(v)
	case []response.Player:
		o.printPlayers(v)
	case response.Round:
		o.printRound(v)
	case []response.Round:
		for _, r := range v {
			o.printRound(r)
		}
	case []response.Standing:
		o.printStandings(v)
	case []response.PlayerStats:
		o.printStatistics(v)
	case response.Session:
		o.printSession(v)
	case []response.Session:
		for _, s := range v {
			o.printSession(s)
		}
	case *client.RoundMatrix:
		o.printMatrix(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printPlayer(p response.Player) {
	fmt.Printf("%s  %s  %s", p.ID, p.Name, p.Color)
	if p.AvatarPath != "" {
		fmt.Printf("  %s", p.AvatarPath)
	}
	fmt.Println()
}

func (o *Output) printPlayers(players []response.Player) {
	if len(players) == 0 {
		fmt.Println("No players")
		return
	}
	for _, p := range players {
		o.printPlayer(p)
	}
}

func (o *Output) printRound(r response.Round) {
	fmt.Printf("Round %s (recorded by %s)\n", r.ID, r.RecorderID)
	for _, s := range r.Scores {
		fmt.Printf("  %s: %+d\n", s.PlayerID, s.Delta)
	}
}

func (o *Output) printStandings(standings []response.Standing) {
	if len(standings) == 0 {
		fmt.Println("No standings")
		return
	}
	for i, s := range standings {
		fmt.Printf("%2d. %-20s %+d\n", i+1, s.Player.Name, s.Score)
	}
}

func (o *Output) printStatistics(stats []response.PlayerStats) {
	if len(stats) == 0 {
		fmt.Println("No statistics")
		return
	}
	fmt.Printf("%-20s %7s %9s %9s %8s %8s\n", "Player", "Rounds", "Win rate", "Average", "Best", "Worst")
	for _, s := range stats {
		fmt.Printf("%-20s %7d %8.1f%% %9.1f %+8d %+8d\n",
			s.Name, s.Rounds, s.WinRate, s.Average, s.Best, s.Worst)
	}
}

func (o *Output) printSession(s response.Session) {
	marker := " "
	if s.Active {
		marker = "*"
	}
	fmt.Printf("%s %s  %s  (%d rounds)\n", marker, s.ID, s.Name, s.RoundCount)
}

func (o *Output) printMatrix(m *client.RoundMatrix) {
	if len(m.Rows) == 0 {
		fmt.Println("No rounds")
		return
	}

	fmt.Printf("%-12s", "Round")
	for _, p := range m.Players {
		fmt.Printf(" %10s", p.Name)
	}
	fmt.Println()

	for _, row := range m.Rows {
		fmt.Printf("%-12s", row.RoundID)
		for _, cell := range row.Cells {
			if cell == nil {
				fmt.Printf(" %10s", "-")
			} else {
				fmt.Printf(" %+10d", *cell)
			}
		}
		fmt.Println()
	}

	fmt.Printf("%-12s", "Total")
	for _, total := range m.Totals {
		fmt.Printf(" %+10d", total)
	}
	fmt.Println()
}
