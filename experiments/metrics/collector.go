package metrics

import (
	"tictactoe/engine"
	"time"
)

type GameRecord struct {
	ID       int
	Starter  int // Participant index
	Winner   int // Participant index, -1 on a draw
	Moves    int
	Duration time.Duration
}

type Collector interface {
	Record(result engine.Result)
	Records() []GameRecord
}

type collector struct {
	records []GameRecord
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Record(result engine.Result) {
	c.records = append(c.records, GameRecord{
		ID:       len(c.records) + 1,
		Starter:  result.Starter,
		Winner:   result.Status.Winner(),
		Moves:    result.Moves,
		Duration: result.Duration,
	})
}

func (c *collector) Records() []GameRecord {
	return c.records
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) Record(result engine.Result) {}
func (c *dummyCollector) Records() []GameRecord       { return nil }

// Rate is the share of wins for each participant and of draws over a window of games.
type Rate struct {
	Games int // Index of the last game in the window
	P1    float64
	P2    float64
	Draw  float64
}

// Rolling aggregates records into consecutive windows of the given size.
// A trailing partial window is kept.
func Rolling(records []GameRecord, window int) []Rate {
	if window <= 0 {
		panic("window must be positive")
	}
	var rates []Rate
	for start := 0; start < len(records); start += window {
		end := min(start+window, len(records))
		var p1, p2, draw int
		for _, r := range records[start:end] {
			switch r.Winner {
			case 0:
				p1++
			case 1:
				p2++
			default:
				draw++
			}
		}
		n := float64(end - start)
		rates = append(rates, Rate{
			Games: end,
			P1:    float64(p1) / n,
			P2:    float64(p2) / n,
			Draw:  float64(draw) / n,
		})
	}
	return rates
}
