// Package scoring holds the exam arithmetic: per-subject nets, the
// crude rank heuristic shown on the results page, and the placement
// score served by /api/calculate-score/.
package scoring

import "math"

// Net is the YKS net for one subject: a quarter point off per wrong
// answer, floored at zero, rounded to 2 decimals.
func Net(correct, wrong int) float64 {
	n := float64(correct) - float64(wrong)/4
	if n < 0 {
		n = 0
	}
	return math.Round(n*100) / 100
}

// Blank derives the untouched question count for a subject.
func Blank(maxQuestions, correct, wrong int) int {
	b := maxQuestions - correct - wrong
	if b < 0 {
		b = 0
	}
	return b
}

// TotalNet sums already-floored subject nets, so one very wrong subject
// can never drag the exam total negative.
func TotalNet(nets []float64) float64 {
	var sum float64
	for _, n := range nets {
		sum += n
	}
	return math.Round(sum*100) / 100
}

type rankParams struct {
	MaxNet float64
	Base   float64
}

var rankTable = map[string]rankParams{
	"TYT":     {MaxNet: 120, Base: 3_000_000},
	"AYT_SAY": {MaxNet: 80, Base: 300_000},
	"AYT_EA":  {MaxNet: 80, Base: 280_000},
	"AYT_SOZ": {MaxNet: 80, Base: 260_000},
}

// EstimateRanking maps a total net to a rough national rank with a
// quadratic decay: rank = max(1, round((1-net/maxNet)^2 * base)).
// Deliberately crude and monotone; the authoritative numbers come from
// CalculateScore. Pure function, identical inputs give identical output.
func EstimateRanking(net float64, examType string) int {
	p, ok := rankTable[examType]
	if !ok {
		p = rankTable["TYT"]
	}
	ratio := 1 - net/p.MaxNet
	if ratio < 0 {
		ratio = 0
	}
	rank := math.Round(ratio * ratio * p.Base)
	if rank < 1 {
		rank = 1
	}
	return int(rank)
}

var scoreWeights = map[string]float64{
	"TYT":     3.33,
	"AYT_SAY": 5.0,
	"AYT_EA":  5.0,
	"AYT_SOZ": 5.0,
}

// CalculateScore is the placement score: a flat 100-point floor plus
// the weighted net, capped at 500.
func CalculateScore(net float64, examType string) float64 {
	w, ok := scoreWeights[examType]
	if !ok {
		w = scoreWeights["TYT"]
	}
	score := 100 + net*w
	if score > 500 {
		score = 500
	}
	return math.Round(score*100) / 100
}
