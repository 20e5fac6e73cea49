// Package scoring evaluates a training-session transcript across ten coaching
// pillars using a declarative keyword-rule table. Every scorer is a pure
// function over the transcript string: no model calls, no side effects, fully
// deterministic.
package scoring

import "strings"

// Pillar is one of the ten named coaching dimensions.
type Pillar string

const (
	Introduction Pillar = "Introduction"
	Impression   Pillar = "Impression"
	Discovery    Pillar = "Discovery"
	Solution     Pillar = "Solution"
	Upselling    Pillar = "Upselling"
	FullSolution Pillar = "FullSolution"
	Objections   Pillar = "Objections"
	Closing      Pillar = "Closing"
	Email        Pillar = "Email"
	Exit         Pillar = "Exit"
)

// Pillars is the canonical evaluation and display order.
var Pillars = []Pillar{
	Introduction, Impression, Discovery, Solution, Upselling,
	FullSolution, Objections, Closing, Email, Exit,
}

// maxPillarScore bounds every pillar; excellenceThreshold is the running
// total at which the +1 excellence bonus kicks in.
const (
	maxPillarScore      = 10
	excellenceThreshold = 9
	maxTotal            = 100
)

// Scorecard maps each pillar to its score. Missing pillars count as 0.
type Scorecard map[Pillar]int

// ScorePillar evaluates a single pillar against a transcript. customerName is
// only consulted by the name-aware pillars (Introduction, Closing, Exit) and
// a blank name never awards the bonus. The result is always in [0, 10].
func ScorePillar(p Pillar, transcript, customerName string) int {
	r, ok := rules[p]
	if !ok {
		return 0
	}

	t := strings.ToLower(transcript)
	score := 0

	if r.baseline > 0 && strings.TrimSpace(transcript) != "" {
		score += r.baseline
	}
	for _, g := range r.groups {
		if !containsAny(t, g.keywords) {
			continue
		}
		if g.requires != "" && !strings.Contains(t, g.requires) {
			continue
		}
		score += g.points
	}
	if r.nameBonus > 0 {
		name := strings.ToLower(strings.TrimSpace(customerName))
		if name != "" && strings.Contains(t, name) {
			score += r.nameBonus
		}
	}
	if score >= excellenceThreshold {
		score++
	}
	if score > maxPillarScore {
		score = maxPillarScore
	}
	return score
}

// ScoreAll evaluates every pillar against the same transcript and returns the
// full scorecard. The pillars are mutually independent; sequential evaluation
// is the reference behavior.
func ScoreAll(transcript, customerName string) Scorecard {
	card := make(Scorecard, len(Pillars))
	for _, p := range Pillars {
		card[p] = ScorePillar(p, transcript, customerName)
	}
	return card
}

// Total sums all ten pillar scores, capped at 100. Each pillar is already
// clamped to 10, so the cap is a defensive bound rather than a live path.
func (c Scorecard) Total() int {
	sum := 0
	for _, p := range Pillars {
		sum += c[p]
	}
	if sum > maxTotal {
		sum = maxTotal
	}
	return sum
}

// containsAny reports whether text contains any of the keywords as a plain
// substring. Matching is deliberately not word-boundary aware: "price"
// matches inside "priceless", mirroring the original heuristic.
func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
