package scoring

import (
	"fmt"
	"sort"
	"strings"
)

// strengthPhrases render inside "Great job on {phrase}".
var strengthPhrases = map[Pillar]string{
	Introduction: "a warm, personal introduction",
	Impression:   "building a great first impression",
	Discovery:    "digging into what the customer really needs",
	Solution:     "tying recommendations back to what the customer shared",
	Upselling:    "suggesting natural add-ons",
	FullSolution: "building out a complete kit",
	Objections:   "handling concerns with empathy",
	Closing:      "closing with confidence",
	Email:        "collecting an email the natural way",
	Exit:         "sending the customer off warmly",
}

// coachingTips render inside "Next time, {tip}".
var coachingTips = map[Pillar]string{
	Introduction: "introduce yourself by name and learn the customer's name",
	Impression:   "open with an icebreaker about their day or their next adventure",
	Discovery:    "ask a few more open-ended discovery questions before recommending",
	Solution:     "connect each product back to something the customer told you",
	Upselling:    "offer one low-pressure add-on like a tech sock or nutrition",
	FullSolution: "bundle shoes, socks, and insoles into one trail-ready setup",
	Objections:   "acknowledge the concern first, then frame the long term value",
	Closing:      "lean on the 30 day guarantee and the customer's name to close",
	Email:        "tie the email ask to receipts, the 3-D scan, or group runs",
	Exit:         "thank them by name and invite them back for the next adventure",
}

// personaTips are selected by case-insensitive substring match against the
// persona label, first match wins.
var personaTips = []struct {
	keyword string
	tip     string
}{
	{"marathon", "lead with performance, race goals, and fueling strategy"},
	{"triathlete", "talk cross-discipline versatility and fueling for long sessions"},
	{"walker", "focus on cushion, stability, and easy comfort wins like insoles"},
	{"yoga", "blend style and function — apparel first, then wellness add-ons"},
	{"dad", "keep it practical with everyday comfort picks"},
	{"trendy", "connect premium brands to lifestyle and styling"},
	{"brand", "connect premium brands to lifestyle and styling"},
	{"weekend", "show versatile gear that covers runs, hikes, and classes"},
	{"browser", "skip the pitch — build rapport and let curiosity lead"},
	{"uninterested", "stay brief and helpful, and leave a warm reason to return"},
	{"gear", "go deep on specs and comparisons — they love the details"},
	{"explorer", "talk trips and trail readiness, then layer in packs and headlamps"},
	{"outdoor", "talk trips and trail readiness, then layer in packs and headlamps"},
}

const genericPersonaTip = "keep it personal and value-driven"

// transcriptFlags are topical signals scanned from the combined transcript,
// used only for coaching nudges — never for scores.
type transcriptFlags struct {
	pain      bool
	insole    bool
	sock      bool
	nutrition bool
	hydration bool
	trail     bool
	headlamp  bool
	email     bool
	guarantee bool
	nameUsed  bool
	priceOnly bool // "price" appears without value/benefit/guarantee framing
}

func scanFlags(combined, customerName string) transcriptFlags {
	t := strings.ToLower(combined)
	f := transcriptFlags{
		pain:      containsAny(t, []string{"pain", "hurt", "ache", "blister"}),
		insole:    containsAny(t, []string{"insole", "footbalance", "superfeet", "3-d scan", "3d scan"}),
		sock:      strings.Contains(t, "sock"),
		nutrition: containsAny(t, []string{"nutrition", "gu ", "lmnt", "honey stinger", "gel"}),
		hydration: containsAny(t, []string{"hydration", "hydro", "water bottle", "electrolyte"}),
		trail:     containsAny(t, []string{"trail", "hike", "hiking", "night run"}),
		headlamp:  strings.Contains(t, "headlamp"),
		email:     containsAny(t, []string{"email", "receipt"}),
		guarantee: containsAny(t, []string{"guarantee", "return"}),
	}
	if strings.Contains(t, "price") {
		f.priceOnly = !containsAny(t, []string{"value", "benefit", "guarantee"})
	}
	name := strings.ToLower(strings.TrimSpace(customerName))
	if name != "" {
		f.nameUsed = strings.Contains(t, name)
	}
	return f
}

// nudges derives up to max conditional suggestions from the flags, in fixed
// priority order.
func nudges(f transcriptFlags, nameKnown bool, max int) []string {
	type rule struct {
		when bool
		text string
	}
	ordered := []rule{
		{f.pain && !f.insole, "The customer mentioned pain — that's the moment to offer a FootBalance fitting with a 3-D scan."},
		{f.insole && !f.sock, "When insoles come up, pair them with a bamboo or merino tech sock."},
		{nameKnown && !f.nameUsed, "You learned the customer's name — work it into the conversation naturally."},
		{f.priceOnly, "When price comes up, shift the frame to value, comfort, and injury prevention."},
		{f.hydration && !f.nutrition, "Hydration talk is a natural bridge to GU, LMNT, or Honey Stinger."},
		{f.trail && !f.headlamp, "Trail talk is the moment to suggest a headlamp — hands-free safety in any season."},
		{!f.email, "Weave in an email ask — tie it to receipts, the scan, or group-run invites."},
		{!f.guarantee, "The 30 day shoe guarantee is your closing tool — mention it."},
	}
	var out []string
	for _, r := range ordered {
		if len(out) == max {
			break
		}
		if r.when {
			out = append(out, r.text)
		}
	}
	return out
}

// Notes generates the free-text coaching paragraph for a finished session:
// 2-4 sentences, upbeat, ending in terminal punctuation. It only reads the
// scorecard and is byte-deterministic for identical input.
func Notes(card Scorecard, combined, personaLabel, customerName string) string {
	var sentences []string

	if s := strengthSentence(card); s != "" {
		sentences = append(sentences, s)
	}
	if s := focusSentence(card); s != "" {
		sentences = append(sentences, s)
	}

	flags := scanFlags(combined, customerName)
	nameKnown := strings.TrimSpace(customerName) != ""
	if n := nudges(flags, nameKnown, 2); len(n) > 0 {
		sentences = append(sentences, strings.Join(n, " "))
	}

	sentences = append(sentences, personaSentence(personaLabel))

	out := strings.TrimSpace(strings.Join(sentences, " "))
	if out != "" && !strings.ContainsRune(".!?", rune(out[len(out)-1])) {
		out += "."
	}
	return out
}

// topPillars returns up to n pillars passing keep, ordered by less with ties
// broken by canonical pillar order.
func topPillars(card Scorecard, keep func(int) bool, less func(a, b int) bool, n int) []Pillar {
	var picked []Pillar
	for _, p := range Pillars {
		if keep(card[p]) {
			picked = append(picked, p)
		}
	}
	sort.SliceStable(picked, func(i, j int) bool {
		return less(card[picked[i]], card[picked[j]])
	})
	if len(picked) > n {
		picked = picked[:n]
	}
	return picked
}

func strengthSentence(card Scorecard) string {
	best := topPillars(card,
		func(v int) bool { return v >= 8 },
		func(a, b int) bool { return a > b },
		2)
	switch len(best) {
	case 0:
		return "Nice work staying engaged with your customer!"
	case 1:
		return fmt.Sprintf("Great job on %s!", strengthPhrases[best[0]])
	default:
		return fmt.Sprintf("Great job on %s and %s!", strengthPhrases[best[0]], strengthPhrases[best[1]])
	}
}

func focusSentence(card Scorecard) string {
	worst := topPillars(card,
		func(v int) bool { return v <= 6 },
		func(a, b int) bool { return a < b },
		2)
	switch len(worst) {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf("Next time, %s.", coachingTips[worst[0]])
	default:
		return fmt.Sprintf("Next time, %s and %s.", coachingTips[worst[0]], coachingTips[worst[1]])
	}
}

func personaSentence(personaLabel string) string {
	if strings.TrimSpace(personaLabel) == "" {
		return "Keep it personal and value-driven with every customer."
	}
	label := strings.ToLower(personaLabel)
	tip := genericPersonaTip
	for _, pt := range personaTips {
		if strings.Contains(label, pt.keyword) {
			tip = pt.tip
			break
		}
	}
	return fmt.Sprintf("For a %s, %s.", personaLabel, tip)
}
