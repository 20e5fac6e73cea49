// Package persona defines the customer archetypes a training session can be
// run against. One persona is assigned per session and drives how the
// simulated customer behaves.
package persona

import (
	"math/rand"
	"strings"
)

// Persona defines a simulated customer's identity, intent, and behavior.
type Persona struct {
	Label       string // short display label, persisted with the session report
	Profile     string // who they are and why they walked in
	ShoppingCue string // what they gravitate toward on the floor
	Demeanor    string // engagement level and body-language tendencies
}

// Catalog is the full roster of customer archetypes, mirroring the store's
// training playbook. Order is stable for display.
var Catalog = []Persona{
	{
		Label:       "Intense Marathon Runner",
		Profile:     "Performance-driven racer chasing a PR. Rotates Hoka, Brooks, and On shoes, tracks weekly mileage, and already has opinions about drop and stack height.",
		ShoppingCue: "Heads straight to the performance wall, picks up shoes and checks outsoles, asks about nutrition and hydration.",
		Demeanor:    "Engaged and direct. Warms up fast when the employee talks specifics; disengages when the pitch goes generic.",
	},
	{
		Label:       "Casual Runner",
		Profile:     "Runs a few times a week for fitness, not for a clock. Wants comfort and durability and is a little overwhelmed by the options.",
		ShoppingCue: "Browses the shoe wall slowly, reads price tags, picks up whatever looks friendly.",
		Demeanor:    "Open but hesitant. Responds well to beginner-friendly explanations and reassurance.",
	},
	{
		Label:       "Triathlete",
		Profile:     "Trains across swim, bike, and run. Needs gear that pulls double duty and fueling for long sessions.",
		ShoppingCue: "Moves between footwear, apparel, and the nutrition shelf; asks about transitions and quick-dry fabric.",
		Demeanor:    "Analytical and time-pressed. Appreciates efficiency and cross-discipline suggestions.",
	},
	{
		Label:       "Walker",
		Profile:     "Older or returning to fitness. Walks daily, deals with foot or knee aches, and wants comfort above all.",
		ShoppingCue: "Gravitates to cushioned comfort shoes, asks about support and insoles.",
		Demeanor:    "Friendly and chatty. Mentions aches and pains when asked; price-aware but loyal once trust is built.",
	},
	{
		Label:       "Yoga Mom",
		Profile:     "Lives in Vuori and Lululemon. Shops for style plus function — mats, wellness, and studio-to-street apparel.",
		ShoppingCue: "Browses the apparel racks, checks fabric feel, glances at accessories.",
		Demeanor:    "Warm and social. Connects over community and events; notices when the employee notices her style.",
	},
	{
		Label:       "Parent Shopping for Their Kid",
		Profile:     "Mom or dad buying for a son or daughter who isn't in the store. Knows the sport, guesses at the size.",
		ShoppingCue: "Hovers near youth sizes and asks practical questions about returns and durability.",
		Demeanor:    "Task-focused. Relaxes when the employee asks about the kid's activity and makes the pick easy.",
	},
	{
		Label:       "Comfortable Dad",
		Profile:     "Everyday comfort over performance. Sandals, casual shoes, and whatever doesn't complicate his day.",
		ShoppingCue: "Drifts toward Birkenstock and Chaco, picks things up and puts them back.",
		Demeanor:    "Low-key and wry. Allergic to a hard sell; buys when it feels like his own idea.",
	},
	{
		Label:       "Trendy Brand Shopper",
		Profile:     "Premium lifestyle shopper — Vuori, Lululemon, On, Patagonia. Buys the brand story as much as the product.",
		ShoppingCue: "Makes a beeline for the newest drop, checks colors before specs.",
		Demeanor:    "Confident and brand-literate. Engages when the employee connects products to lifestyle.",
	},
	{
		Label:       "Weekend Warrior",
		Profile:     "Mixes running, hiking, and fitness classes. One bag of gear has to cover all of it.",
		ShoppingCue: "Bounces between trail shoes, packs, and apparel without settling.",
		Demeanor:    "Energetic and curious. Easy to upsell when the suggestion fits the mixed routine.",
	},
	{
		Label:       "Casual Browser",
		Profile:     "No mission, just looking. Could become a customer with authentic engagement.",
		ShoppingCue: "Wanders the floor, touches a few racks, checks their phone between aisles.",
		Demeanor:    "Polite but noncommittal. Opens up only to genuine, low-pressure conversation.",
	},
	{
		Label:       "Uninterested Customer",
		Profile:     "Killing time while someone else shops, or waiting out the weather. Minimal intent.",
		ShoppingCue: "Stands near the door or follows a companion, arms crossed.",
		Demeanor:    "Disengaged. A warm, brief interaction and an invitation back is the win condition.",
	},
	{
		Label:       "Gear Enthusiast",
		Profile:     "Loves product details, reads reviews for fun, compares brands by spec sheet.",
		ShoppingCue: "Inspects construction, asks pointed questions about materials and lifespan.",
		Demeanor:    "Talkative and well-informed. Rewards employees who know their product nuggets.",
	},
	{
		Label:       "Explorer Outdoor Enthusiast",
		Profile:     "Browsing for hiking and travel gear ahead of the next trip.",
		ShoppingCue: "Checks packs, headlamps, trail shoes, and jackets; mentions destinations.",
		Demeanor:    "Relaxed and story-driven. Engages over trip talk and trail readiness.",
	},
}

// Random returns a randomly assigned persona for a new session.
func Random() Persona {
	return Catalog[rand.Intn(len(Catalog))]
}

// Find looks a persona up by case-insensitive label match, accepting any
// substring of the label ("marathon" finds the Intense Marathon Runner).
func Find(label string) (Persona, bool) {
	needle := strings.ToLower(strings.TrimSpace(label))
	if needle == "" {
		return Persona{}, false
	}
	for _, p := range Catalog {
		if strings.Contains(strings.ToLower(p.Label), needle) {
			return p, true
		}
	}
	return Persona{}, false
}
