package scoring

// group is one independently-awarded signal: the points are granted when any
// keyword appears as a substring of the lower-cased transcript. A non-empty
// requires string must also be present for the group to award.
type group struct {
	points   int
	keywords []string
	requires string
}

func grp(points int, keywords ...string) group {
	return group{points: points, keywords: keywords}
}

// pillarRules describes how a single pillar is scored. baseline points are
// granted for any non-blank transcript; nameBonus points are granted when the
// customer's name is known and appears in the transcript.
type pillarRules struct {
	baseline  int
	nameBonus int
	groups    []group
}

// Keyword literals are the canonical lower-case sets. Several carry
// typographic apostrophes (U+2019) and must stay byte-identical — the
// simulated customer emits the same quotes, and matching is plain substring.
var rules = map[Pillar]pillarRules{
	Introduction: {
		baseline:  3,
		nameBonus: 2,
		groups: []group{
			grp(2, "i'm ", "my name is", "this is"),
			grp(2, "welcome to grivet", "thanks for stopping", "glad you came in", "welcome in"),
		},
	},
	Impression: {
		baseline: 3,
		groups: []group{
			grp(2, "great to see", "awesome", "excited", "happy you're here", "what adventure"),
			grp(2, "favorite way to get outside", "trip", "treating yourself", "exploring new gear"),
			grp(2, "hats", "packs", "shoes", "trail", "street"),
		},
	},
	Discovery: {
		groups: []group{
			grp(3, "what's the main activity", "tell me about", "how long do you usually", "hotspots", "blisters"),
			grp(2, "routine", "gear let you down", "support", "lightweight"),
			grp(2, "chews", "hydration", "events", "weather"),
			grp(2, "wish your gear", "last outing", "pain points"),
		},
	},
	Solution: {
		groups: []group{
			grp(3, "these are great for", "you said you needed", "based on what you shared"),
			grp(2, "benefit", "perfect for", "works well if"),
			{points: 2, keywords: []string{"travel", "daily use", "long days", "support"}, requires: "because"},
			grp(2, "fun fact", "most people don’t realize", "bamboo", "250,000 sweat glands"),
		},
	},
	Upselling: {
		groups: []group{
			grp(3, "while you’re trying", "tech sock", "most people also like"),
			grp(2, "helps with comfort", "last longer", "works with your shoes"),
			grp(2, "hydration", "nutrition", "running hat", "headlamp"),
			grp(2, "just a recommendation", "might be worth trying"),
		},
	},
	FullSolution: {
		groups: []group{
			grp(3, "you’re investing", "let’s set you up", "want to check out the kit"),
			grp(2, "socks", "insole", "hydration", "shoe cleaner"),
			grp(2, "prepare for", "trail ready", "trip ready"),
			grp(2, "value", "bundle", "works together"),
		},
	},
	Objections: {
		groups: []group{
			grp(3, "totally fair", "makes sense", "that’s valid"),
			grp(2, "most customers say", "investment", "long term comfort"),
			grp(2, "we have options", "depends on your routine", "never any pressure"),
			grp(2, "can solve problems you didn’t realize"),
		},
	},
	Closing: {
		nameBonus: 2,
		groups: []group{
			grp(3, "ready to go", "box them up", "want to grab these"),
			grp(2, "guarantee", "great choice", "perfect fit"),
			grp(2, "invite you back", "next time", "love seeing you again"),
		},
	},
	Email: {
		groups: []group{
			grp(3, "can i email", "email your receipt", "save your scan"),
			grp(2, "group runs", "tips", "community"),
			grp(2, "just for receipts", "no spam", "event invites"),
			grp(2, "confirm spelling", "what's a good email"),
		},
	},
	Exit: {
		nameBonus: 2,
		groups: []group{
			grp(3, "thanks", "appreciate you", "great to see you"),
			grp(2, "group runs", "see you soon", "next adventure"),
			grp(2, "come back anytime", "enjoy your gear", "unstoppable"),
		},
	},
}
