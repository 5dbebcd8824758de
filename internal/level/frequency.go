package level

// DefaultFrequency scores common English verbs by how often learners meet
// them. The exact numbers only matter relative to the bracket thresholds:
// 50 and up is beginner, 20 to 49 intermediate, below 20 advanced.
var DefaultFrequency = map[string]int{
	// Everyday verbs.
	"be":     100,
	"have":   95,
	"do":     92,
	"say":    90,
	"go":     88,
	"get":    85,
	"make":   84,
	"know":   82,
	"think":  80,
	"take":   78,
	"see":    76,
	"come":   75,
	"want":   72,
	"look":   70,
	"use":    68,
	"find":   66,
	"give":   64,
	"tell":   62,
	"work":   60,
	"call":   58,
	"try":    56,
	"ask":    55,
	"need":   54,
	"feel":   53,
	"leave":  52,
	"put":    51,
	"talk":   50,

	// Intermediate verbs.
	"mean":    48,
	"keep":    46,
	"let":     45,
	"begin":   44,
	"seem":    42,
	"help":    40,
	"show":    38,
	"hear":    36,
	"play":    34,
	"run":     33,
	"move":    32,
	"live":    30,
	"believe": 28,
	"hold":    27,
	"bring":   26,
	"happen":  25,
	"write":   24,
	"sit":     23,
	"stand":   22,
	"lose":    21,
	"pay":     20,

	// Advanced verbs.
	"achieve":    18,
	"describe":   16,
	"develop":    15,
	"produce":    14,
	"establish":  12,
	"maintain":   11,
	"determine":  10,
	"indicate":   8,
	"perceive":   6,
	"constitute": 4,
	"undermine":  3,
	"articulate": 2,
}

// complexPrefixes mark scholarly vocabulary regardless of length.
var complexPrefixes = []string{
	"institut",
	"systemat",
	"methodolog",
	"conceptual",
	"characteriz",
	"differenti",
	"philosoph",
	"psycholog",
}

// complexSuffixes are verb-forming endings that, on a long word, signal
// academic register.
var complexSuffixes = []string{
	"ize",
	"ify",
	"ate",
}
