package analysis

// Substitution is one commonly confused letter rendering of a pronunciation
// mix-up. Weight is the reduced substitution cost used by the weighted edit
// distance, always in (0,1).
type Substitution struct {
	A, B   rune
	Weight float64
}

// substitutionPairs is the process-wide confusion table. Read-only after init.
var substitutionPairs = []Substitution{
	{'r', 'l', 0.5},
	{'v', 'w', 0.5},
	{'v', 'b', 0.5},
	{'b', 'p', 0.5},
	{'t', 'd', 0.5},
	{'s', 'z', 0.5},
	{'f', 'p', 0.5},
	{'f', 't', 0.5},
	{'g', 'k', 0.5},
	{'s', 'c', 0.5},
	{'j', 'y', 0.5},
	{'i', 'e', 0.5},
	{'a', 'e', 0.5},
	{'o', 'u', 0.5},
}

var substitutionCosts = make(map[[2]rune]float64, len(substitutionPairs)*2)

func init() {
	for _, p := range substitutionPairs {
		substitutionCosts[[2]rune{p.A, p.B}] = p.Weight
		substitutionCosts[[2]rune{p.B, p.A}] = p.Weight
	}
}

func substitutionCost(a, b rune) float64 {
	if a == b {
		return 0
	}
	if w, ok := substitutionCosts[[2]rune{a, b}]; ok {
		return w
	}
	return 1
}

// DifficultSound describes a sound that English learners commonly struggle
// with: example words containing it, typical mis-renderings, the accuracy
// discount applied when a mistake is detected and a coaching line.
type DifficultSound struct {
	Phoneme     string
	TargetSound string
	Examples    []string
	Mistakes    []string
	Discount    float64
	Feedback    string
}

// difficultSounds is scanned in order; the first entry whose Examples contain
// a target word wins, so a word listed under two sounds is graded once.
var difficultSounds = []DifficultSound{
	{
		Phoneme:     "th",
		TargetSound: "/θ/",
		Examples:    []string{"think", "three", "thing", "things", "thank", "thirty", "thursday", "month", "mouth", "birthday", "nothing"},
		Mistakes:    []string{"tink", "dink", "fink", "sink", "tree", "free", "ting", "tings", "tank", "dank", "turty", "noting"},
		Discount:    0.4,
		Feedback:    "Place your tongue between your teeth and blow air for the 'th' sound.",
	},
	{
		Phoneme:     "th",
		TargetSound: "/ð/",
		Examples:    []string{"this", "that", "these", "those", "they", "there", "then", "mother", "father", "brother", "weather", "together"},
		Mistakes:    []string{"dis", "dat", "dese", "dose", "dey", "dere", "den", "zis", "zat", "moder", "fader", "broder"},
		Discount:    0.4,
		Feedback:    "Voice the 'th' with your tongue between your teeth, like a soft 'd'.",
	},
	{
		Phoneme:     "r",
		TargetSound: "/r/",
		Examples:    []string{"red", "right", "road", "rice", "really", "problem", "correct", "library", "arrive"},
		Mistakes:    []string{"led", "light", "load", "lice", "leally", "ploblem", "collect", "liblary", "alive"},
		Discount:    0.35,
		Feedback:    "Curl your tongue back without touching the roof of your mouth for 'r'.",
	},
	{
		Phoneme:     "l",
		TargetSound: "/l/",
		Examples:    []string{"light", "love", "like", "fly", "glass", "slowly", "collect"},
		Mistakes:    []string{"right", "rove", "rike", "fry", "grass", "srowry", "correct"},
		Discount:    0.35,
		Feedback:    "Touch the tip of your tongue to the ridge behind your top teeth for 'l'.",
	},
	{
		Phoneme:     "v",
		TargetSound: "/v/",
		Examples:    []string{"very", "voice", "never", "seven", "every", "video", "have"},
		Mistakes:    []string{"berry", "wery", "boice", "neber", "sewen", "ebery", "wideo", "haf", "hab"},
		Discount:    0.3,
		Feedback:    "Touch your top teeth to your bottom lip and hum for 'v'.",
	},
	{
		Phoneme:     "w",
		TargetSound: "/w/",
		Examples:    []string{"water", "would", "away", "work", "wait", "woman"},
		Mistakes:    []string{"vater", "vould", "avay", "vork", "vait", "voman"},
		Discount:    0.3,
		Feedback:    "Round your lips into a small circle for the 'w' sound.",
	},
	{
		Phoneme:     "s",
		TargetSound: "/s/",
		Examples:    []string{"school", "street", "speak", "student", "special"},
		Mistakes:    []string{"eschool", "estreet", "espeak", "estudent", "especial"},
		Discount:    0.3,
		Feedback:    "Start directly with the 's' sound without adding a vowel before it.",
	},
}

func soundForWord(word string) *DifficultSound {
	for i := range difficultSounds {
		for _, ex := range difficultSounds[i].Examples {
			if ex == word {
				return &difficultSounds[i]
			}
		}
	}
	return nil
}
