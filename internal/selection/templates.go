package selection

// BuiltinTemplates is the pre-authored pool backing the fallback generator.
// %s expands to the child's name.
var BuiltinTemplates = []Template{
	// Math
	{
		ID: "dragons_math_easy", Theme: "dragons", Tags: []string{"dragons", "fantasy", "animals"},
		Focus: "math", Difficulty: "easy",
		StoryPart:   "%s tiptoes into the dragon's cave and finds 2 glittering eggs by the fire. A friendly dragon nudges 1 more egg toward %s.",
		Question:    "How many dragon eggs does %s have now?",
		Answer:      "3",
		Explanation: "2 eggs plus 1 more egg makes 3 eggs.",
	},
	{
		ID: "dragons_math_medium", Theme: "dragons", Tags: []string{"dragons", "fantasy"},
		Focus: "math", Difficulty: "medium",
		StoryPart:   "The dragon guards 8 gold coins. To open the cave door, %s must give the dragon 3 of them.",
		Question:    "How many gold coins does the dragon have left to guard after %s takes 3?",
		Answer:      "5",
		Explanation: "8 coins minus 3 coins leaves 5 coins.",
	},
	{
		ID: "dragons_math_hard", Theme: "dragons", Tags: []string{"dragons", "fantasy"},
		Focus: "math", Difficulty: "hard",
		StoryPart:   "Three dragon nests sit on the mountain. Each nest holds 4 eggs, and %s spots 2 more eggs hidden behind a rock.",
		Question:    "How many eggs are on the mountain in total?",
		Answer:      "14",
		Explanation: "3 nests of 4 eggs is 12, and 2 more makes 14.",
	},
	{
		ID: "pirates_math_easy", Theme: "pirates", Tags: []string{"pirates", "sea", "adventure"},
		Focus: "math", Difficulty: "easy",
		StoryPart:   "Captain %s spies 3 treasure chests on the beach and 1 more floating in the waves.",
		Question:    "How many treasure chests can Captain %s collect?",
		Answer:      "4",
		Explanation: "3 chests plus 1 chest makes 4 chests.",
	},
	{
		ID: "pirates_math_medium", Theme: "pirates", Tags: []string{"pirates", "sea"},
		Focus: "math", Difficulty: "medium",
		StoryPart:   "The ship's map shows 10 islands. Captain %s has already explored 4 of them.",
		Question:    "How many islands are left for Captain %s to explore?",
		Answer:      "6",
		Explanation: "10 islands minus 4 explored leaves 6.",
	},
	{
		ID: "pirates_math_hard", Theme: "pirates", Tags: []string{"pirates", "sea"},
		Focus: "math", Difficulty: "hard",
		StoryPart:   "Each of the 4 crew members carries 5 gold coins ashore, but the parrot steals 2 coins and flies away.",
		Question:    "How many gold coins reach the treasure pile?",
		Answer:      "18",
		Explanation: "4 crew times 5 coins is 20, minus the 2 stolen makes 18.",
	},
	{
		ID: "princesses_math_easy", Theme: "princesses", Tags: []string{"princesses", "castle", "royal"},
		Focus: "math", Difficulty: "easy",
		StoryPart:   "Princess %s picks 2 roses from the castle garden and the gardener hands over 2 more.",
		Question:    "How many roses does Princess %s hold?",
		Answer:      "4",
		Explanation: "2 roses plus 2 roses makes 4 roses.",
	},
	{
		ID: "princesses_math_medium", Theme: "princesses", Tags: []string{"princesses", "castle"},
		Focus: "math", Difficulty: "medium",
		StoryPart:   "Nine royal guests are coming to the feast, but only 6 chairs stand in the great hall.",
		Question:    "How many more chairs does Princess %s need?",
		Answer:      "3",
		Explanation: "9 guests minus 6 chairs means 3 more chairs.",
	},
	{
		ID: "princesses_math_hard", Theme: "princesses", Tags: []string{"princesses", "castle"},
		Focus: "math", Difficulty: "hard",
		StoryPart:   "The castle has 3 towers, and each tower needs 6 lanterns lit before dark. The helpers have already lit 5 lanterns.",
		Question:    "How many lanterns are still unlit?",
		Answer:      "13",
		Explanation: "3 towers times 6 lanterns is 18, minus the 5 lit makes 13.",
	},

	// Vocabulary (generic across themes)
	{
		ID: "any_vocab_easy", Tags: []string{"adventure"},
		Focus: "vocabulary", Difficulty: "easy",
		StoryPart:   "%s meets a guide who says the path ahead is 'big' - really, really big!",
		Question:    "Which word means the same as 'big'?",
		Answer:      "large",
		Explanation: "'Large' means the same thing as 'big'.",
	},
	{
		ID: "any_vocab_medium", Tags: []string{"adventure"},
		Focus: "vocabulary", Difficulty: "medium",
		StoryPart:   "The guide tells %s that only the 'brave' may cross the old bridge.",
		Question:    "What does 'brave' mean?",
		Answer:      "not afraid",
		Explanation: "Someone brave keeps going even when things are scary.",
	},
	{
		ID: "any_vocab_hard", Tags: []string{"adventure"},
		Focus: "vocabulary", Difficulty: "hard",
		StoryPart:   "An old sign reads: 'Only the persistent will find the treasure.' %s thinks hard about that word.",
		Question:    "What does 'persistent' mean?",
		Answer:      "keeps trying",
		Explanation: "A persistent person keeps trying and never gives up.",
	},

	// Problem solving (generic across themes)
	{
		ID: "any_problem_easy", Tags: []string{"adventure"},
		Focus: "problem_solving", Difficulty: "easy",
		StoryPart:   "A river blocks the path, and %s sees a sturdy wooden bridge just a few steps away.",
		Question:    "What should %s use to cross the river?",
		Answer:      "bridge",
		Explanation: "The bridge is the safe way across the water.",
	},
	{
		ID: "any_problem_medium", Tags: []string{"adventure"},
		Focus: "problem_solving", Difficulty: "medium",
		StoryPart:   "The door has three keyholes: one round, one square, one star-shaped. %s holds a star-shaped key.",
		Question:    "Which keyhole should %s try?",
		Answer:      "star",
		Explanation: "A star-shaped key fits the star-shaped keyhole.",
	},
	{
		ID: "any_problem_hard", Tags: []string{"adventure"},
		Focus: "problem_solving", Difficulty: "hard",
		StoryPart:   "The gate only opens for the next number in the pattern carved above it: 2, 4, 6...",
		Question:    "What number should %s say to open the gate?",
		Answer:      "8",
		Explanation: "The pattern counts up by 2, so after 6 comes 8.",
	},
}
