package catalog

type SeedQuestion struct {
	Category      Category
	Difficulty    Difficulty
	Prompt        string
	Options       []string
	CorrectOption int
	Explanation   string
	Tags          []string
}

func SeedQuestions() []SeedQuestion {
	return []SeedQuestion{
		{
			Category:      DSA,
			Difficulty:    Easy,
			Prompt:        "What is the time complexity of binary search?",
			Options:       []string{"O(n)", "O(log n)", "O(n²)", "O(1)"},
			CorrectOption: 1,
			Explanation:   "Binary search halves the search space on every iteration, which gives O(log n).",
			Tags:          []string{"algorithms", "search", "complexity"},
		},
		{
			Category:      DSA,
			Difficulty:    Medium,
			Prompt:        "Which data structure is best for implementing an LRU cache?",
			Options:       []string{"Array", "HashMap + Doubly Linked List", "Stack", "Queue"},
			CorrectOption: 1,
			Explanation:   "The map gives O(1) lookup and the doubly linked list gives O(1) move-to-front and eviction.",
			Tags:          []string{"cache", "data-structures", "optimization"},
		},
		{
			Category:      Development,
			Difficulty:    Easy,
			Prompt:        "What does REST stand for?",
			Options:       []string{"Representational State Transfer", "Remote State Transfer", "Relational State Transfer", "Real State Transfer"},
			CorrectOption: 0,
			Explanation:   "REST stands for Representational State Transfer, an architectural style for web services.",
			Tags:          []string{"web", "api", "architecture"},
		},
		{
			Category:      Development,
			Difficulty:    Medium,
			Prompt:        "Which HTTP method is idempotent?",
			Options:       []string{"POST", "PUT", "PATCH", "All of the above"},
			CorrectOption: 1,
			Explanation:   "PUT is idempotent: repeating the same request leaves the resource in the same state.",
			Tags:          []string{"http", "web", "api"},
		},
		{
			Category:      AI,
			Difficulty:    Easy,
			Prompt:        "What is supervised learning?",
			Options:       []string{"Learning without labels", "Learning with input-output pairs", "Learning through rewards", "Learning by clustering"},
			CorrectOption: 1,
			Explanation:   "Supervised learning fits a model on labeled input-output pairs.",
			Tags:          []string{"machine-learning", "supervised", "training"},
		},
		{
			Category:      Cloud,
			Difficulty:    Easy,
			Prompt:        "What does AWS EC2 stand for?",
			Options:       []string{"Elastic Compute Cloud", "Enhanced Cloud Computing", "Elastic Container Cloud", "Extended Compute Cluster"},
			CorrectOption: 0,
			Explanation:   "EC2 is Elastic Compute Cloud, AWS's resizable compute capacity.",
			Tags:          []string{"aws", "cloud", "compute"},
		},
		{
			Category:      JavaScript,
			Difficulty:    Easy,
			Prompt:        "Which keyword declares a block-scoped variable that cannot be reassigned?",
			Options:       []string{"var", "let", "const", "static"},
			CorrectOption: 2,
			Explanation:   "const declares a block-scoped binding that cannot be reassigned.",
			Tags:          []string{"syntax", "scope"},
		},
		{
			Category:      React,
			Difficulty:    Medium,
			Prompt:        "Which hook runs a side effect after render?",
			Options:       []string{"useMemo", "useEffect", "useRef", "useContext"},
			CorrectOption: 1,
			Explanation:   "useEffect schedules its callback after the component has rendered.",
			Tags:          []string{"hooks", "lifecycle"},
		},
		{
			Category:      Python,
			Difficulty:    Easy,
			Prompt:        "Which built-in type is immutable?",
			Options:       []string{"list", "dict", "set", "tuple"},
			CorrectOption: 3,
			Explanation:   "Tuples cannot be modified after creation.",
			Tags:          []string{"types"},
		},
	}
}
