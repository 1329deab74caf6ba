package storydata

// InterestCategory - 관심사 분류 테이블 항목
type InterestCategory struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Emoji         string   `json:"emoji"`
	Subcategories []string `json:"subcategories"`
}

// InterestCategories - 아이 프로필에서 선택 가능한 관심사 분류
var InterestCategories = []InterestCategory{
	{
		ID:    "creative-play",
		Name:  "Creative Play",
		Emoji: "🎨",
		Subcategories: []string{
			"Drawing & Painting",
			"Music & Singing",
			"Dancing & Movement",
			"Storytelling & Drama",
			"Imagination Games",
		},
	},
	{
		ID:    "building-making",
		Name:  "Building & Making",
		Emoji: "🔨",
		Subcategories: []string{
			"Building Things - LEGO, blocks, construction toys",
			"Puzzles & Problem Solving",
			"Engineering & Robots",
			"Crafts & Making",
		},
	},
	{
		ID:    "active-sports",
		Name:  "Active & Sports",
		Emoji: "⚽",
		Subcategories: []string{
			"Running & Racing",
			"Ball Sports - Soccer, basketball, baseball",
			"Swimming & Water Play",
			"Climbing & Gymnastics",
			"Martial Arts & Dance",
		},
	},
	{
		ID:    "animals-nature",
		Name:  "Animals & Nature",
		Emoji: "🐾",
		Subcategories: []string{
			"Pets & Farm Animals",
			"Wild Animals & Safari",
			"Ocean Life & Sea Creatures",
			"Bugs & Insects",
			"Plants & Gardening",
		},
	},
	{
		ID:    "adventure-exploration",
		Name:  "Adventure & Exploration",
		Emoji: "🚀",
		Subcategories: []string{
			"Space & Astronomy",
			"Pirates & Treasure Hunting",
			"Exploring & Camping",
			"Travel & Different Cultures",
			"Mystery & Detective",
		},
	},
	{
		ID:    "learning-discovery",
		Name:  "Learning & Discovery",
		Emoji: "🔬",
		Subcategories: []string{
			"Science Experiments",
			"History & Past Times",
			"How Things Work",
			"Numbers & Math Games",
			"Reading & Books",
		},
	},
	{
		ID:    "games-entertainment",
		Name:  "Games & Entertainment",
		Emoji: "🎮",
		Subcategories: []string{
			"Video Games & Apps",
			"Board Games & Card Games",
			"Movies & TV Shows",
			"Superheroes & Comics",
			"Fantasy & Magic",
		},
	},
}

// ReadingLevel - 읽기 수준 테이블 항목
// PageCount/SentenceGuide/VocabularyGuide가 프롬프트 템플릿을 결정함
type ReadingLevel struct {
	Value           string `json:"value"`
	Label           string `json:"label"`
	PageCount       int    `json:"pageCount"`
	SentenceGuide   string `json:"sentenceGuide"`
	VocabularyGuide string `json:"vocabularyGuide"`
}

// ReadingLevels - 읽기 수준별 문장/페이지 템플릿
var ReadingLevels = []ReadingLevel{
	{
		Value:           "pre-reader",
		Label:           "Pre-reader (Pictures only)",
		PageCount:       4,
		SentenceGuide:   "1 very short sentence (3-5 words)",
		VocabularyGuide: "Use only very simple words. Focus on colors, shapes, and basic actions.",
	},
	{
		Value:           "early-reader",
		Label:           "Early Reader (Simple words)",
		PageCount:       6,
		SentenceGuide:   "1-2 short sentences (5-7 words each)",
		VocabularyGuide: "Use common sight words and simple vocabulary.",
	},
	{
		Value:           "beginner",
		Label:           "Beginner (Short sentences)",
		PageCount:       6,
		SentenceGuide:   "2-3 simple sentences",
		VocabularyGuide: "Use age-appropriate vocabulary with context clues.",
	},
	{
		Value:           "intermediate",
		Label:           "Intermediate (Paragraphs)",
		PageCount:       8,
		SentenceGuide:   "3-4 sentences with descriptive language",
		VocabularyGuide: "Include some challenging words with context.",
	},
	{
		Value:           "advanced",
		Label:           "Advanced (Chapter books)",
		PageCount:       10,
		SentenceGuide:   "3-5 sentences with rich vocabulary",
		VocabularyGuide: "Use rich, varied vocabulary appropriate for the age.",
	},
}

// DefaultPageCount - 프로필 없는 요청의 기본 페이지 수
const DefaultPageCount = 6

// GetReadingLevel - 읽기 수준 조회 (알 수 없는 값이면 beginner)
func GetReadingLevel(value string) ReadingLevel {
	for _, level := range ReadingLevels {
		if level.Value == value {
			return level
		}
	}
	return ReadingLevels[2]
}
