package storydata

import "math/rand"

// StoryTheme - 장르/배경 테마 테이블 항목
type StoryTheme struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Emoji        string   `json:"emoji"`
	Description  string   `json:"description"`
	Settings     []string `json:"settings"`
	PlotElements []string `json:"plotElements"`
}

// StoryThemes - 스토리 테마 테이블
var StoryThemes = []StoryTheme{
	{
		ID:           "medieval",
		Name:         "Medieval Kingdom",
		Emoji:        "🏰",
		Description:  "Knights, castles, and royal adventures",
		Settings:     []string{"castle throne room", "medieval marketplace", "enchanted forest", "dragon's lair", "tournament grounds"},
		PlotElements: []string{"royal quests", "dragon encounters", "knightly tournaments", "protecting the kingdom", "magical artifacts"},
	},
	{
		ID:           "space",
		Name:         "Space Adventure",
		Emoji:        "🚀",
		Description:  "Explore planets and meet alien friends",
		Settings:     []string{"space station", "alien planets", "asteroid fields", "cosmic nebula", "moon base"},
		PlotElements: []string{"space exploration", "alien friendships", "cosmic mysteries", "saving planets", "discovering new worlds"},
	},
	{
		ID:           "ocean",
		Name:         "Ocean Depths",
		Emoji:        "🌊",
		Description:  "Underwater kingdoms and sea creatures",
		Settings:     []string{"coral reef palace", "sunken ship", "ocean trench", "mermaid city", "kelp forest"},
		PlotElements: []string{"underwater rescue", "finding treasures", "sea creature friends", "ocean mysteries", "protecting the reef"},
	},
	{
		ID:           "magical-forest",
		Name:         "Magical Forest",
		Emoji:        "🌲",
		Description:  "Enchanted woods full of wonder",
		Settings:     []string{"fairy grove", "talking tree hollow", "crystal waterfall", "mushroom village", "ancient ruins"},
		PlotElements: []string{"forest magic", "helping woodland creatures", "finding magical items", "nature adventures", "fairy friendships"},
	},
	{
		ID:           "modern",
		Name:         "Modern City",
		Emoji:        "🏙️",
		Description:  "Contemporary adventures in the city",
		Settings:     []string{"city park", "science museum", "skyscraper rooftop", "subway tunnels", "tech laboratory"},
		PlotElements: []string{"urban adventures", "helping neighbors", "solving mysteries", "technology quests", "community projects"},
	},
	{
		ID:           "pirate",
		Name:         "Pirate Seas",
		Emoji:        "🏴‍☠️",
		Description:  "Sailing adventures and treasure hunts",
		Settings:     []string{"pirate ship deck", "treasure island", "hidden cove", "port town", "sea cave"},
		PlotElements: []string{"treasure hunts", "sea battles", "island exploration", "pirate friendships", "nautical navigation"},
	},
	{
		ID:           "prehistoric",
		Name:         "Dinosaur Era",
		Emoji:        "🦕",
		Description:  "Travel back to the time of dinosaurs",
		Settings:     []string{"prehistoric jungle", "volcano valley", "tar pits", "dinosaur nests", "ancient caves"},
		PlotElements: []string{"dinosaur friendships", "prehistoric survival", "time travel", "fossil discoveries", "protecting eggs"},
	},
	{
		ID:           "arctic",
		Name:         "Arctic Adventure",
		Emoji:        "🐧",
		Description:  "Icy landscapes and polar friends",
		Settings:     []string{"ice palace", "glacier caves", "northern lights sky", "penguin colony", "research station"},
		PlotElements: []string{"ice rescue missions", "polar bear friendships", "aurora mysteries", "warming hearts", "arctic exploration"},
	},
}

// GetThemeByID - 테마 조회
func GetThemeByID(id string) (StoryTheme, bool) {
	for _, theme := range StoryThemes {
		if theme.ID == id {
			return theme, true
		}
	}
	return StoryTheme{}, false
}

// ThemePromptElements - 테마에서 배경/플롯 요소를 하나씩 선택
// 알 수 없는 테마는 기본값으로 대체
func ThemePromptElements(themeID string) (setting string, plotElement string) {
	theme, ok := GetThemeByID(themeID)
	if !ok {
		return "magical land", "adventure"
	}
	setting = theme.Settings[rand.Intn(len(theme.Settings))]
	plotElement = theme.PlotElements[rand.Intn(len(theme.PlotElements))]
	return setting, plotElement
}
