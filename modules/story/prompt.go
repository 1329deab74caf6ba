package story

import (
	"fmt"
	"strings"

	"storyweaver-server/modules/profile"
	"storyweaver-server/modules/storydata"
)

// ComposedPrompt - 프롬프트와 다운스트림 파서가 기대하는 형식 계약
// 파서는 구조화된 출력이 아니라 줄 단위 패턴 매칭이므로, 형식 지시는 반드시 프롬프트에 포함됨
type ComposedPrompt struct {
	Text      string
	PageCount int
}

// ComposeStoryPrompt - 스토리 생성 프롬프트 조합
// 프로필이 없으면 6페이지 기본 프롬프트, 있으면 읽기 수준/관심사/대명사를 반영
func ComposeStoryPrompt(req *StoryRequest) ComposedPrompt {
	if req.Profile == nil {
		return ComposedPrompt{
			Text:      genericStoryPrompt(req.Character, req.Genre, req.Age),
			PageCount: storydata.DefaultPageCount,
		}
	}
	return personalizedStoryPrompt(req.Character, req.Genre, req.Age, req.Profile)
}

// genericStoryPrompt - 프로필 없는 기본 프롬프트 (6페이지 고정)
func genericStoryPrompt(character, genre string, age int) string {
	setting, plotElement := storydata.ThemePromptElements(genre)

	var b strings.Builder

	fmt.Fprintf(&b, `You are a children's book author. Create a %d-page story with these requirements:
- Main character: %s
- Setting: %s (feature a %s and a story about %s)
- Age group: %d years old
- Each page: 2-3 simple sentences
- Include a gentle moral about friendship, kindness, or courage
- Use age-appropriate vocabulary

`, storydata.DefaultPageCount, character, genre, setting, plotElement, age)

	writeFormatContract(&b, storydata.DefaultPageCount, "", age, "")
	return b.String()
}

// personalizedStoryPrompt - 프로필 기반 개인화 프롬프트
func personalizedStoryPrompt(character, genre string, age int, p *profile.ChildProfile) ComposedPrompt {
	level := storydata.GetReadingLevel(p.ReadingLevel)
	pronouns := p.Pronouns()
	primaryInterests := strings.Join(p.PrimaryInterests(), " and ")
	allInterests := strings.Join(p.AllInterests(), ", ")
	setting, plotElement := storydata.ThemePromptElements(genre)

	var b strings.Builder

	fmt.Fprintf(&b, `You are a children's book author creating a personalized story for %s, age %d.

CHILD PROFILE:
- Name: %s
- Age: %d years old
- Reading Level: %s
- Pronouns: %s
- Primary Interests: %s
- All Interests: %s

STORY REQUIREMENTS:
- Make %s the main character of the story
- Main character type: %s (but named %s)
- Setting: %s (feature a %s and a story about %s)
- Incorporate elements from their interests, especially %s
- Each page: %s
- %s
- Include a gentle moral that relates to their interests
- Use %s pronouns for %s

IMPORTANT: The story should feel personalized for %s, incorporating their specific interests into the plot, not just mentioning them.

`,
		p.Name, p.Age,
		p.Name, p.Age, level.Label, pronouns, primaryInterests, allInterests,
		p.Name, character, p.Name, genre, setting, plotElement, primaryInterests,
		level.SentenceGuide, level.VocabularyGuide,
		pronouns, p.Name,
		p.Name)

	writeFormatContract(&b, level.PageCount, p.Name, p.Age, p.Gender)

	return ComposedPrompt{Text: b.String(), PageCount: level.PageCount}
}

// writeFormatContract - 파서가 의존하는 Title:/Page N:/Image N: 줄 형식 지시
// LLM이 이 형식을 지키는 건 강제할 수 없는 텍스트 계약임
func writeFormatContract(b *strings.Builder, pageCount int, childName string, age int, gender string) {
	b.WriteString("Format your response EXACTLY like this:\n")
	if childName != "" {
		fmt.Fprintf(b, "Title: %s's [adventure name]\n\n", childName)
	} else {
		b.WriteString("Title: [story title]\n\n")
	}

	for i := 1; i <= pageCount; i++ {
		switch {
		case i == 1 && childName != "":
			fmt.Fprintf(b, "Page %d: [story text with %s as main character]\n", i, childName)
		case i == pageCount:
			fmt.Fprintf(b, "Page %d: [story text with moral/lesson]\n", i)
		default:
			fmt.Fprintf(b, "Page %d: [story text]\n", i)
		}
	}
	b.WriteString("\n")

	childDesc := "child"
	if gender != "" {
		childDesc = gender
	}
	for i := 1; i <= pageCount; i++ {
		switch {
		case i == 1 && childName != "":
			fmt.Fprintf(b, "Image %d: [visual description showing %s as a %d-year-old %s]\n", i, childName, age, childDesc)
		case i == pageCount:
			fmt.Fprintf(b, "Image %d: [visual description with happy ending]\n", i)
		default:
			fmt.Fprintf(b, "Image %d: [brief visual description for illustration]\n", i)
		}
	}
}

// PersonalizeImagePrompt - 페이지 이미지 설명에 프로필 요소를 주입
func PersonalizeImagePrompt(basePrompt string, p *profile.ChildProfile) string {
	if p == nil {
		return basePrompt
	}

	style := "detailed cartoon"
	if p.Age <= 5 {
		style = "simple, bright cartoon"
	}

	genderDesc := fmt.Sprintf("%d-year-old child", p.Age)
	if p.Gender != "" {
		genderDesc = fmt.Sprintf("%d-year-old %s", p.Age, p.Gender)
	}

	personalized := basePrompt
	replacer := strings.NewReplacer(
		"main character", fmt.Sprintf("%s, a %s", p.Name, genderDesc),
		"the character", p.Name,
		"[character]", p.Name,
	)
	personalized = replacer.Replace(personalized)

	interestElement := ""
	if len(p.Interests) > 0 {
		interestElement = fmt.Sprintf(", incorporating elements of %s", p.Interests[0])
	}

	return fmt.Sprintf("Children's book illustration: %s%s, %s style, child-friendly, age-appropriate for %d year old",
		personalized, interestElement, style, p.Age)
}
