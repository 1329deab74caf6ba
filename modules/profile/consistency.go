package profile

import (
	"fmt"
	"strings"
)

// Clothing - 캐릭터 의상 세트
type Clothing struct {
	Top         string `json:"top"`
	Bottom      string `json:"bottom"`
	Shoes       string `json:"shoes"`
	Accessories string `json:"accessories"`
}

// CharacterAppearance - 프로필에서 유도되는 고정 외형
// 같은 프로필이면 항상 같은 외형이 나와야 함 (이미지 간 일관성의 핵심)
type CharacterAppearance struct {
	Name                string   `json:"name"`
	Age                 int      `json:"age"`
	Gender              string   `json:"gender"`
	SkinTone            string   `json:"skinTone"`
	HairColor           string   `json:"hairColor"`
	HairStyle           string   `json:"hairStyle"`
	EyeColor            string   `json:"eyeColor"`
	Clothing            Clothing `json:"clothing"`
	DistinctiveFeatures string   `json:"distinctiveFeatures"`
}

// clothingTable - 주요 관심사 키워드별 의상 테이블
// 관심사 문자열의 첫 단어(소문자)와 부분 일치로 선택함
var clothingTable = []struct {
	keyword string
	outfit  Clothing
}{
	{"space", Clothing{
		Top:         "navy blue t-shirt with white star pattern",
		Bottom:      "dark blue jeans",
		Shoes:       "white sneakers with blue laces",
		Accessories: "small telescope pendant necklace",
	}},
	{"ocean", Clothing{
		Top:         "turquoise t-shirt with wave design",
		Bottom:      "light blue shorts",
		Shoes:       "blue and white sandals",
		Accessories: "seashell bracelet",
	}},
	{"animals", Clothing{
		Top:         "green safari vest over white t-shirt",
		Bottom:      "khaki shorts",
		Shoes:       "brown hiking boots",
		Accessories: "small binoculars on a strap",
	}},
	{"sports", Clothing{
		Top:         "red athletic jersey with number 7",
		Bottom:      "black athletic shorts",
		Shoes:       "red and white sports shoes",
		Accessories: "sweatband on wrist",
	}},
	{"building", Clothing{
		Top:         "yellow construction vest over orange t-shirt",
		Bottom:      "blue denim overalls",
		Shoes:       "sturdy brown work boots",
		Accessories: "toy tool belt",
	}},
	{"superheroes", Clothing{
		Top:         "red t-shirt with lightning bolt design",
		Bottom:      "blue jeans",
		Shoes:       "red high-top sneakers",
		Accessories: "small red cape",
	}},
	{"music", Clothing{
		Top:         "purple t-shirt with colorful music notes",
		Bottom:      "black leggings",
		Shoes:       "sparkly silver shoes",
		Accessories: "headphones around neck",
	}},
	{"science", Clothing{
		Top:         "white lab coat over light blue shirt",
		Bottom:      "dark gray pants",
		Shoes:       "black and white shoes",
		Accessories: "toy safety goggles on head",
	}},
}

// defaultClothing - 매칭되는 관심사가 없을 때의 기본 의상
var defaultClothing = Clothing{
	Top:         "bright yellow t-shirt with rainbow design",
	Bottom:      "comfortable blue jeans",
	Shoes:       "colorful sneakers",
	Accessories: "friendship bracelet",
}

// GenerateConsistentCharacter - 프로필에서 고정 외형 생성 (순수 함수, 랜덤 없음)
func GenerateConsistentCharacter(p *ChildProfile) CharacterAppearance {
	hairColor := "auburn"
	hairStyle := "medium wavy hair"
	switch p.Gender {
	case "boy":
		hairColor = "dark brown"
		hairStyle = "short neat hair"
	case "girl":
		hairColor = "medium brown"
		hairStyle = "shoulder-length hair with bangs"
	}

	gender := p.Gender
	if gender == "" {
		gender = "child"
	}

	primaryInterest := ""
	if len(p.Interests) > 0 {
		primaryInterest = p.Interests[0]
	}

	return CharacterAppearance{
		Name:                p.Name,
		Age:                 p.Age,
		Gender:              gender,
		SkinTone:            "light peach skin",
		HairColor:           hairColor,
		HairStyle:           hairStyle,
		EyeColor:            "warm brown eyes",
		Clothing:            clothingForInterest(primaryInterest),
		DistinctiveFeatures: fmt.Sprintf("Always smiling, %d years old appearance", p.Age),
	}
}

// clothingForInterest - 주요 관심사에 맞는 의상 선택
func clothingForInterest(primaryInterest string) Clothing {
	normalized := strings.ToLower(primaryInterest)
	for _, entry := range clothingTable {
		if strings.Contains(normalized, entry.keyword) {
			return entry.outfit
		}
	}
	return defaultClothing
}

// DetailedCharacterPrompt - 모든 이미지 프롬프트에 반복 삽입할 캐릭터 블록
// 이미지 모델에는 호출 간 기억이 없으므로, 동일한 상세 설명을 매번 그대로 반복해서 일관성을 만듦
func DetailedCharacterPrompt(character CharacterAppearance) string {
	return fmt.Sprintf(`%s is a %d-year-old %s with %s, %s %s, and %s.
EXACT CLOTHING (NEVER CHANGE): %s wears %s, %s, %s, and %s.
%s.
CRITICAL: This EXACT appearance must be identical in every single image - same face, same hair, same clothes, same colors.`,
		character.Name, character.Age, character.Gender,
		character.SkinTone, character.HairColor, character.HairStyle, character.EyeColor,
		character.Name, character.Clothing.Top, character.Clothing.Bottom,
		character.Clothing.Shoes, character.Clothing.Accessories,
		character.DistinctiveFeatures)
}

// ImageConsistencyPrompt - 장면 설명에 캐릭터 블록과 일관성 규칙을 결합
func ImageConsistencyPrompt(character CharacterAppearance, sceneDescription string) string {
	return fmt.Sprintf(`%s

CHARACTER APPEARANCE (MUST BE EXACT):
%s

CONSISTENCY RULES:
1. %s's face must look EXACTLY the same as in previous images
2. Hair color (%s) and style (%s) must be IDENTICAL
3. Clothing must be EXACTLY: %s, %s, %s
4. Keep the same art style throughout all images
5. %s should appear as the same person, not a different child
6. Maintain consistent proportions and features`,
		sceneDescription,
		DetailedCharacterPrompt(character),
		character.Name,
		character.HairColor, character.HairStyle,
		character.Clothing.Top, character.Clothing.Bottom, character.Clothing.Shoes,
		character.Name)
}
