package storydata

import (
	"fmt"
	"strings"
)

// CharacterDetail - 선택 가능한 주인공 캐릭터의 고정 외형 정보
type CharacterDetail struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Emoji            string   `json:"emoji"`
	CoreIdentity     string   `json:"coreIdentity"`
	PhysicalFeatures []string `json:"physicalFeatures"`
	Clothing         []string `json:"clothing"`
	Equipment        []string `json:"equipment,omitempty"`
	ArtStyleNotes    string   `json:"artStyleNotes"`
}

// CharacterDetails - 캐릭터 아키타입 테이블 (이미지 프롬프트의 기준 외형)
var CharacterDetails = map[string]CharacterDetail{
	"princess": {
		ID:           "princess",
		Name:         "Princess",
		Emoji:        "👸",
		CoreIdentity: "Brave warrior princess with regal bearing and combat readiness",
		PhysicalFeatures: []string{
			"Young woman with warm, confident expression",
			"Long, flowing auburn/chestnut brown hair with natural waves",
			"Fair complexion with rosy cheeks",
			"Brown eyes with determined gaze",
			"Medium height with athletic build",
		},
		Clothing: []string{
			"Ornate golden crown with turquoise gemstones and decorative points",
			"Deep teal dress with structured bodice",
			"Red cape with golden clasps and trim",
			"Golden belt and decorative elements",
			"Puffy sleeves with golden trim",
			"Brown leather boots suitable for adventure",
		},
		Equipment: []string{
			"Large round silver shield with central boss",
			"Golden-handled sword held confidently at her side",
		},
		ArtStyleNotes: "Clean cartoon/animation style, warm lighting, heroic pose showing both elegance and strength",
	},
	"knight": {
		ID:           "knight",
		Name:         "Knight",
		Emoji:        "⚔️",
		CoreIdentity: "Noble armored warrior with classic chivalric bearing and protective strength",
		PhysicalFeatures: []string{
			"Human male with strong, heroic build",
			"Face partially visible through helmet visor",
			"Determined brown eyes",
			"Medium to tall height with broad shoulders",
		},
		Clothing: []string{
			"Full plate armor in polished steel",
			"Distinctive helmet with horizontal visor slits",
			"Golden trim and accents on armor",
			"Teal surcoat over armor",
			"Brown leather straps and buckles",
		},
		Equipment: []string{
			"Small battle axe at side",
			"Well-maintained equipment showing pride in service",
		},
		ArtStyleNotes: "Classic medieval knight aesthetic, realistic armor details, noble bearing, heroic proportions",
	},
	"dragon": {
		ID:           "dragon",
		Name:         "Dragon",
		Emoji:        "🐲",
		CoreIdentity: "Noble dragonborn sage with scholarly wisdom and ancient dignity",
		PhysicalFeatures: []string{
			"Anthropomorphic dragon standing upright",
			"Blue-grey scaled skin with darker blue accents",
			"Cream colored chest and belly scales",
			"Sharp, intelligent amber eyes",
			"Prominent horns curving back from head",
			"Folded wings visible behind torso",
		},
		Clothing: []string{
			"Deep blue hooded robe with tan trim",
			"Leather straps and buckles across chest",
			"Green gemstone amulet",
			"Brown leather belt with pouches",
		},
		ArtStyleNotes: "Detailed scales, noble bearing, warm earth-tone color palette with blue accents",
	},
	"cat": {
		ID:           "cat",
		Name:         "Cat",
		Emoji:        "🐱",
		CoreIdentity: "Sophisticated feline adventurer with gentleman's attire and roguish charm",
		PhysicalFeatures: []string{
			"Anthropomorphic brown tabby cat standing upright",
			"Distinctive brown striped fur pattern",
			"Bright green eyes with alert expression",
			"Pink nose and white muzzle markings",
			"Whiskers and bushy tail",
		},
		Clothing: []string{
			"Wide-brimmed dark blue hat with feathers",
			"Navy blue overcoat with golden trim and buttons",
			"Red vest underneath with white collar shirt",
			"Tan breeches and dark brown lace-up boots",
		},
		ArtStyleNotes: "Swashbuckling adventure style, rich colors, anthropomorphic but clearly feline",
	},
	"wizard": {
		ID:           "wizard",
		Name:         "Wizard",
		Emoji:        "🧙‍♂️",
		CoreIdentity: "Classic arcane master with ancient wisdom and mystical power",
		PhysicalFeatures: []string{
			"Elderly human male with weathered, wise face",
			"Long flowing white beard reaching chest",
			"Long white hair, slightly unkempt",
			"Tall, lean build with slightly stooped posture",
		},
		Clothing: []string{
			"Pointed wizard hat in deep blue with slight bend",
			"Long flowing robes in deep navy",
			"Purple inner robes and vest",
			"Golden buttons and clasps",
			"Brown leather belt with pouches and components",
		},
		Equipment: []string{
			"Tall wooden staff with ornate crystal top",
			"Small light emanating from staff tip",
		},
		ArtStyleNotes: "Classic fantasy wizard aesthetic, rich deep colors, mystical lighting effects, flowing fabric",
	},
	"mouse": {
		ID:           "mouse",
		Name:         "Mouse",
		Emoji:        "🐭",
		CoreIdentity: "Tiny valiant soldier with outsized courage and adventurous spirit",
		PhysicalFeatures: []string{
			"Small anthropomorphic grey mouse standing upright",
			"Round ears and long thin tail",
			"Bright black eyes with eager expression",
		},
		Clothing: []string{
			"Metal helmet with small crest",
			"Purple high collar cape",
			"Grey-olive tunic with brown leather belt",
			"Brown striped breeches and small boots",
		},
		Equipment: []string{
			"Small sword scaled to mouse proportions",
			"Belt with small supply pouches",
		},
		ArtStyleNotes: "Heroic proportions despite small size, medieval adventure aesthetic, earthy color palette",
	},
}

// 선택 화면 표시 순서 (맵 순회는 순서가 불안정함)
var characterOrder = []string{"princess", "knight", "dragon", "cat", "wizard", "mouse"}

// CharacterIDs - 전체 캐릭터 ID를 화면 순서대로 반환
func CharacterIDs() []string {
	ids := make([]string, len(characterOrder))
	copy(ids, characterOrder)
	return ids
}

// GetCharacterDetail - 아키타입 조회
func GetCharacterDetail(id string) (CharacterDetail, bool) {
	detail, ok := CharacterDetails[strings.ToLower(id)]
	return detail, ok
}

// CharacterImagePrompt - 이미지 프롬프트용 캐릭터 외형 설명 생성
func CharacterImagePrompt(id string) string {
	character, ok := GetCharacterDetail(id)
	if !ok {
		return ""
	}

	parts := []string{
		character.CoreIdentity,
		strings.Join(character.PhysicalFeatures, ", "),
		"Wearing: " + strings.Join(character.Clothing, ", "),
	}
	if len(character.Equipment) > 0 {
		parts = append(parts, strings.Join(character.Equipment, ", "))
	}
	parts = append(parts, character.ArtStyleNotes)

	return strings.Join(parts, ". ")
}

// CharacterConsistencyPrompt - 스토리 전체에서 캐릭터 외형을 고정하기 위한 문구
func CharacterConsistencyPrompt(id string, childName string) string {
	character, ok := GetCharacterDetail(id)
	if !ok {
		return ""
	}

	if childName != "" {
		return fmt.Sprintf("%s as a %s: %s. IMPORTANT: In every image, %s must have the exact same appearance as described here.",
			childName, character.Name, character.CoreIdentity, childName)
	}
	return fmt.Sprintf("The %s: %s. This character must look identical in every image.",
		character.Name, character.CoreIdentity)
}
