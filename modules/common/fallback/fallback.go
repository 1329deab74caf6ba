package fallback

import (
	"encoding/base64"
	"fmt"
)

// palette - 폴백 일러스트 색상 조합
type palette struct {
	bg     string
	fg     string
	accent string
}

// palettes - 슬롯 인덱스로 순환 선택되는 색상 팔레트
var palettes = []palette{
	{bg: "#FFE5E5", fg: "#FF6B6B", accent: "#4ECDC4"}, // Coral & Teal
	{bg: "#E5F3FF", fg: "#4ECDC4", accent: "#FFE66D"}, // Blue & Yellow
	{bg: "#F0E5FF", fg: "#9B59B6", accent: "#3498DB"}, // Purple & Blue
	{bg: "#FFE5CC", fg: "#FF8C42", accent: "#6C5CE7"}, // Orange & Purple
	{bg: "#E5FFE5", fg: "#27AE60", accent: "#E74C3C"}, // Green & Red
}

// characterEmojis - 아키타입별 글리프 (모르는 아키타입은 별)
var characterEmojis = map[string]string{
	"princess": "👸",
	"knight":   "⚔️",
	"dragon":   "🐲",
	"wizard":   "🧙‍♂️",
	"cat":      "🐱",
	"mouse":    "🐭",
	"hero":     "🦸",
}

// scene - 슬롯 인덱스로 순환 선택되는 장면 아이콘/캡션
type scene struct {
	icon    string
	caption string
}

var scenes = []scene{
	{icon: "🏰", caption: "Adventure Begins"},
	{icon: "🌟", caption: "Magical Journey"},
	{icon: "🌈", caption: "Happy Ending"},
}

// GenerateFallbackImage - 외부 생성 실패 시 사용할 로컬 SVG 일러스트 생성
// 외부 호출 없이 항상 성공하며, 같은 입력이면 항상 같은 결과가 나옴
func GenerateFallbackImage(prompt string, index int, character string) string {
	color := palettes[index%len(palettes)]

	emoji, ok := characterEmojis[character]
	if !ok {
		emoji = "⭐"
	}

	sc := scenes[index%len(scenes)]

	svg := fmt.Sprintf(`<svg width="512" height="512" viewBox="0 0 512 512" xmlns="http://www.w3.org/2000/svg">
  <defs>
    <linearGradient id="bg-gradient" x1="0%%" y1="0%%" x2="100%%" y2="100%%">
      <stop offset="0%%" style="stop-color:%[1]s;stop-opacity:1" />
      <stop offset="100%%" style="stop-color:%[2]s;stop-opacity:0.3" />
    </linearGradient>
    <filter id="soft-shadow">
      <feDropShadow dx="0" dy="4" stdDeviation="8" flood-opacity="0.15"/>
    </filter>
  </defs>
  <rect width="512" height="512" fill="url(#bg-gradient)"/>
  <circle cx="50" cy="50" r="30" fill="%[3]s" opacity="0.2"/>
  <circle cx="462" cy="462" r="40" fill="%[2]s" opacity="0.2"/>
  <circle cx="450" cy="80" r="25" fill="%[3]s" opacity="0.15"/>
  <circle cx="80" cy="450" r="35" fill="%[2]s" opacity="0.15"/>
  <rect x="106" y="156" width="300" height="200" rx="20" fill="white" opacity="0.9" filter="url(#soft-shadow)"/>
  <text x="256" y="220" font-family="Arial, sans-serif" font-size="64" text-anchor="middle" fill="%[2]s">%[4]s</text>
  <text x="256" y="290" font-family="Arial, sans-serif" font-size="40" text-anchor="middle" fill="%[3]s">%[5]s</text>
  <text x="256" y="330" font-family="Arial, sans-serif" font-size="18" text-anchor="middle" fill="%[2]s" font-weight="600">%[6]s</text>
  <text x="150" y="130" font-family="Arial, sans-serif" font-size="24" fill="%[3]s" opacity="0.6">✨</text>
  <text x="350" y="130" font-family="Arial, sans-serif" font-size="24" fill="%[3]s" opacity="0.6">✨</text>
  <text x="150" y="390" font-family="Arial, sans-serif" font-size="24" fill="%[3]s" opacity="0.6">⭐</text>
  <text x="350" y="390" font-family="Arial, sans-serif" font-size="24" fill="%[3]s" opacity="0.6">⭐</text>
</svg>`, color.bg, color.fg, color.accent, emoji, sc.icon, sc.caption)

	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))
}

// IsFallbackImage - data URI가 폴백 SVG인지 판별
func IsFallbackImage(dataURI string) bool {
	return len(dataURI) > 23 && dataURI[:23] == "data:image/svg+xml;base"
}
