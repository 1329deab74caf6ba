package utils

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"
	"log"
	"strings"

	_ "github.com/kolesa-team/go-webp/decoder" // WebP 디코더 등록
	"github.com/kolesa-team/go-webp/encoder"
	"github.com/kolesa-team/go-webp/webp"
)

// EncodeDataURI - 이미지 바이너리를 data URI로 변환
func EncodeDataURI(mimeType string, data []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
}

// DecodeDataURI - data URI를 MIME 타입과 바이너리로 분리
func DecodeDataURI(dataURI string) (mimeType string, data []byte, err error) {
	if !strings.HasPrefix(dataURI, "data:") {
		return "", nil, fmt.Errorf("not a data URI")
	}
	commaIdx := strings.Index(dataURI, ",")
	if commaIdx < 0 {
		return "", nil, fmt.Errorf("malformed data URI")
	}

	header := dataURI[5:commaIdx] // 예: "image/png;base64"
	mimeType = strings.SplitN(header, ";", 2)[0]

	data, err = base64.StdEncoding.DecodeString(dataURI[commaIdx+1:])
	if err != nil {
		return "", nil, fmt.Errorf("failed to decode base64 payload: %w", err)
	}
	return mimeType, data, nil
}

// ConvertPNGToWebP - PNG 바이너리를 WebP로 변환
func ConvertPNGToWebP(pngData []byte, quality float32) ([]byte, error) {
	img, err := png.Decode(bytes.NewReader(pngData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode PNG: %w", err)
	}

	options, err := encoder.NewLossyEncoderOptions(encoder.PresetDefault, quality)
	if err != nil {
		return nil, fmt.Errorf("failed to create WebP encoder options: %w", err)
	}

	var webpBuffer bytes.Buffer
	if err := webp.Encode(&webpBuffer, img, options); err != nil {
		return nil, fmt.Errorf("failed to encode WebP: %w", err)
	}

	return webpBuffer.Bytes(), nil
}

// ShrinkImageDataURI - PNG data URI를 WebP로 변환해서 더 작으면 교체
// 변환 실패나 역효과면 원본 그대로 반환
func ShrinkImageDataURI(dataURI string, quality float32) string {
	mimeType, data, err := DecodeDataURI(dataURI)
	if err != nil || mimeType != "image/png" {
		return dataURI
	}

	webpData, err := ConvertPNGToWebP(data, quality)
	if err != nil {
		log.Printf("⚠️ WebP conversion failed, keeping PNG: %v", err)
		return dataURI
	}
	if len(webpData) >= len(data) {
		return dataURI
	}

	log.Printf("🔄 Image shrunk: %d bytes → %d bytes (%.1f%% reduction)",
		len(data), len(webpData),
		float64(len(data)-len(webpData))/float64(len(data))*100)
	return EncodeDataURI("image/webp", webpData)
}
