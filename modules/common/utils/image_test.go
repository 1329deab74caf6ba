package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataURIRoundTrip(t *testing.T) {
	data := []byte{0x89, 0x50, 0x4E, 0x47}

	uri := EncodeDataURI("image/png", data)
	assert.Contains(t, uri, "data:image/png;base64,")

	mime, decoded, err := DecodeDataURI(uri)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mime)
	assert.Equal(t, data, decoded)
}

func TestDecodeDataURIRejectsMalformed(t *testing.T) {
	_, _, err := DecodeDataURI("not a data uri")
	assert.Error(t, err)

	_, _, err = DecodeDataURI("data:image/png;base64,!!!not-base64!!!")
	assert.Error(t, err)
}

func TestShrinkImageDataURIKeepsOriginalOnFailure(t *testing.T) {
	// PNG가 아닌 데이터는 변환에 실패하고 원본을 그대로 돌려줌
	original := EncodeDataURI("image/png", []byte("definitely not a png"))
	assert.Equal(t, original, ShrinkImageDataURI(original, 90))

	// SVG 폴백 등 PNG 이외 타입도 건드리지 않음
	svg := "data:image/svg+xml;base64,PHN2Zz48L3N2Zz4="
	assert.Equal(t, svg, ShrinkImageDataURI(svg, 90))
}
