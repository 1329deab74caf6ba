package imageclient

import "errors"

// 이미지 생성 에러 분류
// 게이트웨이의 재시도 정책이 이 분류에 따라 달라짐
var (
	// ErrAuthFailed - 자격증명 교환 실패 또는 401/403
	// 배치 전체에 대해 치명적이며 재시도하지 않음
	ErrAuthFailed = errors.New("image provider authentication failed")

	// ErrRateLimited - 429, 백오프를 늘려서 재시도
	ErrRateLimited = errors.New("image provider rate limit exceeded")

	// ErrContentFiltered - 400 계열, 같은 프롬프트 재시도는 무의미하므로 종결 처리
	ErrContentFiltered = errors.New("prompt rejected by content filter")

	// ErrGenerationFailed - 그 외 전송/서버 오류, 재시도 대상
	ErrGenerationFailed = errors.New("image generation failed")
)
