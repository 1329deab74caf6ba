package story

import (
	"bufio"
	"fmt"
	"regexp"
	"strings"
)

var (
	titleRegex = regexp.MustCompile(`^Title:\s*(.+)$`)
	pageRegex  = regexp.MustCompile(`^Page\s+(\d+):\s*(.+)$`)
	imageRegex = regexp.MustCompile(`^Image\s+(\d+):\s*(.+)$`)
)

// FormatMismatchError - LLM 응답이 기대한 줄 개수를 채우지 못했을 때의 에러
// 조용히 잘라내지 않고 기대/실제 개수를 명시적으로 보고함
type FormatMismatchError struct {
	ExpectedPages int
	GotPages      int
	GotImages     int
}

func (e *FormatMismatchError) Error() string {
	return fmt.Sprintf("story format mismatch: expected %d pages, got %d pages and %d image descriptions",
		e.ExpectedPages, e.GotPages, e.GotImages)
}

// ParseStoryResponse - Title:/Page N:/Image N: 줄 형식 응답 파싱
// 페이지가 하나라도 있으면 부분 결과를 함께 반환하고, 개수가 모자라면 FormatMismatchError를 같이 돌려줌
func ParseStoryResponse(content string, expectedPages int) (*ParsedStory, error) {
	parsed := &ParsedStory{Title: DefaultTitle}

	scanner := bufio.NewScanner(strings.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if m := titleRegex.FindStringSubmatch(line); m != nil {
			parsed.Title = strings.TrimSpace(m[1])
			continue
		}
		if m := pageRegex.FindStringSubmatch(line); m != nil {
			parsed.Pages = append(parsed.Pages, strings.TrimSpace(m[2]))
			continue
		}
		if m := imageRegex.FindStringSubmatch(line); m != nil {
			parsed.ImagePrompts = append(parsed.ImagePrompts, strings.TrimSpace(m[2]))
		}
	}

	if len(parsed.Pages) != expectedPages || len(parsed.ImagePrompts) != expectedPages {
		return parsed, &FormatMismatchError{
			ExpectedPages: expectedPages,
			GotPages:      len(parsed.Pages),
			GotImages:     len(parsed.ImagePrompts),
		}
	}

	return parsed, nil
}
