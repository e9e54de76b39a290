// Package parsers 언어 모델 응답 파서
package parsers

// Parser is the base interface for all parsers
type Parser interface {
	// GetType returns the type of parser
	GetType() string
}

// LineParser 완성된 응답 문자열을 줄 단위 항목으로 해석하는 파서
type LineParser interface {
	Parser
	Parse(output string) []string
}
