package parsers

import "strings"

// SubtaskParser parses sub-task replies, one sub-task per line
type SubtaskParser struct{}

// NewSubtaskParser creates a new SubtaskParser
func NewSubtaskParser() *SubtaskParser {
	return &SubtaskParser{}
}

// GetType returns the type of parser
func (p *SubtaskParser) GetType() string {
	return "subtask_line_parser"
}

// Parse splits the reply on newlines, trims each line and drops blank ones.
// Order is preserved and duplicates are kept.
func (p *SubtaskParser) Parse(output string) []string {
	lines := strings.Split(strings.ReplaceAll(output, "\r\n", "\n"), "\n")

	subTasks := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		subTasks = append(subTasks, line)
	}
	return subTasks
}
