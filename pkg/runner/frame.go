package runner

import (
	"fmt"
	"strings"
)

// Part identifies a piece of the runner's own framing output.
type Part int

const (
	PartHeader Part = iota
	PartBanner
	PartFooter
)

// Decorator styles a framing part before it is written (e.g. ANSI colour).
// It receives the plain text and returns what should be printed.
type Decorator func(part Part, text string) string

const (
	boxWidth  = 60
	ruleWidth = 60
)

var (
	headerTitle = "🦀 RUST LEARNING GUIDE - All Lessons 🦀"
	footerTitle = "✅ All Lessons Completed Successfully! ✅"
)

func plain(_ Part, text string) string { return text }

// box draws title centred in a double-line frame.
func box(title string) string {
	pad := boxWidth - displayWidth(title)
	if pad < 0 {
		pad = 0
	}
	left := pad / 2
	right := pad - left

	var sb strings.Builder
	sb.WriteString("╔" + strings.Repeat("═", boxWidth) + "╗\n")
	sb.WriteString("║" + strings.Repeat(" ", left) + title + strings.Repeat(" ", right) + "║\n")
	sb.WriteString("╚" + strings.Repeat("═", boxWidth) + "╝")
	return sb.String()
}

// Header returns the frame printed before the first lesson.
func Header() string { return box(headerTitle) }

// Footer returns the frame printed after the last lesson.
func Footer() string { return box(footerTitle) }

// Banner returns the title block printed before a lesson.
func Banner(number int, title string) string {
	rule := strings.Repeat("=", ruleWidth)
	return fmt.Sprintf("%s\n📘 LESSON %d: %s\n%s", rule, number, title, rule)
}

// displayWidth approximates terminal columns: emoji and other symbols outside the
// BMP count as two, variation selectors as zero.
func displayWidth(s string) int {
	w := 0
	for _, r := range s {
		switch {
		case r == 0xFE0F:
		case r >= 0x1F000, r == 0x2705:
			w += 2
		default:
			w++
		}
	}
	return w
}
