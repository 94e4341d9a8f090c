package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	labelStyle   = lipgloss.NewStyle().Bold(true)
)

// formatINR renders an amount with Indian digit grouping: the last
// three digits form one group, every pair before that its own, so
// 12345678.5 becomes ₹1,23,45,678.50.
func formatINR(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	paise := int64(math.Round(amount * 100))
	rupees := paise / 100
	fraction := paise % 100

	digits := strconv.FormatInt(rupees, 10)
	grouped := digits
	if len(digits) > 3 {
		head := digits[:len(digits)-3]
		parts := []string{digits[len(digits)-3:]}
		for len(head) > 2 {
			parts = append([]string{head[len(head)-2:]}, parts...)
			head = head[:len(head)-2]
		}
		parts = append([]string{head}, parts...)
		grouped = strings.Join(parts, ",")
	}

	out := "₹" + grouped
	if fraction > 0 {
		out += fmt.Sprintf(".%02d", fraction)
	}
	if neg {
		out = "-" + out
	}
	return out
}
