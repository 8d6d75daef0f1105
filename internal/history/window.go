package history

// MaxPageButtons is how many page-number buttons the pager shows at once.
const MaxPageButtons = 7

// PageWindow returns the page numbers to render as buttons, keeping the
// current page centered once there are more pages than buttons.
func PageWindow(current, total int) []int {
	n := min(total, MaxPageButtons)
	if n <= 0 {
		return []int{}
	}

	first := 1
	switch {
	case total <= MaxPageButtons, current <= 4:
		first = 1
	case current >= total-3:
		first = total - (MaxPageButtons - 1)
	default:
		first = current - 3
	}

	out := make([]int, n)
	for i := range out {
		out[i] = first + i
	}
	return out
}

type EmptyState struct {
	Title string `json:"title"`
	Hint  string `json:"hint"`
}

// EmptyStateFor is the placeholder shown when nothing matches.
func EmptyStateFor(search string) EmptyState {
	hint := "Get started by creating your first recycling request"
	if search != "" {
		hint = "Try adjusting your search terms"
	}
	return EmptyState{Title: "No requests found", Hint: hint}
}
