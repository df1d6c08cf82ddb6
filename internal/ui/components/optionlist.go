package components

import (
	"fmt"
	"sort"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/examdeck/internal/ui/theme"
)

// OptionList is a choice selector. In multi mode space toggles options
// and several may be checked at once; in single mode checking an option
// clears any previous one.
type OptionList struct {
	Options []string
	Multi   bool
	Cursor  int
	checked map[int]bool
}

// NewOptionList creates an option list, pre-checking the given indices.
func NewOptionList(options []string, multi bool, checked []int) OptionList {
	set := make(map[int]bool, len(checked))
	for _, i := range checked {
		if i >= 0 && i < len(options) {
			set[i] = true
		}
	}
	return OptionList{
		Options: options,
		Multi:   multi,
		checked: set,
	}
}

// Init returns nil.
func (o OptionList) Init() tea.Cmd {
	return nil
}

// Update handles cursor movement and toggling. It reports whether the
// checked set changed so the caller can persist the new selection.
func (o OptionList) Update(msg tea.Msg) (OptionList, bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, false
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Options)-1 {
			o.Cursor++
		}
	case "space", " ", "enter":
		return o.toggle(o.Cursor), true
	default:
		// Digit keys jump and toggle in one stroke.
		if idx := digitIndex(kmsg.String()); idx >= 0 && idx < len(o.Options) {
			o.Cursor = idx
			return o.toggle(idx), true
		}
	}

	return o, false
}

func (o OptionList) toggle(idx int) OptionList {
	next := make(map[int]bool, len(o.checked)+1)
	if o.Multi {
		for k, v := range o.checked {
			next[k] = v
		}
	}
	if o.checked[idx] {
		delete(next, idx)
	} else {
		next[idx] = true
	}
	o.checked = next
	return o
}

// Checked returns the checked option indices in ascending order, or nil
// when nothing is checked.
func (o OptionList) Checked() []int {
	if len(o.checked) == 0 {
		return nil
	}
	out := make([]int, 0, len(o.checked))
	for i := range o.checked {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// View renders the option list.
func (o OptionList) View() string {
	var s string
	for i, opt := range o.Options {
		mark := "( )"
		if o.Multi {
			mark = "[ ]"
		}
		if o.checked[i] {
			if o.Multi {
				mark = "[x]"
			} else {
				mark = "(x)"
			}
		}

		prefix := "  "
		if i == o.Cursor {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%s %d) %s", prefix, mark, i+1, opt)

		switch {
		case i == o.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		case o.checked[i]:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}

func digitIndex(key string) int {
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return -1
	}
	return int(key[0] - '1')
}
