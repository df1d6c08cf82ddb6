package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// NumericInput wraps bubbles/textinput for numerical answers. It admits
// digits, a leading minus and a decimal point; everything else is
// dropped before the inner model sees it.
type NumericInput struct {
	Model textinput.Model
}

// NewNumericInput creates a numeric input seeded with an initial value.
func NewNumericInput(initial string) NumericInput {
	ti := textinput.New()
	ti.Placeholder = "Enter answer"
	ti.CharLimit = 20
	ti.SetValue(initial)
	ti.Focus()
	return NumericInput{Model: ti}
}

// Init returns the initial command.
func (n NumericInput) Init() tea.Cmd {
	return n.Model.Focus()
}

// Update handles messages, filtering out non-numeric characters.
func (n NumericInput) Update(msg tea.Msg) (NumericInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		if len(key) == 1 && !isNumericChar(key[0]) {
			return n, nil
		}
		if key == "-" && n.Model.Position() != 0 {
			return n, nil
		}
		if key == "." && strings.Contains(n.Model.Value(), ".") {
			return n, nil
		}
	}

	var cmd tea.Cmd
	n.Model, cmd = n.Model.Update(msg)
	return n, cmd
}

// View renders the input.
func (n NumericInput) View() string {
	return n.Model.View()
}

// Value returns the current input value with surrounding space trimmed.
func (n NumericInput) Value() string {
	return strings.TrimSpace(n.Model.Value())
}

func isNumericChar(c byte) bool {
	return (c >= '0' && c <= '9') || c == '-' || c == '.'
}
