package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"traygen/tray"
)

// fieldKind selects the parser applied to a prompt answer.
type fieldKind int

const (
	fieldFloat fieldKind = iota
	fieldInt
	fieldText
)

// promptField is one question in the interactive form.
type promptField struct {
	label string
	def   string
	kind  fieldKind
}

// promptAnswers is the filled-in form handed back to the generate command.
type promptAnswers struct {
	params tray.Params
	output string
}

type promptModel struct {
	fields  []promptField
	answers []string
	index   int
	input   textinput.Model
	errMsg  string
	aborted bool
	done    bool
}

func newPromptModel(p tray.Params, output string) promptModel {
	fields := []promptField{
		{"Outer width in mm", formatFloat(p.OuterWidth), fieldFloat},
		{"Outer length in mm", formatFloat(p.OuterLength), fieldFloat},
		{"Base thickness in mm", formatFloat(p.BaseThickness), fieldFloat},
		{"Wall thickness in mm", formatFloat(p.WallThickness), fieldFloat},
		{"Wall height in mm", formatFloat(p.WallHeight), fieldFloat},
		{"Number of columns", strconv.Itoa(p.Cols), fieldInt},
		{"Number of rows", strconv.Itoa(p.Rows), fieldInt},
		{"Output STL filename", output, fieldText},
	}

	ti := textinput.New()
	ti.Placeholder = fields[0].def
	ti.Focus()

	return promptModel{
		fields:  fields,
		answers: make([]string, len(fields)),
		input:   ti,
	}
}

func (m promptModel) Init() tea.Cmd { return textinput.Blink }

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit

		case "enter":
			raw := strings.TrimSpace(m.input.Value())
			f := m.fields[m.index]
			if raw == "" {
				raw = f.def
			}
			switch f.kind {
			case fieldFloat:
				if _, err := strconv.ParseFloat(raw, 64); err != nil {
					m.errMsg = "Invalid number, please try again."
					return m, nil
				}
			case fieldInt:
				if _, err := strconv.Atoi(raw); err != nil {
					m.errMsg = "Invalid integer, please try again."
					return m, nil
				}
			}
			m.errMsg = ""
			m.answers[m.index] = raw
			m.index++
			if m.index == len(m.fields) {
				m.done = true
				return m, tea.Quit
			}
			m.input.Reset()
			m.input.Placeholder = m.fields[m.index].def
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	if m.done || m.aborted {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Interactive grid STL generator") + "\n")
	b.WriteString(dimStyle.Render("Press Enter to accept the value in [brackets], Esc to abort.") + "\n\n")
	for i := 0; i < m.index; i++ {
		b.WriteString(fmt.Sprintf("%s [%s]: %s\n", m.fields[i].label, m.fields[i].def, m.answers[i]))
	}
	f := m.fields[m.index]
	b.WriteString(fmt.Sprintf("%s [%s]: %s\n", f.label, f.def, m.input.View()))
	if m.errMsg != "" {
		b.WriteString(failStyle.Render(m.errMsg) + "\n")
	}
	return b.String()
}

// collect converts the validated answers into parameters. Parsing cannot
// fail here; every answer was checked on entry.
func (m promptModel) collect() promptAnswers {
	var a promptAnswers
	a.params.OuterWidth, _ = strconv.ParseFloat(m.answers[0], 64)
	a.params.OuterLength, _ = strconv.ParseFloat(m.answers[1], 64)
	a.params.BaseThickness, _ = strconv.ParseFloat(m.answers[2], 64)
	a.params.WallThickness, _ = strconv.ParseFloat(m.answers[3], 64)
	a.params.WallHeight, _ = strconv.ParseFloat(m.answers[4], 64)
	a.params.Cols, _ = strconv.Atoi(m.answers[5])
	a.params.Rows, _ = strconv.Atoi(m.answers[6])
	a.output = m.answers[7]
	return a
}

// promptParams runs the interactive form seeded with defaults. ok is false
// when the user aborted without completing the form.
func promptParams(p tray.Params, output string) (promptAnswers, bool, error) {
	final, err := tea.NewProgram(newPromptModel(p, output)).Run()
	if err != nil {
		return promptAnswers{}, false, err
	}
	m, ok := final.(promptModel)
	if !ok || m.aborted || !m.done {
		return promptAnswers{}, false, nil
	}
	return m.collect(), true, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
