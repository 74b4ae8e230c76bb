// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/cybrota/avlindex/avl"
	"github.com/mattn/go-shellwords"
)

const shellHelp = `# Shell commands

| Command | Effect |
|---|---|
| ` + "`insert N...`" + ` | add values, duplicates are ignored |
| ` + "`search N...`" + ` | report whether values are stored |
| ` + "`remove N...`" + ` | delete values |
| ` + "`display`" + ` | print the values in ascending order |
| ` + "`visualize`" + ` | draw the tree and its properties |
| ` + "`size`" + ` / ` + "`empty`" + ` | count values / check for an empty tree |
| ` + "`min`" + ` / ` + "`max`" + ` | smallest / largest value |
| ` + "`clear`" + ` | drop every value |
| ` + "`exit`" + ` | leave the shell |

Keys: **ctrl+y** copies the sorted values, **pgup/pgdown** scroll, **esc** quits.
`

// commandResult is what one shell line produced.
type commandResult struct {
	output   string
	markdown bool
	quit     bool
}

// splitCommand splits a shell line into words, honouring quotes.
func splitCommand(line string) ([]string, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("failed to parse command %q: %v", line, err)
	}
	return args, nil
}

func parseValues(args []string) ([]int, error) {
	if len(args) == 0 {
		return nil, errors.New("expected at least one integer value")
	}
	values := make([]int, 0, len(args))
	for _, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", arg)
		}
		values = append(values, v)
	}
	return values, nil
}

// executeCommand runs one shell line against tree.
func executeCommand(tree *avl.OrderedTree[int], line string) (commandResult, error) {
	parts, err := splitCommand(line)
	if err != nil {
		return commandResult{}, err
	}
	if len(parts) == 0 {
		return commandResult{}, nil
	}

	name, args := strings.ToLower(parts[0]), parts[1:]
	switch name {
	case "insert", "add":
		values, err := parseValues(args)
		if err != nil {
			return commandResult{}, err
		}
		lines := make([]string, 0, len(values))
		for _, v := range values {
			before := tree.Len()
			tree.Insert(v)
			if tree.Len() > before {
				lines = append(lines, fmt.Sprintf("Inserted %d", v))
			} else {
				lines = append(lines, fmt.Sprintf("%d is already present", v))
			}
		}
		return commandResult{output: strings.Join(lines, "\n")}, nil

	case "search", "find":
		values, err := parseValues(args)
		if err != nil {
			return commandResult{}, err
		}
		lines := make([]string, 0, len(values))
		for _, v := range values {
			if tree.Contains(v) {
				lines = append(lines, fmt.Sprintf("Found %d", v))
			} else {
				lines = append(lines, fmt.Sprintf("Not found %d", v))
			}
		}
		return commandResult{output: strings.Join(lines, "\n")}, nil

	case "remove", "delete":
		values, err := parseValues(args)
		if err != nil {
			return commandResult{}, err
		}
		lines := make([]string, 0, len(values))
		for _, v := range values {
			if tree.Remove(v) {
				lines = append(lines, fmt.Sprintf("Removed %d", v))
			} else {
				lines = append(lines, fmt.Sprintf("Not found %d", v))
			}
		}
		return commandResult{output: strings.Join(lines, "\n")}, nil

	case "display", "show":
		if tree.IsEmpty() {
			return commandResult{output: "Tree is empty"}, nil
		}
		return commandResult{output: "Tree contents: " + joinValues(tree, " ")}, nil

	case "visualize", "tree":
		var sb strings.Builder
		visualizeTree(&sb, tree)
		return commandResult{output: strings.TrimRight(sb.String(), "\n")}, nil

	case "size":
		return commandResult{output: fmt.Sprintf("Tree size: %d nodes", tree.Len())}, nil

	case "empty":
		if tree.IsEmpty() {
			return commandResult{output: "Tree is empty"}, nil
		}
		return commandResult{output: "Tree is not empty"}, nil

	case "min":
		v, err := tree.Min()
		if err != nil {
			return commandResult{}, err
		}
		return commandResult{output: fmt.Sprintf("Minimum: %d", v)}, nil

	case "max":
		v, err := tree.Max()
		if err != nil {
			return commandResult{}, err
		}
		return commandResult{output: fmt.Sprintf("Maximum: %d", v)}, nil

	case "clear":
		n := tree.Len()
		tree.Clear()
		return commandResult{output: fmt.Sprintf("Cleared %d values", n)}, nil

	case "help", "?":
		return commandResult{output: shellHelp, markdown: true}, nil

	case "exit", "quit":
		return commandResult{output: "Implementation finished", quit: true}, nil
	}

	return commandResult{}, fmt.Errorf("unknown command %q, type help for the list", parts[0])
}

// Styles holds all the styling for the shell
type Styles struct {
	Border         lipgloss.Style
	Title          lipgloss.Style
	InputPrompt    lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates the styles from the detected color scheme
func NewStyles() *Styles {
	scheme := GetColorScheme()
	return &Styles{
		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.Border),
		Title: lipgloss.NewStyle().
			Foreground(scheme.Primary).
			Padding(0, 1).
			Bold(true),
		InputPrompt: lipgloss.NewStyle().
			Foreground(scheme.Accent).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(scheme.TextMuted).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(scheme.TextMuted),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(scheme.Success).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(scheme.Error).
			Bold(true),
	}
}

// Model is the Bubble Tea state of the interactive shell
type Model struct {
	input  textinput.Model
	output viewport.Model

	tree            *avl.OrderedTree[int]
	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	transcript []string
	status     string
	statusErr  bool

	ready  bool
	width  int
	height int
}

// InitialModel creates the shell model over tree
func InitialModel(tree *avl.OrderedTree[int], config *Config) Model {
	ti := textinput.New()
	ti.Placeholder = "insert 30 20 10, search 20, visualize, help..."
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	output := viewport.New(0, 0)

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(config.Display.HelpWrap),
	)

	m := Model{
		input:           ti,
		output:          output,
		tree:            tree,
		styles:          NewStyles(),
		glamourRenderer: glamourRenderer,
	}
	m.appendTranscript("Welcome to the AVL tree shell! Type help for the command list.")
	m.appendTranscript(m.styles.HelpDesc.Render("💡 " + GetRandomTip()))
	return m
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			return m.runInput()
		case "ctrl+y":
			m.copyContents()
			return m, nil
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.output, cmd = m.output.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) runInput() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")
	if line == "" {
		return m, nil
	}

	m.appendTranscript(m.styles.InputPrompt.Render("> ") + line)
	m.status = ""

	result, err := executeCommand(m.tree, line)
	if err != nil {
		m.appendTranscript(m.styles.ErrorMessage.Render(err.Error()))
		return m, nil
	}

	if result.output != "" {
		out := result.output
		if result.markdown {
			out = m.renderMarkdown(out)
		}
		m.appendTranscript(out)
	}
	if result.quit {
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) renderMarkdown(md string) string {
	if m.glamourRenderer == nil {
		return md
	}
	rendered, err := m.glamourRenderer.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(rendered, "\n")
}

func (m *Model) appendTranscript(text string) {
	m.transcript = append(m.transcript, text)
	m.output.SetContent(strings.Join(m.transcript, "\n"))
	m.output.GotoBottom()
}

func (m *Model) copyContents() {
	if err := clipboard.WriteAll(joinValues(m.tree, " ")); err != nil {
		m.status = fmt.Sprintf("copy failed: %v", err)
		m.statusErr = true
		return
	}
	m.status = fmt.Sprintf("📋 Copied %d values to clipboard", m.tree.Len())
	m.statusErr = false
}

func (m *Model) updateLayout() {
	m.output.Width = max(m.width-4, 10)
	m.output.Height = max(m.height-8, 3)
	m.input.Width = max(m.width-6, 10)
	m.output.GotoBottom()
}

// View renders the shell
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	title := m.styles.Title.Render(fmt.Sprintf("🌳 AVL Tree Shell  •  %d values  •  height %d",
		m.tree.Len(), m.tree.Height()))

	body := m.styles.Border.Render(m.output.View())

	status := ""
	if m.status != "" {
		if m.statusErr {
			status = m.styles.ErrorMessage.Render(m.status)
		} else {
			status = m.styles.SuccessMessage.Render(m.status)
		}
	}

	footer := m.styles.HelpKey.Render("enter") + m.styles.HelpDesc.Render(" run • ") +
		m.styles.HelpKey.Render("ctrl+y") + m.styles.HelpDesc.Render(" copy values • ") +
		m.styles.HelpKey.Render("pgup/pgdown") + m.styles.HelpDesc.Render(" scroll • ") +
		m.styles.HelpKey.Render("esc") + m.styles.HelpDesc.Render(" quit")

	return lipgloss.JoinVertical(lipgloss.Left, title, body, m.input.View(), status, footer)
}

// runShell starts the interactive shell over an empty integer tree
func runShell(config *Config) error {
	InitializeColors()

	model := InitialModel(avl.NewOrdered[int](), config)
	program := tea.NewProgram(model, tea.WithAltScreen())

	_, err := program.Run()
	return err
}
