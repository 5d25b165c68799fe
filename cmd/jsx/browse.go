package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/midbel/cli"
	"github.com/midbel/jsx/ast"
)

var browseCmd = cli.Command{
	Name:    "browse",
	Summary: "browse a jsx document interactively",
	Handler: &BrowseCmd{},
}

type BrowseCmd struct{}

func (c *BrowseCmd) Run(args []string) error {
	set := flag.NewFlagSet("browse", flag.ContinueOnError)
	if err := set.Parse(args); err != nil {
		return err
	}
	node, err := readDocument(set.Arg(0))
	if err != nil {
		return err
	}
	model := newBrowseModel(set.Arg(0), node)
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

type browseLine struct {
	node  ast.Node
	depth int
}

type browseModel struct {
	file  string
	root  ast.Node
	open  map[ast.Node]bool
	lines []browseLine

	cursor int
	view   viewport.Model
	ready  bool

	title    lipgloss.Style
	selected lipgloss.Style
	name     lipgloss.Style
	plain    lipgloss.Style
	helpline lipgloss.Style
}

func newBrowseModel(file string, root ast.Node) *browseModel {
	m := browseModel{
		file:     file,
		root:     root,
		open:     make(map[ast.Node]bool),
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36")),
		selected: lipgloss.NewStyle().Reverse(true),
		name:     lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		plain:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		helpline: lipgloss.NewStyle().Faint(true),
	}
	m.open[root] = true
	m.rebuild()
	return &m
}

func (m *browseModel) Init() tea.Cmd {
	return nil
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if !m.ready {
			m.view = viewport.New(msg.Width, msg.Height-2)
			m.ready = true
		} else {
			m.view.Width = msg.Width
			m.view.Height = msg.Height - 2
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.lines)-1 {
				m.cursor++
			}
		case "enter", " ":
			m.toggle()
		}
	}
	if m.ready {
		m.view.SetContent(m.render())
		m.scroll()
	}
	return m, nil
}

func (m *browseModel) View() string {
	if !m.ready {
		return "loading..."
	}
	var (
		header = m.title.Render(m.file)
		footer = m.helpline.Render("up/down: move - enter: expand/collapse - q: quit")
	)
	return fmt.Sprintf("%s\n%s\n%s", header, m.view.View(), footer)
}

func (m *browseModel) toggle() {
	if m.cursor >= len(m.lines) {
		return
	}
	node := m.lines[m.cursor].node
	if len(children(node)) == 0 {
		return
	}
	m.open[node] = !m.open[node]
	m.rebuild()
}

func (m *browseModel) rebuild() {
	m.lines = m.lines[:0]
	m.flatten(m.root, 0)
	if m.cursor >= len(m.lines) {
		m.cursor = len(m.lines) - 1
	}
}

func (m *browseModel) flatten(node ast.Node, depth int) {
	m.lines = append(m.lines, browseLine{node: node, depth: depth})
	if !m.open[node] {
		return
	}
	for _, c := range children(node) {
		m.flatten(c, depth+1)
	}
}

func (m *browseModel) render() string {
	var str strings.Builder
	for i, line := range m.lines {
		label := m.label(line.node)
		text := strings.Repeat("  ", line.depth) + label
		if i == m.cursor {
			text = m.selected.Render(text)
		}
		str.WriteString(text)
		str.WriteString("\n")
	}
	return str.String()
}

func (m *browseModel) label(node ast.Node) string {
	switch n := node.(type) {
	case *ast.Element:
		label := m.name.Render(n.QualifiedName())
		if count := len(children(n)); count > 0 && !m.open[node] {
			label += m.plain.Render(fmt.Sprintf(" (%d)", count))
		}
		return label
	case *ast.Fragment:
		return m.name.Render("<>")
	case *ast.Text:
		return m.plain.Render(strconv.Quote(n.Content))
	case *ast.ExprContainer:
		return m.plain.Render("{expression}")
	case *ast.Spread:
		return m.plain.Render("{...spread}")
	case *ast.Foreign:
		return m.plain.Render("(" + n.Kind + ")")
	case *ast.Raw:
		return m.plain.Render("(raw)")
	default:
		return m.plain.Render(node.Type().String())
	}
}

func (m *browseModel) scroll() {
	if m.cursor < m.view.YOffset {
		m.view.SetYOffset(m.cursor)
	}
	if m.cursor >= m.view.YOffset+m.view.Height {
		m.view.SetYOffset(m.cursor - m.view.Height + 1)
	}
}

func children(node ast.Node) []ast.Node {
	switch n := node.(type) {
	case *ast.Element:
		return n.Nodes
	case *ast.Fragment:
		return n.Nodes
	case *ast.ExprContainer:
		if n.Expr == nil {
			return nil
		}
		return []ast.Node{n.Expr}
	case *ast.Foreign:
		var list []ast.Node
		for _, f := range n.Fields {
			if f.Node != nil {
				list = append(list, f.Node)
			}
			list = append(list, f.List...)
		}
		return list
	default:
		return nil
	}
}
