// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package menu shows a numbered terminal menu and reads the user's choice.
package menu

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
)

const (
	menuWidth  = 60
	menuHeight = 12
	pageSize   = menuHeight - 2
)

// Entry is one choice in a menu.
type Entry interface {
	// Label returns the string shown in the menu.
	Label() string
}

// Init sets up the terminal. Close must be called when done.
func Init() error {
	return ui.Init()
}

// Close restores the terminal.
func Close() {
	ui.Close()
}

// Events returns the stream of terminal events to pass to Choose.
func Events() <-chan ui.Event {
	return ui.PollEvents()
}

func newParagraph(text string, border bool, y, w, h int) *widgets.Paragraph {
	p := widgets.NewParagraph()
	p.Text = text
	p.Border = border
	p.SetRect(0, y, w, y+h)
	p.TextStyle.Fg = ui.ColorWhite
	return p
}

// readKey returns the ID of the next keyboard or mouse event.
func readKey(uiEvents <-chan ui.Event) string {
	for {
		e := <-uiEvents
		if e.Type == ui.KeyboardEvent || e.Type == ui.MouseEvent {
			return e.ID
		}
	}
}

// pager tracks which slice of the labels is on screen.
type pager struct {
	list   *widgets.List
	title  string
	labels []string
	first  int
}

func (p *pager) last() int {
	return min(p.first+pageSize, len(p.labels))
}

// show scrolls so that the page starts at first.
func (p *pager) show(first int) {
	p.first = max(0, first)
	p.list.Rows = p.labels[p.first:p.last()]
	p.list.Title = fmt.Sprintf("%s---%v/%v", p.title, p.first, len(p.labels))
	ui.Render(p.list)
}

// choose reads keys until the user enters the number of an entry that is
// on the current page.
func (p *pager) choose(input, warning *widgets.Paragraph, uiEvents <-chan ui.Event) (int, error) {
	p.show(0)
	for {
		switch k := readKey(uiEvents); k {
		case "<C-d>":
			return 0, io.EOF
		case "<Escape>":
			return 0, io.EOF
		case "<Enter>":
			c, err := strconv.Atoi(input.Text)
			input.Text = ""
			ui.Render(input)
			if err == nil && c >= p.first && c < p.last() {
				return c, nil
			}
			warning.Text = "Please enter a valid entry number."
			ui.Render(warning)
		case "<Backspace>":
			if len(input.Text) > 0 {
				input.Text = input.Text[:len(input.Text)-1]
				ui.Render(input)
			}
		case "<Left>", "<PageUp>":
			p.show(p.first - pageSize)
		case "<Right>", "<PageDown>":
			if p.first+pageSize < len(p.labels) {
				p.show(p.first + pageSize)
			}
		case "<Up>", "<MouseWheelUp>":
			p.show(p.first - 1)
		case "<Down>", "<MouseWheelDown>":
			p.show(min(p.last()+1, len(p.labels)) - pageSize)
		case "<Home>":
			p.show(0)
		case "<End>":
			p.show(len(p.labels) - pageSize)
		default:
			// termui names special keys "<...>"; only plain characters
			// go into the input box.
			if !strings.HasPrefix(k, "<") {
				input.Text += k
				ui.Render(input)
			}
		}
	}
}

// Choose presents entries as a numbered list and returns the one the user
// picks. It returns io.EOF if the user gives up with <C-d> or <Escape>.
func Choose(title, intro string, entries []Entry, uiEvents <-chan ui.Event) (Entry, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("no entries in menu %q", title)
	}
	defer ui.Clear()

	labels := make([]string, 0, len(entries))
	for i, e := range entries {
		labels = append(labels, fmt.Sprintf("[%d] %s", i, e.Label()))
	}

	y := 0
	list := widgets.NewList()
	list.SetRect(0, y, menuWidth, y+menuHeight)
	list.TextStyle.Fg = ui.ColorWhite
	y += menuHeight

	introText := newParagraph(intro, false, y, len(intro)+4, 3)
	y += 2
	input := newParagraph("", true, y, menuWidth, 3)
	y += 3
	warning := newParagraph("", false, y, menuWidth, 3)

	ui.Render(introText, input, warning)

	p := &pager{list: list, title: title, labels: labels}
	i, err := p.choose(input, warning, uiEvents)
	if err != nil {
		return nil, err
	}
	return entries[i], nil
}
