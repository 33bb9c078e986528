// Copyright © 2019 mg
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"

	"github.com/mg-tools/snes65816/pkg/analysis"
	"github.com/mg-tools/snes65816/pkg/label"
	"github.com/mg-tools/snes65816/pkg/listing"
	"github.com/mg-tools/snes65816/pkg/project"
	"github.com/mg-tools/snes65816/pkg/rom"
)

var (
	img      *rom.Image
	eng      *analysis.Engine
	store    *project.Store
	resolver *label.Resolver

	bank       uint8
	scroll     int
	selectedPC uint32

	paragraphListing *widgets.Paragraph
	paragraphDetail  *widgets.Paragraph
	paragraphTips    *widgets.Paragraph
)

const visibleRows = 30

func renderListing(p *widgets.Paragraph) {
	lines := listing.RenderBank(bank, img, eng, resolver, 0)
	if scroll < 0 {
		scroll = 0
	}
	if scroll > len(lines)-1 {
		scroll = len(lines) - 1
	}
	if len(lines) == 0 {
		p.Text = ""
		return
	}

	end := scroll + visibleRows
	if end > len(lines) {
		end = len(lines)
	}

	sb := &strings.Builder{}
	for _, l := range lines[scroll:end] {
		switch l.Kind {
		case listing.LineLabel:
			sb.WriteString(l.Text)
		case listing.LineSpacing:
			// blank separator row
		default:
			sb.WriteString(fmt.Sprintf("%06X  %s", l.PC, l.Text))
		}
		sb.WriteRune('\n')
	}
	p.Text = sb.String()
	if scroll < len(lines) {
		selectedPC = lines[scroll].PC
	}
}

func renderDetail(p *widgets.Paragraph) {
	sb := &strings.Builder{}
	sb.WriteString(fmt.Sprintf("bank: $%02X   pc: $%06X\n", bank, selectedPC))
	sb.WriteString(fmt.Sprintf("label: %s\n", resolver.CodeLabel(selectedPC)))
	for _, c := range store.Comments(selectedPC) {
		sb.WriteString("; ")
		sb.WriteString(c)
		sb.WriteRune('\n')
	}
	p.Text = sb.String()
}

func renderTips(p *widgets.Paragraph) {
	p.Text = "j/k or arrows = scroll    n/p = bank    q = quit"
}

func draw() {
	renderListing(paragraphListing)
	renderDetail(paragraphDetail)
	renderTips(paragraphTips)
	ui.Render(paragraphListing, paragraphDetail, paragraphTips)
}

func initLayout() {
	paragraphListing = widgets.NewParagraph()
	paragraphListing.Title = "Listing"
	paragraphListing.SetRect(0, 0, 90, 32)

	paragraphDetail = widgets.NewParagraph()
	paragraphDetail.Title = "Detail"
	paragraphDetail.SetRect(0, 32, 90, 38)

	paragraphTips = widgets.NewParagraph()
	paragraphTips.Title = "Tips"
	paragraphTips.SetRect(0, 38, 90, 41)
}

func loadROM(romPath, projectPath string) error {
	raw, err := os.ReadFile(romPath)
	if err != nil {
		return err
	}
	raw = rom.StripCopierHeader(raw)
	img = rom.New(raw, rom.MapperLoROM)

	if _, err := os.Stat(projectPath); os.IsNotExist(err) {
		store = project.New(nil)
	} else {
		store, err = project.Load(projectPath, nil)
		if err != nil {
			return err
		}
	}

	eng = analysis.New(img)
	eng.IngestRules(store.Rules())
	resolver = label.New(store, eng)
	return nil
}

func main() {
	if len(os.Args) < 3 {
		fmt.Println("usage: snesdisasm-view <rom> <project>")
		os.Exit(1)
	}
	if err := loadROM(os.Args[1], os.Args[2]); err != nil {
		log.Fatalf("failed to load rom/project: %v", err)
	}

	if err := ui.Init(); err != nil {
		log.Fatalf("failed to initialize termui: %v", err)
	}
	defer ui.Close()

	initLayout()
	draw()

	for e := range ui.PollEvents() {
		if e.Type != ui.KeyboardEvent {
			continue
		}
		switch e.ID {
		case "q", "Q", "<C-c>":
			return
		case "j", "<Down>":
			scroll++
		case "k", "<Up>":
			scroll--
		case "n", "N":
			bank++
			scroll = 0
		case "p", "P":
			bank--
			scroll = 0
		}
		draw()
	}
}
