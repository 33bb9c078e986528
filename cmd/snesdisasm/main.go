package main

import (
	"fmt"
	"os"

	cli "gopkg.in/urfave/cli.v2"

	"github.com/mg-tools/snes65816/pkg/analysis"
	"github.com/mg-tools/snes65816/pkg/label"
	"github.com/mg-tools/snes65816/pkg/listing"
	"github.com/mg-tools/snes65816/pkg/project"
	"github.com/mg-tools/snes65816/pkg/rom"
)

func checkErr(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	app := &cli.App{
		Name:  "snesdisasm",
		Usage: "analyze a SNES ROM and print an assembly listing",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "rom", Required: true, Usage: "path to the ROM image"},
			&cli.StringFlag{Name: "project", Required: true, Usage: "path to the project annotation file"},
			&cli.IntFlag{Name: "bank", Value: -1, Usage: "bank to render (default: 0)"},
			&cli.BoolFlag{Name: "save", Usage: "write the project file back after analysis"},
		},
		Action: run,
	}
	checkErr(app.Run(os.Args))
}

func run(c *cli.Context) error {
	raw, err := os.ReadFile(c.String("rom"))
	if err != nil {
		return fmt.Errorf("reading rom: %w", err)
	}
	raw = rom.StripCopierHeader(raw)
	img := rom.New(raw, rom.MapperLoROM)

	store, err := loadOrInitProject(c.String("project"))
	if err != nil {
		return fmt.Errorf("loading project: %w", err)
	}

	eng := analysis.New(img)
	eng.IngestRules(store.Rules())

	resolver := label.New(store, eng)

	bank := c.Int("bank")
	if bank < 0 {
		bank = 0
	}

	for _, line := range listing.RenderBank(uint8(bank), img, eng, resolver, 0) {
		printLine(line)
	}

	if c.Bool("save") {
		if err := store.Save(c.String("project")); err != nil {
			return fmt.Errorf("saving project: %w", err)
		}
	}
	return nil
}

func loadOrInitProject(path string) (*project.Store, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return project.New(nil), nil
	}
	return project.Load(path, nil)
}

func printLine(l listing.Line) {
	switch l.Kind {
	case listing.LineLabel:
		fmt.Println(l.Text)
	case listing.LineSpacing:
		fmt.Println()
	default:
		fmt.Printf("%06X  %s\n", l.PC, l.Text)
	}
}
