// Command xwordfill numbers a crossword layout, fills it from a word list and
// prints the result.
//
// The layout file holds one line per row: '#' for black squares, '.' for
// blank ones and letters for squares already filled.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/vyevs/ansi"
	"github.com/vyevs/vtools"

	"github.com/bodul/xwordsetter/internal/autofill"
	"github.com/bodul/xwordsetter/internal/dictionary"
	"github.com/bodul/xwordsetter/internal/puzzle"
)

func main() {
	defer vtools.TimeIt(time.Now(), "everything")

	err := myMain()
	if err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
}

func myMain() error {
	var dictPath, gridPath string
	flag.StringVar(&dictPath, "d", "dictionaries/en.txt", "path to the word list")
	flag.StringVar(&gridPath, "g", "", "path to the grid layout file")

	var seed uint64
	flag.Uint64Var(&seed, "seed", 0, "seed for the word search, 0 for a random one")

	var verbose bool
	flag.BoolVar(&verbose, "v", false, "print every clue outcome")

	flag.Parse()

	if gridPath == "" {
		return fmt.Errorf("provide a grid layout using the -g switch")
	}

	words, err := dictionary.FileSource{Path: dictPath}.Load(context.Background())
	if err != nil {
		return fmt.Errorf("failed to read word list: %v", err)
	}
	fmt.Printf("The word list contains %d words\n", len(words))
	if len(words) < dictionary.MinUsefulWords {
		fmt.Println("warning: the word list looks too small to fill a grid")
	}

	g, err := readGrid(gridPath)
	if err != nil {
		return fmt.Errorf("failed to read grid: %v", err)
	}
	if !g.IsSymmetric() {
		fmt.Println("warning: the layout is not rotationally symmetric")
	}

	clues := g.ExtractClues()
	fmt.Printf("grid %dx%d with %d white squares and %d clues\n", g.Size(), g.Size(), g.WhiteCount(), len(clues))

	var opts []dictionary.Option
	if seed != 0 {
		opts = append(opts, dictionary.WithSeed(seed))
	}
	m := dictionary.NewMatcher(words, opts...)

	start := time.Now()
	results, err := autofill.Fill(g, clues, m)
	if err != nil {
		return fmt.Errorf("fill failed: %v", err)
	}
	filled, missed := autofill.Count(results)
	fmt.Printf("filled %d clues, %d without a word (%s)\n", filled, missed, time.Since(start).Round(time.Microsecond))

	fmt.Print(gridStr(g, results))

	if verbose {
		for _, c := range g.WithAnswers(clues) {
			fmt.Printf("%-16s %s\n", c.Label(), c.Answer)
		}
		for _, r := range results {
			if !r.Filled() {
				fmt.Printf("no word for %s %s\n", r.Clue.Label(), r.Pattern)
			}
		}
	}

	return nil
}

func readGrid(path string) (*puzzle.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows := make([]string, 0, puzzle.DefaultSize)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return puzzle.Parse(rows)
}

// gridStr renders the grid, colouring the squares the fill pass wrote.
func gridStr(g *puzzle.Grid, results []autofill.Result) string {
	written := make(map[puzzle.Position]bool)
	for _, r := range results {
		for _, p := range r.Changed {
			written[p] = true
		}
	}

	var b strings.Builder
	b.Grow(g.Size() * (g.Size()*2 + 1) * 8)
	for r := 0; r < g.Size(); r++ {
		for c := 0; c < g.Size(); c++ {
			sq := g.At(r, c)
			switch {
			case !sq.IsWhite():
				b.WriteString(ansi.FGColorName("light gray"))
				b.WriteByte('#')
			case sq.IsBlank():
				b.WriteString(ansi.FGColorName("red"))
				b.WriteByte('.')
			case written[puzzle.Position{Row: r, Column: c}]:
				b.WriteString(ansi.FGColorName("green"))
				b.WriteByte(sq.Char)
			default:
				b.WriteString(ansi.FGColorName("cyan"))
				b.WriteByte(sq.Char)
			}
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	b.WriteString(ansi.Clear)

	return b.String()
}
