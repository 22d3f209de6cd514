package life

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"lifefb/internal/core"
)

var (
	// ErrPatternSyntax reports a malformed plaintext pattern.
	ErrPatternSyntax = errors.New("life: pattern syntax")
	// ErrUnknownPattern reports a lookup for a pattern that is not registered.
	ErrUnknownPattern = errors.New("life: unknown pattern")
)

// Pattern is a named arrangement of live cells relative to its top-left corner.
type Pattern struct {
	Name  string
	Cells []core.Cell
	Size  core.Size
}

var patterns = map[string]Pattern{}

// Register adds a pattern under its name, replacing any previous entry.
func Register(p Pattern) {
	if p.Name == "" {
		return
	}
	patterns[p.Name] = p
}

// Lookup returns the registered pattern with the given name.
func Lookup(name string) (Pattern, error) {
	p, ok := patterns[name]
	if !ok {
		return Pattern{}, fmt.Errorf("%w %q", ErrUnknownPattern, name)
	}
	return p, nil
}

// PatternNames lists registered patterns in alphabetical order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParsePlaintext reads a pattern in the plaintext (.cells) format: lines
// starting with '!' are comments ("!Name: x" sets the name), 'O' or '*' is a
// live cell and '.' a dead one.
func ParsePlaintext(name string, r io.Reader) (Pattern, error) {
	p := Pattern{Name: name}
	sc := bufio.NewScanner(r)
	line, row := 0, 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), " \t\r")
		if strings.HasPrefix(text, "!") {
			if v, ok := strings.CutPrefix(text, "!Name:"); ok && p.Name == "" {
				p.Name = strings.TrimSpace(v)
			}
			continue
		}
		for x, ch := range text {
			switch ch {
			case 'O', '*':
				p.Cells = append(p.Cells, core.Cell{X: x, Y: row})
			case '.':
			default:
				return Pattern{}, fmt.Errorf("%w: line %d: unexpected %q", ErrPatternSyntax, line, ch)
			}
			if x+1 > p.Size.W {
				p.Size.W = x + 1
			}
		}
		row++
	}
	if err := sc.Err(); err != nil {
		return Pattern{}, err
	}
	p.Size.H = row
	if len(p.Cells) == 0 {
		return Pattern{}, fmt.Errorf("%w: no live cells", ErrPatternSyntax)
	}
	return p, nil
}

// LoadPatternFile parses a plaintext pattern file and registers it. The
// file's "!Name:" comment wins over the fallback name.
func LoadPatternFile(path string) (Pattern, error) {
	f, err := os.Open(path)
	if err != nil {
		return Pattern{}, err
	}
	defer f.Close()
	p, err := ParsePlaintext("", f)
	if err != nil {
		return Pattern{}, fmt.Errorf("%s: %w", path, err)
	}
	if p.Name == "" {
		p.Name = path
	}
	Register(p)
	return p, nil
}

func mustParse(name, text string) Pattern {
	p, err := ParsePlaintext(name, strings.NewReader(text))
	if err != nil {
		panic(err)
	}
	return p
}

func init() {
	builtin := map[string]string{
		"blinker":     "OOO",
		"block":       "OO\nOO",
		"glider":      ".O.\n..O\nOOO",
		"lwss":        ".O..O\nO....\nO...O\nOOOO.",
		"r-pentomino": ".OO\nOO.\n.O.",
		"diehard":     "......O.\nOO......\n.O...OOO",
		"acorn":       ".O.....\n...O...\nOO..OOO",
		"gosper-gun": strings.Join([]string{
			"........................O...........",
			"......................O.O...........",
			"............OO......OO............OO",
			"...........O...O....OO............OO",
			"OO........O.....O...OO..............",
			"OO........O...O.OO....O.O...........",
			"..........O.....O.......O...........",
			"...........O...O....................",
			"............OO......................",
		}, "\n"),
	}
	for name, text := range builtin {
		Register(mustParse(name, text))
	}
}
