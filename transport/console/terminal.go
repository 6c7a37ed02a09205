package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const spinnerDelay = 100 * time.Millisecond

var boardTemplate = heredoc.Doc(`
	---------
	| %s %s %s |
	| %s %s %s |
	| %s %s %s |
	---------
`)

type Options struct {
	// Colored paints the marks.
	Colored bool
	// Spinner animates while a computer player thinks.
	Spinner bool
}

// Terminal reads commands and coordinates from a line-oriented input and draws
// the game on the output.
type Terminal struct {
	in      *bufio.Reader
	out     io.Writer
	spinner bool
	marks   map[entity.Mark]*color.Color
}

func NewTerminal(in io.Reader, out io.Writer, options Options) *Terminal {
	marks := map[entity.Mark]*color.Color{
		entity.MarkX: color.New(color.FgRed, color.Bold),
		entity.MarkO: color.New(color.FgCyan, color.Bold),
	}

	for _, mark := range marks {
		if options.Colored {
			mark.EnableColor()
		} else {
			mark.DisableColor()
		}
	}

	return &Terminal{
		in:      bufio.NewReader(in),
		out:     out,
		spinner: options.Spinner,
		marks:   marks,
	}
}

// IsInteractive reports whether file is attached to a terminal.
func IsInteractive(file *os.File) bool {
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

// Prompt writes prompt and reads one line without its line ending. A last line
// without a newline is still returned; after it io.EOF is.
func (that *Terminal) Prompt(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fmt.Fprint(that.out, prompt)

	line, err := that.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func (that *Terminal) Say(message string) {
	fmt.Fprintln(that.out, message)
}

func (that *Terminal) ShowBoard(board entity.Board) {
	cells := board.Cells()

	symbols := make([]any, 0, len(cells))
	for _, cell := range cells {
		symbols = append(symbols, that.symbol(cell))
	}

	fmt.Fprintf(that.out, boardTemplate, symbols...)
}

func (that *Terminal) ShowResult(state entity.GameState) {
	fmt.Fprintln(that.out, state.String())
	fmt.Fprintln(that.out)
}

func (that *Terminal) symbol(cell entity.Mark) string {
	paint, ok := that.marks[cell]
	if !ok {
		return " "
	}

	return paint.Sprint(string(cell))
}

// startSpinner shows the thinking indicator and returns the function that removes it.
func (that *Terminal) startSpinner() func() {
	if !that.spinner {
		return func() {}
	}

	indicator := spinner.New(spinner.CharSets[14], spinnerDelay, spinner.WithWriter(that.out))
	indicator.Suffix = " thinking"
	indicator.Start()

	return indicator.Stop
}
