// Package render draws the solitaire board as text. It only reads a
// solitaire.Snapshot; it never touches the game itself.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/klondike/internal/command"
	"github.com/lox/klondike/internal/deck"
	"github.com/lox/klondike/internal/solitaire"
)

// Every board cell is four columns wide; cells are separated by gap.
const (
	gap       = "  "
	blankCell = "    "
	emptyCell = " N/A"
	downCell  = " ▯  "
)

// Title is the heading shown above the board
const Title = "Playing Solitaire!"

// Renderer draws boards with a fixed colour profile
type Renderer struct {
	lg     *lipgloss.Renderer
	Styles Styles
}

// New creates a renderer for output written to w. color is "auto",
// "always" or "never".
func New(w io.Writer, color string) *Renderer {
	lg := lipgloss.NewRenderer(w)
	lg.SetColorProfile(Profile(color, w))
	return &Renderer{lg: lg, Styles: NewStyles(lg)}
}

// Board renders the stock, waste and foundations row, then the tableau
// columns row by row.
func (r *Renderer) Board(s solitaire.Snapshot) string {
	var b strings.Builder

	// top row headers: stock, waste, a spacer, then the four foundations
	headers := []string{
		r.header("Stk ", false),
		r.header("Wst ", s.Selection.IsWaste()),
		blankCell,
	}
	for _, suit := range deck.Suits {
		headers = append(headers, r.header("  "+suit.Letter()+" ", false))
	}
	writeRow(&b, headers)

	stock := r.Styles.Empty.Render(emptyCell)
	if !s.StockEmpty() {
		stock = r.Styles.FaceDown.Render(downCell)
	}
	top := []string{stock, r.top(s.WasteTop), blankCell}
	for _, f := range s.Foundations {
		top = append(top, r.top(f))
	}
	writeRow(&b, top)
	b.WriteString("\n")

	// tableau
	columns := make([]string, solitaire.TableauCount)
	for i := range columns {
		idx, ok := s.Selection.Tableau()
		columns[i] = r.columnHeader(i, ok && idx == i)
	}
	writeRow(&b, columns)

	rows := max(s.TallestColumn(), 1)
	for row := range rows {
		cells := make([]string, solitaire.TableauCount)
		for i, col := range s.Tableau {
			switch {
			case row < len(col):
				cells[i] = r.tableauCard(col[row])
			case row == 0:
				cells[i] = r.Styles.Empty.Render(emptyCell)
			default:
				cells[i] = blankCell
			}
		}
		writeRow(&b, cells)
	}
	return b.String()
}

// Status renders the selection line
func (r *Renderer) Status(s solitaire.Snapshot) string {
	line := "Selected pile: " + s.Selection.String()
	if s.Selection.IsNone() {
		return r.Styles.Info.Render(line)
	}
	return r.Styles.Selected.Render(line)
}

// Counts renders the pile sizes that are not visible on the board
func (r *Renderer) Counts(s solitaire.Snapshot) string {
	done := 0
	for _, n := range s.FoundationCounts {
		done += n
	}
	return r.Styles.Info.Render(fmt.Sprintf("Stock: %d  Waste: %d  Foundations: %d/%d",
		s.StockCount, s.WasteCount, done, deck.Size))
}

// Instructions renders the command help
func (r *Renderer) Instructions() string {
	return r.Styles.Info.Render(strings.Join(command.HelpText(), "\n"))
}

// Heading renders the title bar
func (r *Renderer) Heading() string {
	return r.Styles.Title.Render(Title)
}

// Message renders a feedback line; failures are highlighted
func (r *Renderer) Message(msg string, failed bool) string {
	if msg == "" {
		return ""
	}
	if failed {
		return r.Styles.Error.Render(msg)
	}
	return r.Styles.Success.Render(msg)
}

// Win renders the victory banner
func (r *Renderer) Win(msg string) string {
	return r.Styles.Win.Render(msg)
}

// Card renders a single face-up card in its suit colour
func (r *Renderer) Card(c deck.Card) string {
	if c.IsRed() {
		return r.Styles.RedCard.Render(c.String())
	}
	return r.Styles.BlackCard.Render(c.String())
}

func (r *Renderer) header(label string, selected bool) string {
	if selected {
		return r.Styles.Selected.Render(strings.TrimRight(label, " ") + "*")
	}
	return r.Styles.Header.Render(label)
}

func (r *Renderer) columnHeader(i int, selected bool) string {
	if selected {
		return r.Styles.Selected.Render(fmt.Sprintf(" [%d]", i+1))
	}
	return r.Styles.Header.Render(fmt.Sprintf("  %d ", i+1))
}

func (r *Renderer) top(c *deck.Card) string {
	if c == nil {
		return r.Styles.Empty.Render(emptyCell)
	}
	return r.label(*c)
}

func (r *Renderer) tableauCard(c deck.Card) string {
	if !c.FaceUp {
		return r.Styles.FaceDown.Render(downCell)
	}
	return r.label(c)
}

func (r *Renderer) label(c deck.Card) string {
	text := c.Label() + " "
	if c.IsRed() {
		return r.Styles.RedCard.Render(text)
	}
	return r.Styles.BlackCard.Render(text)
}

func writeRow(b *strings.Builder, cells []string) {
	b.WriteString(strings.TrimRight(strings.Join(cells, gap), " "))
	b.WriteString("\n")
}
