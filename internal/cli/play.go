package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/cubeforge/ncube"
	"github.com/cubeforge/ncube/internal/app/session"
)

var (
	playDim     int
	playSpeed   float64
	playHistory int
	playShuffle int
	playRecord  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the cube interactively",
	Long: `Start an interactive TUI for playing the cube with animated slice turns.

Keyboard shortcuts:
  x/y/z      - Select the rotation axis
  0-9        - Select the layer along that axis
  left/right - Turn the selected layer (negative/positive)
  u          - Undo the last turn
  s          - Shuffle the cube
  q/Esc      - Quit

Pass --record to store the session and its moves in the database.`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().IntVar(&playDim, "dim", 3, "Cube edge length (minimum 2)")
	playCmd.Flags().Float64Var(&playSpeed, "speed", 3.0, "Rotation speed in quarter-turns per second")
	playCmd.Flags().IntVar(&playHistory, "history", 64, "Undo history capacity (0 disables undo)")
	playCmd.Flags().IntVar(&playShuffle, "shuffle", 0, "Shuffle this many moves on startup")
	playCmd.Flags().BoolVar(&playRecord, "record", false, "Record the session to the database")
}

// Styles
var (
	playTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	playStatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	playSolvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	playMoveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	playErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	playHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	stickerStyles = map[ncube.Color]lipgloss.Style{
		ncube.White:  lipgloss.NewStyle().Background(lipgloss.Color("15")).Foreground(lipgloss.Color("0")),
		ncube.Yellow: lipgloss.NewStyle().Background(lipgloss.Color("226")).Foreground(lipgloss.Color("0")),
		ncube.Green:  lipgloss.NewStyle().Background(lipgloss.Color("34")).Foreground(lipgloss.Color("0")),
		ncube.Blue:   lipgloss.NewStyle().Background(lipgloss.Color("27")).Foreground(lipgloss.Color("15")),
		ncube.Red:    lipgloss.NewStyle().Background(lipgloss.Color("196")).Foreground(lipgloss.Color("15")),
		ncube.Orange: lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("0")),
	}
)

const playTickInterval = 16 * time.Millisecond

type playTickMsg time.Time

type playModel struct {
	cube  *ncube.Cube
	speed float64

	// Selection
	axis  ncube.Axis
	layer int

	// Recording
	sess  *session.Session
	moves []ncube.Move

	// UI
	width    int
	height   int
	err      error
	quitting bool
}

func newPlayModel(cube *ncube.Cube, speed float64, sess *session.Session) *playModel {
	m := &playModel{
		cube:  cube,
		speed: speed,
		axis:  ncube.X,
		sess:  sess,
	}
	cube.OnChanged(func(mv ncube.Move) {
		m.moves = append(m.moves, mv)
		if m.sess != nil {
			if err := m.sess.RecordMove(mv); err != nil {
				m.err = err
			}
		}
	})
	cube.OnSolved(func() {
		if m.sess != nil {
			if err := m.sess.MarkSolved(); err != nil {
				m.err = err
			}
		}
	})
	return m
}

func (m *playModel) Init() tea.Cmd {
	return m.tickCmd()
}

func (m *playModel) tickCmd() tea.Cmd {
	return tea.Tick(playTickInterval, func(t time.Time) tea.Msg {
		return playTickMsg(t)
	})
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			if m.sess != nil && m.sess.State() == session.StateActive {
				if err := m.sess.End(); err != nil {
					m.err = err
				}
			}
			return m, tea.Quit

		case "x":
			m.axis = ncube.X
		case "y":
			m.axis = ncube.Y
		case "z":
			m.axis = ncube.Z

		case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9":
			layer := int(msg.String()[0] - '0')
			if layer <= m.cube.Border() {
				m.layer = layer
			}

		case "left", "h":
			if err := m.cube.Rotate(m.axis, m.layer, false, m.speed); err != nil {
				m.err = err
			}
		case "right", "l":
			if err := m.cube.Rotate(m.axis, m.layer, true, m.speed); err != nil {
				m.err = err
			}

		case "u":
			m.cube.Undo(m.speed)

		case "s":
			m.cube.Shuffle(5*m.cube.Dimensions()*m.cube.Dimensions(), m.speed)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case playTickMsg:
		m.cube.Tick(playTickInterval)
		return m, m.tickCmd()
	}

	return m, nil
}

func (m *playModel) View() string {
	if m.quitting {
		msg := "Goodbye!\n"
		if m.sess != nil && m.sess.SessionID() != "" {
			msg += fmt.Sprintf("Session saved: %s (%d moves)\n", m.sess.SessionID(), m.sess.MoveCount())
		}
		return msg
	}

	var b strings.Builder

	// Title
	dim := m.cube.Dimensions()
	b.WriteString(playTitleStyle.Render(fmt.Sprintf("ncube %dx%dx%d", dim, dim, dim)))
	b.WriteString("\n\n")

	// Sticker net
	b.WriteString(m.renderNet())
	b.WriteString("\n")

	// Status line
	status := fmt.Sprintf("Axis: %s  Layer: %d  Speed: %.1f qt/s", m.axis, m.layer, m.speed)
	if mv, angle, ok := m.cube.Animating(); ok {
		status += fmt.Sprintf("  Turning: %s (%.0f°)", playMoveStyle.Render(mv.Notation()), angle)
	} else if m.cube.Busy() {
		status += "  Shuffling..."
	}
	b.WriteString(playStatusStyle.Render(status))
	b.WriteString("\n")

	if m.cube.IsSolved() {
		b.WriteString(playSolvedStyle.Render("SOLVED"))
		b.WriteString("\n")
	}

	// Recording status
	if m.sess != nil {
		b.WriteString(playStatusStyle.Render(fmt.Sprintf(
			"Recording: %s  Moves: %d", m.sess.SessionID()[:8], m.sess.MoveCount())))
		b.WriteString("\n")
	}

	// Recent moves
	if len(m.moves) > 0 {
		b.WriteString("Moves: ")
		start := 0
		if len(m.moves) > 20 {
			start = len(m.moves) - 20
			b.WriteString("... ")
		}
		b.WriteString(playMoveStyle.Render(ncube.FormatMoves(m.moves[start:])))
		b.WriteString("\n")
	}

	// Error
	if m.err != nil {
		b.WriteString(playErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(playHelpStyle.Render("Keys: x/y/z=axis 0-9=layer ←/→=turn u=undo s=shuffle q=quit"))
	b.WriteString("\n")

	return b.String()
}

// renderNet draws the unfolded sticker net with one two-cell colored
// block per sticker: +Y on top, -X +Z +X -Z in the middle band, -Y
// below.
func (m *playModel) renderNet() string {
	dim := m.cube.Dimensions()
	var b strings.Builder
	indent := strings.Repeat("  ", dim)

	writeRow := func(stickers [][]ncube.Face, row int) {
		for col := 0; col < dim; col++ {
			sticker := stickers[row][col]
			b.WriteString(stickerStyles[sticker.Color()].Render("  "))
		}
	}

	up := m.cube.FaceStickers(ncube.FacePosY)
	for row := 0; row < dim; row++ {
		b.WriteString(indent)
		writeRow(up, row)
		b.WriteString("\n")
	}

	sides := []ncube.Face{ncube.FaceNegX, ncube.FacePosZ, ncube.FacePosX, ncube.FaceNegZ}
	grids := make([][][]ncube.Face, len(sides))
	for i, f := range sides {
		grids[i] = m.cube.FaceStickers(f)
	}
	for row := 0; row < dim; row++ {
		for i := range sides {
			writeRow(grids[i], row)
		}
		b.WriteString("\n")
	}

	down := m.cube.FaceStickers(ncube.FaceNegY)
	for row := 0; row < dim; row++ {
		b.WriteString(indent)
		writeRow(down, row)
		b.WriteString("\n")
	}

	return b.String()
}

func runPlay(cmd *cobra.Command, args []string) error {
	cube, err := ncube.New(playDim, ncube.NopFactory(),
		ncube.WithHistoryCapacity(playHistory))
	if err != nil {
		return err
	}

	var sess *session.Session
	if playRecord {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		sess = session.New(db)
		if _, err := sess.Start(playDim); err != nil {
			return fmt.Errorf("failed to start session: %w", err)
		}
	}

	if playShuffle > 0 {
		cube.Shuffle(playShuffle, 0)
	}

	model := newPlayModel(cube, playSpeed, sess)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
