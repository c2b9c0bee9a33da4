package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cubeforge/ncube/internal/app/storage"
)

var (
	sessionsLimit int
	sessionsLast  bool
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Manage recorded play sessions",
	Long:  `Commands for listing and inspecting play sessions recorded with 'ncube play --record'.`,
}

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent sessions",
	Long:  `Display a list of recent play sessions with basic statistics.`,
	RunE:  runSessionsList,
}

var sessionsShowCmd = &cobra.Command{
	Use:   "show [session-id]",
	Short: "Show details of a session",
	Long: `Display detailed information about a play session including its move
sequence. Use --last to show the most recent session.`,
	RunE: runSessionsShow,
}

func init() {
	rootCmd.AddCommand(sessionsCmd)

	sessionsCmd.AddCommand(sessionsListCmd)
	sessionsListCmd.Flags().IntVar(&sessionsLimit, "limit", 20, "Maximum number of sessions to display")

	sessionsCmd.AddCommand(sessionsShowCmd)
	sessionsShowCmd.Flags().BoolVar(&sessionsLast, "last", false, "Show the most recent session")
}

func runSessionsList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessions, err := storage.NewSessionRepository(db).List(sessionsLimit)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet")
		fmt.Println("Start one with: ncube play --record")
		return nil
	}

	fmt.Printf("Recent sessions (showing %d):\n", len(sessions))
	fmt.Println()
	fmt.Printf("%-36s  %-20s  %-10s  %-5s  %-6s  %s\n", "ID", "Started", "Duration", "Size", "Moves", "Solved")
	fmt.Println("------------------------------------  --------------------  ----------  -----  ------  ------")

	for _, s := range sessions {
		duration := "-"
		if s.DurationMs != nil {
			duration = formatDuration(time.Duration(*s.DurationMs) * time.Millisecond)
		}

		solved := ""
		if s.Solved {
			solved = "yes"
		}
		status := ""
		if s.EndedAt == nil {
			status = " (active)"
		}

		fmt.Printf("%-36s  %-20s  %-10s  %-5s  %-6d  %s%s\n",
			s.SessionID,
			s.StartedAt.Format("2006-01-02 15:04:05"),
			duration,
			fmt.Sprintf("%dx%d", s.Dimensions, s.Dimensions),
			s.MoveCount,
			solved,
			status,
		)
	}

	return nil
}

func runSessionsShow(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessionRepo := storage.NewSessionRepository(db)
	moveRepo := storage.NewMoveRepository(db)

	var sessionID string
	if sessionsLast {
		latest, err := sessionRepo.Latest()
		if err != nil {
			return fmt.Errorf("failed to get latest session: %w", err)
		}
		if latest == nil {
			return fmt.Errorf("no sessions found")
		}
		sessionID = latest.SessionID
	} else if len(args) > 0 {
		sessionID = args[0]
	} else {
		return fmt.Errorf("please provide a session ID or use --last")
	}

	s, err := sessionRepo.Get(sessionID)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}
	if s == nil {
		return fmt.Errorf("session not found: %s", sessionID)
	}

	moves, err := moveRepo.GetBySession(sessionID)
	if err != nil {
		return fmt.Errorf("failed to get moves: %w", err)
	}

	fmt.Println("Session Details")
	fmt.Println("===============")
	fmt.Println()
	fmt.Printf("ID:      %s\n", s.SessionID)
	fmt.Printf("Cube:    %dx%dx%d\n", s.Dimensions, s.Dimensions, s.Dimensions)
	fmt.Printf("Started: %s\n", s.StartedAt.Format("2006-01-02 15:04:05"))
	if s.EndedAt != nil {
		fmt.Printf("Ended:   %s\n", s.EndedAt.Format("2006-01-02 15:04:05"))
	}
	if s.DurationMs != nil {
		fmt.Printf("Duration: %s\n", formatDuration(time.Duration(*s.DurationMs)*time.Millisecond))
	}
	fmt.Printf("Moves:   %d\n", s.MoveCount)
	if s.Solved {
		fmt.Println("Solved:  yes")
	}
	fmt.Println()

	if len(moves) > 0 {
		fmt.Println("Moves")
		fmt.Println("-----")

		var line strings.Builder
		for i, m := range moves {
			if line.Len()+len(m.Notation)+1 > 60 {
				fmt.Println(line.String())
				line.Reset()
			}
			if line.Len() > 0 {
				line.WriteString(" ")
			}
			line.WriteString(m.Notation)
			if i == len(moves)-1 && line.Len() > 0 {
				fmt.Println(line.String())
			}
		}
	}

	return nil
}

func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	mins := int(d.Minutes())
	secs := d.Seconds() - float64(mins*60)
	return fmt.Sprintf("%dm%.1fs", mins, secs)
}
