package storage

import (
	"database/sql"
	"fmt"

	"github.com/cubeforge/ncube"
)

// MoveRecord represents a move in the database.
type MoveRecord struct {
	MoveID    int64
	SessionID string
	MoveIndex int
	TsMs      int64
	Axis      string
	Layer     int
	Positive  bool
	Notation  string
}

// MoveRepository provides CRUD operations for moves.
type MoveRepository struct {
	db *DB
}

// NewMoveRepository creates a new move repository.
func NewMoveRepository(db *DB) *MoveRepository {
	return &MoveRepository{db: db}
}

// Create records one completed rotation and returns its ID.
func (r *MoveRepository) Create(sessionID string, moveIndex int, tsMs int64, move ncube.Move) (int64, error) {
	result, err := r.db.Exec(`
		INSERT INTO moves (session_id, move_index, ts_ms, axis, layer, positive, notation)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, sessionID, moveIndex, tsMs, move.Axis.String(), move.Layer, boolToInt(move.Positive), move.Notation())

	if err != nil {
		return 0, fmt.Errorf("failed to create move: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get move ID: %w", err)
	}

	return id, nil
}

// CreateBatch records multiple moves in a single transaction.
func (r *MoveRepository) CreateBatch(sessionID string, startIndex int, tsMs int64, moves []ncube.Move) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		for i, move := range moves {
			_, err := tx.Exec(`
				INSERT INTO moves (session_id, move_index, ts_ms, axis, layer, positive, notation)
				VALUES (?, ?, ?, ?, ?, ?, ?)
			`, sessionID, startIndex+i, tsMs, move.Axis.String(), move.Layer, boolToInt(move.Positive), move.Notation())
			if err != nil {
				return fmt.Errorf("failed to create move %d: %w", startIndex+i, err)
			}
		}
		return nil
	})
}

// GetBySession retrieves all moves for a session in order.
func (r *MoveRepository) GetBySession(sessionID string) ([]MoveRecord, error) {
	rows, err := r.db.Query(`
		SELECT move_id, session_id, move_index, ts_ms, axis, layer, positive, notation
		FROM moves
		WHERE session_id = ?
		ORDER BY move_index
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	var records []MoveRecord
	for rows.Next() {
		var m MoveRecord
		var positive int
		if err := rows.Scan(&m.MoveID, &m.SessionID, &m.MoveIndex, &m.TsMs, &m.Axis, &m.Layer, &positive, &m.Notation); err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		m.Positive = positive != 0
		records = append(records, m)
	}
	return records, rows.Err()
}

// CountBySession returns the number of recorded moves for a session.
func (r *MoveRepository) CountBySession(sessionID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM moves WHERE session_id = ?", sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count moves: %w", err)
	}
	return count, nil
}
