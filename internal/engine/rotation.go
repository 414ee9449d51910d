package engine

import "github.com/google/uuid"

// Rotation order is a pure function of hole number and slot order: hole 1 is
// slot 0's turn, hole 2 slot 1's, wrapping around the group. Recorded
// decisions override the rotation per hole.

// rotationIndex returns which slot has the role on the given hole.
func rotationIndex(holeNumber, playerCount int) int {
	if playerCount == 0 {
		return 0
	}
	return (holeNumber - 1) % playerCount
}

// playerByID finds a participant by ID, nil when absent.
func playerByID(players []Player, id uuid.UUID) *Player {
	for i := range players {
		if players[i].ID == id {
			return &players[i]
		}
	}
	return nil
}
