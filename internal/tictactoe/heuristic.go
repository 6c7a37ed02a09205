package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// FindImmediateWin looks one ply ahead: it returns the free cell of the first line
// (in entity.WinCombos order) that holds two of mark and nothing else.
func FindImmediateWin(board entity.Board, mark entity.Mark) (entity.Move, bool) {
	if !mark.IsValid() {
		return entity.Move{}, false
	}

	cells := board.Cells()
	for _, combo := range entity.WinCombos {
		owned, free := 0, -1
		for _, index := range combo {
			switch cells[index] {
			case mark:
				owned++
			case entity.Empty:
				free = index
			}
		}

		if owned == 2 && free >= 0 {
			return entity.MoveAt(free), true
		}
	}

	return entity.Move{}, false
}
