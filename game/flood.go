package game

import "github.com/gammazero/deque"

// floodReveal reveals start and cascades across its connected zero-count
// region. Numbered cells on the region border are revealed but not expanded.
// An explicit worklist keeps the traversal bounded regardless of board size;
// the revealed/flagged guards terminate it.
func (board *Board) floodReveal(start *Cell) {
	var worklist deque.Deque[*Cell]
	worklist.PushBack(start)

	for worklist.Len() > 0 {
		cell := worklist.PopFront()
		if cell.isRevealed || cell.isFlagged {
			continue
		}
		cell.isRevealed = true

		if cell.neighborMines == 0 {
			cell.forEachNeighbor(func(neighbor *Cell) {
				if !neighbor.isRevealed && !neighbor.isFlagged {
					worklist.PushBack(neighbor)
				}
			})
		}
	}
}
