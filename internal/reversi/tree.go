package reversi

import (
	"time"

	"github.com/rs/zerolog/log"
)

// treeNode is one position in the ephemeral game tree built for a single
// machine move. The tree is constructed, backed up and discarded within
// one searchMove call.
type treeNode struct {
	board    Board
	score    float64
	depth    int
	children []*treeNode
}

// searcher builds the game tree and keeps counters for debug logging.
type searcher struct {
	level     int
	nodes     int
	startTime time.Time
}

// searchMove picks the machine's strongest move by expanding the game
// tree up to the board's level and backing the scores up minimax-style.
// The caller guarantees that it is the machine's turn, which implies at
// least one legal move exists.
func searchMove(b Board) Board {
	s := &searcher{
		level:     b.level,
		startTime: time.Now(),
	}

	root := &treeNode{board: b}
	s.expand(root)
	root.backUp()

	best := root.maxChild()

	log.Debug().
		Int("level", s.level).
		Int("nodes", s.nodes).
		Dur("elapsed", time.Since(s.startTime)).
		Float64("score", best.score).
		Msg("machine move selected")

	return best.board
}

// expand attaches a child for every legal move of the node's turn holder
// and recurses until the configured depth is reached. Children carry
// their immediate score; back-up happens in a separate pass.
func (s *searcher) expand(node *treeNode) {
	if node.depth >= s.level {
		return
	}

	for _, move := range node.board.possibleMoves(node.board.next) {
		child, ok := node.board.makeMove(move.Row, move.Col)
		if !ok {
			// possibleMoves only yields legal moves.
			panic("unreachable: generated move was rejected")
		}

		childNode := &treeNode{
			board: child,
			score: score(child),
			depth: node.depth + 1,
		}
		node.children = append(node.children, childNode)
		s.nodes++

		s.expand(childNode)
	}
}

// backUp folds the children's final scores into their parents, bottom
// up. A node whose position the human answers adds the minimum of its
// children, any other node adds the maximum: the machine maximizes its
// own score and assumes the human minimizes it.
func (n *treeNode) backUp() {
	if len(n.children) == 0 {
		return
	}

	for _, child := range n.children {
		child.backUp()
	}

	if n.board.next == Human {
		n.score += n.minScoreOfChildren()
	} else {
		n.score += n.maxChild().score
	}
}

func (n *treeNode) minScoreOfChildren() float64 {
	min := n.children[0].score
	for _, child := range n.children[1:] {
		if child.score < min {
			min = child.score
		}
	}
	return min
}

// maxChild returns the child with the highest score. Ties go to the
// child generated first, which keeps the search deterministic.
func (n *treeNode) maxChild() *treeNode {
	best := n.children[0]
	for _, child := range n.children[1:] {
		if child.score > best.score {
			best = child
		}
	}
	return best
}
