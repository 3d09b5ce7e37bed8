package shell

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"reversi/internal/config"
	"reversi/internal/game"
	"reversi/internal/reversi"
)

const prompt = "reversi> "

// Shell is the interactive text interface of the game. It reads commands
// line by line, executes them on a game session and writes the results.
type Shell struct {
	in      *bufio.Scanner
	out     io.Writer
	session *game.Session
}

// New creates a shell reading commands from in and writing to out,
// starting a fresh session from the given configuration.
func New(in io.Reader, out io.Writer, cfg *config.ShellConfig) *Shell {
	session := game.New(cfg.FirstPlayer)

	// The configured level was validated when loading.
	if err := session.SetLevel(cfg.Level); err != nil {
		panic(err)
	}

	return &Shell{
		in:      bufio.NewScanner(in),
		out:     out,
		session: session,
	}
}

// Run executes the command loop until the quit command or EOF. If the
// machine opens the game it moves before the first prompt.
func (s *Shell) Run() error {
	s.machineMoves()

	for {
		fmt.Fprint(s.out, prompt)

		if !s.in.Scan() {
			return s.in.Err()
		}

		tokens := strings.Fields(s.in.Text())
		if len(tokens) == 0 {
			s.error("Your entry is not a valid command")
			continue
		}

		if quit := s.dispatch(tokens); quit {
			return nil
		}
	}
}

// dispatch executes one command and reports whether the shell should
// terminate. Commands are matched on their first letter.
func (s *Shell) dispatch(tokens []string) bool {
	switch strings.ToLower(tokens[0])[:1] {
	case "n": // new
		s.newGame(s.session.Board().FirstPlayer())
	case "l": // level
		s.setLevel(tokens)
	case "m": // move
		s.move(tokens)
	case "u": // undo
		s.undo()
	case "s": // switch
		s.newGame(s.session.Board().FirstPlayer().Opponent())
	case "p": // print
		fmt.Fprintln(s.out, s.session.Board())
	case "h": // help
		s.help()
	case "q": // quit
		return true
	default:
		s.error("Your entry is not a valid command")
	}

	return false
}

// newGame starts the session over and lets the machine open the game if
// it is the first player.
func (s *Shell) newGame(firstPlayer reversi.Player) {
	s.session.Reset(firstPlayer)
	s.machineMoves()
}

func (s *Shell) setLevel(tokens []string) {
	if len(tokens) < 2 {
		s.error("Your entry is not a valid command")
		return
	}

	level, ok := s.parseInt(tokens[1])
	if !ok {
		return
	}

	if err := s.session.SetLevel(level); err != nil {
		s.error(fmt.Sprintf("The level must be an integer from %d to %d",
			reversi.MinLevel, reversi.MaxLevel))
	}
}

// move executes a human move and, when the game continues, hands the
// turn to the machine.
func (s *Shell) move(tokens []string) {
	if len(tokens) < 3 {
		s.error("Your entry is not a valid command")
		return
	}

	row, ok := s.parseInt(tokens[1])
	if !ok {
		return
	}
	col, ok := s.parseInt(tokens[2])
	if !ok {
		return
	}

	if s.session.Board().GameOver() {
		s.error("The game is over. You must start a new one.")
		return
	}

	if !(reversi.Coordinate{Row: row, Col: col}).OnBoard() {
		s.error(fmt.Sprintf("The row and column number have to be integers from 1 to %d", reversi.Size))
		return
	}

	ok, err := s.session.Move(row, col)
	if err != nil {
		s.error("It is not your turn.")
		return
	}
	if !ok {
		s.error("No valid move!")
		return
	}

	board := s.session.Board()
	switch {
	case board.GameOver():
		s.announceWinner()
	case board.Next() == reversi.Human:
		fmt.Fprintln(s.out, "Machine must miss a turn.")
	default:
		s.machineMoves()
	}
}

// machineMoves lets the machine move for as long as it holds the turn,
// announcing skipped human turns and the winner.
func (s *Shell) machineMoves() {
	for !s.session.Board().GameOver() && s.session.Board().Next() == reversi.Machine {
		if err := s.session.MachineMove(); err != nil {
			s.error(err.Error())
			return
		}

		board := s.session.Board()
		if !board.GameOver() && board.Next() == reversi.Machine {
			fmt.Fprintln(s.out, "You must miss a turn.")
		}
	}

	if s.session.Board().GameOver() {
		s.announceWinner()
	}
}

func (s *Shell) undo() {
	if err := s.session.Undo(); err != nil {
		s.error("No move to undo.")
	}
}

func (s *Shell) announceWinner() {
	winner, err := s.session.Board().Winner()
	if err != nil {
		s.error(err.Error())
		return
	}

	switch winner {
	case reversi.Human:
		fmt.Fprintln(s.out, "Congratulations! You won.")
	case reversi.Machine:
		fmt.Fprintln(s.out, "Sorry! Machine wins.")
	default:
		fmt.Fprintln(s.out, "Nobody wins. Tie.")
	}
}

func (s *Shell) error(message string) {
	fmt.Fprintln(s.out, "Error! "+message)
}

func (s *Shell) parseInt(token string) (int, bool) {
	value, err := strconv.Atoi(token)
	if err != nil {
		s.error("The number has to be an integer!")
		return 0, false
	}
	return value, true
}

func (s *Shell) help() {
	fmt.Fprintln(s.out, "Available commands:")
	fmt.Fprintf(s.out, "  NEW              Starts a new game, keeping level and first player.\n")
	fmt.Fprintf(s.out, "  LEVEL <lvl>      Sets the difficulty to <lvl>, from %d to %d.\n", reversi.MinLevel, reversi.MaxLevel)
	fmt.Fprintf(s.out, "  MOVE <row> <col> Places a tile on the slot (<row>, <col>), both from 1 to %d.\n", reversi.Size)
	fmt.Fprintf(s.out, "  UNDO             Takes back the last human move and the machine's replies.\n")
	fmt.Fprintf(s.out, "  SWITCH           Starts a new game with the other player opening.\n")
	fmt.Fprintf(s.out, "  PRINT            Prints the board as a matrix.\n")
	fmt.Fprintf(s.out, "  HELP             Prints this help.\n")
	fmt.Fprintf(s.out, "  QUIT             Exits the program.\n")
}
