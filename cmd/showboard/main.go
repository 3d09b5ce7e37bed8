package main

import (
	"flag"
	"fmt"
	"os"

	"reversi/internal/reversi"
)

func main() {
	boardString := flag.String("board", "", "the board to show, 64 cells of '.XO' plus \"-h\" or \"-m\"")
	flag.Parse()

	board, err := reversi.NewBoardFromString(*boardString)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	fmt.Println(board)
	fmt.Printf("human %d - %d machine, %s to move\n",
		board.CountHuman(), board.CountMachine(), board.Next())
}
