package main

import "github.com/mcoot/othello-arena/internal/cli"

func main() {
	cli.Execute()
}
