package main

import "minesweep/cmd"

func main() {
	cmd.Execute()
}
