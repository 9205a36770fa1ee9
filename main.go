package main

import "chronos.team/chronos/cmd"

func main() {
	cmd.Execute()
}
