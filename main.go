package main

import "github.com/mj1618/tasktrees/cmd"

func main() {
	cmd.Execute()
}
