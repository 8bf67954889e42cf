package main

import "github.com/OpenTraceLab/vlang/cmd/vlang/cmd"

func main() {
	cmd.Execute()
}
