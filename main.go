package main

import "github.com/zsh-tools/zkeys/cmd"

func main() {
	cmd.Execute()
}
