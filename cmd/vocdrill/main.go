package main

import "github.com/eslsoft/vocdrill/cmd"

func main() {
	cmd.Execute()
}
