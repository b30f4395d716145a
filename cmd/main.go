package main

import "github.com/Dimitry-bit/quest/pkg/cmd"

func main() {
	cmd.Execute()
}
