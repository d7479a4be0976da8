package main

import "github.com/kamusis/docnav/cmd"

func main() {
	cmd.Execute()
}
