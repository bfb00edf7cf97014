package main

import "github.com/they4kman/hexsweep/cmd"

func main() {
	cmd.Execute()
}
