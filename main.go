package main

import "github.com/theirongolddev/parlsim/cmd"

func main() {
	cmd.Execute()
}
