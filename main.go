package main

import "github.com/ferastyb/weight-and-balance/cmd"

func main() {
	cmd.Execute()
}
