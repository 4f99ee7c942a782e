package main

import "github.com/Mohsinsiddi/w3tokens/cmd"

func main() {
	cmd.Execute()
}
