package main

import "github.com/keywarden/keywarden/cmd"

func main() {
	cmd.Execute()
}
