package main

import "github.com/goosio/notedeck/cmd"

func main() {
	cmd.Execute()
}
