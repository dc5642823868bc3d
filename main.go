package main

import "github.com/samsaffron/mdtidy/cmd"

func main() {
	cmd.Execute()
}
