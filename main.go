package main

import "github.com/casapps/cascolor/cmd"

func main() {
	cmd.Execute()
}
