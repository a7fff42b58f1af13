package main

import "focode-importer/cmd"

func main() {
	cmd.Execute()
}
