package main

import "dataextract/cmd"

func main() {
	cmd.Execute()
}
