package main

import "tidsreg-be/cmd"

func main() {
	cmd.Execute()
}
