package main

import "github.com/exagit/codemaid/cmd"

func main() {
	cmd.Execute()
}
