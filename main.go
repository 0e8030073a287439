package main

import "github.com/gaurav-prasanna/brandpipe/cmd"

func main() {
	cmd.Execute()
}
