package main

import "github.com/xMohnad/SManga/cmd"

func main() {
	cmd.Execute()
}
