/*
	Copyright 2023 Markus Papenbrock
*/

package main

import "github.com/mpapenbr/diveplanner-go/cmd"

func main() {
	cmd.Execute()
}
