/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/ssargent/fwtab/cmd/fwtab/cmd"

func main() {
	cmd.Execute()
}
