/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package main

import "stakepool/cmd"

func main() {
	cmd.Execute()
}
