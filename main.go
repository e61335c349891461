package main

import "github.com/ronharel02/hilan-attendance/cmd"

func main() {
	cmd.Execute()
}
