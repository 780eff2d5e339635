package main

import "taskmarket.com/taskmarket/cmd"

func main() {
	cmd.Execute()
}
