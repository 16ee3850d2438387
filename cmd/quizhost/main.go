package main

import "github.com/quizhost/quizhost/internal/cli"

func main() {
	cli.Execute()
}
