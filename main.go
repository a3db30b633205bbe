package main

import (
	"context"
	"os"

	"github.com/thenoetrevino/todos/cmd"
)

func main() {
	os.Exit(cmd.Execute(context.Background()))
}
