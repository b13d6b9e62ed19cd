package main

import (
	"context"
	"matchdata-backend/cmd/matchdata-cli/commands"
)

func main() {
	commands.ExecuteContext(context.Background())
}
