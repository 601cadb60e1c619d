package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/xy-planning-network/kellog/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
