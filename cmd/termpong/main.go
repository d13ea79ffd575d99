package main

import (
	"fmt"
	"os"

	"github.com/diegok/termpong/internal/app"
	"github.com/diegok/termpong/internal/config"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	application := app.NewApp(cfg)
	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  termpong [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --points <n>           Points to win (default: 5)")
	fmt.Fprintln(os.Stderr, "  --difficulty <1-10>    Computer difficulty (default: 5)")
	fmt.Fprintln(os.Stderr, "  --name <name>          Player 1 display name")
	fmt.Fprintln(os.Stderr, "  --name2 <name>         Player 2 display name")
	fmt.Fprintln(os.Stderr, "  --paddle-height <n>    Paddle height in cells")
	fmt.Fprintln(os.Stderr, "  --ball-speed <n>       Base ball speed in cells per frame")
	fmt.Fprintln(os.Stderr, "  --muted                Start with sound muted")
	fmt.Fprintln(os.Stderr, "  --log <file>           Write diagnostics to a file")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "In game:")
	fmt.Fprintln(os.Stderr, "  arrows or mouse        Move your paddle")
	fmt.Fprintln(os.Stderr, "  w/s                    Second player joins on first press")
	fmt.Fprintln(os.Stderr, "  space                  Serve the ball")
	fmt.Fprintln(os.Stderr, "  p / m / q              Pause, mute, quit")
}
