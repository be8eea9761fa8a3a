// Command enginedemo opens a window with the first available driver and
// draws an animated test pattern until the window is closed.
//
// Usage:
//
//	enginedemo [-driver name] [-title text] [-width px] [-height px] [-flow poll|wait] [-list]
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/gogpu/engine"
	"github.com/gogpu/engine/driver"
	"github.com/gogpu/engine/loop"
)

func main() {
	var (
		name   = flag.String("driver", "", "window driver (default: best available)")
		title  = flag.String("title", "engine demo", "window title")
		width  = flag.Uint("width", loop.DefaultWidth, "window width")
		height = flag.Uint("height", loop.DefaultHeight, "window height")
		flow   = flag.String("flow", "poll", "control flow: poll or wait")
		list   = flag.Bool("list", false, "list available drivers and exit")
	)
	flag.Parse()

	if *list {
		fmt.Println(strings.Join(driver.Available(), "\n"))
		return
	}

	cf, err := parseFlow(*flow)
	if err != nil {
		log.Fatal(err)
	}

	opts, err := driver.Options(*name, loop.WindowAttributes{
		Title: *title,
		Size:  loop.Size{Width: uint32(*width), Height: uint32(*height)},
	})
	if err != nil {
		log.Fatalf("Failed to select driver: %v", err)
	}
	opts = append(opts, engine.WithControlFlow(cf))

	e, err := engine.New(opts...)
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}
	if err := e.Run(); err != nil {
		log.Fatal(err)
	}
	keepAlive()
}

func parseFlow(s string) (loop.ControlFlow, error) {
	switch strings.ToLower(s) {
	case "poll":
		return loop.Poll, nil
	case "wait":
		return loop.Wait, nil
	default:
		return loop.Poll, fmt.Errorf("unknown control flow %q (want poll or wait)", s)
	}
}
