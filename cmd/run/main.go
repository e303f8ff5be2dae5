package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/fedesilva/minnieml/buffer"
	"github.com/fedesilva/minnieml/sysio"
)

func main() {
	var (
		demoName    = flag.String("demo", "", "Demo program to run")
		arg         = flag.String("arg", "", "Argument to pass to the demo")
		list        = flag.Bool("list", false, "List demo programs and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Enable debug logging")
	)
	flag.Parse()

	if *verbose {
		l, err := zap.NewDevelopment()
		if err == nil {
			buffer.SetLogger(l)
			sysio.SetLogger(l)
		}
	}

	if *list {
		fmt.Println("Demo programs:")
		for _, d := range demos {
			hint := ""
			if d.argHint != "" {
				hint = fmt.Sprintf(" [-arg %s, default %s]", d.argHint, d.defaultArg)
			}
			fmt.Printf("  %-10s %s%s\n", d.name, d.desc, hint)
		}
		return
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *demoName == "" {
		fmt.Fprintln(os.Stderr, "Usage: run -demo <name> [-arg value]")
		fmt.Fprintln(os.Stderr, "       run -list")
		fmt.Fprintln(os.Stderr, "       run -i  (interactive mode)")
		os.Exit(1)
	}

	d, ok := findDemo(*demoName)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown demo %q, try -list\n", *demoName)
		os.Exit(1)
	}

	if err := run(d, *arg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(d *demo, arg string) error {
	out := buffer.New()
	defer out.Release()

	if err := d.run(out, arg); err != nil {
		return err
	}
	return out.Flush()
}
