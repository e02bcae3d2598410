package main

import (
	"fmt"
	"io"
	"os"

	"git.sr.ht/~sircmpwn/getopt"

	"github.com/MrEasybutton/BAUx2/lexer"
	"github.com/MrEasybutton/BAUx2/log"
	"github.com/MrEasybutton/BAUx2/parser"
	"github.com/MrEasybutton/BAUx2/vm"
)

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: baux2 [-c code] [file]")
	os.Exit(1)
}

func main() {
	log.CrashOnError = true

	var code string
	haveCode := false

	opts, optind, err := getopt.Getopts(os.Args, "c:")
	if err != nil {
		log.Err("%s", err)
	}
	for _, opt := range opts {
		switch opt.Option {
		case 'c':
			code = opt.Value
			haveCode = true
		}
	}

	args := os.Args[optind:]
	switch {
	case haveCode && len(args) == 0:
	case !haveCode && len(args) == 1:
		bytes, err := os.ReadFile(args[0])
		if err != nil {
			log.Err("%s", err)
		}
		code = string(bytes)
	case !haveCode && len(args) == 0:
		bytes, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Err("%s", err)
		}
		code = string(bytes)
	default:
		usage()
	}

	run(code)
}

func run(src string) {
	l := lexer.New(src)
	go l.Run()

	prog, err := parser.Parse(l.Out)
	if err != nil {
		log.Err("%s", err)
	}
	if err := vm.Run(prog, os.Stdout); err != nil {
		log.Err("%s", err)
	}
}
