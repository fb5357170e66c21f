package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/zephyrtronium/numexpr"
)

func main() {
	log.SetFlags(0)
	var (
		inname, cfgname string
		opts            options
	)
	addwith := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		opts.given = append(opts.given, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&cfgname, "config", "", "YAML file with format, lines, echo, and vars settings")
	flag.StringVar(&opts.format, "fmt", "%g", "result formatting string")
	flag.Func("given", "name=value variable definition (any number of times)", addwith)
	flag.BoolVar(&opts.lines, "n", false, "parse separate input lines as separate expressions")
	flag.BoolVar(&opts.echo, "echo", false, "print parse trees")
	flag.Parse()

	if cfgname != "" {
		cfg, err := loadConfig(cfgname)
		if err != nil {
			log.Fatal(err)
		}
		set := make(map[string]bool)
		flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
		opts, err = cfg.apply(opts, set)
		if err != nil {
			log.Fatalf("%s: %v", cfgname, err)
		}
	}

	var ins []io.RuneScanner
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		ins = append(ins, f)
	}
	for _, arg := range flag.Args() {
		ins = append(ins, strings.NewReader(arg))
	}

	ctx, err := define(opts.given)
	if err != nil {
		log.Fatal(err)
	}

	var p []*numexpr.Expr
	var popts []numexpr.ParseOption
	if opts.lines {
		popts = append(popts, numexpr.StopOn('\n'))
	}
	for _, in := range ins {
		for {
			// First check whether we're done with the input.
			if _, _, err := in.ReadRune(); err != nil {
				if err == io.EOF {
					break
				}
				log.Fatal(err)
			}
			in.UnreadRune()
			a, err := numexpr.Parse(in, popts...)
			if err != nil {
				log.Fatal(err)
			}
			p = append(p, a)
		}
	}

	verb := opts.format + "\n"
	for _, a := range p {
		if opts.echo {
			fmt.Printf("%v : ", a)
		}
		r := ctx.Eval(a)
		if err := ctx.Err(); err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Printf(verb, r)
	}
}

// define evaluates variable definitions in order. Each definition may use
// the variables defined before it.
func define(given [][2]string) (*numexpr.Context, error) {
	ctx := numexpr.NewContext()
	for _, d := range given {
		nm, vl := d[0], d[1]
		a, err := numexpr.ParseString(vl)
		if err != nil {
			return nil, fmt.Errorf("setting %s: %w", nm, err)
		}
		r := ctx.Eval(a)
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("setting %s: %w", nm, err)
		}
		ctx.Set(nm, r)
	}
	return ctx, nil
}

func infile(inname string, std bool) (io.RuneScanner, error) {
	var f *os.File
	switch {
	case inname != "" && inname != "-":
		in, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		f = in
	case inname == "-", std:
		f = os.Stdin
	}
	if f == nil {
		return nil, nil
	}
	return bufio.NewReader(f), nil
}
