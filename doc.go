/*
Package getopt parses command line arguments against a set of registered
short (-x) and long (--xyz) options.

Example

Greet program:

		package main

		import (
			"fmt"
			"os"

			"github.com/isobit/getopt"
		)

		func main() {
			set := getopt.New().
				Short("h", "show usage help").
				Long("excited", "use an exclamation point").
				LongValue("greeting", getopt.NewValue("Hello"), "the greeting to use").
				ShortValue("n", getopt.NewValue[string]().Name("name"), "your name")

			r, err := set.Parse()
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: %s\n", err)
				os.Exit(1)
			}
			if h, _ := r.LookupShort("h"); h.Used() {
				fmt.Print(set.Description())
				return
			}
			greeting, _ := r.LookupLong("greeting")
			g, _ := getopt.Get[string](greeting)
			punctuation := "."
			if excited, _ := r.LookupLong("excited"); excited.Used() {
				punctuation = "!"
			}
			name, _ := r.LookupShort("n")
			n, err := getopt.Get[string](name)
			if err != nil {
				n = "world"
			}
			fmt.Printf("%s, %s%s\n", g, n, punctuation)
		}

Usage:

		$ greet -h
		  -h                       show usage help
		  --excited                use an exclamation point
		  --greeting[ |=]<arg>(=Hello)  the greeting to use
		  -n <name>                your name
		$ greet --greeting=Hey -n you --excited
		Hey, you!


Syntax

Short options are written "-name" and long options "--name". A value-bearing
short option takes the next argument as its value ("-n value"). A long option
takes either the next argument ("--name value") or the text after an equal
sign ("--name=a,b,c"), which is split on commas into several values.
Registering a long option with a trailing '=' or space restricts it to the
respective form, which also lets a flag and a value-bearing option share a
name:

		getopt.New().
			Long("color", "enable color").
			LongValue("color=", getopt.NewValue[string](), "color scheme")

Anything that does not look like an option is collected as a leftover
argument. There is no "--" terminator and short flags cannot be combined
("-ab" is the single option "ab").


Values

A Value describes the arguments of an option:

		getopt.NewValue(1, 2).   // defaults
			Limit(3).            // keep at most three values
			Constraint(func(x int) bool { return x > 0 }).
			Name("n")            // shown as <n...[1-3]> in help

The first value given on the command line discards the defaults. Values past
the limit overwrite the last kept one. Values are converted with the Setter
interface, encoding.TextUnmarshaler or encoding.BinaryUnmarshaler if the type
implements one of them, and otherwise support strings, booleans, numbers and
time.Duration.


Results

ParseArgs never modifies the Set; it returns a new Registry each time. Values
are retrieved with Get and GetSlice:

		r, err := set.ParseArgs(os.Args)
		h, err := r.LookupLong("count")
		n, err := getopt.Get[int](h)

Defaults are returned even when the option was not used; Handle.Used tells
whether it was.


Struct Binding

Bind registers options for the fields of a struct and Decode fills the struct
from a parsed Registry:

		type Config struct {
			Verbose bool          `getopt:"short=v,help=log more"`
			Timeout time.Duration `getopt:"help=request timeout"`
			Tags    []string      `getopt:"eq,placeholder=tag"`
			Args    []string      `getopt:"args"`
		}

		cfg := &Config{Timeout: 5 * time.Second}
		set := getopt.New().Bind(cfg)
		r, err := set.ParseArgs(os.Args)
		if err == nil {
			err = getopt.Decode(r, cfg)
		}
*/
package getopt
