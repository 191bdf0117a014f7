// zvariant - signature inspection tool for the zbus typed-value layer
//
// Usage:
//
//	zvariant sig <signature>   Validate a signature and describe it
//	zvariant version           Print version info
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/forkgull/zbus/zvariant"
)

const libVersion = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch cmd := os.Args[1]; cmd {
	case "sig":
		if len(os.Args) < 3 {
			fatal("sig: missing signature argument")
		}
		cmdSig(os.Args[2])
	case "version":
		fmt.Printf("zvariant %s\n", libVersion)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "zvariant: unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func cmdSig(arg string) {
	sig, err := zvariant.ParseSignature(arg)
	if err != nil {
		fatal("invalid signature: %v", err)
	}
	fmt.Printf("signature: %s\n", sig)
	fmt.Printf("alignment: %d\n", sig.Alignment())
	fmt.Printf("structure: %s\n", describe(sig.String()))
}

// describe renders a signature as a readable type expression, e.g.
// "a{sv}" becomes "dict {string -> variant}".
func describe(s string) string {
	out, _ := describeOne(s)
	return out
}

func describeOne(s string) (string, string) {
	if s == "" {
		return "", ""
	}
	switch s[0] {
	case 'y':
		return "u8", s[1:]
	case 'b':
		return "bool", s[1:]
	case 'n':
		return "i16", s[1:]
	case 'q':
		return "u16", s[1:]
	case 'i':
		return "i32", s[1:]
	case 'u':
		return "u32", s[1:]
	case 'x':
		return "i64", s[1:]
	case 't':
		return "u64", s[1:]
	case 'd':
		return "f64", s[1:]
	case 's':
		return "string", s[1:]
	case 'v':
		return "variant", s[1:]
	case 'a':
		if len(s) > 1 && s[1] == '{' {
			k, rest := describeOne(s[2:])
			v, rest := describeOne(rest)
			if rest != "" && rest[0] == '}' {
				rest = rest[1:]
			}
			return "dict {" + k + " -> " + v + "}", rest
		}
		elem, rest := describeOne(s[1:])
		return "array of " + elem, rest
	case '(':
		var parts []string
		rest := s[1:]
		for rest != "" && rest[0] != ')' {
			var p string
			p, rest = describeOne(rest)
			parts = append(parts, p)
		}
		if rest != "" {
			rest = rest[1:]
		}
		return "struct(" + strings.Join(parts, ", ") + ")", rest
	default:
		return "?", s[1:]
	}
}

func printUsage() {
	fmt.Fprint(os.Stderr, `zvariant - signature inspection tool for the zbus typed-value layer

Usage:
  zvariant sig <signature>   Validate a signature and describe it
  zvariant version           Print version info

Examples:
  zvariant sig 'a{sv}'
  zvariant sig '(isx)'
`)
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "zvariant: "+format+"\n", args...)
	os.Exit(1)
}
