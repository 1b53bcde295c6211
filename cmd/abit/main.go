// Resolves an ABI type and prints its canonical signature,
// size classification, and keccak hash.
//
// With no arguments abit reads a JSON param descriptor from
// stdin. With one argument it resolves the argument as a
// type description.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"

	"github.com/Sanghren/go-ethereum-abi/abit"
)

func main() {
	var p abit.Param
	switch len(os.Args) {
	case 1:
		input, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		if err := json.Unmarshal(input, &p); err != nil {
			fmt.Println("unable to json decode stdin")
			os.Exit(1)
		}
	case 2:
		p = abit.Param{Type: os.Args[1]}
	default:
		fmt.Println("abit reads a json descriptor from stdin or a type through first argument")
		os.Exit(1)
	}
	t, err := p.Resolve()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	var (
		sig   = t.Signature()
		class = "static"
	)
	if t.Dynamic() {
		class = "dynamic"
	}
	fmt.Printf("%s %s %x\n", sig, class, abit.SigHash(sig))
}
