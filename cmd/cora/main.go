// Copyright 2023 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

/*
cora is the command-line front end over the awali engine: it reads an
automaton or rational expression in one of the supported textual formats,
applies the verb named on the command line, and writes the result back out.

	cora cat -W lal_char_b myaut.json
	cora determinize -W lal_char_b myaut.json > det.json
	cora eval -W lal_char_z myaut.json bbbaaabbaaab

Run `cora list` for the set of recognised verbs and `cora help <verb>` for
a verb's one-line summary.
*/
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
)

// Exit codes: 0 success (or true for a boolean verb in script mode),
// 1 false, 2 invalid input, 3 unsupported operation.
const (
	exitOK           = 0
	exitFalse        = 1
	exitInvalidInput = 2
	exitUnsupported  = 3
)

func main() {
	log.SetFlags(0)
	flag.Usage = usage
	if len(os.Args) < 2 {
		usage()
		os.Exit(exitInvalidInput)
	}
	verb := os.Args[1]
	v, ok := verbs[verb]
	if !ok {
		log.Printf("cora: unrecognised verb %q", verb)
		usage()
		os.Exit(exitInvalidInput)
	}
	os.Exit(v.run(os.Args[2:]))
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: cora <verb> [flags] <args>\n\nVerbs:\n")
	for _, name := range verbNames() {
		fmt.Fprintf(os.Stderr, "  %-18s %s\n", name, verbs[name].summary)
	}
}
