// kindgen generates the kinds file for a package's components: Kind tag
// variables, Kind() methods and a RegisterKinds function. A struct opts
// in by carrying a "crawlkit:component" marker in its doc comment.
//
// Usage:
//
//	go run github.com/nightblade9/crawlkit/cmd/kindgen -out kinds.go ./rogue
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
)

func main() {
	out := flag.String("out", "kinds.go", "output file name")
	flag.Parse()

	pattern := "."
	if flag.NArg() > 0 {
		pattern = flag.Arg(0)
	}

	pkgName, components, err := scan(pattern)
	if err != nil {
		log.Fatalf("kindgen: %v", err)
	}

	src, err := render(pkgName, components)
	if err != nil {
		log.Fatalf("kindgen: render: %v", err)
	}

	if err := os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatalf("kindgen: %v", err)
	}

	fmt.Printf("kindgen: wrote %s (%d components)\n", *out, len(components))
}
