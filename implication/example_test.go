package implication_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/hasse/implication"
)

// ExampleSystem_MakeCanonicalBasis derives the Duquenne–Guigues basis
// of a chain of implications.
func ExampleSystem_MakeCanonicalBasis() {
	sys, _ := implication.Parse(strings.NewReader("a b c\na -> b\nb -> c\na -> c\n"))
	sys.MakeCanonicalBasis()

	for _, r := range sys.Rules() {
		fmt.Println(r)
	}
	// Output:
	// a -> b c
	// b -> c
}
