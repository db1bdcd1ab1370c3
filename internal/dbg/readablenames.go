package dbg

import (
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// Readable names for things that are otherwise only distinguishable by index
// or address, like the chains in a drawing. Names are handed out lazily and
// memoized per key, and never freed, so this is for debugging output only.

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	// Names are handed out in order of demand, so the same name doesn't mean the
	// same thing between runs. Nondeterministic mode makes that obvious.
	petname.NonDeterministicMode()
}

// Name returns the memoized name for key, generating one if needed. Keys must
// be comparable.
func Name(key interface{}) string {
	if key == nil {
		return "Ø"
	}

	if r, ok := memo[key]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[key] = r
	return r
}

// Name for the i-th chain of a run
func ChainName(i int) string {
	return Name(chainKey(i))
}

type chainKey int
