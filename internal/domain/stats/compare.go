package stats

import (
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collator español para ordenar nombres como lo hace localeCompare en la UI
// (tildes y eñes en su lugar, no por code point). collate.Collator no es
// seguro para uso concurrente, de ahí el mutex.
var (
	collatorMu sync.Mutex
	collator   = collate.New(language.Spanish)
)

// CompareNames compara dos nombres con la colación española.
// Devuelve <0, 0 o >0 como strings.Compare.
func CompareNames(a, b string) int {
	collatorMu.Lock()
	defer collatorMu.Unlock()
	return collator.CompareString(a, b)
}
