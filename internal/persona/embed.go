package persona

import (
	"embed"
	"sync"
)

// DefaultName is the persona used when none is configured.
const DefaultName = "coldcall"

//go:embed bundled
var bundled embed.FS

var loadBuiltin = sync.OnceValues(func() (Persona, error) {
	return LoadFS(bundled, "bundled/"+DefaultName)
})

// Builtin returns the Cold Calling Coach persona compiled into the binary.
func Builtin() (Persona, error) {
	p, err := loadBuiltin()
	if err != nil {
		return Persona{}, err
	}
	return p.Clone(), nil
}
