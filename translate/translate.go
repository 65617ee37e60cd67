// Package translate renders user-facing messages in the best matching
// language of the host system.
package translate

//go:generate go tool gotext -srclang=en-US update -out=catalog.go -lang=en-US github.com/ezrec/chip8asm/asm github.com/ezrec/chip8asm/cmd/chip8asm

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var (
	lock    sync.RWMutex
	printer *message.Printer
)

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("chip8asm: locale: %v", err)
	}

	SetLocale(locales...)
}

// SetLocale selects the printer for the first supported BCP 47 tag in
// locales. With no tags, en-US is used.
func SetLocale(locales ...string) {
	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	p := message.NewPrinter(message.MatchLanguage(locales...))

	lock.Lock()
	printer = p
	lock.Unlock()
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	lock.RLock()
	p := printer
	lock.RUnlock()

	return p.Sprintf(key, args...)
}
