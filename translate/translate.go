// Package translate formats user visible messages for the locale of the
// running process.
package translate

import (
	"log"
	"sync/atomic"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type localized struct {
	tag     language.Tag
	printer *message.Printer
}

var current atomic.Pointer[localized]

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("yieldgen: locale: %v", err)
	}

	SetLocales(locales...)
}

// SetLocales selects the best supported language for the list of BCP 47
// locale names, falling back to en-US.
func SetLocales(locales ...string) {
	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	// Without a registered catalog the matcher only knows und.
	tag := message.MatchLanguage(locales...)
	if tag == language.Und {
		var err error
		tag, err = language.Parse(locales[0])
		if err != nil {
			tag = language.AmericanEnglish
		}
	}

	SetLanguage(tag)
}

// SetLanguage selects the language used by From.
func SetLanguage(tag language.Tag) {
	current.Store(&localized{
		tag:     tag,
		printer: message.NewPrinter(tag),
	})
}

// Language reports the currently selected language.
func Language() language.Tag {
	return current.Load().tag
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return current.Load().printer.Sprintf(key, args...)
}
