package mockup

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// NoticeKind classifies a user-facing notification.
type NoticeKind uint8

const (
	// NoticeTemplateLoad reports that template assets could not be loaded.
	NoticeTemplateLoad NoticeKind = iota

	// NoticePhotoLoad reports that the uploaded photo could not be used.
	NoticePhotoLoad

	// NoticeComposition reports that the final composition failed.
	NoticeComposition

	// NoticeExport reports that the result could not be written.
	NoticeExport
)

// Message keys, also the English text.
const (
	msgTemplateLoad = "The template images could not be loaded. Check that the files exist and try again."
	msgPhotoLoad    = "The image could not be processed. Please try another one."
	msgComposition  = "The result could not be generated. Please try again."
	msgExport       = "The result could not be saved as %s."
)

var noticeKeys = [...]string{
	NoticeTemplateLoad: msgTemplateLoad,
	NoticePhotoLoad:    msgPhotoLoad,
	NoticeComposition:  msgComposition,
	NoticeExport:       msgExport,
}

// Notification is a plain-language failure message for the user.
// Err is the cause, for diagnostics.
type Notification struct {
	Kind    NoticeKind
	Message string
	Err     error
}

// Notifier shows notifications to the user. Notify must not block for
// long; the session waits for it.
type Notifier interface {
	Notify(Notification)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Notification)

// Notify calls f(n).
func (f NotifierFunc) Notify(n Notification) { f(n) }

type nopNotifier struct{}

func (nopNotifier) Notify(Notification) {}

var (
	supportedLanguages = []language.Tag{language.Spanish, language.English}
	languageMatcher    = language.NewMatcher(supportedLanguages)
	messages           = newCatalog()
)

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for _, key := range noticeKeys {
		_ = b.SetString(language.English, key, key)
	}
	_ = b.SetString(language.Spanish, msgTemplateLoad,
		"Hubo un error al cargar las imágenes base. Asegúrate de que los archivos existen e inténtalo de nuevo.")
	_ = b.SetString(language.Spanish, msgPhotoLoad,
		"Hubo un error al procesar la imagen. Por favor, intenta con otra.")
	_ = b.SetString(language.Spanish, msgComposition,
		"No se pudo generar el resultado. Por favor, inténtalo de nuevo.")
	_ = b.SetString(language.Spanish, msgExport,
		"No se pudo guardar el resultado como %s.")
	return b
}

// newPrinter returns a printer for the closest supported language.
func newPrinter(tag language.Tag) *message.Printer {
	_, i, _ := languageMatcher.Match(tag)
	return message.NewPrinter(supportedLanguages[i], message.Catalog(messages))
}

// notice builds a localized notification of kind for err.
func notice(p *message.Printer, kind NoticeKind, err error, args ...any) Notification {
	return Notification{
		Kind:    kind,
		Message: p.Sprintf(noticeKeys[kind], args...),
		Err:     err,
	}
}
