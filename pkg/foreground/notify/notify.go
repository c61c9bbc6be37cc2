// Package notify turns foreground changes into short localized messages,
// the kind a host shows as a toast.
package notify

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/foreground/pkg/foreground/internal"
)

// Message ids in the locale files.
const (
	MessageForegroundEntered = "ForegroundEntered"
	MessageForegroundLeft    = "ForegroundLeft"
)

//go:embed locales/*.toml
var locales embed.FS

// Supported lists the languages messages are shipped in; the first is the fallback.
var Supported = []language.Tag{
	language.English,
	language.German,
	language.Chinese,
}

var matcher = language.NewMatcher(Supported)

// Sink receives each localized message.
type Sink func(message string)

// Notifier is a monitor.Listener that localizes every foreground change and
// passes it to a Sink.
type Notifier struct {
	app       string
	tag       language.Tag
	localizer *i18n.Localizer
	sink      Sink
}

// NewBundle loads the embedded message files.
func NewBundle() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(Supported[0])
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	paths, err := fs.Glob(locales, "locales/*.toml")
	if err != nil {
		return nil, err
	}
	for _, path := range paths {
		if _, err := bundle.LoadMessageFileFS(locales, path); err != nil {
			return nil, fmt.Errorf("notify: load %s: %w", path, err)
		}
	}
	return bundle, nil
}

// New creates a Notifier for app speaking lang, a BCP 47 tag. Unknown or
// malformed tags fall back to English.
func New(app, lang string, sink Sink) (*Notifier, error) {
	bundle, err := NewBundle()
	if err != nil {
		return nil, err
	}

	tag := Match(lang)
	return &Notifier{
		app:       app,
		tag:       tag,
		localizer: i18n.NewLocalizer(bundle, tag.String()),
		sink:      sink,
	}, nil
}

// Match picks the supported language closest to lang.
func Match(lang string) language.Tag {
	requested, err := language.Parse(lang)
	if err != nil {
		return Supported[0]
	}
	_, index, confidence := matcher.Match(requested)
	if confidence == language.No {
		return Supported[0]
	}
	return Supported[index]
}

// Language returns the language messages are produced in.
func (n *Notifier) Language() language.Tag {
	return n.tag
}

// Message returns the localized text for a foreground change.
func (n *Notifier) Message(foreground bool) string {
	id := MessageForegroundLeft
	if foreground {
		id = MessageForegroundEntered
	}

	msg, err := n.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: map[string]string{"App": n.app},
	})
	if err != nil {
		internal.GetInternalLogger().Warn("Failed to localize foreground message", "id", id, "language", n.tag.String(), "error", err)
		return fmt.Sprintf("foreground: %t", foreground)
	}
	return msg
}

// OnForegroundChange implements monitor.Listener.
func (n *Notifier) OnForegroundChange(foreground bool) {
	if n.sink != nil {
		n.sink(n.Message(foreground))
	}
}
