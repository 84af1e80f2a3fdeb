package app

import (
	"embed"
	"fmt"

	"github.com/BrandonKowalski/choreo/pkg/choreo"
	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFiles embed.FS

// Supported languages. The first one is the fallback.
var supported = []language.Tag{language.English, language.German}

var matcher = language.NewMatcher(supported)

// Localizer looks up the demo's screen titles.
type Localizer struct {
	tag       language.Tag
	localizer *i18n.Localizer
}

// NewLocalizer loads the embedded message files and picks the supported
// language closest to lang. An unparsable or unsupported lang falls back to
// English.
func NewLocalizer(lang string) (*Localizer, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	for _, tag := range supported {
		path := fmt.Sprintf("locales/active.%s.toml", tag)
		if _, err := bundle.LoadMessageFileFS(localeFiles, path); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}

	requested, err := language.Parse(lang)
	if err != nil {
		choreo.GetLogger().Warn("Unknown language, using English", "lang", lang, "error", err)
		requested = language.English
	}
	_, index, _ := matcher.Match(requested)
	tag := supported[index]

	return &Localizer{
		tag:       tag,
		localizer: i18n.NewLocalizer(bundle, tag.String()),
	}, nil
}

// Language returns the language the titles are shown in.
func (l *Localizer) Language() language.Tag {
	return l.tag
}

// Message returns the message with the given id, or the id when there is none.
func (l *Localizer) Message(id string) string {
	return l.messageWith(id, nil)
}

// WindowTitle returns the window title showing screen.
func (l *Localizer) WindowTitle(screen string) string {
	return l.messageWith("WindowTitle", map[string]string{"Screen": screen})
}

func (l *Localizer) messageWith(id string, data map[string]string) string {
	config := &i18n.LocalizeConfig{MessageID: id}
	if data != nil {
		config.TemplateData = data
	}
	msg, err := l.localizer.Localize(config)
	if err != nil {
		choreo.GetLogger().Warn("Missing message", "id", id, "lang", l.tag.String(), "error", err)
		return id
	}
	return msg
}
