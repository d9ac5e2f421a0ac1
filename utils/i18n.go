package utils

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

var bundle *i18n.Bundle

// client-facing copy, Brazilian Portuguese first since that is the survey's
// audience
var messages = map[language.Tag][]*i18n.Message{
	language.BrazilianPortuguese: {
		{ID: "error.already_submitted", Other: "Você já respondeu esta pesquisa."},
		{ID: "error.rate_limited", Other: "Muitas tentativas. Tente novamente mais tarde."},
		{ID: "error.service_unavailable", Other: "Serviço indisponível. Tente novamente mais tarde."},
		{ID: "error.invalid_parameters", Other: "Dados da pesquisa inválidos."},
		{ID: "error.unauthorized", Other: "Não autorizado."},
		{ID: "error.internal_server", Other: "Erro interno do servidor."},
	},
	language.English: {
		{ID: "error.already_submitted", Other: "You have already answered this survey."},
		{ID: "error.rate_limited", Other: "Too many attempts. Try again later."},
		{ID: "error.service_unavailable", Other: "Service unavailable. Try again later."},
		{ID: "error.invalid_parameters", Other: "Invalid survey data."},
		{ID: "error.unauthorized", Other: "Unauthorized."},
		{ID: "error.internal_server", Other: "Internal server error."},
	},
}

// InitI18NBundle registers the message catalog. Safe to call more than once.
func InitI18NBundle() {
	b := i18n.NewBundle(language.BrazilianPortuguese)
	for tag, msgs := range messages {
		if err := b.AddMessages(tag, msgs...); err != nil {
			panic(err)
		}
	}
	bundle = b
}

// NewLocalizer returns a localizer for the given language preferences,
// usually the raw Accept-Language header. Unknown languages fall back to
// Brazilian Portuguese.
func NewLocalizer(langs ...string) *i18n.Localizer {
	if bundle == nil {
		InitI18NBundle()
	}
	return i18n.NewLocalizer(bundle, langs...)
}
