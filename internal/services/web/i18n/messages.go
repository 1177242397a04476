package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	en := language.AmericanEnglish
	message.SetString(en, "page.dashboard", "Dashboard")
	message.SetString(en, "dashboard.empty.heading", "Nothing to show yet")
	message.SetString(en, "dashboard.empty.body", "Option prices and Greeks appear here once a model is selected.")
	message.SetString(en, "error.internal", "Something went wrong while rendering this page.")

	pt := language.BrazilianPortuguese
	message.SetString(pt, "page.dashboard", "Painel")
	message.SetString(pt, "dashboard.empty.heading", "Nada para mostrar ainda")
	message.SetString(pt, "dashboard.empty.body", "Preços de opções e gregas aparecem aqui quando um modelo é selecionado.")
	message.SetString(pt, "error.internal", "Algo deu errado ao renderizar esta página.")
}
