package mailer

import (
	"fmt"
	"html"
)

func passwordResetContent(name, link string) (subject, text, htmlBody string) {
	if name == "" {
		name = "Bonjour"
	} else {
		name = "Bonjour " + name
	}

	subject = "Réinitialisation de votre mot de passe"
	text = fmt.Sprintf("%s,\n\nPour choisir un nouveau mot de passe, ouvrez le lien suivant :\n%s\n\n"+
		"Si vous n'êtes pas à l'origine de cette demande, ignorez ce message.\n", name, link)
	htmlBody = fmt.Sprintf("<p>%s,</p><p>Pour choisir un nouveau mot de passe, "+
		"<a href=\"%s\">cliquez ici</a>.</p><p>Si vous n'êtes pas à l'origine de cette demande, ignorez ce message.</p>",
		html.EscapeString(name), html.EscapeString(link))
	return subject, text, htmlBody
}
