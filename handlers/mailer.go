package handlers

import "github.com/sananasgarov/NummixAzBackend/utils/mailer"

// mail is the process-wide notification gateway, wired once at startup.
var mail mailer.Sender

func InitMailer(sender mailer.Sender) {
	mail = sender
}
