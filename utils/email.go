package utils

import (
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// SendEmail delivers an HTML message through the SMTP account from the
// environment, already loaded at startup by db.Init.
func SendEmail(to, subject, body string) error {
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))

	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("EMAIL_USER"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		os.Getenv("SMTP_HOST"),
		port,
		os.Getenv("EMAIL_USER"),
		os.Getenv("EMAIL_PASS"),
	)

	return d.DialAndSend(m)
}
