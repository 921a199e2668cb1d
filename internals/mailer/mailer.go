package mailer

import (
	"log"

	"gopkg.in/gomail.v2"

	"github.com/Srinivaspandrala/server-hrm/internals/configs"
)

// Mailer sends transactional HTML mail over SMTP. Delivery is best-effort:
// everything except the signup confirmation is fire-and-forget and failures
// are only logged.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewFromEnv() *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(configs.SMTPHost, configs.SMTPPort, configs.SMTPUser, configs.SMTPPass),
		from:   configs.MailFrom,
	}
}

func (m *Mailer) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)
	return m.dialer.DialAndSend(msg)
}

// SendAsync dispatches without awaiting completion; failures are logged only.
func (m *Mailer) SendAsync(to, subject, htmlBody string) {
	go func() {
		if err := m.Send(to, subject, htmlBody); err != nil {
			log.Printf("[ERROR] sending mail %q to %s: %v", subject, to, err)
		} else {
			log.Printf("[INFO] mail %q sent to %s", subject, to)
		}
	}()
}
