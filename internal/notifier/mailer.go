package notifier

import (
	"fmt"
	"log"

	"gopkg.in/gomail.v2"
)

// Notifier mengirim pemberitahuan ke peserta (saat ini: feedback dari admin).
type Notifier interface {
	FeedbackBaru(to, nama, isi string) error
}

type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type Mailer struct {
	dialer Dialer
	from   string
}

func NewMailer(host string, port int, user, password, from string) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(host, port, user, password),
		from:   from,
	}
}

func NewMailerWithDialer(d Dialer, from string) *Mailer {
	return &Mailer{dialer: d, from: from}
}

func (m *Mailer) FeedbackBaru(to, nama, isi string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Feedback baru dari Admin Magang")
	msg.SetBody("text/plain", fmt.Sprintf("Halo %s,\n\nAdmin memberikan feedback untuk kamu:\n\n%s\n\nSalam,\nAdmin Magang", nama, isi))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("kirim email ke %s: %w", to, err)
	}
	return nil
}

// Noop dipakai kalau SMTP belum dikonfigurasi.
type Noop struct{}

func (Noop) FeedbackBaru(to, nama, isi string) error {
	log.Printf("[MAIL] SMTP belum diset, feedback untuk %s tidak dikirim via email", to)
	return nil
}
