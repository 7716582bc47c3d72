package notify

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"strings"
	"time"

	"tourhub/helper"
	"tourhub/model"

	"gopkg.in/gomail.v2"
)

//go:embed templates/*.html
var templateFS embed.FS

const qrName = "booking-qr.png"

// Sender delivers composed messages. *gomail.Dialer satisfies it.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type MailerConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	From        string
	FrontendURL string
	AdminEmail  string
}

// Mailer turns notification events into transactional emails.
type Mailer struct {
	sender      Sender
	from        string
	frontendURL string
	adminEmail  string
	tmpl        *template.Template
}

func NewMailer(cfg MailerConfig) (*Mailer, error) {
	return NewMailerWithSender(gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password), cfg)
}

func NewMailerWithSender(sender Sender, cfg MailerConfig) (*Mailer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse email templates: %w", err)
	}
	return &Mailer{
		sender:      sender,
		from:        cfg.From,
		frontendURL: strings.TrimRight(cfg.FrontendURL, "/"),
		adminEmail:  cfg.AdminEmail,
		tmpl:        tmpl,
	}, nil
}

type digestRow struct {
	Reference string
	Customer  string
	Tour      string
	Date      string
	Total     string
}

type view struct {
	Year           int
	UnsubscribeURL string
	QRName         string
	Booking        model.Booking
	TourTitle      string
	Date           string
	Total          string
	Status         string
	Contact        model.ContactSubmission
	Reply          string
	ToursURL       string
	AdminURL       string
	Bookings       []digestRow
}

func (m *Mailer) Notify(ctx context.Context, kind model.EventKind, payload any) error {
	msg, err := m.Compose(kind, payload)
	if err != nil {
		return err
	}
	if msg == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := m.sender.DialAndSend(msg); err != nil {
		return fmt.Errorf("send %s email: %w", kind, err)
	}
	return nil
}

// Compose builds the email for an event. It returns nil for events that do
// not produce mail.
func (m *Mailer) Compose(kind model.EventKind, payload any) (*gomail.Message, error) {
	v := view{Year: time.Now().Year()}

	switch kind {
	case model.EventBookingCreated, model.EventBookingConfirmed:
		ev, ok := payload.(model.BookingEvent)
		if !ok {
			return nil, fmt.Errorf("%s: unexpected payload %T", kind, payload)
		}
		b := ev.Booking
		v.Booking = b
		v.QRName = qrName
		v.Date = formatDate(b.BookingDate)
		v.Total = formatPrice(b.TotalPrice.StringFixed(2))
		v.Status = capitalize(string(b.Status))
		if b.Tour != nil {
			v.TourTitle = b.Tour.Title
		}

		subject := "Booking Confirmation - " + b.BookingReference
		name := "booking_created.html"
		if kind == model.EventBookingConfirmed {
			subject = "Your Booking is Confirmed - " + b.BookingReference
			name = "booking_confirmed.html"
		}
		msg, err := m.message(b.CustomerEmail, subject, name, v)
		if err != nil {
			return nil, err
		}
		png, err := helper.GenerateQRCode(b.BookingReference, 256)
		if err != nil {
			return nil, fmt.Errorf("booking qr: %w", err)
		}
		msg.Embed(qrName, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(png)
			return err
		}))
		return msg, nil

	case model.EventContactReplied:
		ev, ok := payload.(model.ContactReplyEvent)
		if !ok {
			return nil, fmt.Errorf("%s: unexpected payload %T", kind, payload)
		}
		v.Contact = ev.Contact
		v.Reply = ev.Reply
		subject := "Re: Your inquiry"
		if ev.Contact.Subject != "" {
			subject = "Re: " + ev.Contact.Subject
		}
		return m.message(ev.Contact.Email, subject, "contact_reply.html", v)

	case model.EventNewsletterSubscribed:
		ev, ok := payload.(model.NewsletterEvent)
		if !ok {
			return nil, fmt.Errorf("%s: unexpected payload %T", kind, payload)
		}
		v.ToursURL = m.frontendURL + "/tours"
		v.UnsubscribeURL = m.frontendURL + "/unsubscribe?email=" + url.QueryEscape(ev.Email)
		return m.message(ev.Email, "Welcome to TourHub Newsletter!", "newsletter_welcome.html", v)

	case model.EventBookingsDigest:
		ev, ok := payload.(model.DigestEvent)
		if !ok {
			return nil, fmt.Errorf("%s: unexpected payload %T", kind, payload)
		}
		if m.adminEmail == "" || len(ev.Bookings) == 0 {
			return nil, nil
		}
		v.Date = formatDate(ev.Date)
		v.AdminURL = m.frontendURL + "/admin/bookings?status=pending"
		for _, b := range ev.Bookings {
			row := digestRow{
				Reference: b.BookingReference,
				Customer:  b.CustomerName,
				Date:      formatDate(b.BookingDate),
				Total:     formatPrice(b.TotalPrice.StringFixed(2)),
			}
			if b.Tour != nil {
				row.Tour = b.Tour.Title
			}
			v.Bookings = append(v.Bookings, row)
		}
		subject := fmt.Sprintf("%d pending booking(s) to review", len(ev.Bookings))
		return m.message(m.adminEmail, subject, "bookings_digest.html", v)
	}

	return nil, nil
}

func (m *Mailer) message(to, subject, tmplName string, v view) (*gomail.Message, error) {
	var body bytes.Buffer
	if err := m.tmpl.ExecuteTemplate(&body, tmplName, v); err != nil {
		return nil, fmt.Errorf("render %s: %w", tmplName, err)
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.from, "TourHub")
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body.String())
	return msg, nil
}

func formatDate(t time.Time) string {
	return t.Format("Monday, January 2, 2006")
}

func formatPrice(amount string) string {
	return "AED " + amount
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
