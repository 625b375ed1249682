package notify

import (
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"log"
	"strings"
	"sync"

	"gopkg.in/gomail.v2"
)

type EmailConfig struct {
	Host       string
	Port       int
	User       string
	Password   string
	From       string
	Recipients []string
	Workers    int
}

const queueSize = 64

var (
	errQueueFull   = errors.New("email queue full")
	errSinkStopped = errors.New("email sink stopped")
)

type mail struct {
	To      []string
	Subject string
	Text    string
	HTML    string
}

type mailSender interface {
	DialAndSend(m ...*gomail.Message) error
}

// EmailSink mails every event to a fixed recipient list through a small
// worker pool.
type EmailSink struct {
	cfg    EmailConfig
	d      mailSender
	queue  chan mail
	wg     sync.WaitGroup
	mu     sync.RWMutex
	closed bool
}

func NewEmailSink(cfg EmailConfig) *EmailSink {
	return newEmailSink(cfg, gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password))
}

func newEmailSink(cfg EmailConfig, d mailSender) *EmailSink {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	es := &EmailSink{
		cfg:   cfg,
		d:     d,
		queue: make(chan mail, queueSize),
	}
	for i := 0; i < cfg.Workers; i++ {
		es.wg.Add(1)
		go es.worker()
	}
	return es
}

func (es *EmailSink) Name() string { return "email" }

func (es *EmailSink) Deliver(env Envelope) error {
	if len(es.cfg.Recipients) == 0 {
		return nil
	}
	body, err := json.MarshalIndent(env.Payload, "", "  ")
	if err != nil {
		return err
	}

	m := mail{
		To:      es.cfg.Recipients,
		Subject: subjectFor(env.Event),
		Text:    string(body),
		HTML:    fmt.Sprintf("<p>%s</p><pre>%s</pre>", subjectFor(env.Event), html.EscapeString(string(body))),
	}

	es.mu.RLock()
	defer es.mu.RUnlock()
	if es.closed {
		return errSinkStopped
	}
	select {
	case es.queue <- m:
		return nil
	default:
		return errQueueFull
	}
}

// Stop drains the queue and waits for the workers.
func (es *EmailSink) Stop() {
	es.mu.Lock()
	if es.closed {
		es.mu.Unlock()
		return
	}
	es.closed = true
	close(es.queue)
	es.mu.Unlock()

	es.wg.Wait()
	log.Println("[notify] email workers stopped")
}

func (es *EmailSink) worker() {
	defer es.wg.Done()
	for m := range es.queue {
		if err := es.send(m); err != nil {
			log.Printf("[notify] email to %s failed: %v", strings.Join(m.To, ","), err)
		}
	}
}

func (es *EmailSink) send(e mail) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", es.cfg.From)
	msg.SetHeader("To", e.To...)
	msg.SetHeader("Subject", e.Subject)
	msg.SetBody("text/plain", e.Text)
	msg.AddAlternative("text/html", e.HTML)

	return es.d.DialAndSend(msg)
}

func subjectFor(ev Event) string {
	switch ev {
	case EventSubmissionCreated:
		return "New report created"
	case EventSubmissionSubmitted:
		return "Report submitted for approval"
	case EventSubmissionApproved:
		return "Report approved"
	case EventSubmissionRejected:
		return "Report rejected"
	}
	return string(ev)
}

