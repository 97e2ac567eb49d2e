package alert

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type stubSender struct {
	sent []Event
	err  error
}

func (s *stubSender) Send(to, body string) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, Event{Phone: to, Message: body})
	return nil
}

func newTestWorker(sender Sender) *Worker {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return NewWorker(nil, sender, logger)
}

func TestWorkerProcess_SendsEvent(t *testing.T) {
	sender := &stubSender{}
	w := newTestWorker(sender)

	w.process(Event{Phone: "+10000000000", Message: "Fire Risk Alert! Probability: 95.00% - Stay safe!"})

	assert.Len(t, sender.sent, 1)
	assert.Equal(t, "+10000000000", sender.sent[0].Phone)
	assert.Equal(t, "Fire Risk Alert! Probability: 95.00% - Stay safe!", sender.sent[0].Message)
}

func TestWorkerProcess_SendFailureIsSwallowed(t *testing.T) {
	sender := &stubSender{err: errors.New("provider rejected")}
	w := newTestWorker(sender)

	// Сбой провайдера логируется и проглатывается, не паникуем
	w.process(Event{Phone: "+10000000000", Message: "test"})

	assert.Empty(t, sender.sent)
}
