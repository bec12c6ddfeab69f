package platform

import (
	"errors"
	"fmt"
	"os/exec"

	"fyne.io/fyne/v2"
)

// ErrNotifierUnavailable indicates there is no backend able to show notifications.
var ErrNotifierUnavailable = errors.New("desktop notifications unavailable")

// Notifier tells the user about Pomodoro phase boundaries.
type Notifier interface {
	TimeToBreak() error
	TimeToStudy() error
	StudyIsOver() error
}

// Message is the text of a single desktop notification.
type Message struct {
	Title string
	Body  string
}

var (
	BreakMessage = Message{Title: "Break time!", Body: "It's time to take a break to recharge"}
	StudyMessage = Message{Title: "Study time!", Body: "It's time to study hard"}
	OverMessage  = Message{Title: "End", Body: "Study session is over, good job!"}
)

// Sender delivers a message through one notification backend.
type Sender interface {
	Send(message Message) error
}

// NewNotifier returns the notifier for the current platform. app is used as
// the fallback backend and may be nil in headless environments.
func NewNotifier(app fyne.App) Notifier {
	return &messageNotifier{sender: newSender(app)}
}

// NewNotifierWithSender builds a notifier on top of an explicit backend.
func NewNotifierWithSender(sender Sender) Notifier {
	return &messageNotifier{sender: sender}
}

type messageNotifier struct {
	sender Sender
}

func (notifier *messageNotifier) TimeToBreak() error {
	return notifier.send(BreakMessage)
}

func (notifier *messageNotifier) TimeToStudy() error {
	return notifier.send(StudyMessage)
}

func (notifier *messageNotifier) StudyIsOver() error {
	return notifier.send(OverMessage)
}

func (notifier *messageNotifier) send(message Message) error {
	if notifier.sender == nil {
		return ErrNotifierUnavailable
	}
	if err := notifier.sender.Send(message); err != nil {
		return fmt.Errorf("notify %q: %w", message.Title, err)
	}
	return nil
}

// appSender shows notifications through the fyne application.
type appSender struct {
	app fyne.App
}

func (sender appSender) Send(message Message) error {
	if sender.app == nil {
		return ErrNotifierUnavailable
	}
	sender.app.SendNotification(fyne.NewNotification(message.Title, message.Body))
	return nil
}

// commandSender runs an external notification tool.
type commandSender struct {
	path string
	args func(Message) []string
}

func (sender commandSender) Send(message Message) error {
	output, err := exec.Command(sender.path, sender.args(message)...).CombinedOutput()
	if err != nil {
		if len(output) > 0 {
			return fmt.Errorf("%s: %w: %s", sender.path, err, output)
		}
		return fmt.Errorf("%s: %w", sender.path, err)
	}
	return nil
}
