package platform

import (
	"errors"
	"net"
	"os/exec"
	"runtime"
	"strconv"
	"testing"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []Message
	err  error
}

func (sender *fakeSender) Send(message Message) error {
	sender.sent = append(sender.sent, message)
	return sender.err
}

type fakeNotifier struct {
	calls []string
	err   error
}

func (notifier *fakeNotifier) TimeToBreak() error {
	notifier.calls = append(notifier.calls, "break")
	return notifier.err
}

func (notifier *fakeNotifier) TimeToStudy() error {
	notifier.calls = append(notifier.calls, "study")
	return notifier.err
}

func (notifier *fakeNotifier) StudyIsOver() error {
	notifier.calls = append(notifier.calls, "over")
	return notifier.err
}

func countSamples(streamer beep.Streamer) int {
	buffer := make([][2]float64, 512)
	total := 0
	for {
		n, ok := streamer.Stream(buffer)
		total += n
		if !ok {
			return total
		}
	}
}

func TestNotifier_SendsPhaseMessages(t *testing.T) {
	sender := &fakeSender{}
	notifier := NewNotifierWithSender(sender)

	require.NoError(t, notifier.TimeToBreak())
	require.NoError(t, notifier.TimeToStudy())
	require.NoError(t, notifier.StudyIsOver())

	require.Equal(t, []Message{BreakMessage, StudyMessage, OverMessage}, sender.sent)
	require.Equal(t, "Break time!", sender.sent[0].Title)
}

func TestNotifier_WrapsSenderError(t *testing.T) {
	backendErr := errors.New("no session bus")
	notifier := NewNotifierWithSender(&fakeSender{err: backendErr})

	err := notifier.TimeToStudy()
	require.ErrorIs(t, err, backendErr)
	require.Contains(t, err.Error(), "Study time!")
}

func TestNotifier_WithoutBackend(t *testing.T) {
	require.ErrorIs(t, NewNotifierWithSender(nil).StudyIsOver(), ErrNotifierUnavailable)
	require.ErrorIs(t, appSender{}.Send(OverMessage), ErrNotifierUnavailable)
}

func TestCommandSender_ReportsExitStatus(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on POSIX true/false")
	}
	truePath, err := exec.LookPath("true")
	if err != nil {
		t.Skip("true not found")
	}
	falsePath, err := exec.LookPath("false")
	if err != nil {
		t.Skip("false not found")
	}

	var received []Message
	args := func(message Message) []string {
		received = append(received, message)
		return nil
	}

	require.NoError(t, commandSender{path: truePath, args: args}.Send(BreakMessage))
	require.Error(t, commandSender{path: falsePath, args: args}.Send(OverMessage))
	require.Equal(t, []Message{BreakMessage, OverMessage}, received)
}

func TestChime_PlaysMelodyAfterNotifying(t *testing.T) {
	next := &fakeNotifier{}
	var played []int
	chime := newChime(next, func(streamer beep.Streamer) {
		played = append(played, countSamples(streamer))
	})

	require.NoError(t, chime.TimeToBreak())
	require.NoError(t, chime.StudyIsOver())

	require.Equal(t, []string{"break", "over"}, next.calls)
	note := chimeSampleRate.N(chimeNote)
	gap := chimeSampleRate.N(chimeGap)
	require.Equal(t, []int{2*note + gap, 4*note + 3*gap}, played)
}

func TestChime_StillRingsWhenNotifierFails(t *testing.T) {
	backendErr := errors.New("toast failed")
	next := &fakeNotifier{err: backendErr}
	rang := 0
	chime := newChime(next, func(beep.Streamer) { rang++ })

	require.ErrorIs(t, chime.TimeToStudy(), backendErr)
	require.Equal(t, 1, rang)
}

func TestInstanceLock_SecondAcquireFails(t *testing.T) {
	name := "minidoro-test-" + t.Name()
	first, err := AcquireInstanceLock(name)
	require.NoError(t, err)

	_, err = AcquireInstanceLock(name)
	require.ErrorIs(t, err, ErrAlreadyRunning)

	require.NoError(t, first.Release())
	require.NoError(t, first.Release())

	again, err := AcquireInstanceLock(name)
	require.NoError(t, err)
	require.NoError(t, again.Release())
}

func TestInstanceLock_NilRelease(t *testing.T) {
	var lock *InstanceLock
	require.NoError(t, lock.Release())
}

func TestLockAddress_IsStablePerName(t *testing.T) {
	address := lockAddress("Minidoro")
	require.Equal(t, address, lockAddress("Minidoro"))

	_, port, err := net.SplitHostPort(address)
	require.NoError(t, err)
	value, err := strconv.Atoi(port)
	require.NoError(t, err)
	require.GreaterOrEqual(t, value, lockMinPort)
	require.LessOrEqual(t, value, lockMaxPort)
}
