package platform

import (
	"os/exec"

	"fyne.io/fyne/v2"
)

const appID = "Minidoro"

func newSender(app fyne.App) Sender {
	path, err := exec.LookPath("notify-send")
	if err != nil {
		return appSender{app: app}
	}
	return commandSender{path: path, args: notifySendArgs}
}

func notifySendArgs(message Message) []string {
	return []string{"--app-name=" + appID, "--urgency=normal", message.Title, message.Body}
}
