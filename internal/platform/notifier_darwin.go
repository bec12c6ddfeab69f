package platform

import (
	"fmt"
	"os/exec"
	"strconv"

	"fyne.io/fyne/v2"
)

func newSender(app fyne.App) Sender {
	path, err := exec.LookPath("osascript")
	if err != nil {
		return appSender{app: app}
	}
	return commandSender{path: path, args: osascriptArgs}
}

func osascriptArgs(message Message) []string {
	script := fmt.Sprintf("display notification %s with title %s sound name %s",
		strconv.Quote(message.Body), strconv.Quote(message.Title), strconv.Quote("Glass"))
	return []string{"-e", script}
}
