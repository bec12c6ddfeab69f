package platform

import "fyne.io/fyne/v2"

// fyne delivers toast notifications natively on Windows.
func newSender(app fyne.App) Sender {
	return appSender{app: app}
}
