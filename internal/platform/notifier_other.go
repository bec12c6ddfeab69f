//go:build !linux && !darwin && !windows

package platform

import "fyne.io/fyne/v2"

func newSender(app fyne.App) Sender {
	return appSender{app: app}
}
