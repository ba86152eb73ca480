//go:build unix

package host

import (
	"os"
	"os/signal"
	"syscall"
)

func (t *Terminal) watchSignals() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGWINCH, syscall.SIGCONT)

	go func() {
		defer signal.Stop(ch)
		for {
			select {
			case sig := <-ch:
				switch sig {
				case syscall.SIGWINCH:
					t.ls.fire(Resize)
				case syscall.SIGCONT:
					t.ls.fire(VisibilityChange)
				}
			case <-t.stop:
				return
			}
		}
	}()
}
