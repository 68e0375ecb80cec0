package logout

import (
	"io"
	"os"

	"github.com/trickstertwo/xlog"
)

// Register this sink as the default adapter for xlog.Default()/xlog.New(),
// so a side import is enough to get text lines on stdout.
func init() {
	xlog.RegisterDefaultAdapterFactory(func(w io.Writer) xlog.Adapter {
		if w == nil {
			w = os.Stdout
		}
		return New(w, Options{})
	})
}
