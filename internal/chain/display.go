package chain

import (
	"fmt"
	"io"

	"github.com/sirkon/errors"
)

// DisplayOption настройка вывода Display.
type DisplayOption func(o *displayOptions)

// DisplaySeparator задаёт разделитель значений. По умолчанию ", ".
func DisplaySeparator(sep string) DisplayOption {
	return func(o *displayOptions) {
		o.separator = sep
	}
}

// DisplayBrackets задаёт обрамление вывода. По умолчанию оно отсутствует.
func DisplayBrackets(opening, closing string) DisplayOption {
	return func(o *displayOptions) {
		o.open = opening
		o.close = closing
	}
}

type displayOptions struct {
	separator string
	open      string
	close     string
}

// Display вывод значений цепочки начиная с head в w в прямом порядке.
func Display[T any](w io.Writer, head *Node[T], opts ...DisplayOption) error {
	o := displayOptions{
		separator: ", ",
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.open != "" {
		if _, err := io.WriteString(w, o.open); err != nil {
			return errors.Wrap(err, "write opening bracket")
		}
	}

	var i int
	for n := head; n != nil; n = n.next {
		if i > 0 && o.separator != "" {
			if _, err := io.WriteString(w, o.separator); err != nil {
				return errors.Wrap(err, "write separator").Int("index", i)
			}
		}

		if _, err := fmt.Fprint(w, n.Data); err != nil {
			return errors.Wrap(err, "write value").Int("index", i)
		}
		i++
	}

	if o.close != "" {
		if _, err := io.WriteString(w, o.close); err != nil {
			return errors.Wrap(err, "write closing bracket").Int("length", i)
		}
	}

	return nil
}
