package internal

import (
	"fmt"
	"io"
	"os"
)

// IsPipedInput returns true if there is no input device, which means the user **may** be providing input via a pipe.
func IsPipedInput() (bool, error) {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false, fmt.Errorf("unable to determine if there is piped input: %w", err)
	}

	return fi.Mode()&os.ModeCharDevice == 0, nil
}

// OpenInput opens the named file, or stdin when the name is "-" or empty and input is being piped in.
func OpenInput(name string) (io.ReadCloser, error) {
	if name != "" && name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("unable to open %q: %w", name, err)
		}
		return f, nil
	}

	piped, err := IsPipedInput()
	if err != nil {
		return nil, err
	}
	if !piped {
		return nil, fmt.Errorf("no input file given and nothing is piped to stdin")
	}
	return io.NopCloser(os.Stdin), nil
}
