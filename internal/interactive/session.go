// Package interactive implements the menu-driven session: encrypt, decrypt, show history, quit.
package interactive

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/term"

	"github.com/idelchi/goxor/internal/xor"
)

// InPlace is the output path answer that selects overwriting the input file.
const InPlace = "="

const banner = "================ File Encryptor ================"

// Session is an interactive menu loop reading answers from in and writing prompts to out.
type Session struct {
	in      *bufio.Reader
	out     io.Writer
	logger  hclog.Logger
	history History

	// readKey reads the key answer, hiding it when the input is a terminal.
	readKey func() (string, error)
}

// New creates a session. When in is a terminal, the key is read without echo.
func New(in io.Reader, out io.Writer, logger hclog.Logger) *Session {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	s := &Session{
		in:     bufio.NewReader(in),
		out:    out,
		logger: logger,
	}

	s.readKey = s.readLine

	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		s.readKey = func() (string, error) {
			b, err := term.ReadPassword(int(f.Fd()))
			fmt.Fprintln(s.out)

			if err != nil {
				return "", fmt.Errorf("reading key: %w", err)
			}

			return strings.TrimSpace(string(b)), nil
		}
	}

	return s
}

// History returns the attempts made so far.
func (s *Session) History() *History {
	return &s.history
}

// Run loops over the menu until the user quits or the input ends.
func (s *Session) Run() error {
	fmt.Fprintln(s.out, "Welcome to goxor.")
	fmt.Fprintln(s.out, "Note: XOR obfuscation is a learning tool and is not meant for real security.")

	for {
		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, banner)
		fmt.Fprintln(s.out, "1) Encrypt file")
		fmt.Fprintln(s.out, "2) Decrypt file")
		fmt.Fprintln(s.out, "3) Show history")
		fmt.Fprintln(s.out, "4) Quit")
		fmt.Fprintln(s.out, strings.Repeat("=", len(banner)))
		fmt.Fprint(s.out, "Enter your choice: ")

		choice, err := s.readLine()
		if err != nil {
			return endOfInput(err)
		}

		switch choice {
		case "1":
			err = s.handle(Encrypt)
		case "2":
			err = s.handle(Decrypt)
		case "3":
			s.showHistory()
		case "4":
			fmt.Fprintln(s.out, "Goodbye!")

			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please enter 1, 2, 3, or 4.")
		}

		if err != nil {
			return endOfInput(err)
		}
	}
}

// handle prompts for one file, runs the transform and records the attempt.
func (s *Session) handle(action Action) error {
	ext, verb, noun := ".enc", "encrypted", "Encryption"
	if action == Decrypt {
		ext, verb, noun = ".dec", "decrypted", "Decryption"
	}

	fmt.Fprintln(s.out)
	fmt.Fprintf(s.out, "--- %s File ---\n", action)
	fmt.Fprint(s.out, "Enter input file path: ")

	input, err := s.readLine()
	if err != nil {
		return err
	}

	fmt.Fprintf(s.out, "Enter output file path (leave blank for default %s, %q to overwrite in place): ", ext, InPlace)

	output, err := s.readLine()
	if err != nil {
		return err
	}

	switch output {
	case "":
		output = input + ext
	case InPlace:
		output = input
	}

	fmt.Fprint(s.out, "Enter key: ")

	secret, err := s.readKey()
	if err != nil {
		return err
	}

	err = s.transform(input, secret, output)
	if err != nil {
		s.logger.Debug("transform failed", "action", action, "input", input, "kind", xor.Kind(err))
		fmt.Fprintf(s.out, "%s failed: %v\n", noun, err)
	} else {
		fmt.Fprintf(s.out, "File %s successfully to '%s'.\n", verb, output)
	}

	s.history.Add(input, action, err == nil)

	return nil
}

func (s *Session) transform(input, secret, output string) error {
	key, err := xor.ParseKey(secret, xor.EncodingRaw)
	if err != nil {
		return err
	}

	return xor.ProcessFile(input, key, output)
}

// showHistory prints every attempt and a per-action summary.
func (s *Session) showHistory() {
	fmt.Fprintln(s.out)

	entries := s.history.Entries()
	if len(entries) == 0 {
		fmt.Fprintln(s.out, "No history yet. Try encrypting or decrypting a file first.")

		return
	}

	fmt.Fprintln(s.out, "--- History ---")

	for i, e := range entries {
		status := "Success"
		if !e.Success {
			status = "Failed"
		}

		fmt.Fprintf(s.out, "%d. [%s] %s -> %s\n", i+1, e.Action, e.Path, status)
	}

	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Summary this session:")
	fmt.Fprintf(s.out, "Encrypted: %d file(s)\n", s.history.Count(Encrypt))
	fmt.Fprintf(s.out, "Decrypted: %d file(s)\n", s.history.Count(Decrypt))
}

// readLine reads one answer and trims surrounding whitespace.
// A final line without a newline is still returned.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

// endOfInput treats a closed input as a normal end of the session.
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}

	return fmt.Errorf("reading input: %w", err)
}
