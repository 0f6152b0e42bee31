// Command devdetect is a command-line front end for the detection
// engine: reads a user agent from arguments or standard input and
// writes its Detection as a single line of JSON, grounded on
// original_source/src/main.rs translated into cobra idiom.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/simplecastapps/go-device-detector/internal/detector"
	"github.com/simplecastapps/go-device-detector/internal/detector/hints"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		interactive bool
		rawHeaders  []string
		corpusDir   string
	)

	cmd := &cobra.Command{
		Use:   "devdetect [user-agent]",
		Short: "Identify the client, OS, and device behind a User-Agent string",
		Long: `devdetect parses a User-Agent string (and, optionally, Client Hints
headers) and prints the resulting Detection as JSON.

Run with -i/--interactive to read one user agent per line from standard
input instead, writing one JSON line per input line.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			headers, err := parseHeaderFlags(rawHeaders)
			if err != nil {
				return err
			}

			det, err := detector.New(detector.Config{RuleCorpusDir: corpusDir})
			if err != nil {
				return fmt.Errorf("devdetect: initializing detector: %w", err)
			}

			if interactive {
				return runInteractive(cmd, det)
			}

			if len(args) == 0 {
				return fmt.Errorf("devdetect: a user agent argument is required unless -i/--interactive is set")
			}
			return printDetection(cmd.OutOrStdout(), det, args[0], headers)
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "read one user agent per line from standard input")
	cmd.Flags().StringArrayVarP(&rawHeaders, "header", "H", nil, "additional header as NAME: VALUE, repeatable")
	cmd.Flags().StringVar(&corpusDir, "rule-corpus-dir", "", "override directory for the embedded rule corpus")

	return cmd
}

func runInteractive(cmd *cobra.Command, det *detector.Detector) error {
	fmt.Fprintln(cmd.ErrOrStderr(), "reading user agents from standard input, one per line")
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		ua := scanner.Text()
		if ua == "" {
			continue
		}
		if err := printDetection(cmd.OutOrStdout(), det, ua, nil); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func printDetection(w io.Writer, det *detector.Detector, ua string, headers []hints.Header) error {
	detection := det.Detect(ua, headers...)
	data, err := json.Marshal(detection)
	if err != nil {
		return fmt.Errorf("devdetect: encoding detection: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func parseHeaderFlags(raw []string) ([]hints.Header, error) {
	headers := make([]hints.Header, 0, len(raw))
	for _, h := range raw {
		name, value, ok := strings.Cut(h, ":")
		if !ok {
			return nil, fmt.Errorf("devdetect: malformed header %q, expected NAME: VALUE", h)
		}
		headers = append(headers, hints.Header{Name: strings.TrimSpace(name), Value: strings.TrimSpace(value)})
	}
	return headers, nil
}
