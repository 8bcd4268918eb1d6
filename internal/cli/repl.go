package cli

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
)

const banner = "Ask me anything and I will fetch fresh Membit clusters (type 'exit' to quit)."

// runREPL reads questions until exit/quit, end of input, or an interrupt.
// All of those terminate normally; per-question failures are printed and
// the loop keeps going.
func (a *App) runREPL(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		fmt.Fprintln(out, "\nGoodbye!")
		os.Exit(0)
	}()

	reader := bufio.NewReader(cmd.InOrStdin())
	fmt.Fprintln(out, banner)

	for {
		fmt.Fprintln(out)
		promptColor.Fprint(out, "Question> ")

		line, readErr := reader.ReadString('\n')
		if readErr != nil && line == "" {
			fmt.Fprintln(out, "\nGoodbye!")
			return nil
		}

		query := strings.TrimSpace(line)
		if query == "" {
			continue
		}
		if strings.EqualFold(query, "exit") || strings.EqualFold(query, "quit") {
			fmt.Fprintln(out, "Goodbye!")
			return nil
		}

		if err := a.runQuery(cmd.Context(), out, query); err != nil {
			fmt.Fprintf(out, "Something went wrong: %v\n", err)
		}
	}
}
