package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/tri-protocol-cli/internal/domain"
)

const (
	menuText = `
Digite o numero da operacao que deseja executar:
	1. Soma
	2. Echo
	3. Timestamp
	4. Status
	5. Historico
	6. Info
	7. Parar a execucao`
	menuExit = 7
)

func newMenuCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Interactive menu running each operation through all protocols",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := opts.wire(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			out := cmd.OutOrStdout()
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				_, _ = fmt.Fprintln(out, menuText)
				answer, ok := prompt(scanner, out, "Resposta: ")
				if !ok {
					return scanner.Err()
				}

				choice, err := strconv.Atoi(answer)
				if err == nil && choice == menuExit {
					_, _ = fmt.Fprintln(out, "Parando a execucao.")
					return nil
				}
				code := domain.OperationCode(choice)
				if err != nil || !code.Valid() {
					_, _ = fmt.Fprintf(out, "Opcao invalida: %q\n", answer)
					continue
				}

				var param *string
				switch code {
				case domain.OperationSum:
					if param, ok = promptParam(scanner, out, "Digite os numeros separados por virgulas: "); !ok {
						return scanner.Err()
					}
				case domain.OperationEcho:
					if param, ok = promptParam(scanner, out, "Digite a mensagem para o eco: "); !ok {
						return scanner.Err()
					}
				}

				if _, err := app.runAllWithProgress(cmd.Context(), cmd.ErrOrStderr(), domain.Protocols(), code, param); err != nil {
					return err
				}
			}
		},
	}
}

// prompt prints label and reads one trimmed line. ok is false at end of input.
func prompt(scanner *bufio.Scanner, out io.Writer, label string) (string, bool) {
	_, _ = fmt.Fprint(out, label)
	if !scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}

func promptParam(scanner *bufio.Scanner, out io.Writer, label string) (*string, bool) {
	line, ok := prompt(scanner, out, label)
	if !ok {
		return nil, false
	}
	return &line, true
}
