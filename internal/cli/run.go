package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/addressbook/internal/session"
	"github.com/mesh-intelligence/addressbook/pkg/types"
)

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run [script]",
		Short: "Run address book commands from a script",
		Long: `Run executes one command per line against a fresh, in-memory address book.
With no argument, or "-", the script is read from standard input.

Commands:
  add <name> [phone...]          create or replace a record
  add-phone <name> <phone>       add a phone to a record
  remove-phone <name> <phone>    remove a phone from a record
  edit-phone <name> <old> <new>  replace a phone, keeping its position
  find-phone <name> <phone>      look up a phone on a record
  find <name>                    show a record
  delete <name>                  delete a record
  all                            show every record

Example:
  echo "add John 1234567890" | addressbook run`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 || args[0] == "-" {
				return a.runScript(cmd, cmd.InOrStdin())
			}

			f, err := os.Open(args[0])
			if err != nil {
				return sysErr(fmt.Errorf("open script: %w", err))
			}
			defer f.Close()
			return a.runScript(cmd, f)
		},
	}
}

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in demonstration script",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runScript(cmd, strings.NewReader(session.Demo))
		},
	}
}

// runScript executes r against a new address book and prints each result.
func (a *app) runScript(cmd *cobra.Command, r io.Reader) error {
	book := types.NewAddressBook()
	s := session.New(book, a.log)
	p := newPrinter(cmd.OutOrStdout(), a.cfg)

	err := s.Run(r, p.print)
	if cerr := p.close(); err == nil {
		err = cerr
	}
	a.log.Debugw("script finished", "records", book.Len(), "error", err)
	return err
}
