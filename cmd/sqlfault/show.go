package main

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/ianaindex"

	"github.com/jmgilman/go/sqlfault/errors"
	"github.com/jmgilman/go/sqlfault/payload"
	"github.com/jmgilman/go/sqlfault/store"
)

// ShowCmd implements the 'show' command.
type ShowCmd struct {
	ID      string `arg:"" help:"Payload ID"`
	DB      string `help:"Path to the payload database" required:"" type:"path" env:"SQLFAULT_DB"`
	Charset string `help:"IANA name of the charset the payload was written in" default:"UTF-8"`
}

// Run executes the show command.
func (cmd *ShowCmd) Run(g *Global) error {
	ctx := context.Background()

	charset, err := ianaindex.IANA.Encoding(cmd.Charset)
	if err != nil || charset == nil {
		return errors.WithContext(
			errors.Newf(errors.CodeInvalidInput, "unsupported charset %q", cmd.Charset),
			"charset", cmd.Charset,
		)
	}

	s, err := store.Open(ctx, cmd.DB, store.WithMustExist(), store.WithLogger(g.Logger))
	if err != nil {
		return err
	}
	defer s.Close()

	p, err := s.Get(ctx, cmd.ID)
	if err != nil {
		return err
	}

	text, _, err := payload.NewRecorder(payload.WithCharset(charset), payload.WithLogger(g.Logger)).Decode(p)
	if err != nil {
		return err
	}

	fmt.Fprintf(g.Out, "# %s (%s)\n", p.ID, p.Name)
	fmt.Fprint(g.Out, text)
	if !strings.HasSuffix(text, "\n") {
		fmt.Fprintln(g.Out)
	}
	return nil
}
