package main

import (
	"encoding/json"

	"github.com/jmgilman/go/sqlfault/classify"
	"github.com/jmgilman/go/sqlfault/errors"
	"github.com/jmgilman/go/sqlfault/sqlerr"
)

// ClassifyCmd implements the 'classify' command.
type ClassifyCmd struct {
	Message string `arg:"" help:"Database error message"`
	State   string `help:"SQLSTATE reported with the message"`
	Code    int    `help:"Vendor error code reported with the message"`
	Dialect string `help:"Dialect reported with the message"`
}

// Run executes the classify command. It prints the wrapped fault as JSON.
func (cmd *ClassifyCmd) Run(g *Global) error {
	failure := &sqlerr.Error{
		Code:    cmd.Code,
		State:   cmd.State,
		Message: cmd.Message,
		Dialect: cmd.Dialect,
	}

	c := classify.New(classify.WithLogger(g.Logger))
	enc := json.NewEncoder(g.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(errors.ToJSON(c.Wrap(failure)))
}
