package generate

import (
	"context"
	"errors"
	"fmt"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"cardgen/common"
	"cardgen/deck"
	"cardgen/state"
)

// Validate is the validate subcommand: parse and check a deck file without
// producing any output.
func Validate(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	if cmd.NArg() == 0 {
		return errors.New("no deck file specified")
	}
	src := cmd.Args().Get(0)

	d, err := deck.Load(src)
	if err != nil {
		return err
	}

	monsters, items := 0, 0
	for _, e := range d.Entities {
		if e.Kind() == common.EntityKindItem {
			items++
		} else {
			monsters++
		}
	}
	env.Log.Info("Deck is valid",
		zap.String("deck", d.Name),
		zap.Int("monsters", monsters),
		zap.Int("items", items))
	fmt.Fprintf(os.Stdout, "%s: %d entities (%d monsters, %d items)\n", d.Name, len(d.Entities), monsters, items)
	return nil
}

// List is the list subcommand: print entity titles in natural order.
func List(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() == 0 {
		return errors.New("no deck file specified")
	}

	d, err := deck.Load(cmd.Args().Get(0))
	if err != nil {
		return err
	}
	for _, title := range d.SortedTitles() {
		fmt.Fprintln(os.Stdout, title)
	}
	return nil
}
