package command

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/stevemurr/kvfile/codec"
	"github.com/stevemurr/kvfile/kv"
)

// Commands returns the kvfile subcommands in display order.
func Commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:   "init",
			Usage:  "Create an empty store file, replacing any existing contents",
			Action: runInit,
		},
		{
			Name:      "add",
			Usage:     "Insert an entry, replacing the value if the key exists",
			ArgsUsage: "KEY VALUE",
			Action:    runAdd,
		},
		{
			Name:      "remove",
			Usage:     "Remove an entry by key",
			ArgsUsage: "KEY",
			Action:    runRemove,
		},
		{
			Name:   "list",
			Usage:  "Print every entry in the store",
			Action: runList,
		},
	}
}

// ---------- helpers ----------

// storeCodec resolves the store path and codec for one invocation. An
// explicit --format wins; otherwise the format is detected from the file
// extension.
func storeCodec(ctx *cli.Context) (codec.Codec, string, error) {
	path := ctx.String("file")
	if path == "" {
		return nil, "", fmt.Errorf("no store file given (use --file, KVFILE_PATH or a config file)")
	}
	if format := ctx.String("format"); format != "" {
		c, err := codec.New(format)
		if err != nil {
			return nil, "", err
		}
		return c, path, nil
	}
	c, err := codec.Detect(path)
	if err != nil {
		return nil, "", err
	}
	log.Debug().Str("path", path).Str("format", c.String()).Msg("detected store format")
	return c, path, nil
}

// ---------- commands ----------

func runInit(ctx *cli.Context) error {
	c, path, err := storeCodec(ctx)
	if err != nil {
		return err
	}
	if err := c.Encode(kv.New(), path); err != nil {
		return err
	}
	log.Debug().Str("path", path).Str("format", c.String()).Msg("store initialized")
	fmt.Fprintf(ctx.App.Writer, "Initialized empty %s store at %s\n", c, path)
	return nil
}

func runAdd(ctx *cli.Context) error {
	if ctx.NArg() != 2 {
		cli.ShowSubcommandHelp(ctx)
		return fmt.Errorf("add expects exactly two arguments: KEY VALUE")
	}
	key, value := ctx.Args().Get(0), ctx.Args().Get(1)

	c, path, err := storeCodec(ctx)
	if err != nil {
		return err
	}
	st, err := c.Decode(path)
	if err != nil {
		return err
	}
	st.Set(key, value)
	if err := c.Encode(st, path); err != nil {
		return err
	}
	log.Debug().Str("key", key).Int("entries", st.Len()).Msg("entry stored")
	fmt.Fprintf(ctx.App.Writer, "Added %q = %q\n", key, value)
	return nil
}

func runRemove(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		cli.ShowSubcommandHelp(ctx)
		return fmt.Errorf("remove expects exactly one argument: KEY")
	}
	key := ctx.Args().Get(0)

	c, path, err := storeCodec(ctx)
	if err != nil {
		return err
	}
	st, err := c.Decode(path)
	if err != nil {
		return err
	}
	if err := st.Delete(key); err != nil {
		return err
	}
	if err := c.Encode(st, path); err != nil {
		return err
	}
	log.Debug().Str("key", key).Int("entries", st.Len()).Msg("entry removed")
	fmt.Fprintf(ctx.App.Writer, "Removed %q\n", key)
	return nil
}

func runList(ctx *cli.Context) error {
	c, path, err := storeCodec(ctx)
	if err != nil {
		return err
	}
	st, err := c.Decode(path)
	if err != nil {
		return err
	}

	entries := st.Entries()
	fmt.Fprintf(ctx.App.Writer, "Store contains %d entries\n", len(entries))
	width := 0
	for _, e := range entries {
		if len(e.Key) > width {
			width = len(e.Key)
		}
	}
	for _, e := range entries {
		fmt.Fprintf(ctx.App.Writer, "  %-*s = %s\n", width, e.Key, e.Value)
	}
	return nil
}
