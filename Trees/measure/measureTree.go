package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strconv"

	"github.com/carlmjohnson/versioninfo"
	"github.com/dustin/go-humanize"
	"github.com/g-m-twostay/go-splay/Sets"
	"github.com/g-m-twostay/go-splay/Trees/check"
	"github.com/gravitational/trace"
	_ "github.com/joho/godotenv/autoload"
	"github.com/olekukonko/tablewriter"
	cli "github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, trace.UserMessage(err))
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "measure",
		Usage:   "time and check ordered set implementations",
		Version: versioninfo.Short(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "debug, info, warn or error",
				Value:   "info",
				EnvVars: []string{"SPLAY_LOG_LEVEL"},
			},
			&cli.Int64Flag{
				Name:    "seed",
				Usage:   "seed of the key generator",
				Value:   0,
				EnvVars: []string{"SPLAY_SEED"},
			},
			&cli.StringSliceFlag{
				Name:    "impl",
				Usage:   "implementations to run, all of them when unset",
				EnvVars: []string{"SPLAY_IMPL"},
			},
		},
		Commands: []*cli.Command{benchCmd, checkCmd},
	}
}

func newLogger(cctx *cli.Context) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cctx.String("log-level"))); err != nil {
		return nil, trace.BadParameter("unknown log level %q", cctx.String("log-level"))
	}
	return slog.New(slog.NewTextHandler(cctx.App.ErrWriter, &slog.HandlerOptions{Level: level})), nil
}

var benchCmd = &cli.Command{
	Name:  "bench",
	Usage: "time batches of inserts and searches on one instance per implementation",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "n",
			Usage:   "operations of each kind per batch",
			Value:   100000,
			EnvVars: []string{"SPLAY_BATCH_SIZE"},
		},
		&cli.IntFlag{
			Name:    "batches",
			Value:   10,
			EnvVars: []string{"SPLAY_BATCHES"},
		},
	},
	Action: func(cctx *cli.Context) error {
		log, err := newLogger(cctx)
		if err != nil {
			return err
		}
		n, batches := cctx.Int("n"), cctx.Int("batches")
		if n <= 0 || batches <= 0 {
			return trace.BadParameter("n and batches must be positive, got %d and %d", n, batches)
		}
		cs, err := pick(cctx.StringSlice("impl"), false)
		if err != nil {
			return err
		}
		bs := makeBatches(rand.New(rand.NewSource(cctx.Int64("seed"))), batches, n)
		log.Info("starting", "impls", len(cs), "batches", batches, "n", n)

		table := tablewriter.NewWriter(cctx.App.Writer)
		table.SetHeader([]string{"impl", "keys", "insert/op", "±", "search/op", "±", "hits"})
		for _, c := range cs {
			res := timeBatches(log, c, bs)
			im, is := perOp(res.insert, n)
			sm, ss := perOp(res.search, n)
			log.Info("timed", "impl", c.name, "insert", im, "search", sm)
			table.Append([]string{
				c.name,
				humanize.Comma(int64(n * batches)),
				im.String(), is.String(),
				sm.String(), ss.String(),
				humanize.Comma(int64(res.hits)),
			})
		}
		table.Render()
		return nil
	},
}

var checkCmd = &cli.Command{
	Name:  "check",
	Usage: "run a random operation script against the oracles",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "ops",
			Value:   200000,
			EnvVars: []string{"SPLAY_CHECK_OPS"},
		},
		&cli.IntFlag{
			Name:    "keys",
			Usage:   "keys are drawn from [0, keys)",
			Value:   10000,
			EnvVars: []string{"SPLAY_CHECK_KEYS"},
		},
	},
	Action: func(cctx *cli.Context) error {
		log, err := newLogger(cctx)
		if err != nil {
			return err
		}
		cs, err := pick(cctx.StringSlice("impl"), true)
		if err != nil {
			return err
		}
		ops, err := check.Script(rand.New(rand.NewSource(cctx.Int64("seed"))), cctx.Int("ops"), cctx.Int("keys"), check.DefaultMix)
		if err != nil {
			return trace.Wrap(err)
		}

		table := tablewriter.NewWriter(cctx.App.Writer)
		table.SetHeader([]string{"impl", "ops", "inserted", "hits", "misses", "deleted", "final"})
		for _, c := range cs {
			rep, err := check.Run(c.make(0).(Sets.Set[int]), ops)
			if err != nil {
				log.Error("check failed", "impl", c.name, "ops", rep.Ops, "err", err)
				return trace.Wrap(err, "%v", c.name)
			}
			log.Info("checked", "impl", c.name, "ops", rep.Ops)
			table.Append([]string{
				c.name,
				humanize.Comma(int64(rep.Ops)),
				strconv.Itoa(rep.Inserted),
				strconv.Itoa(rep.Hits),
				strconv.Itoa(rep.Misses),
				strconv.Itoa(rep.Deleted),
				strconv.Itoa(len(rep.Final)),
			})
		}
		table.Render()
		return nil
	},
}
