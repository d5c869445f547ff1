package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/spf13/pflag"
	"github.com/xaionaro-go/observability"
	"github.com/xaionaro-go/rttable"
)

// rttable-sim drives a render target table with a synthetic decode session:
// every picture touches a target surface plus a sliding window of reference
// surfaces, the way a VA-API decoder front end does between BeginPicture and
// EndPicture.
func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "syntax: %s [flags]\n", os.Args[0])
		pflag.PrintDefaults()
	}

	loggerLevel := logger.LevelWarning
	pflag.Var(&loggerLevel, "log-level", "Log level")
	netPprofAddr := pflag.String("net-pprof-listen-addr", "", "an address to listen for incoming net/pprof connections")
	capacity := pflag.Int("capacity", 16, "amount of frame indices in the table")
	numSurfaces := pflag.Int("surfaces", 32, "amount of surfaces the simulated application allocates")
	numPictures := pflag.Int("pictures", 1000, "amount of pictures to decode")
	refWindow := pflag.Int("ref-window", 4, "amount of reference surfaces each picture uses")
	seed := pflag.Int64("seed", 0, "seed of the pseudo-random surface access pattern")
	pflag.Parse()
	if pflag.NArg() != 0 {
		pflag.Usage()
		os.Exit(1)
	}

	l := logrus.Default().WithLevel(loggerLevel)
	ctx := logger.CtxWithLogger(context.Background(), l)
	logger.Default = func() logger.Logger {
		return l
	}
	defer belt.Flush(ctx)

	if *netPprofAddr != "" {
		observability.Go(ctx, func(ctx context.Context) {
			l.Error(http.ListenAndServe(*netPprofAddr, nil))
		})
	}

	r := rand.New(rand.NewSource(*seed))

	surfaces := make([]rttable.SurfaceID, *numSurfaces)
	for i := range surfaces {
		surfaces[i] = rttable.SurfaceID(0x1000 + i)
	}

	tbl := rttable.New()
	tbl.Init(ctx, *capacity)

	var succeeded, exhausted uint64
	countOutcome := func(err error) {
		switch {
		case err == nil:
			succeeded++
		case errors.As(err, &rttable.ErrNoFreeIndex{}):
			exhausted++
		default:
			l.Fatal(err)
		}
	}

	for picture := 0; picture < *numPictures; picture++ {
		tbl.BeginPicture(ctx)

		target := surfaces[r.Intn(len(surfaces))]
		countOutcome(tbl.SetCurrentSurface(ctx, target))
		countOutcome(tbl.SetCurrentReconTarget(ctx, target))

		for ref := 0; ref < *refWindow; ref++ {
			refSurface := surfaces[r.Intn(len(surfaces))]
			countOutcome(tbl.RegisterSurface(ctx, refSurface))
		}
	}

	fmt.Printf(
		"pictures: %s; successful surface registrations: %s; exhaustions: %s\n%s\n",
		humanize.Comma(int64(*numPictures)),
		humanize.Comma(int64(succeeded)),
		humanize.Comma(int64(exhausted)),
		tbl,
	)
}
