// Profiling:
// go build ./profile/tick
// ./tick -mode=cpu -config=config.json
// go tool pprof -http=":8000" ./tick cpu.pprof

package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/pkg/profile"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

func main() {
	var (
		mode       = flag.String("mode", "cpu", "profile mode: cpu or mem")
		configPath = flag.String("config", "", "optional JSON config file")
		population = flag.Int("population", 20000, "initial live cells")
		ticks      = flag.Int("ticks", 200, "generations to compute")
		seed       = flag.Int64("seed", 1, "random seed")
	)
	flag.Parse()

	config := utils.DefaultConfig()
	if *configPath != "" {
		loaded, err := utils.LoadConfig(*configPath)
		if err != nil {
			fmt.Printf("Using default configuration: %v\n", err)
		} else {
			config = loaded
		}
	}

	var p interface{ Stop() }
	switch *mode {
	case "mem":
		p = profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	default:
		p = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	}
	defer p.Stop()

	run(config, *population, *ticks, *seed)
}

func run(config utils.Config, population, ticks int, seed int64) {
	var (
		rng    = rand.New(rand.NewSource(seed))
		spread = int64(population/2 + 10)
		cells  = make([]model.Cell, population)
		pool   *model.CellPool
	)
	for i := range cells {
		cells[i] = model.Cell{X: rng.Int63n(spread), Y: rng.Int63n(spread)}
	}
	if config.UseMemoryPool {
		pool = model.NewCellPool()
	}

	live := model.NewLiveSet(cells...)
	start := time.Now()
	for range ticks {
		live = model.NextGeneration(live, config, pool)
	}
	elapsed := time.Since(start)

	fmt.Printf("Generations: %d | Living: %d | Bounding box: %d cells\n",
		ticks, live.Len(), live.Bounds().Area())
	fmt.Printf("Performance: %.1f gen/sec | Runtime: %.1fs\n",
		float64(ticks)/elapsed.Seconds(), elapsed.Seconds())
}
