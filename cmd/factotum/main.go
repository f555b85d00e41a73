// Command factotum runs the dispatch demo: two differently shaped workers
// erased behind uniform Hands, driven through Offices and a Roster, with
// recoverable mismatches surfaced and latency metrics summarized at the end.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/worklore/factotum"
	"github.com/worklore/factotum/metrics"
	"github.com/worklore/factotum/staff"
)

var stdoutIsTTY = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

func heading(s string) {
	if stdoutIsTTY {
		fmt.Printf("\x1b[1;36m== %s ==\x1b[0m\n", s)
		return
	}
	fmt.Printf("== %s ==\n", s)
}

func main() {
	confPath := flag.String("config", "", "optional YAML config file, watched for changes")
	flag.Parse()

	err := loadConfig(*confPath, func(c Config) {
		log.Printf("config reloaded: rounds=%d interval=%s metrics=%t",
			c.Demo.Rounds, c.Demo.Interval, c.Demo.Metrics)
	})
	if err != nil {
		log.Fatalf("load config %s: %v", *confPath, err)
	}

	rec, err := metrics.NewRecorder()
	if err != nil {
		log.Fatalf("metrics recorder: %v", err)
	}

	roster := factotum.NewRoster(
		factotum.WithRecorder(rec),
		factotum.WithObserver(func(ev *factotum.Event) {
			if ev.Level >= factotum.LevelError {
				log.Printf("dispatch: %v", ev)
			}
		}),
	)

	// Alice goes through the reflective constructor, Peter through the typed
	// one. Past this point the two are indistinguishable.
	alice := factotum.Must(staff.NewCook("Alice"))
	peter := factotum.Bind3(staff.NewProgrammer("Peter"), staff.Programmer.Work)

	for _, h := range []*factotum.Hand{alice, peter} {
		if err := roster.Add(h); err != nil {
			log.Fatalf("roster add %s: %v", h.Name(), err)
		}
	}

	for round := 1; round <= conf.Demo.Rounds; round++ {
		heading(fmt.Sprintf("round %d", round))

		// The offices own clones, so the roster's Hands stay untouched.
		if err := factotum.NewOffice(alice.Clone()).Work(staff.Recipe{}, staff.Ingredients("flour", "eggs", "milk")); err != nil {
			log.Printf("office %s: %v", alice.Name(), err)
		}
		if err := factotum.NewOffice(peter.Clone()).Work(staff.Monitor{}, staff.Keyboard{}, staff.Cup{}); err != nil {
			log.Printf("office %s: %v", peter.Name(), err)
		}

		// Dispatch by name, feeding the recorder.
		_ = roster.Work("Alice", staff.Recipe{}, staff.Ingredients("salt"))
		_ = roster.Work("Peter", staff.Monitor{}, staff.Keyboard{}, staff.Cup{})

		// A deliberate mismatch: recoverable, reported, nothing runs. The
		// marker still lands before extraction fails, hence the newline.
		if err := roster.Work("Alice", staff.Recipe{}, staff.Ingredients("flour")[0]); err != nil {
			fmt.Printf("\nrecovered: %v\n", err)
		}

		if conf.Demo.Interval > 0 && round < conf.Demo.Rounds {
			time.Sleep(conf.Demo.Interval)
		}
	}

	if conf.Demo.Metrics {
		heading("metrics")
		fmt.Println(rec)
	}
}
