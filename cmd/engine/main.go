/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Command engine drives the search core from the command line: a one-shot
// perft counter, an evaluation report for a given position, or a timed
// search against a fen. There is no UCI loop here - this binary talks
// directly to the position/search packages, which is the whole point of
// exposing them as a library rather than hiding them behind a protocol.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/corvid-chess/corvid/internal/config"
	"github.com/corvid-chess/corvid/internal/evaluator"
	"github.com/corvid-chess/corvid/internal/logging"
	"github.com/corvid-chess/corvid/internal/movegen"
	"github.com/corvid-chess/corvid/internal/position"
	"github.com/corvid-chess/corvid/internal/search"
	"github.com/corvid-chess/corvid/internal/util"
	"github.com/corvid-chess/corvid/internal/version"
)

var out = message.NewPrinter(language.German)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "info", "standard log level\n(critical|error|warning|notice|info|debug)")
	searchLogLvl := flag.String("searchloglvl", "", "search log level\n(critical|error|warning|notice|info|debug)")
	logPath := flag.String("logpath", "../logs", "path where to write log files to")
	fen := flag.String("fen", position.StartFen, "fen for perft, eval and search")
	perft := flag.Int("perft", 0, "runs perft on the given fen up to the given depth and exits")
	report := flag.Bool("eval", false, "prints an evaluation report for the given fen and exits")
	moveTime := flag.Int("movetime", 0, "search time in milliseconds for the given fen\nif 0 no search is run")
	enableProfile := flag.Bool("profile", false, "writes a CPU profile of the run to the working directory")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	if *enableProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()

	if *logPath != "" {
		config.Settings.Log.LogPath = *logPath
	}
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	if lvl, found := config.LogLevels[*searchLogLvl]; found {
		config.SearchLogLevel = lvl
	}
	// resetting log level on the standard log - required as most packages
	// hold the standard logger as a global var initialized before main() runs.
	logging.GetLog()

	if *perft != 0 {
		var perftTest movegen.Perft
		for depth := 1; depth <= *perft; depth++ {
			perftTest.StartPerft(*fen, depth, true)
		}
		return
	}

	if *report {
		p := position.NewPosition(*fen)
		eval := evaluator.NewEvaluator()
		value := eval.Evaluate(p)
		out.Println(eval.Report())
		out.Printf("Evaluation: %s\n", value.String())
		return
	}

	if *moveTime > 0 {
		s := search.NewSearch()
		p := position.NewPosition(*fen)
		sl := search.NewSearchLimits()
		sl.TimeControl = true
		sl.MoveTime = time.Duration(*moveTime) * time.Millisecond
		s.StartSearch(*p, *sl)
		s.WaitWhileSearching()
		result := s.LastSearchResult()
		out.Println(result.String())
		out.Println("NPS : ", util.Nps(s.NodesVisited(), result.SearchTime))
		return
	}

	flag.Usage()
}

func printVersionInfo() {
	out.Printf("corvid %s\n", version.Version())
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	out.Printf("  Number of Goroutines: %d\n", runtime.NumGoroutine())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
	_ = fmt.Sprint()
}
