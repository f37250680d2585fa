/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/montecarlo-project/gomc/experiment"
)

func main() {
	defaults := experiment.DefaultConfig()

	app := &cli.App{
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run the importance-sampling comparison across proposal scales",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "samples",
						Aliases: []string{"n"},
						Value:   defaults.Samples,
						Usage:   "number of samples drawn per configuration",
					},
					&cli.Uint64Flag{
						Name:    "seed",
						Aliases: []string{"s"},
						Value:   defaults.Seed,
						Usage:   "seed for the random source",
					},
					&cli.StringFlag{
						Name:  "scales",
						Value: formatScales(defaults.Scales),
						Usage: "comma-separated proposal standard deviations",
					},
					&cli.BoolFlag{
						Name:    "table",
						Aliases: []string{"t"},
						Usage:   "also render the results as a table",
					},
				},
				Action: func(c *cli.Context) error {
					if c.NArg() > 0 {
						return fmt.Errorf("unexpected command line arguments: %q", c.Args().Slice())
					}

					scales, err := parseScales(c.String("scales"))
					if err != nil {
						return err
					}

					cfg := experiment.Config{
						Scales:  scales,
						Samples: c.Int("samples"),
						Seed:    c.Uint64("seed"),
					}

					start := time.Now()
					records, err := experiment.Run(cfg)
					if err != nil {
						return err
					}
					log.Printf("ran %d configurations in %s", len(records), time.Since(start))

					if err := experiment.WriteSummary(os.Stdout, records); err != nil {
						return err
					}
					if c.Bool("table") {
						experiment.WriteTable(os.Stdout, records)
					}
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func parseScales(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	scales := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid scale %q: %v", p, err)
		}
		scales = append(scales, v)
	}
	return scales, nil
}

func formatScales(scales []float64) string {
	parts := make([]string, len(scales))
	for i, s := range scales {
		parts[i] = strconv.FormatFloat(s, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}
