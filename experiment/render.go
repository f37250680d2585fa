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

package experiment

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// WriteSummary writes a textual summary per configuration, all
// values formatted to six decimal places.
func WriteSummary(w io.Writer, records []Record) error {
	for _, r := range records {
		_, err := fmt.Fprintf(w,
			"proposal variance %.6f\n"+
				"  true value     %.6f\n"+
				"  IS estimate    %.6f\n"+
				"  BIS estimate   %.6f\n"+
				"  variance       %.6f\n"+
				"  std error      %.6f\n",
			r.SigmaSq, TrueValue, r.Estimate, r.SelfNormalized, r.Variance, r.StdError)
		if err != nil {
			return err
		}
	}

	return nil
}

// WriteTable renders the records as a table, one row per
// configuration, preserving input order.
func WriteTable(w io.Writer, records []Record) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"sigma^2", "IS estimate", "BIS estimate", "variance", "std error"})

	for _, r := range records {
		table.Append([]string{
			formatValue(r.SigmaSq),
			formatValue(r.Estimate),
			formatValue(r.SelfNormalized),
			formatValue(r.Variance),
			formatValue(r.StdError),
		})
	}

	table.Render()
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
