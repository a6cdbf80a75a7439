package report

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// PrintRows writes rows as an aligned table, for scripts and ad-hoc use.
func PrintRows(w io.Writer, rows []*ReportRow) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "period\tnew_users\tactivated_users\torders\titems\titems_amount\tplacements\tplacements_amount\ttotal_amount")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%s\t%d\t%s\t%s\n",
			r.Period,
			r.NewUsers,
			r.ActivatedUsers,
			r.OrdersCount,
			r.ItemCount,
			r.ItemAmount.StringFixed(2),
			r.PlacementCount,
			r.PlacementAmount.StringFixed(2),
			r.TotalAmount().StringFixed(2),
		)
	}
	tw.Flush()
}
