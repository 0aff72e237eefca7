package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/arloliu/rzero"
	"github.com/arloliu/rzero/config"
	"github.com/arloliu/rzero/daterange"
)

// dateFlags are the --start/--end/--window flags shared by estimate and range.
type dateFlags struct {
	start  string
	end    string
	window int
}

func (d *dateFlags) register(c *cobra.Command) {
	c.Flags().StringVar(&d.start, "start", "", "first date to estimate, dd-mm-yyyy")
	c.Flags().StringVar(&d.end, "end", "", "last date to estimate, dd-mm-yyyy")
	c.Flags().IntVar(&d.window, "window", config.DefaultWindow, "number of days per regression window")
}

// request parses the date flags. Start is parsed before end so a malformed
// start is reported first.
func (d *dateFlags) request(input string) (rzero.Request, error) {
	start, err := daterange.ParseOptional(d.start, daterange.CLILayout)
	if err != nil {
		return rzero.Request{}, err
	}
	end, err := daterange.ParseOptional(d.end, daterange.CLILayout)
	if err != nil {
		return rzero.Request{}, err
	}

	return rzero.Request{Input: input, Start: start, End: end}, nil
}

func (d *dateFlags) overrides(c *cobra.Command) []config.Option {
	var opts []config.Option
	if c.Flags().Changed("window") {
		opts = append(opts, config.WithWindow(d.window))
	}

	return opts
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}

	return t.Format(daterange.CLILayout)
}
