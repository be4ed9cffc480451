package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"nlu-lab/domain"
	"nlu-lab/observability"
	"nlu-lab/services"
	"strings"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

type replier interface {
	Reply(line string) (domain.Reply, error)
}

var botPrompt = color.New(color.BgBlack, color.FgGreen).Render("bot>")

// converse answers every line until quit, end of input or cancellation.
// Lines are read in their own goroutine so that cancellation is honoured
// while waiting for input.
func converse(ctx context.Context, in io.Reader, out io.Writer, service replier) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	lines, errc := readLines(ctx, in)

	fmt.Fprintln(out, "Say something!")
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-errc:
					return err
				default:
					return nil
				}
			}
			if services.IsQuit(line) {
				return nil
			}
			if strings.TrimSpace(line) == "" {
				continue
			}
			reply, err := service.Reply(line)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s %s\n", botPrompt, services.Format(reply))
		}
	}
}

// readLines closes lines at end of input, after sending the scanner error.
// A read blocked on the underlying reader outlives cancellation until it returns.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		errc <- scanner.Err()
	}()
	return lines, errc
}

func printReport(out io.Writer, evaluation domain.Evaluation, stats observability.TrainingStats) {
	fmt.Fprintf(out, "Trained! I have %d errors of %d utterances.\n", evaluation.Bad, evaluation.Total())
	fmt.Fprintf(out, "My accuracy is %.2f\n", evaluation.Accuracy())

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Metric", "Value"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.Append([]string{"Examples", fmt.Sprint(stats.Examples)})
	table.Append([]string{"Good", fmt.Sprint(evaluation.Good)})
	table.Append([]string{"Bad", fmt.Sprint(evaluation.Bad)})
	table.Append([]string{"Iterations", fmt.Sprint(stats.Iterations)})
	table.Append([]string{"Error", fmt.Sprintf("%.3g", stats.Error)})
	table.Append([]string{"Duration", stats.Duration.String()})
	table.Append([]string{"RSS (MB)", fmt.Sprint(stats.RssMb)})
	table.Render()
}
