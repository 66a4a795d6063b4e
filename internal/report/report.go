// Package report renders robustness experiment results as HTML charts.
package report

import (
	"fmt"
	"io"
	"slices"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/yyyoichi/pairmark/internal/store"
)

// BERChart writes a line chart with one series per threshold: average bit
// error rate per attack on the left axis, match rate on the right.
func BERChart(w io.Writer, stats []*store.AttackStats) error {
	var (
		attacks    []string
		thresholds []float64
		byKey      = make(map[string]*store.AttackStats)
	)
	for _, s := range stats {
		if !slices.Contains(attacks, s.Attack) {
			attacks = append(attacks, s.Attack)
		}
		if !slices.Contains(thresholds, s.Threshold) {
			thresholds = append(thresholds, s.Threshold)
		}
		byKey[key(s.Attack, s.Threshold)] = s
	}
	slices.Sort(thresholds)

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Bit error rate by attack",
			Subtitle: "Average over all images, lower is better",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Attack",
			Type: "category",
			Data: attacks,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "BER (%)",
			Type: "value",
			Min:  0,
			AxisLabel: &opts.AxisLabel{
				Formatter: "{value}%",
			},
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
			Top:  "5%",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
	)
	line.SetXAxis(attacks)

	for _, t := range thresholds {
		var data []opts.LineData
		for _, a := range attacks {
			s, ok := byKey[key(a, t)]
			if !ok {
				data = append(data, opts.LineData{Value: nil})
				continue
			}
			data = append(data, opts.LineData{
				Value: s.AvgBER * 100,
				Name:  fmt.Sprintf("%s T=%g: BER=%.2f%% (n=%d)", a, t, s.AvgBER*100, s.TotalTests),
			})
		}
		line.AddSeries(fmt.Sprintf("BER T=%g", t), data,
			charts.WithLineChartOpts(opts.LineChart{
				Smooth: opts.Bool(false),
			}),
			charts.WithLabelOpts(opts.Label{
				Show: opts.Bool(false),
			}),
		)
	}

	line.ExtendYAxis(opts.YAxis{
		Name: "Match rate (%)",
		Type: "value",
		Min:  0,
		Max:  100,
		AxisLabel: &opts.AxisLabel{
			Formatter: "{value}%",
		},
	})
	for _, t := range thresholds {
		var data []opts.LineData
		for _, a := range attacks {
			s, ok := byKey[key(a, t)]
			if !ok {
				data = append(data, opts.LineData{Value: nil})
				continue
			}
			data = append(data, opts.LineData{Value: s.MatchRate * 100})
		}
		line.AddSeries(fmt.Sprintf("Match T=%g", t), data,
			charts.WithLineChartOpts(opts.LineChart{
				YAxisIndex: 1,
			}),
			charts.WithLabelOpts(opts.Label{
				Show: opts.Bool(false),
			}),
		)
	}

	return line.Render(w)
}

func key(attack string, threshold float64) string {
	return fmt.Sprintf("%s|%g", attack, threshold)
}
