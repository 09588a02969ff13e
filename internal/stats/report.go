// Package stats aggregates recorded episodes into operator-facing reports.
package stats

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"gonum.org/v1/gonum/stat"

	"sapientino/internal/model"
)

// Report summarizes a set of recorded episodes.
type Report struct {
	GeneratedAtUTC string         `json:"generated_at_utc"`
	Episodes       int            `json:"episodes"`
	TotalSteps     int            `json:"total_steps"`
	MeanReward     float64        `json:"mean_reward"`
	StdReward      float64        `json:"std_reward"`
	MinReward      float64        `json:"min_reward"`
	MaxReward      float64        `json:"max_reward"`
	BeepCounts     map[string]int `json:"beep_counts"`
}

// BuildReport aggregates episode records into a Report.
func BuildReport(episodes []model.EpisodeRecord) Report {
	report := Report{
		GeneratedAtUTC: time.Now().UTC().Format(time.RFC3339),
		Episodes:       len(episodes),
		BeepCounts:     make(map[string]int),
	}
	if len(episodes) == 0 {
		return report
	}

	rewards := make([]float64, 0, len(episodes))
	for _, episode := range episodes {
		report.TotalSteps += episode.Steps
		rewards = append(rewards, episode.TotalReward)
		for color, n := range episode.BeepCounts {
			report.BeepCounts[color] += n
		}
	}

	report.MeanReward = stat.Mean(rewards, nil)
	if len(rewards) > 1 {
		report.StdReward = stat.StdDev(rewards, nil)
	}
	report.MinReward = rewards[0]
	report.MaxReward = rewards[0]
	for _, reward := range rewards[1:] {
		if reward < report.MinReward {
			report.MinReward = reward
		}
		if reward > report.MaxReward {
			report.MaxReward = reward
		}
	}
	return report
}

// Render formats the report as human-readable lines.
func (r Report) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "episodes:    %s\n", humanize.Comma(int64(r.Episodes)))
	fmt.Fprintf(&b, "total steps: %s\n", humanize.Comma(int64(r.TotalSteps)))
	fmt.Fprintf(&b, "reward:      mean %.3f, std %.3f, min %.3f, max %.3f\n",
		r.MeanReward, r.StdReward, r.MinReward, r.MaxReward)

	colors := make([]string, 0, len(r.BeepCounts))
	for color := range r.BeepCounts {
		colors = append(colors, color)
	}
	sort.Strings(colors)
	for _, color := range colors {
		fmt.Fprintf(&b, "beeps %-8s %s\n", color+":", humanize.Comma(int64(r.BeepCounts[color])))
	}
	return b.String()
}
