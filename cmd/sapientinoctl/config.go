package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"sapientino/internal/config"
	"sapientino/internal/grid"
	sapientinoapi "sapientino/pkg/sapientino"
)

// buildRunRequest assembles the episode request from either a JSON world
// config, a map file with a single default agent, or the built-in map.
func buildRunRequest(configPath, mapPath string) (sapientinoapi.RunRequest, error) {
	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return sapientinoapi.RunRequest{}, err
		}
		return sapientinoapi.RunRequest{Config: cfg, MapName: filepath.Base(configPath)}, nil
	}

	mapName := "default"
	var g *grid.Grid
	var err error
	if mapPath != "" {
		g, err = grid.ParseFile(mapPath)
		mapName = filepath.Base(mapPath)
	} else {
		g, err = grid.Parse(sapientinoapi.DefaultMap)
	}
	if err != nil {
		return sapientinoapi.RunRequest{}, err
	}
	return sapientinoapi.RunRequest{Config: config.New(g), MapName: mapName}, nil
}

// parseScript turns "2,2,3,4" into per-tick action vectors. A single-agent
// script lists one code per tick; multi-agent scripts separate agents with
// ';' inside a tick, e.g. "2;0,4;5".
func parseScript(script string, agents int) ([][]int, error) {
	ticks := strings.Split(script, ",")
	actions := make([][]int, 0, len(ticks))
	for t, tick := range ticks {
		parts := strings.Split(tick, ";")
		if len(parts) != agents {
			return nil, fmt.Errorf("tick %d has %d actions for %d agents", t, len(parts), agents)
		}
		row := make([]int, len(parts))
		for i, part := range parts {
			code, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return nil, fmt.Errorf("tick %d agent %d: %w", t, i, err)
			}
			row[i] = code
		}
		actions = append(actions, row)
	}
	return actions, nil
}
