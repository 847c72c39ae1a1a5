/*
Velociraptor - Dig Deeper
Copyright (C) 2019-2025 Rapid7 Inc.

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU Affero General Public License as published
by the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU Affero General Public License for more details.

You should have received a copy of the GNU Affero General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package pipes

import (
	"context"
	"time"

	"github.com/dustin/go-humanize"
	"www.velocidex.com/golang/pipeowners/config"
	"www.velocidex.com/golang/pipeowners/logging"
)

type Stats struct {
	// Pipes found in the namespace.
	Pipes int

	// Pipes attributed to a process.
	Resolved int

	// Pipes we could not open or query.
	Skipped int

	Processes int
	Duration  time.Duration
}

// Takes a single snapshot of all named pipes and their owners. Only
// an unreadable namespace (under the fatal policy) or a cancelled
// context returns an error. Everything else degrades to skipped pipes
// or placeholder names.
func Collect(
	ctx context.Context,
	config_obj *config.Config,
	introspector Introspector) ([]*ProcessRecord, *Stats, error) {

	start := time.Now()
	stats := &Stats{}
	logger := logging.GetLogger(config_obj, &logging.PipesComponent)

	policy, err := ParseNamespacePolicy(config_obj.Pipes.OnNamespaceError)
	if err != nil {
		return nil, stats, err
	}

	names, err := ListPipes(introspector, policy, logger)
	if err != nil {
		return nil, stats, err
	}
	stats.Pipes = len(names)

	aggregator := NewAggregator(NewIdentityResolver(introspector, logger))
	for _, name := range names {
		select {
		case <-ctx.Done():
			return nil, stats, ctx.Err()
		default:
		}

		pid, ok := ResolveOwner(introspector, name, logger)
		if !ok {
			stats.Skipped++
			continue
		}

		aggregator.Add(pid, name)
		stats.Resolved++
	}

	stats.Processes = aggregator.Len()
	stats.Duration = time.Since(start)

	logger.Info("Collect: %s pipes found, %s resolved to %s processes, %s skipped in %v",
		humanize.Comma(int64(stats.Pipes)),
		humanize.Comma(int64(stats.Resolved)),
		humanize.Comma(int64(stats.Processes)),
		humanize.Comma(int64(stats.Skipped)),
		stats.Duration.Round(time.Millisecond))

	return aggregator.Records(), stats, nil
}
