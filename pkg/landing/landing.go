// Package landing ranks candidate landing sites from an aircraft's current
// state by the height it would cost to reach each one, using Dubins paths
// to every touchdown candidate a site offers.
package landing

import (
	"sort"

	"github.com/deadstick-go/deadstick/pkg/aircraft"
	"github.com/deadstick-go/deadstick/pkg/dubins"
	"github.com/deadstick-go/deadstick/pkg/glide"
	"github.com/deadstick-go/deadstick/pkg/site"
)

// Option is a single ranked result: the best reachable path to one site,
// and the height it costs to fly it.
type Option struct {
	Site       site.Site
	Path       dubins.GeoPath
	HeightLoss float64
}

// Search finds, for each site in sites, the lowest-height-loss Dubins path
// from (start, altitude) to any of the site's landable touchdown
// candidates at the given along-runway resolution (meters), discarding
// sites unreachable within altitude. Results are sorted ascending by
// height loss: the first entry is the best overall option.
func Search(start dubins.GeoPose, altitude, bank, resolution float64, a aircraft.Aircraft, sites []site.Site) []Option {
	radius := a.GlidePerformance().TurnRadius(bank)
	perf := a.GlidePerformance()

	var results []Option
	for _, s := range sites {
		best, ok := bestOptionForSite(start, altitude, bank, resolution, perf, radius, s, a)
		if ok {
			results = append(results, best)
		}
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].HeightLoss < results[j].HeightLoss
	})
	return results
}

// bestOptionForSite finds the minimum-height-loss Dubins path from start
// to any of s's landable points, filtering out candidates that exceed the
// altitude budget.
func bestOptionForSite(start dubins.GeoPose, altitude, bank, resolution float64, perf glide.Performance, radius float64, s site.Site, a aircraft.Aircraft) (Option, bool) {
	points := s.LandablePoints(a, resolution)

	best := Option{Site: s}
	found := false

	for _, candidate := range points {
		end := dubins.GeoPose{Point: candidate.Point, Bearing: candidate.Bearing}

		for _, c := range dubins.GeoCandidates(start, end, radius) {
			loss := perf.HeightLossOverGeoPath(c.Path, bank)
			if loss > altitude {
				continue
			}
			if !found || loss < best.HeightLoss {
				best = Option{Site: s, Path: c.Path, HeightLoss: loss}
				found = true
			}
		}
	}

	return best, found
}
