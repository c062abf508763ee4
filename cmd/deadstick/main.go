// Command deadstick is a thin external harness around the engine package:
// it reads an aircraft record and a catalog of sites from JSON files and
// prints a landing-option search from a given position as GeoJSON. It
// exists for manual testing and scripting; it is not part of the tested
// core surface.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/paulmach/orb"

	"github.com/deadstick-go/deadstick/pkg/aircraft"
	"github.com/deadstick-go/deadstick/pkg/dubins"
	"github.com/deadstick-go/deadstick/pkg/engine"
	"github.com/deadstick-go/deadstick/pkg/logging"
	"github.com/deadstick-go/deadstick/pkg/risk"
	"github.com/deadstick-go/deadstick/pkg/site"
)

var (
	aircraftPath = flag.String("aircraft", "", "path to an aircraft JSON record")
	sitesPath    = flag.String("sites", "", "path to a JSON array of site records")
	lat          = flag.Float64("lat", 0, "current latitude, degrees")
	lon          = flag.Float64("lon", 0, "current longitude, degrees")
	bearing      = flag.Float64("bearing", 0, "current heading, degrees true")
	altitude     = flag.Float64("altitude", 0, "current altitude above ground, meters")
	resolution   = flag.Float64("resolution", 50, "landable-point search resolution, meters")
	logDir       = flag.String("logdir", ".", "directory for log output")
)

func main() {
	flag.Parse()

	log := logging.New("info", *logDir)

	if *aircraftPath == "" || *sitesPath == "" {
		fmt.Fprintln(os.Stderr, "usage: deadstick -aircraft <file> -sites <file> -lat <deg> -lon <deg> -bearing <deg> -altitude <m>")
		os.Exit(1)
	}

	aircraftBytes, err := os.ReadFile(*aircraftPath)
	if err != nil {
		log.Errorf("reading aircraft file: %v", err)
		os.Exit(1)
	}
	a, err := aircraft.Parse(aircraftBytes)
	if err != nil {
		log.Errorf("parsing aircraft: %v", err)
		os.Exit(1)
	}

	sitesBytes, err := os.ReadFile(*sitesPath)
	if err != nil {
		log.Errorf("reading sites file: %v", err)
		os.Exit(1)
	}
	var rawSites []json.RawMessage
	if err := json.Unmarshal(sitesBytes, &rawSites); err != nil {
		log.Errorf("parsing sites array: %v", err)
		os.Exit(1)
	}

	sites := make([]site.Site, 0, len(rawSites))
	for _, raw := range rawSites {
		s, err := site.Parse(raw)
		if err != nil {
			log.Errorf("parsing site: %v", err)
			os.Exit(1)
		}
		sites = append(sites, s)
	}

	prefs := risk.DefaultPreferences()
	start := dubins.GeoPose{Point: orb.Point{*lon, *lat}, Bearing: *bearing}

	fc := engine.LandingOptionsGeoJSON(prefs, start, *altitude, *resolution, a, sites)

	out, err := fc.MarshalJSON()
	if err != nil {
		log.Errorf("marshaling GeoJSON: %v", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
