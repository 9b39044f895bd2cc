// Command cycloroute computes a single bicycle route between two
// coordinates against a directory of binary tiles and prints the result
// as JSON (or, with -geojson, as a GeoJSON FeatureCollection).
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	json "github.com/goccy/go-json"
	"github.com/paulmach/go.geojson"

	"github.com/juhonkan/cycloroute/costmodel"
	"github.com/juhonkan/cycloroute/router"
)

type successResponse struct {
	Coords        []coordJSON `json:"coords"`
	DistCarFreeKm float64     `json:"dist_car_free_km"`
	DistSeparated float64     `json:"dist_separated_km"`
	DistWithCars  float64     `json:"dist_with_cars_km"`
	DistPushingKm float64     `json:"dist_pushing_km"`
}

type coordJSON struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	fs := flag.NewFlagSet("cycloroute", flag.ContinueOnError)
	fs.SetOutput(stderr)
	geojsonOut := fs.Bool("geojson", false, "emit the route as a GeoJSON FeatureCollection instead of plain JSON")
	verbose := fs.Bool("v", false, "log diagnostic trace messages to stderr")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: cycloroute <tiles_dir> <from_lat> <from_lon> <to_lat> <to_lon> [avoid_pushing] [avoid_cars] [use_roads] [bike_type]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	positional := fs.Args()
	if len(positional) < 5 {
		fs.Usage()
		return 2
	}

	tilesDir := positional[0]
	fromLat, err1 := parseFloat(positional[1])
	fromLon, err2 := parseFloat(positional[2])
	toLat, err3 := parseFloat(positional[3])
	toLon, err4 := parseFloat(positional[4])
	if err := firstErr(err1, err2, err3, err4); err != nil {
		fmt.Fprintf(stderr, "cycloroute: invalid coordinate: %v\n", err)
		return 2
	}

	prefs := router.Preferences{BicycleType: costmodel.Mountain, UseRoads: 0.25}
	if len(positional) > 5 {
		v, err := parseFloat(positional[5])
		if err != nil {
			fmt.Fprintf(stderr, "cycloroute: invalid avoid_pushing: %v\n", err)
			return 2
		}
		prefs.AvoidPushing = v != 0
	}
	if len(positional) > 6 {
		v, err := parseFloat(positional[6])
		if err != nil {
			fmt.Fprintf(stderr, "cycloroute: invalid avoid_cars: %v\n", err)
			return 2
		}
		prefs.AvoidCars = v != 0
	}
	if len(positional) > 7 {
		v, err := parseFloat(positional[7])
		if err != nil {
			fmt.Fprintf(stderr, "cycloroute: invalid use_roads: %v\n", err)
			return 2
		}
		prefs.UseRoads = v
	}
	if len(positional) > 8 {
		v, err := parseInt(positional[8])
		if err != nil {
			fmt.Fprintf(stderr, "cycloroute: invalid bike_type: %v\n", err)
			return 2
		}
		bt, err := costmodel.ParseBicycleType(v)
		if err != nil {
			fmt.Fprintf(stderr, "cycloroute: %v\n", err)
			return 2
		}
		prefs.BicycleType = bt
	}

	var routerOpts []router.Option
	if *verbose {
		routerOpts = append(routerOpts, router.WithTraceSink(func(format string, a ...interface{}) {
			log.Printf(format, a...)
		}))
	}
	r := router.New(tilesDir, routerOpts...)

	result, err := r.Query(fromLat, fromLon, toLat, toLon, prefs)
	if err != nil {
		return emitError(stdout, err)
	}

	if *geojsonOut {
		return emitGeoJSON(stdout, result)
	}
	return emitJSON(stdout, result)
}

func emitJSON(stdout *os.File, result router.Result) int {
	resp := successResponse{
		Coords:        make([]coordJSON, len(result.Coords)),
		DistCarFreeKm: result.Summary.CarFreeMeters / 1000.0,
		DistSeparated: result.Summary.SeparatedMeters / 1000.0,
		DistWithCars:  result.Summary.WithCarsMeters / 1000.0,
		DistPushingKm: result.Summary.PushingMeters / 1000.0,
	}
	for i, c := range result.Coords {
		resp.Coords[i] = coordJSON{Lat: round6(c.Lat), Lon: round6(c.Lon)}
	}

	enc := json.NewEncoder(stdout)
	if err := enc.Encode(resp); err != nil {
		fmt.Fprintf(stdout, `{"error":"encode_failed"}`+"\n")
		return 1
	}
	return 0
}

func emitGeoJSON(stdout *os.File, result router.Result) int {
	line := make([][]float64, len(result.Coords))
	for i, c := range result.Coords {
		line[i] = []float64{round6(c.Lon), round6(c.Lat)}
	}

	feature := geojson.NewLineStringFeature(line)
	feature.SetProperty("dist_car_free_km", result.Summary.CarFreeMeters/1000.0)
	feature.SetProperty("dist_separated_km", result.Summary.SeparatedMeters/1000.0)
	feature.SetProperty("dist_with_cars_km", result.Summary.WithCarsMeters/1000.0)
	feature.SetProperty("dist_pushing_km", result.Summary.PushingMeters/1000.0)

	fc := geojson.NewFeatureCollection()
	fc.AddFeature(feature)

	raw, err := fc.MarshalJSON()
	if err != nil {
		fmt.Fprintf(stdout, `{"error":"encode_failed"}`+"\n")
		return 1
	}
	fmt.Fprintln(stdout, string(raw))
	return 0
}

func emitError(stdout *os.File, err error) int {
	var code string
	switch {
	case errors.Is(err, router.ErrTileLoadFailed):
		code = "tile_load_failed"
	case errors.Is(err, router.ErrNoNearbyRoad), errors.Is(err, router.ErrNoPath):
		code = "no_path"
	default:
		code = "no_path"
	}

	enc := json.NewEncoder(stdout)
	_ = enc.Encode(errorResponse{Error: code})
	return 1
}

func round6(v float64) float64 {
	const scale = 1e6
	return float64(int64(v*scale+signOf(v)*0.5)) / scale
}

func signOf(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

func parseFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%g", &v)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, err)
	}
	return v, nil
}

func parseInt(s string) (int, error) {
	var v int
	_, err := fmt.Sscanf(s, "%d", &v)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, err)
	}
	return v, nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
