package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/odinx-svg/bus-route-optimizer-sub000/geo"
	"github.com/odinx-svg/bus-route-optimizer-sub000/schedule"
)

// The domain types in schedule/ and geo/ carry no JSON tags — ingestion
// is out of scope for this repository (SPEC_FULL §1) and the CLI is only
// a thin file-backed fake standing in for a real ingester. These wire
// structs are the CLI's own file format, decoded then converted into the
// domain types the pipeline actually consumes.

type wireStop struct {
	Name          string  `json:"name"`
	Lat           float64 `json:"lat"`
	Lon           float64 `json:"lon"`
	Order         int     `json:"order"`
	TimeFromStart int     `json:"time_from_start_min"`
	IsSchool      bool    `json:"is_school"`
	Passengers    int     `json:"passengers"`
}

type wireRoute struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Stops          []wireStop  `json:"stops"`
	SchoolID       string      `json:"school_id"`
	SchoolName     string      `json:"school_name"`
	ArrivalTime    string      `json:"arrival_time,omitempty"`
	DepartureTime  string      `json:"departure_time,omitempty"`
	CapacityNeeded int         `json:"capacity_needed"`
	ContractID     string      `json:"contract_id"`
	Kind           string      `json:"kind"`
	Days           []string    `json:"days"`
}

type wireVehicle struct {
	ID       string `json:"id"`
	Code     string `json:"code"`
	Plate    string `json:"plate"`
	SeatsMin int    `json:"seats_min"`
	SeatsMax int    `json:"seats_max"`
	Status   string `json:"status"`
}

var weekdayByName = map[string]schedule.Weekday{
	"mon": schedule.Monday, "monday": schedule.Monday,
	"tue": schedule.Tuesday, "tuesday": schedule.Tuesday,
	"wed": schedule.Wednesday, "wednesday": schedule.Wednesday,
	"thu": schedule.Thursday, "thursday": schedule.Thursday,
	"fri": schedule.Friday, "friday": schedule.Friday,
}

func parseClock(s string) (*geo.MinutesOfDay, error) {
	if s == "" {
		return nil, nil
	}
	var hour, minute int
	if _, err := fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil {
		return nil, fmt.Errorf("load: bad clock time %q: %w", s, err)
	}
	t := geo.HHMM(hour, minute)
	return &t, nil
}

func loadRoutes(path string) ([]schedule.Route, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load: reading routes file: %w", err)
	}

	var wire []wireRoute
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, fmt.Errorf("load: parsing routes file: %w", err)
	}

	routes := make([]schedule.Route, 0, len(wire))
	for _, wr := range wire {
		arrival, err := parseClock(wr.ArrivalTime)
		if err != nil {
			return nil, err
		}
		departure, err := parseClock(wr.DepartureTime)
		if err != nil {
			return nil, err
		}

		stops := make([]schedule.Stop, 0, len(wr.Stops))
		for _, ws := range wr.Stops {
			stops = append(stops, schedule.Stop{
				Name:          ws.Name,
				Loc:           geo.Point{Lat: ws.Lat, Lon: ws.Lon},
				Order:         ws.Order,
				TimeFromStart: ws.TimeFromStart,
				IsSchool:      ws.IsSchool,
				Passengers:    ws.Passengers,
			})
		}

		days := make([]schedule.Weekday, 0, len(wr.Days))
		for _, d := range wr.Days {
			wd, ok := weekdayByName[d]
			if !ok {
				return nil, fmt.Errorf("load: route %q: unknown weekday %q", wr.ID, d)
			}
			days = append(days, wd)
		}

		kind := schedule.KindEntry
		if wr.Kind == "exit" {
			kind = schedule.KindExit
		}

		routes = append(routes, schedule.Route{
			ID:             wr.ID,
			Name:           wr.Name,
			Stops:          stops,
			SchoolID:       wr.SchoolID,
			SchoolName:     wr.SchoolName,
			ArrivalTime:    arrival,
			DepartureTime:  departure,
			CapacityNeeded: wr.CapacityNeeded,
			ContractID:     wr.ContractID,
			Kind:           kind,
			Days:           days,
		})
	}

	return routes, nil
}

func loadVehicles(path string) ([]schedule.VehicleProfile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load: reading vehicle registry: %w", err)
	}

	var wire []wireVehicle
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, fmt.Errorf("load: parsing vehicle registry: %w", err)
	}

	vehicles := make([]schedule.VehicleProfile, 0, len(wire))
	for _, wv := range wire {
		vehicles = append(vehicles, schedule.VehicleProfile{
			ID:       wv.ID,
			Code:     wv.Code,
			Plate:    wv.Plate,
			SeatsMin: wv.SeatsMin,
			SeatsMax: wv.SeatsMax,
			Status:   wv.Status,
		})
	}

	return vehicles, nil
}
