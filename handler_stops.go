package tripplanner

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/theoremus-urban-solutions/trip-planner/network"
)

func handleStops(w http.ResponseWriter, r *http.Request) {
	g, _ := snap.Current()
	writeJSON(w, http.StatusOK, g.Stops())
}

func handleStopByID(w http.ResponseWriter, r *http.Request) {
	g, _ := snap.Current()
	id := mux.Vars(r)["id"]
	stop, err := g.StopByID(id)
	if err != nil {
		if errors.Is(err, network.ErrStopNotFound) {
			writeError(w, http.StatusNotFound, err)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, stop)
}

func handleNearestStop(w http.ResponseWriter, r *http.Request) {
	var body coordinatePayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if err := validate.Struct(body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	g, _ := snap.Current()
	stop, err := network.NearestStop(body.coordinate(), g)
	if err != nil {
		if errors.Is(err, network.ErrEmptyGraph) {
			writeError(w, http.StatusServiceUnavailable, err)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, stop)
}
